package activity

import (
	"time"

	"github.com/mergington/highschool/core"
)

// Activity is a named extracurricular offering with a participant capacity.
// Name is the natural key.
type Activity struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Schedule        string    `json:"schedule"`
	MaxParticipants int       `json:"max_participants"`
	Participants    []string  `json:"participants"`
	CreatedAt       time.Time `json:"created_at"` // UTC
	UpdatedAt       time.Time `json:"updated_at"` // UTC
}

func (a Activity) ParticipantCount() int { return len(a.Participants) }

func (a Activity) IsFull() bool { return len(a.Participants) >= a.MaxParticipants }

func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// NewActivity contains information needed to create a new Activity.
// Activities are only created at seeding time via the admin CLI.
type NewActivity struct {
	Name            string `json:"name" validate:"required"`
	Description     string `json:"description" validate:"required"`
	Schedule        string `json:"schedule" validate:"required"`
	MaxParticipants int    `json:"max_participants" validate:"required,gt=0"`
}

func (na *NewActivity) Validate() error {
	na.Name = core.CleanString(na.Name)
	na.Description = core.CleanString(na.Description)
	na.Schedule = core.CleanString(na.Schedule)
	return core.Validate.Struct(na)
}
