package announcement

import (
	"time"

	"github.com/mergington/highschool/core"
)

// Tone is the severity of an announcement.
type Tone string

const (
	ToneInfo    Tone = "info"
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
)

// Announcement is a timed message shown to students while the current time is
// within the half-open window [StartDate, ExpirationDate). An absent StartDate
// means the window is already open.
type Announcement struct {
	ID             string     `json:"id"`
	Message        string     `json:"message"`
	StartDate      *time.Time `json:"start_date"`
	ExpirationDate time.Time  `json:"expiration_date"`
	Tone           Tone       `json:"tone"`
	CreatedAt      time.Time  `json:"created_at"` // UTC
	UpdatedAt      time.Time  `json:"updated_at"` // UTC
}

func (a Announcement) ActiveAt(now time.Time) bool {
	if a.StartDate != nil && now.Before(*a.StartDate) {
		return false
	}
	return now.Before(a.ExpirationDate)
}

// NewAnnouncement contains information needed to create a new Announcement.
type NewAnnouncement struct {
	Message        string     `json:"message" validate:"required,max=280"`
	StartDate      *time.Time `json:"start_date"`
	ExpirationDate time.Time  `json:"expiration_date" validate:"required"`
	Tone           Tone       `json:"tone" validate:"omitempty,oneof=info success warning"`
}

func (na *NewAnnouncement) Validate() error {
	na.Message = core.CleanString(na.Message)
	na.Tone = Tone(core.CleanString(string(na.Tone), true /* lower */))
	if na.Tone == "" {
		na.Tone = ToneInfo
	}
	return core.Validate.Struct(na)
}

// UpdateAnnouncement defines what information may be provided to modify an
// existing Announcement. Zero-valued fields are left unchanged.
type UpdateAnnouncement struct {
	Message        string     `json:"message" validate:"omitempty,max=280"`
	StartDate      *time.Time `json:"start_date"`
	ExpirationDate time.Time  `json:"expiration_date"`
	Tone           Tone       `json:"tone" validate:"omitempty,oneof=info success warning"`
}

// Validate merges unset fields from the original record, then validates the
// merged result so the date-window invariant always holds after an update.
func (ua *UpdateAnnouncement) Validate(orig Announcement) error {
	msg := core.CleanString(ua.Message)
	if msg != "" {
		ua.Message = msg
	} else {
		ua.Message = orig.Message
	}

	if ua.StartDate == nil {
		ua.StartDate = orig.StartDate
	}
	if ua.ExpirationDate.IsZero() {
		ua.ExpirationDate = orig.ExpirationDate
	}

	ua.Tone = Tone(core.CleanString(string(ua.Tone), true /* lower */))
	if ua.Tone == "" {
		ua.Tone = orig.Tone
	}
	return core.Validate.Struct(ua)
}
