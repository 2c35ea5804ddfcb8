package teacher

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/mergington/highschool/core"
)

// Role is the permission level resolved for a request.
type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleTeacher   Role = "teacher"
)

func (r Role) IsTeacher() bool { return r == RoleTeacher }

// Teacher is a staff account allowed to manage announcements.
// Username is the natural key.
type Teacher struct {
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` // UTC
	UpdatedAt    time.Time `json:"updated_at"` // UTC
}

func (t *Teacher) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	t.PasswordHash = hash
	return nil
}

func (t *Teacher) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(t.PasswordHash, []byte(pwd))
}

// Session marks a successful login for a username. A session is valid while
// its age is within core.Conf.SessionTimeoutDelta (zero delta disables expiry).
type Session struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

func (s Session) Expired(timeout time.Duration, now time.Time) bool {
	if timeout == 0 {
		return false
	}
	return now.After(s.CreatedAt.Add(timeout))
}

// NewTeacher contains information needed to create a new Teacher.
type NewTeacher struct {
	Username string `json:"username" validate:"required,min=3,alphanum"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (nt *NewTeacher) Validate() error {
	nt.Username = core.CleanString(nt.Username, true /* lower */)
	nt.Name = core.CleanString(nt.Name)
	nt.Email = core.CleanString(nt.Email, true /* lower */)
	return core.Validate.Struct(nt)
}
