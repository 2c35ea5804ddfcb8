package teacher

import (
	"errors"
	"time"

	"github.com/mergington/highschool/core"
)

var (
	// errors
	ErrNotFound           = errors.New("teacher not found")
	ErrUsernameExists     = errors.New("a teacher with this username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	NowFunc = time.Now // mockable
)

type (
	Repository interface {
		CreateTeacher(tchr Teacher) (Teacher, error)
		GetTeacherByUsername(username string) (Teacher, error)
		UpdateTeacher(tchr Teacher) (Teacher, error)
		SaveSession(sess Session) error
		GetSession(username string) (Session, error)
	}

	Service interface {
		Create(nt NewTeacher) (Teacher, error)
		GetByUsername(username string) (Teacher, error)
		SetPassword(username, pwd string) (Teacher, error)
		// Login validates credentials and marks a session valid for the
		// username. It fails with ErrInvalidCredentials on any mismatch.
		Login(username, password string) (Teacher, error)
		// CheckSession reports whether a valid session exists for username.
		// It never mutates state.
		CheckSession(username string) (bool, error)
		// Authorize resolves the role for a request; an invalid or absent
		// session maps to RoleAnonymous.
		Authorize(username string) Role
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) Create(nt NewTeacher) (Teacher, error) {
	now := NowFunc().UTC()
	tchr := Teacher{
		Username:  nt.Username,
		Name:      nt.Name,
		Email:     nt.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := tchr.SetPassword(nt.Password); err != nil {
		return Teacher{}, err
	}
	return svc.repo.CreateTeacher(tchr)
}

func (svc *service) GetByUsername(username string) (Teacher, error) {
	return svc.repo.GetTeacherByUsername(core.CleanString(username, true /* lower */))
}

func (svc *service) SetPassword(username, pwd string) (Teacher, error) {
	tchr, err := svc.GetByUsername(username)
	if err != nil {
		return Teacher{}, err
	}
	if err := tchr.SetPassword(pwd); err != nil {
		return Teacher{}, err
	}
	tchr.UpdatedAt = NowFunc().UTC()
	return svc.repo.UpdateTeacher(tchr)
}

func (svc *service) Login(username, password string) (Teacher, error) {
	tchr, err := svc.GetByUsername(username)
	if err != nil {
		if err == ErrNotFound {
			return Teacher{}, ErrInvalidCredentials
		}
		return Teacher{}, err
	}
	if err := tchr.CheckPassword(password); err != nil {
		return Teacher{}, ErrInvalidCredentials
	}
	sess := Session{
		Username:  tchr.Username,
		CreatedAt: NowFunc().UTC(),
	}
	if err := svc.repo.SaveSession(sess); err != nil {
		return Teacher{}, err
	}
	return tchr, nil
}

func (svc *service) CheckSession(username string) (bool, error) {
	username = core.CleanString(username, true /* lower */)
	if username == "" {
		return false, nil
	}
	sess, err := svc.repo.GetSession(username)
	if err != nil {
		if err == ErrNotFound {
			return false, nil
		}
		return false, err
	}
	return !sess.Expired(core.Conf.SessionTimeoutDelta, NowFunc().UTC()), nil
}

func (svc *service) Authorize(username string) Role {
	if ok, err := svc.CheckSession(username); err == nil && ok {
		return RoleTeacher
	}
	return RoleAnonymous
}
