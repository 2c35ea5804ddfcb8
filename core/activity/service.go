package activity

import (
	"errors"
	"fmt"
	"net/mail"
	"time"

	"github.com/mergington/highschool/core"
)

var (
	// errors
	ErrNotFound          = errors.New("activity not found")
	ErrAlreadyRegistered = errors.New("student is already signed up for this activity")
	ErrCapacityExceeded  = errors.New("activity is already full")
	ErrNotRegistered     = errors.New("student is not signed up for this activity")
)

type (
	Repository interface {
		CreateActivity(act Activity) (Activity, error)
		QueryAllActivities() ([]Activity, error)
		GetActivityByName(name string) (Activity, error)
		// AddParticipant atomically checks membership and capacity before
		// adding email; it returns ErrNotFound, ErrAlreadyRegistered or
		// ErrCapacityExceeded. The membership check runs first so a duplicate
		// signup on a full activity reports the duplicate.
		AddParticipant(name, email string) (Activity, error)
		// RemoveParticipant atomically checks membership before removing
		// email; it returns ErrNotFound or ErrNotRegistered.
		RemoveParticipant(name, email string) (Activity, error)
	}

	Service interface {
		Create(na NewActivity) (Activity, error)
		QueryAll() ([]Activity, error)
		GetByName(name string) (Activity, error)
		Signup(name, email string) (Activity, error)
		Unregister(name, email string) (Activity, error)
	}

	service struct {
		repo    Repository
		mailSvc core.EmailService
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository, mailSvc core.EmailService) Service {
	return &service{
		repo:    repo,
		mailSvc: mailSvc,
	}
}

func (svc *service) Create(na NewActivity) (Activity, error) {
	now := time.Now().UTC()
	act := Activity{
		Name:            na.Name,
		Description:     na.Description,
		Schedule:        na.Schedule,
		MaxParticipants: na.MaxParticipants,
		Participants:    make([]string, 0),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	return svc.repo.CreateActivity(act)
}

func (svc *service) QueryAll() ([]Activity, error) {
	return svc.repo.QueryAllActivities()
}

func (svc *service) GetByName(name string) (Activity, error) {
	return svc.repo.GetActivityByName(core.CleanString(name))
}

func (svc *service) Signup(name, email string) (Activity, error) {
	act, err := svc.repo.AddParticipant(core.CleanString(name), core.CleanString(email, true /* lower */))
	if err != nil {
		return Activity{}, err
	}
	svc.sendSignupMail(act, email)
	return act, nil
}

func (svc *service) Unregister(name, email string) (Activity, error) {
	act, err := svc.repo.RemoveParticipant(core.CleanString(name), core.CleanString(email, true /* lower */))
	if err != nil {
		return Activity{}, err
	}
	svc.sendUnregisterMail(act, email)
	return act, nil
}

func (svc *service) sendSignupMail(act Activity, email string) {
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Address: email}},
		Subject: "Signed up for " + act.Name,
		Body: fmt.Sprintf(
			"You are signed up for %s.\n\nSchedule: %s\n\nSee you there!",
			act.Name, act.Schedule,
		),
	})
}

func (svc *service) sendUnregisterMail(act Activity, email string) {
	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Address: email}},
		Subject: "Unregistered from " + act.Name,
		Body:    fmt.Sprintf("You have been unregistered from %s.", act.Name),
	})
}
