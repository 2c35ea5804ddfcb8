package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mergington/highschool/core/activity"
	"github.com/mergington/highschool/core/announcement"
	"github.com/mergington/highschool/core/teacher"
)

func TimePtr(t time.Time) *time.Time { return &t }

func CreateActivity(
	t *testing.T,
	repo activity.Repository,
	name, schedule string,
	maxParticipants int,
	participants ...string,
) activity.Activity {
	t.Helper()

	now := time.Now().UTC()
	if participants == nil {
		participants = make([]string, 0)
	}
	act := activity.Activity{
		Name:            name,
		Description:     name + " description",
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Participants:    participants,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	act, err := repo.CreateActivity(act)
	if err != nil {
		t.Fatalf("CreateActivity() failed: %v", err)
	}
	return act
}

func CreateTeacher(
	t *testing.T,
	repo teacher.Repository,
	uname, name, email, pwd string,
) teacher.Teacher {
	t.Helper()

	now := time.Now().UTC()
	tchr := teacher.Teacher{
		Username:  uname,
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if pwd != "" {
		if err := tchr.SetPassword(pwd); err != nil {
			t.Fatalf("CreateTeacher() failed: %v", err)
		}
	}
	tchr, err := repo.CreateTeacher(tchr)
	if err != nil {
		t.Fatalf("CreateTeacher() failed: %v", err)
	}
	return tchr
}

func CreateSession(
	t *testing.T,
	repo teacher.Repository,
	uname string,
	createdAt ...time.Time,
) teacher.Session {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	sess := teacher.Session{Username: uname, CreatedAt: tstamp}
	if err := repo.SaveSession(sess); err != nil {
		t.Fatalf("CreateSession() failed: %v", err)
	}
	return sess
}

func CreateAnnouncement(
	t *testing.T,
	repo announcement.Repository,
	message string,
	startDate *time.Time,
	expirationDate time.Time,
	tone announcement.Tone,
	createdAt ...time.Time,
) announcement.Announcement {
	t.Helper()

	tstamp := time.Now().UTC()
	if len(createdAt) > 0 {
		tstamp = createdAt[0].UTC()
	}
	ann := announcement.Announcement{
		ID:             uuid.New().String(),
		Message:        message,
		StartDate:      startDate,
		ExpirationDate: expirationDate,
		Tone:           tone,
		CreatedAt:      tstamp,
		UpdatedAt:      tstamp,
	}
	ann, err := repo.CreateAnnouncement(ann)
	if err != nil {
		t.Fatalf("CreateAnnouncement() failed: %v", err)
	}
	return ann
}
