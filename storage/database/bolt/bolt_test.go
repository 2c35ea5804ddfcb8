package boltdb

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mergington/highschool/core"
	"github.com/mergington/highschool/core/activity"
	"github.com/mergington/highschool/core/announcement"
	"github.com/mergington/highschool/core/teacher"
	"github.com/mergington/highschool/tests"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	conf := &core.Config{
		Database: core.DatabaseConfig{Path: filepath.Join(t.TempDir(), "school.db")},
	}
	db, err := Open(conf)
	if err != nil {
		t.Fatalf("newTestDB() failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_activityRepository(t *testing.T) {
	repo := NewActivityRepository(newTestDB(t))

	_, err := repo.GetActivityByName("Chess Club")
	assert.Equal(t, activity.ErrNotFound, err)

	created := testutil.CreateActivity(t, repo, "Chess Club", "Mondays, 3:30 PM", 2)

	act, err := repo.GetActivityByName("Chess Club")
	assert.NoError(t, err)
	assert.Equal(t, created.Name, act.Name)
	assert.Equal(t, created.Schedule, act.Schedule)
	assert.Equal(t, created.MaxParticipants, act.MaxParticipants)
	assert.Empty(t, act.Participants)
	assert.True(t, created.CreatedAt.Equal(act.CreatedAt))

	// membership and capacity checks happen inside the write transaction
	act, err = repo.AddParticipant("Chess Club", "alice@mergington.edu")
	assert.NoError(t, err)
	assert.Equal(t, []string{"alice@mergington.edu"}, act.Participants)

	_, err = repo.AddParticipant("Chess Club", "alice@mergington.edu")
	assert.Equal(t, activity.ErrAlreadyRegistered, err)

	_, err = repo.AddParticipant("Chess Club", "bob@mergington.edu")
	assert.NoError(t, err)
	_, err = repo.AddParticipant("Chess Club", "carol@mergington.edu")
	assert.Equal(t, activity.ErrCapacityExceeded, err)

	// the duplicate wins over capacity on a full activity
	_, err = repo.AddParticipant("Chess Club", "alice@mergington.edu")
	assert.Equal(t, activity.ErrAlreadyRegistered, err)

	act, err = repo.RemoveParticipant("Chess Club", "alice@mergington.edu")
	assert.NoError(t, err)
	assert.Equal(t, []string{"bob@mergington.edu"}, act.Participants)

	_, err = repo.RemoveParticipant("Chess Club", "alice@mergington.edu")
	assert.Equal(t, activity.ErrNotRegistered, err)

	_, err = repo.AddParticipant("Knitting Club", "alice@mergington.edu")
	assert.Equal(t, activity.ErrNotFound, err)
	_, err = repo.RemoveParticipant("Knitting Club", "alice@mergington.edu")
	assert.Equal(t, activity.ErrNotFound, err)

	testutil.CreateActivity(t, repo, "Gym Class", "Fridays, 2:00 PM", 30)
	acts, err := repo.QueryAllActivities()
	assert.NoError(t, err)
	assert.Len(t, acts, 2)
}

func Test_announcementRepository(t *testing.T) {
	repo := NewAnnouncementRepository(newTestDB(t))

	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	created := testutil.CreateAnnouncement(t, repo, "book fair this week",
		testutil.TimePtr(now), now.Add(48*time.Hour), announcement.ToneSuccess, now)

	ann, err := repo.GetAnnouncementByID(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, created.Message, ann.Message)
	assert.Equal(t, created.Tone, ann.Tone)
	if assert.NotNil(t, ann.StartDate) {
		assert.True(t, created.StartDate.Equal(*ann.StartDate))
	}
	assert.True(t, created.ExpirationDate.Equal(ann.ExpirationDate))

	_, err = repo.GetAnnouncementByID("missing")
	assert.Equal(t, announcement.ErrNotFound, err)

	ann.Message = "book fair extended"
	ann, err = repo.UpdateAnnouncement(ann)
	assert.NoError(t, err)
	ann, _ = repo.GetAnnouncementByID(created.ID)
	assert.Equal(t, "book fair extended", ann.Message)

	missing := ann
	missing.ID = "missing"
	_, err = repo.UpdateAnnouncement(missing)
	assert.Equal(t, announcement.ErrNotFound, err)

	anns, err := repo.QueryAllAnnouncements()
	assert.NoError(t, err)
	assert.Len(t, anns, 1)

	assert.NoError(t, repo.DeleteAnnouncementByID(created.ID))
	assert.Equal(t, announcement.ErrNotFound, repo.DeleteAnnouncementByID(created.ID))
	_, err = repo.GetAnnouncementByID(created.ID)
	assert.Equal(t, announcement.ErrNotFound, err)
}

func Test_teacherRepository(t *testing.T) {
	repo := NewTeacherRepository(newTestDB(t))

	created := testutil.CreateTeacher(t, repo, "mrodriguez", "Ms. Rodriguez", "rodriguez@mergington.edu", "S3cur3-Pass!")

	// the password hash survives the round trip despite being hidden from
	// API responses
	tchr, err := repo.GetTeacherByUsername("mrodriguez")
	assert.NoError(t, err)
	assert.Equal(t, created.Name, tchr.Name)
	assert.Equal(t, created.Email, tchr.Email)
	assert.NoError(t, tchr.CheckPassword("S3cur3-Pass!"))

	_, err = repo.GetTeacherByUsername("ghost")
	assert.Equal(t, teacher.ErrNotFound, err)

	_, err = repo.CreateTeacher(teacher.Teacher{Username: "mrodriguez"})
	assert.Equal(t, teacher.ErrUsernameExists, err)

	assert.NoError(t, tchr.SetPassword("New-Pass-456"))
	_, err = repo.UpdateTeacher(tchr)
	assert.NoError(t, err)
	tchr, _ = repo.GetTeacherByUsername("mrodriguez")
	assert.NoError(t, tchr.CheckPassword("New-Pass-456"))

	_, err = repo.UpdateTeacher(teacher.Teacher{Username: "ghost"})
	assert.Equal(t, teacher.ErrNotFound, err)

	// sessions
	_, err = repo.GetSession("mrodriguez")
	assert.Equal(t, teacher.ErrNotFound, err)

	loginAt := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	assert.NoError(t, repo.SaveSession(teacher.Session{Username: "mrodriguez", CreatedAt: loginAt}))

	sess, err := repo.GetSession("mrodriguez")
	assert.NoError(t, err)
	assert.True(t, loginAt.Equal(sess.CreatedAt))

	// a later login overwrites the session
	assert.NoError(t, repo.SaveSession(teacher.Session{Username: "mrodriguez", CreatedAt: loginAt.Add(time.Hour)}))
	sess, _ = repo.GetSession("mrodriguez")
	assert.True(t, loginAt.Add(time.Hour).Equal(sess.CreatedAt))
}
