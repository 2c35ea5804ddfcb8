package announcement_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mergington/highschool/core/announcement"
	"github.com/mergington/highschool/core/teacher"
	"github.com/mergington/highschool/storage/database/dummy"
	"github.com/mergington/highschool/tests"
)

var now = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (announcement.Service, announcement.Repository) {
	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	repo := dummydb.NewAnnouncementRepository(db)
	svc := announcement.NewService(repo)

	announcement.NowFunc = func() time.Time { return now }
	t.Cleanup(func() { announcement.NowFunc = time.Now })
	return svc, repo
}

func Test_service_QueryActive(t *testing.T) {
	svc, repo := setup(t)

	day := 24 * time.Hour
	active1 := testutil.CreateAnnouncement(t, repo, "spirit week",
		testutil.TimePtr(now.Add(-2*day)), now.Add(day), announcement.ToneInfo, now.Add(-5*day))
	active2 := testutil.CreateAnnouncement(t, repo, "no start date",
		nil, now.Add(2*day), announcement.ToneSuccess, now.Add(-4*day))
	active3 := testutil.CreateAnnouncement(t, repo, "starts right now",
		testutil.TimePtr(now), now.Add(day), announcement.ToneWarning, now.Add(-3*day))
	// expired: the window is half open, expiration itself is out
	testutil.CreateAnnouncement(t, repo, "expires this instant",
		nil, now, announcement.ToneInfo)
	testutil.CreateAnnouncement(t, repo, "long gone",
		testutil.TimePtr(now.Add(-10*day)), now.Add(-5*day), announcement.ToneInfo)
	// not started yet
	testutil.CreateAnnouncement(t, repo, "next week",
		testutil.TimePtr(now.Add(3*day)), now.Add(10*day), announcement.ToneInfo)

	anns, err := svc.QueryActive()
	assert.NoError(t, err)
	if assert.Len(t, anns, 3) {
		// nil start dates first, then start date ascending
		assert.Equal(t, active2.ID, anns[0].ID)
		assert.Equal(t, active1.ID, anns[1].ID)
		assert.Equal(t, active3.ID, anns[2].ID)
	}
}

func Test_service_QueryActive_ties(t *testing.T) {
	svc, repo := setup(t)

	start := testutil.TimePtr(now.Add(-time.Hour))
	first := testutil.CreateAnnouncement(t, repo, "created first",
		start, now.Add(time.Hour), announcement.ToneInfo, now.Add(-2*time.Hour))
	second := testutil.CreateAnnouncement(t, repo, "created second",
		start, now.Add(time.Hour), announcement.ToneInfo, now.Add(-time.Hour))

	anns, err := svc.QueryActive()
	assert.NoError(t, err)
	if assert.Len(t, anns, 2) {
		assert.Equal(t, first.ID, anns[0].ID)
		assert.Equal(t, second.ID, anns[1].ID)
	}
}

func Test_service_QueryAll(t *testing.T) {
	svc, repo := setup(t)

	older := testutil.CreateAnnouncement(t, repo, "expired but listed",
		nil, now.Add(-time.Hour), announcement.ToneInfo, now.Add(-48*time.Hour))
	newer := testutil.CreateAnnouncement(t, repo, "current",
		nil, now.Add(time.Hour), announcement.ToneInfo, now.Add(-time.Hour))

	_, err := svc.QueryAll(teacher.RoleAnonymous)
	assert.Equal(t, announcement.ErrForbidden, err)

	anns, err := svc.QueryAll(teacher.RoleTeacher)
	assert.NoError(t, err)
	if assert.Len(t, anns, 2) {
		// creation order, expired ones included
		assert.Equal(t, older.ID, anns[0].ID)
		assert.Equal(t, newer.ID, anns[1].ID)
	}
}

func Test_service_Create(t *testing.T) {
	svc, repo := setup(t)

	na := announcement.NewAnnouncement{
		Message:        "Final exams start Monday",
		ExpirationDate: now.Add(7 * 24 * time.Hour),
	}

	_, err := svc.Create(teacher.RoleAnonymous, na)
	assert.Equal(t, announcement.ErrForbidden, err)
	anns, _ := repo.QueryAllAnnouncements()
	assert.Empty(t, anns)

	ann, err := svc.Create(teacher.RoleTeacher, na)
	assert.NoError(t, err)
	assert.NotEmpty(t, ann.ID)
	assert.Equal(t, announcement.ToneInfo, ann.Tone) // default
	assert.Equal(t, now, ann.CreatedAt)

	// rejected: start after expiration, nothing stored
	bad := announcement.NewAnnouncement{
		Message:        "backwards window",
		StartDate:      testutil.TimePtr(now.Add(48 * time.Hour)),
		ExpirationDate: now.Add(24 * time.Hour),
	}
	_, err = svc.Create(teacher.RoleTeacher, bad)
	assert.Error(t, err)
	anns, _ = repo.QueryAllAnnouncements()
	assert.Len(t, anns, 1)

	// rejected: message too long
	bad = announcement.NewAnnouncement{
		Message:        strings.Repeat("a", 281),
		ExpirationDate: now.Add(24 * time.Hour),
	}
	_, err = svc.Create(teacher.RoleTeacher, bad)
	assert.Error(t, err)
}

func Test_service_Update(t *testing.T) {
	svc, repo := setup(t)

	orig := testutil.CreateAnnouncement(t, repo, "original message",
		testutil.TimePtr(now.Add(-time.Hour)), now.Add(time.Hour), announcement.ToneWarning)

	_, err := svc.Update(teacher.RoleAnonymous, orig.ID, announcement.UpdateAnnouncement{Message: "nope"})
	assert.Equal(t, announcement.ErrForbidden, err)

	_, err = svc.Update(teacher.RoleTeacher, "missing", announcement.UpdateAnnouncement{Message: "nope"})
	assert.Equal(t, announcement.ErrNotFound, err)

	// partial update keeps the unset fields
	ann, err := svc.Update(teacher.RoleTeacher, orig.ID, announcement.UpdateAnnouncement{Message: "edited"})
	assert.NoError(t, err)
	assert.Equal(t, "edited", ann.Message)
	assert.Equal(t, orig.StartDate, ann.StartDate)
	assert.Equal(t, orig.ExpirationDate, ann.ExpirationDate)
	assert.Equal(t, announcement.ToneWarning, ann.Tone)

	// a window made invalid by the merge is rejected whole
	_, err = svc.Update(teacher.RoleTeacher, orig.ID, announcement.UpdateAnnouncement{
		StartDate: testutil.TimePtr(now.Add(2 * time.Hour)),
	})
	assert.Error(t, err)
	ann, _ = repo.GetAnnouncementByID(orig.ID)
	assert.Equal(t, "edited", ann.Message)
	assert.Equal(t, orig.StartDate, ann.StartDate)
}

func Test_service_Delete(t *testing.T) {
	svc, repo := setup(t)

	ann := testutil.CreateAnnouncement(t, repo, "to be removed",
		nil, now.Add(time.Hour), announcement.ToneInfo)

	err := svc.Delete(teacher.RoleAnonymous, ann.ID)
	assert.Equal(t, announcement.ErrForbidden, err)
	_, err = repo.GetAnnouncementByID(ann.ID)
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(teacher.RoleTeacher, ann.ID))
	_, err = repo.GetAnnouncementByID(ann.ID)
	assert.Equal(t, announcement.ErrNotFound, err)

	assert.Equal(t, announcement.ErrNotFound, svc.Delete(teacher.RoleTeacher, ann.ID))
}
