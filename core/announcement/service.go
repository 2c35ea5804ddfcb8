package announcement

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mergington/highschool/core/teacher"
)

var (
	// errors
	ErrNotFound  = errors.New("announcement not found")
	ErrForbidden = errors.New("teacher role required")

	NowFunc = time.Now // mockable
)

type (
	Repository interface {
		CreateAnnouncement(ann Announcement) (Announcement, error)
		QueryAllAnnouncements() ([]Announcement, error)
		GetAnnouncementByID(id string) (Announcement, error)
		UpdateAnnouncement(ann Announcement) (Announcement, error)
		DeleteAnnouncementByID(id string) error
	}

	Service interface {
		// QueryActive returns announcements whose window contains the current
		// time, ordered by start date ascending with absent start dates
		// first; ties are broken by creation time.
		QueryActive() ([]Announcement, error)
		QueryAll(role teacher.Role) ([]Announcement, error)
		Create(role teacher.Role, na NewAnnouncement) (Announcement, error)
		Update(role teacher.Role, id string, ua UpdateAnnouncement) (Announcement, error)
		Delete(role teacher.Role, id string) error
	}

	service struct {
		repo Repository
	}
)

var _ Service = (*service)(nil)

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (svc *service) QueryActive() ([]Announcement, error) {
	all, err := svc.repo.QueryAllAnnouncements()
	if err != nil {
		return nil, err
	}

	now := NowFunc().UTC()
	active := make([]Announcement, 0, len(all))
	for _, ann := range all {
		if ann.ActiveAt(now) {
			active = append(active, ann)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		si, sj := active[i].StartDate, active[j].StartDate
		switch {
		case si == nil && sj == nil:
			return active[i].CreatedAt.Before(active[j].CreatedAt)
		case si == nil:
			return true
		case sj == nil:
			return false
		case si.Equal(*sj):
			return active[i].CreatedAt.Before(active[j].CreatedAt)
		default:
			return si.Before(*sj)
		}
	})
	return active, nil
}

func (svc *service) QueryAll(role teacher.Role) ([]Announcement, error) {
	if !role.IsTeacher() {
		return nil, ErrForbidden
	}
	all, err := svc.repo.QueryAllAnnouncements()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	return all, nil
}

func (svc *service) Create(role teacher.Role, na NewAnnouncement) (Announcement, error) {
	if !role.IsTeacher() {
		return Announcement{}, ErrForbidden
	}
	if err := na.Validate(); err != nil {
		return Announcement{}, err
	}

	now := NowFunc().UTC()
	ann := Announcement{
		ID:             uuid.New().String(),
		Message:        na.Message,
		StartDate:      na.StartDate,
		ExpirationDate: na.ExpirationDate,
		Tone:           na.Tone,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	return svc.repo.CreateAnnouncement(ann)
}

func (svc *service) Update(role teacher.Role, id string, ua UpdateAnnouncement) (Announcement, error) {
	if !role.IsTeacher() {
		return Announcement{}, ErrForbidden
	}
	orig, err := svc.repo.GetAnnouncementByID(id)
	if err != nil {
		return Announcement{}, err
	}
	// an update either fully validates against the merged record and
	// applies, or is rejected whole
	if err := ua.Validate(orig); err != nil {
		return Announcement{}, err
	}

	orig.Message = ua.Message
	orig.StartDate = ua.StartDate
	orig.ExpirationDate = ua.ExpirationDate
	orig.Tone = ua.Tone
	orig.UpdatedAt = NowFunc().UTC()
	return svc.repo.UpdateAnnouncement(orig)
}

func (svc *service) Delete(role teacher.Role, id string) error {
	if !role.IsTeacher() {
		return ErrForbidden
	}
	return svc.repo.DeleteAnnouncementByID(id)
}
