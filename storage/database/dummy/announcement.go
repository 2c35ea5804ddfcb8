package dummydb

import (
	"github.com/mergington/highschool/core/announcement"
)

type announcementRepository struct {
	db *announcementTable
}

var _ announcement.Repository = (*announcementRepository)(nil)

func NewAnnouncementRepository(db *DB) announcement.Repository {
	return &announcementRepository{db: db.announcement}
}

func (repo *announcementRepository) CreateAnnouncement(ann announcement.Announcement) (announcement.Announcement, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[ann.ID] = &ann
	return ann, nil
}

func (repo *announcementRepository) QueryAllAnnouncements() ([]announcement.Announcement, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	anns := make([]announcement.Announcement, 0, len(repo.db.table))
	for _, ann := range repo.db.table {
		anns = append(anns, *ann)
	}
	return anns, nil
}

func (repo *announcementRepository) GetAnnouncementByID(id string) (announcement.Announcement, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if ann, ok := repo.db.table[id]; ok {
		return *ann, nil
	}
	return announcement.Announcement{}, announcement.ErrNotFound
}

func (repo *announcementRepository) UpdateAnnouncement(ann announcement.Announcement) (announcement.Announcement, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[ann.ID]; !ok {
		return announcement.Announcement{}, announcement.ErrNotFound
	}
	repo.db.table[ann.ID] = &ann
	return ann, nil
}

func (repo *announcementRepository) DeleteAnnouncementByID(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return announcement.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}
