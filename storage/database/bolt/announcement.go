package boltdb

import (
	"encoding/json"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"github.com/mergington/highschool/core/announcement"
)

type announcementRepository struct {
	db *DB
}

var _ announcement.Repository = (*announcementRepository)(nil)

func NewAnnouncementRepository(db *DB) announcement.Repository {
	return &announcementRepository{db: db}
}

func (repo *announcementRepository) CreateAnnouncement(ann announcement.Announcement) (announcement.Announcement, error) {
	err := repo.db.bolt.Update(func(tx *bbolt.Tx) error {
		return putAnnouncement(tx, ann)
	})
	if err != nil {
		return announcement.Announcement{}, err
	}
	return ann, nil
}

func (repo *announcementRepository) QueryAllAnnouncements() ([]announcement.Announcement, error) {
	anns := make([]announcement.Announcement, 0)
	err := repo.db.bolt.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(announcementBucket).ForEach(func(k, v []byte) error {
			var ann announcement.Announcement
			if err := json.Unmarshal(v, &ann); err != nil {
				return errors.Wrap(err, "decoding announcement")
			}
			anns = append(anns, ann)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return anns, nil
}

func (repo *announcementRepository) GetAnnouncementByID(id string) (announcement.Announcement, error) {
	var ann announcement.Announcement
	err := repo.db.bolt.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(announcementBucket).Get([]byte(id))
		if v == nil {
			return announcement.ErrNotFound
		}
		return errors.Wrap(json.Unmarshal(v, &ann), "decoding announcement")
	})
	if err != nil {
		return announcement.Announcement{}, err
	}
	return ann, nil
}

func (repo *announcementRepository) UpdateAnnouncement(ann announcement.Announcement) (announcement.Announcement, error) {
	err := repo.db.bolt.Update(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(announcementBucket).Get([]byte(ann.ID)); v == nil {
			return announcement.ErrNotFound
		}
		return putAnnouncement(tx, ann)
	})
	if err != nil {
		return announcement.Announcement{}, err
	}
	return ann, nil
}

func (repo *announcementRepository) DeleteAnnouncementByID(id string) error {
	return repo.db.bolt.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(announcementBucket)
		if v := b.Get([]byte(id)); v == nil {
			return announcement.ErrNotFound
		}
		return b.Delete([]byte(id))
	})
}

func putAnnouncement(tx *bbolt.Tx, ann announcement.Announcement) error {
	v, err := json.Marshal(ann)
	if err != nil {
		return errors.Wrap(err, "encoding announcement")
	}
	return tx.Bucket(announcementBucket).Put([]byte(ann.ID), v)
}
