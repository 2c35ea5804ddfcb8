package boltdb

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"github.com/mergington/highschool/core"
)

var (
	activityBucket     = []byte("Activities")
	announcementBucket = []byte("Announcements")
	teacherBucket      = []byte("Teachers")
	sessionBucket      = []byte("Sessions")

	buckets = [][]byte{activityBucket, announcementBucket, teacherBucket, sessionBucket}
)

// DB is a bbolt-backed document store. Each collection lives in its own
// bucket; records are JSON-encoded. Every check-then-write sequence runs
// inside a single bbolt update transaction, so per-record read-modify-write
// is atomic.
type DB struct {
	bolt *bbolt.DB
}

func Open(conf *core.Config) (*DB, error) {
	path := conf.Database.Path
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, "creating database directory")
	}

	b, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}

	err = b.Update(func(tx *bbolt.Tx) error {
		for _, bucket := range buckets {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		_ = b.Close()
		return nil, errors.Wrap(err, "creating buckets")
	}
	return &DB{bolt: b}, nil
}

func (db *DB) Close() error {
	return db.bolt.Close()
}
