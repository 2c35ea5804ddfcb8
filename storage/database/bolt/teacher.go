package boltdb

import (
	"encoding/json"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"github.com/mergington/highschool/core/teacher"
)

// teacherJSON is the stored form of a teacher.Teacher; the password hash is
// excluded from the API model's JSON but must be persisted.
type teacherJSON struct {
	teacher.Teacher
	PasswordHash []byte `json:"password_hash"`
}

type teacherRepository struct {
	db *DB
}

var _ teacher.Repository = (*teacherRepository)(nil)

func NewTeacherRepository(db *DB) teacher.Repository {
	return &teacherRepository{db: db}
}

func (repo *teacherRepository) CreateTeacher(tchr teacher.Teacher) (teacher.Teacher, error) {
	err := repo.db.bolt.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket(teacherBucket)
		if v := b.Get([]byte(tchr.Username)); v != nil {
			return teacher.ErrUsernameExists
		}
		return putTeacher(tx, tchr)
	})
	if err != nil {
		return teacher.Teacher{}, err
	}
	return tchr, nil
}

func (repo *teacherRepository) GetTeacherByUsername(username string) (teacher.Teacher, error) {
	var stored teacherJSON
	err := repo.db.bolt.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(teacherBucket).Get([]byte(username))
		if v == nil {
			return teacher.ErrNotFound
		}
		return errors.Wrap(json.Unmarshal(v, &stored), "decoding teacher")
	})
	if err != nil {
		return teacher.Teacher{}, err
	}
	tchr := stored.Teacher
	tchr.PasswordHash = stored.PasswordHash
	return tchr, nil
}

func (repo *teacherRepository) UpdateTeacher(tchr teacher.Teacher) (teacher.Teacher, error) {
	err := repo.db.bolt.Update(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(teacherBucket).Get([]byte(tchr.Username)); v == nil {
			return teacher.ErrNotFound
		}
		return putTeacher(tx, tchr)
	})
	if err != nil {
		return teacher.Teacher{}, err
	}
	return tchr, nil
}

func (repo *teacherRepository) SaveSession(sess teacher.Session) error {
	return repo.db.bolt.Update(func(tx *bbolt.Tx) error {
		v, err := json.Marshal(sess)
		if err != nil {
			return errors.Wrap(err, "encoding session")
		}
		return tx.Bucket(sessionBucket).Put([]byte(sess.Username), v)
	})
}

func (repo *teacherRepository) GetSession(username string) (teacher.Session, error) {
	var sess teacher.Session
	err := repo.db.bolt.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(sessionBucket).Get([]byte(username))
		if v == nil {
			return teacher.ErrNotFound
		}
		return errors.Wrap(json.Unmarshal(v, &sess), "decoding session")
	})
	if err != nil {
		return teacher.Session{}, err
	}
	return sess, nil
}

func putTeacher(tx *bbolt.Tx, tchr teacher.Teacher) error {
	stored := teacherJSON{Teacher: tchr, PasswordHash: tchr.PasswordHash}
	v, err := json.Marshal(stored)
	if err != nil {
		return errors.Wrap(err, "encoding teacher")
	}
	return tx.Bucket(teacherBucket).Put([]byte(tchr.Username), v)
}
