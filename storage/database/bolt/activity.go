package boltdb

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"go.etcd.io/bbolt"

	"github.com/mergington/highschool/core/activity"
)

type activityRepository struct {
	db *DB
}

var _ activity.Repository = (*activityRepository)(nil)

func NewActivityRepository(db *DB) activity.Repository {
	return &activityRepository{db: db}
}

func (repo *activityRepository) CreateActivity(act activity.Activity) (activity.Activity, error) {
	err := repo.db.bolt.Update(func(tx *bbolt.Tx) error {
		return putActivity(tx, act)
	})
	if err != nil {
		return activity.Activity{}, err
	}
	return act, nil
}

func (repo *activityRepository) QueryAllActivities() ([]activity.Activity, error) {
	acts := make([]activity.Activity, 0)
	err := repo.db.bolt.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(activityBucket).ForEach(func(k, v []byte) error {
			var act activity.Activity
			if err := json.Unmarshal(v, &act); err != nil {
				return errors.Wrap(err, "decoding activity")
			}
			acts = append(acts, act)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return acts, nil
}

func (repo *activityRepository) GetActivityByName(name string) (activity.Activity, error) {
	var act activity.Activity
	err := repo.db.bolt.View(func(tx *bbolt.Tx) error {
		var err error
		act, err = getActivity(tx, name)
		return err
	})
	if err != nil {
		return activity.Activity{}, err
	}
	return act, nil
}

func (repo *activityRepository) AddParticipant(name, email string) (activity.Activity, error) {
	var act activity.Activity
	err := repo.db.bolt.Update(func(tx *bbolt.Tx) error {
		var err error
		if act, err = getActivity(tx, name); err != nil {
			return err
		}
		// duplicate check runs before the capacity check
		if act.HasParticipant(email) {
			return activity.ErrAlreadyRegistered
		}
		if act.IsFull() {
			return activity.ErrCapacityExceeded
		}
		act.Participants = append(act.Participants, email)
		act.UpdatedAt = time.Now().UTC()
		return putActivity(tx, act)
	})
	if err != nil {
		return activity.Activity{}, err
	}
	return act, nil
}

func (repo *activityRepository) RemoveParticipant(name, email string) (activity.Activity, error) {
	var act activity.Activity
	err := repo.db.bolt.Update(func(tx *bbolt.Tx) error {
		var err error
		if act, err = getActivity(tx, name); err != nil {
			return err
		}
		if !act.HasParticipant(email) {
			return activity.ErrNotRegistered
		}
		participants := make([]string, 0, len(act.Participants)-1)
		for _, p := range act.Participants {
			if p != email {
				participants = append(participants, p)
			}
		}
		act.Participants = participants
		act.UpdatedAt = time.Now().UTC()
		return putActivity(tx, act)
	})
	if err != nil {
		return activity.Activity{}, err
	}
	return act, nil
}

func getActivity(tx *bbolt.Tx, name string) (activity.Activity, error) {
	var act activity.Activity
	v := tx.Bucket(activityBucket).Get([]byte(name))
	if v == nil {
		return activity.Activity{}, activity.ErrNotFound
	}
	if err := json.Unmarshal(v, &act); err != nil {
		return activity.Activity{}, errors.Wrap(err, "decoding activity")
	}
	return act, nil
}

func putActivity(tx *bbolt.Tx, act activity.Activity) error {
	v, err := json.Marshal(act)
	if err != nil {
		return errors.Wrap(err, "encoding activity")
	}
	return tx.Bucket(activityBucket).Put([]byte(act.Name), v)
}
