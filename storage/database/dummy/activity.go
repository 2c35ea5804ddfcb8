package dummydb

import (
	"time"

	"github.com/mergington/highschool/core/activity"
)

type activityRepository struct {
	db *activityTable
}

var _ activity.Repository = (*activityRepository)(nil)

func NewActivityRepository(db *DB) activity.Repository {
	return &activityRepository{db: db.activity}
}

func (repo *activityRepository) CreateActivity(act activity.Activity) (activity.Activity, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[act.Name] = &act
	return act, nil
}

func (repo *activityRepository) QueryAllActivities() ([]activity.Activity, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	acts := make([]activity.Activity, 0, len(repo.db.table))
	for _, act := range repo.db.table {
		acts = append(acts, *act)
	}
	return acts, nil
}

func (repo *activityRepository) GetActivityByName(name string) (activity.Activity, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if act, ok := repo.db.table[name]; ok {
		return *act, nil
	}
	return activity.Activity{}, activity.ErrNotFound
}

func (repo *activityRepository) AddParticipant(name, email string) (activity.Activity, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	act, ok := repo.db.table[name]
	if !ok {
		return activity.Activity{}, activity.ErrNotFound
	}
	// duplicate check runs before the capacity check
	if act.HasParticipant(email) {
		return activity.Activity{}, activity.ErrAlreadyRegistered
	}
	if act.IsFull() {
		return activity.Activity{}, activity.ErrCapacityExceeded
	}
	act.Participants = append(act.Participants, email)
	act.UpdatedAt = time.Now().UTC()
	return *act, nil
}

func (repo *activityRepository) RemoveParticipant(name, email string) (activity.Activity, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	act, ok := repo.db.table[name]
	if !ok {
		return activity.Activity{}, activity.ErrNotFound
	}
	if !act.HasParticipant(email) {
		return activity.Activity{}, activity.ErrNotRegistered
	}
	participants := make([]string, 0, len(act.Participants)-1)
	for _, p := range act.Participants {
		if p != email {
			participants = append(participants, p)
		}
	}
	act.Participants = participants
	act.UpdatedAt = time.Now().UTC()
	return *act, nil
}
