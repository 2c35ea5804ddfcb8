package dummydb

import (
	"sync"

	"github.com/mergington/highschool/core/activity"
	"github.com/mergington/highschool/core/announcement"
	"github.com/mergington/highschool/core/teacher"
)

type (
	DB struct {
		activity     *activityTable
		announcement *announcementTable
		teacher      *teacherTable
	}

	activityTable struct {
		sync.RWMutex
		table map[string]*activity.Activity
	}

	announcementTable struct {
		sync.RWMutex
		table map[string]*announcement.Announcement
	}

	teacherTable struct {
		sync.RWMutex
		table    map[string]*teacher.Teacher
		sessions map[string]*teacher.Session
	}
)

func Open() (*DB, error) {
	db := &DB{
		activity:     &activityTable{table: make(map[string]*activity.Activity)},
		announcement: &announcementTable{table: make(map[string]*announcement.Announcement)},
		teacher: &teacherTable{
			table:    make(map[string]*teacher.Teacher),
			sessions: make(map[string]*teacher.Session),
		},
	}
	return db, nil
}
