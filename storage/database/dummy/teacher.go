package dummydb

import (
	"github.com/mergington/highschool/core/teacher"
)

type teacherRepository struct {
	db *teacherTable
}

var _ teacher.Repository = (*teacherRepository)(nil)

func NewTeacherRepository(db *DB) teacher.Repository {
	return &teacherRepository{db: db.teacher}
}

func (repo *teacherRepository) CreateTeacher(tchr teacher.Teacher) (teacher.Teacher, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[tchr.Username]; ok {
		return teacher.Teacher{}, teacher.ErrUsernameExists
	}
	repo.db.table[tchr.Username] = &tchr
	return tchr, nil
}

func (repo *teacherRepository) GetTeacherByUsername(username string) (teacher.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if tchr, ok := repo.db.table[username]; ok {
		return *tchr, nil
	}
	return teacher.Teacher{}, teacher.ErrNotFound
}

func (repo *teacherRepository) UpdateTeacher(tchr teacher.Teacher) (teacher.Teacher, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[tchr.Username]; !ok {
		return teacher.Teacher{}, teacher.ErrNotFound
	}
	repo.db.table[tchr.Username] = &tchr
	return tchr, nil
}

func (repo *teacherRepository) SaveSession(sess teacher.Session) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.sessions[sess.Username] = &sess
	return nil
}

func (repo *teacherRepository) GetSession(username string) (teacher.Session, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if sess, ok := repo.db.sessions[username]; ok {
		return *sess, nil
	}
	return teacher.Session{}, teacher.ErrNotFound
}
