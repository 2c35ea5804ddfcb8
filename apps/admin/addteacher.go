package main

import (
	"github.com/mergington/highschool/core/teacher"
)

// addTeacher creates a teacher account that can manage announcements.
func (cli *commandLine) addTeacher(uname, name, email, pwd string) error {
	nt := teacher.NewTeacher{
		Username: uname,
		Name:     name,
		Email:    email,
		Password: pwd,
	}
	if err := nt.Validate(); err != nil {
		return err
	}
	tchr, err := cli.teacherSvc.Create(nt)
	if err != nil {
		return err
	}
	logger.Printf("created teacher %q", tchr.Username)
	return nil
}
