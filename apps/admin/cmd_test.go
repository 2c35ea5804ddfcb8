package main

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mergington/highschool/core/activity"
	"github.com/mergington/highschool/core/teacher"
	"github.com/mergington/highschool/services/email"
	"github.com/mergington/highschool/storage/database/dummy"
	"github.com/mergington/highschool/tests"
)

func TestMain(m *testing.M) {
	logger = log.New(io.Discard, "", 0)
	os.Exit(m.Run())
}

func newTestCLI(t *testing.T) (*commandLine, teacher.Repository) {
	t.Helper()

	db, err := dummydb.Open()
	if err != nil {
		t.Fatalf("newTestCLI() failed: %v", err)
	}
	teacherRepo := dummydb.NewTeacherRepository(db)
	cli := &commandLine{
		activitySvc: activity.NewService(dummydb.NewActivityRepository(db), emailsvc.NewConsoleServiceMock()),
		teacherSvc:  teacher.NewService(teacherRepo),
	}
	return cli, teacherRepo
}

func mockPassword(t *testing.T, pwd string) {
	t.Helper()
	orig := readPasswordFunc
	readPasswordFunc = func(fd int) ([]byte, error) { return []byte(pwd), nil }
	t.Cleanup(func() { readPasswordFunc = orig })
}

func Test_commandLine_run_addteacher(t *testing.T) {
	cli, repo := newTestCLI(t)
	mockPassword(t, "S3cur3-Pass!")

	err := cli.run([]string{"admin", "addteacher",
		"-username", "mrodriguez", "-name", "Ms. Rodriguez", "-email", "rodriguez@mergington.edu"})
	assert.NoError(t, err)

	tchr, err := repo.GetTeacherByUsername("mrodriguez")
	assert.NoError(t, err)
	assert.NoError(t, tchr.CheckPassword("S3cur3-Pass!"))

	// duplicate username
	err = cli.run([]string{"admin", "addteacher",
		"-username", "mrodriguez", "-name", "Ms. Rodriguez", "-email", "rodriguez@mergington.edu"})
	assert.Equal(t, teacher.ErrUsernameExists, err)

	// missing flags
	err = cli.run([]string{"admin", "addteacher", "-username", "mrivera"})
	assert.Equal(t, errHelp, err)
}

func Test_commandLine_run_resetpassword(t *testing.T) {
	cli, repo := newTestCLI(t)

	testutil.CreateTeacher(t, repo, "mrodriguez", "Ms. Rodriguez", "rodriguez@mergington.edu", "Old-Pass-123")
	mockPassword(t, "New-Pass-456")

	err := cli.run([]string{"admin", "resetpassword", "-username", "mrodriguez"})
	assert.NoError(t, err)

	tchr, _ := repo.GetTeacherByUsername("mrodriguez")
	assert.NoError(t, tchr.CheckPassword("New-Pass-456"))

	err = cli.run([]string{"admin", "resetpassword", "-username", "ghost"})
	assert.Equal(t, teacher.ErrNotFound, err)
}

func Test_commandLine_run_seed(t *testing.T) {
	cli, _ := newTestCLI(t)

	assert.NoError(t, cli.run([]string{"admin", "seed"}))

	acts, err := cli.activitySvc.QueryAll()
	assert.NoError(t, err)
	assert.Len(t, acts, len(seedActivities))

	// seeding again skips existing activities
	assert.NoError(t, cli.run([]string{"admin", "seed"}))
	acts, _ = cli.activitySvc.QueryAll()
	assert.Len(t, acts, len(seedActivities))
}

func Test_commandLine_run_help(t *testing.T) {
	cli, _ := newTestCLI(t)

	assert.Equal(t, errHelp, cli.run([]string{"admin"}))
	assert.Equal(t, errHelp, cli.run([]string{"admin", "frobnicate"}))
}
