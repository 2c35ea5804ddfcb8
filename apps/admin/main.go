package main

import (
	"log"
	"os"

	"github.com/mergington/highschool/core"
	"github.com/mergington/highschool/core/activity"
	"github.com/mergington/highschool/core/teacher"
	emailsvc "github.com/mergington/highschool/services/email"
	boltdb "github.com/mergington/highschool/storage/database/bolt"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up DB
	db, err := boltdb.Open(core.Conf)
	errAndDie(err)
	defer db.Close()

	// start CLI
	cli := commandLine{
		activitySvc: activity.NewService(boltdb.NewActivityRepository(db), emailsvc.NewConsoleService()),
		teacherSvc:  teacher.NewService(boltdb.NewTeacherRepository(db)),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
