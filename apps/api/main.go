package main

import (
	"log"
	"os"

	echoapi "github.com/mergington/highschool/apps/api/echo"
	"github.com/mergington/highschool/core"
	"github.com/mergington/highschool/core/activity"
	"github.com/mergington/highschool/core/announcement"
	"github.com/mergington/highschool/core/teacher"
	emailsvc "github.com/mergington/highschool/services/email"
	logsvc "github.com/mergington/highschool/services/logger"
	boltdb "github.com/mergington/highschool/storage/database/bolt"
)

func main() {
	std := log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	// set up DB
	db, err := boltdb.Open(core.Conf)
	if err != nil {
		std.Fatal(err)
	}
	defer db.Close()

	// set up services
	var logger core.Logger
	var mailSvc core.EmailService
	if core.Conf.Debug {
		logger = logsvc.NewStdLogger(std)
		mailSvc = emailsvc.NewConsoleService()
	} else {
		logger = logsvc.NewRollbarLogger(std, core.Conf)
		mailSvc = emailsvc.NewSendgridService(logger)
	}

	activitySvc := activity.NewService(boltdb.NewActivityRepository(db), mailSvc)
	announcementSvc := announcement.NewService(boltdb.NewAnnouncementRepository(db))
	teacherSvc := teacher.NewService(boltdb.NewTeacherRepository(db))

	// start API server
	app := echoapi.NewServer(
		&echoapi.Options{
			Addr:            core.Conf.Server.Addr,
			Logger:          logger,
			ActivitySvc:     activitySvc,
			AnnouncementSvc: announcementSvc,
			TeacherSvc:      teacherSvc,
		},
	)
	app.Start()
}
