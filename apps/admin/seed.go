package main

import (
	"github.com/mergington/highschool/core/activity"
)

// seedActivities is the initial catalog of extracurricular activities.
var seedActivities = []activity.NewActivity{
	{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Mondays and Fridays, 3:30 PM - 4:30 PM",
		MaxParticipants: 12,
	},
	{
		Name:            "Programming Class",
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
	},
	{
		Name:            "Gym Class",
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
	},
	{
		Name:            "Soccer Team",
		Description:     "Join the school soccer team and compete in matches",
		Schedule:        "Tuesdays and Thursdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 22,
	},
	{
		Name:            "Art Club",
		Description:     "Explore painting, drawing and other visual arts",
		Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
		MaxParticipants: 15,
	},
	{
		Name:            "Drama Club",
		Description:     "Act, direct and produce the school plays",
		Schedule:        "Mondays and Wednesdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 20,
	},
	{
		Name:            "Math Club",
		Description:     "Solve challenging problems and prepare for math competitions",
		Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 10,
	},
	{
		Name:            "Debate Team",
		Description:     "Develop public speaking and argumentation skills",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
	},
}

// seed loads seedActivities into the store, skipping any that already exist.
func (cli *commandLine) seed() error {
	for _, na := range seedActivities {
		na := na
		if _, err := cli.activitySvc.GetByName(na.Name); err == nil {
			continue
		} else if err != activity.ErrNotFound {
			return err
		}
		if err := na.Validate(); err != nil {
			return err
		}
		if _, err := cli.activitySvc.Create(na); err != nil {
			return err
		}
		logger.Printf("seeded activity %q", na.Name)
	}
	return nil
}
