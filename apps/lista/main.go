package main

import (
	"bufio"
	"os"

	"github.com/jmnolasco/pasedelista/core"
	"github.com/jmnolasco/pasedelista/core/activity"
	"github.com/jmnolasco/pasedelista/core/attendance"
	"github.com/jmnolasco/pasedelista/core/group"
	"github.com/jmnolasco/pasedelista/core/session"
	"github.com/jmnolasco/pasedelista/core/student"
	"github.com/jmnolasco/pasedelista/core/user"
	logsvc "github.com/jmnolasco/pasedelista/services/logger"
	"github.com/jmnolasco/pasedelista/storage/kvfile"
	"github.com/jmnolasco/pasedelista/storage/kvmem"
	"github.com/jmnolasco/pasedelista/storage/statedb"
	"github.com/jmnolasco/pasedelista/ui"
)

func main() {
	defer os.Exit(0)

	logger := logsvc.NewGommonLogger()

	// set up the persistent store and load the state
	kv, err := kvfile.Open(core.Conf.GetString("dataDir"))
	errAndDie(logger, err)
	db, err := statedb.Open(kv, logger)
	errAndDie(logger, err)

	svc := ui.Services{
		Users:      user.NewService(statedb.NewUserRepository(db)),
		Groups:     group.NewService(statedb.NewGroupRepository(db)),
		Students:   student.NewService(statedb.NewStudentRepository(db)),
		Attendance: attendance.NewService(statedb.NewAttendanceRepository(db)),
		Activity:   activity.NewService(statedb.NewActivityRepository(db)),
	}
	errAndDie(logger, svc.Users.EnsureDefaultAdmin())

	// the session only lives as long as the process
	sess := session.NewStore(kvmem.Open())

	cli := &commandLine{
		in:   bufio.NewScanner(os.Stdin),
		log:  logger,
		kv:   kv,
		sess: sess,
		svc:  svc,
	}
	if err := cli.run(); err != nil {
		logger.Fatal("%v", err)
	}
}

func errAndDie(logger core.Logger, err error) {
	if err != nil {
		logger.Fatal("%v", err)
	}
}
