package main

import (
	"log"
	"os"

	"github.com/jjyf27/redpro/core"
	"github.com/jjyf27/redpro/core/course"
	"github.com/jjyf27/redpro/core/order"
	"github.com/jjyf27/redpro/core/user"
	emailsvc "github.com/jjyf27/redpro/services/email"
	"github.com/jjyf27/redpro/storage/database"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()
	core.InitValidators()

	// set up DB
	db, err := database.Open(conf)
	errAndDie(err)
	defer db.Close()
	errAndDie(database.Ping(db))
	errAndDie(database.Migrate(db))

	mailSvc := emailsvc.NewConsoleServiceMock(conf)

	// start CLI
	cli := commandLine{
		conf:   conf,
		usrSvc: user.NewService(database.NewUserRepository(db)),
		crsSvc: course.NewService(database.NewCourseRepository(db), nil, nil),
		ordSvc: order.NewService(database.NewOrderRepository(db), mailSvc, conf, nil),
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
