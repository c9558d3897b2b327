package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	echoapi "github.com/jjyf27/redpro/apps/api/echo"
	"github.com/jjyf27/redpro/core"
	"github.com/jjyf27/redpro/core/cart"
	"github.com/jjyf27/redpro/core/contact"
	"github.com/jjyf27/redpro/core/course"
	"github.com/jjyf27/redpro/core/order"
	"github.com/jjyf27/redpro/core/user"
	emailsvc "github.com/jjyf27/redpro/services/email"
	logsvc "github.com/jjyf27/redpro/services/logger"
	"github.com/jjyf27/redpro/storage/cartfile"
	"github.com/jjyf27/redpro/storage/database"
	dummydb "github.com/jjyf27/redpro/storage/database/dummy"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	core.InitValidators()

	// set up repositories; an unreachable database falls back to the
	// in-memory catalog so visitors can keep browsing and buying
	repos, dbClose, err := setUpRepos(conf)
	if err != nil {
		logger.Warn(fmt.Sprintf("database unavailable, using built-in catalog: %v", err), err)
	}
	if dbClose != nil {
		defer func() {
			if err := dbClose(); err != nil {
				logger.Error(fmt.Sprintf("closing database: %v", err), err)
			}
		}()
	}

	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(logger, conf)
	}

	usrSvc := user.NewService(repos.user)
	crsSvc := course.NewService(repos.course, repos.sampleCourses, logger)
	ctcSvc := contact.NewService(repos.contact, mailSvc, conf)
	ordSvc := order.NewService(repos.order, mailSvc, conf, logger)

	// =========================================================================
	// Set up the shared Cart

	store, err := cartfile.Open(conf.Cart.Path)
	if err != nil {
		logger.Fatal(fmt.Sprintf("opening cart store: %v", err), err)
	}
	defer func() { _ = store.Close() }()

	cartMgr := cart.NewManager(store, cart.NewBus(), logger)
	if cartMgr.Repair() {
		logger.Info("cart repaired at boot")
	}

	// propagate sibling-process writes to this process's subscribers
	go func() {
		for range store.Changes() {
			cartMgr.NotifyExternalChange()
		}
	}()

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:       conf,
			Logger:     logger,
			UserSvc:    usrSvc,
			CourseSvc:  crsSvc,
			ContactSvc: ctcSvc,
			OrderSvc:   ordSvc,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

type repoSet struct {
	user          user.Repository
	course        course.Repository
	sampleCourses course.Repository
	contact       contact.Repository
	order         order.Repository
}

// setUpRepos wires database-backed repositories, or all-dummy ones when
// the database cannot be reached. The returned error reports the
// fallback reason; the repoSet is always usable.
func setUpRepos(conf *core.Config) (repoSet, func() error, error) {
	mem, _ := dummydb.Open()
	samples := dummydb.NewSampleCourseRepository(mem)
	fallback := repoSet{
		user:          dummydb.NewUserRepository(mem),
		course:        samples,
		sampleCourses: samples,
		contact:       dummydb.NewContactRepository(mem),
		order:         dummydb.NewOrderRepository(mem),
	}

	db, err := database.Open(conf)
	if err != nil {
		return fallback, nil, err
	}
	if err = database.Ping(db); err != nil {
		_ = db.Close()
		return fallback, nil, err
	}
	if err = database.Migrate(db); err != nil {
		_ = db.Close()
		return fallback, nil, err
	}

	return repoSet{
		user:          database.NewUserRepository(db),
		course:        database.NewCourseRepository(db),
		sampleCourses: fallback.sampleCourses,
		contact:       database.NewContactRepository(db),
		order:         database.NewOrderRepository(db),
	}, db.Close, nil
}
