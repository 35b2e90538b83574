package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/appetiteclub/apt"
	"github.com/appetiteclub/apt/middleware"

	"github.com/legrosarbre/backend/internal/contact"
	"github.com/legrosarbre/backend/internal/content"
	"github.com/legrosarbre/backend/internal/events"
	"github.com/legrosarbre/backend/internal/mongo"
	"github.com/legrosarbre/backend/internal/reservations"
)

const (
	appNamespace = "LEGROSARBRE"
	appName      = "legrosarbre"
	appVersion   = "0.1.0"
)

func main() {
	config, err := apt.LoadConfig(appNamespace, os.Args[1:])
	if err != nil {
		log.Fatalf("%s(%s) cannot setup with error: %v", appName, appVersion, err)
	}

	logLevel, _ := config.GetString("log.level")
	logger := apt.NewLogger(logLevel)

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	lifecycle := []interface{}{}

	reservationRepo := mongo.NewReservationRepo(config, logger)
	err = reservationRepo.Start(ctx)
	if err != nil {
		log.Fatalf("%s(%s) cannot start reservation repository: %v", appName, appVersion, err)
	}

	repoLifecycle := apt.LifecycleHooks{
		OnStop: func(ctx context.Context) error {
			return reservationRepo.Stop(ctx)
		},
	}
	lifecycle = append(lifecycle, repoLifecycle)

	db := reservationRepo.GetDatabase()
	if db == nil {
		err := errors.New("cannot get reservation repo database")
		log.Fatalf("%s(%s) cannot initialize database: %v", appName, appVersion, err)
	}

	contactRepo := mongo.NewContactMessageRepo(db)

	natsURL := config.GetStringOrDef("nats.url", "nats://localhost:4222")

	publisher, err := events.NewNATSPublisher(natsURL)
	if err != nil {
		log.Fatalf("%s(%s) cannot connect to NATS publisher: %v", appName, appVersion, err)
	}

	publisherLifecycle := apt.LifecycleHooks{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	}
	lifecycle = append(lifecycle, publisherLifecycle)

	reservationHandler := reservations.NewHandler(
		reservations.HandlerDeps{
			Repo:      reservationRepo,
			Publisher: publisher,
		},
		config,
		logger,
	)

	contactHandler := contact.NewHandler(
		contact.HandlerDeps{
			Repo: contactRepo,
		},
		config,
		logger,
	)

	contentHandler, err := content.NewHandler(config, logger)
	if err != nil {
		log.Fatalf("%s(%s) cannot load site content: %v", appName, appVersion, err)
	}

	// Public site API, CORS stays on.
	stack := middleware.DefaultStack(middleware.StackOptions{
		Logger: logger,
	})

	options := []apt.Option{
		apt.WithConfig(config),
		apt.WithLogger(logger),
		apt.WithHTTPMiddleware(stack...),
		apt.WithHTTPServerModules("web.port", reservationHandler, contactHandler, contentHandler),
		apt.WithLifecycle(lifecycle...),
		apt.WithHealthChecks(appName),
	}

	ms := apt.NewMicro(options...)
	logger.Infof("Starting %s(%s)", appName, appVersion)

	if err := ms.Run(ctx); err != nil {
		_ = reservationRepo.Stop(context.Background())
		log.Fatalf("%s(%s) stopped with error: %v", appName, appVersion, err)
	}

	logger.Infof("%s(%s) stopped", appName, appVersion)
}
