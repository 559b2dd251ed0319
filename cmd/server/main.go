package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-bug-triage/internal/adapter"
	"github.com/MKhiriev/go-bug-triage/internal/clock"
	"github.com/MKhiriev/go-bug-triage/internal/config"
	"github.com/MKhiriev/go-bug-triage/internal/handler"
	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/internal/queue"
	"github.com/MKhiriev/go-bug-triage/internal/server"
	"github.com/MKhiriev/go-bug-triage/internal/service"
	"github.com/MKhiriev/go-bug-triage/internal/store"
	"github.com/MKhiriev/go-bug-triage/internal/workers"
	"github.com/MKhiriev/go-bug-triage/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-bug-triage-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("log_level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}
	if buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnection(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	activityQueue, err := queue.New(ctx, cfg.Queue, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating activity queue")
	}

	clk := clock.Real()
	classifier, err := adapter.NewHTTPClassifier(cfg.Classifier, clk, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating severity classifier")
	}

	storages := store.NewStorages(db, log)
	services, err := service.NewServices(storages, activityQueue, classifier, *cfg, clk, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(
		workers.NewAuditWorker(activityQueue, storages.ActivityRepository, cfg.Workers, log),
	)
	// workers outlive the signal so that activities recorded by in-flight
	// requests are still delivered
	backgroundWorkers.Run(context.WithoutCancel(ctx))

	srv.RunServer(ctx)

	backgroundWorkers.Stop()
	if err = activityQueue.Close(); err != nil {
		log.Err(err).Msg("error closing activity queue")
	}
	log.Info().Msg("bye")
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
