package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-item-keeper/internal/config"
	myHTTP "github.com/MKhiriev/go-item-keeper/internal/handler/http"
	"github.com/MKhiriev/go-item-keeper/internal/logger"
	"github.com/MKhiriev/go-item-keeper/internal/notify"
	"github.com/MKhiriev/go-item-keeper/internal/server"
	"github.com/MKhiriev/go-item-keeper/internal/service"
	"github.com/MKhiriev/go-item-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-item-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	if err := store.EnsureFirstSuperuser(ctx, storages.UserRepository, cfg.App, log); err != nil {
		log.Fatal().Err(err).Msg("error seeding first superuser")
	}

	var notifier notify.Notifier = notify.NopNotifier{}
	if cfg.Email.SMTPHost != "" {
		notifier = notify.NewEmailNotifier(cfg.Email, log)
	}

	services := service.NewServices(storages, cfg.App, notifier, log)
	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
