package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-tax-jurisdictions/internal/config"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/handler"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/logger"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/server"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/service"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/store"
	"github.com/MKhiriev/go-tax-jurisdictions/internal/workers"
	"github.com/MKhiriev/go-tax-jurisdictions/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(orNA(buildVersion), orNA(buildDate), orNA(buildCommit))
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("tax-server", config.DefaultLogLevel).Fatal().Err(err).Msg("error getting configs")
	}
	if buildVersion != "" && cfg.App.Version == config.DefaultVersion {
		cfg.App.Version = buildVersion
	}

	log := logger.NewLogger("tax-server", cfg.Log.Level)
	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Bool("machine_token", cfg.App.MachineToken != "").
		Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(services, cfg.Workers, log), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	log.Info().Str("version", cfg.App.Version).Msg("starting tax jurisdiction research API")
	srv.RunServer()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
