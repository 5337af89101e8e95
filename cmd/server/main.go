package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/jaychenthinkfast/OneTabCloud/internal/config"
	"github.com/jaychenthinkfast/OneTabCloud/internal/handler"
	"github.com/jaychenthinkfast/OneTabCloud/internal/logger"
	"github.com/jaychenthinkfast/OneTabCloud/internal/server"
	"github.com/jaychenthinkfast/OneTabCloud/internal/service"
	"github.com/jaychenthinkfast/OneTabCloud/internal/store"
	"github.com/jaychenthinkfast/OneTabCloud/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	flags := config.RegisterServerFlags(fs)
	_ = fs.Parse(os.Args[1:])

	log := logger.NewLogger("onetabcloud-server")
	cfg, err := config.GetServerConfig(flags.Config())
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.Address).
		Str("storage_driver", cfg.Storage.Driver).
		Str("storage_dsn", cfg.Storage.DSN).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
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
