package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/Kenn-C/SAVINGS-TRACKER/internal/app"
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/config"
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/logger"
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/service"
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/store"
	"github.com/Kenn-C/SAVINGS-TRACKER/internal/tui"
	"github.com/Kenn-C/SAVINGS-TRACKER/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// Missing .env is fine; real env vars and flags still apply.
	_ = godotenv.Load()

	log := logger.NewTUILogger("savings-tracker")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storage")
	}

	services := service.NewServices(storages, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	application, err := app.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = application.Run(); err != nil {
		log.Fatal().Err(err).Msg("run error")
	}
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
