package main

import (
	"fmt"

	"github.com/mkarev/go-school-admin/internal/adapter"
	"github.com/mkarev/go-school-admin/internal/client"
	"github.com/mkarev/go-school-admin/internal/config"
	"github.com/mkarev/go-school-admin/internal/logger"
	"github.com/mkarev/go-school-admin/internal/service"
	"github.com/mkarev/go-school-admin/internal/session"
	"github.com/mkarev/go-school-admin/internal/store"
	"github.com/mkarev/go-school-admin/internal/tui"
	"github.com/mkarev/go-school-admin/internal/workers"
	"github.com/mkarev/go-school-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("school-admin-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	sessions := session.NewStore(localStorage.SessionRepository, log)
	services := service.NewClientServices(sessions, serverAdapter)
	jobs := workers.NewWorkers(cfg.Workers, sessions, services.AuthService, log)

	ui, err := tui.New(services, sessions, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, sessions, ui, jobs, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
