package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-card-keeper/internal/adapter"
	"github.com/MKhiriev/go-card-keeper/internal/config"
	"github.com/MKhiriev/go-card-keeper/internal/engine"
	httphandler "github.com/MKhiriev/go-card-keeper/internal/handler/http"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
	"github.com/MKhiriev/go-card-keeper/internal/server"
	"github.com/MKhiriev/go-card-keeper/internal/service"
	"github.com/MKhiriev/go-card-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("card-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	st, err := store.Open(ctx, cfg.Collection, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening collection")
	}

	transport := adapter.NewHTTPSyncTransport()
	eng := engine.NewSQLiteEngine(transport, log)

	coordinator := service.NewCoordinator(st)
	executor := service.NewSyncExecutor(coordinator, eng, cfg.Sync.Credential(), log)
	scheduler := service.NewScheduler(executor, cfg.Scheduler, log)
	bridge := service.NewBridge(coordinator, eng, executor, scheduler, cfg.App, log)

	handler := httphandler.NewHandler(bridge, st, cfg, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	scheduler.Start()

	srv.RunServer()

	// the transport is down; drain background sync work, then release the
	// collection
	scheduler.Stop()
	if err := st.Close(); err != nil {
		log.Err(err).Msg("error closing collection")
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
