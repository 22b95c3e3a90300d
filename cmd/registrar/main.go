package main

import (
	"context"
	"fmt"

	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/config"
	myHTTP "github.com/johan-ferguson-ai/signalsurge-k8s/internal/handler/http"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/logger"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/server"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/service"
	"github.com/johan-ferguson-ai/signalsurge-k8s/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("registrar")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectSqlite(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to storage")
	}
	defer db.Close()

	servers := store.NewServerRepository(db, log)
	services := service.NewServices(cfg.App, servers, log)

	handler := myHTTP.NewHandler(services, buildVersion, log)

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
