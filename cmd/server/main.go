package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/bank-feed/internal/config"
	"github.com/MKhiriev/bank-feed/internal/crypto"
	handler "github.com/MKhiriev/bank-feed/internal/handler/http"
	"github.com/MKhiriev/bank-feed/internal/logger"
	"github.com/MKhiriev/bank-feed/internal/scraper"
	"github.com/MKhiriev/bank-feed/internal/scraper/strategy"
	"github.com/MKhiriev/bank-feed/internal/server"
	"github.com/MKhiriev/bank-feed/internal/service"
	"github.com/MKhiriev/bank-feed/internal/source"
	"github.com/MKhiriev/bank-feed/internal/source/partner"
	"github.com/MKhiriev/bank-feed/internal/source/scrape"
	"github.com/MKhiriev/bank-feed/internal/store"
	"github.com/MKhiriev/bank-feed/internal/vault"
	"github.com/MKhiriev/bank-feed/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("bank-feed-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	vaultClient := vault.NewClient(cfg.Vault)
	cipher := crypto.NewCredentialCipher(cfg.App.MasterKey)

	engine := scraper.NewEngine(
		storages.ConnectionRepository,
		vaultClient,
		scraper.NewChromedpLauncher(cfg.Scraper),
		scraper.NewRegistry(strategy.NewDBS()),
		cfg.Scraper.Budget,
		log,
	)

	manager, err := source.NewManager(
		scrape.NewAdapter(engine),
		partner.NewAdapter(cfg.Partner, vaultClient),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error registering data source adapters")
	}

	services := service.NewServices(storages, manager, vaultClient, cipher, *cfg, log)

	backgroundWorkers := workers.NewWorkers(
		workers.NewSyncWorker(ctx, storages.ConnectionRepository, services.ConnectionService, cfg.Workers, log),
	)
	backgroundWorkers.Run()

	h := handler.NewHandler(services, cfg.App.Version, log)
	srv, err := server.NewServer(h.Init(), cfg.Server, log)
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
