package main

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-farm-twin/internal/attestation"
	"github.com/MKhiriev/go-farm-twin/internal/config"
	"github.com/MKhiriev/go-farm-twin/internal/crypto"
	"github.com/MKhiriev/go-farm-twin/internal/fhe"
	"github.com/MKhiriev/go-farm-twin/internal/handler"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/server"
	"github.com/MKhiriev/go-farm-twin/internal/service"
	"github.com/MKhiriev/go-farm-twin/internal/store"
	"github.com/MKhiriev/go-farm-twin/internal/workers"
	"github.com/MKhiriev/go-farm-twin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("farm-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.NewLeveledLogger("farm-server", cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	params, err := fhe.NewParameters(cfg.FHE.LogN, cfg.FHE.PlaintextModulus)
	if err != nil {
		log.Fatal().Err(err).Msg("error building FHE parameters")
	}

	attestorKey, err := attestation.LoadPublicKey(cfg.Attestation.PublicKeyPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading attestor key")
	}

	contract := service.NewContract(
		storages.Ledger,
		storages.Ciphertexts,
		fhe.NewEvaluator(params),
		attestation.NewVerifier(attestorKey, cfg.Attestation.Issuer),
		cfg.RequestTTL(),
	)

	services, err := service.NewServices(contract, storages.Ledger, crypto.NewPasswordHasher(), cfg.App, buildInfo)
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

	var wg sync.WaitGroup
	if cfg.RequestTTL() > 0 {
		sweeper := workers.NewRequestSweeper(services.MaintenanceService, cfg.Workers.SweepInterval, log)
		wg.Go(func() { workers.NewWorkers(sweeper).Run(ctx) })
	}

	if err = srv.Run(ctx); err != nil {
		log.Err(err).Msg("error running server")
		stop()
	}
	wg.Wait()
}
