package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-farm-twin/internal/adapter"
	"github.com/MKhiriev/go-farm-twin/internal/attestation"
	"github.com/MKhiriev/go-farm-twin/internal/config"
	"github.com/MKhiriev/go-farm-twin/internal/fhe"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/service"
	"github.com/MKhiriev/go-farm-twin/internal/workers"
	"github.com/MKhiriev/go-farm-twin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("farm-oracle")
	cfg, err := config.GetOracleConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = logger.NewLeveledLogger("farm-oracle", cfg.App.LogLevel)

	params, err := fhe.NewParameters(cfg.FHE.LogN, cfg.FHE.PlaintextModulus)
	if err != nil {
		log.Fatal().Err(err).Msg("error building FHE parameters")
	}

	secretKey, err := fhe.LoadSecretKey(cfg.FHE.SecretKeyPath, params)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading FHE secret key")
	}

	signingKey, err := attestation.LoadPrivateKey(cfg.Attestation.PrivateKeyPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading attestation key")
	}

	oracleAdapter, err := adapter.NewHTTPOracleAdapter(cfg.Adapter)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating oracle adapter")
	}

	oracle := service.NewOracleService(
		oracleAdapter,
		fhe.NewDecryptor(params, secretKey),
		attestation.NewSigner(signingKey, cfg.Attestation.Issuer),
		cfg.Workers,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	log.Info().Str("server", cfg.Adapter.ServerURL).Msg("decryption oracle started")
	workers.NewWorkers(workers.NewOracleRelay(oracle, cfg.Workers.PollInterval, log)).Run(ctx)
	log.Info().Msg("decryption oracle stopped")
}
