package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-farm-twin/internal/adapter"
	"github.com/MKhiriev/go-farm-twin/internal/client"
	"github.com/MKhiriev/go-farm-twin/internal/config"
	"github.com/MKhiriev/go-farm-twin/internal/fhe"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/service"
	"github.com/MKhiriev/go-farm-twin/internal/store"
	"github.com/MKhiriev/go-farm-twin/internal/tui"
)

func main() {
	log := logger.NewClientLogger("farm-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	services := service.NewClientServices(serverAdapter, store.NewSessionFile(cfg.Adapter.SessionFile), loadEncryptor(cfg, log))
	app := client.NewApp(services, serverAdapter, tui.New(services, log), log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = app.Run(ctx, cfg.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

// loadEncryptor returns nil when the FHE public key cannot be loaded; the
// commands that encrypt then fail with service.ErrNoPublicKey.
func loadEncryptor(cfg *config.ClientConfig, log *logger.Logger) service.Encryptor {
	params, err := fhe.NewParameters(cfg.FHE.LogN, cfg.FHE.PlaintextModulus)
	if err != nil {
		log.Err(err).Msg("error building FHE parameters")
		return nil
	}

	pk, err := fhe.LoadPublicKey(cfg.FHE.PublicKeyPath, params)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Err(err).Msg("error loading FHE public key")
		}
		return nil
	}

	return fhe.NewEncryptor(params, pk)
}
