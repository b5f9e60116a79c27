package config

import (
	"fmt"
	"time"
)

// ClientConfig is the view of [StructuredConfig] used by the CLI client.
type ClientConfig struct {
	Adapter Adapter
	FHE     FHE
	App     App

	// Args are the subcommand and its arguments.
	Args []string
}

// OracleConfig is the view used by the decryption oracle.
type OracleConfig struct {
	Adapter     Adapter
	FHE         FHE
	Attestation Attestation
	Workers     Workers
	App         App
}

// KeygenConfig is the view used by the key generator.
type KeygenConfig struct {
	FHE         FHE
	Attestation Attestation
}

// GetClientConfig loads the merged config and returns the client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: cfg.Adapter,
		FHE:     cfg.FHE,
		App:     cfg.App,
		Args:    cfg.Args,
	}

	return clientCfg, clientCfg.validate()
}

// GetOracleConfig loads the merged config and returns the oracle view.
func GetOracleConfig() (*OracleConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	oracleCfg := &OracleConfig{
		Adapter:     cfg.Adapter,
		FHE:         cfg.FHE,
		Attestation: cfg.Attestation,
		Workers:     cfg.Workers,
		App:         cfg.App,
	}

	return oracleCfg, oracleCfg.validate()
}

// GetKeygenConfig loads the merged config and returns the key paths.
func GetKeygenConfig() (*KeygenConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	keygenCfg := &KeygenConfig{FHE: cfg.FHE, Attestation: cfg.Attestation}
	if keygenCfg.FHE.PublicKeyPath == "" || keygenCfg.FHE.SecretKeyPath == "" ||
		keygenCfg.Attestation.PrivateKeyPath == "" || keygenCfg.Attestation.PublicKeyPath == "" {
		return nil, ErrInvalidKeyConfigs
	}

	return keygenCfg, nil
}

// ChaincodeConfig is the view used by the Fabric chaincode.
type ChaincodeConfig struct {
	FHE         FHE
	Attestation Attestation
	App         App

	// RequestTTL is the effective pending request lifetime.
	RequestTTL time.Duration
}

// GetChaincodeConfig reads environment variables over the defaults only.
// The peer launches chaincode with its own flags, which the client flag set
// does not know.
func GetChaincodeConfig() (*ChaincodeConfig, error) {
	b := newConfigBuilder()
	b.args = nil

	cfg, err := b.withEnv().withDefaults().build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return &ChaincodeConfig{
		FHE:         cfg.FHE,
		Attestation: cfg.Attestation,
		App:         cfg.App,
		RequestTTL:  cfg.RequestTTL(),
	}, nil
}
