// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the merged configuration shared by every binary of the
// farm twin: the contract host, the decryption oracle, the CLI client and
// the key generator. Each binary reads the view it needs through
// GetStructuredConfig, GetClientConfig, GetOracleConfig or GetKeygenConfig.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env:       environment variable name of a scalar field.
type StructuredConfig struct {
	App         App         `envPrefix:"APP_"`
	Storage     Storage     `envPrefix:"STORAGE_"`
	Server      Server      `envPrefix:"SERVER_"`
	FHE         FHE         `envPrefix:"FHE_"`
	Attestation Attestation `envPrefix:"ATTESTATION_"`
	Adapter     Adapter     `envPrefix:"ADAPTER_"`
	Workers     Workers     `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional JSON config file. Env: CONFIG, flag -c.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the positional arguments left after flag parsing. The CLI
	// client reads its subcommand from here.
	Args []string
}

// App holds session token settings and contract behavior switches.
type App struct {
	// TokenSignKey signs HS256 session tokens. Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of session tokens. Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the session lifetime. Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is served at /api/version. Env: APP_VERSION
	Version string `env:"VERSION"`

	// RequestTTL bounds how long a pending decryption request waits for its
	// callback. Env: APP_REQUEST_TTL
	RequestTTL time.Duration `env:"REQUEST_TTL"`

	// DisableRequestExpiry keeps pending requests until their callback
	// arrives. Env: APP_DISABLE_REQUEST_EXPIRY
	DisableRequestExpiry bool `env:"DISABLE_REQUEST_EXPIRY"`

	// LogLevel is a zerolog level name. Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the persistence backends.
type Storage struct {
	DB          DB          `envPrefix:"DB_"`
	Ledger      Ledger      `envPrefix:"LEDGER_"`
	Ciphertexts Ciphertexts `envPrefix:"CIPHERTEXTS_"`
	S3          S3          `envPrefix:"S3_"`
}

// DB holds the relational database connection.
type DB struct {
	// Dialect is "postgres" or "sqlite". Env: STORAGE_DB_DIALECT
	Dialect string `env:"DIALECT"`

	// DSN is the connection string. Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Ledger selects where contract state lives.
type Ledger struct {
	// Backend is "sql" or "memory". Env: STORAGE_LEDGER_BACKEND
	Backend string `env:"BACKEND"`
}

// Ciphertexts selects where ciphertext blobs live.
type Ciphertexts struct {
	// Backend is "db", "state", "files" or "s3". Env: STORAGE_CIPHERTEXTS_BACKEND
	Backend string `env:"BACKEND"`

	// Dir is the directory of the "files" backend. Env: STORAGE_CIPHERTEXTS_DIR
	Dir string `env:"DIR"`
}

// S3 configures the object storage backend. Any S3 compatible endpoint
// (MinIO in development) works.
type S3 struct {
	Endpoint  string `env:"ENDPOINT"`
	Region    string `env:"REGION"`
	Bucket    string `env:"BUCKET"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
}

// Server holds the inbound listeners of the contract host.
type Server struct {
	// HTTPAddress is host:port of the REST API. Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is host:port of the health service. Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout caps a single request. Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// FHE holds the BGV parameters and key file locations.
type FHE struct {
	LogN             int    `env:"LOG_N"`
	PlaintextModulus uint64 `env:"PLAINTEXT_MODULUS"`
	PublicKeyPath    string `env:"PUBLIC_KEY_PATH"`
	SecretKeyPath    string `env:"SECRET_KEY_PATH"`
}

// Attestation holds the oracle signing key locations.
type Attestation struct {
	PrivateKeyPath string `env:"PRIVATE_KEY_PATH"`
	PublicKeyPath  string `env:"PUBLIC_KEY_PATH"`
	Issuer         string `env:"ISSUER"`
}

// Adapter holds outbound settings of the client and the oracle.
type Adapter struct {
	// ServerURL is the base URL of the contract host. Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout caps a single outbound call. Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SessionFile stores the client's session token. Env: ADAPTER_SESSION_FILE
	SessionFile string `env:"SESSION_FILE"`
}

// Workers holds background job settings.
type Workers struct {
	// SweepInterval is how often expired requests are pruned.
	SweepInterval time.Duration `env:"SWEEP_INTERVAL"`

	// PollInterval is how often the oracle polls for pending requests.
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// BatchSize caps requests handled per oracle poll.
	BatchSize int `env:"BATCH_SIZE"`

	// MaxAttempts caps callback deliveries per request.
	MaxAttempts int `env:"MAX_ATTEMPTS"`
}

// GetStructuredConfig loads and validates the contract host configuration.
//
// Sources are merged with mergo, so the first source that sets a field wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path taken from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := load()
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}

func load() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// RequestTTL returns the effective pending request lifetime; zero disables
// expiry.
func (cfg *StructuredConfig) RequestTTL() time.Duration {
	if cfg.App.DisableRequestExpiry {
		return 0
	}
	return cfg.App.RequestTTL
}
