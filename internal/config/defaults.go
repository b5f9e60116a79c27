package config

import "time"

// Backend names.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"

	LedgerSQL    = "sql"
	LedgerMemory = "memory"

	CiphertextsDB    = "db"
	CiphertextsState = "state"
	CiphertextsFiles = "files"
	CiphertextsS3    = "s3"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "go-farm-twin",
			TokenDuration: 24 * time.Hour,
			Version:       "dev",
			RequestTTL:    24 * time.Hour,
			LogLevel:      "debug",
		},
		Storage: Storage{
			DB:          DB{Dialect: DialectSQLite, DSN: "file:farm.db?_busy_timeout=5000&_foreign_keys=on"},
			Ledger:      Ledger{Backend: LedgerSQL},
			Ciphertexts: Ciphertexts{Backend: CiphertextsDB, Dir: "ciphertexts"},
			S3:          S3{Region: "us-east-1"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			GRPCAddress:    "localhost:9090",
			RequestTimeout: 30 * time.Second,
		},
		FHE: FHE{
			PublicKeyPath: "keys/fhe.pk",
			SecretKeyPath: "keys/fhe.sk",
		},
		Attestation: Attestation{
			PrivateKeyPath: "keys/attestation.pem",
			PublicKeyPath:  "keys/attestation.pub.pem",
			Issuer:         "farm-oracle",
		},
		Adapter: Adapter{
			ServerURL:      "http://localhost:8080",
			RequestTimeout: 30 * time.Second,
			SessionFile:    ".farm-session.json",
		},
		Workers: Workers{
			SweepInterval: time.Minute,
			PollInterval:  5 * time.Second,
			BatchSize:     16,
			MaxAttempts:   5,
		},
	}
}
