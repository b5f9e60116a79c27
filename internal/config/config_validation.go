// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the backend names of the merged config. Required fields
// are checked per binary by the view validators below.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Dialect {
	case "", DialectPostgres, DialectSQLite:
	default:
		return fmt.Errorf("%w: unknown dialect %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Dialect)
	}

	switch cfg.Storage.Ledger.Backend {
	case "", LedgerSQL, LedgerMemory:
	default:
		return fmt.Errorf("%w: unknown ledger backend %q", ErrInvalidStorageConfigs, cfg.Storage.Ledger.Backend)
	}

	switch cfg.Storage.Ciphertexts.Backend {
	case "", CiphertextsDB, CiphertextsState, CiphertextsFiles, CiphertextsS3:
	default:
		return fmt.Errorf("%w: unknown ciphertext backend %q", ErrInvalidStorageConfigs, cfg.Storage.Ciphertexts.Backend)
	}

	return nil
}

func (cfg *StructuredConfig) validateServer() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	st := cfg.Storage
	if st.Ledger.Backend == LedgerSQL && st.DB.DSN == "" {
		return fmt.Errorf("%w: sql ledger needs a DSN", ErrInvalidStorageConfigs)
	}
	if st.Ciphertexts.Backend == CiphertextsDB && st.Ledger.Backend != LedgerSQL {
		return fmt.Errorf("%w: db ciphertexts need the sql ledger", ErrInvalidStorageConfigs)
	}
	if st.Ciphertexts.Backend == CiphertextsFiles && st.Ciphertexts.Dir == "" {
		return fmt.Errorf("%w: files ciphertexts need a directory", ErrInvalidStorageConfigs)
	}
	if st.Ciphertexts.Backend == CiphertextsS3 && st.S3.Bucket == "" {
		return fmt.Errorf("%w: s3 ciphertexts need a bucket", ErrInvalidStorageConfigs)
	}

	if cfg.Attestation.PublicKeyPath == "" || cfg.Attestation.Issuer == "" {
		return ErrInvalidKeyConfigs
	}

	if cfg.Workers.SweepInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.SessionFile == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.FHE.PublicKeyPath == "" {
		return ErrInvalidKeyConfigs
	}

	return nil
}

func (cfg *OracleConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.FHE.SecretKeyPath == "" || cfg.Attestation.PrivateKeyPath == "" || cfg.Attestation.Issuer == "" {
		return ErrInvalidKeyConfigs
	}

	if cfg.Workers.PollInterval <= 0 || cfg.Workers.BatchSize <= 0 || cfg.Workers.MaxAttempts <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
