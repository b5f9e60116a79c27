package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-farm-twin/internal/config"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
)

// Storages bundles the ledger and ciphertext storage selected by the config.
type Storages struct {
	Ledger      Ledger
	Ciphertexts CiphertextStorage

	// State is set for the memory ledger only.
	State *MemoryState

	// DB is set for the SQL ledger only.
	DB *DB
}

// NewStorages opens the configured backends and migrates SQL schemas.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	s := &Storages{}

	switch cfg.Ledger.Backend {
	case config.LedgerSQL:
		db, err := NewConnectDB(ctx, cfg.DB, log)
		if err != nil {
			return nil, err
		}
		if err = db.Migrate(); err != nil {
			log.Err(err).Str("func", "NewStorages").Msg("error migrating database")
			db.Close()
			return nil, err
		}
		s.DB = db
		s.Ledger = NewSQLLedger(db)
	case config.LedgerMemory:
		s.State = NewMemoryState()
		s.Ledger = NewMemoryLedger(s.State)
	default:
		return nil, fmt.Errorf("%w: ledger %q", ErrUnknownBackend, cfg.Ledger.Backend)
	}

	ciphertexts, err := s.newCiphertexts(ctx, cfg)
	if err != nil {
		s.Ledger.Close()
		return nil, err
	}
	s.Ciphertexts = ciphertexts

	log.Info().
		Str("func", "NewStorages").
		Str("ledger", cfg.Ledger.Backend).
		Str("ciphertexts", cfg.Ciphertexts.Backend).
		Msg("storages initialized")

	return s, nil
}

func (s *Storages) newCiphertexts(ctx context.Context, cfg config.Storage) (CiphertextStorage, error) {
	switch cfg.Ciphertexts.Backend {
	case config.CiphertextsDB:
		if s.DB == nil {
			return nil, fmt.Errorf("%w: ciphertexts %q need the sql ledger", ErrUnknownBackend, cfg.Ciphertexts.Backend)
		}
		return NewDBCiphertextStorage(s.DB), nil
	case config.CiphertextsState:
		if s.State == nil {
			return nil, fmt.Errorf("%w: ciphertexts %q need the memory ledger", ErrUnknownBackend, cfg.Ciphertexts.Backend)
		}
		return NewStateCiphertextStorage(s.State), nil
	case config.CiphertextsFiles:
		return NewFileCiphertextStorage(cfg.Ciphertexts.Dir)
	case config.CiphertextsS3:
		client, err := NewS3Client(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return NewS3CiphertextStorage(client, cfg.S3.Bucket), nil
	default:
		return nil, fmt.Errorf("%w: ciphertexts %q", ErrUnknownBackend, cfg.Ciphertexts.Backend)
	}
}

// Close releases the underlying connections.
func (s *Storages) Close() error {
	if s == nil || s.Ledger == nil {
		return nil
	}
	return s.Ledger.Close()
}
