package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/models"
)

const ciphertextTable = "ciphertexts"

type dbCiphertexts struct {
	db *DB
}

// NewDBCiphertextStorage stores ciphertexts in the "ciphertexts" table.
func NewDBCiphertextStorage(db *DB) CiphertextStorage {
	return &dbCiphertexts{db: db}
}

func (s *dbCiphertexts) Put(ctx context.Context, data []byte) (models.Handle, error) {
	handle := utils.ContentHandle(data)

	query, args, err := s.db.builder().Insert(ciphertextTable).
		Columns("handle", "data").
		Values(handle.String(), data).
		Suffix(ignoreConflict).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dbCiphertexts.Put").Str("handle", handle.String()).Msg("error storing ciphertext")
		return "", fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return handle, nil
}

func (s *dbCiphertexts) Get(ctx context.Context, handle models.Handle) ([]byte, error) {
	query, args, err := s.db.builder().Select("data").
		From(ciphertextTable).
		Where(sq.Eq{"handle": handle.String()}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var data []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrCiphertextNotFound, handle)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*dbCiphertexts.Get").Str("handle", handle.String()).Msg("error loading ciphertext")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return data, nil
}

type stateCiphertexts struct {
	ws WorldState
}

// NewStateCiphertextStorage stores ciphertexts under CT::<handle> in ws.
func NewStateCiphertextStorage(ws WorldState) CiphertextStorage {
	return &stateCiphertexts{ws: ws}
}

func (s *stateCiphertexts) Put(_ context.Context, data []byte) (models.Handle, error) {
	handle := utils.ContentHandle(data)
	if err := s.ws.PutState(ciphertextPrefix+handle.String(), data); err != nil {
		return "", fmt.Errorf("error storing ciphertext %s: %w", handle, err)
	}
	return handle, nil
}

func (s *stateCiphertexts) Get(_ context.Context, handle models.Handle) ([]byte, error) {
	data, err := s.ws.GetState(ciphertextPrefix + handle.String())
	if err != nil {
		return nil, fmt.Errorf("error loading ciphertext %s: %w", handle, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrCiphertextNotFound, handle)
	}
	return data, nil
}
