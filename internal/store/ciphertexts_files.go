package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/models"
)

var handlePattern = regexp.MustCompile(`^[0-9a-f]{64}$`)

// ErrInvalidHandle is returned for handles that are not hex SHA-256 digests.
var ErrInvalidHandle = errors.New("invalid ciphertext handle")

type fileCiphertexts struct {
	dir string
}

// NewFileCiphertextStorage stores each ciphertext as a file named after its
// handle, fanned out into two-character subdirectories.
func NewFileCiphertextStorage(dir string) (CiphertextStorage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("error creating ciphertext directory: %w", err)
	}
	return &fileCiphertexts{dir: dir}, nil
}

func (s *fileCiphertexts) path(handle models.Handle) (string, error) {
	h := handle.String()
	if !handlePattern.MatchString(h) {
		return "", fmt.Errorf("%w: %q", ErrInvalidHandle, h)
	}
	return filepath.Join(s.dir, h[:2], h), nil
}

func (s *fileCiphertexts) Put(ctx context.Context, data []byte) (models.Handle, error) {
	handle := utils.ContentHandle(data)
	path, err := s.path(handle)
	if err != nil {
		return "", err
	}

	if _, err = os.Stat(path); err == nil {
		return handle, nil
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("error creating ciphertext directory: %w", err)
	}

	// write then rename so readers never see a partial file
	tmp, err := os.CreateTemp(filepath.Dir(path), ".ct-*")
	if err != nil {
		return "", fmt.Errorf("error creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("error writing ciphertext: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return "", fmt.Errorf("error closing ciphertext file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileCiphertexts.Put").Str("handle", handle.String()).Msg("error renaming ciphertext file")
		return "", fmt.Errorf("error storing ciphertext: %w", err)
	}

	return handle, nil
}

func (s *fileCiphertexts) Get(_ context.Context, handle models.Handle) ([]byte, error) {
	path, err := s.path(handle)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrCiphertextNotFound, handle)
	}
	if err != nil {
		return nil, fmt.Errorf("error reading ciphertext: %w", err)
	}

	return data, nil
}
