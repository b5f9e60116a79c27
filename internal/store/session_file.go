package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-farm-twin/models"
)

// SessionFile keeps the client's session token in a JSON file readable only
// by its owner.
type SessionFile struct {
	path string
}

func NewSessionFile(path string) *SessionFile {
	return &SessionFile{path: path}
}

// Load returns ErrSessionNotFound when no session was saved.
func (s *SessionFile) Load() (models.Session, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error reading session file: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(raw, &session); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrDecodingState, err)
	}
	if session.IsZero() {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (s *SessionFile) Save(session models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("error creating session directory: %w", err)
	}

	return os.WriteFile(s.path, raw, 0o600)
}

// Clear removes the session file. A missing file is not an error.
func (s *SessionFile) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("error removing session file: %w", err)
	}
	return nil
}
