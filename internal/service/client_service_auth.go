package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-farm-twin/internal/adapter"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/store"
	"github.com/MKhiriev/go-farm-twin/models"
)

type clientAuthService struct {
	adapter  adapter.ServerAdapter
	sessions SessionStore
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, sessions SessionStore) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, sessions: sessions}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.Session, error) {
	if !validCredentials(user) {
		return models.Session{}, ErrInvalidDataProvided
	}

	token, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return a.save(ctx, user.Login, token)
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	if !validCredentials(user) {
		return models.Session{}, ErrInvalidDataProvided
	}

	token, err := a.adapter.Login(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return a.save(ctx, user.Login, token)
}

func (a *clientAuthService) save(ctx context.Context, login string, token models.Token) (models.Session, error) {
	session := models.Session{Token: token.SignedString, UserID: token.UserID, Login: login}

	if err := a.sessions.Save(session); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientAuthService.save").Msg("session was not persisted")
		return models.Session{}, fmt.Errorf("error saving session: %w", err)
	}

	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	return a.sessions.Clear()
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.Load()
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrNotLoggedIn
	}
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*clientAuthService.RestoreSession").Msg("session file is unreadable")
		return models.Session{}, fmt.Errorf("%w: %w", ErrNotLoggedIn, err)
	}

	a.adapter.SetToken(session.Token)
	return session, nil
}
