// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-farm-twin/internal/app"
	"github.com/MKhiriev/go-farm-twin/internal/service"
	"github.com/MKhiriev/go-farm-twin/internal/store"
	"github.com/MKhiriev/go-farm-twin/models"
	"github.com/stretchr/testify/assert"
)

func TestRegister(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		auth       *fakeAuthService
		wantStatus int
		wantBody   string
		wantToken  string
	}{
		{
			name: "success",
			body: `{"login":"farmer","password":"secret"}`,
			auth: &fakeAuthService{
				registerUserFn: func(_ context.Context, u models.User) (models.User, error) {
					u.UserID = 7
					return u, nil
				},
				createTokenFn: func(_ context.Context, u models.User) (models.Token, error) {
					assert.Equal(t, int64(7), u.UserID)
					return models.Token{SignedString: "jwt-7"}, nil
				},
			},
			wantStatus: http.StatusOK,
			wantToken:  "Bearer jwt-7",
		},
		{
			name:       "invalid JSON",
			body:       `{"login":`,
			auth:       &fakeAuthService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name:       "empty password",
			body:       `{"login":"farmer"}`,
			auth:       &fakeAuthService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidDataProvided,
		},
		{
			name: "login taken",
			body: `{"login":"farmer","password":"secret"}`,
			auth: &fakeAuthService{
				registerUserFn: func(context.Context, models.User) (models.User, error) {
					return models.User{}, store.ErrLoginAlreadyExists
				},
			},
			wantStatus: http.StatusConflict,
			wantBody:   app.MsgLoginAlreadyExists,
		},
		{
			name: "token failure",
			body: `{"login":"farmer","password":"secret"}`,
			auth: &fakeAuthService{
				createTokenFn: func(context.Context, models.User) (models.Token, error) {
					return models.Token{}, service.ErrTokenCreationFailed
				},
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newFakeServices()
			svcs.AuthService = tt.auth

			rec := serve(t, svcs, http.MethodPost, "/api/user/register", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, bodyOf(rec))
			}
			assert.Equal(t, tt.wantToken, rec.Header().Get("Authorization"))
		})
	}
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		loginErr   error
		wantStatus int
		wantBody   string
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "unknown login", loginErr: store.ErrNoUserWasFound, wantStatus: http.StatusUnauthorized, wantBody: app.MsgInvalidLoginPassword},
		{name: "wrong password", loginErr: service.ErrWrongPassword, wantStatus: http.StatusUnauthorized, wantBody: app.MsgInvalidLoginPassword},
		{name: "storage failure", loginErr: errors.New("disk on fire"), wantStatus: http.StatusInternalServerError, wantBody: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newFakeServices()
			svcs.AuthService = &fakeAuthService{
				loginFn: func(_ context.Context, u models.User) (models.User, error) {
					if tt.loginErr != nil {
						return models.User{}, tt.loginErr
					}
					u.UserID = 3
					return u, nil
				},
			}

			rec := serve(t, svcs, http.MethodPost, "/api/user/login", `{"login":"farmer","password":"secret"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, bodyOf(rec))
				return
			}
			assert.Equal(t, "Bearer signed", rec.Header().Get("Authorization"))
		})
	}
}
