package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-farm-twin/internal/config"
	"github.com/MKhiriev/go-farm-twin/internal/crypto"
	"github.com/MKhiriev/go-farm-twin/internal/logger"
	"github.com/MKhiriev/go-farm-twin/internal/store"
	"github.com/MKhiriev/go-farm-twin/internal/utils"
	"github.com/MKhiriev/go-farm-twin/models"
)

// authService registers accounts of the contract host and issues HS256
// session tokens. Every farm entity owner ID is one of its user IDs.
type authService struct {
	ledger store.Ledger
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim of every issued token. Tokens with
	// another issuer are rejected.
	tokenIssuer string

	tokenDuration time.Duration
}

// NewAuthService constructs an [AuthService] storing users through ledger.
func NewAuthService(ledger store.Ledger, hasher crypto.PasswordHasher, cfg config.App) AuthService {
	return &authService{
		ledger:        ledger,
		hasher:        hasher,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
	}
}

func validCredentials(user models.User) bool {
	return strings.TrimSpace(user.Login) != "" && user.Password != ""
}

// RegisterUser hashes the password with argon2id and creates the account.
//
// Returns store.ErrLoginAlreadyExists (wrapped) for taken logins and
// ErrInvalidDataProvided for an empty login or password.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.RegisterUser").Str("login", user.Login).Logger()

	if !validCredentials(user) {
		log.Error().Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := a.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}
	user.PasswordHash = hash
	user.Password = ""

	var registered models.User
	err = a.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		var err error
		registered, err = repos.Users.CreateUser(ctx, user)
		return err
	})
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registered, nil
}

// Login checks the password against the stored hash.
//
// Returns store.ErrNoUserWasFound (wrapped) for unknown logins and
// ErrWrongPassword when the password does not verify.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx).With().Str("func", "*authService.Login").Str("login", user.Login).Logger()

	if !validCredentials(user) {
		log.Error().Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	var found models.User
	err := a.ledger.Atomic(ctx, func(ctx context.Context, repos store.Repositories) error {
		var err error
		found, err = repos.Users.FindUserByLogin(ctx, user.Login)
		return err
	})
	if err != nil {
		log.Err(err).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	ok, err := a.hasher.Verify(user.Password, found.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", found.UserID).Msg("stored password hash is malformed")
		return models.User{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		log.Warn().Int64("id", found.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return found, nil
}

// CreateToken issues a signed session token for user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies signature, issuer and expiry of tokenString. Every
// failure is reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
