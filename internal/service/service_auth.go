// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/bookmark-keeper/internal/config"
	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/store"
	"github.com/MKhiriev/bookmark-keeper/internal/utils"
	"github.com/MKhiriev/bookmark-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordHashCost is the bcrypt cost applied at registration time.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// Signup creates a new user account and returns an access token for it.
//
// The email is trimmed before storage and the password is stored only as a
// bcrypt hash. Returns:
//   - ErrInvalidDataProvided if email or password is empty or the password
//     cannot be hashed because it is too long.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is taken.
func (a *authService) Signup(ctx context.Context, request models.AuthRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(request.Email)
	if email == "" || request.Password == "" {
		log.Error().Str("email", email).Msg("invalid signup data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	hash, err := utils.HashPassword(request.Password, a.passwordHashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		log.Err(err).Str("email", email).Msg("password hashing failed")
		return models.Token{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{Email: email, Hash: hash})
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.Token{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return a.SignToken(ctx, user)
}

// Signin verifies the supplied credentials and returns an access token.
//
// An unknown email and a wrong password both yield ErrInvalidCredentials so
// callers cannot probe which accounts exist.
func (a *authService) Signin(ctx context.Context, request models.AuthRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(request.Email)
	if email == "" || request.Password == "" {
		log.Error().Str("email", email).Msg("invalid signin data provided")
		return models.Token{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("email", email).Msg("signin with unknown email")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.Token{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.ComparePassword(user.Hash, request.Password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Debug().Int64("id", user.ID).Msg("wrong password")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Int64("id", user.ID).Msg("password comparison failed")
		return models.Token{}, fmt.Errorf("password comparison failed: %w", err)
	}

	return a.SignToken(ctx, user)
}

// SignToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) SignToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, user.Email, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authenticate validates a raw JWT string and loads the user it was issued to.
//
// Returns:
//   - ErrTokenIsExpired if the token is well-formed but past its expiry.
//   - ErrTokenIsExpiredOrInvalid on any other validation failure.
//   - ErrUserNoLongerExists if the subject does not resolve to a user.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Debug().Err(err).Msg("token validation failed")
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.User{}, ErrTokenIsExpired
		}
		return models.User{}, ErrTokenIsExpiredOrInvalid
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Int64("id", token.UserID).Msg("token subject no longer exists")
			return models.User{}, ErrUserNoLongerExists
		}
		log.Err(err).Int64("id", token.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}
