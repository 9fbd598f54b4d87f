// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/bookmark-keeper/internal/config"
	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/mock"
	"github.com/MKhiriev/bookmark-keeper/internal/store"
	"github.com/MKhiriev/bookmark-keeper/internal/utils"
	"github.com/MKhiriev/bookmark-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "bookmark-keeper-test"
)

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:     testSignKey,
		TokenIssuer:      testIssuer,
		TokenDuration:    time.Minute,
		PasswordHashCost: bcrypt.MinCost,
	}
}

// newTestAuthSvc builds an authService over a mocked UserRepository.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(mockRepo, testAppConfig(), logger.Nop()).(*authService)

	return svc, mockRepo
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

// ─────────────────────────────────────────────
// Signup
// ─────────────────────────────────────────────

func TestAuthService_Signup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, user models.User) (models.User, error) {
			assert.Equal(t, "vlad@gmail.com", user.Email)
			assert.NotEqual(t, "123", user.Hash, "password must be stored hashed")
			assert.NoError(t, utils.ComparePassword(user.Hash, "123"))

			user.ID = 7
			return user, nil
		})

	token, err := svc.Signup(ctx, models.AuthRequest{Email: "  vlad@gmail.com ", Password: "123"})

	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(7), token.UserID)
	assert.Equal(t, "vlad@gmail.com", token.Email)

	parsed, err := utils.ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
}

func TestAuthService_Signup_EmptyFields(t *testing.T) {
	tests := []struct {
		name    string
		request models.AuthRequest
	}{
		{name: "empty email", request: models.AuthRequest{Password: "123"}},
		{name: "blank email", request: models.AuthRequest{Email: "   ", Password: "123"}},
		{name: "empty password", request: models.AuthRequest{Email: "vlad@gmail.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _ := newTestAuthSvc(t, ctrl)

			_, err := svc.Signup(context.Background(), tt.request)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_Signup_PasswordTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.Signup(context.Background(), models.AuthRequest{
		Email:    "vlad@gmail.com",
		Password: strings.Repeat("p", 73),
	})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.Signup(ctx, models.AuthRequest{Email: "vlad@gmail.com", Password: "123"})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// Signin
// ─────────────────────────────────────────────

func TestAuthService_Signin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		FindUserByEmail(ctx, "vlad@gmail.com").
		Return(models.User{ID: 3, Email: "vlad@gmail.com", Hash: mustHash(t, "123")}, nil)

	token, err := svc.Signin(ctx, models.AuthRequest{Email: "vlad@gmail.com", Password: "123"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), token.UserID)
	assert.NotEmpty(t, token.String())
}

func TestAuthService_Signin_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name      string
		foundUser models.User
		findErr   error
	}{
		{name: "unknown email", findErr: store.ErrNoUserWasFound},
		{name: "wrong password", foundUser: models.User{ID: 3, Email: "vlad@gmail.com", Hash: mustHash(t, "other")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockRepo := newTestAuthSvc(t, ctrl)
			ctx := context.Background()

			mockRepo.EXPECT().
				FindUserByEmail(ctx, "vlad@gmail.com").
				Return(tt.foundUser, tt.findErr)

			token, err := svc.Signin(ctx, models.AuthRequest{Email: "vlad@gmail.com", Password: "123"})

			assert.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Empty(t, token.SignedString)
		})
	}
}

func TestAuthService_Signin_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	dbErr := errors.New("connection refused")

	mockRepo.EXPECT().FindUserByEmail(ctx, "vlad@gmail.com").Return(models.User{}, dbErr)

	_, err := svc.Signin(ctx, models.AuthRequest{Email: "vlad@gmail.com", Password: "123"})

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Signin_MalformedHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		FindUserByEmail(ctx, "vlad@gmail.com").
		Return(models.User{ID: 3, Hash: "not-a-bcrypt-hash"}, nil)

	_, err := svc.Signin(ctx, models.AuthRequest{Email: "vlad@gmail.com", Password: "123"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// SignToken
// ─────────────────────────────────────────────

func TestAuthService_SignToken_MissingSignKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	svc.tokenSignKey = ""

	_, err := svc.SignToken(context.Background(), models.User{ID: 1})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

// ─────────────────────────────────────────────
// Authenticate
// ─────────────────────────────────────────────

func TestAuthService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	user := models.User{ID: 5, Email: "vlad@gmail.com"}

	token, err := svc.SignToken(ctx, user)
	require.NoError(t, err)

	mockRepo.EXPECT().FindUserByID(ctx, int64(5)).Return(user, nil)

	got, err := svc.Authenticate(ctx, token.SignedString)

	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAuthService_Authenticate_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)

	token, err := utils.GenerateJWTToken(testIssuer, 5, "vlad@gmail.com", -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = svc.Authenticate(context.Background(), token.SignedString)

	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_Authenticate_Invalid(t *testing.T) {
	foreignKey, err := utils.GenerateJWTToken(testIssuer, 5, "", time.Minute, "another-key")
	require.NoError(t, err)
	foreignIssuer, err := utils.GenerateJWTToken("someone-else", 5, "", time.Minute, testSignKey)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not.a.jwt"},
		{name: "empty", token: ""},
		{name: "wrong signing key", token: foreignKey.SignedString},
		{name: "wrong issuer", token: foreignIssuer.SignedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _ := newTestAuthSvc(t, ctrl)

			_, err := svc.Authenticate(context.Background(), tt.token)

			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestAuthService_Authenticate_UserNoLongerExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.SignToken(ctx, models.User{ID: 9})
	require.NoError(t, err)

	mockRepo.EXPECT().FindUserByID(ctx, int64(9)).Return(models.User{}, store.ErrNoUserWasFound)

	_, err = svc.Authenticate(ctx, token.SignedString)

	assert.ErrorIs(t, err, ErrUserNoLongerExists)
}

func TestAuthService_Authenticate_RepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()
	dbErr := errors.New("connection reset")

	token, err := svc.SignToken(ctx, models.User{ID: 9})
	require.NoError(t, err)

	mockRepo.EXPECT().FindUserByID(ctx, int64(9)).Return(models.User{}, dbErr)

	_, err = svc.Authenticate(ctx, token.SignedString)

	assert.ErrorIs(t, err, dbErr)
}
