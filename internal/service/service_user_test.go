// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/bookmark-keeper/internal/logger"
	"github.com/MKhiriev/bookmark-keeper/internal/mock"
	"github.com/MKhiriev/bookmark-keeper/internal/store"
	"github.com/MKhiriev/bookmark-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string { return &s }

func newTestUserSvc(t *testing.T, ctrl *gomock.Controller) (UserService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)

	return NewUserService(mockRepo, logger.Nop()), mockRepo
}

func TestUserService_GetMe_ReturnsGivenUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestUserSvc(t, ctrl)
	user := models.User{ID: 1, Email: "vlad@gmail.com", CreatedAt: time.Now()}

	assert.Equal(t, user, svc.GetMe(context.Background(), user))
}

func TestUserService_EditUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	updated := models.User{ID: 1, Email: "new@gmail.com", FirstName: strPtr("Vladimir")}
	mockRepo.EXPECT().
		UpdateUser(ctx, int64(1), models.UserUpdate{FirstName: models.NewNullableString(strPtr("Vladimir")), Email: strPtr("new@gmail.com")}).
		Return(updated, nil)

	got, err := svc.EditUser(ctx, 1, models.EditUserRequest{
		FirstName: models.NewNullableString(strPtr("Vladimir")),
		Email:     strPtr(" new@gmail.com "),
	})

	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUserService_EditUser_EmptyRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		UpdateUser(ctx, int64(1), models.UserUpdate{}).
		Return(models.User{ID: 1}, nil)

	got, err := svc.EditUser(ctx, 1, models.EditUserRequest{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
}

func TestUserService_EditUser_EmailConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo := newTestUserSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().
		UpdateUser(ctx, int64(1), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.EditUser(ctx, 1, models.EditUserRequest{Email: strPtr("taken@gmail.com")})

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}
