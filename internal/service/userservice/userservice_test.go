package userservice

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)
	return New(repo, hashService), repo, hashService
}

func TestCreate(t *testing.T) {
	service, repo, passwordHasher := NewMock(t)

	tests := []struct {
		name          string
		role          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "User created",
			role: "cashier",
			prepareMock: func() {
				passwordHasher.EXPECT().HashPassword("password123").Return("hashedpassword", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.StaffUser) (*domain.StaffUser, error) {
					assert.Equal(t, "hashedpassword", user.PasswordHash)
					assert.Equal(t, domain.RoleCashier, user.Role)
					user.ID = 5
					return user, nil
				})
			},
		},
		{
			name:          "Unknown role",
			role:          "superuser",
			prepareMock:   func() {},
			expectedError: ErrInvalidRole,
		},
		{
			name: "Duplicate email",
			role: "cashier",
			prepareMock: func() {
				passwordHasher.EXPECT().HashPassword("password123").Return("hashedpassword", nil)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: email already registered", domain.ErrAlreadyExists))
			},
			expectedError: ErrEmailTaken,
		},
		{
			name: "Hashing fails",
			role: "cashier",
			prepareMock: func() {
				passwordHasher.EXPECT().HashPassword("password123").Return("", auth.ErrEmptyPassword)
			},
			expectedError: auth.ErrEmptyPassword,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			user, err := service.Create(context.Background(), "cashier@coop.test", "Ben Cruz", tt.role, "password123")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 5, user.ID)
		})
	}
}

func TestList(t *testing.T) {
	service, repo, _ := NewMock(t)

	repo.EXPECT().List(gomock.Any()).Return([]domain.StaffUser{{ID: 1}, {ID: 2}}, nil)

	users, err := service.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestDeactivateAndDelete(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name          string
		call          func() error
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Deactivate",
			call: func() error { return service.Deactivate(context.Background(), 3, 1) },
			prepareMock: func() {
				repo.EXPECT().Deactivate(gomock.Any(), 3).Return(true, nil)
			},
		},
		{
			name: "Deactivate missing",
			call: func() error { return service.Deactivate(context.Background(), 3, 1) },
			prepareMock: func() {
				repo.EXPECT().Deactivate(gomock.Any(), 3).Return(false, nil)
			},
			expectedError: ErrNotFound,
		},
		{
			name:          "Deactivate self",
			call:          func() error { return service.Deactivate(context.Background(), 1, 1) },
			prepareMock:   func() {},
			expectedError: ErrSelfAction,
		},
		{
			name: "Delete",
			call: func() error { return service.Delete(context.Background(), 3, 1) },
			prepareMock: func() {
				repo.EXPECT().Delete(gomock.Any(), 3).Return(true, nil)
			},
		},
		{
			name: "Delete fails",
			call: func() error { return service.Delete(context.Background(), 3, 1) },
			prepareMock: func() {
				repo.EXPECT().Delete(gomock.Any(), 3).Return(false, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
		{
			name:          "Delete self",
			call:          func() error { return service.Delete(context.Background(), 1, 1) },
			prepareMock:   func() {},
			expectedError: ErrSelfAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			err := tt.call()
			if tt.expectedError != nil {
				assert.EqualError(t, err, tt.expectedError.Error())
				return
			}
			assert.NoError(t, err)
		})
	}
}
