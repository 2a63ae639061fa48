package userservice

import (
	"context"
	"errors"
	"testing"

	"github.com/icopoint/icopoint/internal/domain"
	"github.com/icopoint/icopoint/internal/service/authservice"
	"github.com/icopoint/icopoint/pkg/auth"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockRepo, *auth.MockHashServiceInterface) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	hashService := auth.NewMockHashServiceInterface(ctrl)

	service := New(repo, hashService)
	defer ctrl.Finish()
	return service, repo, hashService
}

func TestList(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name          string
		excludeAdmins bool
		prepareMock   func()
		expectedUsers []domain.User
		expectedError error
	}{
		{
			name:          "All users",
			excludeAdmins: false,
			prepareMock: func() {
				repo.EXPECT().List(context.Background(), false).Return([]domain.User{
					{ID: 1, Username: "admin", Admin: true},
					{ID: 2, Username: "tech_anna"},
				}, nil)
			},
			expectedUsers: []domain.User{
				{ID: 1, Username: "admin", Admin: true},
				{ID: 2, Username: "tech_anna"},
			},
		},
		{
			name:          "Admins excluded",
			excludeAdmins: true,
			prepareMock: func() {
				repo.EXPECT().List(context.Background(), true).Return([]domain.User{
					{ID: 2, Username: "tech_anna"},
				}, nil)
			},
			expectedUsers: []domain.User{
				{ID: 2, Username: "tech_anna"},
			},
		},
		{
			name:          "Database error",
			excludeAdmins: false,
			prepareMock: func() {
				repo.EXPECT().List(context.Background(), false).Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			users, err := service.List(context.Background(), tt.excludeAdmins)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUsers, users)
			}
		})
	}
}

func TestCreate(t *testing.T) {
	service, repo, hashService := NewMock(t)

	tests := []struct {
		name          string
		username      string
		password      string
		admin         bool
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Create technician account",
			username: "Tech_Anna",
			password: "password123",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(context.Background(), "tech_anna").Return(nil, nil)
				hashService.EXPECT().HashPassword("password123").Return("hashedpassword", nil)
				repo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					user.ID = 2
					return user, nil
				})
			},
			expectedUser: &domain.User{
				ID:           2,
				Username:     "tech_anna",
				PasswordHash: "hashedpassword",
			},
		},
		{
			name:     "Create admin account",
			username: "second_admin",
			password: "password123",
			admin:    true,
			prepareMock: func() {
				repo.EXPECT().FindByUsername(context.Background(), "second_admin").Return(nil, nil)
				hashService.EXPECT().HashPassword("password123").Return("hashedpassword", nil)
				repo.EXPECT().Create(context.Background(), gomock.Any()).DoAndReturn(func(ctx context.Context, user *domain.User) (*domain.User, error) {
					assert.True(t, user.Admin)
					user.ID = 3
					return user, nil
				})
			},
			expectedUser: &domain.User{
				ID:           3,
				Username:     "second_admin",
				PasswordHash: "hashedpassword",
				Admin:        true,
			},
		},
		{
			name:     "Username already taken",
			username: "tech_anna",
			password: "password123",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(context.Background(), "tech_anna").Return(&domain.User{ID: 2, Username: "tech_anna"}, nil)
			},
			expectedError: authservice.ErrUsernameTaken,
		},
		{
			name:     "Database error",
			username: "tech_anna",
			password: "password123",
			prepareMock: func() {
				repo.EXPECT().FindByUsername(context.Background(), "tech_anna").Return(nil, errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Create(context.Background(), tt.username, tt.password, tt.admin)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestUpdate(t *testing.T) {
	service, repo, hashService := NewMock(t)

	tests := []struct {
		name          string
		id            int
		username      string
		password      string
		admin         bool
		prepareMock   func()
		expectedUser  *domain.User
		expectedError error
	}{
		{
			name:     "Empty password keeps the current hash",
			id:       2,
			username: "tech_anna",
			password: "",
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 2).Return(&domain.User{
					ID:           2,
					Username:     "tech_anna",
					PasswordHash: "oldhash",
				}, nil)
				repo.EXPECT().Update(context.Background(), gomock.Any()).Return(nil)
			},
			expectedUser: &domain.User{
				ID:           2,
				Username:     "tech_anna",
				PasswordHash: "oldhash",
			},
		},
		{
			name:     "New password is rehashed",
			id:       2,
			username: "tech_anna",
			password: "newpassword",
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 2).Return(&domain.User{
					ID:           2,
					Username:     "tech_anna",
					PasswordHash: "oldhash",
				}, nil)
				hashService.EXPECT().HashPassword("newpassword").Return("newhash", nil)
				repo.EXPECT().Update(context.Background(), gomock.Any()).Return(nil)
			},
			expectedUser: &domain.User{
				ID:           2,
				Username:     "tech_anna",
				PasswordHash: "newhash",
			},
		},
		{
			name:     "Rename to a taken username",
			id:       2,
			username: "other_tech",
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 2).Return(&domain.User{
					ID:       2,
					Username: "tech_anna",
				}, nil)
				repo.EXPECT().FindByUsername(context.Background(), "other_tech").Return(&domain.User{ID: 3, Username: "other_tech"}, nil)
			},
			expectedError: authservice.ErrUsernameTaken,
		},
		{
			name:     "User not found",
			id:       404,
			username: "tech_anna",
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 404).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			user, err := service.Update(context.Background(), tt.id, tt.username, tt.password, tt.admin)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedUser, user)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	service, repo, _ := NewMock(t)

	tests := []struct {
		name          string
		id            int
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Delete technician account",
			id:   2,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 2).Return(&domain.User{ID: 2, Username: "tech_anna"}, nil)
				repo.EXPECT().Delete(context.Background(), 2).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "Admin account is protected",
			id:   1,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 1).Return(&domain.User{ID: 1, Username: "admin", Admin: true}, nil)
			},
			expectedError: ErrProtectedUser,
		},
		{
			name: "User not found",
			id:   404,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 404).Return(nil, nil)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name: "Database error",
			id:   2,
			prepareMock: func() {
				repo.EXPECT().FindByID(context.Background(), 2).Return(&domain.User{ID: 2, Username: "tech_anna"}, nil)
				repo.EXPECT().Delete(context.Background(), 2).Return(errors.New("database error"))
			},
			expectedError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			err := service.Delete(context.Background(), tt.id)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
