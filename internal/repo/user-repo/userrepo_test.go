package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/icopoint/icopoint/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_FindByUsername(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		username  string
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name:     "User found",
			username: "tech_anna",
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "username", "password_hash", "is_admin"}).
					AddRow(1, "tech_anna", "hashed_password", false)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, is_admin FROM users WHERE username = $1")).
					WithArgs("tech_anna").
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Username:     "tech_anna",
				PasswordHash: "hashed_password",
				Admin:        false,
			},
		},
		{
			name:     "User not found",
			username: "nobody",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, is_admin FROM users WHERE username = $1")).
					WithArgs("nobody").
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:     "Database error",
			username: "tech_anna",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, is_admin FROM users WHERE username = $1")).
					WithArgs("tech_anna").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUsername(context.Background(), tt.username)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "User found",
			id:   7,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "username", "password_hash", "is_admin"}).
					AddRow(7, "admin", "hashed_password", true)
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, is_admin FROM users WHERE id = $1")).
					WithArgs(7).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.User{
				ID:           7,
				Username:     "admin",
				PasswordHash: "hashed_password",
				Admin:        true,
			},
		},
		{
			name: "User not found",
			id:   404,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT id, username, password_hash, is_admin FROM users WHERE id = $1")).
					WithArgs(404).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name          string
		excludeAdmins bool
		mockSetup     func()
		expectErr     bool
		result        []domain.User
	}{
		{
			name:          "All users",
			excludeAdmins: false,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "username", "password_hash", "is_admin"}).
					AddRow(1, "admin", "hash_a", true).
					AddRow(2, "tech_anna", "hash_b", false)
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, username, password_hash, is_admin
        FROM users
        ORDER BY username ASC
    `)).WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.User{
				{ID: 1, Username: "admin", PasswordHash: "hash_a", Admin: true},
				{ID: 2, Username: "tech_anna", PasswordHash: "hash_b", Admin: false},
			},
		},
		{
			name:          "Admins excluded",
			excludeAdmins: true,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "username", "password_hash", "is_admin"}).
					AddRow(2, "tech_anna", "hash_b", false)
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, username, password_hash, is_admin
        FROM users
        WHERE is_admin = FALSE
        ORDER BY username ASC
    `)).WillReturnRows(rows)
			},
			expectErr: false,
			result: []domain.User{
				{ID: 2, Username: "tech_anna", PasswordHash: "hash_b", Admin: false},
			},
		},
		{
			name:          "Database error",
			excludeAdmins: false,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, username, password_hash, is_admin
        FROM users
        ORDER BY username ASC
    `)).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background(), tt.excludeAdmins)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
		result    *domain.User
	}{
		{
			name: "Create user successfully",
			user: &domain.User{
				Username:     "new_tech",
				PasswordHash: "hashed_password",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO users (username, password_hash, is_admin)
		VALUES ($1, $2, $3)
		RETURNING id
	`)).
					WithArgs("new_tech", "hashed_password", false).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(1))
			},
			expectErr: false,
			result: &domain.User{
				ID:           1,
				Username:     "new_tech",
				PasswordHash: "hashed_password",
			},
		},
		{
			name: "Database error",
			user: &domain.User{
				Username:     "new_tech",
				PasswordHash: "hashed_password",
			},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`
		INSERT INTO users (username, password_hash, is_admin)
		VALUES ($1, $2, $3)
		RETURNING id
	`)).
					WithArgs("new_tech", "hashed_password", false).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Update user successfully",
			user: &domain.User{
				ID:           2,
				Username:     "tech_anna",
				PasswordHash: "new_hash",
				Admin:        true,
			},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE users
        SET username = $1, password_hash = $2, is_admin = $3
        WHERE id = $4
    `)).
					WithArgs("tech_anna", "new_hash", true, 2).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			user: &domain.User{
				ID:           2,
				Username:     "tech_anna",
				PasswordHash: "new_hash",
			},
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE users
        SET username = $1, password_hash = $2, is_admin = $3
        WHERE id = $4
    `)).
					WithArgs("tech_anna", "new_hash", false, 2).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Update(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Delete user successfully",
			id:   2,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
					WithArgs(2).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			expectErr: false,
		},
		{
			name: "Database error",
			id:   2,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
					WithArgs(2).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Delete(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
