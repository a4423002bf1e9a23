package userrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	t.Cleanup(mockDB.Close)

	return repo, mockDB
}

var columnNames = []string{"id", "email", "full_name", "role", "password_hash", "is_active", "created_at"}

func TestRepository_FindByEmail(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		email     string
		mockSetup func()
		expectErr bool
		result    *domain.StaffUser
	}{
		{
			name:  "User found",
			email: "admin@coop.test",
			mockSetup: func() {
				rows := pgxmock.NewRows(columnNames).
					AddRow(1, "admin@coop.test", "Ana Reyes", domain.RoleAdmin, "hashed_password", true, now)
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1 AND is_active")).
					WithArgs("admin@coop.test").
					WillReturnRows(rows)
			},
			result: &domain.StaffUser{
				ID:           1,
				Email:        "admin@coop.test",
				FullName:     "Ana Reyes",
				Role:         domain.RoleAdmin,
				PasswordHash: "hashed_password",
				IsActive:     true,
				CreatedAt:    now,
			},
		},
		{
			name:  "User not found",
			email: "nobody@coop.test",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1 AND is_active")).
					WithArgs("nobody@coop.test").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:  "Database error",
			email: "admin@coop.test",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1 AND is_active")).
					WithArgs("admin@coop.test").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByEmail(context.Background(), tt.email)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows(columnNames).
			AddRow(3, "cashier@coop.test", "Ben Cruz", domain.RoleCashier, "hash", false, now))
	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(4).
		WillReturnError(pgx.ErrNoRows)

	user, err := repo.FindByID(context.Background(), 3)
	assert.NoError(t, err)
	assert.Equal(t, domain.RoleCashier, user.Role)
	assert.False(t, user.IsActive)

	user, err = repo.FindByID(context.Background(), 4)
	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		user      *domain.StaffUser
		mockSetup func()
		expectErr error
		result    *domain.StaffUser
	}{
		{
			name: "User created",
			user: &domain.StaffUser{Email: "lo@coop.test", FullName: "Liza Officer", Role: domain.RoleLoanOfficer, PasswordHash: "hash"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (email, full_name, role, password_hash)")).
					WithArgs("lo@coop.test", "Liza Officer", "loan_officer", "hash").
					WillReturnRows(pgxmock.NewRows([]string{"id", "is_active", "created_at"}).AddRow(9, true, now))
			},
			result: &domain.StaffUser{ID: 9, Email: "lo@coop.test", FullName: "Liza Officer", Role: domain.RoleLoanOfficer,
				PasswordHash: "hash", IsActive: true, CreatedAt: now},
		},
		{
			name: "Duplicate email",
			user: &domain.StaffUser{Email: "lo@coop.test", FullName: "Liza Officer", Role: domain.RoleLoanOfficer, PasswordHash: "hash"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (email, full_name, role, password_hash)")).
					WithArgs("lo@coop.test", "Liza Officer", "loan_officer", "hash").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: ErrDuplicateEmail,
		},
		{
			name: "Database error",
			user: &domain.StaffUser{Email: "lo@coop.test", FullName: "Liza Officer", Role: domain.RoleLoanOfficer, PasswordHash: "hash"},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (email, full_name, role, password_hash)")).
					WithArgs("lo@coop.test", "Liza Officer", "loan_officer", "hash").
					WillReturnError(errors.New("database error"))
			},
			expectErr: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(context.Background(), tt.user)
			assert.NoError(t, mock.ExpectationsWereMet())
			if tt.expectErr != nil {
				assert.EqualError(t, err, tt.expectErr.Error())
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY id")).
		WillReturnRows(pgxmock.NewRows(columnNames).
			AddRow(1, "admin@coop.test", "Ana Reyes", domain.RoleAdmin, "h1", true, now).
			AddRow(2, "it@coop.test", "Ivan Tan", domain.RoleITAdmin, "h2", true, now))

	users, err := repo.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	assert.Equal(t, domain.RoleITAdmin, users[1].Role)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users ORDER BY id")).
		WillReturnError(errors.New("database error"))
	_, err = repo.List(context.Background())
	assert.Error(t, err)
}

func TestRepository_DeactivateAndDelete(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		call      func() (bool, error)
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Deactivate existing",
			call: func() (bool, error) { return repo.Deactivate(context.Background(), 2) },
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET is_active = FALSE WHERE id = $1")).
					WithArgs(2).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			found: true,
		},
		{
			name: "Deactivate missing",
			call: func() (bool, error) { return repo.Deactivate(context.Background(), 20) },
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET is_active = FALSE WHERE id = $1")).
					WithArgs(20).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			found: false,
		},
		{
			name: "Delete existing",
			call: func() (bool, error) { return repo.Delete(context.Background(), 2) },
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = $1")).
					WithArgs(2).
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			found: true,
		},
		{
			name: "Delete error",
			call: func() (bool, error) { return repo.Delete(context.Background(), 2) },
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
			found, err := tt.call()
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.found, found)
		})
	}
}
