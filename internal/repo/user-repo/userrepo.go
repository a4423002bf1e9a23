package userrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var ErrDuplicateEmail = fmt.Errorf("%w: email already registered", domain.ErrAlreadyExists)

const columns = `id, email, full_name, role, password_hash, is_active, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner, u *domain.StaffUser) error {
	return row.Scan(&u.ID, &u.Email, &u.FullName, &u.Role, &u.PasswordHash, &u.IsActive, &u.CreatedAt)
}

// FindByEmail only returns active users.
func (repo *Repository) FindByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	var user domain.StaffUser
	err := scan(repo.db.QueryRow(ctx, "SELECT "+columns+" FROM users WHERE email = $1 AND is_active", email), &user)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) FindByID(ctx context.Context, id int) (*domain.StaffUser, error) {
	var user domain.StaffUser
	err := scan(repo.db.QueryRow(ctx, "SELECT "+columns+" FROM users WHERE id = $1", id), &user)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find user", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &user, nil
}

func (repo *Repository) Create(ctx context.Context, user *domain.StaffUser) (*domain.StaffUser, error) {
	query := `
		INSERT INTO users (email, full_name, role, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_active, created_at
	`
	err := repo.db.QueryRow(ctx, query, user.Email, user.FullName, string(user.Role), user.PasswordHash).
		Scan(&user.ID, &user.IsActive, &user.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		zap.L().Error("can't save user", zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (repo *Repository) List(ctx context.Context) ([]domain.StaffUser, error) {
	rows, err := repo.db.Query(ctx, "SELECT "+columns+" FROM users ORDER BY id")
	if err != nil {
		zap.L().Error("can't list users", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	users := make([]domain.StaffUser, 0)
	for rows.Next() {
		var user domain.StaffUser
		if err := scan(rows, &user); err != nil {
			zap.L().Error("can't scan user row", zap.Error(err))
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// Deactivate reports false when no user has the id.
func (repo *Repository) Deactivate(ctx context.Context, id int) (bool, error) {
	tag, err := repo.db.Exec(ctx, "UPDATE users SET is_active = FALSE WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't deactivate user", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete reports false when no user has the id.
func (repo *Repository) Delete(ctx context.Context, id int) (bool, error) {
	tag, err := repo.db.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't delete user", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
