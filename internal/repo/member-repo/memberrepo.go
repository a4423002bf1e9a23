package memberrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var ErrDuplicateMember = fmt.Errorf("%w: member number or email already registered", domain.ErrAlreadyExists)

const columns = `id, member_number, email, full_name, password_hash, is_active, created_at`

// openingAccounts are created for every new member, keyed by account number prefix.
var openingAccounts = []struct {
	prefix string
	kind   string
}{
	{prefix: "SA-", kind: domain.AccountSavings},
	{prefix: "SC-", kind: domain.AccountShareCapital},
}

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner, m *domain.Member) error {
	return row.Scan(&m.ID, &m.MemberNumber, &m.Email, &m.FullName, &m.PasswordHash, &m.IsActive, &m.CreatedAt)
}

// FindByMemberNumber only returns active members.
func (r *Repository) FindByMemberNumber(ctx context.Context, memberNumber string) (*domain.Member, error) {
	var member domain.Member
	err := scan(r.db.QueryRow(ctx, "SELECT "+columns+" FROM member_users WHERE member_number = $1 AND is_active", memberNumber), &member)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find member", zap.Error(err))
		return nil, err
	}
	return &member, nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Member, error) {
	var member domain.Member
	err := scan(r.db.QueryRow(ctx, "SELECT "+columns+" FROM member_users WHERE id = $1", id), &member)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("can't find member", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &member, nil
}

// Create inserts the login together with its savings and share capital accounts.
// member is only filled in once the transaction has committed.
func (r *Repository) Create(ctx context.Context, member *domain.Member) (*domain.Member, error) {
	insertMember := `
        INSERT INTO member_users (member_number, email, full_name, password_hash)
        VALUES ($1, $2, $3, $4)
        RETURNING id, is_active, created_at
    `
	insertAccount := `
        INSERT INTO accounts (member_id, account_number, account_type)
        VALUES ($1, $2, $3)
    `
	created := *member
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, insertMember, created.MemberNumber, created.Email, created.FullName, created.PasswordHash).
			Scan(&created.ID, &created.IsActive, &created.CreatedAt)
		if err != nil {
			if pg.IsUniqueViolation(err) {
				return ErrDuplicateMember
			}
			zap.L().Error("can't save member", zap.Error(err))
			return err
		}
		for _, acc := range openingAccounts {
			if _, err := r.db.Exec(ctx, insertAccount, created.ID, acc.prefix+created.MemberNumber, acc.kind); err != nil {
				zap.L().Error("can't open member account", zap.String("type", acc.kind), zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	*member = created
	return member, nil
}

func (r *Repository) List(ctx context.Context, limit, offset int) ([]domain.Member, error) {
	rows, err := r.db.Query(ctx, "SELECT "+columns+" FROM member_users ORDER BY id LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		zap.L().Error("can't list members", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	members := make([]domain.Member, 0)
	for rows.Next() {
		var member domain.Member
		if err := scan(rows, &member); err != nil {
			zap.L().Error("can't scan member row", zap.Error(err))
			return nil, err
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate members", zap.Error(err))
		return nil, err
	}
	return members, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, "SELECT COUNT(*) FROM member_users").Scan(&total); err != nil {
		zap.L().Error("can't count members", zap.Error(err))
		return 0, err
	}
	return total, nil
}

// Deactivate reports false when no member has the id.
func (r *Repository) Deactivate(ctx context.Context, id int) (bool, error) {
	tag, err := r.db.Exec(ctx, "UPDATE member_users SET is_active = FALSE WHERE id = $1", id)
	if err != nil {
		zap.L().Error("can't deactivate member", zap.Int("id", id), zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
