package membershiprepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var ErrDuplicateMembershipNumber = fmt.Errorf("%w: membership number already assigned", domain.ErrAlreadyExists)

const columns = `id, first_name, middle_name, last_name, birth_date, gender, civil_status,
	contact_number, email, address, occupation, employer, monthly_income, tin, beneficiary,
	photo_path, valid_id_path, status, membership_number, reviewed_by, reviewed_at, review_notes, created_at`

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

func scan(row scanner, a *domain.MembershipApplication) error {
	return row.Scan(&a.ID, &a.FirstName, &a.MiddleName, &a.LastName, &a.BirthDate, &a.Gender, &a.CivilStatus,
		&a.ContactNumber, &a.Email, &a.Address, &a.Occupation, &a.Employer, &a.MonthlyIncome, &a.TIN, &a.Beneficiary,
		&a.PhotoPath, &a.ValidIDPath, &a.Status, &a.MembershipNumber, &a.ReviewedBy, &a.ReviewedAt, &a.ReviewNotes, &a.CreatedAt)
}

func (r *Repository) Create(ctx context.Context, app *domain.MembershipApplication) error {
	query := `
        INSERT INTO membership_applications (first_name, middle_name, last_name, birth_date, gender, civil_status,
            contact_number, email, address, occupation, employer, monthly_income, tin, beneficiary,
            photo_path, valid_id_path, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		app.FirstName, app.MiddleName, app.LastName, app.BirthDate, app.Gender, app.CivilStatus,
		app.ContactNumber, app.Email, app.Address, app.Occupation, app.Employer, app.MonthlyIncome, app.TIN, app.Beneficiary,
		app.PhotoPath, app.ValidIDPath, string(app.Status),
	).Scan(&app.ID, &app.CreatedAt)
	if err != nil {
		zap.L().Error("can't save membership application", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.MembershipApplication, error) {
	query := `SELECT ` + columns + ` FROM membership_applications WHERE id = $1`

	var app domain.MembershipApplication
	err := scan(r.db.QueryRow(ctx, query, id), &app)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find membership application", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &app, nil
}

// List returns applications newest first. An empty status returns all of them.
func (r *Repository) List(ctx context.Context, status domain.Status) ([]domain.MembershipApplication, error) {
	query := `SELECT ` + columns + ` FROM membership_applications
        WHERE ($1::text = '' OR status = $1)
        ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, string(status))
	if err != nil {
		zap.L().Error("can't list membership applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	apps := make([]domain.MembershipApplication, 0)
	for rows.Next() {
		var app domain.MembershipApplication
		if err := scan(rows, &app); err != nil {
			zap.L().Error("can't scan membership application row", zap.Error(err))
			return nil, err
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate membership applications", zap.Error(err))
		return nil, err
	}
	return apps, nil
}

// UpdateStatus moves the row from review.From to review.To in one statement.
// It returns nil, nil when the row is gone or its status is no longer review.From.
func (r *Repository) UpdateStatus(ctx context.Context, id int, review domain.Review, membershipNumber *string) (*domain.MembershipApplication, error) {
	query := `
        UPDATE membership_applications
        SET status = $1, reviewed_by = $2, review_notes = $3, reviewed_at = $4,
            membership_number = COALESCE($5, membership_number)
        WHERE id = $6 AND status = $7
        RETURNING ` + columns

	var app domain.MembershipApplication
	err := scan(r.db.QueryRow(ctx, query,
		string(review.To), review.ReviewerID, review.Notes, review.At, membershipNumber, id, string(review.From),
	), &app)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if pg.IsUniqueViolation(err) {
		return nil, ErrDuplicateMembershipNumber
	}
	if err != nil {
		zap.L().Error("can't update membership application status", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &app, nil
}
