package loanrepo

import (
	"context"
	"errors"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const columns = `id, user_id, loan_type, amount, term_months, purpose, full_name, contact_number, address,
	employer, monthly_income, co_maker_name, payslip_path, valid_id_path, status,
	reviewed_by, reviewed_at, reviewer_comments, created_at`

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

func scan(row scanner, a *domain.LoanApplication) error {
	return row.Scan(&a.ID, &a.UserID, &a.LoanType, &a.Amount, &a.TermMonths, &a.Purpose, &a.FullName, &a.ContactNumber, &a.Address,
		&a.Employer, &a.MonthlyIncome, &a.CoMakerName, &a.PayslipPath, &a.ValidIDPath, &a.Status,
		&a.ReviewedBy, &a.ReviewedAt, &a.ReviewerComments, &a.CreatedAt)
}

func (r *Repository) Create(ctx context.Context, app *domain.LoanApplication) error {
	query := `
        INSERT INTO loan_applications (user_id, loan_type, amount, term_months, purpose, full_name, contact_number,
            address, employer, monthly_income, co_maker_name, payslip_path, valid_id_path, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query,
		app.UserID, app.LoanType, app.Amount, app.TermMonths, app.Purpose, app.FullName, app.ContactNumber,
		app.Address, app.Employer, app.MonthlyIncome, app.CoMakerName, app.PayslipPath, app.ValidIDPath, string(app.Status),
	).Scan(&app.ID, &app.CreatedAt)
	if err != nil {
		zap.L().Error("can't save loan application", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.LoanApplication, error) {
	query := `SELECT ` + columns + ` FROM loan_applications WHERE id = $1`

	var app domain.LoanApplication
	err := scan(r.db.QueryRow(ctx, query, id), &app)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find loan application", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &app, nil
}

// List returns applications newest first, narrowed to one applicant when userID is set.
func (r *Repository) List(ctx context.Context, userID *int) ([]domain.LoanApplication, error) {
	query := `SELECT ` + columns + ` FROM loan_applications
        WHERE ($1::int IS NULL OR user_id = $1)
        ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't list loan applications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	apps := make([]domain.LoanApplication, 0)
	for rows.Next() {
		var app domain.LoanApplication
		if err := scan(rows, &app); err != nil {
			zap.L().Error("can't scan loan application row", zap.Error(err))
			return nil, err
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate loan applications", zap.Error(err))
		return nil, err
	}
	return apps, nil
}

// UpdateStatus moves the row from review.From to review.To in one statement.
// It returns nil, nil when the row is gone or its status is no longer review.From.
func (r *Repository) UpdateStatus(ctx context.Context, id int, review domain.Review) (*domain.LoanApplication, error) {
	query := `
        UPDATE loan_applications
        SET status = $1, reviewed_by = $2, reviewer_comments = $3, reviewed_at = $4
        WHERE id = $5 AND status = $6
        RETURNING ` + columns

	var app domain.LoanApplication
	err := scan(r.db.QueryRow(ctx, query,
		string(review.To), review.ReviewerID, review.Notes, review.At, id, string(review.From),
	), &app)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't update loan application status", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &app, nil
}
