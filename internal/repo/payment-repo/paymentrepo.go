package paymentrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/GlebRadaev/coopportal/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

var ErrDuplicateReference = fmt.Errorf("%w: reference number already used", domain.ErrAlreadyExists)

const columns = `id, member_id, loan_id, amount, reference_number, proof_path, status,
	reviewed_by, reviewed_at, review_notes, created_at`

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

func scan(row scanner, p *domain.PaymentReference) error {
	return row.Scan(&p.ID, &p.MemberID, &p.LoanID, &p.Amount, &p.ReferenceNumber, &p.ProofPath, &p.Status,
		&p.ReviewedBy, &p.ReviewedAt, &p.ReviewNotes, &p.CreatedAt)
}

func (r *Repository) Create(ctx context.Context, p *domain.PaymentReference) error {
	query := `
        INSERT INTO payment_references (member_id, loan_id, amount, reference_number, proof_path, status)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id, created_at
    `
	err := r.db.QueryRow(ctx, query, p.MemberID, p.LoanID, p.Amount, p.ReferenceNumber, p.ProofPath, string(p.Status)).
		Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		if pg.IsUniqueViolation(err) {
			return ErrDuplicateReference
		}
		zap.L().Error("can't save payment reference", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.PaymentReference, error) {
	var p domain.PaymentReference
	err := scan(r.db.QueryRow(ctx, "SELECT "+columns+" FROM payment_references WHERE id = $1", id), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find payment reference", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	return &p, nil
}

// List returns references newest first. An empty status returns all of them.
func (r *Repository) List(ctx context.Context, status domain.PaymentStatus) ([]domain.PaymentReference, error) {
	query := `SELECT ` + columns + ` FROM payment_references
        WHERE ($1::text = '' OR status = $1)
        ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query, string(status))
}

func (r *Repository) ListByMember(ctx context.Context, memberID int) ([]domain.PaymentReference, error) {
	query := `SELECT ` + columns + ` FROM payment_references
        WHERE member_id = $1
        ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query, memberID)
}

func (r *Repository) list(ctx context.Context, query string, arg any) ([]domain.PaymentReference, error) {
	rows, err := r.db.Query(ctx, query, arg)
	if err != nil {
		zap.L().Error("can't list payment references", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	refs := make([]domain.PaymentReference, 0)
	for rows.Next() {
		var p domain.PaymentReference
		if err := scan(rows, &p); err != nil {
			zap.L().Error("can't scan payment reference row", zap.Error(err))
			return nil, err
		}
		refs = append(refs, p)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate payment references", zap.Error(err))
		return nil, err
	}
	return refs, nil
}

// Review settles a pending reference. A confirmation also books a loan_payment
// transaction and lowers the linked loan's outstanding balance, all in one
// transaction. It returns nil, nil when the reference is not pending anymore.
func (r *Repository) Review(ctx context.Context, id int, to domain.PaymentStatus, reviewerID int, notes string, at time.Time) (*domain.PaymentReference, error) {
	update := `
        UPDATE payment_references
        SET status = $1, reviewed_by = $2, review_notes = $3, reviewed_at = $4
        WHERE id = $5 AND status = $6
        RETURNING ` + columns
	insertTx := `
        INSERT INTO transactions (member_id, loan_id, type, amount, description)
        VALUES ($1, $2, $3, $4, $5)
    `
	payLoan := `
        UPDATE loans
        SET outstanding_balance = GREATEST(outstanding_balance - $1, 0),
            status = CASE WHEN outstanding_balance - $1 <= 0 THEN 'paid' ELSE status END
        WHERE id = $2 AND member_id = $3
    `

	var (
		p       domain.PaymentReference
		settled bool
	)
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := scan(r.db.QueryRow(ctx, update, string(to), reviewerID, notes, at, id, string(domain.PaymentPending)), &p)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			zap.L().Error("can't review payment reference", zap.Int("id", id), zap.Error(err))
			return err
		}
		settled = true

		if to != domain.PaymentConfirmed {
			return nil
		}
		if _, err := r.db.Exec(ctx, insertTx, p.MemberID, p.LoanID, domain.TransactionLoanPayment, p.Amount,
			"Payment "+p.ReferenceNumber); err != nil {
			zap.L().Error("can't book loan payment", zap.Int("id", id), zap.Error(err))
			return err
		}
		if p.LoanID == nil {
			return nil
		}
		if _, err := r.db.Exec(ctx, payLoan, p.Amount, *p.LoanID, p.MemberID); err != nil {
			zap.L().Error("can't apply loan payment", zap.Int("loan_id", *p.LoanID), zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !settled {
		return nil, nil
	}
	return &p, nil
}
