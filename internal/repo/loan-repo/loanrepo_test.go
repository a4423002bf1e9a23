package loanrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/GlebRadaev/coopportal/internal/domain"
	"github.com/jackc/pgx/v5"
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

var columnNames = []string{"id", "user_id", "loan_type", "amount", "term_months", "purpose", "full_name",
	"contact_number", "address", "employer", "monthly_income", "co_maker_name", "payslip_path", "valid_id_path",
	"status", "reviewed_by", "reviewed_at", "reviewer_comments", "created_at"}

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }

func sample(id int, userID *int, status domain.Status, created time.Time) domain.LoanApplication {
	return domain.LoanApplication{
		ID:            id,
		UserID:        userID,
		LoanType:      "regular",
		Amount:        100000,
		TermMonths:    12,
		Purpose:       "Store expansion",
		FullName:      "Juan Dela Cruz",
		ContactNumber: "09181234567",
		Address:       "Pasig City",
		MonthlyIncome: 30000,
		PayslipPath:   strPtr("loan/1-b.png"),
		Status:        status,
		CreatedAt:     created,
	}
}

func values(a domain.LoanApplication) []any {
	return []any{a.ID, a.UserID, a.LoanType, a.Amount, a.TermMonths, a.Purpose, a.FullName,
		a.ContactNumber, a.Address, a.Employer, a.MonthlyIncome, a.CoMakerName, a.PayslipPath, a.ValidIDPath,
		a.Status, a.ReviewedBy, a.ReviewedAt, a.ReviewerComments, a.CreatedAt}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Insert returns id",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loan_applications")).
					WithArgs(intPtr(5), "regular", 100000.0, 12, "Store expansion", "Juan Dela Cruz", "09181234567",
						"Pasig City", "", 30000.0, "", strPtr("loan/1-b.png"), (*string)(nil), "pending").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(11, now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loan_applications")).
					WithArgs(intPtr(5), "regular", 100000.0, 12, "Store expansion", "Juan Dela Cruz", "09181234567",
						"Pasig City", "", 30000.0, "", strPtr("loan/1-b.png"), (*string)(nil), "pending").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			app := sample(0, intPtr(5), domain.StatusPending, time.Time{})
			err := repo.Create(context.Background(), &app)
			assert.NoError(t, mock.ExpectationsWereMet())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 11, app.ID)
			assert.Equal(t, now, app.CreatedAt)
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	existing := sample(4, intPtr(5), domain.StatusUnderReview, time.Now())

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.LoanApplication
	}{
		{
			name: "Application exists",
			id:   4,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM loan_applications WHERE id = $1")).
					WithArgs(4).
					WillReturnRows(pgxmock.NewRows(columnNames).AddRow(values(existing)...))
			},
			result: &existing,
		},
		{
			name: "Application does not exist",
			id:   40,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM loan_applications WHERE id = $1")).
					WithArgs(40).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   4,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM loan_applications WHERE id = $1")).
					WithArgs(4).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), tt.id)
			assert.NoError(t, mock.ExpectationsWereMet())
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_List(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	mine := sample(2, intPtr(5), domain.StatusPending, now)
	walkIn := sample(1, nil, domain.StatusRejected, now.Add(-time.Minute))

	tests := []struct {
		name      string
		userID    *int
		mockSetup func()
		expectErr bool
		result    []domain.LoanApplication
	}{
		{
			name:   "All applications",
			userID: nil,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE ($1::int IS NULL OR user_id = $1)")).
					WithArgs((*int)(nil)).
					WillReturnRows(pgxmock.NewRows(columnNames).AddRow(values(mine)...).AddRow(values(walkIn)...))
			},
			result: []domain.LoanApplication{mine, walkIn},
		},
		{
			name:   "One applicant",
			userID: intPtr(5),
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC")).
					WithArgs(intPtr(5)).
					WillReturnRows(pgxmock.NewRows(columnNames).AddRow(values(mine)...))
			},
			result: []domain.LoanApplication{mine},
		},
		{
			name:   "Database error",
			userID: nil,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM loan_applications")).
					WithArgs((*int)(nil)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background(), tt.userID)
			assert.NoError(t, mock.ExpectationsWereMet())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	review := domain.Review{From: domain.StatusPending, To: domain.StatusUnderReview, ReviewerID: 2, Notes: "checking payslip", At: now}

	updated := sample(4, intPtr(5), domain.StatusUnderReview, now)
	updated.ReviewedBy = intPtr(2)
	updated.ReviewedAt = &now
	updated.ReviewerComments = "checking payslip"

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.LoanApplication
	}{
		{
			name: "Row updated",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $5 AND status = $6")).
					WithArgs("under_review", 2, "checking payslip", now, 4, "pending").
					WillReturnRows(pgxmock.NewRows(columnNames).AddRow(values(updated)...))
			},
			result: &updated,
		},
		{
			name: "Lost the race",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE loan_applications")).
					WithArgs("under_review", 2, "checking payslip", now, 4, "pending").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE loan_applications")).
					WithArgs("under_review", 2, "checking payslip", now, 4, "pending").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.UpdateStatus(context.Background(), 4, review)
			assert.NoError(t, mock.ExpectationsWereMet())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}
