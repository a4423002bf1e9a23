package membershiprepo

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

var columnNames = []string{"id", "first_name", "middle_name", "last_name", "birth_date", "gender", "civil_status",
	"contact_number", "email", "address", "occupation", "employer", "monthly_income", "tin", "beneficiary",
	"photo_path", "valid_id_path", "status", "membership_number", "reviewed_by", "reviewed_at", "review_notes", "created_at"}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func sample(id int, status domain.Status, created time.Time) domain.MembershipApplication {
	return domain.MembershipApplication{
		ID:            id,
		FirstName:     "Maria",
		LastName:      "Santos",
		BirthDate:     time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Gender:        "female",
		CivilStatus:   "single",
		ContactNumber: "09171234567",
		Email:         "maria@example.org",
		Address:       "Quezon City",
		Occupation:    "Nurse",
		MonthlyIncome: 25000,
		PhotoPath:     strPtr("membership/1-a.png"),
		Status:        status,
		CreatedAt:     created,
	}
}

func values(a domain.MembershipApplication) []any {
	return []any{a.ID, a.FirstName, a.MiddleName, a.LastName, a.BirthDate, a.Gender, a.CivilStatus,
		a.ContactNumber, a.Email, a.Address, a.Occupation, a.Employer, a.MonthlyIncome, a.TIN, a.Beneficiary,
		a.PhotoPath, a.ValidIDPath, a.Status, a.MembershipNumber, a.ReviewedBy, a.ReviewedAt, a.ReviewNotes, a.CreatedAt}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectID  int
	}{
		{
			name: "Insert returns id",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO membership_applications")).
					WithArgs("Maria", "", "Santos", pgxmock.AnyArg(), "female", "single", "09171234567", "maria@example.org",
						"Quezon City", "Nurse", "", 25000.0, "", "", strPtr("membership/1-a.png"), (*string)(nil), "pending").
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(7, now))
			},
			expectID: 7,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO membership_applications")).
					WithArgs("Maria", "", "Santos", pgxmock.AnyArg(), "female", "single", "09171234567", "maria@example.org",
						"Quezon City", "Nurse", "", 25000.0, "", "", strPtr("membership/1-a.png"), (*string)(nil), "pending").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			app := sample(0, domain.StatusPending, time.Time{})
			err := repo.Create(context.Background(), &app)
			assert.NoError(t, mock.ExpectationsWereMet())
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectID, app.ID)
			assert.Equal(t, now, app.CreatedAt)
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	existing := sample(3, domain.StatusPending, now)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		result    *domain.MembershipApplication
	}{
		{
			name: "Application exists",
			id:   3,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM membership_applications WHERE id = $1")).
					WithArgs(3).
					WillReturnRows(pgxmock.NewRows(columnNames).AddRow(values(existing)...))
			},
			result: &existing,
		},
		{
			name: "Application does not exist",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM membership_applications WHERE id = $1")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Database error",
			id:   3,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM membership_applications WHERE id = $1")).
					WithArgs(3).
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
	newer := sample(2, domain.StatusPending, now)
	older := sample(1, domain.StatusApproved, now.Add(-time.Hour))

	tests := []struct {
		name      string
		status    domain.Status
		mockSetup func()
		expectErr bool
		result    []domain.MembershipApplication
	}{
		{
			name:   "All applications newest first",
			status: "",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC")).
					WithArgs("").
					WillReturnRows(pgxmock.NewRows(columnNames).AddRow(values(newer)...).AddRow(values(older)...))
			},
			result: []domain.MembershipApplication{newer, older},
		},
		{
			name:   "Empty result is an empty slice",
			status: domain.StatusReturned,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE ($1::text = '' OR status = $1)")).
					WithArgs("returned").
					WillReturnRows(pgxmock.NewRows(columnNames))
			},
			result: []domain.MembershipApplication{},
		},
		{
			name:   "Database error",
			status: "",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("FROM membership_applications")).
					WithArgs("").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name:   "Scan row error",
			status: "",
			mockSetup: func() {
				bad := values(newer)
				bad[12] = "not-a-number"
				mock.ExpectQuery(regexp.QuoteMeta("FROM membership_applications")).
					WithArgs("").
					WillReturnRows(pgxmock.NewRows(columnNames).AddRow(bad...))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.List(context.Background(), tt.status)
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
	review := domain.Review{From: domain.StatusUnderReview, To: domain.StatusApproved, ReviewerID: 4, Notes: "complete", At: now}

	updated := sample(3, domain.StatusApproved, now)
	updated.ReviewedBy = intPtr(4)
	updated.ReviewedAt = &now
	updated.ReviewNotes = "complete"
	updated.MembershipNumber = strPtr("M-0003")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		errIs     error
		result    *domain.MembershipApplication
	}{
		{
			name: "Row updated",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $6 AND status = $7")).
					WithArgs("approved", 4, "complete", now, strPtr("M-0003"), 3, "under_review").
					WillReturnRows(pgxmock.NewRows(columnNames).AddRow(values(updated)...))
			},
			result: &updated,
		},
		{
			name: "Status changed underneath",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE membership_applications")).
					WithArgs("approved", 4, "complete", now, strPtr("M-0003"), 3, "under_review").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Membership number already assigned",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE membership_applications")).
					WithArgs("approved", 4, "complete", now, strPtr("M-0003"), 3, "under_review").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			expectErr: true,
			errIs:     ErrDuplicateMembershipNumber,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("UPDATE membership_applications")).
					WithArgs("approved", 4, "complete", now, strPtr("M-0003"), 3, "under_review").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.UpdateStatus(context.Background(), 3, review, strPtr("M-0003"))
			assert.NoError(t, mock.ExpectationsWereMet())
			if tt.expectErr {
				assert.Error(t, err)
				if tt.errIs != nil {
					assert.ErrorIs(t, err, tt.errIs)
					assert.ErrorIs(t, err, domain.ErrAlreadyExists)
				}
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}
}
