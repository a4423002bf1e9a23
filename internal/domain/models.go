package domain

import (
	"errors"
	"time"
)

// MaxAmount is the largest value a NUMERIC(14,2) money column holds.
const MaxAmount = 999999999999.99

type Role string

const (
	RoleAdmin              Role = "admin"
	RoleManager            Role = "manager"
	RoleLoanOfficer        Role = "loan_officer"
	RoleCashier            Role = "cashier"
	RoleITAdmin            Role = "it_admin"
	RoleCreditInvestigator Role = "credit_investigator"
)

var roles = map[Role]struct{}{
	RoleAdmin:              {},
	RoleManager:            {},
	RoleLoanOfficer:        {},
	RoleCashier:            {},
	RoleITAdmin:            {},
	RoleCreditInvestigator: {},
}

func (r Role) Valid() bool {
	_, ok := roles[r]
	return ok
}

// StaffUser is a row of the staff portal's users table.
type StaffUser struct {
	ID           int       `db:"id"`
	Email        string    `db:"email"`
	FullName     string    `db:"full_name"`
	Role         Role      `db:"role"`
	PasswordHash string    `db:"password_hash"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

// Member is a row of member_users, the member portal login.
type Member struct {
	ID           int       `db:"id"`
	MemberNumber string    `db:"member_number"`
	Email        *string   `db:"email"`
	FullName     string    `db:"full_name"`
	PasswordHash string    `db:"password_hash"`
	IsActive     bool      `db:"is_active"`
	CreatedAt    time.Time `db:"created_at"`
}

type MembershipApplication struct {
	ID               int        `db:"id"`
	FirstName        string     `db:"first_name"`
	MiddleName       string     `db:"middle_name"`
	LastName         string     `db:"last_name"`
	BirthDate        time.Time  `db:"birth_date"`
	Gender           string     `db:"gender"`
	CivilStatus      string     `db:"civil_status"`
	ContactNumber    string     `db:"contact_number"`
	Email            string     `db:"email"`
	Address          string     `db:"address"`
	Occupation       string     `db:"occupation"`
	Employer         string     `db:"employer"`
	MonthlyIncome    float64    `db:"monthly_income"`
	TIN              string     `db:"tin"`
	Beneficiary      string     `db:"beneficiary"`
	PhotoPath        *string    `db:"photo_path"`
	ValidIDPath      *string    `db:"valid_id_path"`
	Status           Status     `db:"status"`
	MembershipNumber *string    `db:"membership_number"`
	ReviewedBy       *int       `db:"reviewed_by"`
	ReviewedAt       *time.Time `db:"reviewed_at"`
	ReviewNotes      string     `db:"review_notes"`
	CreatedAt        time.Time  `db:"created_at"`
}

type LoanApplication struct {
	ID               int        `db:"id"`
	UserID           *int       `db:"user_id"`
	LoanType         string     `db:"loan_type"`
	Amount           float64    `db:"amount"`
	TermMonths       int        `db:"term_months"`
	Purpose          string     `db:"purpose"`
	FullName         string     `db:"full_name"`
	ContactNumber    string     `db:"contact_number"`
	Address          string     `db:"address"`
	Employer         string     `db:"employer"`
	MonthlyIncome    float64    `db:"monthly_income"`
	CoMakerName      string     `db:"co_maker_name"`
	PayslipPath      *string    `db:"payslip_path"`
	ValidIDPath      *string    `db:"valid_id_path"`
	Status           Status     `db:"status"`
	ReviewedBy       *int       `db:"reviewed_by"`
	ReviewedAt       *time.Time `db:"reviewed_at"`
	ReviewerComments string     `db:"reviewer_comments"`
	CreatedAt        time.Time  `db:"created_at"`
}

// Review is the reviewer metadata written together with a status change.
type Review struct {
	From       Status
	To         Status
	ReviewerID int
	Notes      string
	At         time.Time
}

const (
	AccountSavings      = "savings"
	AccountShareCapital = "share_capital"
)

type Account struct {
	ID            int       `db:"id"`
	MemberID      int       `db:"member_id"`
	AccountNumber string    `db:"account_number"`
	AccountType   string    `db:"account_type"`
	Balance       float64   `db:"balance"`
	CreatedAt     time.Time `db:"created_at"`
}

const (
	LoanActive = "active"
	LoanPaid   = "paid"
)

type Loan struct {
	ID                 int       `db:"id"`
	MemberID           int       `db:"member_id"`
	ApplicationID      *int      `db:"application_id"`
	Principal          float64   `db:"principal"`
	TermMonths         int       `db:"term_months"`
	MonthlyPayment     float64   `db:"monthly_payment"`
	OutstandingBalance float64   `db:"outstanding_balance"`
	Status             string    `db:"status"`
	ReleasedAt         time.Time `db:"released_at"`
}

const (
	TransactionDeposit     = "deposit"
	TransactionWithdrawal  = "withdrawal"
	TransactionLoanPayment = "loan_payment"
)

type Transaction struct {
	ID          int       `db:"id"`
	MemberID    int       `db:"member_id"`
	AccountID   *int      `db:"account_id"`
	LoanID      *int      `db:"loan_id"`
	Type        string    `db:"type"`
	Amount      float64   `db:"amount"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"`
}

type PaymentReference struct {
	ID              int           `db:"id"`
	MemberID        int           `db:"member_id"`
	LoanID          *int          `db:"loan_id"`
	Amount          float64       `db:"amount"`
	ReferenceNumber string        `db:"reference_number"`
	ProofPath       string        `db:"proof_path"`
	Status          PaymentStatus `db:"status"`
	ReviewedBy      *int          `db:"reviewed_by"`
	ReviewedAt      *time.Time    `db:"reviewed_at"`
	ReviewNotes     string        `db:"review_notes"`
	CreatedAt       time.Time     `db:"created_at"`
}

// ErrAlreadyExists marks unique key collisions reported by the store.
var ErrAlreadyExists = errors.New("already exists")
