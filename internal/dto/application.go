package dto

import (
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/GlebRadaev/coopportal/internal/domain"
)

const dateLayout = "2006-01-02"

// MembershipApplicationForm is the multipart body of the landing page intake.
type MembershipApplicationForm struct {
	FirstName     string  `form:"first_name" validate:"required,max=100"`
	MiddleName    string  `form:"middle_name" validate:"max=100"`
	LastName      string  `form:"last_name" validate:"required,max=100"`
	BirthDate     string  `form:"birth_date" validate:"required,datetime=2006-01-02"`
	Gender        string  `form:"gender" validate:"required,oneof=male female other"`
	CivilStatus   string  `form:"civil_status" validate:"required,oneof=single married widowed separated"`
	ContactNumber string  `form:"contact_number" validate:"required,max=32"`
	Email         string  `form:"email" validate:"required,email,max=255"`
	Address       string  `form:"address" validate:"required"`
	Occupation    string  `form:"occupation" validate:"required,max=255"`
	Employer      string  `form:"employer" validate:"max=255"`
	MonthlyIncome float64 `form:"monthly_income" validate:"gte=0,lte=999999999999.99"`
	TIN           string  `form:"tin" validate:"max=32"`
	Beneficiary   string  `form:"beneficiary" validate:"max=255"`
}

// MembershipFormFromRequest reads an already parsed multipart form. The second
// result names the first numeric field that did not parse.
func MembershipFormFromRequest(r *http.Request) (MembershipApplicationForm, string) {
	f := MembershipApplicationForm{
		FirstName:     value(r, "first_name"),
		MiddleName:    value(r, "middle_name"),
		LastName:      value(r, "last_name"),
		BirthDate:     value(r, "birth_date"),
		Gender:        strings.ToLower(value(r, "gender")),
		CivilStatus:   strings.ToLower(value(r, "civil_status")),
		ContactNumber: value(r, "contact_number"),
		Email:         value(r, "email"),
		Address:       value(r, "address"),
		Occupation:    value(r, "occupation"),
		Employer:      value(r, "employer"),
		TIN:           value(r, "tin"),
		Beneficiary:   value(r, "beneficiary"),
	}
	var ok bool
	if f.MonthlyIncome, ok = number(r, "monthly_income"); !ok {
		return f, "monthly_income"
	}
	return f, ""
}

// Domain assumes the form passed validation.
func (f MembershipApplicationForm) Domain() *domain.MembershipApplication {
	birth, _ := time.Parse(dateLayout, f.BirthDate)
	return &domain.MembershipApplication{
		FirstName:     f.FirstName,
		MiddleName:    f.MiddleName,
		LastName:      f.LastName,
		BirthDate:     birth,
		Gender:        f.Gender,
		CivilStatus:   f.CivilStatus,
		ContactNumber: f.ContactNumber,
		Email:         f.Email,
		Address:       f.Address,
		Occupation:    f.Occupation,
		Employer:      f.Employer,
		MonthlyIncome: f.MonthlyIncome,
		TIN:           f.TIN,
		Beneficiary:   f.Beneficiary,
	}
}

// LoanApplicationForm is the multipart body of the member portal intake.
type LoanApplicationForm struct {
	LoanType      string  `form:"loan_type" validate:"required,oneof=regular emergency"`
	Amount        float64 `form:"amount" validate:"gt=0,lte=999999999999.99"`
	TermMonths    int     `form:"term_months" validate:"gte=0,lte=360"`
	Purpose       string  `form:"purpose" validate:"required"`
	FullName      string  `form:"full_name" validate:"required,max=255"`
	ContactNumber string  `form:"contact_number" validate:"required,max=32"`
	Address       string  `form:"address" validate:"required"`
	Employer      string  `form:"employer" validate:"max=255"`
	MonthlyIncome float64 `form:"monthly_income" validate:"gte=0,lte=999999999999.99"`
	CoMakerName   string  `form:"co_maker_name" validate:"max=255"`
}

func LoanFormFromRequest(r *http.Request) (LoanApplicationForm, string) {
	f := LoanApplicationForm{
		LoanType:      strings.ToLower(value(r, "loan_type")),
		Purpose:       value(r, "purpose"),
		FullName:      value(r, "full_name"),
		ContactNumber: value(r, "contact_number"),
		Address:       value(r, "address"),
		Employer:      value(r, "employer"),
		CoMakerName:   value(r, "co_maker_name"),
	}
	var ok bool
	if f.Amount, ok = number(r, "amount"); !ok {
		return f, "amount"
	}
	if f.MonthlyIncome, ok = number(r, "monthly_income"); !ok {
		return f, "monthly_income"
	}
	if term := value(r, "term_months"); term != "" {
		n, err := strconv.Atoi(term)
		if err != nil {
			return f, "term_months"
		}
		f.TermMonths = n
	}
	return f, ""
}

func (f LoanApplicationForm) Domain(userID int) *domain.LoanApplication {
	return &domain.LoanApplication{
		UserID:        &userID,
		LoanType:      f.LoanType,
		Amount:        f.Amount,
		TermMonths:    f.TermMonths,
		Purpose:       f.Purpose,
		FullName:      f.FullName,
		ContactNumber: f.ContactNumber,
		Address:       f.Address,
		Employer:      f.Employer,
		MonthlyIncome: f.MonthlyIncome,
		CoMakerName:   f.CoMakerName,
	}
}

type MembershipStatusRequest struct {
	Status           string  `json:"status" validate:"required" example:"approved"`
	ReviewNotes      string  `json:"reviewNotes" example:"Documents complete"`
	MembershipNumber *string `json:"membershipNumber,omitempty" validate:"omitempty,max=32" example:"M-0012"`
}

type LoanStatusRequest struct {
	ID               int    `json:"id" validate:"required,gt=0" example:"9"`
	Status           string `json:"status" validate:"required" example:"under_review"`
	ReviewerComments string `json:"reviewer_comments" example:"Checking payslip"`
}

type SubmitResponse struct {
	Success       bool   `json:"success" example:"true"`
	ApplicationID int    `json:"applicationId" example:"12"`
	Message       string `json:"message,omitempty" example:"Application submitted"`
}

type MembershipApplication struct {
	ID               int        `json:"id" example:"12"`
	FirstName        string     `json:"first_name" example:"Maria"`
	MiddleName       string     `json:"middle_name"`
	LastName         string     `json:"last_name" example:"Santos"`
	BirthDate        string     `json:"birth_date" example:"1990-05-01"`
	Gender           string     `json:"gender" example:"female"`
	CivilStatus      string     `json:"civil_status" example:"single"`
	ContactNumber    string     `json:"contact_number" example:"09171234567"`
	Email            string     `json:"email" example:"maria@example.org"`
	Address          string     `json:"address"`
	Occupation       string     `json:"occupation"`
	Employer         string     `json:"employer"`
	MonthlyIncome    float64    `json:"monthly_income" example:"25000"`
	TIN              string     `json:"tin"`
	Beneficiary      string     `json:"beneficiary"`
	PhotoPath        *string    `json:"photo_path" example:"membership/1728900000000000000-1a2b3c4d.png"`
	ValidIDPath      *string    `json:"valid_id_path"`
	Status           string     `json:"status" example:"pending"`
	MembershipNumber *string    `json:"membership_number"`
	ReviewedBy       *int       `json:"reviewed_by"`
	ReviewedAt       *time.Time `json:"reviewed_at"`
	ReviewNotes      string     `json:"review_notes"`
	CreatedAt        time.Time  `json:"created_at"`
}

func NewMembershipApplication(a domain.MembershipApplication) MembershipApplication {
	return MembershipApplication{
		ID:               a.ID,
		FirstName:        a.FirstName,
		MiddleName:       a.MiddleName,
		LastName:         a.LastName,
		BirthDate:        a.BirthDate.Format(dateLayout),
		Gender:           a.Gender,
		CivilStatus:      a.CivilStatus,
		ContactNumber:    a.ContactNumber,
		Email:            a.Email,
		Address:          a.Address,
		Occupation:       a.Occupation,
		Employer:         a.Employer,
		MonthlyIncome:    a.MonthlyIncome,
		TIN:              a.TIN,
		Beneficiary:      a.Beneficiary,
		PhotoPath:        a.PhotoPath,
		ValidIDPath:      a.ValidIDPath,
		Status:           string(a.Status),
		MembershipNumber: a.MembershipNumber,
		ReviewedBy:       a.ReviewedBy,
		ReviewedAt:       a.ReviewedAt,
		ReviewNotes:      a.ReviewNotes,
		CreatedAt:        a.CreatedAt,
	}
}

type MembershipApplicationResponse struct {
	Success     bool                  `json:"success" example:"true"`
	Application MembershipApplication `json:"application"`
}

type MembershipApplicationsResponse struct {
	Success      bool                    `json:"success" example:"true"`
	Applications []MembershipApplication `json:"applications"`
}

func NewMembershipApplications(apps []domain.MembershipApplication) MembershipApplicationsResponse {
	out := make([]MembershipApplication, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewMembershipApplication(a))
	}
	return MembershipApplicationsResponse{Success: true, Applications: out}
}

type LoanApplication struct {
	ID               int        `json:"id" example:"9"`
	UserID           *int       `json:"user_id" example:"5"`
	LoanType         string     `json:"loan_type" example:"regular"`
	Amount           float64    `json:"amount" example:"100000"`
	TermMonths       int        `json:"term_months" example:"12"`
	Purpose          string     `json:"purpose"`
	FullName         string     `json:"full_name"`
	ContactNumber    string     `json:"contact_number"`
	Address          string     `json:"address"`
	Employer         string     `json:"employer"`
	MonthlyIncome    float64    `json:"monthly_income"`
	CoMakerName      string     `json:"co_maker_name"`
	PayslipPath      *string    `json:"payslip_path"`
	ValidIDPath      *string    `json:"valid_id_path"`
	Status           string     `json:"status" example:"pending"`
	ReviewedBy       *int       `json:"reviewed_by"`
	ReviewedAt       *time.Time `json:"reviewed_at"`
	ReviewerComments string     `json:"reviewer_comments"`
	CreatedAt        time.Time  `json:"created_at"`
}

func NewLoanApplication(a domain.LoanApplication) LoanApplication {
	return LoanApplication{
		ID:               a.ID,
		UserID:           a.UserID,
		LoanType:         a.LoanType,
		Amount:           a.Amount,
		TermMonths:       a.TermMonths,
		Purpose:          a.Purpose,
		FullName:         a.FullName,
		ContactNumber:    a.ContactNumber,
		Address:          a.Address,
		Employer:         a.Employer,
		MonthlyIncome:    a.MonthlyIncome,
		CoMakerName:      a.CoMakerName,
		PayslipPath:      a.PayslipPath,
		ValidIDPath:      a.ValidIDPath,
		Status:           string(a.Status),
		ReviewedBy:       a.ReviewedBy,
		ReviewedAt:       a.ReviewedAt,
		ReviewerComments: a.ReviewerComments,
		CreatedAt:        a.CreatedAt,
	}
}

type LoanApplicationResponse struct {
	Success     bool            `json:"success" example:"true"`
	Application LoanApplication `json:"application"`
}

type LoanApplicationsResponse struct {
	Success      bool              `json:"success" example:"true"`
	Applications []LoanApplication `json:"applications"`
}

func NewLoanApplications(apps []domain.LoanApplication) LoanApplicationsResponse {
	out := make([]LoanApplication, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewLoanApplication(a))
	}
	return LoanApplicationsResponse{Success: true, Applications: out}
}

func value(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

// number treats a blank field as zero. NaN and infinities do not parse.
func number(r *http.Request, key string) (float64, bool) {
	raw := strings.ReplaceAll(value(r, key), ",", "")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.ParseFloat(raw, 64)
	return n, err == nil && !math.IsNaN(n) && !math.IsInf(n, 0)
}
