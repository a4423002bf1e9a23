// Package loancalc computes loan deductions and amortization schedules.
package loancalc

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// DefaultAnnualRate is the cooperative's nominal annual interest rate.
const DefaultAnnualRate = 0.12

const (
	MaxTermMonths = 360

	LoanTypeRegular   = "regular"
	LoanTypeEmergency = "emergency"
)

var (
	ErrNegativePrincipal = errors.New("principal must not be negative")
	ErrInvalidTerm       = errors.New("term must be between 1 and 360 months")
	ErrNegativeRate      = errors.New("annual rate must not be negative")
	ErrUnknownLoanType   = errors.New("unknown loan type")
)

var (
	serviceFeeRate   = decimal.RequireFromString("0.03")
	shareCapitalRate = decimal.RequireFromString("0.03")
	insuranceDivisor = decimal.NewFromInt(1000)
)

var loanTerms = map[string]int{
	LoanTypeRegular:   12,
	LoanTypeEmergency: 6,
}

// TermForLoanType maps a loan type to its fixed term in months.
func TermForLoanType(loanType string) (int, error) {
	term, ok := loanTerms[loanType]
	if !ok {
		return 0, ErrUnknownLoanType
	}
	return term, nil
}

type Breakdown struct {
	Principal      decimal.Decimal
	TermMonths     int
	AnnualRate     decimal.Decimal
	ServiceFee     decimal.Decimal
	ShareCapital   decimal.Decimal
	Insurance      decimal.Decimal
	NetProceeds    decimal.Decimal
	MonthlyPayment decimal.Decimal
}

// TotalDeductions is service fee + share capital + insurance.
func (b Breakdown) TotalDeductions() decimal.Decimal {
	return b.ServiceFee.Add(b.ShareCapital).Add(b.Insurance)
}

// Calculate returns the deductions and monthly payment for a loan.
// Each deduction is rounded to centavos and NetProceeds is the exact remainder,
// so NetProceeds + TotalDeductions always equals Principal.
func Calculate(principal float64, termMonths int, annualRate float64) (Breakdown, error) {
	if err := validate(principal, termMonths, annualRate); err != nil {
		return Breakdown{}, err
	}

	p := decimal.NewFromFloat(principal).Round(2)
	b := Breakdown{
		Principal:    p,
		TermMonths:   termMonths,
		AnnualRate:   decimal.NewFromFloat(annualRate),
		ServiceFee:   p.Mul(serviceFeeRate).Round(2),
		ShareCapital: p.Mul(shareCapitalRate).Round(2),
		Insurance:    p.Mul(decimal.NewFromInt(int64(termMonths))).Div(insuranceDivisor).Round(2),
	}
	b.NetProceeds = p.Sub(b.TotalDeductions())
	b.MonthlyPayment = decimal.NewFromFloat(monthlyPayment(p.InexactFloat64(), termMonths, annualRate)).Round(2)

	return b, nil
}

type Installment struct {
	Month     int
	Payment   decimal.Decimal
	Interest  decimal.Decimal
	Principal decimal.Decimal
	Balance   decimal.Decimal
}

// Schedule returns the month-by-month amortization table. The last installment
// absorbs rounding so the final balance is exactly zero.
func Schedule(principal float64, termMonths int, annualRate float64) ([]Installment, error) {
	b, err := Calculate(principal, termMonths, annualRate)
	if err != nil {
		return nil, err
	}

	rate := decimal.NewFromFloat(annualRate).Div(decimal.NewFromInt(12))
	balance := b.Principal
	out := make([]Installment, 0, termMonths)
	for month := 1; month <= termMonths; month++ {
		interest := balance.Mul(rate).Round(2)
		payment := b.MonthlyPayment
		principalPart := payment.Sub(interest)
		if month == termMonths || principalPart.GreaterThan(balance) {
			principalPart = balance
			payment = principalPart.Add(interest)
		}
		balance = balance.Sub(principalPart)
		out = append(out, Installment{
			Month:     month,
			Payment:   payment,
			Interest:  interest,
			Principal: principalPart,
			Balance:   balance,
		})
	}
	return out, nil
}

func validate(principal float64, termMonths int, annualRate float64) error {
	switch {
	case principal < 0 || math.IsNaN(principal) || math.IsInf(principal, 0):
		return ErrNegativePrincipal
	case termMonths < 1 || termMonths > MaxTermMonths:
		return ErrInvalidTerm
	case annualRate < 0 || math.IsNaN(annualRate) || math.IsInf(annualRate, 0):
		return ErrNegativeRate
	}
	return nil
}

// monthlyPayment is P·r·(1+r)^n / ((1+r)^n − 1) with r the monthly rate.
func monthlyPayment(principal float64, termMonths int, annualRate float64) float64 {
	n := float64(termMonths)
	r := annualRate / 12
	if r == 0 {
		return principal / n
	}
	f := math.Pow(1+r, n)
	return principal * r * f / (f - 1)
}
