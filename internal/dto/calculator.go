package dto

import "github.com/shopspring/decimal"

func init() {
	// amounts are written as JSON numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

type Installment struct {
	Month     int             `json:"month" example:"1"`
	Payment   decimal.Decimal `json:"payment" swaggertype:"number" example:"8884.88"`
	Interest  decimal.Decimal `json:"interest" swaggertype:"number" example:"1000"`
	Principal decimal.Decimal `json:"principal" swaggertype:"number" example:"7884.88"`
	Balance   decimal.Decimal `json:"balance" swaggertype:"number" example:"92115.12"`
}

type CalculatorResponse struct {
	Success         bool            `json:"success" example:"true"`
	LoanType        string          `json:"loanType,omitempty" example:"regular"`
	Principal       decimal.Decimal `json:"principal" swaggertype:"number" example:"100000"`
	TermMonths      int             `json:"termMonths" example:"12"`
	AnnualRate      decimal.Decimal `json:"annualRate" swaggertype:"number" example:"0.12"`
	ServiceFee      decimal.Decimal `json:"serviceFee" swaggertype:"number" example:"3000"`
	ShareCapital    decimal.Decimal `json:"shareCapital" swaggertype:"number" example:"3000"`
	Insurance       decimal.Decimal `json:"insurance" swaggertype:"number" example:"1200"`
	TotalDeductions decimal.Decimal `json:"totalDeductions" swaggertype:"number" example:"7200"`
	NetProceeds     decimal.Decimal `json:"netProceeds" swaggertype:"number" example:"92800"`
	MonthlyPayment  decimal.Decimal `json:"monthlyPayment" swaggertype:"number" example:"8884.88"`
	Schedule        []Installment   `json:"schedule,omitempty"`
}

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Database string `json:"database" example:"healthy"`
}
