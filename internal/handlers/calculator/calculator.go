package calculator

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/GlebRadaev/coopportal/internal/dto"
	"github.com/GlebRadaev/coopportal/pkg/loancalc"
	"github.com/GlebRadaev/coopportal/pkg/utils"
)

type CalculatorHandler struct {
	annualRate float64
}

func New(annualRate float64) *CalculatorHandler {
	return &CalculatorHandler{annualRate: annualRate}
}

// Calculate godoc
//
//	@Summary		Loan deductions and monthly payment
//	@Description	Either term or loan_type must be given. schedule=true adds the amortization table.
//	@Tags			Calculator
//	@Produce		json
//	@Param			principal	query	number	true	"Loan amount"
//	@Param			term		query	int		false	"Term in months, 1 to 360"
//	@Param			loan_type	query	string	false	"regular or emergency"
//	@Param			rate		query	number	false	"Annual rate, 0.12 for 12%"
//	@Param			schedule	query	bool	false	"Include the amortization table"
//	@Success		200	{object}	dto.CalculatorResponse
//	@Failure		400	{object}	utils.Response	"Invalid parameters"
//	@Router			/api/loan-calculator [get]
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	principal, err := strconv.ParseFloat(q.Get("principal"), 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "principal must be a number")
		return
	}

	loanType := q.Get("loan_type")
	var term int
	switch {
	case q.Get("term") != "":
		term, err = strconv.Atoi(q.Get("term"))
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "term must be a whole number of months")
			return
		}
	case loanType != "":
		term, err = loancalc.TermForLoanType(loanType)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
	default:
		utils.RespondWithError(w, http.StatusBadRequest, "term or loan_type is required")
		return
	}

	rate := h.annualRate
	if raw := q.Get("rate"); raw != "" {
		if rate, err = strconv.ParseFloat(raw, 64); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "rate must be a number")
			return
		}
	}

	b, err := loancalc.Calculate(principal, term, rate)
	if err != nil {
		respondWithCalcError(w, r, err)
		return
	}
	resp := dto.CalculatorResponse{
		Success:         true,
		LoanType:        loanType,
		Principal:       b.Principal,
		TermMonths:      b.TermMonths,
		AnnualRate:      b.AnnualRate,
		ServiceFee:      b.ServiceFee,
		ShareCapital:    b.ShareCapital,
		Insurance:       b.Insurance,
		TotalDeductions: b.TotalDeductions(),
		NetProceeds:     b.NetProceeds,
		MonthlyPayment:  b.MonthlyPayment,
	}

	if withSchedule, _ := strconv.ParseBool(q.Get("schedule")); withSchedule {
		rows, err := loancalc.Schedule(principal, term, rate)
		if err != nil {
			respondWithCalcError(w, r, err)
			return
		}
		resp.Schedule = make([]dto.Installment, 0, len(rows))
		for _, row := range rows {
			resp.Schedule = append(resp.Schedule, dto.Installment{
				Month:     row.Month,
				Payment:   row.Payment,
				Interest:  row.Interest,
				Principal: row.Principal,
				Balance:   row.Balance,
			})
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func respondWithCalcError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, loancalc.ErrNegativePrincipal),
		errors.Is(err, loancalc.ErrInvalidTerm),
		errors.Is(err, loancalc.ErrNegativeRate):
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
	default:
		utils.RespondWithInternalError(w, r, err)
	}
}
