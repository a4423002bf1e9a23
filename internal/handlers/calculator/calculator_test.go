package calculator

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GlebRadaev/coopportal/pkg/loancalc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateHandler(t *testing.T) {
	handler := New(loancalc.DefaultAnnualRate)

	tests := []struct {
		name          string
		query         string
		expectedCode  int
		expectedError string
		expected      map[string]float64
		scheduleLen   int
	}{
		{
			name:         "Regular loan type",
			query:        "?principal=100000&loan_type=regular",
			expectedCode: http.StatusOK,
			expected: map[string]float64{
				"termMonths":      12,
				"serviceFee":      3000,
				"shareCapital":    3000,
				"insurance":       1200,
				"totalDeductions": 7200,
				"netProceeds":     92800,
				"monthlyPayment":  8884.88,
			},
		},
		{
			name:         "Explicit term with schedule",
			query:        "?principal=12000&term=12&rate=0&schedule=true",
			expectedCode: http.StatusOK,
			expected:     map[string]float64{"termMonths": 12, "monthlyPayment": 1000},
			scheduleLen:  12,
		},
		{
			name:          "Missing principal",
			query:         "?term=12",
			expectedCode:  http.StatusBadRequest,
			expectedError: "principal must be a number",
		},
		{
			name:          "Negative principal",
			query:         "?principal=-5&term=12",
			expectedCode:  http.StatusBadRequest,
			expectedError: loancalc.ErrNegativePrincipal.Error(),
		},
		{
			name:          "Term out of range",
			query:         "?principal=1000&term=361",
			expectedCode:  http.StatusBadRequest,
			expectedError: loancalc.ErrInvalidTerm.Error(),
		},
		{
			name:          "Unknown loan type",
			query:         "?principal=1000&loan_type=salary",
			expectedCode:  http.StatusBadRequest,
			expectedError: loancalc.ErrUnknownLoanType.Error(),
		},
		{
			name:          "No term",
			query:         "?principal=1000",
			expectedCode:  http.StatusBadRequest,
			expectedError: "term or loan_type is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.Calculate(w, httptest.NewRequest(http.MethodGet, "/api/loan-calculator"+tt.query, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
				return
			}

			var body map[string]any
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			for key, want := range tt.expected {
				got, ok := body[key].(float64)
				require.True(t, ok, "%s should be a JSON number, got %T", key, body[key])
				assert.InDelta(t, want, got, 0.001, key)
			}
			if tt.scheduleLen > 0 {
				schedule, ok := body["schedule"].([]any)
				require.True(t, ok)
				assert.Len(t, schedule, tt.scheduleLen)
			} else {
				assert.NotContains(t, body, "schedule")
			}
		})
	}
}
