package v1

import (
	"github.com/pema-app/backend/internal/models"
	"github.com/pema-app/backend/internal/types"
	"github.com/shopspring/decimal"
)

type MonthlyExpenses struct {
	Month    types.Month `json:"month" example:"2024-03"` // The month the report covers
	Expenses []Expense   `json:"expenses"`                // The expenses in the month, most recent first
}

type MonthlyExpensesResponse struct {
	Data  *MonthlyExpenses `json:"data"`  // The monthly expense report
	Error *string          `json:"error"` // The error, if any occurred
}

type MonthlyExpensesByCategory struct {
	Month  types.Month          `json:"month" example:"2024-03"` // The month the report covers
	Groups map[string][]Expense `json:"groups"`                  // Expenses grouped by category name, "none" for expenses without one
}

type MonthlyExpensesByCategoryResponse struct {
	Data  *MonthlyExpensesByCategory `json:"data"`  // The grouped monthly expense report
	Error *string                    `json:"error"` // The error, if any occurred
}

type MonthlyStatistics struct {
	Month               types.Month     `json:"month" example:"2024-03"`             // The month the statistics cover
	TotalExpenses       decimal.Decimal `json:"totalExpenses" example:"150"`         // Sum of the expenses in the month
	RemainingBalance    decimal.Decimal `json:"remainingBalance" example:"850"`      // Current balance, expenses are already debited from it
	AverageDailyExpense decimal.Decimal `json:"averageDailyExpense" example:"21.43"` // Total expenses divided by the days elapsed in the month
}

func newMonthlyStatistics(month types.Month, model models.MonthlyStatistics) MonthlyStatistics {
	return MonthlyStatistics{
		Month:               month,
		TotalExpenses:       model.TotalExpenses,
		RemainingBalance:    model.RemainingBalance,
		AverageDailyExpense: model.AverageDailyExpense,
	}
}

type MonthlyStatisticsResponse struct {
	Data  *MonthlyStatistics `json:"data"`  // The monthly statistics
	Error *string            `json:"error"` // The error, if any occurred
}
