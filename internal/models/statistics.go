package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pema-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MonthlyStatistics are the aggregate figures for the current calendar month.
type MonthlyStatistics struct {
	TotalExpenses       decimal.Decimal
	RemainingBalance    decimal.Decimal
	AverageDailyExpense decimal.Decimal
}

// Statistics computes the monthly statistics for the user.
//
// The month boundary is derived from today, which callers inject so that the
// computation is deterministic in tests.
//
// RemainingBalance is the cached profile balance. Expenses are debited from
// the balance when they are created, subtracting the monthly total here a
// second time would double-count them.
func Statistics(db *gorm.DB, userID uuid.UUID, today time.Time) (MonthlyStatistics, error) {
	var profile Profile
	err := db.Where(&Profile{UserID: userID}).First(&profile).Error
	if err != nil {
		return MonthlyStatistics{}, err
	}

	total, err := MonthlyExpenseSum(db, userID, types.MonthOf(today))
	if err != nil {
		return MonthlyStatistics{}, err
	}

	days := decimal.NewFromInt(int64(max(1, today.Day())))

	return MonthlyStatistics{
		TotalExpenses:       total.Round(2),
		RemainingBalance:    profile.Balance.Round(2),
		AverageDailyExpense: total.Div(days).Round(2),
	}, nil
}
