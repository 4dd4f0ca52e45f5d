package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pema-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single dated expense of a user.
//
// The date is stamped at creation time and immutable afterwards. The category
// reference is nullable, it is set to null when the category is deleted.
type Expense struct {
	DefaultModel
	User        User            `json:"-"`
	UserID      uuid.UUID       `gorm:"index"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(10,2)"`
	Date        time.Time
	Category    *Category `json:"-" gorm:"constraint:OnDelete:SET NULL"`
	CategoryID  *uuid.UUID
	Description string
}

// BeforeSave sets the timezone for the Date to UTC.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as timezone, not +0000.
func (e *Expense) AfterFind(tx *gorm.DB) error {
	e.Date = e.Date.In(time.UTC)
	return nil
}

// Summary provides a brief description of the expense for quick viewing.
func (e Expense) Summary() string {
	return fmt.Sprintf("Expense of %s on %s", e.Amount, e.Date.Format("2006-01-02"))
}

// ExpensesForMonth returns the expenses of the user in the month, most
// recent first.
func ExpensesForMonth(db *gorm.DB, userID uuid.UUID, month types.Month) ([]Expense, error) {
	var expenses []Expense

	err := db.
		Where(&Expense{UserID: userID}).
		Where("expenses.date >= date(?)", time.Time(month)).
		Where("expenses.date < date(?)", time.Time(month.AddDate(0, 1))).
		Order("datetime(expenses.date) DESC, datetime(expenses.created_at) DESC").
		Find(&expenses).Error

	return expenses, err
}

// ExpensesByCategoryForMonth groups the expenses of the user in the month by
// category name. Expenses without a category are grouped under "none".
//
// The order of the groups is undefined.
func ExpensesByCategoryForMonth(db *gorm.DB, userID uuid.UUID, month types.Month) (map[string][]Expense, error) {
	expenses, err := ExpensesForMonth(db, userID, month)
	if err != nil {
		return nil, err
	}

	// Resolve the category names once instead of preloading per expense
	var categories []Category
	err = db.Find(&categories).Error
	if err != nil {
		return nil, err
	}

	names := make(map[uuid.UUID]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}

	grouped := make(map[string][]Expense)
	for _, expense := range expenses {
		label := "none"
		if expense.CategoryID != nil {
			if name, ok := names[*expense.CategoryID]; ok {
				label = name
			}
		}

		grouped[label] = append(grouped[label], expense)
	}

	return grouped, nil
}

// MonthlyExpenseSum returns the sum of the amounts of all expenses of the
// user in the month.
func MonthlyExpenseSum(db *gorm.DB, userID uuid.UUID, month types.Month) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.Table("expenses").
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Where("expenses.date >= date(?)", time.Time(month)).
		Where("expenses.date < date(?)", time.Time(month.AddDate(0, 1))).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing expenses for user %s failed: %w", userID, err)
	}

	return sum.Decimal, nil
}
