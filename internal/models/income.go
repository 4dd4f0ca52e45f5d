package models

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is the declared income of a user. Every user has exactly one income
// record, created with an amount of zero during registration.
type Income struct {
	DefaultModel
	User        User            `json:"-"`
	UserID      uuid.UUID       `gorm:"uniqueIndex"`
	Amount      decimal.Decimal `gorm:"type:DECIMAL(10,2)"`
	Description string
}

// AfterSave verifies the income invariant. Zero is allowed since the record
// is created with a zero amount at registration, updates require a positive
// amount and are checked in UpdateIncome.
func (i *Income) AfterSave(_ *gorm.DB) error {
	if i.Amount.IsNegative() {
		return ErrIncomeAmountNegative
	}

	return nil
}

// Summary provides a brief description of the income record.
func (i Income) Summary() string {
	return fmt.Sprintf("Income of %s", i.Amount)
}
