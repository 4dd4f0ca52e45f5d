package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Profile holds the per-user state that is derived from other records.
//
// Balance is a cached value. It is adjusted in the same transaction as the
// income or expense mutation that changes it, and can be recomputed from
// scratch with RecomputeBalance.
type Profile struct {
	DefaultModel
	User           User            `json:"-"`
	UserID         uuid.UUID       `gorm:"uniqueIndex"`
	Balance        decimal.Decimal `gorm:"type:DECIMAL(10,2)"`
	ProfilePicture string
}

// RecomputeBalance replaces the cached balance with the value derived from
// the income and expense records: income amount minus the sum of all expenses.
func (p *Profile) RecomputeBalance(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var income Income
		err := tx.Where(&Income{UserID: p.UserID}).First(&income).Error
		if err != nil {
			return err
		}

		var spent decimal.NullDecimal
		err = tx.Table("expenses").
			Where("user_id = ? AND deleted_at IS NULL", p.UserID).
			Select("SUM(amount)").
			Row().
			Scan(&spent)
		if err != nil {
			return err
		}

		p.Balance = income.Amount.Sub(spent.Decimal)
		return tx.Model(p).Update("balance", p.Balance).Error
	})
}
