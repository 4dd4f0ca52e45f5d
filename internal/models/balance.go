package models

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateExpense validates and persists an expense and debits the profile
// balance, both in one transaction.
//
// The profile row is locked for the duration of the transaction so that two
// concurrent expense submissions for the same user cannot both pass the
// balance check and overdraw.
func CreateExpense(db *gorm.DB, userID uuid.UUID, expense Expense) (Expense, error) {
	if !expense.Amount.IsPositive() {
		return Expense{}, ErrExpenseAmountNotPositive
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if expense.CategoryID != nil {
			err := tx.First(&Category{}, *expense.CategoryID).Error
			if err != nil {
				return err
			}
		}

		var profile Profile
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(&Profile{UserID: userID}).
			First(&profile).Error
		if err != nil {
			return err
		}

		if profile.Balance.LessThan(expense.Amount) {
			return ErrInsufficientBalance
		}

		expense.UserID = userID
		err = tx.Create(&expense).Error
		if err != nil {
			return err
		}

		return tx.Model(&profile).
			Update("balance", profile.Balance.Sub(expense.Amount)).Error
	})
	if err != nil {
		return Expense{}, err
	}

	return expense, nil
}

// IncomeUpdate carries the fields of an income update. Nil fields are not
// changed.
type IncomeUpdate struct {
	Amount      *decimal.Decimal
	Description *string
}

// UpdateIncome persists changes to the income record of the user and adjusts
// the profile balance by the amount delta, both in one transaction.
//
// The income record must already exist. When the amount does not change, the
// profile is not written at all.
func UpdateIncome(db *gorm.DB, userID uuid.UUID, update IncomeUpdate) (Income, error) {
	if update.Amount != nil && !update.Amount.IsPositive() {
		return Income{}, ErrIncomeAmountNotPositive
	}

	var income Income
	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where(&Income{UserID: userID}).First(&income).Error
		if err != nil {
			return err
		}

		delta := decimal.Zero
		if update.Amount != nil {
			delta = update.Amount.Sub(income.Amount)
			income.Amount = *update.Amount
		}
		if update.Description != nil {
			income.Description = *update.Description
		}

		err = tx.Model(&income).
			Updates(map[string]any{"amount": income.Amount, "description": income.Description}).Error
		if err != nil {
			return err
		}

		if delta.IsZero() {
			return nil
		}

		var profile Profile
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(&Profile{UserID: userID}).
			First(&profile).Error
		if err != nil {
			return err
		}

		return tx.Model(&profile).
			Update("balance", profile.Balance.Add(delta)).Error
	})
	if err != nil {
		return Income{}, err
	}

	return income, nil
}

// AddMonthlyIncome credits every profile with the income amount of its user.
//
// It is run by the scheduler at the start of each month. Every user is
// processed in its own transaction so that a failure for one user does not
// roll back or stop the updates for the others.
func AddMonthlyIncome(db *gorm.DB) error {
	var incomes []Income
	err := db.Find(&incomes).Error
	if err != nil {
		return err
	}

	var failed int
	for _, income := range incomes {
		if income.Amount.IsZero() {
			continue
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			var profile Profile
			err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where(&Profile{UserID: income.UserID}).
				First(&profile).Error
			if err != nil {
				return err
			}

			return tx.Model(&profile).
				Update("balance", profile.Balance.Add(income.Amount)).Error
		})
		if err != nil {
			failed++
			log.Error().
				Str("user-id", income.UserID.String()).
				Err(err).
				Msg("monthly balance update failed for user")
		}
	}

	log.Info().
		Int("users", len(incomes)).
		Int("failed", failed).
		Msg("monthly balance update finished")

	return nil
}
