package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// User represents a registered account.
//
// The password is stored as a bcrypt hash and never leaves the backend.
type User struct {
	DefaultModel
	Email        string `gorm:"uniqueIndex"`
	Username     string `gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
	FirstName    string
	LastName     string
	PhoneNumber  string
}

// BeforeSave normalizes the identifying fields.
//
// Emails are compared case-insensitively, so they are stored lowercased.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	u.Username = strings.TrimSpace(u.Username)
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.PhoneNumber = strings.TrimSpace(u.PhoneNumber)

	return nil
}

// Name returns the full name of the user.
func (u User) Name() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Register creates the user together with its profile and income record.
//
// Profile and income creation is an explicit part of the registration workflow
// rather than a side effect of saving a user, so a failure in any of the three
// inserts rolls back the whole registration.
func Register(db *gorm.DB, user *User) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}

		profile := Profile{
			UserID:  user.ID,
			Balance: decimal.Zero,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		income := Income{
			UserID: user.ID,
			Amount: decimal.Zero,
		}
		return tx.Create(&income).Error
	})
}

// Profile returns the profile for the user.
func (u User) Profile(db *gorm.DB) (Profile, error) {
	var profile Profile
	err := db.Where(&Profile{UserID: u.ID}).First(&profile).Error
	return profile, err
}

// Income returns the income record for the user.
func (u User) Income(db *gorm.DB) (Income, error) {
	var income Income
	err := db.Where(&Income{UserID: u.ID}).First(&income).Error
	return income, err
}
