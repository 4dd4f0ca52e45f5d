package models

import (
	"strings"

	"gorm.io/gorm"
)

// Category represents a category of expenses, such as "Food" or "Transportation".
//
// Categories are global, not user-scoped. Deleting a category does not delete
// the expenses referencing it, their reference is set to null instead.
type Category struct {
	DefaultModel
	Name        string `gorm:"uniqueIndex"`
	Description string
}

// Title is a read-only alias of the category name.
func (c Category) Title() string {
	return c.Name
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Description = strings.TrimSpace(c.Description)

	return nil
}

// Expenses returns all expenses referencing this category.
func (c Category) Expenses(db *gorm.DB) ([]Expense, error) {
	var expenses []Expense
	err := db.Where(&Expense{CategoryID: &c.ID}).Find(&expenses).Error
	return expenses, err
}

// defaultCategories are created on startup when they do not exist yet.
var defaultCategories = []Category{
	{Name: "Rent", Description: "Monthly or regular payments for housing or office spaces."},
	{Name: "Medical", Description: "Medical-related expenses, including doctor's visits, medication, therapy, and hospital fees."},
	{Name: "Food", Description: "Expenses for meals, groceries, snacks, and dining out."},
	{Name: "Transportation", Description: "Costs related to getting from one place to another, such as bus fares, taxi rides, or fuel expenses."},
}

// SeedCategories creates the default categories. Categories that already
// exist are left untouched.
func SeedCategories(db *gorm.DB) error {
	for _, category := range defaultCategories {
		err := db.Where(Category{Name: category.Name}).
			Attrs(Category{Description: category.Description}).
			FirstOrCreate(&Category{}).Error
		if err != nil {
			return err
		}
	}

	return nil
}
