package models_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/pema-app/backend/internal/models"
	"github.com/pema-app/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createExpenseOn writes an expense row directly, bypassing the balance
// debit. Used to set up report fixtures.
func (suite *TestSuiteStandard) createExpenseOn(user models.User, date time.Time, amount int64, categoryID *uuid.UUID) models.Expense {
	expense := models.Expense{
		UserID:     user.ID,
		Amount:     decimal.NewFromInt(amount),
		Date:       date,
		CategoryID: categoryID,
	}

	err := models.DB.Create(&expense).Error
	if err != nil {
		suite.Assert().FailNowf("expense could not be created", "%v", err)
	}

	return expense
}

func (suite *TestSuiteStandard) TestExpensesForMonth() {
	user := suite.createTestUser()
	other := suite.createTestUser()

	march := types.NewMonth(2024, time.March)

	early := suite.createExpenseOn(user, time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC), 10, nil)
	late := suite.createExpenseOn(user, time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC), 20, nil)

	// Expenses outside the month or of other users are not returned
	suite.createExpenseOn(user, time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC), 30, nil)
	suite.createExpenseOn(user, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), 40, nil)
	suite.createExpenseOn(other, time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC), 50, nil)

	expenses, err := models.ExpensesForMonth(models.DB, user.ID, march)
	require.Nil(suite.T(), err)

	require.Len(suite.T(), expenses, 2)

	// Most recent first
	assert.Equal(suite.T(), late.ID, expenses[0].ID)
	assert.Equal(suite.T(), early.ID, expenses[1].ID)
}

func (suite *TestSuiteStandard) TestExpensesByCategoryForMonth() {
	user := suite.createTestUser()
	food := suite.createTestCategory(models.Category{Name: "Food"})
	transport := suite.createTestCategory(models.Category{Name: "Transport"})

	march := types.NewMonth(2024, time.March)

	suite.createExpenseOn(user, time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC), 100, &food.ID)
	suite.createExpenseOn(user, time.Date(2024, 3, 6, 9, 0, 0, 0, time.UTC), 50, &transport.ID)
	uncategorized := suite.createExpenseOn(user, time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC), 5, nil)

	grouped, err := models.ExpensesByCategoryForMonth(models.DB, user.ID, march)
	require.Nil(suite.T(), err)

	require.Len(suite.T(), grouped, 3)

	require.Len(suite.T(), grouped["Food"], 1)
	assert.True(suite.T(), grouped["Food"][0].Amount.Equal(decimal.NewFromInt(100)))

	require.Len(suite.T(), grouped["Transport"], 1)
	assert.True(suite.T(), grouped["Transport"][0].Amount.Equal(decimal.NewFromInt(50)))

	// Expenses without a category are grouped under "none"
	require.Len(suite.T(), grouped["none"], 1)
	assert.Equal(suite.T(), uncategorized.ID, grouped["none"][0].ID)
}

func (suite *TestSuiteStandard) TestMonthlyExpenseSum() {
	user := suite.createTestUser()

	march := types.NewMonth(2024, time.March)

	suite.createExpenseOn(user, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), 100, nil)
	suite.createExpenseOn(user, time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC), 50, nil)
	suite.createExpenseOn(user, time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), 11, nil)

	sum, err := models.MonthlyExpenseSum(models.DB, user.ID, march)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), sum.Equal(decimal.NewFromInt(150)), "sum is %s, should be 150", sum)
}

func (suite *TestSuiteStandard) TestMonthlyExpenseSumEmpty() {
	user := suite.createTestUser()

	sum, err := models.MonthlyExpenseSum(models.DB, user.ID, types.NewMonth(2024, time.March))
	require.Nil(suite.T(), err)
	assert.True(suite.T(), sum.IsZero())
}

func (suite *TestSuiteStandard) TestExpenseDateStampedOnCreate() {
	user := suite.createTestUser()
	suite.setIncome(user, decimal.NewFromInt(100))

	expense, err := models.CreateExpense(models.DB, user.ID, models.Expense{Amount: decimal.NewFromInt(1)})
	require.Nil(suite.T(), err)

	assert.False(suite.T(), expense.Date.IsZero())
	assert.Equal(suite.T(), time.UTC, expense.Date.Location())
}

func (suite *TestSuiteStandard) TestExpenseSummary() {
	expense := models.Expense{
		Amount: decimal.NewFromInt(42),
		Date:   time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
	}

	assert.Equal(suite.T(), "Expense of 42 on 2024-03-07", expense.Summary())
}
