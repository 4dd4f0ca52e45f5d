package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/pema-app/backend/internal/controllers/v1"
	"github.com/pema-app/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestGetMonthlyExpenses() {
	_, token := suite.registerTestUser()
	suite.setIncome(token, decimal.NewFromInt(1000))

	for _, amount := range []int{100, 50} {
		recorder := test.Request(suite.T(), http.MethodPost, "/v1/expenses", map[string]any{
			"amount": amount,
		}, test.BearerToken(token))
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
	}

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/reports/expenses/monthly", "", test.BearerToken(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthlyExpensesResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Len(suite.T(), response.Data.Expenses, 2)
}

func (suite *TestSuiteStandard) TestGetMonthlyExpensesOtherMonth() {
	_, token := suite.registerTestUser()
	suite.setIncome(token, decimal.NewFromInt(1000))

	recorder := test.Request(suite.T(), http.MethodPost, "/v1/expenses", map[string]any{
		"amount": 100,
	}, test.BearerToken(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	// A past month has no expenses
	recorder = test.Request(suite.T(), http.MethodGet, "/v1/reports/expenses/monthly?month=2020-01", "", test.BearerToken(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthlyExpensesResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	assert.Len(suite.T(), response.Data.Expenses, 0)
}

func (suite *TestSuiteStandard) TestGetMonthlyExpensesByCategory() {
	_, token := suite.registerTestUser()
	suite.setIncome(token, decimal.NewFromInt(1000))

	food := suite.categoryID("Food")
	transportation := suite.categoryID("Transportation")

	for _, expense := range []map[string]any{
		{"amount": 100, "categoryId": food},
		{"amount": 50, "categoryId": transportation},
		{"amount": 5},
	} {
		recorder := test.Request(suite.T(), http.MethodPost, "/v1/expenses", expense, test.BearerToken(token))
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
	}

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/reports/expenses/monthly/by-category", "", test.BearerToken(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthlyExpensesByCategoryResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	require.Len(suite.T(), response.Data.Groups, 3)

	require.Len(suite.T(), response.Data.Groups["Food"], 1)
	assert.True(suite.T(), response.Data.Groups["Food"][0].Amount.Equal(decimal.NewFromInt(100)))

	require.Len(suite.T(), response.Data.Groups["Transportation"], 1)
	assert.True(suite.T(), response.Data.Groups["Transportation"][0].Amount.Equal(decimal.NewFromInt(50)))

	require.Len(suite.T(), response.Data.Groups["none"], 1)
	assert.True(suite.T(), response.Data.Groups["none"][0].Amount.Equal(decimal.NewFromInt(5)))
}

func (suite *TestSuiteStandard) TestGetMonthlyStatistics() {
	_, token := suite.registerTestUser()
	suite.setIncome(token, decimal.NewFromInt(1000))

	for _, amount := range []int{100, 50} {
		recorder := test.Request(suite.T(), http.MethodPost, "/v1/expenses", map[string]any{
			"amount": amount,
		}, test.BearerToken(token))
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
	}

	recorder := test.Request(suite.T(), http.MethodGet, "/v1/reports/statistics/monthly", "", test.BearerToken(token))
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.MonthlyStatisticsResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.TotalExpenses.Equal(decimal.NewFromInt(150)), "total is %s, should be 150", response.Data.TotalExpenses)
	assert.True(suite.T(), response.Data.RemainingBalance.Equal(decimal.NewFromInt(850)), "remaining is %s, should be 850", response.Data.RemainingBalance)

	days := decimal.NewFromInt(int64(time.Now().In(time.UTC).Day()))
	expected := decimal.NewFromInt(150).Div(days).Round(2)
	assert.True(suite.T(), response.Data.AverageDailyExpense.Equal(expected), "average is %s, should be %s", response.Data.AverageDailyExpense, expected)
}

func (suite *TestSuiteStandard) TestReportOptions() {
	token := suite.token()

	for _, path := range []string{
		"/v1/reports/expenses/monthly",
		"/v1/reports/expenses/monthly/by-category",
		"/v1/reports/statistics/monthly",
	} {
		recorder := test.Request(suite.T(), http.MethodOptions, path, "", test.BearerToken(token))
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)
		assert.Equal(suite.T(), "GET", recorder.Header().Get("allow"))
	}
}
