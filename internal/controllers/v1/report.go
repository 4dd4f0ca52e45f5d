package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pema-app/backend/internal/httputil"
	"github.com/pema-app/backend/internal/models"
	"github.com/pema-app/backend/internal/types"
)

// RegisterReportRoutes registers the routes for monthly reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/expenses/monthly", OptionsReport)
	r.GET("/expenses/monthly", GetMonthlyExpenses)
	r.OPTIONS("/expenses/monthly/by-category", OptionsReport)
	r.GET("/expenses/monthly/by-category", GetMonthlyExpensesByCategory)
	r.OPTIONS("/statistics/monthly", OptionsReport)
	r.GET("/statistics/monthly", GetMonthlyStatistics)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Router			/v1/reports/expenses/monthly [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// monthFromQuery returns the month the report refers to. Without a month
// query parameter, the current month is used.
func monthFromQuery(c *gin.Context) types.Month {
	if raw, ok := c.GetQuery("month"); ok {
		if month, err := types.ParseMonth(raw); err == nil {
			return month
		}
	}

	return types.MonthOf(time.Now().In(time.UTC))
}

// @Summary		Monthly expenses
// @Description	Returns the expenses of the authenticated user in the month, most recent first
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	MonthlyExpensesResponse
// @Failure		500	{object}	MonthlyExpensesResponse
// @Param			month	query	string	false	"The month in YYYY-MM notation. Defaults to the current month."
// @Router			/v1/reports/expenses/monthly [get]
func GetMonthlyExpenses(c *gin.Context) {
	user := currentUser(c)
	month := monthFromQuery(c)

	expenses, err := models.ExpensesForMonth(models.DB, user.ID, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyExpensesResponse{Error: &s})
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		data = append(data, newExpense(c, models.DB, expense))
	}

	c.JSON(http.StatusOK, MonthlyExpensesResponse{
		Data: &MonthlyExpenses{
			Month:    month,
			Expenses: data,
		},
	})
}

// @Summary		Monthly expenses by category
// @Description	Returns the expenses of the authenticated user in the month, grouped by category name. Expenses without a category are grouped under "none"
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	MonthlyExpensesByCategoryResponse
// @Failure		500	{object}	MonthlyExpensesByCategoryResponse
// @Param			month	query	string	false	"The month in YYYY-MM notation. Defaults to the current month."
// @Router			/v1/reports/expenses/monthly/by-category [get]
func GetMonthlyExpensesByCategory(c *gin.Context) {
	user := currentUser(c)
	month := monthFromQuery(c)

	grouped, err := models.ExpensesByCategoryForMonth(models.DB, user.ID, month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyExpensesByCategoryResponse{Error: &s})
		return
	}

	data := make(map[string][]Expense, len(grouped))
	for label, expenses := range grouped {
		group := make([]Expense, 0, len(expenses))
		for _, expense := range expenses {
			group = append(group, newExpense(c, models.DB, expense))
		}
		data[label] = group
	}

	c.JSON(http.StatusOK, MonthlyExpensesByCategoryResponse{
		Data: &MonthlyExpensesByCategory{
			Month:  month,
			Groups: data,
		},
	})
}

// @Summary		Monthly statistics
// @Description	Returns the total expenses, remaining balance and average daily expense of the authenticated user for the current month
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	MonthlyStatisticsResponse
// @Failure		404	{object}	MonthlyStatisticsResponse
// @Failure		500	{object}	MonthlyStatisticsResponse
// @Router			/v1/reports/statistics/monthly [get]
func GetMonthlyStatistics(c *gin.Context) {
	user := currentUser(c)
	today := time.Now().In(time.UTC)

	statistics, err := models.Statistics(models.DB, user.ID, today)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyStatisticsResponse{Error: &s})
		return
	}

	data := newMonthlyStatistics(types.MonthOf(today), statistics)
	c.JSON(http.StatusOK, MonthlyStatisticsResponse{Data: &data})
}
