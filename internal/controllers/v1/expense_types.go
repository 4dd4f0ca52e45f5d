package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pema-app/backend/internal/models"
	pema_uuid "github.com/pema-app/backend/internal/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// ExpenseEditable represents all user configurable parameters.
//
// The date is stamped by the server at creation time, it cannot be set by
// the client.
type ExpenseEditable struct {
	Amount      decimal.Decimal `json:"amount" binding:"required" example:"100" minimum:"0.00000001" maximum:"9999999999.99999999" multipleOf:"0.00000001"` // Amount of the expense, must be positive
	CategoryID  *uuid.UUID      `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"`                                                          // ID of the category, optional
	Description string          `json:"description" example:"Groceries for the week"`                                                                       // Optional description
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Amount:      editable.Amount,
		CategoryID:  editable.CategoryID,
		Description: editable.Description,
	}
}

type ExpenseLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/expenses/d1e8c665-ac12-48ac-aba8-07fada8a2fe8"`       // The expense itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category of the expense, empty if it has none
}

type Expense struct {
	models.DefaultModel
	ExpenseEditable
	Date     time.Time    `json:"date" example:"2024-03-07T14:03:00Z"` // When the expense was recorded
	Category string       `json:"category" example:"Food"`             // Name of the category, empty if the expense has none
	Links    ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, db *gorm.DB, model models.Expense) Expense {
	url := c.GetString(string(models.DBContextURL))

	expense := Expense{
		DefaultModel: model.DefaultModel,
		ExpenseEditable: ExpenseEditable{
			Amount:      model.Amount,
			CategoryID:  model.CategoryID,
			Description: model.Description,
		},
		Date: model.Date,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%s", url, model.ID),
		},
	}

	if model.CategoryID != nil {
		expense.Links.Category = fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID)

		var category models.Category
		if err := db.First(&category, *model.CategoryID).Error; err == nil {
			expense.Category = category.Name
		}
	}

	return expense
}

// ExpenseQueryFilter contains the fields an expense list can be filtered with.
type ExpenseQueryFilter struct {
	CategoryID pema_uuid.UUID `form:"category"` // By category ID
	Offset     uint           `form:"offset"`   // The offset of the first Expense returned. Defaults to 0.
	Limit      int            `form:"limit"`    // Maximum number of Expenses to return. Defaults to 50.
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                          // List of expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ExpenseResponse struct {
	Data    *Expense    `json:"data"`                                                             // Data for the expense
	Error   *string     `json:"error" example:"your current balance does not cover this expense"` // The error, if any occurred
	Details fieldErrors `json:"details,omitempty"`                                                // Per-field error details
}
