package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pema-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

// IncomeEditable represents all user configurable parameters
type IncomeEditable struct {
	Amount      decimal.Decimal `json:"amount" example:"2500" minimum:"0.00000001" maximum:"9999999999.99999999" multipleOf:"0.00000001"` // Monthly income, must be positive
	Description string          `json:"description" example:"Salary"`                                                                     // Optional description
}

type IncomeLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/income"`     // The income record itself
	Profile string `json:"profile" example:"https://example.com/api/v1/profile"` // The profile whose balance the income feeds
}

type Income struct {
	models.DefaultModel
	IncomeEditable
	Links IncomeLinks `json:"links"`
}

func newIncome(c *gin.Context, model models.Income) Income {
	url := c.GetString(string(models.DBContextURL))

	return Income{
		DefaultModel: model.DefaultModel,
		IncomeEditable: IncomeEditable{
			Amount:      model.Amount,
			Description: model.Description,
		},
		Links: IncomeLinks{
			Self:    fmt.Sprintf("%s/v1/income", url),
			Profile: fmt.Sprintf("%s/v1/profile", url),
		},
	}
}

type IncomeResponse struct {
	Data    *Income     `json:"data"`                                               // Data for the income record
	Error   *string     `json:"error" example:"the income amount must be positive"` // The error, if any occurred
	Details fieldErrors `json:"details,omitempty"`                                  // Per-field error details
}
