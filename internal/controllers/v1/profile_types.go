package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pema-app/backend/internal/models"
	"github.com/shopspring/decimal"
)

// ProfileEditable represents all user configurable parameters.
//
// The balance is not editable, it is maintained by the expense and income
// operations.
type ProfileEditable struct {
	ProfilePicture string `json:"profilePicture" example:"https://example.com/media/jane.png"` // Reference to the profile picture, optional
}

type ProfileLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/profile"`                       // The profile itself
	Income   string `json:"income" example:"https://example.com/api/v1/income"`                      // The income record feeding the balance
	Expenses string `json:"expenses" example:"https://example.com/api/v1/expenses"`                  // The expenses of the user
	Reports  string `json:"reports" example:"https://example.com/api/v1/reports/statistics/monthly"` // Monthly statistics for the user
}

type Profile struct {
	models.DefaultModel
	ProfileEditable
	Balance  decimal.Decimal `json:"balance" example:"850"`   // Current spendable balance, read-only
	Username string          `json:"username" example:"jane"` // Username of the owning user
	Links    ProfileLinks    `json:"links"`
}

func newProfile(c *gin.Context, user models.User, model models.Profile) Profile {
	url := c.GetString(string(models.DBContextURL))

	return Profile{
		DefaultModel: model.DefaultModel,
		ProfileEditable: ProfileEditable{
			ProfilePicture: model.ProfilePicture,
		},
		Balance:  model.Balance,
		Username: user.Username,
		Links: ProfileLinks{
			Self:     fmt.Sprintf("%s/v1/profile", url),
			Income:   fmt.Sprintf("%s/v1/income", url),
			Expenses: fmt.Sprintf("%s/v1/expenses", url),
			Reports:  fmt.Sprintf("%s/v1/reports/statistics/monthly", url),
		},
	}
}

type ProfileResponse struct {
	Data    *Profile    `json:"data"`                                              // Data for the profile
	Error   *string     `json:"error" example:"there is no Profile for this user"` // The error, if any occurred
	Details fieldErrors `json:"details,omitempty"`                                 // Per-field error details
}
