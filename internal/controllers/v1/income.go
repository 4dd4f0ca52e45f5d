package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pema-app/backend/internal/events"
	"github.com/pema-app/backend/internal/httputil"
	"github.com/pema-app/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterIncomeRoutes registers the routes for the income record with
// the RouterGroup that is passed.
//
// Every user has exactly one income record, so there is no collection
// endpoint and no ID in the path.
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsIncome)
	r.GET("", GetIncome)
	r.PATCH("", UpdateIncome)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Income
// @Success		204
// @Router			/v1/income [options]
func OptionsIncome(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get income
// @Description	Returns the income record of the authenticated user
// @Tags			Income
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Failure		500	{object}	IncomeResponse
// @Router			/v1/income [get]
func GetIncome(c *gin.Context) {
	user := currentUser(c)

	income, err := user.Income(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &s})
		return
	}

	data := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &data})
}

// @Summary		Update income
// @Description	Updates the income record of the authenticated user and adjusts the balance by the amount delta
// @Tags			Income
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			income	body		IncomeEditable	true	"Income"
// @Router			/v1/income [patch]
func UpdateIncome(c *gin.Context) {
	user := currentUser(c)

	// Fields not in the body are left unchanged, unknown and read-only
	// fields are ignored
	setFields, err := httputil.GetBodyFields(c, IncomeEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &s})
		return
	}

	var editable IncomeEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &s, Details: validationDetail(err)})
		return
	}

	var update models.IncomeUpdate
	if slices.Contains(setFields, "Amount") {
		update.Amount = &editable.Amount
	}
	if slices.Contains(setFields, "Description") {
		update.Description = &editable.Description
	}

	income, err := models.UpdateIncome(models.DB, user.ID, update)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{Error: &s, Details: validationDetail(err)})
		return
	}

	if update.Amount != nil {
		events.Publish(c.Request.Context(), events.Message{
			Kind:   events.KindIncomeUpdated,
			UserID: user.ID,
			Amount: income.Amount,
		})
	}

	data := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &data})
}
