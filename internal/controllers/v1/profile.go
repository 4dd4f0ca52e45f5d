package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pema-app/backend/internal/httputil"
	"github.com/pema-app/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterProfileRoutes registers the routes for the profile with
// the RouterGroup that is passed.
func RegisterProfileRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProfile)
	r.GET("", GetProfile)
	r.PATCH("", UpdateProfile)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Profile
// @Success		204
// @Router			/v1/profile [options]
func OptionsProfile(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get profile
// @Description	Returns the profile of the authenticated user, including the current balance
// @Tags			Profile
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		404	{object}	ProfileResponse
// @Failure		500	{object}	ProfileResponse
// @Router			/v1/profile [get]
func GetProfile(c *gin.Context) {
	user := currentUser(c)

	profile, err := user.Profile(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	data := newProfile(c, user, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &data})
}

// @Summary		Update profile
// @Description	Updates the profile of the authenticated user. The balance is derived from income and expenses, a balance field in the body is ignored
// @Tags			Profile
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProfileResponse
// @Failure		400		{object}	ProfileResponse
// @Failure		404		{object}	ProfileResponse
// @Failure		500		{object}	ProfileResponse
// @Param			profile	body		ProfileEditable	true	"Profile"
// @Router			/v1/profile [patch]
func UpdateProfile(c *gin.Context) {
	user := currentUser(c)

	// Fields not in the body are left unchanged, unknown and read-only
	// fields like the balance are ignored
	setFields, err := httputil.GetBodyFields(c, ProfileEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	var editable ProfileEditable
	err = httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s, Details: validationDetail(err)})
		return
	}

	profile, err := user.Profile(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ProfileResponse{Error: &s})
		return
	}

	updates := map[string]any{}
	if slices.Contains(setFields, "ProfilePicture") {
		updates["profile_picture"] = editable.ProfilePicture
	}

	if len(updates) > 0 {
		err = models.DB.Model(&profile).Updates(updates).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ProfileResponse{Error: &s})
			return
		}
	}

	data := newProfile(c, user, profile)
	c.JSON(http.StatusOK, ProfileResponse{Data: &data})
}
