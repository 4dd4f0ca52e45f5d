package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pema-app/backend/internal/models"
)

// RegisterRequest contains all fields needed to create a user account.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email" example:"jane@example.com"`   // Email address, unique
	Username    string `json:"username" binding:"required" example:"jane"`                  // Username, unique
	Password    string `json:"password" binding:"required" example:"correct-horse-battery"` // Password, at least 8 characters
	FirstName   string `json:"firstName" example:"Jane"`                                    // First name
	LastName    string `json:"lastName" example:"Doe"`                                      // Last name
	PhoneNumber string `json:"phoneNumber" example:"+4912345678"`                           // Phone number
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"correct-horse-battery"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"` // A refresh token from a previous login
}

// TokenPair is an access token and the refresh token to renew it.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type TokenResponse struct {
	Data  *TokenPair `json:"data"`                                               // The token pair
	Error *string    `json:"error" example:"the email or password is incorrect"` // The error, if any occurred
}

type UserLinks struct {
	Profile string `json:"profile" example:"https://example.com/api/v1/profile"` // The profile of the user
	Income  string `json:"income" example:"https://example.com/api/v1/income"`   // The income record of the user
}

type User struct {
	models.DefaultModel
	Email       string    `json:"email" example:"jane@example.com"`
	Username    string    `json:"username" example:"jane"`
	FirstName   string    `json:"firstName" example:"Jane"`
	LastName    string    `json:"lastName" example:"Doe"`
	PhoneNumber string    `json:"phoneNumber" example:"+4912345678"`
	Links       UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		Email:        model.Email,
		Username:     model.Username,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		PhoneNumber:  model.PhoneNumber,
		Links: UserLinks{
			Profile: fmt.Sprintf("%s/v1/profile", url),
			Income:  fmt.Sprintf("%s/v1/income", url),
		},
	}
}

type UserResponse struct {
	Data    *User       `json:"data"`                                                     // Data for the user
	Error   *string     `json:"error" example:"this email address is already registered"` // The error, if any occurred
	Details fieldErrors `json:"details,omitempty"`                                        // Per-field error details
}
