package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/pema-app/backend/internal/models"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name        string `json:"name" binding:"required" example:"Food"`                               // Name of the category, unique
	Description string `json:"description" example:"Expenses for meals, groceries, and dining out."` // Optional description
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:        editable.Name,
		Description: editable.Description,
	}
}

type CategoryLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category itself
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Title string        `json:"title" example:"Food"` // Read-only alias of the name
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:        model.Name,
			Description: model.Description,
		},
		Title: model.Title(),
		Links: CategoryLinks{
			Self: fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                             // List of categories
	Error *string    `json:"error" example:"the category name must be unique"` // The error, if any occurred
}

type CategoryResponse struct {
	Data    *Category   `json:"data"`                                             // Data for the category
	Error   *string     `json:"error" example:"the category name must be unique"` // The error, if any occurred
	Details fieldErrors `json:"details,omitempty"`                                // Per-field error details
}
