package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nadhifr/quizadmin/internal/models"
	"github.com/nadhifr/quizadmin/internal/store"
)

type CategoryRequest struct {
	Name          string  `json:"name" binding:"required,min=2"`
	IsActive      *bool   `json:"isActive"`
	IsForFreeUser *bool   `json:"isForFreeUser"`
	ImageURL      *string `json:"imageUrl" binding:"omitempty,url"`
}

type CategoryUpdateRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=2"`
	IsActive      *bool   `json:"isActive"`
	IsForFreeUser *bool   `json:"isForFreeUser"`
	ImageURL      *string `json:"imageUrl" binding:"omitempty,url"`
}

func NewCategoryResource(categories *store.Collection[*models.Category]) *Resource[*models.Category] {
	return &Resource[*models.Category]{
		Label:      "Category",
		Key:        "categories",
		Collection: categories,
		Searchable: func(cat *models.Category) []string {
			return []string{cat.Name}
		},
		Defaults: func() gin.H {
			return gin.H{
				"name":          "",
				"isActive":      true,
				"isForFreeUser": false,
				"imageUrl":      "",
			}
		},
		BindCreate: func(c *gin.Context) (*models.Category, error) {
			var req CategoryRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			category := &models.Category{
				Name:     req.Name,
				IsActive: true,
				ImageURL: req.ImageURL,
			}
			if req.IsActive != nil {
				category.IsActive = *req.IsActive
			}
			if req.IsForFreeUser != nil {
				category.IsForFreeUser = *req.IsForFreeUser
			}
			return category, nil
		},
		BindUpdate: func(c *gin.Context) (Update[*models.Category], error) {
			var req CategoryUpdateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return Update[*models.Category]{}, err
			}
			return Update[*models.Category]{
				Merge: func(cat *models.Category) {
					if req.Name != nil {
						cat.Name = *req.Name
					}
					if req.IsActive != nil {
						cat.IsActive = *req.IsActive
					}
					if req.IsForFreeUser != nil {
						cat.IsForFreeUser = *req.IsForFreeUser
					}
					if req.ImageURL != nil {
						cat.ImageURL = req.ImageURL
					}
				},
			}, nil
		},
	}
}

// CategoryName resolves a category's display name, used when decorating
// questions for listing and search.
func CategoryName(categories *store.Collection[*models.Category], id uuid.UUID) string {
	category, err := categories.Get(id)
	if err != nil {
		return ""
	}
	return category.Name
}
