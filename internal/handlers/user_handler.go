package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nadhifr/quizadmin/internal/models"
	"github.com/nadhifr/quizadmin/internal/store"
)

type UserRequest struct {
	Email           string  `json:"email" binding:"required,email"`
	FirstName       string  `json:"firstName"`
	Mobile          *string `json:"mobile"`
	Location        *string `json:"location"`
	Gems            *int    `json:"gems" binding:"omitempty,min=0"`
	IsActive        *bool   `json:"isactive"`
	BuyGems         *bool   `json:"buyGems"`
	NumberOfReports *int    `json:"numberOfReports" binding:"omitempty,min=0"`
}

type UserUpdateRequest struct {
	Email           *string `json:"email" binding:"omitempty,email"`
	FirstName       *string `json:"firstName"`
	Mobile          *string `json:"mobile"`
	Location        *string `json:"location"`
	Gems            *int    `json:"gems" binding:"omitempty,min=0"`
	IsActive        *bool   `json:"isactive"`
	BuyGems         *bool   `json:"buyGems"`
	NumberOfReports *int    `json:"numberOfReports" binding:"omitempty,min=0"`
}

func NewUserResource(users *store.Collection[*models.User]) *Resource[*models.User] {
	return &Resource[*models.User]{
		Label:      "User",
		Key:        "users",
		Collection: users,
		Searchable: func(u *models.User) []string {
			return []string{u.Email, u.FirstName}
		},
		Defaults: func() gin.H {
			return gin.H{
				"email":     "",
				"firstName": "",
				"mobile":    "",
				"gems":      1,
				"isactive":  true,
				"buyGems":   false,
			}
		},
		BindCreate: func(c *gin.Context) (*models.User, error) {
			var req UserRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			user := &models.User{
				Email:     req.Email,
				FirstName: req.FirstName,
				Mobile:    req.Mobile,
				Location:  req.Location,
				Gems:      1,
				IsActive:  true,
			}
			if req.Gems != nil {
				user.Gems = *req.Gems
			}
			if req.IsActive != nil {
				user.IsActive = *req.IsActive
			}
			if req.BuyGems != nil {
				user.BuyGems = *req.BuyGems
			}
			if req.NumberOfReports != nil {
				user.NumberOfReports = *req.NumberOfReports
			}
			return user, nil
		},
		BeforeCreate: func(candidate *models.User) error {
			if emailTaken(users, candidate.Email, uuid.Nil) {
				return Conflict("Email already exists.")
			}
			return nil
		},
		BindUpdate: func(c *gin.Context) (Update[*models.User], error) {
			var req UserUpdateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return Update[*models.User]{}, err
			}
			return Update[*models.User]{
				Check: func(id uuid.UUID) error {
					if req.Email != nil && emailTaken(users, *req.Email, id) {
						return Conflict("Email already exists.")
					}
					return nil
				},
				Merge: func(u *models.User) {
					if req.Email != nil {
						u.Email = *req.Email
					}
					if req.FirstName != nil {
						u.FirstName = *req.FirstName
					}
					if req.Mobile != nil {
						u.Mobile = req.Mobile
					}
					if req.Location != nil {
						u.Location = req.Location
					}
					if req.Gems != nil {
						u.Gems = *req.Gems
					}
					if req.IsActive != nil {
						u.IsActive = *req.IsActive
					}
					if req.BuyGems != nil {
						u.BuyGems = *req.BuyGems
					}
					if req.NumberOfReports != nil {
						u.NumberOfReports = *req.NumberOfReports
					}
				},
			}, nil
		},
	}
}

func emailTaken(users *store.Collection[*models.User], email string, exclude uuid.UUID) bool {
	_, found := users.Find(func(u *models.User) bool {
		return strings.EqualFold(u.Email, email) && u.ID != exclude
	})
	return found
}
