package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nadhifr/quizadmin/internal/models"
	"github.com/nadhifr/quizadmin/internal/store"
)

type AdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type AdminUpdateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

func NewAdminResource(admins *store.Collection[*models.Admin]) *Resource[*models.Admin] {
	return &Resource[*models.Admin]{
		Label:      "Admin",
		Key:        "admins",
		Collection: admins,
		Searchable: func(a *models.Admin) []string {
			return []string{a.Name, a.Email}
		},
		Defaults: func() gin.H {
			return gin.H{
				"name":     "",
				"email":    "",
				"password": "",
			}
		},
		BindCreate: func(c *gin.Context) (*models.Admin, error) {
			var req AdminRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, &apiError{Status: http.StatusInternalServerError, Message: "Failed to hash the password."}
			}
			return &models.Admin{
				Name:         req.Name,
				Email:        req.Email,
				PasswordHash: string(hash),
			}, nil
		},
		BeforeCreate: func(candidate *models.Admin) error {
			if adminEmailTaken(admins, candidate.Email, uuid.Nil) {
				return Conflict("Email already exists.")
			}
			return nil
		},
		BindUpdate: func(c *gin.Context) (Update[*models.Admin], error) {
			var req AdminUpdateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return Update[*models.Admin]{}, err
			}

			var hash string
			if req.Password != nil {
				hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
				if err != nil {
					return Update[*models.Admin]{}, &apiError{Status: http.StatusInternalServerError, Message: "Failed to hash the password."}
				}
				hash = string(hashed)
			}

			return Update[*models.Admin]{
				Check: func(id uuid.UUID) error {
					if req.Email != nil && adminEmailTaken(admins, *req.Email, id) {
						return Conflict("Email already exists.")
					}
					return nil
				},
				Merge: func(a *models.Admin) {
					if req.Name != nil {
						a.Name = *req.Name
					}
					if req.Email != nil {
						a.Email = *req.Email
					}
					if req.Password != nil {
						a.PasswordHash = hash
					}
				},
			}, nil
		},
	}
}

func adminEmailTaken(admins *store.Collection[*models.Admin], email string, exclude uuid.UUID) bool {
	_, found := admins.Find(func(a *models.Admin) bool {
		return strings.EqualFold(a.Email, email) && a.ID != exclude
	})
	return found
}
