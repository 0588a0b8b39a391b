package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/nadhifr/quizadmin/internal/helpers"
	"github.com/nadhifr/quizadmin/internal/middleware"
	"github.com/nadhifr/quizadmin/internal/models"
	"github.com/nadhifr/quizadmin/internal/session"
	"github.com/nadhifr/quizadmin/internal/store"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type AuthHandler struct {
	Admins   *store.Collection[*models.Admin]
	Sessions *session.Store
}

func NewAuthHandler(admins *store.Collection[*models.Admin], sessions *session.Store) *AuthHandler {
	return &AuthHandler{Admins: admins, Sessions: sessions}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithBindingError(c, err)
		return
	}

	if _, found := h.findByEmail(req.Email); found {
		helpers.RespondWithError(c, http.StatusConflict, "Email already exists.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to hash the password.")
		return
	}

	admin := h.Admins.Create(&models.Admin{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	})

	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin registered successfully.",
		"admin": gin.H{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
		},
	})
}

// Login checks the credentials against the admin directory. Unknown email
// and wrong password are indistinguishable to the caller; neither changes
// any state.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithBindingError(c, err)
		return
	}

	admin, found := h.findByEmail(req.Email)
	if !found {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	token, err := h.Sessions.Issue(admin)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"admin": gin.H{
			"id":    admin.ID,
			"name":  admin.Name,
			"email": admin.Email,
		},
	})
}

// Logout revokes the presented session token. Later requests with the same
// token are rejected even though it has not expired yet.
func (h *AuthHandler) Logout(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	h.Sessions.Revoke(identity.TokenID)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully."})
}

// ForgotPassword issues a reset token for a known admin email. A real
// deployment would mail the token; here it is returned directly so the
// reset flow stays exercisable end to end.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithBindingError(c, err)
		return
	}

	admin, found := h.findByEmail(req.Email)
	if !found {
		helpers.RespondWithError(c, http.StatusNotFound, "Email not found.")
		return
	}

	token, err := h.Sessions.IssueReset(admin)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate reset token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Password reset email sent.",
		"reset_token": token,
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithBindingError(c, err)
		return
	}

	adminID, err := h.Sessions.ValidateReset(req.Token)
	if err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired reset token.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to hash the password.")
		return
	}

	if _, err := h.Admins.Update(adminID, func(a *models.Admin) {
		a.PasswordHash = string(hash)
	}); err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Admin not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully."})
}

// Me returns the identity behind the presented token, so a reloaded client
// can restore its session without re-authenticating.
func (h *AuthHandler) Me(c *gin.Context) {
	identity := middleware.CurrentIdentity(c)
	if identity == nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Not authenticated.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"admin": gin.H{
			"id":    identity.AdminID,
			"name":  identity.Name,
			"email": identity.Email,
		},
	})
}

func (h *AuthHandler) findByEmail(email string) (*models.Admin, bool) {
	return h.Admins.Find(func(a *models.Admin) bool {
		return strings.EqualFold(a.Email, email)
	})
}
