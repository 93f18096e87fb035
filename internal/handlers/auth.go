package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/Tyrock1988/gamblecodez-platform/internal/models"
	"github.com/Tyrock1988/gamblecodez-platform/internal/services"
	"github.com/Tyrock1988/gamblecodez-platform/pkg/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login implements the self-hosted credential provider: a single admin
// identity configured through the environment.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid login data", "errors": bindingErrors(err)})
		return
	}

	if h.cfg.AdminPassword == "" && h.cfg.AdminPasswordHash == "" {
		h.logger.Error("Admin password not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Admin password not configured"})
		return
	}

	if !h.checkAdminCredentials(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	user, err := h.authService.UpsertUser(models.User{
		ID:        "admin",
		FirstName: h.cfg.AdminUsername,
	})
	if err != nil {
		h.logger.Error("Failed to upsert admin user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to log in"})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", h.cfg.AdminUsername)
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save session"})
		return
	}

	h.auditService.LogAction(user.ID, "LOGIN", user.ID, nil, c.ClientIP())

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not log out"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) CurrentUser(c *gin.Context) {
	userID := sessionUserID(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	user, err := h.authService.GetUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
			return
		}
		h.logger.Error("Failed to fetch user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// checkAdminCredentials prefers a bcrypt hash; the plaintext fallback is
// compared in constant time.
func (h *Handler) checkAdminCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(h.cfg.AdminUsername)) == 1

	var passOK bool
	if h.cfg.AdminPasswordHash != "" {
		passOK = utils.CheckPasswordHash(password, h.cfg.AdminPasswordHash)
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(h.cfg.AdminPassword)) == 1
	}

	return userOK && passOK
}
