package handlers

import (
	"net/http"

	"hireme/middleware"
	"hireme/models"

	"github.com/gin-gonic/gin"
)

// RegisterUserHandler creates an account.
func (hb *HandlerBundle) RegisterUserHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		FullName string `json:"fullName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := hb.Users.Register(input.Email, input.Password, input.FullName)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// AuthenticateUserHandler signs an account in.
func (hb *HandlerBundle) AuthenticateUserHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := hb.Users.Authenticate(input.Email, input.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// SessionHandler rehydrates the active account from the cached session.
func (hb *HandlerBundle) SessionHandler(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter required"})
		return
	}
	account, err := hb.Users.Rehydrate(email)
	if err != nil {
		respondError(c, err)
		return
	}
	if account == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active session"})
		return
	}
	c.JSON(http.StatusOK, account)
}

// LogoutHandler drops the caller's cached session.
func (hb *HandlerBundle) LogoutHandler(c *gin.Context) {
	email := c.GetString(middleware.ContextEmail)
	if err := hb.Users.Logout(email); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// BecomeProviderHandler flips the caller into provider capacity.
func (hb *HandlerBundle) BecomeProviderHandler(c *gin.Context) {
	var profile models.ProviderProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	account, err := hb.Users.BecomeProvider(middleware.UserID(c), profile)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// SwitchRoleHandler records which capacity the caller's view is showing.
func (hb *HandlerBundle) SwitchRoleHandler(c *gin.Context) {
	var input struct {
		Role models.Role `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	account, err := hb.Users.SwitchRole(middleware.UserID(c), input.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}
