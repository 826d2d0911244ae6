package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkravets/bookmarks-api/internal/logger"
)

// AuthService defines user registration and login operations.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
}

// credentialsRequest is the body accepted by both signup and signin.
type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// tokenResponse carries the issued access token.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Auth handles HTTP endpoints for authentication.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{
		authService: authService,
		logger:      logger,
	}
}

// SignUp registers new credentials and responds with an access token.
func (h *Auth) SignUp(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.logger.Debug("Auth handler: processing signup request",
		"email", req.Email)

	token, err := h.authService.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: signup failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("Auth handler: signup completed",
		"email", req.Email)

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token})
}

// SignIn verifies credentials and responds with an access token.
func (h *Auth) SignIn(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.logger.Debug("Auth handler: processing signin request",
		"email", req.Email)

	token, err := h.authService.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.logger.Error("Auth handler: signin failed",
			"email", req.Email,
			"error", err.Error())
		handleError(c, err)
		return
	}

	h.logger.Info("Auth handler: signin completed",
		"email", req.Email)

	c.JSON(http.StatusOK, tokenResponse{AccessToken: token})
}
