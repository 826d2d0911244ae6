package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkravets/bookmarks-api/internal/model"
)

// handleError maps service errors to HTTP responses. Anything unrecognized
// becomes a generic 500 so internal details never reach the client.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrEmailTaken):
		c.JSON(http.StatusForbidden, gin.H{"error": "email already taken"})
	case errors.Is(err, model.ErrInvalidCredentials):
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid credentials"})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
