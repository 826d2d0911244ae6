package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkravets/bookmarks-api/internal/logger"
	"github.com/mkravets/bookmarks-api/internal/model"
)

// userResponse is the public view of the authenticated user.
type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// User handles HTTP endpoints for the authenticated user.
type User struct {
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		contextManager: contextManager,
		logger:         logger,
	}
}

// Me returns the identity of the authenticated caller. The identity is set
// by the authentication middleware, so its absence is a server bug.
func (h *User) Me(c *gin.Context) {
	identity, ok := h.contextManager.GetIdentityFromContext(c.Request.Context())
	if !ok {
		h.logger.Error("User handler: identity missing from authenticated request",
			"path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, userResponse{
		ID:    identity.UserID.String(),
		Email: identity.Email,
	})
}
