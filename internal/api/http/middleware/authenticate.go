package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mkravets/bookmarks-api/internal/logger"
	"github.com/mkravets/bookmarks-api/internal/model"
)

// TokenVerifier parses and validates access tokens.
type TokenVerifier interface {
	ParseAccessToken(tokenString string) (model.Identity, error)
}

// Authenticate validates bearer tokens and injects the caller identity into
// the request context. Requests that fail any step are rejected with 401.
type Authenticate struct {
	verifier       TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(verifier TokenVerifier, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{verifier: verifier, contextManager: contextManager, logger: logger}
}

// Handle returns the gin handler enforcing bearer authentication.
func (m *Authenticate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			m.logger.Debug("Authenticate middleware: missing bearer token",
				"path", c.Request.URL.Path)
			abortUnauthenticated(c)
			return
		}

		identity, err := m.verifier.ParseAccessToken(tokenString)
		if err != nil {
			// The caller only learns the request was unauthenticated. The
			// reason stays in server logs.
			m.logger.Debug("Authenticate middleware: token rejected",
				"path", c.Request.URL.Path,
				"error", err.Error())
			abortUnauthenticated(c)
			return
		}

		ctx := m.contextManager.SetIdentityToContext(c.Request.Context(), identity)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// bearerToken extracts the token from an Authorization header value. The
// scheme comparison is case-insensitive.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
}
