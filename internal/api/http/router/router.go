package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkravets/bookmarks-api/internal/api/http/handler"
	"github.com/mkravets/bookmarks-api/internal/api/http/middleware"
	"github.com/mkravets/bookmarks-api/internal/logger"
	"github.com/mkravets/bookmarks-api/internal/model"
)

// Router wires handlers and middleware into an HTTP engine.
type Router struct {
	authService    handler.AuthService
	verifier       middleware.TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	verifier middleware.TokenVerifier,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		verifier:       verifier,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the engine with logging and recovery middleware and
// registers all routes. Auth endpoints are public, user endpoints require
// a valid bearer token.
func (r *Router) Register() *gin.Engine {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.verifier, r.contextManager, r.logger)

	engine := gin.New()
	engine.Use(gin.Recovery(), logging.Handle())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := handler.NewAuth(r.authService, r.logger)
	authGroup := engine.Group("/auth")
	authGroup.POST("/signup", authHandler.SignUp)
	authGroup.POST("/signin", authHandler.SignIn)

	userHandler := handler.NewUser(r.contextManager, r.logger)
	userGroup := engine.Group("/users")
	userGroup.Use(authenticate.Handle())
	userGroup.GET("/me", userHandler.Me)

	return engine
}
