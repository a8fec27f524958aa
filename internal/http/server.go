// Package http provides the HTTP server wiring the credential store API.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	credentialHTTP "github.com/allisson/credstore/internal/credential/http"
	keysHTTP "github.com/allisson/credstore/internal/keys/http"
)

// ServerOptions groups the knobs for the API server.
type ServerOptions struct {
	Host string
	Port int

	RateLimitEnabled        bool
	RateLimitRequestsPerSec float64
	RateLimitBurst          int

	CORSEnabled      bool
	CORSAllowOrigins string
}

// Server represents the HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
	db     *sql.DB
}

// NewServer creates a new HTTP server with all routes registered.
// db may be nil when the store backend does not use a database; readiness
// then skips the database check. metricsMiddleware may be nil when metrics
// are disabled.
func NewServer(
	opts ServerOptions,
	logger *slog.Logger,
	db *sql.DB,
	keyHandler *keysHTTP.KeyHandler,
	credentialHandler *credentialHTTP.CredentialHandler,
	metricsMiddleware gin.HandlerFunc,
) *Server {
	s := &Server{
		logger: logger,
		db:     db,
	}
	s.router = s.setupRouter(opts, keyHandler, credentialHandler, metricsMiddleware)
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

// setupRouter builds the Gin engine with middleware and routes.
func (s *Server) setupRouter(
	opts ServerOptions,
	keyHandler *keysHTTP.KeyHandler,
	credentialHandler *credentialHTTP.CredentialHandler,
	metricsMiddleware gin.HandlerFunc,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(opts.CORSEnabled, opts.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsMiddleware != nil {
		router.Use(metricsMiddleware)
	}

	// Health and readiness endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if opts.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(opts.RateLimitRequestsPerSec, opts.RateLimitBurst, s.logger))
	}

	v1.PUT("/keys/:tag", keyHandler.SaveHandler)
	v1.GET("/keys/:tag", keyHandler.GetHandler)
	v1.POST("/keys/:tag", keyHandler.UpdateHandler)
	v1.DELETE("/keys/:tag", keyHandler.DeleteHandler)

	v1.POST("/keypairs/:tag", keyHandler.GenerateKeyPairHandler)
	v1.GET("/keypairs/:tag/public", keyHandler.GetPublicKeyHandler)

	v1.POST("/credentials", credentialHandler.SaveHandler)
	v1.GET("/credentials/:key_tag", credentialHandler.LoadHandler)
	v1.DELETE("/credentials", credentialHandler.DeleteHandler)

	return router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// healthHandler reports liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports readiness, including the database when one is
// configured.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}

	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			components["database"] = "error"
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not ready",
				"components": components,
			})
			return
		}
		components["database"] = "ok"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
