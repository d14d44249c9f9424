package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pasardb/pasardb/internal/database"
	"github.com/pasardb/pasardb/internal/migrate"
	"github.com/pasardb/pasardb/internal/seed"
	"github.com/pasardb/pasardb/internal/verify"
)

// Server exposes read-only operational endpoints over the storefront schema:
// health, table introspection, and a seed report. The storefront API itself
// (catalog browsing, checkout) is a separate application's job.
type Server struct {
	router *gin.Engine
	db     *database.DB
}

// NewServer creates a new server instance
func NewServer(db *database.DB) *Server {
	router := gin.Default()

	server := &Server{
		router: router,
		db:     db,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.GET("/schema", s.schemaInfo)
		api.GET("/seed", s.seedReport)
	}
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	if err := s.db.HealthCheck(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "error",
			"error":  "database connection failed",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "pasardb",
		"version": "0.1.0",
	})
}

// schemaInfo reports each storefront table with its column and row counts,
// plus the migration ledger.
func (s *Server) schemaInfo(c *gin.Context) {
	tables, err := s.db.DescribeTables()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	statuses, err := migrate.NewRunner(s.db).Status()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tables":     tables,
		"migrations": statuses,
	})
}

// seedReport compares the seeded rows against the expected fixtures.
func (s *Server) seedReport(c *gin.Context) {
	report, err := verify.New(s.db).Run()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	expected := seed.Default()
	c.JSON(http.StatusOK, gin.H{
		"passed": report.Passed(),
		"checks": report.Checks,
		"expected": gin.H{
			"categories":  len(expected.Categories),
			"products":    len(expected.Products),
			"orders":      1,
			"order_items": len(expected.Items),
		},
	})
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}
