package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler provides liveness and readiness endpoints for the service.
//
// Responsibilities:
//   - /healthz: Basic liveness probe (always returns 200 OK).
//   - /readyz: Readiness probe (depends on database connectivity).
type HealthHandler struct {
	dbPing func() error // Function to check database connectivity
}

// NewHealthHandler constructs a HealthHandler with the provided dbPing function.
//
// Parameters:
//   - dbPing (func() error): A function used to check if the database is reachable.
//     Typically, this is db.Ping from *sql.DB.
//
// Returns:
//   - *HealthHandler: A new handler instance.
func NewHealthHandler(dbPing func() error) *HealthHandler {
	return &HealthHandler{dbPing: dbPing}
}

// Register mounts the health and readiness endpoints into the provided Gin router.
//
// Routes:
//   - GET /healthz: Always returns 200 OK.
//   - GET /readyz: Returns 200 OK if dbPing succeeds, 503 if database is not reachable.
//
// Parameters:
//   - r (*gin.Engine): The Gin router to register routes on.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Liveness probe (just checks if the service is up)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness probe (checks DB connection)
	r.GET("/readyz", func(c *gin.Context) {
		if h.dbPing != nil && h.dbPing() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
}
