package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by the database pool
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	startAt time.Time
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{
		db:      db,
		startAt: time.Now(),
	}
}

// Register mounts the probes on r
func (h *HealthHandler) Register(r gin.IRoutes) {
	r.GET("/health/live", h.Live)
	r.GET("/health/ready", h.Ready)
}

// Live handles GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready handles GET /health/ready; 503 while the database is unreachable
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	check := gin.H{"status": "up", "latency_ms": time.Since(start).Milliseconds()}

	status, overall := http.StatusOK, "healthy"
	if err != nil {
		check["status"] = "down"
		check["error"] = "connection failed"
		status, overall = http.StatusServiceUnavailable, "unavailable"
	}

	c.JSON(status, gin.H{
		"status":         overall,
		"checks":         gin.H{"database": check},
		"uptime_seconds": int(time.Since(h.startAt).Seconds()),
	})
}
