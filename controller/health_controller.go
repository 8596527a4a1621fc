package controller

import (
	"net/http"
	"time"

	"github.com/anishgupta6801/LUMINA-WEBSITE/config"
	"github.com/gin-gonic/gin"
)

// HealthCheck confirms the process is accepting connections. It deliberately
// performs no store check.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "API server is running",
		"environment": config.C.Env,
		"timestamp":   time.Now().Format(time.RFC3339),
	})
}
