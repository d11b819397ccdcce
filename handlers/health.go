package handlers

import (
	"net/http"

	"dentalcare/utils"

	"github.com/gin-gonic/gin"
)

func WelcomeHandler(c *gin.Context) {
	c.String(http.StatusOK, "Dental care server is running")
}

// HealthHandler reports the latest snapshot kept by the monitor.
func HealthHandler(monitor *utils.HealthMonitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := monitor.Status()
		code := http.StatusOK
		if !status.Mongo {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	}
}
