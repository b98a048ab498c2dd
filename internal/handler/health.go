package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports liveness. There is no backing service to probe: the CSV
// store either loaded at startup or the process never came up.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
