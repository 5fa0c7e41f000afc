package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDebug reports whether debug mode is on. Debug is a startup-time
// flag; it cannot be toggled through requests.
func (h *Handler) GetDebug(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"isDebug": h.debug})
}
