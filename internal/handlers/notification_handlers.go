package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

//
// --- Notification Handlers ---
//

// GetNotifications is the handler for GET /v1/notifications?limit=
// It returns the most recent toasts (newest first) emitted by loads and writes.
func (h *Handlers) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"notifications": h.noticesFor(c).Recent(queryLimit(c, 20, 100))})
}
