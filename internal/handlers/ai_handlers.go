package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/01moynul/taptosell-console/internal/ai"
	"github.com/gin-gonic/gin"
)

// SuggestCaption is the handler for POST /v1/stories/caption
// It asks the AI assistant for a caption the creator can edit before posting.
func (h *Handlers) SuggestCaption(c *gin.Context) {
	// 1. Parse Input
	var input ai.CaptionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. Call the AI Service
	caption, err := h.AI.SuggestCaption(c.Request.Context(), input)
	if errors.Is(err, ai.ErrDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Caption suggestions are not available"})
		return
	}
	if err != nil {
		log.Printf("Warning: caption suggestion failed for user %d: %v", c.GetInt64("userID"), err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "AI Service unavailable"})
		return
	}

	// 3. Return the Answer
	c.JSON(http.StatusOK, gin.H{"caption": caption})
}
