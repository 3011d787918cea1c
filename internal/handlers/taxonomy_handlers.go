package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/01moynul/taptosell-console/internal/cache"
	"github.com/01moynul/taptosell-console/internal/models"
	"github.com/01moynul/taptosell-console/internal/resource"
	"github.com/01moynul/taptosell-console/internal/storefront"
	"github.com/gin-gonic/gin"
)

//
// --- Storefront (Public) ---
//

// GetNavigation is the handler for GET /v1/storefront/navigation
// It returns the category tree with a browsable path on every node.
func (h *Handlers) GetNavigation(c *gin.Context) {
	tree, err := cache.Remember(h.requestContext(c), h.Cache, "storefront:navigation", h.cacheTTL,
		func(ctx context.Context) ([]models.Category, error) {
			return storefront.LoadNavigation(ctx, h.Client)
		})
	if err != nil {
		respondUpstreamError(c, err, "Failed to load categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": tree})
}

// SearchStorefront is the handler for GET /v1/storefront/search?q=
// Typing sends one request per keystroke; each session only ever receives
// the answer to its latest query. Superseded requests get 204 No Content.
func (h *Handlers) SearchStorefront(c *gin.Context) {
	res, err := h.Search.Search(h.requestContext(c), searchSession(c), c.Query("q"))
	switch {
	case errors.Is(err, resource.ErrSuperseded):
		c.Status(http.StatusNoContent)
	case err != nil && c.Request.Context().Err() != nil:
		// The visitor went away.
		c.Status(http.StatusNoContent)
	case err != nil:
		respondUpstreamError(c, err, "Search failed")
	default:
		c.JSON(http.StatusOK, res)
	}
}

// searchSession identifies the visitor: the X-Session-ID header, the
// session query parameter, or the client IP.
func searchSession(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader("X-Session-ID")); id != "" {
		return id
	}
	if id := strings.TrimSpace(c.Query("session")); id != "" {
		return id
	}
	return c.ClientIP()
}

// GetModelProfile is the handler for GET /v1/storefront/models/:id
// Profiles are cached briefly; expired stories may linger for at most one TTL.
func (h *Handlers) GetModelProfile(c *gin.Context) {
	id := c.Param("id")
	profile, err := cache.Remember(h.requestContext(c), h.Cache, "storefront:model:"+id, h.cacheTTL,
		func(ctx context.Context) (storefront.ModelProfile, error) {
			return storefront.LoadProfile(ctx, h.Client, id, h.now())
		})
	if err != nil {
		respondUpstreamError(c, err, "Failed to load profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}
