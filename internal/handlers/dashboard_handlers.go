package handlers

import (
	"net/http"
	"net/url"

	"github.com/01moynul/taptosell-console/internal/models"
	"github.com/01moynul/taptosell-console/internal/resource"
	"github.com/01moynul/taptosell-console/internal/stats"
	"github.com/gin-gonic/gin"
)

//
// --- Seller Dashboard: Own Payouts ---
//

// GetMyPayouts is the handler for GET /v1/dashboard/payouts
// It returns the caller's payout history and the same sums the admin screen shows.
func (h *Handlers) GetMyPayouts(c *gin.Context) {
	// 1. --- Get User ID ---
	userID := c.GetInt64("userID")

	// 2. --- Fetch ---
	raw, err := h.Client.ListQuery(h.requestContext(c), "payouts", url.Values{"user_id": {itoa(userID)}})
	if err != nil {
		h.noticesFor(c).Error("Failed to load payout requests")
		respondUpstreamError(c, err, "Failed to load payout requests")
		return
	}
	items := make([]models.PayoutRequest, 0, len(raw))
	for _, r := range raw {
		items = append(items, models.NormalizePayout(r))
	}

	// 3. --- Filter and derive stats ---
	q := resource.QueryFromValues(c.Request.URL.Query(), "status")
	filtered := resource.Filter(items, q, models.PayoutRequest.SearchFields, models.PayoutRequest.FilterValue)
	c.JSON(http.StatusOK, resource.View[models.PayoutRequest, stats.PayoutStats]{
		Items:    filtered,
		Total:    len(items),
		Filtered: len(filtered),
		Stats:    stats.Payouts(items),
		State:    resource.StateSuccess,
	})
}

//
// --- Seller Dashboard: Own Products ---
//

// GetMyProducts is the handler for GET /v1/dashboard/products
// It lists the caller's own products with the same filters and stats as the admin screen.
func (h *Handlers) GetMyProducts(c *gin.Context) {
	// 1. --- Get Owner ID ---
	ownerID := c.GetInt64("userID")

	// 2. --- Fetch the caller's products ---
	raw, err := h.Client.ListQuery(h.requestContext(c), "products", url.Values{"owner_id": {itoa(ownerID)}})
	if err != nil {
		h.noticesFor(c).Error("Failed to load products")
		respondUpstreamError(c, err, "Failed to load products")
		return
	}
	items := make([]models.Product, 0, len(raw))
	for _, r := range raw {
		items = append(items, models.NormalizeProduct(r))
	}

	// 3. --- Filter and derive stats ---
	q := resource.QueryFromValues(c.Request.URL.Query(), "status", "brand", "category")
	filtered := resource.Filter(items, q, models.Product.SearchFields, models.Product.FilterValue)
	c.JSON(http.StatusOK, resource.View[models.Product, stats.ProductStats]{
		Items:    filtered,
		Total:    len(items),
		Filtered: len(filtered),
		Stats:    stats.Products(items),
		State:    resource.StateSuccess,
	})
}
