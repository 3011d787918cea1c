package handlers

import (
	"context"
	"net/http"

	"github.com/01moynul/taptosell-console/internal/forms"
	"github.com/01moynul/taptosell-console/internal/resource"
	"github.com/gin-gonic/gin"
)

//
// --- Admin: Product Handlers ---
//

// GetProducts is the handler for GET /v1/admin/products
// Filters: search, status, brand, category.
func (h *Handlers) GetProducts(c *gin.Context) {
	listView(c, h, h.Products, "status", "brand", "category")
}

// UpdateProduct is the handler for PUT /v1/admin/products/:id
func (h *Handlers) UpdateProduct(c *gin.Context) {
	id := c.Param("id")
	var form forms.ProductForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	submitDialog(c, h, form, func(ctx context.Context, f forms.ProductForm) error {
		return h.Products.Update(ctx, id, f.Payload())
	}, http.StatusOK, h.productList)
}

// UpdateProductStatus is the handler for PATCH /v1/admin/products/:id/status
// It publishes, unpublishes or archives a product in one click.
func (h *Handlers) UpdateProductStatus(c *gin.Context) {
	id := c.Param("id")
	var form forms.ProductStatusForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	submitDialog(c, h, form, func(ctx context.Context, f forms.ProductStatusForm) error {
		return h.Products.Patch(ctx, id, f.Payload())
	}, http.StatusOK, h.productList)
}

// DeleteProduct is the handler for DELETE /v1/admin/products/:id
func (h *Handlers) DeleteProduct(c *gin.Context) {
	if err := h.Products.Delete(h.requestContext(c), c.Param("id")); err != nil {
		respondUpstreamError(c, err, "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully", "result": h.productList()})
}

func (h *Handlers) productList() any { return h.Products.View(resource.Query{}) }
