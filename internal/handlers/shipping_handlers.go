package handlers

import (
	"context"
	"net/http"

	"github.com/01moynul/taptosell-console/internal/forms"
	"github.com/01moynul/taptosell-console/internal/resource"
	"github.com/gin-gonic/gin"
)

//
// --- Admin: Shipping Company Handlers ---
//

// GetShippingCompanies is the handler for GET /v1/admin/shipping-companies
func (h *Handlers) GetShippingCompanies(c *gin.Context) {
	listView(c, h, h.Shipping, "status")
}

// CreateShippingCompany is the handler for POST /v1/admin/shipping-companies
func (h *Handlers) CreateShippingCompany(c *gin.Context) {
	var form forms.ShippingCompanyForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	submitDialog(c, h, form, func(ctx context.Context, f forms.ShippingCompanyForm) error {
		return h.Shipping.Create(ctx, f.Payload())
	}, http.StatusCreated, h.shippingList)
}

// UpdateShippingCompany is the handler for PUT /v1/admin/shipping-companies/:id
func (h *Handlers) UpdateShippingCompany(c *gin.Context) {
	id := c.Param("id")
	var form forms.ShippingCompanyForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	submitDialog(c, h, form, func(ctx context.Context, f forms.ShippingCompanyForm) error {
		return h.Shipping.Update(ctx, id, f.Payload())
	}, http.StatusOK, h.shippingList)
}

// DeleteShippingCompany is the handler for DELETE /v1/admin/shipping-companies/:id
func (h *Handlers) DeleteShippingCompany(c *gin.Context) {
	if err := h.Shipping.Delete(h.requestContext(c), c.Param("id")); err != nil {
		respondUpstreamError(c, err, "Failed to delete shipping company")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shipping company deleted successfully", "result": h.shippingList()})
}

func (h *Handlers) shippingList() any { return h.Shipping.View(resource.Query{}) }
