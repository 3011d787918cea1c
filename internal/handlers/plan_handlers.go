package handlers

import (
	"context"
	"net/http"

	"github.com/01moynul/taptosell-console/internal/forms"
	"github.com/01moynul/taptosell-console/internal/resource"
	"github.com/gin-gonic/gin"
)

//
// --- Admin: Subscription Plan Handlers ---
//

// GetPlans is the handler for GET /v1/admin/plans
// Filters: search, role, status (active|inactive).
func (h *Handlers) GetPlans(c *gin.Context) {
	listView(c, h, h.Plans, "role", "status")
}

// CreatePlan is the handler for POST /v1/admin/plans
func (h *Handlers) CreatePlan(c *gin.Context) {
	var form forms.PlanForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	submitDialog(c, h, form, func(ctx context.Context, f forms.PlanForm) error {
		return h.Plans.Create(ctx, f.Payload())
	}, http.StatusCreated, h.planList)
}

// UpdatePlan is the handler for PUT /v1/admin/plans/:id
func (h *Handlers) UpdatePlan(c *gin.Context) {
	id := c.Param("id")
	var form forms.PlanForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	submitDialog(c, h, form, func(ctx context.Context, f forms.PlanForm) error {
		return h.Plans.Update(ctx, id, f.Payload())
	}, http.StatusOK, h.planList)
}

// DeletePlan is the handler for DELETE /v1/admin/plans/:id
func (h *Handlers) DeletePlan(c *gin.Context) {
	if err := h.Plans.Delete(h.requestContext(c), c.Param("id")); err != nil {
		respondUpstreamError(c, err, "Failed to delete subscription plan")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscription plan deleted successfully", "result": h.planList()})
}

func (h *Handlers) planList() any { return h.Plans.View(resource.Query{}) }
