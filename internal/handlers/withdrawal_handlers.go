package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/01moynul/taptosell-console/internal/forms"
	"github.com/01moynul/taptosell-console/internal/models"
	"github.com/01moynul/taptosell-console/internal/resource"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

//
// --- Admin: Payout Request Handlers ---
//

// GetPayouts is the handler for GET /v1/admin/payouts
// Filters: search, status, user_type.
func (h *Handlers) GetPayouts(c *gin.Context) {
	listView(c, h, h.Payouts, "status", "user_type")
}

// DecidePayout is the handler for PATCH /v1/admin/payouts/:id
// It approves, rejects (with a reason) or clears a payout request.
func (h *Handlers) DecidePayout(c *gin.Context) {
	id := c.Param("id")
	var form forms.PayoutDecision
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	submitDialog(c, h, form, func(ctx context.Context, f forms.PayoutDecision) error {
		return h.Payouts.Patch(ctx, id, f.Payload())
	}, http.StatusOK, func() any { return h.Payouts.View(resource.Query{}) })
}

// Invoice is the printable payout invoice.
type Invoice struct {
	Number    string               `json:"invoiceNumber"`
	Payout    models.PayoutRequest `json:"payout"`
	Amount    decimal.Decimal      `json:"amount"`
	IssuedAt  string               `json:"issuedAt"`
	PayeeName string               `json:"payeeName"`
}

// GetPayoutInvoice is the handler for GET /v1/admin/payouts/:id/invoice
// Only approved or cleared payouts can be invoiced.
func (h *Handlers) GetPayoutInvoice(c *gin.Context) {
	id := c.Param("id")

	// 1. --- Fetch the payout ---
	raw, err := h.Client.Get(h.requestContext(c), "admin/payouts", id)
	if err != nil {
		respondUpstreamError(c, err, "Failed to load payout request")
		return
	}
	payout := models.NormalizePayout(raw)
	if payout.ID == "" {
		payout.ID = id
	}

	// 2. --- Check it can be printed ---
	if !payout.CanPrintInvoice() {
		c.JSON(http.StatusConflict, gin.H{"error": "Invoice is only available for approved or cleared payouts"})
		return
	}

	// 3. --- Send Response ---
	c.JSON(http.StatusOK, Invoice{
		Number:    fmt.Sprintf("INV-%s", payout.ID),
		Payout:    payout,
		Amount:    payout.Amount,
		IssuedAt:  h.now().UTC().Format("2006-01-02"),
		PayeeName: payout.UserName,
	})
}
