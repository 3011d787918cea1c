package models

import (
	"strings"
	"time"

	"github.com/01moynul/taptosell-console/internal/normalize"
	"github.com/shopspring/decimal"
)

// Payout statuses. pending -> approved | rejected, approved -> cleared.
const (
	PayoutPending  = "pending"
	PayoutApproved = "approved"
	PayoutCleared  = "cleared"
	PayoutRejected = "rejected"
)

// PayoutStatuses is the closed set of payout statuses.
var PayoutStatuses = []string{PayoutPending, PayoutApproved, PayoutCleared, PayoutRejected}

// Payout user types.
var PayoutUserTypes = []string{"merchant", "supplier", "model", "user"}

// PayoutRequest is a withdrawal request raised by a merchant, supplier, model or user.
type PayoutRequest struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	UserName        string          `json:"userName"`
	UserEmail       string          `json:"userEmail"`
	UserType        string          `json:"userType"`
	BankDetails     string          `json:"bankDetails,omitempty"`
	RejectionReason string          `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// NormalizePayout builds a payout request from an upstream record.
func NormalizePayout(raw map[string]any) PayoutRequest {
	status := strings.ToLower(normalize.ToString(raw["status"]))
	if !oneOf(status, PayoutStatuses) {
		status = PayoutPending
	}
	userType := strings.ToLower(normalize.ToString(normalize.First(raw, "user_type", "userType")))
	if !oneOf(userType, PayoutUserTypes) {
		userType = "user"
	}

	return PayoutRequest{
		ID:              normalize.ID(raw["id"]),
		UserID:          normalize.ID(normalize.First(raw, "user_id", "userId")),
		Amount:          normalize.ToDecimal(raw["amount"]),
		Status:          status,
		UserName:        normalize.Default(normalize.ToString(normalize.First(raw, "user_name", "userName", "full_name", "supplierName")), "Unknown user"),
		UserEmail:       normalize.ToString(normalize.First(raw, "user_email", "userEmail", "email", "supplierEmail")),
		UserType:        userType,
		BankDetails:     normalize.ToString(normalize.First(raw, "bank_details", "bankDetails")),
		RejectionReason: normalize.ToString(normalize.First(raw, "rejection_reason", "rejectionReason")),
		CreatedAt:       normalize.ToTime(normalize.First(raw, "created_at", "createdAt")),
	}
}

// CanPrintInvoice reports whether an invoice may be printed for p.
func (p PayoutRequest) CanPrintInvoice() bool {
	return p.Status == PayoutApproved || p.Status == PayoutCleared
}

func (p PayoutRequest) SearchFields() []string {
	return []string{p.UserName, p.UserEmail, p.ID}
}

func (p PayoutRequest) FilterValue(key string) string {
	switch key {
	case "status":
		return p.Status
	case "user_type":
		return p.UserType
	}
	return ""
}
