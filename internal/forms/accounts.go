package forms

import (
	"strings"

	"github.com/01moynul/taptosell-console/internal/models"
)

// UserForm changes a user's role and ban state. Both fields always travel
// together so a role change can never silently clear a ban (or the reverse).
type UserForm struct {
	RoleID   int  `json:"role_id" validate:"required,min=1,max=6"`
	IsBanned bool `json:"is_banned"`
}

// UserFromEntity prefills the dialog with the user's current state.
func UserFromEntity(u models.User) UserForm {
	return UserForm{RoleID: u.RoleID, IsBanned: u.IsBanned}
}

func (f UserForm) Validate() error { return check(f).orNil() }

func (f UserForm) Payload() map[string]any {
	return map[string]any{
		"role_id":   f.RoleID,
		"is_banned": f.IsBanned,
	}
}

// Payout decision actions.
const (
	PayoutApprove = "approve"
	PayoutReject  = "reject"
	PayoutClear   = "clear"
)

var payoutStatusFor = map[string]string{
	PayoutApprove: models.PayoutApproved,
	PayoutReject:  models.PayoutRejected,
	PayoutClear:   models.PayoutCleared,
}

// PayoutDecision approves, rejects or clears a payout request.
type PayoutDecision struct {
	Action string `json:"action" validate:"required,oneof=approve reject clear"`
	Reason string `json:"reason" validate:"required_if=Action reject,max=500"`
}

func (f PayoutDecision) Validate() error {
	f.Reason = strings.TrimSpace(f.Reason)
	return check(f).orNil()
}

// Status is the payout status the decision moves the request to.
func (f PayoutDecision) Status() string { return payoutStatusFor[f.Action] }

// Payload carries the status and, for rejections, the reason shown to the requester.
func (f PayoutDecision) Payload() map[string]any {
	payload := map[string]any{"status": f.Status()}
	if f.Action == PayoutReject {
		payload["rejection_reason"] = strings.TrimSpace(f.Reason)
	}
	return payload
}
