package models

import (
	"strings"

	"github.com/01moynul/taptosell-console/internal/normalize"
	"github.com/shopspring/decimal"
)

// Plan roles a subscription plan can be sold to.
const (
	PlanRoleMerchant   = "merchant"
	PlanRoleModel      = "model"
	PlanRoleInfluencer = "influencer"
)

// PlanRoles lists the closed set of plan roles.
var PlanRoles = []string{PlanRoleMerchant, PlanRoleModel, PlanRoleInfluencer}

// SubscriptionPlan mirrors the platform's 'subscription_plans' records.
type SubscriptionPlan struct {
	ID                   string          `json:"id"`
	Role                 string          `json:"role"`
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	Price                decimal.Decimal `json:"price"`
	Features             []string        `json:"features"`
	IncludesDropshipping bool            `json:"includesDropshipping"`
	IsActive             bool            `json:"isActive"`
}

// NormalizePlan builds a plan from an upstream record.
// features may arrive as an array, a JSON string or a comma string.
func NormalizePlan(raw map[string]any) SubscriptionPlan {
	return SubscriptionPlan{
		ID:                   normalize.ID(raw["id"]),
		Role:                 strings.ToLower(normalize.ToString(raw["role"])),
		Name:                 normalize.ToString(raw["name"]),
		Description:          normalize.ToString(raw["description"]),
		Price:                nonNegative(normalize.ToDecimal(raw["price"])),
		Features:             normalize.StringList(raw["features"]),
		IncludesDropshipping: normalize.ToBool(normalize.First(raw, "includes_dropshipping", "includesDropshipping")),
		IsActive:             normalize.ToBool(normalize.First(raw, "is_active", "isActive")),
	}
}

func (p SubscriptionPlan) SearchFields() []string {
	return []string{p.Name, p.Description, p.Role}
}

func (p SubscriptionPlan) FilterValue(key string) string {
	switch key {
	case "role":
		return p.Role
	case "status":
		return activeLabel(p.IsActive)
	}
	return ""
}

func activeLabel(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}
