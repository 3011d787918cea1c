package models

import (
	"github.com/01moynul/taptosell-console/internal/normalize"
	"github.com/shopspring/decimal"
)

// ShippingCompany is a courier merchants can ship with.
type ShippingCompany struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	ShippingCost decimal.Decimal `json:"shippingCost"`
	IsActive     bool            `json:"isActive"`
	DeliveryTime string          `json:"deliveryTime"`
}

// NormalizeShippingCompany builds a shipping company from an upstream record.
func NormalizeShippingCompany(raw map[string]any) ShippingCompany {
	return ShippingCompany{
		ID:           normalize.ID(raw["id"]),
		Name:         normalize.ToString(raw["name"]),
		ShippingCost: nonNegative(normalize.ToDecimal(normalize.First(raw, "shipping_cost", "shippingCost"))),
		IsActive:     normalize.ToBool(normalize.First(raw, "is_active", "isActive")),
		DeliveryTime: normalize.Default(normalize.ToString(normalize.First(raw, "delivery_time", "deliveryTime")), "-"),
	}
}

func (s ShippingCompany) SearchFields() []string {
	return []string{s.Name, s.DeliveryTime}
}

func (s ShippingCompany) FilterValue(key string) string {
	if key == "status" {
		return activeLabel(s.IsActive)
	}
	return ""
}
