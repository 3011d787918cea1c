package models

import (
	"strings"

	"github.com/01moynul/taptosell-console/internal/normalize"
	"github.com/shopspring/decimal"
)

// Product statuses the admin can switch between.
const (
	ProductActive   = "active"
	ProductDraft    = "draft"
	ProductArchived = "archived"
)

// ProductStatuses lists the closed set of product statuses.
var ProductStatuses = []string{ProductActive, ProductDraft, ProductArchived}

// Product is the admin view of a catalogue product.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Brand        string          `json:"brand"`
	MerchantName string          `json:"merchantName"`
	Category     string          `json:"category"`
	Status       string          `json:"status"`
	Inventory    int             `json:"inventory"`
	Price        decimal.Decimal `json:"price"`
	Images       []string        `json:"images"`
}

// NormalizeProduct builds a product from an upstream record.
// Unknown statuses fall back to draft; inventory never goes below zero.
func NormalizeProduct(raw map[string]any) Product {
	status := strings.ToLower(normalize.ToString(raw["status"]))
	if !oneOf(status, ProductStatuses) {
		status = ProductDraft
	}
	inventory := normalize.ToInt(normalize.First(raw, "inventory", "stock", "stock_quantity"))
	if inventory < 0 {
		inventory = 0
	}

	return Product{
		ID:           normalize.ID(raw["id"]),
		Name:         normalize.Default(normalize.ToString(raw["name"]), "Untitled product"),
		Brand:        normalize.ToString(raw["brand"]),
		MerchantName: normalize.ToString(normalize.First(raw, "merchantName", "merchant_name", "supplierName")),
		Category:     normalize.ToString(raw["category"]),
		Status:       status,
		Inventory:    inventory,
		Price:        nonNegative(normalize.ToDecimal(normalize.First(raw, "price", "price_to_tts"))),
		Images:       normalize.StringList(raw["images"]),
	}
}

func (p Product) SearchFields() []string {
	return []string{p.Name, p.Brand, p.MerchantName}
}

func (p Product) FilterValue(key string) string {
	switch key {
	case "status":
		return p.Status
	case "brand":
		return p.Brand
	case "category":
		return p.Category
	}
	return ""
}

func oneOf(v string, set []string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}
