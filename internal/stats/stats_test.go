package stats

import (
	"testing"
	"time"

	"github.com/01moynul/taptosell-console/internal/models"
	"github.com/shopspring/decimal"
)

func payout(status string, amount any) models.PayoutRequest {
	return models.NormalizePayout(map[string]any{"status": status, "amount": amount, "user_type": "supplier"})
}

func TestPayoutSums(t *testing.T) {
	items := []models.PayoutRequest{
		payout("pending", 100),
		payout("pending", "200"),
		payout("pending", 300.0),
		payout("rejected", "400"),
	}
	s := Payouts(items)

	if !s.TotalAmount.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("TotalAmount = %s, want 1000", s.TotalAmount)
	}
	if !s.PendingAmount.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("PendingAmount = %s, want 600 (rejected excluded)", s.PendingAmount)
	}
	if s.ByStatus["rejected"].Count != 1 || s.ByUserType["supplier"] != 4 {
		t.Fatalf("unexpected buckets %+v", s)
	}
}

func TestPayoutSumsTolerateMissingAmounts(t *testing.T) {
	s := Payouts([]models.PayoutRequest{payout("approved", nil), payout("cleared", "abc"), payout("cleared", "25.50")})
	if !s.TotalAmount.Equal(decimal.RequireFromString("25.5")) || !s.ClearedAmount.Equal(s.TotalAmount) {
		t.Fatalf("unexpected sums %+v", s)
	}
	if s.Count != 3 {
		t.Fatalf("Count = %d", s.Count)
	}
}

func TestEmptyCollections(t *testing.T) {
	if p := Plans(nil); p.Total != 0 || !p.AveragePrice.IsZero() {
		t.Fatalf("unexpected plan stats %+v", p)
	}
	if s := ShippingCompanies(nil); !s.AverageCost.IsZero() {
		t.Fatalf("unexpected shipping stats %+v", s)
	}
}

func TestUsersAndProducts(t *testing.T) {
	users := Users([]models.User{
		models.NormalizeUser(map[string]any{"role_id": 2, "is_banned": true}),
		models.NormalizeUser(map[string]any{"role_id": 2, "email_verified": 1}),
		models.NormalizeUser(map[string]any{"role_id": 3}),
	})
	if users.Total != 3 || users.Banned != 1 || users.Verified != 1 || users.ByRole["merchant"] != 2 {
		t.Fatalf("unexpected user stats %+v", users)
	}

	products := Products([]models.Product{
		models.NormalizeProduct(map[string]any{"status": "active", "inventory": 5, "price": "2.50", "brand": "Acme"}),
		models.NormalizeProduct(map[string]any{"status": "archived", "inventory": 20, "price": 1}),
	})
	if products.LowStock != 1 || products.TotalInventory != 25 || products.ByBrand["Acme"] != 1 {
		t.Fatalf("unexpected product stats %+v", products)
	}
	if !products.InventoryValue.Equal(decimal.RequireFromString("32.5")) {
		t.Fatalf("InventoryValue = %s", products.InventoryValue)
	}
}

func TestPlansAverage(t *testing.T) {
	s := Plans([]models.SubscriptionPlan{
		models.NormalizePlan(map[string]any{"price": "10", "is_active": true, "role": "merchant"}),
		models.NormalizePlan(map[string]any{"price": "20", "includes_dropshipping": 1, "role": "model"}),
		models.NormalizePlan(map[string]any{"price": "abc", "role": "model"}),
	})
	if !s.AveragePrice.Equal(decimal.NewFromInt(10)) || s.Active != 1 || s.Dropshipping != 1 || s.ByRole["model"] != 2 {
		t.Fatalf("unexpected plan stats %+v", s)
	}
}

func TestStoriesActiveWindow(t *testing.T) {
	now := time.Date(2025, 11, 14, 12, 0, 0, 0, time.UTC)
	s := Stories([]models.Story{
		models.NormalizeStory(map[string]any{"type": "image", "views": "12", "created_at": now.Add(-time.Hour).Format(time.RFC3339)}),
		models.NormalizeStory(map[string]any{"type": "text", "views": 3, "created_at": now.Add(-48 * time.Hour).Format(time.RFC3339)}),
	}, now)
	if s.Total != 2 || s.Active != 1 || s.TotalViews != 15 || s.ByType["text"] != 1 {
		t.Fatalf("unexpected story stats %+v", s)
	}
}
