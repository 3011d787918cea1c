// Package stats derives the summary cards shown above each console table.
// Every reducer is pure and treats missing values as a zero contribution.
package stats

import (
	"time"

	"github.com/01moynul/taptosell-console/internal/models"
	"github.com/shopspring/decimal"
)

// Bucket is a count and an amount for one grouping key.
type Bucket struct {
	Count  int             `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// PayoutStats summarizes payout requests.
type PayoutStats struct {
	Count         int               `json:"count"`
	TotalAmount   decimal.Decimal   `json:"totalAmount"`
	PendingAmount decimal.Decimal   `json:"pendingAmount"`
	ClearedAmount decimal.Decimal   `json:"clearedAmount"`
	ByStatus      map[string]Bucket `json:"byStatus"`
	ByUserType    map[string]int    `json:"byUserType"`
}

// Payouts sums every request into TotalAmount; PendingAmount only counts
// pending requests and ClearedAmount counts approved and cleared ones.
func Payouts(items []models.PayoutRequest) PayoutStats {
	s := PayoutStats{
		ByStatus:   map[string]Bucket{},
		ByUserType: map[string]int{},
	}
	for _, p := range items {
		s.Count++
		s.TotalAmount = s.TotalAmount.Add(p.Amount)

		b := s.ByStatus[p.Status]
		b.Count++
		b.Amount = b.Amount.Add(p.Amount)
		s.ByStatus[p.Status] = b

		switch p.Status {
		case models.PayoutPending:
			s.PendingAmount = s.PendingAmount.Add(p.Amount)
		case models.PayoutApproved, models.PayoutCleared:
			s.ClearedAmount = s.ClearedAmount.Add(p.Amount)
		}
		s.ByUserType[p.UserType]++
	}
	return s
}

// UserStats summarizes platform accounts.
type UserStats struct {
	Total    int            `json:"total"`
	Banned   int            `json:"banned"`
	Verified int            `json:"verified"`
	ByRole   map[string]int `json:"byRole"`
}

func Users(items []models.User) UserStats {
	s := UserStats{ByRole: map[string]int{}}
	for _, u := range items {
		s.Total++
		if u.IsBanned {
			s.Banned++
		}
		if u.EmailVerified {
			s.Verified++
		}
		s.ByRole[u.Role]++
	}
	return s
}

// LowStockThreshold is the inventory level under which a product is flagged.
const LowStockThreshold = 10

// ProductStats summarizes the catalogue.
type ProductStats struct {
	Total          int             `json:"total"`
	ByStatus       map[string]int  `json:"byStatus"`
	ByBrand        map[string]int  `json:"byBrand"`
	LowStock       int             `json:"lowStock"`
	TotalInventory int             `json:"totalInventory"`
	InventoryValue decimal.Decimal `json:"inventoryValue"`
}

func Products(items []models.Product) ProductStats {
	s := ProductStats{ByStatus: map[string]int{}, ByBrand: map[string]int{}}
	for _, p := range items {
		s.Total++
		s.ByStatus[p.Status]++
		if p.Brand != "" {
			s.ByBrand[p.Brand]++
		}
		if p.Inventory < LowStockThreshold {
			s.LowStock++
		}
		s.TotalInventory += p.Inventory
		s.InventoryValue = s.InventoryValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Inventory))))
	}
	return s
}

// PlanStats summarizes subscription plans.
type PlanStats struct {
	Total        int             `json:"total"`
	Active       int             `json:"active"`
	Dropshipping int             `json:"dropshipping"`
	AveragePrice decimal.Decimal `json:"averagePrice"`
	ByRole       map[string]int  `json:"byRole"`
}

func Plans(items []models.SubscriptionPlan) PlanStats {
	s := PlanStats{ByRole: map[string]int{}}
	sum := decimal.Zero
	for _, p := range items {
		s.Total++
		if p.IsActive {
			s.Active++
		}
		if p.IncludesDropshipping {
			s.Dropshipping++
		}
		s.ByRole[p.Role]++
		sum = sum.Add(p.Price)
	}
	s.AveragePrice = average(sum, s.Total)
	return s
}

// ShippingStats summarizes shipping companies.
type ShippingStats struct {
	Total       int             `json:"total"`
	Active      int             `json:"active"`
	AverageCost decimal.Decimal `json:"averageCost"`
}

func ShippingCompanies(items []models.ShippingCompany) ShippingStats {
	s := ShippingStats{}
	sum := decimal.Zero
	for _, c := range items {
		s.Total++
		if c.IsActive {
			s.Active++
		}
		sum = sum.Add(c.ShippingCost)
	}
	s.AverageCost = average(sum, s.Total)
	return s
}

// StoryStats summarizes stories and reels.
type StoryStats struct {
	Total      int            `json:"total"`
	Active     int            `json:"active"`
	TotalViews int            `json:"totalViews"`
	ByType     map[string]int `json:"byType"`
}

// Stories counts stories still visible at now as active.
func Stories(items []models.Story, now time.Time) StoryStats {
	s := StoryStats{ByType: map[string]int{}}
	for _, st := range items {
		s.Total++
		if st.Active(now) {
			s.Active++
		}
		s.TotalViews += st.Views
		s.ByType[st.Type]++
	}
	return s
}

func average(sum decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return sum.DivRound(decimal.NewFromInt(int64(n)), 2)
}
