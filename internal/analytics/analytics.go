// Package analytics shapes the admin analytics payload for display.
//
// The platform sends pre-aggregated figures. Any of them may arrive as a
// string, so every numeric field goes through normalize.ToNumber before it
// reaches a chart or a sum.
package analytics

import (
	"context"
	"strings"

	"github.com/01moynul/taptosell-console/internal/normalize"
)

// Path is the upstream analytics resource.
const Path = "admin/analytics"

// Totals are the KPI cards at the top of the dashboard.
type Totals struct {
	Users          float64 `json:"totalUsers"`
	Merchants      float64 `json:"totalMerchants"`
	Models         float64 `json:"totalModels"`
	Products       float64 `json:"totalProducts"`
	Orders         float64 `json:"totalOrders"`
	Revenue        float64 `json:"totalRevenue"`
	Commission     float64 `json:"totalCommission"`
	PendingPayouts float64 `json:"pendingPayouts"`
}

// Point is one bar (or area vertex) of a time series.
type Point struct {
	Label   string  `json:"label"`
	Revenue float64 `json:"revenue"`
	Orders  float64 `json:"orders"`
}

// TopProduct is one row of the best sellers table.
type TopProduct struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Sales   float64 `json:"sales"`
	Revenue float64 `json:"revenue"`
}

// Summary is the coerced analytics payload.
type Summary struct {
	Totals      Totals       `json:"totals"`
	Weekly      []Point      `json:"weekly"`
	Monthly     []Point      `json:"monthly"`
	TopProducts []TopProduct `json:"topProducts"`
}

// FromRaw builds a Summary. Missing or malformed fields become zero or empty.
func FromRaw(raw map[string]any) Summary {
	// Totals may be flat or nested under "totals" / "summary".
	totals := raw
	if nested := normalize.Map(normalize.First(raw, "totals", "summary")); nested != nil {
		totals = nested
	}
	num := func(keys ...string) float64 {
		return normalize.ToNumber(normalize.First(totals, keys...))
	}

	return Summary{
		Totals: Totals{
			Users:          num("total_users", "totalUsers", "users"),
			Merchants:      num("total_merchants", "totalMerchants", "merchants"),
			Models:         num("total_models", "totalModels", "models"),
			Products:       num("total_products", "totalProducts", "products"),
			Orders:         num("total_orders", "totalOrders", "orders"),
			Revenue:        num("total_revenue", "totalRevenue", "revenue"),
			Commission:     num("total_commission", "totalCommission", "commission"),
			PendingPayouts: num("pending_payouts", "pendingPayouts"),
		},
		Weekly:      series(normalize.First(raw, "weekly", "weekly_data", "weeklyData", "weeklyRevenue")),
		Monthly:     series(normalize.First(raw, "monthly", "monthly_data", "monthlyData", "monthlyRevenue")),
		TopProducts: topProducts(normalize.First(raw, "top_products", "topProducts")),
	}
}

func series(v any) []Point {
	rows, _ := v.([]any)
	points := make([]Point, 0, len(rows))
	for _, row := range rows {
		m := normalize.Map(row)
		if m == nil {
			continue
		}
		points = append(points, Point{
			Label:   normalize.ToString(normalize.First(m, "label", "name", "day", "week", "month", "date")),
			Revenue: normalize.ToNumber(normalize.First(m, "revenue", "total", "amount")),
			Orders:  normalize.ToNumber(normalize.First(m, "orders", "order_count", "orderCount", "count")),
		})
	}
	return points
}

func topProducts(v any) []TopProduct {
	rows, _ := v.([]any)
	out := make([]TopProduct, 0, len(rows))
	for _, row := range rows {
		m := normalize.Map(row)
		if m == nil {
			continue
		}
		out = append(out, TopProduct{
			ID:      normalize.ID(m["id"]),
			Name:    normalize.Default(normalize.ToString(m["name"]), "Unnamed product"),
			Sales:   normalize.ToNumber(normalize.First(m, "sales", "sold", "units_sold", "unitsSold")),
			Revenue: normalize.ToNumber(m["revenue"]),
		})
	}
	return out
}

// Period selects the time series.
type Period string

// Chart selects how the series is drawn.
type Chart string

const (
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"

	ChartBar  Chart = "bar"
	ChartArea Chart = "area"
)

// View is the dashboard's view state. Switching it never refetches.
type View struct {
	Period Period `json:"period"`
	Chart  Chart  `json:"chart"`
}

// ParseView reads the toggles, falling back to week / bar on unknown values.
func ParseView(period, chart string) View {
	v := View{Period: PeriodWeek, Chart: ChartBar}
	if Period(strings.ToLower(period)) == PeriodMonth {
		v.Period = PeriodMonth
	}
	if Chart(strings.ToLower(chart)) == ChartArea {
		v.Chart = ChartArea
	}
	return v
}

// Series picks the series the view shows.
func (v View) Series(s Summary) []Point {
	if v.Period == PeriodMonth {
		return s.Monthly
	}
	return s.Weekly
}

// Dashboard is what the analytics endpoint renders.
type Dashboard struct {
	View    View    `json:"view"`
	Summary Summary `json:"summary"`
	Series  []Point `json:"series"`
}

// Render combines a summary with the current view state.
func (v View) Render(s Summary) Dashboard {
	return Dashboard{View: v, Summary: s, Series: v.Series(s)}
}

// Fetcher is the slice of the API client Load needs.
type Fetcher interface {
	GetObject(ctx context.Context, path string) (map[string]any, error)
}

// Load fetches and coerces the analytics summary.
func Load(ctx context.Context, f Fetcher) (Summary, error) {
	raw, err := f.GetObject(ctx, Path)
	if err != nil {
		return Summary{}, err
	}
	return FromRaw(raw), nil
}
