package forms

import (
	"strings"

	"github.com/01moynul/taptosell-console/internal/models"
)

// PlanForm backs the subscription plan dialog.
type PlanForm struct {
	Name                 string      `json:"name" validate:"required,max=100"`
	Role                 string      `json:"role" validate:"required,oneof=merchant model influencer"`
	Description          string      `json:"description" validate:"max=1000"`
	Price                NumberInput `json:"price"`
	Features             ListInput   `json:"features"`
	IncludesDropshipping bool        `json:"includes_dropshipping"`
	IsActive             bool        `json:"is_active"`
}

// PlanFromEntity prefills the edit dialog.
func PlanFromEntity(p models.SubscriptionPlan) PlanForm {
	return PlanForm{
		Name:                 p.Name,
		Role:                 p.Role,
		Description:          p.Description,
		Price:                NumberInput(p.Price.String()),
		Features:             append(ListInput{}, p.Features...),
		IncludesDropshipping: p.IncludesDropshipping,
		IsActive:             p.IsActive,
	}
}

func (f PlanForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	f.Role = strings.ToLower(strings.TrimSpace(f.Role))
	errs := check(f)
	checkMoney(errs, "price", f.Price, true)
	return errs.orNil()
}

// Payload is built from the form fields only; features always go out as a list.
func (f PlanForm) Payload() map[string]any {
	price, _ := f.Price.Decimal()
	features := []string(f.Features)
	if features == nil {
		features = []string{}
	}
	return map[string]any{
		"name":                  strings.TrimSpace(f.Name),
		"role":                  strings.ToLower(strings.TrimSpace(f.Role)),
		"description":           f.Description,
		"price":                 number(price),
		"features":              features,
		"includes_dropshipping": f.IncludesDropshipping,
		"is_active":             f.IsActive,
	}
}

// ProductForm backs the admin product edit dialog.
type ProductForm struct {
	Name      string      `json:"name" validate:"required,max=200"`
	Brand     string      `json:"brand" validate:"max=100"`
	Category  string      `json:"category" validate:"max=100"`
	Status    string      `json:"status" validate:"required,oneof=active draft archived"`
	Inventory int         `json:"inventory" validate:"gte=0"`
	Price     NumberInput `json:"price"`
}

// ProductFromEntity prefills the edit dialog.
func ProductFromEntity(p models.Product) ProductForm {
	return ProductForm{
		Name:      p.Name,
		Brand:     p.Brand,
		Category:  p.Category,
		Status:    p.Status,
		Inventory: p.Inventory,
		Price:     NumberInput(p.Price.String()),
	}
}

func (f ProductForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	errs := check(f)
	checkMoney(errs, "price", f.Price, true)
	return errs.orNil()
}

func (f ProductForm) Payload() map[string]any {
	price, _ := f.Price.Decimal()
	return map[string]any{
		"name":      strings.TrimSpace(f.Name),
		"brand":     f.Brand,
		"category":  f.Category,
		"status":    f.Status,
		"inventory": f.Inventory,
		"price":     number(price),
	}
}

// ProductStatusForm is the one-click publish / unpublish / archive toggle.
type ProductStatusForm struct {
	Status string `json:"status" validate:"required,oneof=active draft archived"`
}

func (f ProductStatusForm) Validate() error { return check(f).orNil() }

func (f ProductStatusForm) Payload() map[string]any {
	return map[string]any{"status": f.Status}
}

// ShippingCompanyForm backs the shipping company dialog.
type ShippingCompanyForm struct {
	Name         string      `json:"name" validate:"required,max=100"`
	ShippingCost NumberInput `json:"shipping_cost"`
	DeliveryTime string      `json:"delivery_time" validate:"max=100"`
	IsActive     bool        `json:"is_active"`
}

// ShippingCompanyFromEntity prefills the edit dialog. The "-" placeholder is not a value.
func ShippingCompanyFromEntity(s models.ShippingCompany) ShippingCompanyForm {
	delivery := s.DeliveryTime
	if delivery == "-" {
		delivery = ""
	}
	return ShippingCompanyForm{
		Name:         s.Name,
		ShippingCost: NumberInput(s.ShippingCost.String()),
		DeliveryTime: delivery,
		IsActive:     s.IsActive,
	}
}

func (f ShippingCompanyForm) Validate() error {
	f.Name = strings.TrimSpace(f.Name)
	errs := check(f)
	checkMoney(errs, "shipping_cost", f.ShippingCost, true)
	return errs.orNil()
}

func (f ShippingCompanyForm) Payload() map[string]any {
	cost, _ := f.ShippingCost.Decimal()
	return map[string]any{
		"name":          strings.TrimSpace(f.Name),
		"shipping_cost": number(cost),
		"delivery_time": strings.TrimSpace(f.DeliveryTime),
		"is_active":     f.IsActive,
	}
}
