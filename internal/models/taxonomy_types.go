package models

import (
	"github.com/01moynul/taptosell-console/internal/normalize"
)

// Category is a storefront category. ParentID is empty for root categories.
type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	ParentID string `json:"parentId,omitempty"`
	Path     string `json:"path"`

	// Virtual field used to render the navigation tree.
	Children []Category `json:"children"`
}

// NormalizeCategory builds a category from an upstream record.
// Slug and Path are filled in by the storefront navigation builder.
func NormalizeCategory(raw map[string]any) Category {
	parent := normalize.ID(normalize.First(raw, "parent_id", "parentId"))
	if parent == "0" {
		parent = ""
	}
	return Category{
		ID:       normalize.ID(raw["id"]),
		Name:     normalize.ToString(raw["name"]),
		Slug:     normalize.ToString(raw["slug"]),
		ParentID: parent,
		Children: []Category{},
	}
}
