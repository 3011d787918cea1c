// Package storefront shapes the public side of the platform: the category
// navigation in the header, model profile pages and the search box.
package storefront

import (
	"context"
	"sort"
	"strings"

	"github.com/01moynul/taptosell-console/internal/models"
	"github.com/gosimple/slug"
)

// Lister is the slice of the API client the storefront reads through.
type Lister interface {
	List(ctx context.Context, resource string) ([]map[string]any, error)
}

// LoadNavigation fetches the flat category list and builds the tree.
func LoadNavigation(ctx context.Context, l Lister) ([]models.Category, error) {
	raw, err := l.List(ctx, "categories")
	if err != nil {
		return nil, err
	}
	return BuildNavigation(raw), nil
}

// BuildNavigation turns flat category records into a tree sorted by name.
// Every node gets a path made of its ancestors' slugs, e.g.
// /category/women/dresses. A category whose parent is unknown is shown as a
// root, and a parent cycle is cut so every category appears exactly once.
func BuildNavigation(records []map[string]any) []models.Category {
	// 1. --- Normalize, fill missing slugs ---
	all := make([]models.Category, 0, len(records))
	known := make(map[string]bool, len(records))
	for _, raw := range records {
		cat := models.NormalizeCategory(raw)
		if cat.ID == "" || known[cat.ID] {
			continue
		}
		if cat.Slug == "" {
			cat.Slug = slug.Make(cat.Name)
		}
		known[cat.ID] = true
		all = append(all, cat)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return strings.ToLower(all[i].Name) < strings.ToLower(all[j].Name)
	})

	// 2. --- Index children by parent ---
	children := make(map[string][]models.Category)
	var roots []models.Category
	for _, cat := range all {
		if cat.ParentID == "" || cat.ParentID == cat.ID || !known[cat.ParentID] {
			cat.ParentID = ""
			roots = append(roots, cat)
			continue
		}
		children[cat.ParentID] = append(children[cat.ParentID], cat)
	}

	// 3. --- Attach recursively, building paths on the way down ---
	visited := make(map[string]bool, len(all))
	var attach func(nodes []models.Category, prefix string) []models.Category
	attach = func(nodes []models.Category, prefix string) []models.Category {
		out := make([]models.Category, 0, len(nodes))
		for _, node := range nodes {
			if visited[node.ID] {
				continue
			}
			visited[node.ID] = true
			node.Path = prefix + "/" + node.Slug
			node.Children = attach(children[node.ID], node.Path)
			out = append(out, node)
		}
		return out
	}
	tree := attach(roots, "/category")

	// 4. --- Cut cycles: a node no root reaches becomes a root itself ---
	for _, cat := range all {
		if visited[cat.ID] {
			continue
		}
		cat.ParentID = ""
		tree = append(tree, attach([]models.Category{cat}, "/category")...)
	}
	sort.SliceStable(tree, func(i, j int) bool {
		return strings.ToLower(tree[i].Name) < strings.ToLower(tree[j].Name)
	})
	return tree
}

// FindByPath returns the node whose path matches.
func FindByPath(tree []models.Category, p string) (models.Category, bool) {
	for _, node := range tree {
		if node.Path == p {
			return node, true
		}
		if strings.HasPrefix(p, node.Path+"/") {
			if found, ok := FindByPath(node.Children, p); ok {
				return found, true
			}
		}
	}
	return models.Category{}, false
}
