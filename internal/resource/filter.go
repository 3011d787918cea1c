package resource

import (
	"net/url"
	"strings"
)

// Query is a search term plus exact-match dropdown filters (status, role, category...).
// An empty term, an empty value or "all" means "no restriction".
type Query struct {
	Search  string
	Filters map[string]string
}

// QueryFromValues reads "search" (or "q") and the given filter keys from URL values.
func QueryFromValues(values url.Values, filterKeys ...string) Query {
	q := Query{
		Search:  values.Get("search"),
		Filters: map[string]string{},
	}
	if q.Search == "" {
		q.Search = values.Get("q")
	}
	for _, key := range filterKeys {
		if v := values.Get(key); v != "" {
			q.Filters[key] = v
		}
	}
	return q
}

// IsEmpty reports whether q restricts nothing.
func (q Query) IsEmpty() bool {
	if strings.TrimSpace(q.Search) != "" {
		return false
	}
	for _, v := range q.Filters {
		if active(v) {
			return false
		}
	}
	return true
}

func active(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, "all")
}

// Filter keeps the items matching every part of q (logical AND).
// The search term matches case-insensitively as a substring of any search field;
// each dropdown filter must equal the item's value for that key, ignoring case.
// The result is always a fresh slice holding a subset of items, in order.
func Filter[T any](items []T, q Query, searchFields func(T) []string, filterValue func(T, string) string) []T {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	out := make([]T, 0, len(items))

	for _, item := range items {
		if term != "" && !matchesSearch(item, term, searchFields) {
			continue
		}
		if !matchesFilters(item, q.Filters, filterValue) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesSearch[T any](item T, term string, searchFields func(T) []string) bool {
	if searchFields == nil {
		return false
	}
	for _, field := range searchFields(item) {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func matchesFilters[T any](item T, filters map[string]string, filterValue func(T, string) string) bool {
	for key, want := range filters {
		if !active(want) {
			continue
		}
		if filterValue == nil {
			return false
		}
		if !strings.EqualFold(strings.TrimSpace(filterValue(item, key)), strings.TrimSpace(want)) {
			return false
		}
	}
	return true
}
