package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"sort"
	"strings"
)

// List fetches GET /{resource} and returns the records as loosely-typed maps.
// The platform answers either with a bare array or with the array wrapped in an
// object ({"data": [...]}, {"items": [...]}, {"plans": [...]}, ...).
func (c *Client) List(ctx context.Context, resource string) ([]map[string]any, error) {
	var body any
	if err := c.Do(ctx, http.MethodGet, resourcePath(resource, ""), nil, &body); err != nil {
		return nil, err
	}
	return unwrapList(body, resource)
}

// ListQuery is List with query parameters (storefront search, per-owner lists).
func (c *Client) ListQuery(ctx context.Context, resource string, query url.Values) ([]map[string]any, error) {
	p := resourcePath(resource, "")
	if encoded := query.Encode(); encoded != "" {
		p += "?" + encoded
	}
	var body any
	if err := c.Do(ctx, http.MethodGet, p, nil, &body); err != nil {
		return nil, err
	}
	return unwrapList(body, resource)
}

// Get fetches GET /{resource}/{id}.
func (c *Client) Get(ctx context.Context, resource, id string) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, resourcePath(resource, id), nil)
}

// GetObject fetches an arbitrary path that answers with a single object
// (analytics summary, settings singleton).
func (c *Client) GetObject(ctx context.Context, p string) (map[string]any, error) {
	return c.object(ctx, http.MethodGet, p, nil)
}

// Create sends POST /{resource}. The created record is returned when the
// platform echoes it; a bare 2xx yields a nil map.
func (c *Client) Create(ctx context.Context, resource string, payload map[string]any) (map[string]any, error) {
	return c.object(ctx, http.MethodPost, resourcePath(resource, ""), payload)
}

// Update sends PUT /{resource}/{id}.
func (c *Client) Update(ctx context.Context, resource, id string, payload map[string]any) (map[string]any, error) {
	return c.object(ctx, http.MethodPut, resourcePath(resource, id), payload)
}

// Patch sends PATCH /{resource}/{id}.
func (c *Client) Patch(ctx context.Context, resource, id string, payload map[string]any) (map[string]any, error) {
	return c.object(ctx, http.MethodPatch, resourcePath(resource, id), payload)
}

// Put sends PUT to an arbitrary path (the settings singleton has no id).
func (c *Client) Put(ctx context.Context, p string, payload map[string]any) (map[string]any, error) {
	return c.object(ctx, http.MethodPut, p, payload)
}

// Delete sends DELETE /{resource}/{id}.
func (c *Client) Delete(ctx context.Context, resource, id string) error {
	return c.Do(ctx, http.MethodDelete, resourcePath(resource, id), nil, nil)
}

func (c *Client) object(ctx context.Context, method, p string, payload map[string]any) (map[string]any, error) {
	var body any
	var in any
	if payload != nil {
		in = payload
	}
	if err := c.Do(ctx, method, p, in, &body); err != nil {
		return nil, err
	}
	return unwrapObject(body), nil
}

// unwrapList finds the record array inside body.
func unwrapList(body any, resource string) ([]map[string]any, error) {
	switch v := body.(type) {
	case nil:
		return []map[string]any{}, nil
	case []any:
		return toMaps(v), nil
	case map[string]any:
		for _, key := range listKeys(resource) {
			if arr, ok := v[key].([]any); ok {
				return toMaps(arr), nil
			}
		}
		// Fall back to the first array-valued key, in a stable order.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if arr, ok := v[k].([]any); ok {
				return toMaps(arr), nil
			}
		}
		for _, k := range []string{"data", "result"} {
			if inner, ok := v[k].(map[string]any); ok {
				return unwrapList(inner, resource)
			}
		}
	}
	return nil, fmt.Errorf("apiclient: %s: response holds no record list", resource)
}

func listKeys(resource string) []string {
	base := path.Base(strings.Trim(resource, "/"))
	snake := strings.ReplaceAll(base, "-", "_")
	return []string{"data", "items", "results", base, snake, camel(snake)}
}

func camel(snake string) string {
	parts := strings.Split(snake, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

// unwrapObject strips a {"data": {...}} envelope, or a single-key wrapper
// such as {"plan": {...}}, and returns the record.
func unwrapObject(body any) map[string]any {
	m, ok := body.(map[string]any)
	if !ok {
		return nil
	}
	if inner, ok := m["data"].(map[string]any); ok {
		return inner
	}
	var only map[string]any
	objects := 0
	for k, v := range m {
		if k == "message" {
			continue
		}
		if inner, ok := v.(map[string]any); ok {
			only = inner
			objects++
			continue
		}
		// Any scalar besides "message" means m is the record itself.
		return m
	}
	if objects == 1 {
		return only
	}
	return m
}

func toMaps(arr []any) []map[string]any {
	out := make([]map[string]any, 0, len(arr))
	for _, item := range arr {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}
