// Package resource implements the fetch / filter / stats / mutate cycle that
// every console screen runs over one backend collection.
//
// A Controller is configured per entity (path, normalizer, search fields,
// dropdown filters, stats reducer) instead of re-implementing the cycle per
// screen. Mutations are optimistic-free: the write is awaited, then the whole
// collection is reloaded so server-computed fields never drift.
package resource

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/01moynul/taptosell-console/internal/apiclient"
	"github.com/01moynul/taptosell-console/internal/notify"
)

// State of the last fetch or mutate cycle.
type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Action names a mutation kind.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionPatch  Action = "patch"
	ActionDelete Action = "delete"
)

// Source is the slice of the API client a controller needs.
type Source interface {
	List(ctx context.Context, resource string) ([]map[string]any, error)
	Create(ctx context.Context, resource string, payload map[string]any) (map[string]any, error)
	Update(ctx context.Context, resource, id string, payload map[string]any) (map[string]any, error)
	Patch(ctx context.Context, resource, id string, payload map[string]any) (map[string]any, error)
	Delete(ctx context.Context, resource, id string) error
}

// Mutation describes a finished write, successful or not.
type Mutation struct {
	Resource string
	EntityID string
	Action   Action
	Err      error
}

// Config specializes a Controller for one entity.
type Config[T any, S any] struct {
	// Name is the human label used in notifications ("subscription plan").
	Name string
	// Resource is the upstream collection path ("admin/subscription-plans").
	Resource string

	Normalize    func(raw map[string]any) T
	SearchFields func(item T) []string
	FilterValue  func(item T, key string) string
	Stats        func(items []T) S

	// OnMutation, when set, observes every finished write.
	OnMutation func(ctx context.Context, m Mutation)
}

// Controller owns one entity collection. It is safe for concurrent use.
type Controller[T any, S any] struct {
	cfg      Config[T, S]
	source   Source
	notifier notify.Notifier

	mu         sync.RWMutex
	items      []T
	state      State
	lastErr    error
	loadSeq    uint64
	appliedSeq uint64
}

// New builds a Controller. Notifications go to the notifier carried by the
// call's context, else to notifier. A nil notifier discards them.
func New[T any, S any](cfg Config[T, S], source Source, notifier notify.Notifier) *Controller[T, S] {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Controller[T, S]{
		cfg:      cfg,
		source:   source,
		notifier: notifier,
		items:    []T{},
		state:    StateIdle,
	}
}

// Name returns the configured human label.
func (c *Controller[T, S]) Name() string { return c.cfg.Name }

// Load fetches the full collection and replaces the in-memory list.
// On failure the previous list stays visible and an error notification is emitted.
func (c *Controller[T, S]) Load(ctx context.Context) error {
	// 1. --- Enter loading, remember which load this is ---
	c.mu.Lock()
	c.loadSeq++
	seq := c.loadSeq
	c.state = StateLoading
	c.mu.Unlock()

	// 2. --- Fetch ---
	raw, err := c.source.List(ctx, c.cfg.Resource)
	if err != nil {
		c.mu.Lock()
		if seq > c.appliedSeq {
			c.state = StateError
			c.lastErr = err
		}
		c.mu.Unlock()
		log.Printf("resource: load %s failed: %v", c.cfg.Resource, err)
		notify.From(ctx, c.notifier).Error(apiclient.Message(err, fmt.Sprintf("Failed to load %s", plural(c.cfg.Name))))
		return err
	}

	// 3. --- Normalize every record ---
	items := make([]T, 0, len(raw))
	for _, record := range raw {
		items = append(items, c.cfg.Normalize(record))
	}

	// 4. --- Apply, unless a newer load already landed ---
	c.mu.Lock()
	defer c.mu.Unlock()
	if seq < c.appliedSeq {
		return nil
	}
	c.appliedSeq = seq
	c.items = items
	c.state = StateSuccess
	c.lastErr = nil
	return nil
}

// Data returns a copy of the current collection.
func (c *Controller[T, S]) Data() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// State returns the state of the last cycle.
func (c *Controller[T, S]) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// LastError returns the error of the last failed cycle, or nil.
func (c *Controller[T, S]) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastErr
}

// Stats derives the configured stats over the full collection.
func (c *Controller[T, S]) Stats() S {
	items := c.Data()
	if c.cfg.Stats == nil {
		var zero S
		return zero
	}
	return c.cfg.Stats(items)
}

// Filtered applies q to the current collection.
func (c *Controller[T, S]) Filtered(q Query) []T {
	return Filter(c.Data(), q, c.cfg.SearchFields, c.cfg.FilterValue)
}

// Find returns the record whose id matches.
func (c *Controller[T, S]) Find(id string, idOf func(T) string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// View is what list endpoints render.
type View[T any, S any] struct {
	Items    []T    `json:"items"`
	Total    int    `json:"total"`
	Filtered int    `json:"filtered"`
	Stats    S      `json:"stats"`
	State    State  `json:"state"`
	Error    string `json:"error,omitempty"`
}

// View snapshots data, filtered data and stats in one go.
func (c *Controller[T, S]) View(q Query) View[T, S] {
	c.mu.RLock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	state := c.state
	lastErr := c.lastErr
	c.mu.RUnlock()

	filtered := Filter(items, q, c.cfg.SearchFields, c.cfg.FilterValue)
	v := View[T, S]{
		Items:    filtered,
		Total:    len(items),
		Filtered: len(filtered),
		State:    state,
	}
	if c.cfg.Stats != nil {
		v.Stats = c.cfg.Stats(items)
	}
	if lastErr != nil {
		v.Error = apiclient.Message(lastErr, fmt.Sprintf("Failed to load %s", plural(c.cfg.Name)))
	}
	return v
}

// Create issues POST and reloads on success.
func (c *Controller[T, S]) Create(ctx context.Context, payload map[string]any) error {
	return c.mutate(ctx, ActionCreate, "", func() error {
		_, err := c.source.Create(ctx, c.cfg.Resource, payload)
		return err
	})
}

// Update issues PUT and reloads on success.
func (c *Controller[T, S]) Update(ctx context.Context, id string, payload map[string]any) error {
	return c.mutate(ctx, ActionUpdate, id, func() error {
		_, err := c.source.Update(ctx, c.cfg.Resource, id, payload)
		return err
	})
}

// Patch issues PATCH and reloads on success. Used for status toggles.
func (c *Controller[T, S]) Patch(ctx context.Context, id string, payload map[string]any) error {
	return c.mutate(ctx, ActionPatch, id, func() error {
		_, err := c.source.Patch(ctx, c.cfg.Resource, id, payload)
		return err
	})
}

// Delete issues DELETE and reloads on success.
func (c *Controller[T, S]) Delete(ctx context.Context, id string) error {
	return c.mutate(ctx, ActionDelete, id, func() error {
		return c.source.Delete(ctx, c.cfg.Resource, id)
	})
}

// mutate runs one write. The in-memory list is only ever replaced by a reload,
// so a failed write leaves it exactly as it was.
func (c *Controller[T, S]) mutate(ctx context.Context, action Action, id string, write func() error) error {
	err := write()
	if c.cfg.OnMutation != nil {
		c.cfg.OnMutation(ctx, Mutation{Resource: c.cfg.Resource, EntityID: id, Action: action, Err: err})
	}
	if err != nil {
		log.Printf("resource: %s %s %s failed: %v", action, c.cfg.Resource, id, err)
		notify.From(ctx, c.notifier).Error(apiclient.Message(err, failureText(action, c.cfg.Name)))
		return err
	}

	notify.From(ctx, c.notifier).Success(successText(action, c.cfg.Name))
	// A failed reload is reported by Load itself; the write already succeeded.
	_ = c.Load(ctx)
	return nil
}
