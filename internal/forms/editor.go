package forms

import (
	"context"
	"sync"

	"github.com/01moynul/taptosell-console/internal/notify"
)

// Form is anything a dialog can validate before submitting.
type Form interface {
	Validate() error
}

// DialogState of an editor.
type DialogState string

const (
	DialogClosed     DialogState = "closed"
	DialogOpen       DialogState = "open"
	DialogSubmitting DialogState = "submitting"
)

// Editor runs one dialog: open, validate, submit, close on success.
// On failure the dialog stays open and keeps the values the user typed.
type Editor[F Form] struct {
	notifier notify.Notifier

	mu      sync.Mutex
	state   DialogState
	form    F
	lastErr error
}

// NewEditor builds a closed editor. A nil notifier discards notifications.
func NewEditor[F Form](notifier notify.Notifier) *Editor[F] {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Editor[F]{notifier: notifier, state: DialogClosed}
}

// Open shows the dialog prefilled with form.
func (e *Editor[F]) Open(form F) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = DialogOpen
	e.form = form
	e.lastErr = nil
}

// Submit validates form and, when valid, hands it to submit.
// Validation failures never reach the network and are reported here; submit
// failures are reported by whoever issued the write (the list controller).
func (e *Editor[F]) Submit(ctx context.Context, form F, submit func(ctx context.Context, form F) error) error {
	e.mu.Lock()
	e.form = form
	e.state = DialogSubmitting
	e.mu.Unlock()

	if err := form.Validate(); err != nil {
		e.fail(err)
		notify.From(ctx, e.notifier).Error(err.Error())
		return err
	}

	if err := submit(ctx, form); err != nil {
		e.fail(err)
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = DialogClosed
	e.lastErr = nil
	return nil
}

func (e *Editor[F]) fail(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = DialogOpen
	e.lastErr = err
}

// State returns the dialog state.
func (e *Editor[F]) State() DialogState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Form returns the values currently held by the dialog.
func (e *Editor[F]) Form() F {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.form
}

// Err returns the last submission error.
func (e *Editor[F]) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}
