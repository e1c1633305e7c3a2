package repository

import (
	"context"
	"sync"

	"poultry_monitor/internal/models"
)

// AlertMemory is an in-memory AlertRepo ordered newest first.
type AlertMemory struct {
	mu     sync.RWMutex
	alerts []models.Alert
}

func NewAlertMemory() *AlertMemory {
	return &AlertMemory{}
}

var _ AlertRepo = (*AlertMemory)(nil)

// Replace swaps the whole list; callers pass it newest first.
func (r *AlertMemory) Replace(ctx context.Context, alerts []models.Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.alerts = append([]models.Alert(nil), alerts...)
	r.mu.Unlock()
	return nil
}

// Prepend inserts a at the head and truncates the list to limit entries.
// A non-positive limit keeps everything.
func (r *AlertMemory) Prepend(ctx context.Context, a models.Alert, limit int) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	next := make([]models.Alert, 0, len(r.alerts)+1)
	next = append(next, a)
	next = append(next, r.alerts...)

	dropped := 0
	if limit > 0 && len(next) > limit {
		dropped = len(next) - limit
		next = next[:limit]
	}
	r.alerts = next
	return dropped, nil
}

// List returns a copy of all alerts, newest first.
func (r *AlertMemory) List(ctx context.Context) ([]models.Alert, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append(make([]models.Alert, 0, len(r.alerts)), r.alerts...), nil
}

// MarkRead sets read=true on the alert with id. found is false if it does not exist.
func (r *AlertMemory) MarkRead(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.alerts {
		if r.alerts[i].ID == id {
			r.alerts[i].Read = true
			return true, nil
		}
	}
	return false, nil
}

// MarkAllRead marks every alert read and returns how many were unread.
func (r *AlertMemory) MarkAllRead(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	changed := 0
	for i := range r.alerts {
		if !r.alerts[i].Read {
			r.alerts[i].Read = true
			changed++
		}
	}
	return changed, nil
}

// Delete removes the alert with id, preserving order.
func (r *AlertMemory) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.alerts {
		if r.alerts[i].ID == id {
			r.alerts = append(r.alerts[:i:i], r.alerts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
