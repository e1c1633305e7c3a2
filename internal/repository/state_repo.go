package repository

import (
	"context"
	"sync"

	"poultry_monitor/internal/models"
)

// StateMemory is a mutex-guarded in-memory StateRepo. Reload discards it.
type StateMemory struct {
	mu    sync.RWMutex
	state models.FarmState
}

func NewStateMemory() *StateMemory {
	return &StateMemory{}
}

var _ StateRepo = (*StateMemory)(nil)

// Save replaces the stored state with a deep copy of s.
func (r *StateMemory) Save(ctx context.Context, s models.FarmState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cp := s.Clone()
	cp.UpdatedAt = cp.UpdatedAt.UTC()

	r.mu.Lock()
	r.state = cp
	r.mu.Unlock()
	return nil
}

// Load returns a deep copy of the stored state; the zero value when nothing was saved yet.
func (r *StateMemory) Load(ctx context.Context) (models.FarmState, error) {
	if err := ctx.Err(); err != nil {
		return models.FarmState{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state.Clone(), nil
}
