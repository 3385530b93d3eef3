package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-care-planner/internal/domain/diagnostics"
)

// DefaultCapacity: el journal en memoria descarta los más viejos pasado este tamaño.
const DefaultCapacity = 1000

type conflictRepo struct {
	mu       sync.RWMutex
	items    []diagnostics.Record // orden de inserción
	byID     map[string]struct{}
	capacity int
}

func NewConflictRepo() diagnostics.Repository {
	return newConflictRepo(DefaultCapacity)
}

func newConflictRepo(capacity int) *conflictRepo {
	if capacity < diagnostics.MaxLimit {
		capacity = diagnostics.MaxLimit
	}
	return &conflictRepo{
		byID:     make(map[string]struct{}),
		capacity: capacity,
	}
}

func (r *conflictRepo) Create(ctx context.Context, rec diagnostics.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("conflict id required")
	}
	if _, exists := r.byID[rec.ID]; exists {
		return errors.New("conflict already exists")
	}

	r.byID[rec.ID] = struct{}{}
	r.items = append(r.items, rec)

	if over := len(r.items) - r.capacity; over > 0 {
		for _, old := range r.items[:over] {
			delete(r.byID, old.ID)
		}
		r.items = append([]diagnostics.Record(nil), r.items[over:]...)
	}
	return nil
}

func (r *conflictRepo) List(ctx context.Context, filter diagnostics.ListFilter) ([]diagnostics.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := filter.Limit
	if limit <= 0 {
		limit = diagnostics.DefaultLimit
	}

	out := make([]diagnostics.Record, 0)
	// Recorremos al revés: a igual detected_at gana el último insertado.
	for i := len(r.items) - 1; i >= 0; i-- {
		rec := r.items[i]
		if filter.PetName != "" && rec.PetName != filter.PetName {
			continue
		}
		out = append(out, rec)
	}

	// Orden por detected_at desc (más reciente primero)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DetectedAt.After(out[j].DetectedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
