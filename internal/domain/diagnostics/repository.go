package diagnostics

import "context"

type Repository interface {
	Create(ctx context.Context, r Record) error
	// List devuelve los más recientes primero.
	List(ctx context.Context, filter ListFilter) ([]Record, error)
}

type ListFilter struct {
	PetName string
	Limit   int
}
