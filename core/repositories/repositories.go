package repositories

import (
	"context"
	"errors"
	"iter"
)

// ErrNotFound is returned by stores when no record has the requested id.
var ErrNotFound = errors.New("record not found")

// Store is a unified interface for all CRUD operations
type Store[T any, ID comparable, C any, U any, F any] interface {
	Create(ctx context.Context, payload C) (T, error)
	Get(ctx context.Context, id ID) (T, error)
	List(ctx context.Context, filter F) iter.Seq[T]
	Update(ctx context.Context, id ID, updates U) (T, error)
	Delete(ctx context.Context, id ID) error
}
