package domain

import (
	"context"
	"errors"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Record is the constraint satisfied by a pointer to any listable
// content entity. It lets generic code read and assign identifiers.
type Record[T any] interface {
	*T
	GetID() int64
	SetID(id int64)
}

// Checker is implemented by entities with rules that struct tags cannot
// express.
type Checker interface {
	Check() error
}

// ContentRepository persists one listable content type. List returns
// items ordered by "order" then id.
type ContentRepository[T any] interface {
	List(ctx context.Context) ([]T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, item *T) error
	Delete(ctx context.Context, id int64) error
}

// ContentUsecase is the public surface behind one /api/<resource> route.
type ContentUsecase[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, id int64, item *T) error
	Delete(ctx context.Context, id int64) error
}

// SingletonRepository persists a resource that has at most one row.
// Get returns (nil, nil) when nothing has been saved yet.
type SingletonRepository[T any] interface {
	Get(ctx context.Context) (*T, error)
	Upsert(ctx context.Context, item *T) error
}

type SingletonUsecase[T any] interface {
	Get(ctx context.Context) (*T, error)
	Save(ctx context.Context, item *T) error
}
