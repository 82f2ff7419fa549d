// Package repository defines the persistence contracts for the four record
// kinds. Stores hold the only durable copy of a record; services never
// cache across calls.
package repository

import (
	"context"
	"errors"

	"github.com/mamadbah2/datalog/internal/domain/models"
)

// ErrNotFound is returned when a requested record doesn't exist.
var ErrNotFound = errors.New("not found")

// ListOptions narrows and windows a listing. Records are always ordered by
// timestamp descending before Skip/Limit apply.
type ListOptions struct {
	// Username filters on exact match when non-empty.
	Username string
	Skip     int
	Limit    int
}

// Store provides persistence for one record kind. All four kinds are flat,
// unrelated tables, so a single generic contract covers them.
type Store[T any] interface {
	Insert(ctx context.Context, rec *T) error
	Get(ctx context.Context, id string) (*T, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, opts ListOptions) ([]T, error)
}

// MicrowaveStore extends Store with the full-row update used to apply
// post-production measurements. Update is the only mutation defined beyond
// insert/delete for any kind.
type MicrowaveStore interface {
	Store[models.MicrowaveLog]
	Update(ctx context.Context, rec *models.MicrowaveLog) error
}
