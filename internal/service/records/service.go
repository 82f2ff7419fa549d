// Package records orchestrates the lifecycle of the four production record
// kinds: validation of raw measurements, derived-field computation at write
// time, and store round-trips. One generic service parameterized over a
// kind descriptor replaces the four near-identical CRUD paths the API
// exposes.
package records

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mamadbah2/datalog/internal/repository"
)

// Kind describes one record kind to the generic service: how to validate
// its creation payload and how to build the persisted record (including
// derived fields) from validated input.
type Kind[C, T any] struct {
	Name     string
	Validate func(*C) error
	New      func(payload *C, id string, ts time.Time) *T
}

// Service handles record business logic for one kind. It never caches
// records across calls; every read round-trips to the store.
type Service[C, T any] struct {
	kind   Kind[C, T]
	store  repository.Store[T]
	logger *zap.Logger
}

// NewService wires a record service for the given kind descriptor.
func NewService[C, T any](kind Kind[C, T], store repository.Store[T], logger *zap.Logger) *Service[C, T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service[C, T]{kind: kind, store: store, logger: logger}
}

// Create validates the payload, computes derived fields, and performs one
// durable insert. The returned record carries the server-assigned id and
// timestamp exactly as committed.
func (s *Service[C, T]) Create(ctx context.Context, payload *C) (*T, error) {
	if err := s.kind.Validate(payload); err != nil {
		return nil, err
	}

	rec := s.kind.New(payload, uuid.NewString(), time.Now().UTC())
	if err := s.store.Insert(ctx, rec); err != nil {
		s.logger.Error("insert failed", zap.String("kind", s.kind.Name), zap.Error(err))
		return nil, &PersistenceError{Op: "insert " + s.kind.Name, Err: err}
	}

	return rec, nil
}

// List returns records ordered by timestamp descending, optionally filtered
// by exact username, with the skip/limit window applied after ordering. An
// empty result is not an error.
func (s *Service[C, T]) List(ctx context.Context, opts repository.ListOptions) ([]T, error) {
	if opts.Skip < 0 {
		return nil, invalidField("skip", "must be >= 0")
	}
	if opts.Limit <= 0 {
		return nil, invalidField("limit", "must be > 0")
	}

	recs, err := s.store.List(ctx, opts)
	if err != nil {
		s.logger.Error("list failed", zap.String("kind", s.kind.Name), zap.Error(err))
		return nil, &PersistenceError{Op: "list " + s.kind.Name, Err: err}
	}
	return recs, nil
}

// Get returns the record with the given id.
func (s *Service[C, T]) Get(ctx context.Context, id string) (*T, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	rec, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("get failed", zap.String("kind", s.kind.Name), zap.Error(err))
		return nil, &PersistenceError{Op: "get " + s.kind.Name, Err: err}
	}
	return rec, nil
}

// Delete removes the record with the given id. Deleting an already-deleted
// record yields ErrNotFound, not success.
func (s *Service[C, T]) Delete(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("delete failed", zap.String("kind", s.kind.Name), zap.Error(err))
		return &PersistenceError{Op: "delete " + s.kind.Name, Err: err}
	}

	s.logger.Info("record deleted", zap.String("kind", s.kind.Name), zap.String("id", id))
	return nil
}

func validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return invalidField("id", "is not a valid identifier")
	}
	return nil
}
