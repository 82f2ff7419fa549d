package records_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/datalog/internal/domain/models"
	"github.com/mamadbah2/datalog/internal/repository"
	"github.com/mamadbah2/datalog/internal/service/records"
)

// fakeStore is an in-memory repository.Store used to exercise the service
// orchestration without a database.
type fakeStore[T any] struct {
	byID       map[string]T
	keyOf      func(*T) string
	insertErr  error
	listCalled *repository.ListOptions
}

func newFakeStore[T any](keyOf func(*T) string) *fakeStore[T] {
	return &fakeStore[T]{byID: map[string]T{}, keyOf: keyOf}
}

func (f *fakeStore[T]) Insert(_ context.Context, rec *T) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.byID[f.keyOf(rec)] = *rec
	return nil
}

func (f *fakeStore[T]) Get(_ context.Context, id string) (*T, error) {
	rec, ok := f.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &rec, nil
}

func (f *fakeStore[T]) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeStore[T]) List(_ context.Context, opts repository.ListOptions) ([]T, error) {
	f.listCalled = &opts
	recs := []T{}
	for _, rec := range f.byID {
		recs = append(recs, rec)
	}
	return recs, nil
}

func newLarvaeService(store repository.Store[models.LarvaeFeedingLog]) *records.Service[models.LarvaeFeedingLogCreate, models.LarvaeFeedingLog] {
	return records.NewService(records.LarvaeFeedingKind(), store, nil)
}

func flexInt(v int) *models.FlexInt {
	n := models.FlexInt(v)
	return &n
}

func flexFloat(v float64) *models.FlexFloat {
	f := models.FlexFloat(v)
	return &f
}

func validLarvaePayload() *models.LarvaeFeedingLogCreate {
	return &models.LarvaeFeedingLogCreate{
		Username:    "ops",
		DaysOfAge:   flexInt(12),
		LarvaWeight: flexInt(10),
		LarvaPct:    flexInt(50),
		LbLarvae:    flexInt(2),
		LbFeed:      flexFloat(1),
		LbWater:     flexFloat(3),
	}
}

func TestCreateComputesDerivedFields(t *testing.T) {
	store := newFakeStore(func(r *models.LarvaeFeedingLog) string { return r.ID })
	svc := newLarvaeService(store)

	rec, err := svc.Create(context.Background(), validLarvaePayload())
	require.NoError(t, err)

	_, err = uuid.Parse(rec.ID)
	require.NoError(t, err)
	require.False(t, rec.Timestamp.IsZero())

	require.Equal(t, 45359, rec.LarvaeCount)
	require.InDelta(t, 10.0, rec.FeedPerLarvae, 1e-9)
	require.InDelta(t, 3.0, rec.WaterFeedRatio, 1e-9)

	// The insert saw exactly what was returned.
	stored, err := svc.Get(context.Background(), rec.ID)
	require.NoError(t, err)
	require.Equal(t, rec, stored)
}

func TestCreateDerivedFieldsGuardZeroDenominators(t *testing.T) {
	store := newFakeStore(func(r *models.LarvaeFeedingLog) string { return r.ID })
	svc := newLarvaeService(store)

	payload := validLarvaePayload()
	payload.LarvaPct = flexInt(0)
	payload.LbFeed = flexFloat(0)

	rec, err := svc.Create(context.Background(), payload)
	require.NoError(t, err)
	require.Zero(t, rec.LarvaeCount)
	require.Zero(t, rec.FeedPerLarvae)
	require.Zero(t, rec.WaterFeedRatio)
}

func TestCreateMissingRequiredField(t *testing.T) {
	store := newFakeStore(func(r *models.LarvaeFeedingLog) string { return r.ID })
	svc := newLarvaeService(store)

	tests := []struct {
		field  string
		mutate func(*models.LarvaeFeedingLogCreate)
	}{
		{"username", func(p *models.LarvaeFeedingLogCreate) { p.Username = "  " }},
		{"days_of_age", func(p *models.LarvaeFeedingLogCreate) { p.DaysOfAge = nil }},
		{"larva_weight", func(p *models.LarvaeFeedingLogCreate) { p.LarvaWeight = nil }},
		{"larva_pct", func(p *models.LarvaeFeedingLogCreate) { p.LarvaPct = nil }},
		{"lb_larvae", func(p *models.LarvaeFeedingLogCreate) { p.LbLarvae = nil }},
		{"lb_feed", func(p *models.LarvaeFeedingLogCreate) { p.LbFeed = nil }},
		{"lb_water", func(p *models.LarvaeFeedingLogCreate) { p.LbWater = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			payload := validLarvaePayload()
			tt.mutate(payload)

			_, err := svc.Create(context.Background(), payload)
			var validationErr *records.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
		})
	}
	require.Empty(t, store.byID)
}

func TestCreateRejectsOutOfRangeValues(t *testing.T) {
	store := newFakeStore(func(r *models.LarvaeFeedingLog) string { return r.ID })
	svc := newLarvaeService(store)

	tests := []struct {
		field  string
		mutate func(*models.LarvaeFeedingLogCreate)
	}{
		{"days_of_age", func(p *models.LarvaeFeedingLogCreate) { p.DaysOfAge = flexInt(-1) }},
		{"larva_weight", func(p *models.LarvaeFeedingLogCreate) { p.LarvaWeight = flexInt(0) }},
		{"larva_pct", func(p *models.LarvaeFeedingLogCreate) { p.LarvaPct = flexInt(101) }},
		{"lb_larvae", func(p *models.LarvaeFeedingLogCreate) { p.LbLarvae = flexInt(-2) }},
		{"lb_feed", func(p *models.LarvaeFeedingLogCreate) { p.LbFeed = flexFloat(-0.5) }},
		{"lb_water", func(p *models.LarvaeFeedingLogCreate) { p.LbWater = flexFloat(-1) }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			payload := validLarvaePayload()
			tt.mutate(payload)

			_, err := svc.Create(context.Background(), payload)
			var validationErr *records.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestCreateSurfacesPersistenceError(t *testing.T) {
	store := newFakeStore(func(r *models.LarvaeFeedingLog) string { return r.ID })
	store.insertErr = errors.New("connection reset")
	svc := newLarvaeService(store)

	_, err := svc.Create(context.Background(), validLarvaePayload())
	var persistenceErr *records.PersistenceError
	require.ErrorAs(t, err, &persistenceErr)
	require.ErrorIs(t, err, store.insertErr)
}

func TestGetAndDeleteIDSemantics(t *testing.T) {
	store := newFakeStore(func(r *models.LarvaeFeedingLog) string { return r.ID })
	svc := newLarvaeService(store)

	var validationErr *records.ValidationError

	_, err := svc.Get(context.Background(), "not-a-uuid")
	require.ErrorAs(t, err, &validationErr)

	err = svc.Delete(context.Background(), "not-a-uuid")
	require.ErrorAs(t, err, &validationErr)

	missing := uuid.NewString()
	_, err = svc.Get(context.Background(), missing)
	require.ErrorIs(t, err, records.ErrNotFound)
	require.ErrorIs(t, svc.Delete(context.Background(), missing), records.ErrNotFound)
}

func TestDeleteIsNotIdempotent(t *testing.T) {
	store := newFakeStore(func(r *models.LarvaeFeedingLog) string { return r.ID })
	svc := newLarvaeService(store)

	rec, err := svc.Create(context.Background(), validLarvaePayload())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), rec.ID))
	require.ErrorIs(t, svc.Delete(context.Background(), rec.ID), records.ErrNotFound)
}

func TestListValidatesWindow(t *testing.T) {
	store := newFakeStore(func(r *models.LarvaeFeedingLog) string { return r.ID })
	svc := newLarvaeService(store)

	var validationErr *records.ValidationError

	_, err := svc.List(context.Background(), repository.ListOptions{Skip: -1, Limit: 10})
	require.ErrorAs(t, err, &validationErr)

	_, err = svc.List(context.Background(), repository.ListOptions{Skip: 0, Limit: 0})
	require.ErrorAs(t, err, &validationErr)

	recs, err := svc.List(context.Background(), repository.ListOptions{Username: "ops", Skip: 0, Limit: 10})
	require.NoError(t, err)
	require.Empty(t, recs)
	require.Equal(t, "ops", store.listCalled.Username)
}
