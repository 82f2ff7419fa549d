package sqldb

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mamadbah2/datalog/internal/domain/models"
	"github.com/mamadbah2/datalog/internal/repository"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Provision(context.Background()))
	return db
}

func strPtr(s string) *string     { return &s }
func intPtr(n int) *int           { return &n }
func floatPtr(f float64) *float64 { return &f }

func larvaeFixture(username string, ts time.Time) *models.LarvaeFeedingLog {
	return &models.LarvaeFeedingLog{
		ID:             uuid.NewString(),
		Timestamp:      ts,
		Username:       username,
		DaysOfAge:      12,
		LarvaWeight:    10,
		LarvaPct:       50,
		LbLarvae:       2,
		LbFeed:         1,
		LbWater:        3,
		ScreenRefeed:   true,
		RowNumber:      strPtr("A3"),
		LarvaeCount:    45359,
		FeedPerLarvae:  10.0,
		WaterFeedRatio: 3.0,
	}
}

func TestLarvaeStoreRoundTrip(t *testing.T) {
	db := newTestDB(t)
	store := NewLarvaeFeedingLogStore(db)
	ctx := context.Background()

	rec := larvaeFixture("ops", time.Now().UTC())
	require.NoError(t, store.Insert(ctx, rec))

	loaded, err := store.Get(ctx, rec.ID)
	require.NoError(t, err)

	require.Equal(t, rec.ID, loaded.ID)
	require.WithinDuration(t, rec.Timestamp, loaded.Timestamp, time.Second)
	require.Equal(t, rec.Username, loaded.Username)
	require.Equal(t, rec.LarvaeCount, loaded.LarvaeCount)
	require.InDelta(t, rec.FeedPerLarvae, loaded.FeedPerLarvae, 1e-9)
	require.InDelta(t, rec.WaterFeedRatio, loaded.WaterFeedRatio, 1e-9)
	require.True(t, loaded.ScreenRefeed)
	require.Equal(t, rec.RowNumber, loaded.RowNumber)
	require.Nil(t, loaded.Notes)
	require.Nil(t, loaded.PostFeedCondition)
}

func TestStoreGetAndDeleteNotFound(t *testing.T) {
	db := newTestDB(t)
	store := NewLarvaeFeedingLogStore(db)
	ctx := context.Background()

	missing := uuid.NewString()
	_, err := store.Get(ctx, missing)
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.ErrorIs(t, store.Delete(ctx, missing), repository.ErrNotFound)

	rec := larvaeFixture("ops", time.Now().UTC())
	require.NoError(t, store.Insert(ctx, rec))
	require.NoError(t, store.Delete(ctx, rec.ID))

	_, err = store.Get(ctx, rec.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
	require.ErrorIs(t, store.Delete(ctx, rec.ID), repository.ErrNotFound)
}

func TestStoreListOrderingFilterAndWindow(t *testing.T) {
	db := newTestDB(t)
	store := NewLarvaeFeedingLogStore(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	oldest := larvaeFixture("alice", base)
	middle := larvaeFixture("bob", base.Add(1*time.Hour))
	newest := larvaeFixture("alice", base.Add(2*time.Hour))
	for _, rec := range []*models.LarvaeFeedingLog{oldest, middle, newest} {
		require.NoError(t, store.Insert(ctx, rec))
	}

	all, err := store.List(ctx, repository.ListOptions{Limit: 100})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, newest.ID, all[0].ID)
	require.Equal(t, middle.ID, all[1].ID)
	require.Equal(t, oldest.ID, all[2].ID)

	filtered, err := store.List(ctx, repository.ListOptions{Username: "alice", Limit: 100})
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	require.Equal(t, newest.ID, filtered[0].ID)
	require.Equal(t, oldest.ID, filtered[1].ID)

	windowed, err := store.List(ctx, repository.ListOptions{Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, windowed, 1)
	require.Equal(t, middle.ID, windowed[0].ID)

	empty, err := store.List(ctx, repository.ListOptions{Username: "nobody", Limit: 100})
	require.NoError(t, err)
	require.Empty(t, empty)

	// The store applies the window as given and keeps no default of its own.
	none, err := store.List(ctx, repository.ListOptions{Limit: 0})
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestContainerStoresKeepOptionalFieldsNullable(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	prepupae := NewContainerLogPrepupaeStore(db)
	bare := &models.ContainerLogPrepupae{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Username:  "ops",
	}
	require.NoError(t, prepupae.Insert(ctx, bare))

	loaded, err := prepupae.Get(ctx, bare.ID)
	require.NoError(t, err)
	require.Nil(t, loaded.Temperature)
	require.Nil(t, loaded.Humidity)
	require.Nil(t, loaded.PrepupaeTubsAdded)
	require.Nil(t, loaded.EggNestsReplaced)
	require.Nil(t, loaded.Notes)

	neonates := NewContainerLogNeonatesStore(db)
	full := &models.ContainerLogNeonates{
		ID:               uuid.NewString(),
		Timestamp:        time.Now().UTC(),
		Username:         "ops",
		Temperature:      floatPtr(29.5),
		Humidity:         floatPtr(61.2),
		BaitTubsReplaced: intPtr(4),
		ShelfTubsRemoved: intPtr(2),
		EggNestsReplaced: intPtr(1),
		Notes:            strPtr("shelf 2 crowded"),
	}
	require.NoError(t, neonates.Insert(ctx, full))

	got, err := neonates.Get(ctx, full.ID)
	require.NoError(t, err)
	require.InDelta(t, 29.5, *got.Temperature, 1e-9)
	require.InDelta(t, 61.2, *got.Humidity, 1e-9)
	require.Equal(t, 4, *got.BaitTubsReplaced)
	require.Equal(t, 2, *got.ShelfTubsRemoved)
	require.Equal(t, 1, *got.EggNestsReplaced)
	require.Equal(t, "shelf 2 crowded", *got.Notes)
}

func TestMicrowaveStoreUpdate(t *testing.T) {
	db := newTestDB(t)
	store := NewMicrowaveLogStore(db)
	ctx := context.Background()

	rec := &models.MicrowaveLog{
		ID:             uuid.NewString(),
		Timestamp:      time.Now().UTC(),
		Username:       "dryer",
		State:          models.RunStateCreated,
		LbLarvaePerTub: floatPtr(10),
	}
	require.NoError(t, store.Insert(ctx, rec))

	rec.State = models.RunStateFinalized
	rec.TubsLiveLarvae = intPtr(5)
	rec.LbDriedLarvae = floatPtr(20)
	rec.YieldPercentage = floatPtr(40)
	require.NoError(t, store.Update(ctx, rec))

	loaded, err := store.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, models.RunStateFinalized, loaded.State)
	require.Equal(t, 5, *loaded.TubsLiveLarvae)
	require.InDelta(t, 20.0, *loaded.LbDriedLarvae, 1e-9)
	require.InDelta(t, 40.0, *loaded.YieldPercentage, 1e-9)
	require.InDelta(t, 10.0, *loaded.LbLarvaePerTub, 1e-9)

	rec.ID = uuid.NewString()
	require.ErrorIs(t, store.Update(ctx, rec), repository.ErrNotFound)
}

func TestProvisionIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Provision(context.Background()))
}

func TestRebindOnlyTouchesPostgres(t *testing.T) {
	sqliteDB := &DB{driver: driverSQLite}
	require.Equal(t, "SELECT 1 WHERE a = ? AND b = ?", sqliteDB.rebind("SELECT 1 WHERE a = ? AND b = ?"))

	pgDB := &DB{driver: driverPostgres}
	require.Equal(t, "SELECT 1 WHERE a = $1 AND b = $2", pgDB.rebind("SELECT 1 WHERE a = ? AND b = ?"))
}
