package sqldb

import (
	"github.com/mamadbah2/datalog/internal/domain/models"
)

// NewContainerLogPrepupaeStore builds the store for prepupae container
// snapshots.
func NewContainerLogPrepupaeStore(db *DB) *Table[models.ContainerLogPrepupae] {
	return &Table[models.ContainerLogPrepupae]{
		db:   db,
		name: "container_logs_prepupae",
		columns: []string{
			"id", "timestamp", "username", "temperature", "humidity",
			"prepupae_tubs_added", "egg_nests_replaced", "notes",
		},
		values: func(r *models.ContainerLogPrepupae) []any {
			return []any{
				r.ID, r.Timestamp, r.Username, r.Temperature, r.Humidity,
				r.PrepupaeTubsAdded, r.EggNestsReplaced, r.Notes,
			}
		},
		scan: func(row rowScanner) (*models.ContainerLogPrepupae, error) {
			var r models.ContainerLogPrepupae
			err := row.Scan(
				&r.ID, &r.Timestamp, &r.Username, &r.Temperature, &r.Humidity,
				&r.PrepupaeTubsAdded, &r.EggNestsReplaced, &r.Notes,
			)
			if err != nil {
				return nil, err
			}
			return &r, nil
		},
	}
}

// NewContainerLogNeonatesStore builds the store for neonate container
// snapshots.
func NewContainerLogNeonatesStore(db *DB) *Table[models.ContainerLogNeonates] {
	return &Table[models.ContainerLogNeonates]{
		db:   db,
		name: "container_logs_neonates",
		columns: []string{
			"id", "timestamp", "username", "temperature", "humidity",
			"bait_tubs_replaced", "shelf_tubs_removed", "egg_nests_replaced", "notes",
		},
		values: func(r *models.ContainerLogNeonates) []any {
			return []any{
				r.ID, r.Timestamp, r.Username, r.Temperature, r.Humidity,
				r.BaitTubsReplaced, r.ShelfTubsRemoved, r.EggNestsReplaced, r.Notes,
			}
		},
		scan: func(row rowScanner) (*models.ContainerLogNeonates, error) {
			var r models.ContainerLogNeonates
			err := row.Scan(
				&r.ID, &r.Timestamp, &r.Username, &r.Temperature, &r.Humidity,
				&r.BaitTubsReplaced, &r.ShelfTubsRemoved, &r.EggNestsReplaced, &r.Notes,
			)
			if err != nil {
				return nil, err
			}
			return &r, nil
		},
	}
}
