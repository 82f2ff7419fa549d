package sqldb

import (
	"context"
	"fmt"

	"github.com/mamadbah2/datalog/internal/domain/models"
	"github.com/mamadbah2/datalog/internal/repository"
)

// MicrowaveLogStore adds the post-production update to the generic table
// operations for drying runs.
type MicrowaveLogStore struct {
	Table[models.MicrowaveLog]
}

// NewMicrowaveLogStore builds the store for microwave drying runs.
func NewMicrowaveLogStore(db *DB) *MicrowaveLogStore {
	return &MicrowaveLogStore{
		Table: Table[models.MicrowaveLog]{
			db:   db,
			name: "microwave_logs",
			columns: []string{
				"id", "timestamp", "username", "state",
				"microwave_power_gen1", "microwave_power_gen2",
				"fan_speed_cavity1", "fan_speed_cavity2", "belt_speed",
				"lb_larvae_per_tub", "num_ramp_up_tubs", "num_ramp_down_tubs",
				"notes", "tubs_live_larvae", "lb_dried_larvae", "yield_percentage",
			},
			values: func(r *models.MicrowaveLog) []any {
				return []any{
					r.ID, r.Timestamp, r.Username, r.State,
					r.MicrowavePowerGen1, r.MicrowavePowerGen2,
					r.FanSpeedCavity1, r.FanSpeedCavity2, r.BeltSpeed,
					r.LbLarvaePerTub, r.NumRampUpTubs, r.NumRampDownTubs,
					r.Notes, r.TubsLiveLarvae, r.LbDriedLarvae, r.YieldPercentage,
				}
			},
			scan: func(row rowScanner) (*models.MicrowaveLog, error) {
				var r models.MicrowaveLog
				err := row.Scan(
					&r.ID, &r.Timestamp, &r.Username, &r.State,
					&r.MicrowavePowerGen1, &r.MicrowavePowerGen2,
					&r.FanSpeedCavity1, &r.FanSpeedCavity2, &r.BeltSpeed,
					&r.LbLarvaePerTub, &r.NumRampUpTubs, &r.NumRampDownTubs,
					&r.Notes, &r.TubsLiveLarvae, &r.LbDriedLarvae, &r.YieldPercentage,
				)
				if err != nil {
					return nil, err
				}
				return &r, nil
			},
		},
	}
}

// Update persists the mutable portion of a drying run in one statement, so
// a concurrent reader sees either the old row or the new row, never a mix.
func (s *MicrowaveLogStore) Update(ctx context.Context, rec *models.MicrowaveLog) error {
	query := `
		UPDATE microwave_logs
		SET state = ?, notes = ?, tubs_live_larvae = ?, lb_dried_larvae = ?, yield_percentage = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, s.db.rebind(query),
		rec.State, rec.Notes, rec.TubsLiveLarvae, rec.LbDriedLarvae, rec.YieldPercentage,
		rec.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update microwave_logs: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
