package sqldb

import (
	"context"
	"fmt"
)

// schema is dialect-neutral DDL accepted by both SQLite and Postgres.
// Tables are flat and unrelated, indexed on timestamp (descending) and
// username.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS larvae_logs (
		id TEXT PRIMARY KEY,
		timestamp TIMESTAMP NOT NULL,
		username TEXT NOT NULL,
		days_of_age INTEGER NOT NULL,
		larva_weight INTEGER NOT NULL,
		larva_pct INTEGER NOT NULL,
		lb_larvae INTEGER NOT NULL,
		lb_feed DOUBLE PRECISION NOT NULL,
		lb_water DOUBLE PRECISION NOT NULL,
		screen_refeed BOOLEAN NOT NULL DEFAULT FALSE,
		row_number TEXT,
		notes TEXT,
		post_feed_condition TEXT,
		larvae_count INTEGER NOT NULL,
		feed_per_larvae DOUBLE PRECISION NOT NULL,
		water_feed_ratio DOUBLE PRECISION NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_larvae_logs_timestamp ON larvae_logs(timestamp DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_larvae_logs_username ON larvae_logs(username)`,

	`CREATE TABLE IF NOT EXISTS container_logs_prepupae (
		id TEXT PRIMARY KEY,
		timestamp TIMESTAMP NOT NULL,
		username TEXT NOT NULL,
		temperature DOUBLE PRECISION,
		humidity DOUBLE PRECISION,
		prepupae_tubs_added INTEGER,
		egg_nests_replaced INTEGER,
		notes TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_container_logs_prepupae_timestamp ON container_logs_prepupae(timestamp DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_container_logs_prepupae_username ON container_logs_prepupae(username)`,

	`CREATE TABLE IF NOT EXISTS container_logs_neonates (
		id TEXT PRIMARY KEY,
		timestamp TIMESTAMP NOT NULL,
		username TEXT NOT NULL,
		temperature DOUBLE PRECISION,
		humidity DOUBLE PRECISION,
		bait_tubs_replaced INTEGER,
		shelf_tubs_removed INTEGER,
		egg_nests_replaced INTEGER,
		notes TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_container_logs_neonates_timestamp ON container_logs_neonates(timestamp DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_container_logs_neonates_username ON container_logs_neonates(username)`,

	`CREATE TABLE IF NOT EXISTS microwave_logs (
		id TEXT PRIMARY KEY,
		timestamp TIMESTAMP NOT NULL,
		username TEXT NOT NULL,
		state TEXT NOT NULL CHECK(state IN ('CREATED', 'FINALIZED')),
		microwave_power_gen1 DOUBLE PRECISION,
		microwave_power_gen2 DOUBLE PRECISION,
		fan_speed_cavity1 DOUBLE PRECISION,
		fan_speed_cavity2 DOUBLE PRECISION,
		belt_speed DOUBLE PRECISION,
		lb_larvae_per_tub DOUBLE PRECISION,
		num_ramp_up_tubs INTEGER,
		num_ramp_down_tubs INTEGER,
		notes TEXT,
		tubs_live_larvae INTEGER,
		lb_dried_larvae DOUBLE PRECISION,
		yield_percentage DOUBLE PRECISION
	)`,
	`CREATE INDEX IF NOT EXISTS idx_microwave_logs_timestamp ON microwave_logs(timestamp DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_microwave_logs_username ON microwave_logs(username)`,
}

// Provision creates the record tables and their indexes if they do not
// exist yet. It is idempotent and runs once at startup.
func (db *DB) Provision(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to provision schema: %w", err)
		}
	}
	return nil
}
