// Package sqldb implements the record stores on database/sql. The driver is
// chosen from the connection string: postgres:// selects pgx, anything else
// is treated as a SQLite path, so the same binary serves the hosted
// Postgres deployment and local or in-memory SQLite databases.
package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as a database/sql driver
	_ "modernc.org/sqlite"             // pure go sqlite driver
)

const (
	driverPostgres = "pgx"
	driverSQLite   = "sqlite"
)

// DB wraps the shared connection pool together with the selected driver.
// It is constructed once by the process entry point and injected into the
// stores; there is no package-level connection state.
type DB struct {
	*sql.DB
	driver string
}

// Open connects to the record store described by databaseURL and verifies
// the connection.
func Open(ctx context.Context, databaseURL string) (*DB, error) {
	driver, dsn := driverFor(databaseURL)

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == driverSQLite {
		// SQLite serializes writes anyway, and a single pooled connection
		// keeps :memory: databases from fragmenting across connections.
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, driver: driver}, nil
}

func driverFor(databaseURL string) (driver, dsn string) {
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"),
		strings.HasPrefix(databaseURL, "postgresql://"):
		return driverPostgres, databaseURL
	case strings.HasPrefix(databaseURL, "sqlite://"):
		return driverSQLite, strings.TrimPrefix(databaseURL, "sqlite://")
	default:
		return driverSQLite, databaseURL
	}
}

// rebind rewrites ? placeholders to the $N form pgx expects. Queries in
// this package are written with ? and rebound on demand.
func (db *DB) rebind(query string) string {
	if db.driver != driverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}
