package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mamadbah2/datalog/internal/repository"
)

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// Table implements repository.Store for one record kind from a column
// descriptor, so the four near-identical CRUD paths share a single
// implementation.
type Table[T any] struct {
	db      *DB
	name    string
	columns []string
	// values returns the bind arguments aligned with columns.
	values func(*T) []any
	// scan reads one row, in column order, into a fresh record.
	scan func(rowScanner) (*T, error)
}

func (t *Table[T]) Insert(ctx context.Context, rec *T) error {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.columns)), ", ")
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		t.name, strings.Join(t.columns, ", "), placeholders,
	)

	if _, err := t.db.ExecContext(ctx, t.db.rebind(query), t.values(rec)...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", t.name, err)
	}
	return nil
}

func (t *Table[T]) Get(ctx context.Context, id string) (*T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE id = ?",
		strings.Join(t.columns, ", "), t.name,
	)

	rec, err := t.scan(t.db.QueryRowContext(ctx, t.db.rebind(query), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get from %s: %w", t.name, err)
	}
	return rec, nil
}

func (t *Table[T]) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", t.name)

	result, err := t.db.ExecContext(ctx, t.db.rebind(query), id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", t.name, err)
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

func (t *Table[T]) List(ctx context.Context, opts repository.ListOptions) ([]T, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", strings.Join(t.columns, ", "), t.name)

	args := []any{}
	if opts.Username != "" {
		b.WriteString(" WHERE username = ?")
		args = append(args, opts.Username)
	}

	// The window is applied exactly as given; the service validates it.
	b.WriteString(" ORDER BY timestamp DESC LIMIT ? OFFSET ?")
	args = append(args, opts.Limit, opts.Skip)

	rows, err := t.db.QueryContext(ctx, t.db.rebind(b.String()), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", t.name, err)
	}
	defer func() { _ = rows.Close() }()

	records := []T{}
	for rows.Next() {
		rec, err := t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", t.name, err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s rows: %w", t.name, err)
	}
	return records, nil
}
