// Package sqlite implements the cluster repository over an embedded
// analytical store using database/sql with the pure-Go sqlite driver.
// Every query binds its inputs as parameters; cluster identifiers are
// never interpolated into SQL text.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	_ "modernc.org/sqlite"

	"seograph-backend/internal/repository"
)

// Executor is the query-executor boundary: it runs one parameterized SQL
// statement and returns rows. *sql.DB satisfies it; tests may substitute
// a failing executor.
type Executor interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Store is the SQL-backed implementation of repository.ClusterRepository.
// It performs only reads and is safe for concurrent use.
type Store struct {
	db     *sql.DB
	exec   Executor
	tracer trace.Tracer
}

var _ repository.ClusterRepository = (*Store)(nil)

// Open opens or creates the store at the given path and ensures the
// schema exists. Use ":memory:" for an ephemeral store in tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// The driver serializes writes; one connection avoids lock churn.
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return NewStore(db, db), nil
}

// NewStore builds a Store over an already-open database. The executor is
// separate from the *sql.DB so tests can inject failures at the query
// boundary.
func NewStore(db *sql.DB, exec Executor) *Store {
	return &Store{
		db:     db,
		exec:   exec,
		tracer: otel.Tracer("seograph-backend/repository/sqlite"),
	}
}

// DB exposes the underlying handle for seeding and migrations.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// query runs one parameterized statement and shapes the result set into
// raw rows keyed by column name.
func (s *Store) query(ctx context.Context, operation, stmt string, args ...any) ([]repository.Row, error) {
	ctx, span := s.tracer.Start(ctx, "store.query",
		trace.WithAttributes(attribute.String("db.operation", operation)))
	defer span.End()

	rows, err := s.exec.QueryContext(ctx, stmt, args...)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer rows.Close()

	out, err := rowsToMaps(rows)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return out, nil
}

// rowsToMaps scans every row into a column-name keyed map, preserving
// NULLs as nil values.
func rowsToMaps(rows *sql.Rows) ([]repository.Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	var out []repository.Row
	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		row := make(repository.Row, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
