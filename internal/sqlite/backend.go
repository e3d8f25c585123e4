// Package sqlite implements the MovieMemo record store on an embedded
// SQLite database. All operations are synchronous, blocking calls; the
// backend serializes access with its own lock and callers are expected to
// invoke it off any latency-sensitive path.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/entertainment/moviememo/pkg/types"
)

// Database file name inside the data directory.
const dbFileName = "moviememo.db"

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

// Backend implements the Store interface over a single SQLite file.
type Backend struct {
	mu   sync.RWMutex
	open bool
	db   *sql.DB
}

// Open creates the data directory if needed, opens the database, and
// applies the schema. The schema is idempotent; an existing database keeps
// its records.
func Open(config types.Config) (*Backend, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(config.DataDir, dbFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", dbPath, err)
	}

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying schema: %w", err)
		}
	}

	return &Backend{open: true, db: db}, nil
}

// Close releases the database handle. Idempotent; operations after Close
// return ErrStoreClosed.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.open {
		return nil
	}
	if err := b.db.Close(); err != nil {
		return err
	}
	b.db = nil
	b.open = false
	return nil
}

// conn returns the database handle, or ErrStoreClosed. The caller must hold
// b.mu (read or write).
func (b *Backend) conn() (*sql.DB, error) {
	if !b.open {
		return nil, types.ErrStoreClosed
	}
	return b.db, nil
}

// Null-mapping helpers between pointer fields and SQL nullable columns.

func nullStr(v *string) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullInt64(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func ptrStr(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func ptrInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func ptrInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	n := v.Int64
	return &n
}
