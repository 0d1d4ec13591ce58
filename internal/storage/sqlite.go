package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/sakif/snipvault/internal/apperror"
	"github.com/sakif/snipvault/internal/model"

	// BLANK IMPORT:
	// Side-effect only — the package's init() registers itself with
	// database/sql as a driver named "sqlite". After this import,
	// sql.Open("sqlite", ...) knows how to talk to SQLite.
	//
	// modernc.org/sqlite is a pure Go translation of SQLite — no CGo,
	// no C compiler, works everywhere Go works.
	_ "modernc.org/sqlite"
)

var _ Store = (*SQLiteStore)(nil)

// timestampLayout is the on-disk format for created_at: RFC 3339 with
// nanoseconds. Parsing with this layout also accepts plain RFC 3339, and
// formatting then parsing round-trips a time.Time exactly (minus the
// monotonic clock reading, which is never persisted anyway).
const timestampLayout = time.RFC3339Nano

// SQLiteStore persists the collection as rows in one table:
//
//	snippets(name TEXT PRIMARY KEY, content TEXT NOT NULL, created_at TEXT NOT NULL)
//
// The timestamp is stored as TEXT rather than a driver-converted DATETIME
// so the format is pinned by this package, not by driver conventions —
// both directions of the conversion go through timestampLayout.
type SQLiteStore struct {
	conn *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) the database at path and ensures the
// snippets table exists. Schema initialization is idempotent — CREATE
// TABLE IF NOT EXISTS is safe to run on every start.
//
// sql.Open alone doesn't touch the file; it just builds a pool manager.
// The Ping forces a real connection so a bad path fails here, at
// construction, instead of on the first query.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, apperror.StorageInit(path, err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, apperror.StorageInit(path, err)
	}

	if _, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS snippets (
			name       TEXT PRIMARY KEY,
			content    TEXT NOT NULL,
			created_at TEXT NOT NULL
		)
	`); err != nil {
		conn.Close()
		return nil, apperror.StorageInit(path, err)
	}

	return &SQLiteStore{conn: conn, path: path}, nil
}

// Close closes the underlying connection pool. Callers that construct a
// SQLiteStore directly should defer Close; callers going through Open can
// type-assert for it (the CLI does, via io.Closer).
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// Load selects every row and parses each created_at string back into a
// time.Time.
//
// STRICT PARSING:
// One malformed timestamp fails the whole Load. A row that cannot be
// deserialized means the store is corrupt, and a partial collection would
// silently drop snippets on the next Save — worse than the error.
func (s *SQLiteStore) Load(ctx context.Context) (model.Collection, error) {
	rows, err := s.conn.QueryContext(ctx,
		`SELECT name, content, created_at FROM snippets`)
	if err != nil {
		return nil, apperror.StorageRead(s.path, err)
	}
	// sql.Rows holds a pool connection until closed.
	defer rows.Close()

	c := model.Collection{}
	for rows.Next() {
		var name, content, createdAt string
		if err := rows.Scan(&name, &content, &createdAt); err != nil {
			return nil, apperror.StorageRead(s.path, err)
		}

		ts, err := time.Parse(timestampLayout, createdAt)
		if err != nil {
			return nil, apperror.StorageRead(s.path, err)
		}

		c[name] = model.Snippet{Content: content, CreatedAt: ts}
	}
	// rows.Err() catches failures that happened DURING iteration.
	if err := rows.Err(); err != nil {
		return nil, apperror.StorageRead(s.path, err)
	}

	return c, nil
}

// Save replaces all rows with the given collection: delete everything,
// then insert one row per entry.
//
// Both statements run inside a single transaction so a failed insert
// can't leave the table half-emptied. This gives one Save all-or-nothing
// semantics; it does NOT make concurrent invocations against the same
// file safe — callers still serialize externally.
func (s *SQLiteStore) Save(ctx context.Context, c model.Collection) error {
	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return apperror.StorageWrite(s.path, err)
	}
	// Rollback after a successful Commit is a no-op.
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM snippets`); err != nil {
		return apperror.StorageWrite(s.path, err)
	}

	for name, snippet := range c {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO snippets (name, content, created_at) VALUES (?, ?, ?)`,
			name,
			snippet.Content,
			snippet.CreatedAt.Format(timestampLayout),
		); err != nil {
			return apperror.StorageWrite(s.path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperror.StorageWrite(s.path, err)
	}
	return nil
}
