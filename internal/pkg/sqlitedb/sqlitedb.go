// Package sqlitedb opens the shared SQLite database used by every module
// repository.
//
// WAL mode is enabled so readers never block writers and vice versa; the
// HTTP handlers read while use cases write. We use modernc.org/sqlite
// instead of mattn/go-sqlite3 to avoid CGO, keeping Docker (Alpine) builds
// trivial.
package sqlitedb

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	// Register the pure-Go SQLite driver under the name "sqlite".
	_ "modernc.org/sqlite"
)

// Open opens (or creates) the database at path with the pragmas every
// repository relies on. The directory is created if missing.
//
// SQLite performs best with a single writer connection; readers share the
// pool.
func Open(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("sqlitedb: create dir %q: %w", dir, err)
		}
	}

	// The pure-Go driver takes pragmas as DSN query parameters.
	// busy_timeout waits for locks instead of failing immediately.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlitedb: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	return db, nil
}

// FormatTime renders a timestamp the way every repository stores it:
// RFC3339 TEXT in UTC. SQLite has no native datetime type.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTime parses a timestamp stored by FormatTime.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("sqlitedb: parse time %q: %w", s, err)
	}
	return t, nil
}
