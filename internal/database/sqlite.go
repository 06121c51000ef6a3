package database

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// NewSQLite opens a SQLite database file and applies pending migrations.
// Writes are serialized through a single connection.
func NewSQLite(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("connecting to sqlite : %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := Migrate(db.DB, DialectSQLite); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

const sqlitePragmas = "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"

// sqliteDSN appends the connection pragmas, keeping any query already present.
func sqliteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&" + sqlitePragmas
	}
	return path + "?" + sqlitePragmas
}
