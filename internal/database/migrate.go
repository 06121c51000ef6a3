package database

import (
	"database/sql"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var embedMigrations embed.FS

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// goose keeps its dialect in package state.
var migrateMu sync.Mutex

// Migrate brings the schema for the given dialect up to date.
func Migrate(db *sql.DB, dialect Dialect) error {
	migrateMu.Lock()
	defer migrateMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	gooseDialect := goose.DialectPostgres
	if dialect == DialectSQLite {
		gooseDialect = goose.DialectSQLite3
	}
	if err := goose.SetDialect(string(gooseDialect)); err != nil {
		return fmt.Errorf("setting dialect for migrations : %w", err)
	}
	if err := goose.Up(db, "migrations/"+string(dialect)); err != nil {
		return fmt.Errorf("applying migration : %w", err)
	}
	return nil
}
