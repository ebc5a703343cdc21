// Package sqlite is the SQLite-backed page schema store.
package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/zjrosen/pagekit/internal/log"
	"github.com/zjrosen/pagekit/internal/pages"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// busyTimeoutMs is how long a connection waits on a locked database.
const busyTimeoutMs = 5000

// DB owns the connection and hands out repositories.
type DB struct {
	conn *sql.DB
	path string
}

// NewDB opens (creating if needed) the database at path and migrates it.
// When an existing database has migrations pending it is copied to
// path+".bak" first.
func NewDB(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}
	_, statErr := os.Stat(path)
	existed := statErr == nil

	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(wal)&_pragma=foreign_keys(on)",
		path, busyTimeoutMs,
	)
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(conn, existed, path+".bak"); err != nil {
		_ = conn.Close()
		return nil, err
	}

	log.Debug(log.CatStore, "Page store opened", "path", path)
	return &DB{conn: conn, path: path}, nil
}

// runMigrations brings the schema up to date. When backupFirst is set and
// the schema is behind, the database is snapshotted to backupPath before
// any migration runs.
func runMigrations(conn *sql.DB, backupFirst bool, backupPath string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}
	defer src.Close()

	latest, err := latestVersion(src)
	if err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	driver, err := sqlitemigrate.WithInstance(conn, &sqlitemigrate.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	// m.Close would close conn through the driver; only the source is released.

	current, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		current = 0
	case err != nil:
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current >= latest && !dirty {
		return nil
	}

	if backupFirst {
		if err := backup(conn, backupPath); err != nil {
			return fmt.Errorf("failed to back up database: %w", err)
		}
		log.Info(log.CatStore, "Backed up database before migrating",
			"path", backupPath, "from", current, "to", latest)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Debug(log.CatStore, "Migrations applied", "version", latest)
	return nil
}

// latestVersion walks the migration source to its last version.
func latestVersion(src source.Driver) (uint, error) {
	v, err := src.First()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return 0, nil
		}
		return 0, err
	}
	for {
		next, err := src.Next(v)
		if errors.Is(err, os.ErrNotExist) {
			return v, nil
		}
		if err != nil {
			return 0, err
		}
		v = next
	}
}

// backup writes a consistent snapshot of the live database, WAL contents
// included, to dst.
func backup(conn *sql.DB, dst string) error {
	if err := os.Remove(dst); err != nil && !os.IsNotExist(err) {
		return err
	}
	_, err := conn.Exec("VACUUM INTO ?", dst)
	return err
}

// PageRepository returns the page repository.
func (db *DB) PageRepository() pages.Repository {
	return newPageRepository(db.conn)
}

// Connection returns the underlying connection.
func (db *DB) Connection() *sql.DB {
	return db.conn
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}

// Close closes the connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
