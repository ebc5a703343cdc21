package sqlite

import (
	"database/sql"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := NewDB(filepath.Join(t.TempDir(), "pages.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNewDB_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "pages.db")

	db, err := NewDB(dbPath)
	require.NoError(t, err)
	defer db.Close()

	info, err := os.Stat(filepath.Dir(dbPath))
	require.NoError(t, err)
	require.True(t, info.IsDir())
	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0700), info.Mode().Perm())
	}
	require.Equal(t, dbPath, db.Path())
}

func TestNewDB_RunsMigrations(t *testing.T) {
	db := openTestDB(t)

	var tableName string
	err := db.conn.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='pages'",
	).Scan(&tableName)
	require.NoError(t, err, "pages table should exist after migrations")
	require.Equal(t, "pages", tableName)

	var version int
	require.NoError(t, db.conn.QueryRow("SELECT version FROM schema_migrations").Scan(&version))
	require.Equal(t, 1, version)
}

func TestNewDB_Pragmas(t *testing.T) {
	db := openTestDB(t)

	var journalMode string
	require.NoError(t, db.conn.QueryRow("PRAGMA journal_mode").Scan(&journalMode))
	require.Equal(t, "wal", journalMode)

	var foreignKeys int
	require.NoError(t, db.conn.QueryRow("PRAGMA foreign_keys").Scan(&foreignKeys))
	require.Equal(t, 1, foreignKeys)

	var busyTimeout int
	require.NoError(t, db.conn.QueryRow("PRAGMA busy_timeout").Scan(&busyTimeout))
	require.Equal(t, busyTimeoutMs, busyTimeout)
}

func TestNewDB_PreMigrationBackup(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pages.db")

	// A database written before the schema was managed: data, no schema_migrations.
	legacy, err := sql.Open("sqlite3", "file:"+dbPath+"?_pragma=journal_mode(wal)")
	require.NoError(t, err)
	_, err = legacy.Exec("CREATE TABLE notes (body TEXT)")
	require.NoError(t, err)
	_, err = legacy.Exec("INSERT INTO notes (body) VALUES ('keep me')")
	require.NoError(t, err)
	require.NoError(t, legacy.Close())

	db, err := NewDB(dbPath)
	require.NoError(t, err)
	defer db.Close()

	bak, err := sql.Open("sqlite3", "file:"+dbPath+".bak?mode=ro")
	require.NoError(t, err)
	defer bak.Close()

	var body string
	require.NoError(t, bak.QueryRow("SELECT body FROM notes").Scan(&body))
	require.Equal(t, "keep me", body)

	var pagesTables int
	require.NoError(t, bak.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='pages'",
	).Scan(&pagesTables))
	require.Zero(t, pagesTables, "backup is taken before migrating")
}

func TestNewDB_NoBackupWhenUpToDate(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pages.db")

	db1, err := NewDB(dbPath)
	require.NoError(t, err)
	_, err = db1.conn.Exec(
		"INSERT INTO pages (page_id, body, version, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
		"home", `{}`, 1, 1000, 1000,
	)
	require.NoError(t, err)
	require.NoError(t, db1.Close())

	_, err = os.Stat(dbPath + ".bak")
	require.True(t, os.IsNotExist(err), "no backup for a fresh database")

	db2, err := NewDB(dbPath)
	require.NoError(t, err)
	defer db2.Close()

	_, err = os.Stat(dbPath + ".bak")
	require.True(t, os.IsNotExist(err), "no backup when no migration is pending")
}

func TestLatestVersion(t *testing.T) {
	src, err := iofs.New(migrationsFS, "migrations")
	require.NoError(t, err)
	defer src.Close()

	v, err := latestVersion(src)
	require.NoError(t, err)
	require.Equal(t, uint(1), v)
}

func TestNewDB_ReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "pages.db")

	db1, err := NewDB(dbPath)
	require.NoError(t, err)
	_, err = db1.conn.Exec(
		"INSERT INTO pages (page_id, body, version, created_at, updated_at) VALUES ('home', '{}', 1, 1, 1)",
	)
	require.NoError(t, err)
	require.NoError(t, db1.Close())

	db2, err := NewDB(dbPath)
	require.NoError(t, err)
	defer db2.Close()

	var count int
	require.NoError(t, db2.conn.QueryRow("SELECT COUNT(*) FROM pages").Scan(&count))
	require.Equal(t, 1, count)
}

func TestNewDB_RejectsInvalidJSONBody(t *testing.T) {
	db := openTestDB(t)

	_, err := db.conn.Exec(
		"INSERT INTO pages (page_id, body, version, created_at, updated_at) VALUES ('bad', '{not json', 1, 1, 1)",
	)
	require.Error(t, err)
}

func TestDB_CloseAndConnection(t *testing.T) {
	db, err := NewDB(filepath.Join(t.TempDir(), "pages.db"))
	require.NoError(t, err)

	conn := db.Connection()
	require.IsType(t, (*sql.DB)(nil), conn)
	require.NoError(t, conn.Ping())
	require.NotNil(t, db.PageRepository())

	require.NoError(t, db.Close())
	require.Error(t, conn.Ping())
}

func TestNewDB_InvalidPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Unix-specific path test")
	}
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	_, err := NewDB(filepath.Join(blocker, "pages.db"))
	require.Error(t, err, "a regular file cannot be the parent directory")
}
