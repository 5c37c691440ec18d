package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"flow/internal/domain"
	"flow/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// Cache implements ports.TableCache using SQLite
type Cache struct {
	db     *sql.DB
	dbPath string
}

// Ensure Cache implements TableCache
var _ ports.TableCache = (*Cache)(nil)

// NewCache creates a new SQLite table cache
func NewCache() *Cache {
	return &Cache{}
}

// OpenCache creates a cache and opens it at path
func OpenCache(path string) (*Cache, error) {
	c := NewCache()
	if err := c.Open(path); err != nil {
		return nil, err
	}
	return c, nil
}

// Open initializes the cache database at path
func (c *Cache) Open(path string) error {
	// Expand ~ in path
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	c.dbPath = path

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	c.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS tables (
			key TEXT PRIMARY KEY,
			num_vars INTEGER NOT NULL,
			row_count INTEGER NOT NULL,
			results BLOB NOT NULL,
			created INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if err := c.checkSchema(); err != nil {
		db.Close()
		return err
	}

	return nil
}

// Close closes the database connection
func (c *Cache) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// Path returns the database location
func (c *Cache) Path() string {
	return c.dbPath
}

// checkSchema drops every entry written by a different schema version
func (c *Cache) checkSchema() error {
	var version string
	c.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	if version == schemaVersion {
		return nil
	}

	if _, err := c.db.Exec(`DELETE FROM tables`); err != nil {
		return fmt.Errorf("failed to reset cache: %w", err)
	}
	_, err := c.db.Exec(`INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?)`, schemaVersion)
	if err != nil {
		return fmt.Errorf("failed to update metadata: %w", err)
	}
	return nil
}

// Get retrieves a table by key, returning nil for a miss
func (c *Cache) Get(key string) (*domain.CachedTable, error) {
	var table domain.CachedTable
	var count int
	var results []byte
	var created int64

	err := c.db.QueryRow(`
		SELECT key, num_vars, row_count, results, created
		FROM tables WHERE key = ?
	`, key).Scan(&table.Key, &table.NumVars, &count, &results, &created)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if len(results) < (count+7)/8 {
		return nil, fmt.Errorf("cache entry %s is truncated", key)
	}
	table.Rows = domain.UnpackResults(results, count)
	table.Created = time.Unix(created, 0)

	return &table, nil
}

// Put stores a table in its own transaction
func (c *Cache) Put(table *domain.CachedTable) error {
	tx, err := c.BeginTx()
	if err != nil {
		return err
	}
	if err := tx.UpsertTable(table); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Invalidate removes one entry in its own transaction
func (c *Cache) Invalidate(key string) error {
	tx, err := c.BeginTx()
	if err != nil {
		return err
	}
	if err := tx.DeleteTable(key); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

// Clear removes every entry
func (c *Cache) Clear() error {
	_, err := c.db.Exec(`DELETE FROM tables`)
	return err
}

// Stats returns the number of cached tables and rows
func (c *Cache) Stats() (*domain.CacheStats, error) {
	var stats domain.CacheStats
	var rows sql.NullInt64

	err := c.db.QueryRow(`SELECT COUNT(*), SUM(row_count) FROM tables`).Scan(&stats.Tables, &rows)
	if err != nil {
		return nil, err
	}
	stats.Rows = rows.Int64

	return &stats, nil
}

// BeginTx starts a new transaction
func (c *Cache) BeginTx() (ports.CacheTx, error) {
	tx, err := c.db.Begin()
	if err != nil {
		return nil, err
	}
	return &cacheTx{tx: tx}, nil
}
