package sqlite

import (
	"database/sql"
	"time"

	"flow/internal/domain"
	"flow/internal/ports"
)

// cacheTx implements ports.CacheTx
type cacheTx struct {
	tx *sql.Tx
}

// Ensure cacheTx implements CacheTx
var _ ports.CacheTx = (*cacheTx)(nil)

// UpsertTable inserts or replaces a table
func (t *cacheTx) UpsertTable(table *domain.CachedTable) error {
	created := table.Created
	if created.IsZero() {
		created = time.Now()
	}

	_, err := t.tx.Exec(`
		INSERT OR REPLACE INTO tables (key, num_vars, row_count, results, created)
		VALUES (?, ?, ?, ?, ?)
	`, table.Key, table.NumVars, len(table.Rows), domain.PackResults(table.Rows), created.Unix())
	return err
}

// DeleteTable removes a table by key
func (t *cacheTx) DeleteTable(key string) error {
	_, err := t.tx.Exec(`DELETE FROM tables WHERE key = ?`, key)
	return err
}

// Commit commits the transaction
func (t *cacheTx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction
func (t *cacheTx) Rollback() error {
	return t.tx.Rollback()
}
