package ports

import "flow/internal/domain"

// TableCache stores computed truth tables keyed by the hash of the canonical
// definition text.
type TableCache interface {
	// Lifecycle
	Open(path string) error
	Close() error

	// Get returns the cached table, or nil if the key is unknown
	Get(key string) (*domain.CachedTable, error)

	// Put stores a table, replacing any previous entry for the key
	Put(table *domain.CachedTable) error

	// Invalidate drops one entry; Clear drops all of them
	Invalidate(key string) error
	Clear() error

	Stats() (*domain.CacheStats, error)

	BeginTx() (CacheTx, error)
}

// CacheTx represents a transaction for atomic cache updates
type CacheTx interface {
	UpsertTable(table *domain.CachedTable) error
	DeleteTable(key string) error

	Commit() error
	Rollback() error
}
