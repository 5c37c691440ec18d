package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// CachedTable is a truth table stored by the table cache
type CachedTable struct {
	Key     string // TableKey of the diagram
	NumVars int
	Rows    []Row
	Created time.Time
}

// CacheStats holds statistics about the table cache
type CacheStats struct {
	Tables int
	Rows   int64
}

// TableKey identifies a diagram's truth table by the SHA-256 of its
// canonical definition. Formatting differences do not change the key.
func (b *Bdd) TableKey() string {
	h := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(h[:])
}

// PackResults stores one result bit per row, row i at bit i%8 of byte i/8
func PackResults(rows []Row) []byte {
	packed := make([]byte, (len(rows)+7)/8)
	for _, row := range rows {
		if row.Result {
			packed[row.Index/8] |= 1 << (row.Index % 8)
		}
	}
	return packed
}

// UnpackResults is the inverse of PackResults for a table of count rows
func UnpackResults(packed []byte, count int) []Row {
	rows := make([]Row, count)
	for i := range rows {
		rows[i] = Row{Index: i, Result: packed[i/8]&(1<<(i%8)) != 0}
	}
	return rows
}
