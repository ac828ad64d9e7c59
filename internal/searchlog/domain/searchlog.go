package domain

import (
	"context"
	"errors"
)

// ---------- Errores de dominio ----------
var (
	ErrEmptyQuery = errors.New("search query is required")
)

// DefaultRecentLimit caps the recent-queries view.
const DefaultRecentLimit = 10

// SearchEntry is one recorded query. Timestamp stays the raw RFC3339 string
// the record was written with.
type SearchEntry struct {
	Timestamp string `json:"timestamp"`
	Query     string `json:"searchQuery"`
}

// ---------- Interfaces (Ports) ----------

// SearchLogStore is the append-only record of search queries.
type SearchLogStore interface {
	// Append normalizes separator characters in the query, appends one
	// record and returns its timestamp. Fails only on storage I/O errors.
	Append(ctx context.Context, query string) (timestamp string, err error)

	// Recent returns up to limit distinct entries, newest first, with
	// case-insensitive dedup keeping the most recent occurrence. Malformed
	// records are skipped.
	Recent(ctx context.Context, limit int) ([]SearchEntry, error)
}
