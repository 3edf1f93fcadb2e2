package memory

import (
	"context"

	"toolfinder/models"
)

const (
	DefaultMaxEntries   = 50
	DefaultContextLimit = 5
)

// Store persists memory entries for users.
//
// Structured stores keep every entry field and are read field by field.
// Vector stores are searched semantically and read back by parsing the
// marker sentences in the entry content.
type Store interface {
	Provider() string
	Structured() bool
	Add(ctx context.Context, entry models.MemoryEntry) error
	// Search returns at most limit entries relevant to query.
	Search(ctx context.Context, userID, query string, limit int) ([]models.MemoryEntry, error)
	// All returns the user's entries, oldest first.
	All(ctx context.Context, userID string) ([]models.MemoryEntry, error)
	Clear(ctx context.Context, userID string) error
}

// Counter is implemented by stores that can report totals cheaply.
type Counter interface {
	Counts(ctx context.Context) (users int, entries int, err error)
}
