package memory

import (
	"context"
	"sync"

	"toolfinder/models"
)

// LocalStore keeps entries in process memory. Each user keeps only the
// newest maxEntries entries.
type LocalStore struct {
	mu         sync.Mutex
	entries    map[string][]models.MemoryEntry
	maxEntries int
}

func NewLocalStore(maxEntries int) *LocalStore {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &LocalStore{
		entries:    make(map[string][]models.MemoryEntry),
		maxEntries: maxEntries,
	}
}

func (s *LocalStore) Provider() string { return "fallback" }

func (s *LocalStore) Structured() bool { return true }

func (s *LocalStore) Add(_ context.Context, entry models.MemoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append(s.entries[entry.UserID], entry)
	if len(entries) > s.maxEntries {
		entries = append([]models.MemoryEntry(nil), entries[len(entries)-s.maxEntries:]...)
	}
	s.entries[entry.UserID] = entries
	return nil
}

// Search has no notion of relevance and returns the newest entries.
func (s *LocalStore) Search(_ context.Context, userID, _ string, limit int) ([]models.MemoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.entries[userID]
	if len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return append([]models.MemoryEntry(nil), entries...), nil
}

func (s *LocalStore) All(_ context.Context, userID string) ([]models.MemoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]models.MemoryEntry(nil), s.entries[userID]...), nil
}

func (s *LocalStore) Clear(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, userID)
	return nil
}

func (s *LocalStore) Counts(_ context.Context) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, entries := range s.entries {
		total += len(entries)
	}
	return len(s.entries), total, nil
}
