package memory

import (
	"context"

	"toolfinder/db"
	"toolfinder/models"
)

// SQLStore keeps entries in Postgres or SQLite through the memory repository.
type SQLStore struct {
	repo       db.MemoryRepository
	provider   string
	maxEntries int
}

func NewSQLStore(repo db.MemoryRepository, provider string, maxEntries int) *SQLStore {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &SQLStore{repo: repo, provider: provider, maxEntries: maxEntries}
}

func (s *SQLStore) Provider() string { return s.provider }

func (s *SQLStore) Structured() bool { return true }

func (s *SQLStore) Add(ctx context.Context, entry models.MemoryEntry) error {
	return s.repo.AddEntry(ctx, entry, s.maxEntries)
}

func (s *SQLStore) Search(ctx context.Context, userID, _ string, limit int) ([]models.MemoryEntry, error) {
	return s.repo.RecentEntries(ctx, userID, limit)
}

func (s *SQLStore) All(ctx context.Context, userID string) ([]models.MemoryEntry, error) {
	return s.repo.AllEntries(ctx, userID)
}

func (s *SQLStore) Clear(ctx context.Context, userID string) error {
	return s.repo.DeleteUser(ctx, userID)
}

func (s *SQLStore) Counts(ctx context.Context) (int, int, error) {
	return s.repo.Counts(ctx)
}

func (s *SQLStore) Close() error {
	return s.repo.Close()
}
