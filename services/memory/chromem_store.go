package memory

import (
	"context"
	"fmt"
	"log"
	"sync"

	"toolfinder/models"

	"github.com/philippgille/chromem-go"
)

const chromemCollection = "memories"

// ChromemStore is a local vector store. Entries are embedded on write and
// searched by similarity within the user's documents.
type ChromemStore struct {
	mu         sync.Mutex
	collection *chromem.Collection
	maxEntries int
}

// NewChromemStore opens a persistent database at path, or an in-process one
// when path is empty.
func NewChromemStore(path string, embed EmbedFunc, maxEntries int) (*ChromemStore, error) {
	var db *chromem.DB
	if path != "" {
		var err error
		db, err = chromem.NewPersistentDB(path, false)
		if err != nil {
			return nil, fmt.Errorf("failed to open chromem database: %w", err)
		}
	} else {
		db = chromem.NewDB()
	}

	collection, err := db.GetOrCreateCollection(chromemCollection, nil, chromem.EmbeddingFunc(embed))
	if err != nil {
		return nil, fmt.Errorf("failed to create chromem collection: %w", err)
	}

	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	return &ChromemStore{collection: collection, maxEntries: maxEntries}, nil
}

func (s *ChromemStore) Provider() string { return "chromem" }

func (s *ChromemStore) Structured() bool { return false }

func (s *ChromemStore) Add(ctx context.Context, entry models.MemoryEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.collection.AddDocument(ctx, chromem.Document{
		ID:       entry.ID,
		Content:  entry.Content,
		Metadata: entryMetadata(entry),
	})
	if err != nil {
		return fmt.Errorf("failed to add memory document: %w", err)
	}

	entries, err := s.query(ctx, entry.UserID, listAllQuery, s.collection.Count())
	if err != nil {
		return err
	}
	if len(entries) <= s.maxEntries {
		return nil
	}

	sortByTimestamp(entries)
	stale := make([]string, 0, len(entries)-s.maxEntries)
	for _, e := range entries[:len(entries)-s.maxEntries] {
		stale = append(stale, e.ID)
	}
	log.Printf("[INFO] Dropping %d old memories for user %s", len(stale), entry.UserID)
	if err := s.collection.Delete(ctx, nil, nil, stale...); err != nil {
		return fmt.Errorf("failed to trim memory documents: %w", err)
	}

	return nil
}

func (s *ChromemStore) Search(ctx context.Context, userID, query string, limit int) ([]models.MemoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if query == "" {
		query = listAllQuery
	}
	return s.query(ctx, userID, query, limit)
}

func (s *ChromemStore) All(ctx context.Context, userID string) ([]models.MemoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.query(ctx, userID, listAllQuery, s.maxEntries)
	if err != nil {
		return nil, err
	}
	sortByTimestamp(entries)
	return entries, nil
}

func (s *ChromemStore) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.collection.Delete(ctx, map[string]string{"user_id": userID}, nil); err != nil {
		return fmt.Errorf("failed to delete memory documents: %w", err)
	}
	return nil
}

// query caps nResults at the collection size, which chromem requires.
func (s *ChromemStore) query(ctx context.Context, userID, text string, limit int) ([]models.MemoryEntry, error) {
	n := min(limit, s.collection.Count())
	if n <= 0 {
		return []models.MemoryEntry{}, nil
	}

	results, err := s.collection.Query(ctx, text, n, map[string]string{"user_id": userID}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query memory documents: %w", err)
	}

	entries := make([]models.MemoryEntry, 0, len(results))
	for _, result := range results {
		entries = append(entries, entryFromMetadata(result.ID, result.Content, result.Metadata))
	}
	return entries, nil
}
