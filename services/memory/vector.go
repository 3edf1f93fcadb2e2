package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"toolfinder/models"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

// Used as the search text when a vector store must list everything a user has.
const listAllQuery = "teacher preferences, teaching context and tool feedback"

// EmbedFunc turns text into an embedding vector.
type EmbedFunc func(ctx context.Context, text string) ([]float32, error)

// NewOpenAIEmbedder returns a langchaingo embedder backed by OpenAI embeddings.
func NewOpenAIEmbedder(apiKey string) (embeddings.Embedder, error) {
	llm, err := openai.New(
		openai.WithToken(apiKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	return embedder, nil
}

// EmbedderFunc adapts a langchaingo embedder to an EmbedFunc.
func EmbedderFunc(embedder embeddings.Embedder) EmbedFunc {
	return func(ctx context.Context, text string) ([]float32, error) {
		return embedder.EmbedQuery(ctx, text)
	}
}

func entryMetadata(entry models.MemoryEntry) map[string]string {
	metadata := map[string]string{
		"user_id":          entry.UserID,
		"type":             entry.Type,
		"timestamp":        entry.Timestamp.UTC().Format(time.RFC3339Nano),
		"query_type":       entry.QueryType,
		"store_reason":     entry.StoreReason,
		"confidence_score": strconv.FormatFloat(entry.ConfidenceScore, 'f', -1, 64),
	}
	if len(entry.Preferences) > 0 {
		if data, err := json.Marshal(entry.Preferences); err == nil {
			metadata["preferences"] = string(data)
		}
	}
	return metadata
}

func entryFromMetadata(id, content string, metadata map[string]string) models.MemoryEntry {
	entry := models.MemoryEntry{
		ID:          id,
		UserID:      metadata["user_id"],
		Type:        metadata["type"],
		Content:     content,
		QueryType:   metadata["query_type"],
		StoreReason: metadata["store_reason"],
	}
	if ts, err := time.Parse(time.RFC3339Nano, metadata["timestamp"]); err == nil {
		entry.Timestamp = ts
	}
	if score, err := strconv.ParseFloat(metadata["confidence_score"], 64); err == nil {
		entry.ConfidenceScore = score
	}
	if prefs := metadata["preferences"]; prefs != "" {
		_ = json.Unmarshal([]byte(prefs), &entry.Preferences)
	}
	return entry
}

func sortByTimestamp(entries []models.MemoryEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
}
