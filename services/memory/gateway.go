// Package memory remembers what teachers tell the assistant and turns it into
// personalization context. Failures of the backing store are logged and
// reported through a status, never returned to the chat flow as errors.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"toolfinder/models"

	"github.com/google/uuid"
)

type StoreResult struct {
	Stored bool
	Reason string
	Status models.ResultStatus
	Err    error
}

type ContextResult struct {
	Context models.UserContext
	Status  models.ResultStatus
	Err     error
}

type InsightsResult struct {
	Insights models.UserInsights
	Status   models.ResultStatus
	Err      error
}

type OpResult struct {
	Status models.ResultStatus
	Err    error
}

// Gateway is the single entry point to per-user memory.
type Gateway struct {
	store        Store
	contextLimit int
	now          func() time.Time
}

func NewGateway(store Store, contextLimit int) *Gateway {
	if contextLimit <= 0 {
		contextLimit = DefaultContextLimit
	}
	return &Gateway{store: store, contextLimit: contextLimit, now: time.Now}
}

func (g *Gateway) Provider() string {
	return g.store.Provider()
}

func (g *Gateway) newEntry(userID, memoryType string) models.MemoryEntry {
	return models.MemoryEntry{
		ID:        VectorIDPrefix(userID) + uuid.New().String(),
		UserID:    userID,
		Type:      memoryType,
		Timestamp: g.now().UTC(),
	}
}

// StoreInteraction remembers the interaction when it carries personal signal.
// Skipping is a success.
func (g *Gateway) StoreInteraction(ctx context.Context, userID, query string, interaction models.Interaction) StoreResult {
	should, reason := ShouldStore(query, interaction.ConfidenceScore)
	if !should {
		log.Printf("[INFO] Skipping memory storage for user %s: %s", userID, reason)
		return StoreResult{Stored: false, Reason: reason, Status: models.StatusSuccess}
	}

	entry := g.newEntry(userID, models.MemoryTypePersonalization)
	entry.Content = ExtractPersonalization(query, interaction)
	entry.QueryType = string(interaction.QueryType)
	if entry.QueryType == "" {
		entry.QueryType = "unknown"
	}
	entry.StoreReason = reason
	entry.ConfidenceScore = interaction.ConfidenceScore

	if err := g.store.Add(ctx, entry); err != nil {
		log.Printf("[ERROR] Failed to store interaction for user %s: %v", userID, err)
		return StoreResult{Stored: false, Reason: reason, Status: models.StatusFailed, Err: err}
	}

	log.Printf("[INFO] Stored personalization memory for user %s: %s", userID, reason)
	return StoreResult{Stored: true, Reason: reason, Status: models.StatusSuccess}
}

// GetUserContext rebuilds the user's context from the entries most relevant
// to query.
func (g *Gateway) GetUserContext(ctx context.Context, userID, query string) ContextResult {
	entries, err := g.store.Search(ctx, userID, query, g.contextLimit)
	if err != nil {
		log.Printf("[ERROR] Failed to retrieve context for user %s: %v", userID, err)
		return ContextResult{
			Context: models.UserContext{HasContext: false, Context: "Error retrieving context"},
			Status:  models.StatusFailed,
			Err:     err,
		}
	}

	userCtx := BuildUserContext(entries, g.store.Structured())
	log.Printf("[INFO] Retrieved context for user %s: %d memories, has_context: %t", userID, len(entries), userCtx.HasContext)
	return ContextResult{Context: userCtx, Status: models.StatusSuccess}
}

// PersonalizeRecommendations re-ranks tools using the user's context. When
// the context cannot be read every tool keeps the base score.
func (g *Gateway) PersonalizeRecommendations(ctx context.Context, userID, query string, tools []models.ToolRecord) ([]models.PersonalizedTool, models.ResultStatus) {
	result := g.GetUserContext(ctx, userID, query)
	personalized := Personalize(result.Context, tools)
	log.Printf("[INFO] Personalized %d recommendations for user %s", len(personalized), userID)
	return personalized, result.Status
}

func (g *Gateway) GetUserInsights(ctx context.Context, userID string) InsightsResult {
	entries, err := g.store.All(ctx, userID)
	if err != nil {
		log.Printf("[ERROR] Failed to get insights for user %s: %v", userID, err)
		return InsightsResult{
			Insights: models.UserInsights{TotalInteractions: 0, Insights: "Error retrieving insights"},
			Status:   models.StatusFailed,
			Err:      err,
		}
	}

	return InsightsResult{Insights: BuildInsights(entries, g.store.Structured()), Status: models.StatusSuccess}
}

// UpdatePreferences stores explicit preferences as their own entry.
func (g *Gateway) UpdatePreferences(ctx context.Context, userID string, preferences map[string]any) OpResult {
	data, err := json.Marshal(preferences)
	if err != nil {
		return OpResult{Status: models.StatusFailed, Err: fmt.Errorf("failed to marshal preferences: %w", err)}
	}

	entry := g.newEntry(userID, models.MemoryTypePreferences)
	entry.Content = "User preferences updated: " + string(data)
	entry.Preferences = preferences

	if err := g.store.Add(ctx, entry); err != nil {
		log.Printf("[ERROR] Failed to update preferences for user %s: %v", userID, err)
		return OpResult{Status: models.StatusFailed, Err: err}
	}

	log.Printf("[INFO] Updated preferences for user %s", userID)
	return OpResult{Status: models.StatusSuccess}
}

func (g *Gateway) ClearUserMemory(ctx context.Context, userID string) OpResult {
	if err := g.store.Clear(ctx, userID); err != nil {
		log.Printf("[ERROR] Failed to clear memory for user %s: %v", userID, err)
		return OpResult{Status: models.StatusFailed, Err: err}
	}

	log.Printf("[INFO] Cleared memory for user %s", userID)
	return OpResult{Status: models.StatusSuccess}
}

// Stats reports totals for stores that can count them and a short
// description otherwise.
func (g *Gateway) Stats(ctx context.Context) models.MemoryStats {
	provider := g.store.Provider()

	counter, ok := g.store.(Counter)
	if !ok {
		return models.MemoryStats{
			Status:   "active",
			Provider: provider,
			Message:  fmt.Sprintf("Memory service is running with %s integration", provider),
		}
	}

	users, entries, err := counter.Counts(ctx)
	if err != nil {
		log.Printf("[ERROR] Failed to get memory stats: %v", err)
		return models.MemoryStats{Status: "error", Provider: provider, Message: err.Error()}
	}

	return models.MemoryStats{
		Status:            "active",
		Provider:          provider,
		TotalUsers:        &users,
		TotalInteractions: &entries,
		Message:           fmt.Sprintf("Memory service is running with %s storage", provider),
	}
}
