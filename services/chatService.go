package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"toolfinder/models"
	"toolfinder/services/classifier"
	"toolfinder/services/memory"

	"github.com/samber/lo"
)

var ErrEmptyQuery = errors.New("query cannot be empty")

type ChatService struct {
	classifier *classifier.Classifier
	memory     *memory.Gateway
	analytics  *AnalyticsService
	now        func() time.Time
}

func NewChatService(classifier *classifier.Classifier, memory *memory.Gateway, analytics *AnalyticsService) *ChatService {
	return &ChatService{
		classifier: classifier,
		memory:     memory,
		analytics:  analytics,
		now:        time.Now,
	}
}

// Process answers one chat request: it reads the user's memory, classifies
// the query, personalizes the recommendations and remembers the interaction.
// Memory failures only cost personalization.
func (s *ChatService) Process(ctx context.Context, req *models.ChatRequest) (*models.ChatResult, error) {
	s.analytics.IncrementRequests()

	if req == nil || strings.TrimSpace(req.Query) == "" {
		log.Printf("[ERROR] Chat request validation failed: %v", ErrEmptyQuery)
		s.analytics.IncrementFailed()
		return nil, ErrEmptyQuery
	}

	userID := s.resolveUserID(req)
	if req.Timestamp != nil {
		log.Printf("[INFO] Starting query processing for user %s: %s (timestamp: %d)", userID, truncate(req.Query, 100), *req.Timestamp)
	} else {
		log.Printf("[INFO] Starting query processing for user %s: %s", userID, truncate(req.Query, 100))
	}

	contextResult := s.memory.GetUserContext(ctx, userID, req.Query)
	if contextResult.Status != models.StatusSuccess {
		log.Printf("[WARN] Failed to retrieve user context: %v", contextResult.Err)
	}
	userCtx := contextResult.Context

	intent, analysis := s.classifier.Classify(ctx, req.Query, &userCtx)
	if analysis.Status == models.StatusDegraded {
		log.Printf("[WARN] Using keyword analysis for user %s: %v", userID, analysis.Err)
	}

	recommendations := lo.Map(intent.PrimaryTools, func(tool models.ToolRecord, _ int) models.ToolRecommendation {
		return models.NewToolRecommendation(tool)
	})
	if userCtx.HasContext && len(intent.PrimaryTools) > 0 {
		personalized, status := s.memory.PersonalizeRecommendations(ctx, userID, req.Query, intent.PrimaryTools)
		if status == models.StatusSuccess {
			recommendations = annotate(personalized)
		} else {
			log.Printf("[WARN] Failed to personalize recommendations for user %s", userID)
		}
	}

	s.analytics.IncrementSuccessful()

	result := &models.ChatResult{
		ChatResponse: models.ChatResponse{
			ResponseText: intent.SuggestedResponse,
			Timestamp:    s.now().Format(time.RFC3339),
		},
		UserID:          userID,
		QueryType:       intent.QueryType,
		ConfidenceScore: intent.ConfidenceScore,
		Recommendations: recommendations,
		Alternatives: lo.Map(intent.SecondaryTools, func(tool models.ToolRecord, _ int) models.ToolRecommendation {
			return models.NewToolRecommendation(tool)
		}),
		HasContext: userCtx.HasContext,
	}

	stored := s.memory.StoreInteraction(ctx, userID, req.Query, models.Interaction{
		QueryType:       intent.QueryType,
		ConfidenceScore: intent.ConfidenceScore,
		Recommendations: lo.Map(recommendations, func(rec models.ToolRecommendation, _ int) string {
			return rec.Name
		}),
		Reasoning: intent.Reasoning,
	})
	if stored.Status != models.StatusSuccess {
		log.Printf("[WARN] Failed to store interaction for user %s: %v", userID, stored.Err)
	}

	log.Printf("[INFO] Successfully processed query for user %s: type=%s, recommendations=%d",
		userID, intent.QueryType, len(recommendations))
	return result, nil
}

func (s *ChatService) resolveUserID(req *models.ChatRequest) string {
	if req.UserID != "" {
		return req.UserID
	}
	timestamp := s.now().Unix()
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}
	return fmt.Sprintf("anonymous_%d", timestamp)
}

// annotate appends each tool's personalization reasons to its description.
func annotate(tools []models.PersonalizedTool) []models.ToolRecommendation {
	return lo.Map(tools, func(tool models.PersonalizedTool, _ int) models.ToolRecommendation {
		rec := tool.ToolRecommendation
		if len(tool.PersonalizationReasons) > 0 {
			rec.Description += fmt.Sprintf(" (Personalized: %s)", strings.Join(tool.PersonalizationReasons, ", "))
		}
		return rec
	})
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
