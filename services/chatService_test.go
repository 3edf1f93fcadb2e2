package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"toolfinder/models"
	"toolfinder/services/catalog"
	"toolfinder/services/classifier"
	"toolfinder/services/memory"
)

func newTestChatService(t *testing.T) (*ChatService, *AnalyticsService, *memory.Gateway) {
	t.Helper()
	tools := catalog.MustLoad()
	cls := classifier.NewClassifier(tools, classifier.NewAnalyzer(nil), classifier.NewComposerFromSeed(7))
	gateway := memory.NewGateway(memory.NewLocalStore(memory.DefaultMaxEntries), memory.DefaultContextLimit)
	analytics := NewAnalyticsService()

	service := NewChatService(cls, gateway, analytics)
	service.now = func() time.Time { return time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC) }
	return service, analytics, gateway
}

func TestChatServiceProcess(t *testing.T) {
	ctx := context.Background()
	service, analytics, gateway := newTestChatService(t)

	result, err := service.Process(ctx, &models.ChatRequest{
		Query:  "My students seem bored during class",
		UserID: "teacher-1",
	})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if result.UserID != "teacher-1" {
		t.Errorf("UserID = %q, expected teacher-1", result.UserID)
	}
	if result.QueryType != models.QueryContentCreation {
		t.Errorf("QueryType = %q, expected %q", result.QueryType, models.QueryContentCreation)
	}
	if len(result.Recommendations) == 0 {
		t.Fatal("Recommendations is empty")
	}
	if result.Recommendations[0].Name != "Drag & Drop Builder" {
		t.Errorf("Recommendations[0] = %q, expected Drag & Drop Builder", result.Recommendations[0].Name)
	}
	if !strings.Contains(result.ResponseText, "Drag & Drop Builder") {
		t.Errorf("ResponseText does not mention the top tool: %q", result.ResponseText)
	}
	if result.ConfidenceScore < 0 || result.ConfidenceScore > 1 {
		t.Errorf("ConfidenceScore = %v, expected within [0, 1]", result.ConfidenceScore)
	}
	if result.Timestamp != "2025-05-01T12:00:00Z" {
		t.Errorf("Timestamp = %q", result.Timestamp)
	}
	if result.HasContext {
		t.Error("HasContext = true on first request, expected false")
	}

	stats := gateway.Stats(ctx)
	if stats.TotalInteractions == nil || *stats.TotalInteractions != 1 {
		t.Errorf("stored interactions = %v, expected 1", stats.TotalInteractions)
	}

	second, err := service.Process(ctx, &models.ChatRequest{
		Query:  "I need a quiz for my class",
		UserID: "teacher-1",
	})
	if err != nil {
		t.Fatalf("Process() second request error = %v", err)
	}
	if !second.HasContext {
		t.Error("HasContext = false on second request, expected true")
	}

	snapshot := analytics.Snapshot(ctx, nil, nil)
	if snapshot.TotalRequests != 2 || snapshot.SuccessfulQueries != 2 || snapshot.FailedQueries != 0 {
		t.Errorf("analytics = %+v", snapshot)
	}
}

func TestChatServiceEmptyQuery(t *testing.T) {
	ctx := context.Background()
	service, analytics, _ := newTestChatService(t)

	tests := []struct {
		name string
		req  *models.ChatRequest
	}{
		{name: "nil request", req: nil},
		{name: "empty query", req: &models.ChatRequest{Query: ""}},
		{name: "whitespace query", req: &models.ChatRequest{Query: "   \t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Process(ctx, tt.req)
			if !errors.Is(err, ErrEmptyQuery) {
				t.Errorf("Process() error = %v, expected ErrEmptyQuery", err)
			}
		})
	}

	snapshot := analytics.Snapshot(ctx, nil, nil)
	if snapshot.TotalRequests != 3 || snapshot.FailedQueries != 3 {
		t.Errorf("analytics = %+v, expected 3 failed requests", snapshot)
	}
}

func TestResolveUserID(t *testing.T) {
	service, _, _ := newTestChatService(t)
	timestamp := int64(1700000000)

	tests := []struct {
		name     string
		req      *models.ChatRequest
		expected string
	}{
		{name: "explicit user", req: &models.ChatRequest{UserID: "teacher-9", Timestamp: &timestamp}, expected: "teacher-9"},
		{name: "request timestamp", req: &models.ChatRequest{Timestamp: &timestamp}, expected: "anonymous_1700000000"},
		{name: "current time", req: &models.ChatRequest{}, expected: "anonymous_1746100800"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.resolveUserID(tt.req)
			if result != tt.expected {
				t.Errorf("resolveUserID() = %q, expected %q", result, tt.expected)
			}
		})
	}
}

func TestAnnotate(t *testing.T) {
	tools := []models.PersonalizedTool{
		{
			ToolRecommendation:     models.ToolRecommendation{Name: "Quiz Generator", Description: "Creates quizzes"},
			PersonalizationScore:   1.5,
			PersonalizationReasons: []string{"You've used this tool before", "You frequently work with assessment tools"},
		},
		{
			ToolRecommendation: models.ToolRecommendation{Name: "Lesson Planner", Description: "Plans lessons"},
		},
	}

	result := annotate(tools)

	expected := "Creates quizzes (Personalized: You've used this tool before, You frequently work with assessment tools)"
	if result[0].Description != expected {
		t.Errorf("annotate()[0].Description = %q, expected %q", result[0].Description, expected)
	}
	if result[1].Description != "Plans lessons" {
		t.Errorf("annotate()[1].Description = %q, expected unchanged", result[1].Description)
	}
}
