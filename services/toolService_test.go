package services

import (
	"context"
	"errors"
	"testing"

	"toolfinder/models"
	"toolfinder/services/catalog"
)

func TestToolSearchScore(t *testing.T) {
	tool := models.ToolRecord{
		Name:        "Quiz Generator",
		Description: "Creates quizzes and tests for student assessment",
		Keywords:    []string{"quiz", "assessment", "test"},
	}

	tests := []struct {
		name     string
		terms    []string
		expected int
	}{
		{name: "name match", terms: []string{"quiz"}, expected: 3},
		{name: "keyword match", terms: []string{"assessment"}, expected: 2},
		{name: "description match", terms: []string{"student"}, expected: 1},
		{name: "dropped letter", terms: []string{"genrator"}, expected: 1},
		{name: "one substitution", terms: []string{"quix"}, expected: 1},
		{name: "multiple terms add up", terms: []string{"quiz", "assessment"}, expected: 5},
		{name: "no match", terms: []string{"history"}, expected: 0},
		{name: "empty terms", terms: []string{}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toolSearchScore(tool, tt.terms)
			if result != tt.expected {
				t.Errorf("toolSearchScore() = %d, expected %d for terms: %v", result, tt.expected, tt.terms)
			}
		})
	}
}

func TestSearchTools(t *testing.T) {
	service := NewToolService(catalog.MustLoad())

	tests := []struct {
		name          string
		query         string
		expectedFirst string
		expectedCount int
	}{
		{name: "exact name", query: "quiz", expectedFirst: "Quiz Generator", expectedCount: -1},
		{name: "typo", query: "flashcrd", expectedFirst: "Flashcard Generator", expectedCount: -1},
		{name: "case insensitive", query: "PODCAST", expectedFirst: "Podcast Generator", expectedCount: -1},
		{name: "no matches", query: "blockchain", expectedCount: 0},
		{name: "empty query returns all", query: "  ", expectedFirst: "Curriculum Planning Agent", expectedCount: 38},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.SearchTools(tt.query)
			if tt.expectedCount >= 0 && len(result) != tt.expectedCount {
				t.Fatalf("SearchTools(%q) returned %d tools, expected %d", tt.query, len(result), tt.expectedCount)
			}
			if tt.expectedFirst != "" {
				if len(result) == 0 {
					t.Fatalf("SearchTools(%q) returned no tools", tt.query)
				}
				if result[0].Name != tt.expectedFirst {
					t.Errorf("SearchTools(%q)[0] = %q, expected %q", tt.query, result[0].Name, tt.expectedFirst)
				}
			}
		})
	}
}

func TestGetCategories(t *testing.T) {
	service := NewToolService(catalog.MustLoad())

	result := service.GetCategories()

	if result.TotalTools != 38 {
		t.Errorf("TotalTools = %d, expected 38", result.TotalTools)
	}
	sum := 0
	for _, count := range result.Categories {
		sum += count
	}
	if sum != result.TotalTools {
		t.Errorf("category counts sum to %d, expected %d", sum, result.TotalTools)
	}
	if result.Categories["Assessment"] != 5 {
		t.Errorf("Assessment count = %d, expected 5", result.Categories["Assessment"])
	}
}

func TestGetToolsByCategory(t *testing.T) {
	service := NewToolService(catalog.MustLoad())

	tools, err := service.GetToolsByCategory("Planning")
	if err != nil {
		t.Fatalf("GetToolsByCategory(Planning) error = %v", err)
	}
	if len(tools) != 3 {
		t.Errorf("GetToolsByCategory(Planning) returned %d tools, expected 3", len(tools))
	}

	_, err = service.GetToolsByCategory("planning")
	if !errors.Is(err, ErrNoToolsFound) {
		t.Errorf("GetToolsByCategory(planning) error = %v, expected ErrNoToolsFound", err)
	}
}

type stubStats struct{}

func (stubStats) Stats(context.Context) models.MemoryStats {
	return models.MemoryStats{Status: "active", Provider: "fallback"}
}

func TestAnalyticsSnapshot(t *testing.T) {
	ctx := context.Background()
	analytics := NewAnalyticsService()
	tools := NewToolService(catalog.MustLoad())

	empty := analytics.Snapshot(ctx, tools, stubStats{})
	if empty.TotalRequests != 0 || empty.SuccessRate != 0 {
		t.Errorf("Snapshot() before requests = %+v", empty)
	}

	for i := 0; i < 4; i++ {
		analytics.IncrementRequests()
	}
	for i := 0; i < 3; i++ {
		analytics.IncrementSuccessful()
	}
	analytics.IncrementFailed()

	snapshot := analytics.Snapshot(ctx, tools, stubStats{})

	if snapshot.TotalRequests != 4 || snapshot.SuccessfulQueries != 3 || snapshot.FailedQueries != 1 {
		t.Errorf("Snapshot() counters = %+v", snapshot)
	}
	if snapshot.SuccessRate != 75 {
		t.Errorf("SuccessRate = %v, expected 75", snapshot.SuccessRate)
	}
	if snapshot.TotalTools != 38 || snapshot.Categories != 8 {
		t.Errorf("TotalTools/Categories = %d/%d, expected 38/8", snapshot.TotalTools, snapshot.Categories)
	}
	if snapshot.MemoryService.Provider != "fallback" {
		t.Errorf("MemoryService = %+v", snapshot.MemoryService)
	}

	analytics.Reset()
	if reset := analytics.Snapshot(ctx, nil, nil); reset.TotalRequests != 0 || reset.FailedQueries != 0 {
		t.Errorf("Snapshot() after Reset = %+v", reset)
	}
}

// Benchmark test to ensure the fuzzy search performance is acceptable
func BenchmarkSearchTools(b *testing.B) {
	service := NewToolService(catalog.MustLoad())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		service.SearchTools("interactive quizes for assesment")
	}
}
