package memory

import (
	"math"
	"slices"
	"testing"

	"toolfinder/models"
)

func TestBuildUserContextEmpty(t *testing.T) {
	for _, structured := range []bool{true, false} {
		result := BuildUserContext(nil, structured)
		if result.HasContext {
			t.Errorf("BuildUserContext(nil, %v).HasContext = true, expected false", structured)
		}
		if result.Context != noContextMessage {
			t.Errorf("BuildUserContext(nil, %v).Context = %q, expected %q", structured, result.Context, noContextMessage)
		}
	}
}

func TestBuildUserContextFromMarkers(t *testing.T) {
	content := ExtractPersonalization("I always use group work for my 5th grade math class", models.Interaction{
		QueryType:       models.QueryContentCreation,
		ConfidenceScore: 0.9,
		Recommendations: []string{"Worksheet Generator", "Quiz Generator"},
	})
	entries := []models.MemoryEntry{
		{Content: content},
		{Content: "Grade level: elementary"},
		{Content: "User preferences updated: {\"style\":\"visual\"}"},
	}

	result := BuildUserContext(entries, false)

	expectedQueries := []string{
		"I always use group work for my 5th grade math class",
		"I always use group work for my 5th grade math class",
		"User preferences updated: {\"style\":\"visual\"}",
	}
	if !slices.Equal(result.PreviousQueries, expectedQueries) {
		t.Errorf("PreviousQueries = %v, expected %v", result.PreviousQueries, expectedQueries)
	}
	if !slices.Equal(result.RecentTools, []string{"Worksheet Generator", "Quiz Generator"}) {
		t.Errorf("RecentTools = %v", result.RecentTools)
	}
	if !slices.Equal(result.FrequentCategories, []string{"math", "elementary"}) {
		t.Errorf("FrequentCategories = %v", result.FrequentCategories)
	}
	expectedPatterns := []string{
		"Frequently asks about math related topics",
		"Has used 2 different tools recently",
	}
	if !slices.Equal(result.TeachingPatterns, expectedPatterns) {
		t.Errorf("TeachingPatterns = %v, expected %v", result.TeachingPatterns, expectedPatterns)
	}
	if !result.HasContext {
		t.Error("HasContext = false, expected true")
	}
}

func TestBuildUserContextStructured(t *testing.T) {
	entries := []models.MemoryEntry{
		{Type: models.MemoryTypePersonalization, Content: "first", QueryType: "ASSESSMENT", StoreReason: "storing_for: user_preferences"},
		{Type: models.MemoryTypePreferences, Content: "User preferences updated: {}"},
		{Type: models.MemoryTypePersonalization, Content: "second", QueryType: "ASSESSMENT", StoreReason: "storing_for: tool_feedback"},
		{Type: models.MemoryTypePersonalization, Content: "third", QueryType: "VISUAL_CONTENT"},
		{Type: models.MemoryTypePersonalization, Content: "fourth", QueryType: "COMMUNICATION"},
		{Type: models.MemoryTypePersonalization, Content: "fifth", QueryType: "GENERAL_PLANNING"},
	}

	result := BuildUserContext(entries, true)

	if !slices.Equal(result.PreviousQueries, []string{"first", "second", "third"}) {
		t.Errorf("PreviousQueries = %v", result.PreviousQueries)
	}
	if !slices.Equal(result.FrequentCategories, []string{"ASSESSMENT", "VISUAL_CONTENT", "COMMUNICATION"}) {
		t.Errorf("FrequentCategories = %v", result.FrequentCategories)
	}
	if len(result.RecentTools) != 0 {
		t.Errorf("RecentTools = %v, expected none", result.RecentTools)
	}
	if len(result.TeachingPatterns) != 2 || result.TeachingPatterns[0] != "Frequently asks about assessment related topics" {
		t.Errorf("TeachingPatterns = %v", result.TeachingPatterns)
	}
}

func TestBuildUserContextReasonPatterns(t *testing.T) {
	entries := []models.MemoryEntry{
		{Type: models.MemoryTypePersonalization, StoreReason: "storing_for: user_preferences, subject_context"},
	}

	result := BuildUserContext(entries, true)

	expected := []string{"Has expressed preferences", "Subject-specific teacher"}
	if !slices.Equal(result.TeachingPatterns, expected) {
		t.Errorf("TeachingPatterns = %v, expected %v", result.TeachingPatterns, expected)
	}
	if !result.HasContext {
		t.Error("HasContext = false, expected true")
	}
}

func TestPersonalize(t *testing.T) {
	tools := []models.ToolRecord{
		{Name: "Lesson Planner", Category: "Planning"},
		{Name: "Rubric Generator", Category: "Assessment"},
		{Name: "Quiz Generator", Category: "Assessment"},
	}

	t.Run("boosts history", func(t *testing.T) {
		userCtx := models.UserContext{
			HasContext:         true,
			RecentTools:        []string{"Quiz Generator"},
			FrequentCategories: []string{"Assessment"},
		}

		result := Personalize(userCtx, tools)

		names := make([]string, len(result))
		for i, tool := range result {
			names[i] = tool.Name
		}
		if !slices.Equal(names, []string{"Quiz Generator", "Rubric Generator", "Lesson Planner"}) {
			t.Fatalf("Personalize() order = %v", names)
		}

		expectedScores := []float64{1.5, 1.2, 1.0}
		for i, score := range expectedScores {
			if math.Abs(result[i].PersonalizationScore-score) > 1e-9 {
				t.Errorf("%s score = %v, expected %v", result[i].Name, result[i].PersonalizationScore, score)
			}
		}

		expectedReasons := []string{"You've used this tool before", "You frequently work with assessment tools"}
		if !slices.Equal(result[0].PersonalizationReasons, expectedReasons) {
			t.Errorf("reasons = %v, expected %v", result[0].PersonalizationReasons, expectedReasons)
		}
	})

	t.Run("no history keeps order", func(t *testing.T) {
		result := Personalize(models.UserContext{HasContext: false, RecentTools: []string{"Quiz Generator"}}, tools)

		for i, tool := range result {
			if tool.Name != tools[i].Name {
				t.Errorf("Personalize()[%d] = %s, expected %s", i, tool.Name, tools[i].Name)
			}
			if tool.PersonalizationScore != 1.0 || len(tool.PersonalizationReasons) != 0 {
				t.Errorf("%s = (%v, %v), expected base score without reasons",
					tool.Name, tool.PersonalizationScore, tool.PersonalizationReasons)
			}
		}
	})
}

func TestMostCommon(t *testing.T) {
	tests := []struct {
		name     string
		values   []string
		expected string
	}{
		{name: "single", values: []string{"a"}, expected: "a"},
		{name: "majority", values: []string{"a", "b", "b"}, expected: "b"},
		{name: "tie keeps first seen", values: []string{"b", "a", "a", "b"}, expected: "b"},
		{name: "empty", values: nil, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := mostCommon(tt.values)
			if result != tt.expected {
				t.Errorf("mostCommon(%v) = %q, expected %q", tt.values, result, tt.expected)
			}
		})
	}
}

func TestBuildInsights(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		result := BuildInsights(nil, true)
		if result.TotalInteractions != 0 || result.Insights != noHistoryMessage {
			t.Errorf("BuildInsights(nil) = %+v", result)
		}
	})

	t.Run("structured", func(t *testing.T) {
		entries := []models.MemoryEntry{
			{
				QueryType:   "ASSESSMENT",
				StoreReason: "storing_for: user_preferences, teaching_style, subject_context",
				Content:     "Successfully recommended: Quiz Generator, Rubric Generator for ASSESSMENT needs",
			},
			{
				QueryType:   "ASSESSMENT",
				StoreReason: "storing_for: user_preferences",
				Content:     "Tool feedback: my students love it. Successfully recommended: Quiz Generator for ASSESSMENT needs",
			},
			{QueryType: "VISUAL_CONTENT"},
		}

		result := BuildInsights(entries, true)

		if result.TotalInteractions != 3 {
			t.Errorf("TotalInteractions = %d, expected 3", result.TotalInteractions)
		}
		if result.MostCommonCategory != "ASSESSMENT" {
			t.Errorf("MostCommonCategory = %q, expected ASSESSMENT", result.MostCommonCategory)
		}
		if result.TeachingStyle != "Assessment Focused - You prioritize evaluation" {
			t.Errorf("TeachingStyle = %q", result.TeachingStyle)
		}
		expectedTools := []models.FavoriteTool{{Name: "Quiz Generator", Count: 2}, {Name: "Rubric Generator", Count: 1}}
		if !slices.Equal(result.FavoriteTools, expectedTools) {
			t.Errorf("FavoriteTools = %v, expected %v", result.FavoriteTools, expectedTools)
		}
		expectedFocus := []string{"Preference-based personalization", "Subject-specific customization", "Teaching style adaptation"}
		if !slices.Equal(result.PersonalizationFocus, expectedFocus) {
			t.Errorf("PersonalizationFocus = %v, expected %v", result.PersonalizationFocus, expectedFocus)
		}
		if result.PrimarySubject != unknown || result.GradeLevel != unknown {
			t.Errorf("subject/grade = %q/%q, expected Unknown", result.PrimarySubject, result.GradeLevel)
		}
		if result.ActivitySummary != "You have 3 personalization memories stored" {
			t.Errorf("ActivitySummary = %q", result.ActivitySummary)
		}
	})

	styles := []struct {
		name     string
		contents []string
		expected string
	}{
		{
			name:     "content creator",
			contents: []string{"Successfully recommended: Worksheet Generator for CONTENT_CREATION needs"},
			expected: "Content Creator - You love creating materials",
		},
		{
			name:     "asked about assessment",
			contents: []string{"User asked about ASSESSMENT tools"},
			expected: "Assessment Focused - You prioritize evaluation",
		},
		{
			name:     "planner",
			contents: []string{"User asked about GENERAL_PLANNING tools"},
			expected: "Strategic Planner - You focus on organization",
		},
		{
			name:     "preferences",
			contents: []string{"User preference: I prefer visual aids. Subject focus: science"},
			expected: "Preference-Driven - You have clear teaching preferences",
		},
		{
			name:     "subject specialist",
			contents: []string{"Subject focus: history", "Subject focus: history. Grade level: high school", "Subject focus: art"},
			expected: "Subject Specialist - Focused on history",
		},
		{
			name:     "balanced",
			contents: []string{"User preferences updated: {}"},
			expected: "Balanced Educator - You use varied approaches",
		},
	}

	for _, tt := range styles {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]models.MemoryEntry, len(tt.contents))
			for i, content := range tt.contents {
				entries[i] = models.MemoryEntry{Content: content}
			}

			result := BuildInsights(entries, false)
			if result.TeachingStyle != tt.expected {
				t.Errorf("TeachingStyle = %q, expected %q", result.TeachingStyle, tt.expected)
			}
		})
	}

	t.Run("vector aggregates", func(t *testing.T) {
		entries := []models.MemoryEntry{
			{Content: "User preference: I prefer visual aids. Subject focus: science. Grade level: elementary"},
			{Content: "Subject focus: science. Grade level: middle school"},
			{Content: "Grade level: middle school"},
		}

		result := BuildInsights(entries, false)

		if result.PrimarySubject != "science" {
			t.Errorf("PrimarySubject = %q, expected science", result.PrimarySubject)
		}
		if result.GradeLevel != "middle school" {
			t.Errorf("GradeLevel = %q, expected middle school", result.GradeLevel)
		}
		if !slices.Equal(result.UserPreferences, []string{"I prefer visual aids"}) {
			t.Errorf("UserPreferences = %v", result.UserPreferences)
		}
		if result.MostCommonCategory != unknown {
			t.Errorf("MostCommonCategory = %q, expected Unknown", result.MostCommonCategory)
		}
	})
}

// Text without any marker is still returned verbatim, so a vector store hit
// that carries no personalization data still counts as context.
func TestBuildUserContextUnmarkedText(t *testing.T) {
	long := "Remember that the science fair is next week and the room needs rearranging before the parents arrive on Thursday"
	result := BuildUserContext([]models.MemoryEntry{{Content: long}}, false)

	if !result.HasContext {
		t.Error("HasContext = false, expected true for unmarked text")
	}
	if len(result.PreviousQueries) != 1 || result.PreviousQueries[0] != truncate(long, 100) {
		t.Errorf("PreviousQueries = %v, expected the first 100 characters", result.PreviousQueries)
	}
	if len(result.FrequentCategories) != 0 || len(result.RecentTools) != 0 {
		t.Errorf("unexpected derived fields: categories=%v tools=%v", result.FrequentCategories, result.RecentTools)
	}
}
