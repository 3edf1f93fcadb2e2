package models

import "time"

const (
	MemoryTypePersonalization = "personalization"
	MemoryTypePreferences     = "preferences"
)

type MemoryEntry struct {
	ID              string         `json:"id" db:"id"`
	UserID          string         `json:"user_id" db:"user_id"`
	Type            string         `json:"type" db:"memory_type"`
	Timestamp       time.Time      `json:"timestamp" db:"created_at"`
	Content         string         `json:"personalization_content,omitempty" db:"content"`
	QueryType       string         `json:"query_type,omitempty" db:"query_type"`
	StoreReason     string         `json:"store_reason,omitempty" db:"store_reason"`
	ConfidenceScore float64        `json:"confidence_score" db:"confidence_score"`
	Preferences     map[string]any `json:"preferences,omitempty" db:"preferences"`
}

// Interaction is the outcome of one chat request as seen by the memory layer.
type Interaction struct {
	QueryType       QueryType
	ConfidenceScore float64
	Recommendations []string
	Reasoning       string
}

type UserContext struct {
	HasContext         bool     `json:"has_context"`
	Context            string   `json:"context,omitempty"`
	PreviousQueries    []string `json:"previous_queries,omitempty"`
	FrequentCategories []string `json:"frequent_categories,omitempty"`
	RecentTools        []string `json:"recent_tools,omitempty"`
	TeachingPatterns   []string `json:"teaching_patterns,omitempty"`
}

type FavoriteTool struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type UserInsights struct {
	TotalInteractions    int            `json:"total_interactions"`
	Insights             string         `json:"insights,omitempty"`
	MostCommonCategory   string         `json:"most_common_category,omitempty"`
	FavoriteTools        []FavoriteTool `json:"favorite_tools,omitempty"`
	TeachingStyle        string         `json:"teaching_style,omitempty"`
	ActivitySummary      string         `json:"activity_summary,omitempty"`
	UserPreferences      []string       `json:"user_preferences,omitempty"`
	PrimarySubject       string         `json:"primary_subject,omitempty"`
	GradeLevel           string         `json:"grade_level,omitempty"`
	PersonalizationFocus []string       `json:"personalization_focus,omitempty"`
}

type PersonalizedTool struct {
	ToolRecommendation
	PersonalizationScore   float64  `json:"personalization_score"`
	PersonalizationReasons []string `json:"personalization_reasons"`
}

type MemoryStats struct {
	Status            string `json:"status"`
	Provider          string `json:"provider"`
	TotalUsers        *int   `json:"total_users,omitempty"`
	TotalInteractions *int   `json:"total_interactions,omitempty"`
	Message           string `json:"message"`
}
