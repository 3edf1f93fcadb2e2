package models

type ChatRequest struct {
	Query     string  `json:"query"`
	Context   *string `json:"context,omitempty"`
	UserID    string  `json:"user_id,omitempty"`
	Timestamp *int64  `json:"timestamp,omitempty"`
}

type ChatResponse struct {
	ResponseText string `json:"response_text"`
	Timestamp    string `json:"timestamp"`
}

// ChatResult is the full outcome of a chat request. The HTTP surface only
// exposes the ChatResponse part.
type ChatResult struct {
	ChatResponse
	UserID          string               `json:"user_id"`
	QueryType       QueryType            `json:"query_type"`
	ConfidenceScore float64              `json:"confidence_score"`
	Recommendations []ToolRecommendation `json:"recommendations"`
	Alternatives    []ToolRecommendation `json:"alternatives,omitempty"`
	HasContext      bool                 `json:"has_context"`
}

type HealthResponse struct {
	Status     string            `json:"status"`
	Timestamp  string            `json:"timestamp"`
	Components map[string]string `json:"components"`
}

type PreferencesRequest struct {
	Preferences map[string]any `json:"preferences"`
}

type AnalyticsSnapshot struct {
	TotalRequests     int64       `json:"total_requests"`
	SuccessfulQueries int64       `json:"successful_queries"`
	FailedQueries     int64       `json:"failed_queries"`
	SuccessRate       float64     `json:"success_rate"`
	TotalTools        int         `json:"total_tools"`
	Categories        int         `json:"categories"`
	MemoryService     MemoryStats `json:"memory_service"`
}
