package memory

import (
	"fmt"
	"strings"

	"toolfinder/models"
)

// Markers that open each sentence of a personalization digest. Vector stores
// are read back by looking for them.
const (
	markerPreference  = "User preference:"
	markerTeaching    = "Teaching context:"
	markerFeedback    = "Tool feedback:"
	markerRecommended = "Successfully recommended:"
	markerSubject     = "Subject focus:"
	markerGrade       = "Grade level:"
	markerAskedAbout  = "User asked about"
)

var allMarkers = []string{markerPreference, markerTeaching, markerFeedback, markerRecommended, markerSubject, markerGrade}

var (
	preferenceWords = []string{"prefer", "like", "don't like", "avoid", "always", "never"}
	teachingWords   = []string{"teach", "grade", "subject", "class", "students"}
	feedbackWords   = []string{"worked well", "didn't work", "perfect", "not helpful", "love", "hate"}
	subjects        = []string{"math", "science", "english", "history", "art", "music"}
	gradeLevels     = []string{"elementary", "middle school", "high school", "kindergarten"}
)

func queryTypeOrGeneral(queryType models.QueryType) string {
	if queryType == "" {
		return "general"
	}
	return string(queryType)
}

// ExtractPersonalization condenses a query and its outcome into the marker
// sentences that get stored.
func ExtractPersonalization(query string, interaction models.Interaction) string {
	lower := strings.ToLower(query)
	parts := []string{}

	if containsAny(lower, preferenceWords) {
		parts = append(parts, fmt.Sprintf("%s %s", markerPreference, query))
	}
	if containsAny(lower, teachingWords) {
		parts = append(parts, fmt.Sprintf("%s %s", markerTeaching, query))
	}
	if containsAny(lower, feedbackWords) {
		parts = append(parts, fmt.Sprintf("%s %s", markerFeedback, query))
	}

	if interaction.ConfidenceScore > 0.8 && len(interaction.Recommendations) > 0 {
		parts = append(parts, fmt.Sprintf("%s %s for %s needs",
			markerRecommended, strings.Join(interaction.Recommendations, ", "), queryTypeOrGeneral(interaction.QueryType)))
	}

	for _, subject := range subjects {
		if strings.Contains(lower, subject) {
			parts = append(parts, fmt.Sprintf("%s %s", markerSubject, subject))
			break
		}
	}

	for _, grade := range gradeLevels {
		if strings.Contains(lower, grade) {
			parts = append(parts, fmt.Sprintf("%s %s", markerGrade, grade))
			break
		}
	}

	if len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%s %s tools", markerAskedAbout, queryTypeOrGeneral(interaction.QueryType)))
	}

	return strings.Join(parts, ". ")
}

// markerValue returns the text after marker up to the next period.
func markerValue(text, marker string) (string, bool) {
	_, after, found := strings.Cut(text, marker)
	if !found {
		return "", false
	}
	sentence, _, _ := strings.Cut(after, ".")
	return strings.TrimSpace(sentence), true
}

// splitRecommendation splits "A, B for TYPE needs" into tool names and the
// category part.
func splitRecommendation(text string) ([]string, string, bool) {
	toolsPart, categoryPart, found := strings.Cut(text, " for ")
	if !found {
		return nil, "", false
	}

	tools := []string{}
	for _, tool := range strings.Split(toolsPart, ",") {
		tools = append(tools, strings.TrimSpace(tool))
	}
	category := strings.TrimSpace(strings.ReplaceAll(categoryPart, " needs", ""))
	return tools, category, true
}
