package memory

import (
	"fmt"
	"strings"

	"toolfinder/models"

	"github.com/samber/lo"
)

const noContextMessage = "No previous interactions found"

// BuildUserContext summarizes retrieved entries into the context handed to
// the analyzer and composer.
func BuildUserContext(entries []models.MemoryEntry, structured bool) models.UserContext {
	if len(entries) == 0 {
		return models.UserContext{HasContext: false, Context: noContextMessage}
	}

	var queries, categories, tools, patterns []string

	for _, entry := range entries {
		if structured {
			if entry.Type == models.MemoryTypePreferences {
				continue
			}
			if entry.Content != "" {
				queries = append(queries, entry.Content)
			}
			if entry.QueryType != "" {
				categories = append(categories, entry.QueryType)
			}
			if strings.Contains(entry.StoreReason, ReasonUserPreferences) {
				patterns = append(patterns, "Has expressed preferences")
			}
			if strings.Contains(entry.StoreReason, ReasonToolFeedback) {
				patterns = append(patterns, "Provides feedback on tools")
			}
			if strings.Contains(entry.StoreReason, ReasonSubjectContext) {
				patterns = append(patterns, "Subject-specific teacher")
			}
			continue
		}

		text := entry.Content
		for _, marker := range []string{markerPreference, markerTeaching, markerFeedback} {
			if value, ok := markerValue(text, marker); ok {
				queries = append(queries, value)
			}
		}
		if value, ok := markerValue(text, markerRecommended); ok {
			names, _, found := splitRecommendation(value)
			if !found {
				names = []string{strings.TrimSpace(value)}
			}
			tools = append(tools, names...)
		}
		if value, ok := markerValue(text, markerSubject); ok {
			categories = append(categories, value)
		}
		if value, ok := markerValue(text, markerGrade); ok {
			categories = append(categories, value)
		}
		if text != "" && !containsAny(text, allMarkers) {
			queries = append(queries, truncate(text, 100))
		}
	}

	userCtx := models.UserContext{
		PreviousQueries:    firstN(queries, 3),
		FrequentCategories: firstN(lo.Uniq(categories), 3),
		RecentTools:        firstN(lo.Uniq(lo.Compact(tools)), 5),
		TeachingPatterns:   patterns,
	}

	if len(userCtx.FrequentCategories) > 0 {
		userCtx.TeachingPatterns = []string{
			fmt.Sprintf("Frequently asks about %s related topics", strings.ToLower(mostCommon(categories))),
			fmt.Sprintf("Has used %d different tools recently", len(userCtx.RecentTools)),
		}
	}

	userCtx.HasContext = len(userCtx.PreviousQueries) > 0 ||
		len(userCtx.FrequentCategories) > 0 ||
		len(userCtx.RecentTools) > 0 ||
		len(userCtx.TeachingPatterns) > 0

	return userCtx
}

// Personalize scores recommendations against the user's history and orders
// them by score. Without history every tool keeps the base score.
func Personalize(userCtx models.UserContext, tools []models.ToolRecord) []models.PersonalizedTool {
	personalized := make([]models.PersonalizedTool, 0, len(tools))

	for _, tool := range tools {
		score := 1.0
		reasons := []string{}

		if userCtx.HasContext {
			if lo.Contains(userCtx.RecentTools, tool.Name) {
				score += 0.3
				reasons = append(reasons, "You've used this tool before")
			}
			if lo.Contains(userCtx.FrequentCategories, tool.Category) {
				score += 0.2
				reasons = append(reasons, fmt.Sprintf("You frequently work with %s tools", strings.ToLower(tool.Category)))
			}
		}

		personalized = append(personalized, models.PersonalizedTool{
			ToolRecommendation:     models.NewToolRecommendation(tool),
			PersonalizationScore:   score,
			PersonalizationReasons: reasons,
		})
	}

	sortByScore(personalized)
	return personalized
}

func sortByScore(tools []models.PersonalizedTool) {
	// Insertion sort keeps equal scores in their original order.
	for i := 1; i < len(tools); i++ {
		for j := i; j > 0 && tools[j].PersonalizationScore > tools[j-1].PersonalizationScore; j-- {
			tools[j], tools[j-1] = tools[j-1], tools[j]
		}
	}
}

// mostCommon returns the most frequent value, preferring the earliest on ties.
func mostCommon(values []string) string {
	counts := lo.CountValues(values)
	best := ""
	bestCount := 0
	for _, value := range lo.Uniq(values) {
		if counts[value] > bestCount {
			best = value
			bestCount = counts[value]
		}
	}
	return best
}

func firstN(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
