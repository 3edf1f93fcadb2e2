package memory

import (
	"fmt"
	"sort"
	"strings"

	"toolfinder/models"

	"github.com/samber/lo"
)

const (
	noHistoryMessage = "No interaction history available"
	unknown          = "Unknown"
)

var focusLabels = []struct {
	reason string
	label  string
}{
	{ReasonUserPreferences, "Preference-based personalization"},
	{ReasonToolFeedback, "Tool feedback integration"},
	{ReasonSubjectContext, "Subject-specific customization"},
	{ReasonTeachingStyle, "Teaching style adaptation"},
}

// BuildInsights aggregates every stored entry of a user into a profile.
func BuildInsights(entries []models.MemoryEntry, structured bool) models.UserInsights {
	if len(entries) == 0 {
		return models.UserInsights{TotalInteractions: 0, Insights: noHistoryMessage}
	}

	insights := models.UserInsights{
		TotalInteractions:    len(entries),
		MostCommonCategory:   unknown,
		FavoriteTools:        []models.FavoriteTool{},
		ActivitySummary:      fmt.Sprintf("You have %d personalization memories stored", len(entries)),
		UserPreferences:      []string{},
		PrimarySubject:       unknown,
		GradeLevel:           unknown,
		PersonalizationFocus: []string{},
	}

	var categories, tools, preferences, subjectsSeen, grades, reasons []string

	for _, entry := range entries {
		text := entry.Content

		if structured {
			if entry.QueryType != "" {
				categories = append(categories, entry.QueryType)
			}
			if entry.StoreReason != "" {
				reasons = append(reasons, entry.StoreReason)
			}
			if value, ok := markerValue(text, markerRecommended); ok {
				if names, _, found := splitRecommendation(value); found {
					tools = append(tools, names...)
				}
			}
			continue
		}

		if value, ok := markerValue(text, markerPreference); ok {
			preferences = append(preferences, value)
		}
		if value, ok := markerValue(text, markerRecommended); ok {
			if names, category, found := splitRecommendation(value); found {
				tools = append(tools, names...)
				categories = append(categories, category)
			}
		}
		if value, ok := markerValue(text, markerSubject); ok {
			subjectsSeen = append(subjectsSeen, value)
		}
		if value, ok := markerValue(text, markerGrade); ok {
			grades = append(grades, value)
		}
		if _, after, found := strings.Cut(text, markerAskedAbout); found {
			queryType, _, _ := strings.Cut(after, "tools")
			categories = append(categories, strings.TrimSpace(queryType))
		}
	}

	if len(categories) > 0 {
		insights.MostCommonCategory = mostCommon(categories)
	}
	insights.FavoriteTools = favoriteTools(tools, 3)
	insights.UserPreferences = firstN(preferences, 3)
	if len(subjectsSeen) > 0 {
		insights.PrimarySubject = mostCommon(subjectsSeen)
	}
	if len(grades) > 0 {
		insights.GradeLevel = mostCommon(grades)
	}

	focus := []string{}
	for _, reason := range reasons {
		for _, fl := range focusLabels {
			if strings.Contains(reason, fl.reason) {
				focus = append(focus, fl.label)
			}
		}
	}
	insights.PersonalizationFocus = lo.Uniq(focus)

	switch {
	case insights.MostCommonCategory == string(models.QueryContentCreation):
		insights.TeachingStyle = "Content Creator - You love creating materials"
	case insights.MostCommonCategory == string(models.QueryAssessment):
		insights.TeachingStyle = "Assessment Focused - You prioritize evaluation"
	case insights.MostCommonCategory == string(models.QueryGeneralPlanning):
		insights.TeachingStyle = "Strategic Planner - You focus on organization"
	case len(preferences) > 0:
		insights.TeachingStyle = "Preference-Driven - You have clear teaching preferences"
	case len(subjectsSeen) > 0:
		insights.TeachingStyle = fmt.Sprintf("Subject Specialist - Focused on %s", insights.PrimarySubject)
	default:
		insights.TeachingStyle = "Balanced Educator - You use varied approaches"
	}

	return insights
}

// favoriteTools counts non-empty names and returns the n most used, ties in
// first-seen order.
func favoriteTools(tools []string, n int) []models.FavoriteTool {
	names := lo.Compact(tools)
	counts := lo.CountValues(names)

	favorites := lo.Map(lo.Uniq(names), func(name string, _ int) models.FavoriteTool {
		return models.FavoriteTool{Name: name, Count: counts[name]}
	})
	sort.SliceStable(favorites, func(i, j int) bool {
		return favorites[i].Count > favorites[j].Count
	})

	if len(favorites) > n {
		favorites = favorites[:n]
	}
	return favorites
}
