package classifier

import (
	"strings"

	"toolfinder/models"

	"github.com/samber/lo"
)

const (
	maxPrimaryTools   = 3
	maxSecondaryTools = 3
	promotedTools     = 2
)

// ToolSource is the read side of the tool catalog the matcher needs.
type ToolSource interface {
	Lookup(key string) (models.ToolRecord, bool)
	ByCategory(category string) []models.ToolRecord
}

func containsTool(tools []models.ToolRecord, tool models.ToolRecord) bool {
	return lo.ContainsBy(tools, func(t models.ToolRecord) bool {
		return t.Equal(tool)
	})
}

// Match turns an analysis into ordered primary and secondary tool lists.
// Named tools come first, then category matches split on whether the tool's
// keywords reflect the intent keywords. Without a primary match the first
// two secondary tools are promoted. Both lists are capped at three.
func Match(source ToolSource, analysis models.SemanticAnalysis) (primary, secondary []models.ToolRecord) {
	primary = []models.ToolRecord{}
	secondary = []models.ToolRecord{}

	for _, key := range analysis.SpecificToolsMentioned {
		if tool, ok := source.Lookup(key); ok {
			primary = append(primary, tool)
		}
	}

	intentKeywords := lo.Map(analysis.IntentKeywords, func(k string, _ int) string {
		return strings.ToLower(k)
	})

	for _, category := range analysis.PrimaryCategories {
		for _, tool := range source.ByCategory(category) {
			if containsTool(primary, tool) {
				continue
			}
			joined := strings.ToLower(strings.Join(tool.Keywords, " "))
			if containsAny(joined, intentKeywords) {
				primary = append(primary, tool)
			} else {
				secondary = append(secondary, tool)
			}
		}
	}

	for _, category := range analysis.SecondaryCategories {
		for _, tool := range source.ByCategory(category) {
			if !containsTool(primary, tool) && !containsTool(secondary, tool) {
				secondary = append(secondary, tool)
			}
		}
	}

	if len(primary) == 0 && len(secondary) > 0 {
		n := min(promotedTools, len(secondary))
		primary = append(primary, secondary[:n]...)
		secondary = secondary[n:]
	}

	if len(primary) > maxPrimaryTools {
		primary = primary[:maxPrimaryTools]
	}
	if len(secondary) > maxSecondaryTools {
		secondary = secondary[:maxSecondaryTools]
	}

	return primary, secondary
}
