package memory

import (
	"strings"

	"github.com/samber/lo"
)

const (
	ReasonUserPreferences = "user_preferences"
	ReasonToolFeedback    = "tool_feedback"
	ReasonUsagePattern    = "usage_pattern"
	ReasonTeachingStyle   = "teaching_style"
	ReasonSubjectContext  = "subject_context"
	ReasonLowConfidence   = "low_confidence"

	ReasonGenericQuery    = "generic_query"
	ReasonTooShort        = "too_short"
	ReasonNoPersonalValue = "no_personalization_value"
)

type indicatorSet struct {
	reason     string
	indicators []string
}

// Checked in order; every set with a hit contributes its reason.
var storeIndicators = []indicatorSet{
	{
		reason: ReasonUserPreferences,
		indicators: []string{
			"i prefer", "i like", "i don't like", "i hate", "i avoid",
			"i always", "i never", "my students", "my class", "my teaching style",
			"i teach", "grade level", "subject area", "curriculum",
		},
	},
	{
		reason: ReasonToolFeedback,
		indicators: []string{
			"this worked well", "this didn't work", "perfect", "exactly what i needed",
			"not helpful", "great suggestion", "love this tool", "hate this tool",
			"better than", "worse than", "prefer this over",
		},
	},
	{
		reason: ReasonUsagePattern,
		indicators: []string{
			"again", "similar to", "like before", "as usual", "typically",
			"my usual", "my go-to", "i often", "frequently", "regularly",
		},
	},
	{
		reason: ReasonTeachingStyle,
		indicators: []string{
			"interactive", "hands-on", "visual", "creative", "traditional",
			"project-based", "collaborative", "individual", "group work",
			"assessment focused", "creative assignments",
		},
	},
	{
		reason: ReasonSubjectContext,
		indicators: []string{
			"math", "science", "english", "history", "art", "music",
			"elementary", "middle school", "high school", "kindergarten",
			"1st grade", "2nd grade", "3rd grade", "4th grade", "5th grade",
		},
	},
}

var genericQueries = []string{
	"hello", "hi", "help", "what can you do", "how are you",
	"test", "testing", "check", "status", "help me", "what tools do you have",
	"what tools", "show me tools", "list tools",
}

func containsAny(text string, needles []string) bool {
	return lo.SomeBy(needles, func(needle string) bool {
		return strings.Contains(text, needle)
	})
}

// ShouldStore decides whether an interaction carries enough personal signal
// to be remembered. The reason is "storing_for: ..." when it does.
func ShouldStore(query string, confidence float64) (bool, string) {
	lower := strings.ToLower(query)

	reasons := []string{}
	for _, set := range storeIndicators {
		if containsAny(lower, set.indicators) {
			reasons = append(reasons, set.reason)
		}
	}

	if lo.Contains(genericQueries, strings.TrimSpace(lower)) {
		return false, ReasonGenericQuery
	}

	words := len(strings.Fields(query))
	if words < 3 && len(reasons) == 0 {
		return false, ReasonTooShort
	}

	if confidence < 0.7 && words >= 5 {
		reasons = append(reasons, ReasonLowConfidence)
	}

	if len(reasons) == 0 {
		return false, ReasonNoPersonalValue
	}

	return true, "storing_for: " + strings.Join(reasons, ", ")
}
