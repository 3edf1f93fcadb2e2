package classifier

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"toolfinder/models"
)

type responseStyle int

const (
	styleClearHelpful responseStyle = iota
	styleSupportive
	stylePracticalDirect
	styleEncouraging
	styleCount
)

// Composer renders the reply text. Its random source is shared across
// requests and guarded by a mutex.
type Composer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewComposer(src rand.Source) *Composer {
	return &Composer{rng: rand.New(src)}
}

// NewComposerFromSeed pins the phrase selection when seed is non-zero and
// seeds from the clock otherwise.
func NewComposerFromSeed(seed int64) *Composer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewComposer(rand.NewSource(seed))
}

func (c *Composer) Compose(primary, secondary []models.ToolRecord, analysis models.SemanticAnalysis, userCtx *models.UserContext) string {
	if len(primary) == 0 && len(secondary) == 0 {
		return clarificationResponse
	}

	recentQuery := ""
	if userCtx != nil && userCtx.HasContext && len(userCtx.PreviousQueries) > 0 {
		recentQuery = strings.ToLower(userCtx.PreviousQueries[0])
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch responseStyle(c.rng.Intn(int(styleCount))) {
	case styleClearHelpful:
		return c.clearHelpful(primary, analysis, recentQuery)
	case styleSupportive:
		return c.supportive(primary, analysis, recentQuery)
	case stylePracticalDirect:
		return c.practicalDirect(primary, recentQuery)
	default:
		return c.encouraging(primary, recentQuery)
	}
}

func (c *Composer) pick(pool []string) string {
	return pool[c.rng.Intn(len(pool))]
}

func (c *Composer) clearHelpful(primary []models.ToolRecord, analysis models.SemanticAnalysis, recentQuery string) string {
	var b strings.Builder

	if recentQuery != "" {
		b.WriteString(fmt.Sprintf(c.pick(clearHelpfulContextOpenings), recentQuery))
	} else {
		b.WriteString(c.pick(clearHelpfulOpenings))
	}
	b.WriteString("\n\n")

	if len(primary) > 0 {
		tool := primary[0]
		fmt.Fprintf(&b, "**%s** - %s\n", tool.Name, tool.Description)
		fmt.Fprintf(&b, "👉 [Get started here](%s)\n\n", tool.URL)

		context := analysis.EducationalContext
		if len([]rune(context)) > 30 {
			fmt.Fprintf(&b, "%s %s.\n\n", c.pick(clearHelpfulBenefitIntros), truncateRunes(strings.ToLower(context), 100))
		}
	}

	b.WriteString(c.pick(clearHelpfulClosings))
	return b.String()
}

func (c *Composer) supportive(primary []models.ToolRecord, analysis models.SemanticAnalysis, recentQuery string) string {
	var b strings.Builder

	switch {
	case recentQuery != "":
		b.WriteString(fmt.Sprintf(c.pick(supportiveContextOpenings), recentQuery))
	case containsAny(strings.ToLower(analysis.EducationalContext), challengeWords):
		b.WriteString(c.pick(supportiveUnderstandingStarts))
	default:
		b.WriteString(c.pick(supportiveStarts))
	}
	b.WriteString("\n\n")

	if len(primary) > 0 {
		tool := primary[0]
		fmt.Fprintf(&b, "%s %s\n\n", fmt.Sprintf(c.pick(supportiveToolIntros), tool.Name), tool.Description)
		fmt.Fprintf(&b, "🔗 [Start using it here](%s)\n\n", tool.URL)
	}

	b.WriteString(c.pick(supportiveClosings))
	return b.String()
}

func (c *Composer) practicalDirect(primary []models.ToolRecord, recentQuery string) string {
	var b strings.Builder

	if recentQuery != "" {
		b.WriteString(fmt.Sprintf(c.pick(practicalContextOpenings), recentQuery))
	} else {
		b.WriteString(c.pick(practicalStarts))
	}
	b.WriteString("\n\n")

	if len(primary) > 0 {
		tool := primary[0]
		fmt.Fprintf(&b, "**%s**\n", tool.Name)
		fmt.Fprintf(&b, "What it does: %s\n", tool.Description)
		fmt.Fprintf(&b, "Access it: %s\n\n", tool.URL)
		b.WriteString(c.pick(practicalBenefits))
		b.WriteString("\n\n")
	}

	b.WriteString(c.pick(practicalClosings))
	return b.String()
}

func (c *Composer) encouraging(primary []models.ToolRecord, recentQuery string) string {
	var b strings.Builder

	if recentQuery != "" {
		b.WriteString(fmt.Sprintf(c.pick(encouragingContextOpenings), recentQuery))
	} else {
		b.WriteString(c.pick(encouragingStarts))
		b.WriteString(" Here's what I recommend:")
	}
	b.WriteString("\n\n")

	if len(primary) > 0 {
		tool := primary[0]
		fmt.Fprintf(&b, "%s %s\n\n", fmt.Sprintf(c.pick(encouragingToolIntros), tool.Name), tool.Description)
		fmt.Fprintf(&b, "🚀 [Start creating amazing results](%s)\n\n", tool.URL)
	}

	b.WriteString(c.pick(encouragingClosings))
	return b.String()
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
