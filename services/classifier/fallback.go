package classifier

import (
	"fmt"
	"strings"

	"toolfinder/models"

	"github.com/samber/lo"
)

type keywordGroup struct {
	triggers           []string
	queryType          models.QueryType
	primaryCategories  []string
	intentKeywords     []string
	educationalContext string
	humanInsight       string
	impliedNeeds       []string
}

// Checked in order; the first group with a trigger in the query wins.
var fallbackGroups = []keywordGroup{
	{
		triggers:           []string{"plan", "curriculum", "lesson", "schedule", "organize", "calendar", "timeline", "structure", "prepare"},
		queryType:          models.QueryGeneralPlanning,
		primaryCategories:  []string{"Planning"},
		intentKeywords:     []string{"planning", "organization", "preparation"},
		educationalContext: "You're looking to get organized and plan your teaching more effectively",
		humanInsight:       "Planning is key to great teaching! Let's find tools that'll make this easier for you.",
		impliedNeeds:       []string{"time management", "organization tools", "structure"},
	},
	{
		triggers:           []string{"quiz", "test", "assessment", "evaluate", "grade", "measure", "check", "exam", "review", "feedback"},
		queryType:          models.QueryAssessment,
		primaryCategories:  []string{"Assessment"},
		intentKeywords:     []string{"assessment", "evaluation", "grading"},
		educationalContext: "You need ways to assess and track your students' progress",
		humanInsight:       "Assessment helps you understand how your students are doing. I'll help you find the right tools.",
		impliedNeeds:       []string{"grading efficiency", "progress tracking", "feedback tools"},
	},
	{
		triggers:           []string{"create", "generate", "make", "build", "develop", "design", "produce", "write", "worksheet", "assignment"},
		queryType:          models.QueryContentCreation,
		primaryCategories:  []string{"Content Creation"},
		intentKeywords:     []string{"creation", "materials", "resources"},
		educationalContext: "You want to create engaging materials for your students",
		humanInsight:       "Creating great content takes time, but the right tools can make it much faster and easier.",
		impliedNeeds:       []string{"templates", "design resources", "time-saving tools"},
	},
	{
		triggers:           []string{"visual", "graphic", "chart", "poster", "image", "diagram", "illustration", "picture", "display"},
		queryType:          models.QueryVisualContent,
		primaryCategories:  []string{"Visual Content"},
		intentKeywords:     []string{"visual", "graphics", "design"},
		educationalContext: "You're looking to create visual materials that'll help your students learn better",
		humanInsight:       "Visual content really helps students understand concepts! Great thinking.",
		impliedNeeds:       []string{"design templates", "visual resources", "easy-to-use tools"},
	},
	{
		triggers:           []string{"message", "email", "report", "communicate", "send", "notify", "inform", "parent", "contact"},
		queryType:          models.QueryCommunication,
		primaryCategories:  []string{"Communication"},
		intentKeywords:     []string{"communication", "messaging", "outreach"},
		educationalContext: "You need to communicate effectively with students, parents, or colleagues",
		humanInsight:       "Good communication makes everything run smoother. Let's find tools that help.",
		impliedNeeds:       []string{"message templates", "communication efficiency", "professional tools"},
	},
	interactiveGroup,
}

var interactiveGroup = keywordGroup{
	triggers:           []string{"interactive", "activity", "game", "engagement", "hands-on", "drag", "drop", "fun", "engaging"},
	queryType:          models.QueryContentCreation,
	primaryCategories:  []string{"Interactive Content", "Content Creation"},
	intentKeywords:     []string{"interactive", "engagement", "activities"},
	educationalContext: "You want to create interactive experiences that keep students engaged",
	humanInsight:       "Interactive content is fantastic for keeping students engaged! You're on the right track.",
	impliedNeeds:       []string{"activity templates", "engagement tools", "interactive resources"},
}

var (
	boredomIndicators  = []string{"boring", "bored", "not engaged", "disengaged", "uninterested"}
	overloadIndicators = []string{"overwhelmed", "stressed", "too much", "no time"}
)

func containsAny(text string, needles []string) bool {
	return lo.SomeBy(needles, func(needle string) bool {
		return strings.Contains(text, needle)
	})
}

// FallbackAnalysis classifies a query with keyword rules when the language
// model is unavailable or returned something unusable.
func FallbackAnalysis(query string) models.SemanticAnalysis {
	queryLower := strings.ToLower(query)

	queryType := models.QueryUnclear
	primaryCategories := []string{}
	intentKeywords := []string{}
	educationalContext := "General teaching support needed"
	humanInsight := "Let me help you find the right tool for your teaching needs."
	impliedNeeds := []string{}

	group, matched := lo.Find(fallbackGroups, func(g keywordGroup) bool {
		return containsAny(queryLower, g.triggers)
	})
	if matched {
		queryType = group.queryType
		primaryCategories = append(primaryCategories, group.primaryCategories...)
		intentKeywords = append(intentKeywords, group.intentKeywords...)
		educationalContext = group.educationalContext
		humanInsight = group.humanInsight
		impliedNeeds = append(impliedNeeds, group.impliedNeeds...)
	}

	switch {
	case containsAny(queryLower, boredomIndicators):
		// Disengagement with no other signal is best served by interactive tools.
		if !matched {
			queryType = interactiveGroup.queryType
			primaryCategories = append(primaryCategories, interactiveGroup.primaryCategories...)
			intentKeywords = append(intentKeywords, interactiveGroup.intentKeywords...)
		}
		educationalContext = "You're dealing with student engagement challenges - that's tough but very common"
		humanInsight = "Student engagement is one of the biggest challenges teachers face. You're not alone in this!"
		impliedNeeds = []string{"engagement strategies", "interactive tools", "motivational resources"}
	case containsAny(queryLower, overloadIndicators):
		educationalContext = "You're feeling overwhelmed with your teaching workload"
		humanInsight = "Teaching can be overwhelming, but the right tools can really help lighten the load."
		impliedNeeds = []string{"time-saving tools", "efficiency solutions", "organization help"}
	}

	confidence := 0.7
	readableType := strings.ReplaceAll(strings.ToLower(string(queryType)), "_", " ")

	return models.SemanticAnalysis{
		QueryType:              queryType,
		IntentKeywords:         intentKeywords,
		PrimaryCategories:      primaryCategories,
		SecondaryCategories:    []string{},
		ConfidenceLevel:        &confidence,
		Reasoning:              fmt.Sprintf("I understand you're looking for help with %s. While I'd love to provide more detailed analysis, I can still help you find the right tools.", readableType),
		SpecificToolsMentioned: []string{},
		EducationalContext:     educationalContext,
		SuggestedToolTypes:     append([]string{}, primaryCategories...),
		HumanInsight:           humanInsight,
		ImpliedNeeds:           impliedNeeds,
	}
}
