package classifier

import (
	"fmt"
	"strings"

	"toolfinder/models"
)

const analysisSystemPrompt = `You are a helpful, empathetic AI assistant specialized in education. You communicate clearly and directly, similar to ChatGPT or Claude. You understand that teachers are dedicated professionals who need practical solutions. Your analysis should lead to responses that are supportive, actionable, and respectful of their expertise. Focus on being genuinely helpful rather than overly enthusiastic.`

const analysisPromptTemplate = `You are a world-class AI assistant specialized in education, similar to ChatGPT or Claude. A teacher has asked you this question:

"%s"
%s
Your goal is to understand their need and provide analysis that will lead to clear, helpful, and empathetic responses. Think like the best AI assistants:

- Be direct and clear, not overly wordy
- Show empathy and understanding of teaching challenges
- Focus on practical solutions that save time and effort
- Use natural, conversational language
- Acknowledge the teacher's expertise and dedication

Available educational tool categories:
- Planning: Curriculum planning, lesson planning, goal setting, calendar creation, academic scheduling
- Content Creation: Worksheets, homework, assignments, creative materials, flashcards, study guides
- Assessment: Quizzes, tests, evaluations, exit tickets, polls, rubrics, grading tools
- Visual Content: Graphics, posters, charts, comics, concept visuals, diagrams
- Communication: Messages, reports, notifications, coordination, parent communication
- Interactive Content: Drag-drop activities, interactive exercises, matching games
- Language Learning: Pronunciation, language-specific tools, phonetic guidance
- Professional Development: Reflection, improvement tools, self-assessment

Analyze their request with the understanding that:
- Teachers are busy and need efficient solutions
- They want tools that actually work and save time
- They care deeply about student success
- They appreciate both practical guidance and emotional support

Provide your analysis in this JSON format:
{
    "query_type": "SPECIFIC_TOOL|GENERAL_PLANNING|CONTENT_CREATION|ASSESSMENT|VISUAL_CONTENT|COMMUNICATION|UNCLEAR",
    "intent_keywords": ["practical_keyword1", "relevant_keyword2", "useful_keyword3"],
    "primary_categories": ["most_relevant_category1", "secondary_relevant_category2"],
    "secondary_categories": ["alternative_category3"],
    "confidence_level": 0.85,
    "reasoning": "Clear, empathetic explanation of what the teacher needs and why, focusing on practical benefits and understanding their situation",
    "specific_tools_mentioned": ["any_specific_tools_if_mentioned"],
    "educational_context": "Practical context about their teaching situation, challenges they face, and what would help them most",
    "suggested_tool_types": ["most_helpful_tool_type1", "alternative_tool_type2"],
    "human_insight": "What would be most helpful for this teacher right now, considering their workload and student needs",
    "implied_needs": ["practical_need1", "time_saving_solution2"],
    "personalization_note": "%s"
}
`

const contextBlockTemplate = `
IMPORTANT: This teacher has previous interactions with you. Consider their history:
- Previous queries: %s
- Frequently used categories: %s
- Recently used tools: %s
- Teaching patterns: %s

Use this context to provide more personalized and relevant recommendations. If they've used certain tools before, consider suggesting similar or complementary tools. If they have patterns in their teaching style, tailor your recommendations accordingly.
`

// BuildAnalysisPrompt renders the user prompt for the analyzer. The history
// block is only included when the user context carries history.
func BuildAnalysisPrompt(query string, userCtx *models.UserContext) string {
	contextInfo := ""
	personalizationNote := "First interaction - focus on immediate practical help"

	if userCtx != nil && userCtx.HasContext {
		contextInfo = fmt.Sprintf(contextBlockTemplate,
			formatList(userCtx.PreviousQueries),
			formatList(userCtx.FrequentCategories),
			formatList(userCtx.RecentTools),
			formatList(userCtx.TeachingPatterns))
		personalizationNote = "How this fits with their teaching style and previous requests"
	}

	return fmt.Sprintf(analysisPromptTemplate, query, contextInfo, personalizationNote)
}

func formatList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
