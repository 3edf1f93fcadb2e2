package models

type QueryType string

const (
	QuerySpecificTool    QueryType = "SPECIFIC_TOOL"
	QueryGeneralPlanning QueryType = "GENERAL_PLANNING"
	QueryContentCreation QueryType = "CONTENT_CREATION"
	QueryAssessment      QueryType = "ASSESSMENT"
	QueryVisualContent   QueryType = "VISUAL_CONTENT"
	QueryCommunication   QueryType = "COMMUNICATION"
	QueryUnclear         QueryType = "UNCLEAR"
)

// SemanticAnalysis is the per-query classification produced by the LLM or by
// the rule-based fallback. Categories may name categories the catalog does not
// have.
type SemanticAnalysis struct {
	QueryType              QueryType `json:"query_type" jsonschema:"enum=SPECIFIC_TOOL,enum=GENERAL_PLANNING,enum=CONTENT_CREATION,enum=ASSESSMENT,enum=VISUAL_CONTENT,enum=COMMUNICATION,enum=UNCLEAR,description=Classified purpose of the request"`
	IntentKeywords         []string  `json:"intent_keywords" jsonschema:"description=Practical keywords describing the intent"`
	PrimaryCategories      []string  `json:"primary_categories" jsonschema:"description=Most relevant tool categories"`
	SecondaryCategories    []string  `json:"secondary_categories" jsonschema:"description=Alternative tool categories"`
	ConfidenceLevel        *float64  `json:"confidence_level,omitempty" jsonschema:"minimum=0,maximum=1,description=Confidence between 0 and 1"`
	Reasoning              string    `json:"reasoning" jsonschema:"description=Explanation of what the teacher needs"`
	SpecificToolsMentioned []string  `json:"specific_tools_mentioned" jsonschema:"description=Catalog keys of tools the teacher named"`
	EducationalContext     string    `json:"educational_context" jsonschema:"description=Context about the teaching situation"`
	SuggestedToolTypes     []string  `json:"suggested_tool_types,omitempty"`
	HumanInsight           string    `json:"human_insight" jsonschema:"description=What would help this teacher most right now"`
	ImpliedNeeds           []string  `json:"implied_needs" jsonschema:"description=Practical needs implied by the request"`
	PersonalizationNote    string    `json:"personalization_note,omitempty"`
}

func (a SemanticAnalysis) Confidence() float64 {
	if a.ConfidenceLevel == nil {
		return 0.5
	}
	return *a.ConfidenceLevel
}

func (a SemanticAnalysis) Type() QueryType {
	if a.QueryType == "" {
		return QueryUnclear
	}
	return a.QueryType
}

type IntentResult struct {
	PrimaryTools      []ToolRecord `json:"primary_tools"`
	SecondaryTools    []ToolRecord `json:"secondary_tools"`
	ConfidenceScore   float64      `json:"confidence_score"`
	Reasoning         string       `json:"reasoning"`
	QueryType         QueryType    `json:"query_type"`
	SuggestedResponse string       `json:"suggested_response"`
}
