package models

import "slices"

// ToolRecord is one catalog entry. Key identifies the record inside the
// catalog and is never serialized.
type ToolRecord struct {
	Key         string   `json:"-" yaml:"key"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	URL         string   `json:"url" yaml:"url"`
	Category    string   `json:"category" yaml:"category"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
	UseCases    []string `json:"use_cases" yaml:"use_cases"`
}

// Equal reports structural equality of two records.
func (t ToolRecord) Equal(other ToolRecord) bool {
	return t.Key == other.Key &&
		t.Name == other.Name &&
		t.Description == other.Description &&
		t.URL == other.URL &&
		t.Category == other.Category &&
		slices.Equal(t.Keywords, other.Keywords) &&
		slices.Equal(t.UseCases, other.UseCases)
}

type ToolRecommendation struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Category    string   `json:"category,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	UseCases    []string `json:"use_cases,omitempty"`
}

func NewToolRecommendation(tool ToolRecord) ToolRecommendation {
	return ToolRecommendation{
		Name:        tool.Name,
		Description: tool.Description,
		URL:         tool.URL,
		Category:    tool.Category,
		Keywords:    tool.Keywords,
		UseCases:    tool.UseCases,
	}
}

type CategoriesResponse struct {
	Categories map[string]int `json:"categories"`
	TotalTools int            `json:"total_tools"`
}
