package services

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"toolfinder/models"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

var ErrNoToolsFound = errors.New("no tools found")

// ToolCatalog is the read-only tool data the service projects.
type ToolCatalog interface {
	All() []models.ToolRecord
	ByCategory(category string) []models.ToolRecord
	Categories() []string
	Len() int
}

type ToolService struct {
	catalog ToolCatalog
}

func NewToolService(catalog ToolCatalog) *ToolService {
	return &ToolService{catalog: catalog}
}

func toRecommendations(tools []models.ToolRecord) []models.ToolRecommendation {
	return lo.Map(tools, func(tool models.ToolRecord, _ int) models.ToolRecommendation {
		return models.NewToolRecommendation(tool)
	})
}

func (s *ToolService) GetAllTools() []models.ToolRecommendation {
	log.Printf("[INFO] Starting get all tools")
	tools := toRecommendations(s.catalog.All())
	log.Printf("[INFO] Successfully retrieved %d tools", len(tools))
	return tools
}

func (s *ToolService) TotalTools() int {
	return s.catalog.Len()
}

func (s *ToolService) CategoryNames() []string {
	return s.catalog.Categories()
}

func (s *ToolService) GetCategories() models.CategoriesResponse {
	log.Printf("[INFO] Starting get categories")

	counts := make(map[string]int)
	for _, category := range s.catalog.Categories() {
		counts[category] = len(s.catalog.ByCategory(category))
	}

	log.Printf("[INFO] Successfully retrieved %d categories", len(counts))
	return models.CategoriesResponse{
		Categories: counts,
		TotalTools: s.catalog.Len(),
	}
}

func (s *ToolService) GetToolsByCategory(category string) ([]models.ToolRecommendation, error) {
	log.Printf("[INFO] Starting get tools by category %q", category)

	tools := s.catalog.ByCategory(category)
	if len(tools) == 0 {
		log.Printf("[ERROR] No tools found for category %q", category)
		return nil, fmt.Errorf("%w for category: %s", ErrNoToolsFound, category)
	}

	log.Printf("[INFO] Successfully retrieved %d tools for category %q", len(tools), category)
	return toRecommendations(tools), nil
}

// SearchTools ranks tools against the words of query. Name hits weigh more
// than keyword hits, which weigh more than description hits; misspelled terms
// still match through fuzzy word matching. An empty query returns every tool.
func (s *ToolService) SearchTools(query string) []models.ToolRecommendation {
	terms := strings.Fields(strings.ToLower(query))
	log.Printf("[INFO] Starting tool search with %d search terms", len(terms))

	tools := s.catalog.All()
	if len(terms) == 0 {
		log.Printf("[INFO] No search terms provided, returning all %d tools", len(tools))
		return toRecommendations(tools)
	}

	type scored struct {
		tool  models.ToolRecord
		score int
	}
	var matches []scored
	for _, tool := range tools {
		if score := toolSearchScore(tool, terms); score > 0 {
			matches = append(matches, scored{tool: tool, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	log.Printf("[INFO] Found %d tools matching search criteria", len(matches))
	return lo.Map(matches, func(m scored, _ int) models.ToolRecommendation {
		return models.NewToolRecommendation(m.tool)
	})
}

func toolSearchScore(tool models.ToolRecord, terms []string) int {
	name := strings.ToLower(tool.Name)
	keywords := strings.ToLower(strings.Join(tool.Keywords, " "))
	description := strings.ToLower(tool.Description)

	words := make([]string, 0)
	for _, word := range strings.Fields(name + " " + keywords) {
		cleanWord := strings.Trim(word, ".,!?;:()[]{}\"'&")
		if len(cleanWord) > 0 {
			words = append(words, cleanWord)
		}
	}

	score := 0
	for _, term := range terms {
		switch {
		case strings.Contains(name, term):
			score += 3
		case strings.Contains(keywords, term):
			score += 2
		case strings.Contains(description, term):
			score += 1
		case len(term) > 2 && len(fuzzy.FindFold(term, words)) > 0:
			// Term is a subsequence of a word, e.g. a dropped letter.
			score += 1
		case len(term) > 3 && lo.SomeBy(words, func(word string) bool {
			return fuzzy.LevenshteinDistance(term, word) <= 1
		}):
			score += 1
		}
	}

	return score
}
