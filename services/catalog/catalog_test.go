package catalog

import (
	"encoding/json"
	"sort"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if c.Len() != 38 {
		t.Errorf("Len() = %d, expected 38", c.Len())
	}

	for _, tool := range c.All() {
		if tool.Category == "" {
			t.Errorf("tool %s has empty category", tool.Key)
		}
		expectedURL := "https://app.yolearn.ai/teacher/" + tool.Key
		if tool.URL != expectedURL {
			t.Errorf("tool %s URL = %s, expected %s", tool.Key, tool.URL, expectedURL)
		}
	}
}

func TestLookup(t *testing.T) {
	c := MustLoad()

	tests := []struct {
		name         string
		key          string
		expectedName string
		found        bool
	}{
		{name: "planning tool", key: "lesson-planner", expectedName: "Lesson Planner", found: true},
		{name: "assessment tool", key: "quiz-generator", expectedName: "Quiz Generator", found: true},
		{name: "misspelled key kept as in catalog", key: "gallary-card", expectedName: "Gallery Card Generator", found: true},
		{name: "unknown key", key: "does-not-exist", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool, ok := c.Lookup(tt.key)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found = %v, expected %v", tt.key, ok, tt.found)
			}
			if ok && tool.Name != tt.expectedName {
				t.Errorf("Lookup(%q).Name = %q, expected %q", tt.key, tool.Name, tt.expectedName)
			}
		})
	}
}

func TestLookupKeyNotSerialized(t *testing.T) {
	c := MustLoad()

	for _, tool := range c.All() {
		data, err := json.Marshal(tool)
		if err != nil {
			t.Fatalf("json.Marshal(%s) error = %v", tool.Key, err)
		}
		var fields map[string]any
		if err := json.Unmarshal(data, &fields); err != nil {
			t.Fatalf("json.Unmarshal error = %v", err)
		}
		if _, ok := fields["key"]; ok {
			t.Errorf("serialized tool %s exposes its key", tool.Key)
		}
	}
}

func TestCategories(t *testing.T) {
	c := MustLoad()
	categories := c.Categories()

	if !sort.StringsAreSorted(categories) {
		t.Errorf("Categories() = %v, expected sorted", categories)
	}

	distinct := map[string]bool{}
	for _, tool := range c.All() {
		distinct[tool.Category] = true
	}
	if len(categories) != len(distinct) {
		t.Fatalf("Categories() has %d entries, expected %d", len(categories), len(distinct))
	}
	for _, category := range categories {
		if !distinct[category] {
			t.Errorf("Categories() contains %q which no tool uses", category)
		}
	}
}

func TestByCategory(t *testing.T) {
	c := MustLoad()

	tests := []struct {
		category string
		expected int
	}{
		{"Planning", 3},
		{"Assessment", 5},
		{"Content Creation", 16},
		{"Visual Content", 7},
		{"Communication", 4},
		{"Interactive Content", 1},
		{"Language Learning", 1},
		{"Professional Development", 1},
		{"planning", 0},
		{"Nonexistent", 0},
	}

	total := 0
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			tools := c.ByCategory(tt.category)
			if len(tools) != tt.expected {
				t.Errorf("ByCategory(%q) returned %d tools, expected %d", tt.category, len(tools), tt.expected)
			}
			for _, tool := range tools {
				if tool.Category != tt.category {
					t.Errorf("ByCategory(%q) returned tool in %q", tt.category, tool.Category)
				}
			}
		})
		total += tt.expected
	}

	if total != c.Len() {
		t.Errorf("category counts sum to %d, expected %d", total, c.Len())
	}
}

func TestSearchByKeywords(t *testing.T) {
	c := MustLoad()

	tools := c.SearchByKeywords([]string{"PLANNING"})
	if len(tools) == 0 {
		t.Fatal("SearchByKeywords(PLANNING) returned nothing")
	}
	for _, tool := range tools {
		if !strings.Contains(strings.ToLower(strings.Join(tool.Keywords, " ")), "planning") {
			t.Errorf("tool %s does not have a planning keyword", tool.Key)
		}
	}
}

func TestParseRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "duplicate key",
			data: "tools:\n  - {key: a, name: A, category: X}\n  - {key: a, name: B, category: X}\n",
		},
		{
			name: "missing category",
			data: "tools:\n  - {key: a, name: A}\n",
		},
		{
			name: "missing key",
			data: "tools:\n  - {name: A, category: X}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Errorf("Parse() expected error for %s", tt.name)
			}
		})
	}
}
