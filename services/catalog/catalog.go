// Package catalog holds the static set of educational tools the service can
// recommend. The data is embedded at build time and never changes at runtime.
package catalog

import (
	_ "embed"
	"fmt"
	"log"
	"sort"
	"strings"

	"toolfinder/models"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

//go:embed tools.yaml
var toolsYAML []byte

type catalogFile struct {
	Tools []models.ToolRecord `yaml:"tools"`
}

type Catalog struct {
	tools []models.ToolRecord
	byKey map[string]int
}

// Load parses the embedded tool list.
func Load() (*Catalog, error) {
	return Parse(toolsYAML)
}

// MustLoad is Load for callers that cannot continue without a catalog.
func MustLoad() *Catalog {
	c, err := Load()
	if err != nil {
		log.Fatalf("[ERROR] Failed to load tool catalog: %v", err)
	}
	return c
}

// Parse builds a catalog from YAML data. Duplicate keys and records without
// a category are rejected.
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tool catalog: %w", err)
	}

	c := &Catalog{
		tools: make([]models.ToolRecord, 0, len(file.Tools)),
		byKey: make(map[string]int, len(file.Tools)),
	}

	for _, tool := range file.Tools {
		if tool.Key == "" {
			return nil, fmt.Errorf("tool %q has no key", tool.Name)
		}
		if strings.TrimSpace(tool.Category) == "" {
			return nil, fmt.Errorf("tool %s has no category", tool.Key)
		}
		if _, exists := c.byKey[tool.Key]; exists {
			return nil, fmt.Errorf("duplicate tool key: %s", tool.Key)
		}
		c.byKey[tool.Key] = len(c.tools)
		c.tools = append(c.tools, tool)
	}

	return c, nil
}

// All returns every tool in catalog order.
func (c *Catalog) All() []models.ToolRecord {
	return append([]models.ToolRecord(nil), c.tools...)
}

func (c *Catalog) Len() int {
	return len(c.tools)
}

func (c *Catalog) Lookup(key string) (models.ToolRecord, bool) {
	i, ok := c.byKey[key]
	if !ok {
		return models.ToolRecord{}, false
	}
	return c.tools[i], true
}

// ByCategory returns the tools whose category equals category exactly.
func (c *Catalog) ByCategory(category string) []models.ToolRecord {
	return lo.Filter(c.tools, func(tool models.ToolRecord, _ int) bool {
		return tool.Category == category
	})
}

// Categories returns the distinct categories, sorted.
func (c *Catalog) Categories() []string {
	categories := lo.Uniq(lo.Map(c.tools, func(tool models.ToolRecord, _ int) string {
		return tool.Category
	}))
	sort.Strings(categories)
	return categories
}

// SearchByKeywords returns tools where any term is a case-insensitive
// substring of the tool's joined keyword list.
func (c *Catalog) SearchByKeywords(terms []string) []models.ToolRecord {
	return lo.Filter(c.tools, func(tool models.ToolRecord, _ int) bool {
		joined := strings.ToLower(strings.Join(tool.Keywords, " "))
		return lo.SomeBy(terms, func(term string) bool {
			return strings.Contains(joined, strings.ToLower(term))
		})
	})
}
