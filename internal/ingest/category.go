package ingest

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmarren/budget-tracker/internal/domain"
)

// CategoryRule maps a set of case-insensitive keyword substrings to a
// category name. Rules are consulted only when the source carries no
// explicit category field (PDF text mode).
type CategoryRule struct {
	Category string   `yaml:"category"`
	Keywords []string `yaml:"keywords"`
}

// DefaultRules returns the built-in classifier rules.
func DefaultRules() []CategoryRule {
	return []CategoryRule{
		{Category: domain.CategoryGroceries, Keywords: []string{"grocery", "aldi", "lidl"}},
		{Category: domain.CategoryEntertainment, Keywords: []string{"entertainment", "cinema", "netflix"}},
		{Category: domain.CategoryElectronics, Keywords: []string{"amazon", "electronics"}},
	}
}

// LoadRules reads classifier rules from a YAML file. The file is a list
// of {category, keywords} entries.
func LoadRules(path string) ([]CategoryRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadRules: %w", err)
	}
	var rules []CategoryRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("LoadRules: parsing %s: %w", path, err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("LoadRules: %s contains no rules", path)
	}
	return rules, nil
}

// Classify maps a free-text description onto a category. Matching is a
// case-insensitive substring check, first matching rule wins, and
// descriptions that match nothing fall back to "Other".
func Classify(description string, rules []CategoryRule) string {
	desc := strings.ToLower(description)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(desc, strings.ToLower(kw)) {
				return rule.Category
			}
		}
	}
	return domain.CategoryOther
}
