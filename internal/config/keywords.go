package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/riskibarqy/skauts-stats/internal/domain/eventcategory"
)

type keywordGroupFile struct {
	Category string   `koanf:"category"`
	Keywords []string `koanf:"keywords"`
}

// LoadClassifier builds the event classifier from the YAML keyword table at
// path. An empty path selects the built-in bilingual table.
//
//	groups:
//	  - category: goal
//	    keywords: [gol, goal]
func LoadClassifier(path string) (*eventcategory.Classifier, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return eventcategory.Default(), nil
	}

	table, err := loadKeywordTable(path)
	if err != nil {
		return nil, err
	}

	classifier, err := eventcategory.NewClassifier(table)
	if err != nil {
		return nil, fmt.Errorf("keyword table %s: %w", path, err)
	}
	return classifier, nil
}

func loadKeywordTable(path string) (eventcategory.Table, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("load keyword table %s: %w", path, err)
	}

	var groups []keywordGroupFile
	if err := k.UnmarshalWithConf("groups", &groups, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("decode keyword table %s: %w", path, err)
	}

	table := make(eventcategory.Table, 0, len(groups))
	for _, group := range groups {
		table = append(table, eventcategory.KeywordGroup{
			Category: eventcategory.Category(group.Category),
			Keywords: group.Keywords,
		})
	}
	return table, nil
}
