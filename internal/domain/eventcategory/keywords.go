package eventcategory

import (
	"fmt"
	"strings"
)

// KeywordGroup maps a category to the substrings that identify it.
type KeywordGroup struct {
	Category Category
	Keywords []string
}

// Table is an ordered list of keyword groups. Earlier groups take precedence.
type Table []KeywordGroup

// DefaultTable is the bilingual (pt-BR / en) table used when no table is configured.
func DefaultTable() Table {
	return Table{
		{Category: Goal, Keywords: []string{"gol", "goal"}},
		{Category: Assist, Keywords: []string{"assist", "passe"}},
		{Category: YellowCard, Keywords: []string{"cartão amarelo", "yellow card"}},
		{Category: RedCard, Keywords: []string{"cartão vermelho", "red card"}},
		{Category: Substitution, Keywords: []string{"substituição", "substitution"}},
	}
}

// Normalize lower-cases and trims keywords, dropping empty ones.
func (t Table) Normalize() Table {
	out := make(Table, 0, len(t))
	for _, group := range t {
		keywords := make([]string, 0, len(group.Keywords))
		for _, keyword := range group.Keywords {
			value := strings.ToLower(strings.TrimSpace(keyword))
			if value == "" {
				continue
			}
			keywords = append(keywords, value)
		}
		out = append(out, KeywordGroup{
			Category: Category(strings.ToLower(strings.TrimSpace(string(group.Category)))),
			Keywords: keywords,
		})
	}
	return out
}

// Validate checks a normalized table. Every keyword must classify back to its
// own group, so a keyword containing a keyword of an earlier group is rejected.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("keyword table is empty")
	}

	seen := make(map[Category]struct{}, len(t))
	for i, group := range t {
		if !group.Category.IsKnown() {
			return fmt.Errorf("keyword group %d: invalid category %q", i, group.Category)
		}
		if _, dup := seen[group.Category]; dup {
			return fmt.Errorf("keyword group %d: duplicate category %q", i, group.Category)
		}
		seen[group.Category] = struct{}{}
		if len(group.Keywords) == 0 {
			return fmt.Errorf("keyword group %q has no keywords", group.Category)
		}

		for _, keyword := range group.Keywords {
			for _, earlier := range t[:i] {
				for _, shadow := range earlier.Keywords {
					if strings.Contains(keyword, shadow) {
						return fmt.Errorf("keyword %q of %q is shadowed by %q of %q", keyword, group.Category, shadow, earlier.Category)
					}
				}
			}
		}
	}

	return nil
}
