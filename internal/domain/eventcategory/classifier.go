package eventcategory

import "strings"

// Classifier maps free-text event type names to categories by case-insensitive
// substring matching. It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	table Table
}

var defaultClassifier = mustNewClassifier(DefaultTable())

// Default returns the classifier built from DefaultTable.
func Default() *Classifier {
	return defaultClassifier
}

// NewClassifier normalizes and validates table before building the classifier.
func NewClassifier(table Table) (*Classifier, error) {
	normalized := table.Normalize()
	if err := normalized.Validate(); err != nil {
		return nil, err
	}
	return &Classifier{table: normalized}, nil
}

func mustNewClassifier(table Table) *Classifier {
	c, err := NewClassifier(table)
	if err != nil {
		panic(err)
	}
	return c
}

// Classify returns the category of the first group with a keyword contained in
// name. Empty names and names matching no group are Unknown.
func (c *Classifier) Classify(name string) Category {
	if c == nil {
		c = defaultClassifier
	}

	value := strings.ToLower(strings.TrimSpace(name))
	if value == "" {
		return Unknown
	}

	for _, group := range c.table {
		for _, keyword := range group.Keywords {
			if strings.Contains(value, keyword) {
				return group.Category
			}
		}
	}

	return Unknown
}

// Keywords returns a copy of the keywords configured for category.
func (c *Classifier) Keywords(category Category) []string {
	if c == nil {
		c = defaultClassifier
	}
	for _, group := range c.table {
		if group.Category == category {
			return append([]string(nil), group.Keywords...)
		}
	}
	return nil
}

// Table returns a copy of the normalized keyword table.
func (c *Classifier) Table() Table {
	if c == nil {
		c = defaultClassifier
	}
	out := make(Table, 0, len(c.table))
	for _, group := range c.table {
		out = append(out, KeywordGroup{
			Category: group.Category,
			Keywords: append([]string(nil), group.Keywords...),
		})
	}
	return out
}
