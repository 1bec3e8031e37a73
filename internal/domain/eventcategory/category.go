package eventcategory

// Category is the semantic meaning derived from an event type name.
type Category string

const (
	Goal         Category = "goal"
	Assist       Category = "assist"
	YellowCard   Category = "yellow_card"
	RedCard      Category = "red_card"
	Substitution Category = "substitution"
	Unknown      Category = "unknown"
)

var knownCategories = map[Category]struct{}{
	Goal:         {},
	Assist:       {},
	YellowCard:   {},
	RedCard:      {},
	Substitution: {},
	Unknown:      {},
}

// Presentation carries opaque icon and color keys for the presentation layer.
type Presentation struct {
	Icon  string
	Color string
}

var presentations = map[Category]Presentation{
	Goal:         {Icon: "sports_soccer", Color: "success"},
	Assist:       {Icon: "assistant", Color: "primary"},
	YellowCard:   {Icon: "style", Color: "warning"},
	RedCard:      {Icon: "style", Color: "danger"},
	Substitution: {Icon: "swap_horiz", Color: "accent"},
	Unknown:      {Icon: "event", Color: "neutral"},
}

// Presentation returns the display hints of the category; unrecognized values
// fall back to the Unknown hints.
func (c Category) Presentation() Presentation {
	if p, ok := presentations[c]; ok {
		return p
	}
	return presentations[Unknown]
}

func (c Category) IsKnown() bool {
	_, ok := knownCategories[c]
	return ok && c != Unknown
}
