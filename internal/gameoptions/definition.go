// Package gameoptions describes the detailed per-game settings: which
// options a game exposes, their defaults, how they depend on one another
// and how a user's partial settings combine with the defaults.
package gameoptions

import "slices"

// OptionType is the kind of control an option is edited with.
type OptionType string

const (
	TypeBoolean     OptionType = "boolean"
	TypeNumber      OptionType = "number"
	TypeString      OptionType = "string"
	TypeSelect      OptionType = "select"
	TypeRange       OptionType = "range"
	TypeColor       OptionType = "color"
	TypeMultiselect OptionType = "multiselect"
)

// Category groups options on the settings screen.
type Category string

const (
	CategoryTimer         Category = "timer"
	CategoryScoring       Category = "scoring"
	CategoryLives         Category = "lives"
	CategoryDifficulty    Category = "difficulty"
	CategoryAudio         Category = "audio"
	CategoryVisual        Category = "visual"
	CategoryAccessibility Category = "accessibility"
	CategoryGameplay      Category = "gameplay"
	CategorySpecific      Category = "specific"
)

// Categories returns every category in display order.
func Categories() []Category {
	return []Category{
		CategoryTimer, CategoryScoring, CategoryLives, CategoryDifficulty,
		CategoryAudio, CategoryVisual, CategoryAccessibility, CategoryGameplay,
		CategorySpecific,
	}
}

// Choice is one selectable value of a select or multiselect option.
type Choice struct {
	Value       any    `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Dependency requires another option to hold Value before the dependent
// option may be set.
type Dependency struct {
	OptionID string `json:"optionId"`
	Value    any    `json:"value"`
}

// Definition declares one option of a game: where it lives in Options, how
// it is edited, its default and its constraints.
type Definition struct {
	ID           string       `json:"id"` // dotted path into Options, e.g. "timer.duration"
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Type         OptionType   `json:"type"`
	Category     Category     `json:"category"`
	DefaultValue any          `json:"defaultValue"`
	Choices      []Choice     `json:"options,omitempty"`
	Min          *float64     `json:"min,omitempty"`
	Max          *float64     `json:"max,omitempty"`
	Step         float64      `json:"step,omitempty"`
	Unit         string       `json:"unit,omitempty"`
	Dependencies []Dependency `json:"dependencies,omitempty"`
	Preview      bool         `json:"preview,omitempty"`

	// Validate is an extra predicate run after the built-in constraint.
	// Its error message is reported verbatim.
	Validate func(value any) error `json:"-"`
}

func (d Definition) clone() Definition {
	d.Choices = slices.Clone(d.Choices)
	d.Dependencies = slices.Clone(d.Dependencies)
	return d
}
