package catalog

import "slices"

// Difficulty is how demanding a game is for the player.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Rank orders difficulties from easiest (0) to hardest.
// Unrecognized values sort after every known difficulty.
func (d Difficulty) Rank() int {
	switch d {
	case DifficultyEasy:
		return 0
	case DifficultyMedium:
		return 1
	case DifficultyHard:
		return 2
	default:
		return 3
	}
}

// Category groups templates by play style.
type Category string

const (
	CategoryQuiz     Category = "quiz"
	CategoryMatching Category = "matching"
	CategoryMemory   Category = "memory"
	CategoryAction   Category = "action"
	CategoryCreative Category = "creative"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{CategoryQuiz, CategoryMatching, CategoryMemory, CategoryAction, CategoryCreative}
}

// Template is a catalog entry describing a playable game.
type Template struct {
	ID                GameType   `json:"id"`
	Name              string     `json:"name"`
	Icon              string     `json:"icon"`
	Description       string     `json:"description"`
	Difficulty        Difficulty `json:"difficulty"`
	EstimatedTime     string     `json:"estimatedTime"`
	Features          []string   `json:"features"`
	MinItems          int        `json:"minItems"`
	MaxItems          int        `json:"maxItems"`
	RequiresEvenItems bool       `json:"requiresEvenItems"`
	Category          Category   `json:"category"`
}

// Requirement returns the item-count constraints of the template.
func (t Template) Requirement() Requirement {
	return Requirement{
		Name:              t.Name,
		MinItems:          t.MinItems,
		MaxItems:          t.MaxItems,
		RequiresEvenItems: t.RequiresEvenItems,
	}
}

// Accepts reports whether a content set with itemCount items can be played
// with this template.
func (t Template) Accepts(itemCount int) bool {
	return t.Requirement().Accepts(itemCount)
}

func (t Template) clone() Template {
	t.Features = slices.Clone(t.Features)
	return t
}

// byID indexes seedTemplates; populated by init().
var byID map[GameType]*Template

func init() {
	byID = make(map[GameType]*Template, len(seedTemplates))
	for i := range seedTemplates {
		byID[seedTemplates[i].ID] = &seedTemplates[i]
	}
}

// Templates returns a copy of the full catalog in catalog order.
func Templates() []Template {
	out := make([]Template, len(seedTemplates))
	for i, t := range seedTemplates {
		out[i] = t.clone()
	}
	return out
}

// GetTemplate returns the catalog entry for id.
func GetTemplate(id GameType) (Template, bool) {
	t, ok := byID[id]
	if !ok {
		return Template{}, false
	}
	return t.clone(), true
}
