package templates

import (
	"cmp"
	"slices"

	"github.com/educreate/gamecore/internal/catalog"
)

// MaxRecommendations caps the result of Recommended.
const MaxRecommendations = 6

// All returns the full template catalog in catalog order.
func All() []catalog.Template {
	return catalog.Templates()
}

// ByCategory returns the templates in category, in catalog order.
func ByCategory(category catalog.Category) []catalog.Template {
	var out []catalog.Template
	for _, t := range catalog.Templates() {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

// Recommended returns the templates that can play itemCount items, easiest
// first, at most MaxRecommendations of them. Templates of equal difficulty
// keep their catalog order.
func Recommended(itemCount int) []catalog.Template {
	var out []catalog.Template
	for _, t := range catalog.Templates() {
		if t.Accepts(itemCount) {
			out = append(out, t)
		}
	}
	slices.SortStableFunc(out, func(a, b catalog.Template) int {
		return cmp.Compare(a.Difficulty.Rank(), b.Difficulty.Rank())
	})
	if len(out) > MaxRecommendations {
		out = out[:MaxRecommendations]
	}
	return out
}

// Get returns the template with the given id.
func Get(id catalog.GameType) (catalog.Template, bool) {
	return catalog.GetTemplate(id)
}

// IsContentCompatible reports whether itemCount items fit the template.
// Unlike validator.ValidateGameCompatibility, a game type without a
// template is never compatible.
func IsContentCompatible(id catalog.GameType, itemCount int) bool {
	t, ok := catalog.GetTemplate(id)
	if !ok {
		return false
	}
	return t.Accepts(itemCount)
}
