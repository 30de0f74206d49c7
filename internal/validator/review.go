package validator

import (
	"slices"

	"github.com/educreate/gamecore/internal/catalog"
	"github.com/educreate/gamecore/internal/content"
)

// Report bundles every check the editor runs before publishing.
type Report struct {
	Result     Result            `json:"result"`
	Duplicates []ValidationError `json:"duplicates"`

	// Game and Compatibility are set only when a game type was requested.
	Game          catalog.GameType  `json:"game,omitempty"`
	Compatibility []ValidationError `json:"compatibility,omitempty"`

	Suggestions []string `json:"suggestions"`
}

// Review validates c, looks for duplicate terms and, when game is
// non-empty, checks compatibility with that game.
func Review(c *content.Content, game catalog.GameType) Report {
	res := ValidateContent(c)

	var items []content.Item
	if c != nil {
		items = c.Items
	}

	r := Report{
		Result:     res,
		Duplicates: nonNil(CheckDuplicateItems(items)),
	}
	if game != "" {
		r.Game = game
		r.Compatibility = nonNil(ValidateGameCompatibility(c, game))
	}
	r.Suggestions = GenerateFixSuggestions(r.combined())
	return r
}

// combined returns Result with the duplicate and compatibility findings
// added to its errors and warnings by severity.
func (r Report) combined() Result {
	all := r.Result
	all.Errors = slices.Clone(all.Errors)
	all.Warnings = slices.Clone(all.Warnings)
	for _, f := range slices.Concat(r.Duplicates, r.Compatibility) {
		if f.Severity == SeverityError {
			all.Errors = append(all.Errors, f)
		} else {
			all.Warnings = append(all.Warnings, f)
		}
	}
	return all
}

// Publishable reports whether the content can be published and, when a
// game was requested, played as that game.
func (r Report) Publishable() bool {
	if !r.Result.CanPublish {
		return false
	}
	for _, f := range r.Compatibility {
		if f.Severity == SeverityError {
			return false
		}
	}
	return true
}

// WarningCount returns the number of warnings across all checks.
func (r Report) WarningCount() int {
	n := len(r.Result.Warnings) + len(r.Duplicates)
	for _, f := range r.Compatibility {
		if f.Severity == SeverityWarning {
			n++
		}
	}
	return n
}
