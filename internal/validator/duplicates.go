package validator

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/educreate/gamecore/internal/content"
	"golang.org/x/text/cases"
)

// CheckDuplicateItems reports terms that occur more than once, ignoring case
// and surrounding whitespace. One warning is emitted per group, in order of
// the group's first occurrence; the message quotes that first occurrence.
// Empty terms are left to ValidateContentItem.
func CheckDuplicateItems(items []content.Item) []ValidationError {
	fold := cases.Fold()

	type group struct {
		term    string
		indices []int
	}
	var order []string
	groups := make(map[string]*group)

	for i, item := range items {
		term := strings.TrimSpace(item.Term)
		if term == "" {
			continue
		}
		key := fold.String(term)
		g, ok := groups[key]
		if !ok {
			g = &group{term: term}
			groups[key] = g
			order = append(order, key)
		}
		g.indices = append(g.indices, i)
	}

	var out []ValidationError
	for _, key := range order {
		g := groups[key]
		if len(g.indices) < 2 {
			continue
		}
		idx := make([]string, len(g.indices))
		for i, n := range g.indices {
			idx[i] = strconv.Itoa(n)
		}
		out = append(out, ValidationError{
			Field:      fmt.Sprintf("items[%s].term", strings.Join(idx, ",")),
			Message:    fmt.Sprintf("發現重複的詞彙「%s」，共出現 %d 次", g.term, len(g.indices)),
			Severity:   SeverityWarning,
			Suggestion: "刪除或修改重複的項目",
		})
	}
	return out
}
