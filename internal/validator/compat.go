package validator

import (
	"fmt"

	"github.com/educreate/gamecore/internal/catalog"
	"github.com/educreate/gamecore/internal/content"
)

// GameRequirements returns the item constraints of gameType. Unrecognized
// types fall back to catalog.UnknownRequirement.
func GameRequirements(gameType catalog.GameType) catalog.Requirement {
	return catalog.RequirementFor(gameType)
}

// ValidateGameCompatibility checks the item count of c against gameType.
// The minimum, maximum and parity checks are independent and reported in
// that order. Exceeding the maximum is only a warning: the game still runs
// but extra items may be left out.
func ValidateGameCompatibility(c *content.Content, gameType catalog.GameType) []ValidationError {
	req := GameRequirements(gameType)
	n := c.ItemCount()

	var out []ValidationError
	if n < req.MinItems {
		out = append(out, ValidationError{
			Field:      FieldItems,
			Message:    fmt.Sprintf("%s 至少需要 %d 個項目，目前只有 %d 個，還差 %d 個", req.Name, req.MinItems, n, req.MinItems-n),
			Severity:   SeverityError,
			Suggestion: fmt.Sprintf("請再添加 %d 個項目", req.MinItems-n),
		})
	}
	if n > req.MaxItems {
		out = append(out, ValidationError{
			Field:      FieldItems,
			Message:    fmt.Sprintf("%s 最多支持 %d 個項目，目前有 %d 個", req.Name, req.MaxItems, n),
			Severity:   SeverityWarning,
			Suggestion: fmt.Sprintf("超出的 %d 個項目可能不會出現在遊戲中", n-req.MaxItems),
		})
	}
	if req.RequiresEvenItems && n%2 != 0 {
		out = append(out, ValidationError{
			Field:      FieldItems,
			Message:    fmt.Sprintf("%s 需要偶數個項目，目前有 %d 個", req.Name, n),
			Severity:   SeverityError,
			Suggestion: "請添加或刪除一個項目",
		})
	}
	return out
}
