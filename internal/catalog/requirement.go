package catalog

// Requirement holds the item-count constraints a game places on content.
type Requirement struct {
	Name              string `json:"name"`
	MinItems          int    `json:"minItems"`
	MaxItems          int    `json:"maxItems"`
	RequiresEvenItems bool   `json:"requiresEvenItems"`
}

// UnknownRequirement applies to game types the catalog does not recognize.
var UnknownRequirement = Requirement{
	Name:              "未知遊戲",
	MinItems:          1,
	MaxItems:          50,
	RequiresEvenItems: false,
}

// RequirementFor returns the constraints for t. Playable types take their
// constraints from the template catalog; unrecognized types get
// UnknownRequirement.
func RequirementFor(t GameType) Requirement {
	if tpl, ok := byID[t]; ok {
		return tpl.Requirement()
	}
	if r, ok := referenceRequirements[t]; ok {
		return r
	}
	return UnknownRequirement
}

// Accepts reports whether itemCount satisfies the min, max and parity constraints.
func (r Requirement) Accepts(itemCount int) bool {
	return itemCount >= r.MinItems &&
		itemCount <= r.MaxItems &&
		(!r.RequiresEvenItems || itemCount%2 == 0)
}
