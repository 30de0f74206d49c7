package validator

import "fmt"

// Severity grades a validation finding.
type Severity string

const (
	SeverityError   Severity = "error"   // blocks publishing
	SeverityWarning Severity = "warning" // quality issue, never blocks
	SeverityInfo    Severity = "info"
)

// ValidationError describes one finding against a content set.
type ValidationError struct {
	// Field is the path of the offending value, e.g. "title",
	// "items[2].term" or "items[0,1].term" for cross-item findings.
	Field      string   `json:"field"`
	Message    string   `json:"message"`
	Severity   Severity `json:"severity"`
	Suggestion string   `json:"suggestion,omitempty"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Severity, e.Field, e.Message)
}

// Result is the outcome of ValidateContent.
//
// IsValid is true iff Errors is empty; CanPublish additionally requires
// MissingFields to be empty.
type Result struct {
	IsValid        bool              `json:"isValid"`
	Errors         []ValidationError `json:"errors"`
	Warnings       []ValidationError `json:"warnings"`
	CanPublish     bool              `json:"canPublish"`
	RequiredFields []string          `json:"requiredFields"`
	MissingFields  []string          `json:"missingFields"`
}

// Fields every publishable content set must fill in, in declaration order.
const (
	FieldTitle = "title"
	FieldItems = "items"
)

// RequiredFields returns the fields checked for presence.
func RequiredFields() []string {
	return []string{FieldTitle, FieldItems}
}

// Soft and hard limits, measured in characters (code points) or counts.
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
	MaxTags              = 10
	MaxItems             = 100
	MaxTermLength        = 200
	MaxDefinitionLength  = 500
)

// split partitions findings by severity. Info findings are dropped.
func split(findings []ValidationError) (errs, warns []ValidationError) {
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			errs = append(errs, f)
		case SeverityWarning:
			warns = append(warns, f)
		}
	}
	return errs, warns
}
