package validator

import (
	"fmt"
	"strings"
)

var missingFieldSuggestions = map[string]string{
	FieldTitle: "添加一個描述性的活動標題",
	FieldItems: "添加至少一個問題和答案對",
}

const (
	fixErrorsSuggestion     = "修正所有標示為錯誤的欄位後即可發佈"
	reviewWarningSuggestion = "檢查警告項目以提升內容品質"
)

// GenerateFixSuggestions turns a Result into human-readable advice.
// Suggestions for missing fields come first, in required-field order,
// followed by generic advice when errors or warnings are present.
func GenerateFixSuggestions(res Result) []string {
	out := []string{}
	for _, field := range RequiredFields() {
		for _, m := range res.MissingFields {
			if m == field {
				out = append(out, missingFieldSuggestions[field])
				break
			}
		}
	}
	if len(res.Errors) > 0 {
		out = append(out, fixErrorsSuggestion)
	}
	if len(res.Warnings) > 0 {
		out = append(out, reviewWarningSuggestion)
	}
	return out
}

// FormatErrorMessage renders the error-severity entries of errs as a single
// message. A lone error is returned verbatim; several are enumerated under a
// header, one per line.
func FormatErrorMessage(errs []ValidationError) string {
	var msgs []string
	for _, e := range errs {
		if e.Severity == SeverityError {
			msgs = append(msgs, e.Message)
		}
	}

	switch len(msgs) {
	case 0:
		return ""
	case 1:
		return msgs[0]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "發現 %d 個錯誤：", len(msgs))
	for i, m := range msgs {
		fmt.Fprintf(&b, "\n%d. %s", i+1, m)
	}
	return b.String()
}
