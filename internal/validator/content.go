package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/educreate/gamecore/internal/content"
)

// ValidateContent runs the game-independent checks on c: title, description,
// tags, item count, and every item. A nil content is validated as empty.
func ValidateContent(c *content.Content) Result {
	if c == nil {
		c = &content.Content{}
	}

	var findings []ValidationError
	var missing []string

	title := strings.TrimSpace(c.Title)
	switch {
	case title == "":
		findings = append(findings, ValidationError{
			Field:      FieldTitle,
			Message:    "標題是必需的",
			Severity:   SeverityError,
			Suggestion: "請輸入活動標題",
		})
		missing = append(missing, FieldTitle)
	case utf8.RuneCountInString(c.Title) > MaxTitleLength:
		findings = append(findings, ValidationError{
			Field:      FieldTitle,
			Message:    fmt.Sprintf("標題過長（%d/%d 字元）", utf8.RuneCountInString(c.Title), MaxTitleLength),
			Severity:   SeverityWarning,
			Suggestion: fmt.Sprintf("請將標題縮短至 %d 字元以內", MaxTitleLength),
		})
	}

	if n := utf8.RuneCountInString(c.Description); n > MaxDescriptionLength {
		findings = append(findings, ValidationError{
			Field:      "description",
			Message:    fmt.Sprintf("描述過長（%d/%d 字元）", n, MaxDescriptionLength),
			Severity:   SeverityWarning,
			Suggestion: fmt.Sprintf("請將描述縮短至 %d 字元以內", MaxDescriptionLength),
		})
	}

	if n := len(c.Tags); n > MaxTags {
		findings = append(findings, ValidationError{
			Field:      "tags",
			Message:    fmt.Sprintf("標籤過多（%d/%d）", n, MaxTags),
			Severity:   SeverityWarning,
			Suggestion: fmt.Sprintf("請保留最相關的 %d 個標籤", MaxTags),
		})
	}

	switch n := len(c.Items); {
	case n == 0:
		findings = append(findings, ValidationError{
			Field:      FieldItems,
			Message:    "至少需要1個項目",
			Severity:   SeverityError,
			Suggestion: "請添加至少一個問題和答案",
		})
		missing = append(missing, FieldItems)
	case n > MaxItems:
		findings = append(findings, ValidationError{
			Field:      FieldItems,
			Message:    fmt.Sprintf("項目數量過多（%d/%d），可能影響遊戲體驗", n, MaxItems),
			Severity:   SeverityWarning,
			Suggestion: "考慮將內容拆分為多個活動",
		})
	}

	for i, item := range c.Items {
		findings = append(findings, ValidateContentItem(item, i)...)
	}

	errs, warns := split(findings)
	res := Result{
		IsValid:        len(errs) == 0,
		Errors:         nonNil(errs),
		Warnings:       nonNil(warns),
		RequiredFields: RequiredFields(),
		MissingFields:  nonNil(missing),
	}
	res.CanPublish = res.IsValid && len(res.MissingFields) == 0
	return res
}

// ValidateContentItem checks a single item. index is its 0-based position
// and is only used to build field paths and messages.
func ValidateContentItem(item content.Item, index int) []ValidationError {
	var out []ValidationError
	pos := index + 1

	if strings.TrimSpace(item.Term) == "" {
		out = append(out, ValidationError{
			Field:      itemField(index, "term"),
			Message:    fmt.Sprintf("第 %d 項的詞彙/問題不能為空", pos),
			Severity:   SeverityError,
			Suggestion: "請輸入詞彙或問題",
		})
	} else if n := utf8.RuneCountInString(item.Term); n > MaxTermLength {
		out = append(out, ValidationError{
			Field:      itemField(index, "term"),
			Message:    fmt.Sprintf("第 %d 項的詞彙/問題過長（%d/%d 字元）", pos, n, MaxTermLength),
			Severity:   SeverityWarning,
			Suggestion: "請縮短詞彙或問題",
		})
	}

	if strings.TrimSpace(item.Definition) == "" {
		out = append(out, ValidationError{
			Field:      itemField(index, "definition"),
			Message:    fmt.Sprintf("第 %d 項的定義/答案不能為空", pos),
			Severity:   SeverityError,
			Suggestion: "請輸入定義或答案",
		})
	} else if n := utf8.RuneCountInString(item.Definition); n > MaxDefinitionLength {
		out = append(out, ValidationError{
			Field:      itemField(index, "definition"),
			Message:    fmt.Sprintf("第 %d 項的定義/答案過長（%d/%d 字元）", pos, n, MaxDefinitionLength),
			Severity:   SeverityWarning,
			Suggestion: "請縮短定義或答案",
		})
	}

	return out
}

func itemField(index int, name string) string {
	return fmt.Sprintf("items[%d].%s", index, name)
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
