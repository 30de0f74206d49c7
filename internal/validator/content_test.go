package validator

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/educreate/gamecore/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems() []content.Item {
	return []content.Item{
		{ID: "1", Term: "蘋果", Definition: "一種紅色或綠色的圓形水果"},
		{ID: "2", Term: "香蕉", Definition: "一種黃色的彎曲水果"},
		{ID: "3", Term: "橘子", Definition: "一種橙色的柑橘類水果"},
		{ID: "4", Term: "葡萄", Definition: "一種小而圓的水果，通常成串生長"},
	}
}

func validContent() *content.Content {
	return &content.Content{
		ID:          "test_content",
		Title:       "水果詞彙學習",
		Description: "學習各種水果的名稱和特徵",
		Items:       validItems(),
		Tags:        []string{"水果", "詞彙"},
		Language:    "zh-TW",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		UserID:      "test-user",
	}
}

func manyItems(n int) []content.Item {
	items := make([]content.Item, n)
	for i := range items {
		items[i] = content.Item{
			ID:         fmt.Sprintf("item_%d", i),
			Term:       fmt.Sprintf("詞彙%d", i),
			Definition: fmt.Sprintf("定義%d", i),
		}
	}
	return items
}

func TestValidateContent_Valid(t *testing.T) {
	res := ValidateContent(validContent())

	assert.True(t, res.IsValid)
	assert.True(t, res.CanPublish)
	assert.Empty(t, res.Errors)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.MissingFields)
	assert.Equal(t, []string{"title", "items"}, res.RequiredFields)
}

func TestValidateContent_MissingTitle(t *testing.T) {
	for _, title := range []string{"", "   "} {
		c := validContent()
		c.Title = title
		res := ValidateContent(c)

		assert.False(t, res.IsValid)
		assert.False(t, res.CanPublish)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "title", res.Errors[0].Field)
		assert.Equal(t, SeverityError, res.Errors[0].Severity)
		assert.Contains(t, res.MissingFields, "title")
	}
}

func TestValidateContent_NoItems(t *testing.T) {
	c := validContent()
	c.Items = nil
	res := ValidateContent(c)

	assert.False(t, res.IsValid)
	assert.False(t, res.CanPublish)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "items", res.Errors[0].Field)
	assert.Equal(t, SeverityError, res.Errors[0].Severity)
	assert.Contains(t, res.MissingFields, "items")
}

func TestValidateContent_SoftLimits(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *content.Content)
		field  string
	}{
		{"long title", func(c *content.Content) { c.Title = strings.Repeat("a", 101) }, "title"},
		{"long description", func(c *content.Content) { c.Description = strings.Repeat("a", 501) }, "description"},
		{"too many tags", func(c *content.Content) {
			c.Tags = nil
			for i := 0; i < 11; i++ {
				c.Tags = append(c.Tags, fmt.Sprintf("tag%d", i))
			}
		}, "tags"},
		{"too many items", func(c *content.Content) { c.Items = manyItems(101) }, "items"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContent()
			tt.mutate(c)
			res := ValidateContent(c)

			assert.True(t, res.IsValid, "warnings must not affect validity")
			assert.True(t, res.CanPublish)
			require.Len(t, res.Warnings, 1)
			assert.Equal(t, tt.field, res.Warnings[0].Field)
			assert.Equal(t, SeverityWarning, res.Warnings[0].Severity)
		})
	}
}

func TestValidateContent_LimitsCountCharacters(t *testing.T) {
	c := validContent()
	c.Title = strings.Repeat("字", 100)
	res := ValidateContent(c)
	assert.Empty(t, res.Warnings, "100 CJK characters is within the limit")
}

func TestValidateContent_AggregatesItemFindings(t *testing.T) {
	c := validContent()
	c.Items[1].Term = ""
	c.Items[3].Definition = strings.Repeat("a", 501)
	res := ValidateContent(c)

	assert.False(t, res.IsValid)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "items[1].term", res.Errors[0].Field)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, "items[3].definition", res.Warnings[0].Field)
	assert.Empty(t, res.MissingFields)
}

func TestValidateContent_NilAndEmpty(t *testing.T) {
	for _, c := range []*content.Content{nil, {}} {
		res := ValidateContent(c)
		assert.False(t, res.IsValid)
		assert.Len(t, res.Errors, 2)
		assert.Equal(t, []string{"title", "items"}, res.MissingFields)
		assert.NotNil(t, res.Warnings)
	}
}

func TestValidateContentItem(t *testing.T) {
	tests := []struct {
		name     string
		item     content.Item
		field    string
		severity Severity
	}{
		{"empty term", content.Item{ID: "1", Term: "", Definition: "定義"}, "items[0].term", SeverityError},
		{"blank term", content.Item{ID: "1", Term: " \t", Definition: "定義"}, "items[0].term", SeverityError},
		{"empty definition", content.Item{ID: "1", Term: "詞彙", Definition: ""}, "items[0].definition", SeverityError},
		{"long term", content.Item{ID: "1", Term: strings.Repeat("a", 201), Definition: "定義"}, "items[0].term", SeverityWarning},
		{"long definition", content.Item{ID: "1", Term: "詞彙", Definition: strings.Repeat("a", 501)}, "items[0].definition", SeverityWarning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateContentItem(tt.item, 0)
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Equal(t, tt.severity, errs[0].Severity)
		})
	}
}

func TestValidateContentItem_Valid(t *testing.T) {
	assert.Empty(t, ValidateContentItem(validItems()[0], 0))
}

func TestValidateContentItem_BothEmpty(t *testing.T) {
	errs := ValidateContentItem(content.Item{}, 7)
	require.Len(t, errs, 2)
	assert.Equal(t, "items[7].term", errs[0].Field)
	assert.Equal(t, "items[7].definition", errs[1].Field)
	assert.Contains(t, errs[0].Message, "第 8 項")
}
