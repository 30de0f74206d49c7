package validator

import (
	"testing"

	"github.com/educreate/gamecore/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckDuplicateItems(t *testing.T) {
	items := []content.Item{
		{ID: "1", Term: "蘋果", Definition: "定義1"},
		{ID: "2", Term: "蘋果", Definition: "定義2"},
		{ID: "3", Term: "香蕉", Definition: "定義3"},
	}
	errs := CheckDuplicateItems(items)

	require.Len(t, errs, 1)
	assert.Equal(t, "items[0,1].term", errs[0].Field)
	assert.Equal(t, SeverityWarning, errs[0].Severity)
	assert.Contains(t, errs[0].Message, "蘋果")
}

func TestCheckDuplicateItems_IgnoresCaseAndSpace(t *testing.T) {
	items := []content.Item{
		{Term: "Apple"},
		{Term: "apple"},
		{Term: "Banana"},
	}
	errs := CheckDuplicateItems(items)

	require.Len(t, errs, 1)
	assert.Equal(t, "items[0,1].term", errs[0].Field)
	assert.Contains(t, errs[0].Message, "「Apple」", "message quotes the first occurrence")

	errs = CheckDuplicateItems([]content.Item{{Term: " Straße"}, {Term: "STRASSE "}})
	require.Len(t, errs, 1, "case folding handles ß")
}

func TestCheckDuplicateItems_GroupsInFirstOccurrenceOrder(t *testing.T) {
	items := []content.Item{
		{Term: "b"},
		{Term: "a"},
		{Term: "c"},
		{Term: "A"},
		{Term: "B"},
		{Term: "b"},
	}
	errs := CheckDuplicateItems(items)

	require.Len(t, errs, 2)
	assert.Equal(t, "items[0,4,5].term", errs[0].Field)
	assert.Equal(t, "items[1,3].term", errs[1].Field)
}

func TestCheckDuplicateItems_None(t *testing.T) {
	assert.Empty(t, CheckDuplicateItems(validItems()))
	assert.Empty(t, CheckDuplicateItems(nil))
}

func TestCheckDuplicateItems_SkipsEmptyTerms(t *testing.T) {
	assert.Empty(t, CheckDuplicateItems([]content.Item{{Term: ""}, {Term: "  "}}))
}
