package validator

import (
	"testing"

	"github.com/educreate/gamecore/internal/catalog"
	"github.com/educreate/gamecore/internal/content"
	"github.com/stretchr/testify/assert"
)

func TestReview_Valid(t *testing.T) {
	r := Review(validContent(), catalog.GameMemoryCards)

	assert.True(t, r.Publishable())
	assert.Equal(t, catalog.GameMemoryCards, r.Game)
	assert.Empty(t, r.Compatibility)
	assert.Empty(t, r.Duplicates)
	assert.Empty(t, r.Suggestions)
	assert.Equal(t, 0, r.WarningCount())
}

func TestReview_NoGame(t *testing.T) {
	r := Review(validContent(), "")
	assert.Empty(t, r.Game)
	assert.Nil(t, r.Compatibility)
	assert.True(t, r.Publishable())
}

func TestReview_IncompatibleBlocksPublishing(t *testing.T) {
	c := validContent()
	c.Items = c.Items[:3]
	r := Review(c, catalog.GameMemoryCards)

	assert.True(t, r.Result.CanPublish)
	assert.False(t, r.Publishable())
	assert.Equal(t, []string{fixErrorsSuggestion}, r.Suggestions)
}

func TestReview_DuplicatesOnlyStillSuggest(t *testing.T) {
	c := validContent()
	c.Items = append(c.Items, content.Item{Term: "蘋果", Definition: "again"})
	r := Review(c, "")

	assert.Empty(t, r.Result.Warnings)
	assert.Len(t, r.Duplicates, 1)
	assert.Equal(t, []string{reviewWarningSuggestion}, r.Suggestions)
}

func TestReview_CountsWarnings(t *testing.T) {
	c := validContent()
	c.Items = append(c.Items, content.Item{Term: "蘋果", Definition: "again"})
	c.Items = append(c.Items, manyItems(50)...)
	r := Review(c, catalog.GameQuiz)

	// one duplicate group, one over-max warning
	assert.Equal(t, 2, r.WarningCount())
	assert.True(t, r.Publishable())
}

func TestReview_Nil(t *testing.T) {
	r := Review(nil, catalog.GameQuiz)
	assert.False(t, r.Publishable())
	assert.NotNil(t, r.Duplicates)
}
