package validator

import (
	"testing"

	"github.com/educreate/gamecore/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateGameCompatibility_Quiz(t *testing.T) {
	assert.Empty(t, ValidateGameCompatibility(validContent(), catalog.GameQuiz))
}

func TestValidateGameCompatibility_TooFew(t *testing.T) {
	c := validContent()
	c.Items = c.Items[:1]
	errs := ValidateGameCompatibility(c, catalog.GameWhackAMole)

	require.Len(t, errs, 1)
	assert.Equal(t, SeverityError, errs[0].Severity)
	assert.Contains(t, errs[0].Message, "至少需要 5 個項目")
	assert.Contains(t, errs[0].Message, "還差 4 個")
}

func TestValidateGameCompatibility_TooMany(t *testing.T) {
	c := validContent()
	c.Items = manyItems(51)
	errs := ValidateGameCompatibility(c, catalog.GameQuiz)

	require.Len(t, errs, 1)
	assert.Equal(t, SeverityWarning, errs[0].Severity)
	assert.Contains(t, errs[0].Message, "最多支持 50 個項目")
}

func TestValidateGameCompatibility_Odd(t *testing.T) {
	c := validContent()
	c.Items = c.Items[:3]
	errs := ValidateGameCompatibility(c, catalog.GameMemoryCards)

	// 3 items is also below the minimum of 4.
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Message, "至少需要 4 個項目")
	assert.Equal(t, SeverityError, errs[1].Severity)
	assert.Contains(t, errs[1].Message, "需要偶數個項目")
}

func TestValidateGameCompatibility_OddAboveMinimum(t *testing.T) {
	c := validContent()
	c.Items = manyItems(5)
	errs := ValidateGameCompatibility(c, catalog.GameMemoryCards)

	require.Len(t, errs, 1)
	assert.Equal(t, SeverityError, errs[0].Severity)
	assert.Contains(t, errs[0].Message, "需要偶數個項目")
}

func TestValidateGameCompatibility_AllThree(t *testing.T) {
	c := validContent()
	c.Items = manyItems(25)
	errs := ValidateGameCompatibility(c, catalog.GameMemoryCards)

	require.Len(t, errs, 2)
	assert.Equal(t, SeverityWarning, errs[0].Severity, "max check comes before parity")
	assert.Equal(t, SeverityError, errs[1].Severity)
}

func TestValidateGameCompatibility_UnknownUsesFallback(t *testing.T) {
	c := validContent()
	c.Items = nil
	errs := ValidateGameCompatibility(c, "unknown")

	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "未知遊戲")
}

func TestValidateGameCompatibility_NilContent(t *testing.T) {
	errs := ValidateGameCompatibility(nil, catalog.GameQuiz)
	require.Len(t, errs, 1)
	assert.Equal(t, SeverityError, errs[0].Severity)
}

func TestGameRequirements(t *testing.T) {
	quiz := GameRequirements(catalog.GameQuiz)
	assert.Equal(t, "測驗問答", quiz.Name)
	assert.Equal(t, 1, quiz.MinItems)
	assert.Equal(t, 50, quiz.MaxItems)
	assert.False(t, quiz.RequiresEvenItems)

	mem := GameRequirements(catalog.GameMemoryCards)
	assert.Equal(t, "記憶卡片", mem.Name)
	assert.Equal(t, 4, mem.MinItems)
	assert.Equal(t, 24, mem.MaxItems)
	assert.True(t, mem.RequiresEvenItems)

	unknown := GameRequirements("unknown")
	assert.Equal(t, "未知遊戲", unknown.Name)
	assert.Equal(t, 1, unknown.MinItems)
	assert.Equal(t, 50, unknown.MaxItems)
}
