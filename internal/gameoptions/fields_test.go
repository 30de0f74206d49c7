package gameoptions

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Paths() {
		if seen[p] {
			t.Errorf("duplicate path %q", p)
		}
		seen[p] = true
	}
	assert.Len(t, seen, len(fields))
}

func TestSetValueConvertsNumbers(t *testing.T) {
	var o Options
	require.NoError(t, SetValue(&o, "timer.duration", 45.0))
	assert.Equal(t, 45, *o.Timer.Duration)

	require.NoError(t, SetValue(&o, "audio.voiceOver.speed", 2))
	assert.Equal(t, 2.0, *o.Audio.VoiceOver.Speed)

	require.NoError(t, SetValue(&o, "lives.count", json.Number("4")))
	assert.Equal(t, 4, *o.Lives.Count)

	err := SetValue(&o, "timer.duration", 45.5)
	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, 45, *o.Timer.Duration)

	assert.ErrorIs(t, SetValue(&o, "timer.duration", 1e19), ErrTypeMismatch)
	assert.ErrorIs(t, SetValue(&o, "timer.duration", -1e19), ErrTypeMismatch)
	assert.ErrorIs(t, SetValue(&o, "timer.duration", math.Inf(1)), ErrTypeMismatch)
	assert.ErrorIs(t, SetValue(&o, "timer.duration", json.Number("9223372036854775808")), ErrTypeMismatch)
	assert.Equal(t, 45, *o.Timer.Duration)

	assert.ErrorIs(t, SetValue(&o, "timer.type", 3), ErrTypeMismatch)
	assert.ErrorIs(t, SetValue(&o, "gameplay.allowSkip", "yes"), ErrTypeMismatch)
}

func TestSetValueUnknownPath(t *testing.T) {
	var o Options
	assert.ErrorIs(t, SetValue(&o, "nope.path", 1), ErrUnknownOption)
	assert.ErrorIs(t, SetValue(&o, "gameSpecific.", 1), ErrUnknownOption)

	_, ok := Value(&o, "nope.path")
	assert.False(t, ok)
}

func TestValueReportsUnset(t *testing.T) {
	var o Options
	_, ok := Value(&o, "scoring.type")
	assert.False(t, ok)

	o.Scoring.Type = ptr("stars")
	v, ok := Value(&o, "scoring.type")
	require.True(t, ok)
	assert.Equal(t, "stars", v)
}

func TestEffectsList(t *testing.T) {
	var o Options
	require.NoError(t, SetValue(&o, "visual.animations.effects", []any{"bounce", "glow"}))
	assert.Equal(t, []string{"bounce", "glow"}, o.Visual.Animations.Effects)

	assert.ErrorIs(t, SetValue(&o, "visual.animations.effects", []any{"bounce", 3}), ErrTypeMismatch)

	v, ok := Value(&o, "visual.animations.effects")
	require.True(t, ok)
	v.([]string)[0] = "changed"
	assert.Equal(t, "bounce", o.Visual.Animations.Effects[0])
}

func TestGameSpecificNestedKeys(t *testing.T) {
	var o Options
	require.NoError(t, SetValue(&o, "gameSpecific.board.width", 5))
	require.NoError(t, SetValue(&o, "gameSpecific.layout", "grid"))

	v, ok := Value(&o, "gameSpecific.board.width")
	require.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Equal(t, map[string]any{
		"board":  map[string]any{"width": 5},
		"layout": "grid",
	}, o.GameSpecific)

	_, ok = Value(&o, "gameSpecific.layout.size")
	assert.False(t, ok)
}

func TestConforms(t *testing.T) {
	color := Definition{Type: TypeColor}
	assert.NoError(t, color.conforms("#1a2B3c"))
	assert.NoError(t, color.conforms("#fa0"))
	assert.Error(t, color.conforms(0xffffff))
	assert.Error(t, color.conforms("#12345"))
	assert.Error(t, color.conforms("red"))

	multi := Definition{Type: TypeMultiselect, Choices: []Choice{{Value: "a"}, {Value: "b"}}}
	assert.NoError(t, multi.conforms([]string{"a", "b"}))
	assert.NoError(t, multi.conforms([]any{"b"}))
	assert.Error(t, multi.conforms([]string{"a", "c"}))
	assert.Error(t, multi.conforms("a"))

	num := Definition{Type: TypeNumber, Min: limit(1), Max: limit(5)}
	assert.NoError(t, num.conforms(1))
	assert.NoError(t, num.conforms(5.0))
	assert.Error(t, num.conforms(0))
	assert.Error(t, num.conforms("3"))

	open := Definition{Type: TypeNumber}
	assert.NoError(t, open.conforms(-1000))

	sel := Definition{Type: TypeSelect, Choices: []Choice{{Value: 1}, {Value: 2}}}
	assert.NoError(t, sel.conforms(2.0))
	assert.Error(t, sel.conforms(3))
}

func TestEqualValues(t *testing.T) {
	assert.True(t, equalValues(1, 1.0))
	assert.True(t, equalValues("a", "a"))
	assert.True(t, equalValues(true, true))
	assert.False(t, equalValues(1, "1"))
	assert.False(t, equalValues(true, 1))
}
