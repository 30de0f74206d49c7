package gameoptions

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/educreate/gamecore/internal/fileformat"
)

var (
	// ErrUnknownOption is returned for an option id that names no field.
	ErrUnknownOption = errors.New("unknown option")
	// ErrTypeMismatch is returned when a value cannot be stored in a field.
	ErrTypeMismatch = errors.New("type mismatch")
)

const specificPrefix = "gameSpecific."

// field reads and writes one leaf of Options.
type field struct {
	get func(o *Options) (any, bool)
	set func(o *Options, v any) error
}

func leaf[T any](slot func(o *Options) **T) field {
	return field{
		get: func(o *Options) (any, bool) {
			p := *slot(o)
			if p == nil {
				return nil, false
			}
			return *p, true
		},
		set: func(o *Options, v any) error {
			t, err := coerce[T](v)
			if err != nil {
				return err
			}
			*slot(o) = &t
			return nil
		},
	}
}

func list(slot func(o *Options) *[]string) field {
	return field{
		get: func(o *Options) (any, bool) {
			s := *slot(o)
			if s == nil {
				return nil, false
			}
			return slices.Clone(s), true
		},
		set: func(o *Options, v any) error {
			s, err := coerce[[]string](v)
			if err != nil {
				return err
			}
			*slot(o) = slices.Clone(s)
			return nil
		},
	}
}

type binding struct {
	path string
	field
}

// fields lists every typed leaf of Options in declaration order.
var fields = []binding{
	{"timer.type", leaf(func(o *Options) **string { return &o.Timer.Type })},
	{"timer.duration", leaf(func(o *Options) **int { return &o.Timer.Duration })},
	{"timer.showWarning", leaf(func(o *Options) **bool { return &o.Timer.ShowWarning })},
	{"timer.warningTime", leaf(func(o *Options) **int { return &o.Timer.WarningTime })},
	{"timer.autoSubmit", leaf(func(o *Options) **bool { return &o.Timer.AutoSubmit })},

	{"scoring.type", leaf(func(o *Options) **string { return &o.Scoring.Type })},
	{"scoring.pointsPerCorrect", leaf(func(o *Options) **int { return &o.Scoring.PointsPerCorrect })},
	{"scoring.pointsPerIncorrect", leaf(func(o *Options) **int { return &o.Scoring.PointsPerIncorrect })},
	{"scoring.bonusForSpeed", leaf(func(o *Options) **bool { return &o.Scoring.BonusForSpeed })},
	{"scoring.penaltyForWrong", leaf(func(o *Options) **bool { return &o.Scoring.PenaltyForWrong })},
	{"scoring.showScore", leaf(func(o *Options) **string { return &o.Scoring.ShowScore })},

	{"lives.enabled", leaf(func(o *Options) **bool { return &o.Lives.Enabled })},
	{"lives.count", leaf(func(o *Options) **int { return &o.Lives.Count })},
	{"lives.showHearts", leaf(func(o *Options) **bool { return &o.Lives.ShowHearts })},
	{"lives.gameOverOnZero", leaf(func(o *Options) **bool { return &o.Lives.GameOverOnZero })},
	{"lives.regenerate", leaf(func(o *Options) **bool { return &o.Lives.Regenerate })},
	{"lives.regenerateTime", leaf(func(o *Options) **int { return &o.Lives.RegenerateTime })},

	{"difficulty.level", leaf(func(o *Options) **string { return &o.Difficulty.Level })},
	{"difficulty.adaptiveSettings.startLevel", leaf(func(o *Options) **string { return &o.Difficulty.Adaptive.StartLevel })},
	{"difficulty.adaptiveSettings.adjustmentSpeed", leaf(func(o *Options) **string { return &o.Difficulty.Adaptive.AdjustmentSpeed })},
	{"difficulty.adaptiveSettings.minLevel", leaf(func(o *Options) **string { return &o.Difficulty.Adaptive.MinLevel })},
	{"difficulty.adaptiveSettings.maxLevel", leaf(func(o *Options) **string { return &o.Difficulty.Adaptive.MaxLevel })},

	{"audio.backgroundMusic.enabled", leaf(func(o *Options) **bool { return &o.Audio.BackgroundMusic.Enabled })},
	{"audio.backgroundMusic.volume", leaf(func(o *Options) **int { return &o.Audio.BackgroundMusic.Volume })},
	{"audio.backgroundMusic.track", leaf(func(o *Options) **string { return &o.Audio.BackgroundMusic.Track })},
	{"audio.soundEffects.enabled", leaf(func(o *Options) **bool { return &o.Audio.SoundEffects.Enabled })},
	{"audio.soundEffects.volume", leaf(func(o *Options) **int { return &o.Audio.SoundEffects.Volume })},
	{"audio.soundEffects.correctSound", leaf(func(o *Options) **string { return &o.Audio.SoundEffects.CorrectSound })},
	{"audio.soundEffects.incorrectSound", leaf(func(o *Options) **string { return &o.Audio.SoundEffects.IncorrectSound })},
	{"audio.soundEffects.clickSound", leaf(func(o *Options) **string { return &o.Audio.SoundEffects.ClickSound })},
	{"audio.soundEffects.completionSound", leaf(func(o *Options) **string { return &o.Audio.SoundEffects.CompletionSound })},
	{"audio.voiceOver.enabled", leaf(func(o *Options) **bool { return &o.Audio.VoiceOver.Enabled })},
	{"audio.voiceOver.language", leaf(func(o *Options) **string { return &o.Audio.VoiceOver.Language })},
	{"audio.voiceOver.speed", leaf(func(o *Options) **float64 { return &o.Audio.VoiceOver.Speed })},
	{"audio.voiceOver.autoRead", leaf(func(o *Options) **bool { return &o.Audio.VoiceOver.AutoRead })},

	{"visual.animations.enabled", leaf(func(o *Options) **bool { return &o.Visual.Animations.Enabled })},
	{"visual.animations.speed", leaf(func(o *Options) **string { return &o.Visual.Animations.Speed })},
	{"visual.animations.effects", list(func(o *Options) *[]string { return &o.Visual.Animations.Effects })},
	{"visual.particles.enabled", leaf(func(o *Options) **bool { return &o.Visual.Particles.Enabled })},
	{"visual.particles.type", leaf(func(o *Options) **string { return &o.Visual.Particles.Type })},
	{"visual.particles.intensity", leaf(func(o *Options) **string { return &o.Visual.Particles.Intensity })},
	{"visual.transitions.type", leaf(func(o *Options) **string { return &o.Visual.Transitions.Type })},
	{"visual.transitions.duration", leaf(func(o *Options) **int { return &o.Visual.Transitions.Duration })},

	{"accessibility.highContrast", leaf(func(o *Options) **bool { return &o.Accessibility.HighContrast })},
	{"accessibility.largeText", leaf(func(o *Options) **bool { return &o.Accessibility.LargeText })},
	{"accessibility.keyboardNavigation", leaf(func(o *Options) **bool { return &o.Accessibility.KeyboardNavigation })},
	{"accessibility.screenReader", leaf(func(o *Options) **bool { return &o.Accessibility.ScreenReader })},
	{"accessibility.colorBlindFriendly", leaf(func(o *Options) **bool { return &o.Accessibility.ColorBlindFriendly })},
	{"accessibility.reducedMotion", leaf(func(o *Options) **bool { return &o.Accessibility.ReducedMotion })},

	{"gameplay.shuffleQuestions", leaf(func(o *Options) **bool { return &o.Gameplay.ShuffleQuestions })},
	{"gameplay.shuffleAnswers", leaf(func(o *Options) **bool { return &o.Gameplay.ShuffleAnswers })},
	{"gameplay.allowSkip", leaf(func(o *Options) **bool { return &o.Gameplay.AllowSkip })},
	{"gameplay.showProgress", leaf(func(o *Options) **bool { return &o.Gameplay.ShowProgress })},
	{"gameplay.showHints", leaf(func(o *Options) **bool { return &o.Gameplay.ShowHints })},
	{"gameplay.maxAttempts", leaf(func(o *Options) **int { return &o.Gameplay.MaxAttempts })},
	{"gameplay.instantFeedback", leaf(func(o *Options) **bool { return &o.Gameplay.InstantFeedback })},
	{"gameplay.reviewMode", leaf(func(o *Options) **bool { return &o.Gameplay.ReviewMode })},
}

var fieldIndex map[string]field

func init() {
	fieldIndex = make(map[string]field, len(fields))
	for _, b := range fields {
		fieldIndex[b.path] = b.field
	}
}

// Paths returns the ids of every typed option field.
func Paths() []string {
	paths := make([]string, len(fields))
	for i, b := range fields {
		paths[i] = b.path
	}
	return paths
}

func lookup(path string) (field, bool) {
	if f, ok := fieldIndex[path]; ok {
		return f, true
	}
	key, ok := strings.CutPrefix(path, specificPrefix)
	if !ok || key == "" {
		return field{}, false
	}
	return specific(strings.Split(key, ".")), true
}

// specific addresses a value inside GameSpecific, descending through nested
// maps for multi-part keys.
func specific(keys []string) field {
	return field{
		get: func(o *Options) (any, bool) {
			m := o.GameSpecific
			for _, k := range keys[:len(keys)-1] {
				next, ok := m[k].(map[string]any)
				if !ok {
					return nil, false
				}
				m = next
			}
			v, ok := m[keys[len(keys)-1]]
			return v, ok
		},
		set: func(o *Options, v any) error {
			if o.GameSpecific == nil {
				o.GameSpecific = make(map[string]any)
			}
			m := o.GameSpecific
			for _, k := range keys[:len(keys)-1] {
				next, ok := m[k].(map[string]any)
				if !ok {
					next = make(map[string]any)
					m[k] = next
				}
				m = next
			}
			m[keys[len(keys)-1]] = v
			return nil
		},
	}
}

// Value returns the value stored at the dotted option id path, and whether
// it is set.
func Value(o *Options, path string) (any, bool) {
	f, ok := lookup(path)
	if !ok {
		return nil, false
	}
	return f.get(o)
}

// SetValue stores v at the dotted option id path. Numbers are converted to
// the field's type when that loses nothing.
func SetValue(o *Options, path string, v any) error {
	f, ok := lookup(path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOption, path)
	}
	if err := f.set(o, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func coerce[T any](v any) (T, error) {
	if t, ok := v.(T); ok {
		return t, nil
	}

	var zero T
	var out any
	switch any(zero).(type) {
	case int:
		if f, ok := fileformat.Number(v); ok {
			if n, ok := exactInt(f); ok {
				out = n
			}
		}
	case float64:
		if f, ok := fileformat.Number(v); ok {
			out = f
		}
	case []string:
		if s, ok := stringList(v); ok {
			out = s
		}
	}
	if t, ok := out.(T); ok {
		return t, nil
	}
	return zero, fmt.Errorf("%w: want %T, got %T", ErrTypeMismatch, zero, v)
}

// exactInt converts f to an int when it is integral and in range.
// -math.MinInt is math.MaxInt+1, which float64 holds exactly.
func exactInt(f float64) (int, bool) {
	if f != math.Trunc(f) || f < math.MinInt || f >= -math.MinInt {
		return 0, false
	}
	return int(f), true
}

func stringList(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// cloneMap deep-copies nested maps and slices of decoded values.
func cloneMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := maps.Clone(m)
	for k, v := range out {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch v := v.(type) {
	case map[string]any:
		return cloneMap(v)
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	case []string:
		return slices.Clone(v)
	default:
		return v
	}
}
