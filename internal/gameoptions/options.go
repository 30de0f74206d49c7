package gameoptions

// Options is the full set of game settings. Every leaf is a pointer so a
// partial value can tell "not set" (nil) apart from a zero value.
type Options struct {
	Timer         TimerOptions         `json:"timer"`
	Scoring       ScoringOptions       `json:"scoring"`
	Lives         LivesOptions         `json:"lives"`
	Difficulty    DifficultyOptions    `json:"difficulty"`
	Audio         AudioOptions         `json:"audio"`
	Visual        VisualOptions        `json:"visual"`
	Accessibility AccessibilityOptions `json:"accessibility"`
	Gameplay      GameplayOptions      `json:"gameplay"`

	// GameSpecific holds settings only one game understands, keyed by the
	// part of the option id after "gameSpecific.".
	GameSpecific map[string]any `json:"gameSpecific,omitempty"`
}

type TimerOptions struct {
	Type        *string `json:"type,omitempty"` // none, countUp, countDown, perQuestion
	Duration    *int    `json:"duration,omitempty"`
	ShowWarning *bool   `json:"showWarning,omitempty"`
	WarningTime *int    `json:"warningTime,omitempty"`
	AutoSubmit  *bool   `json:"autoSubmit,omitempty"`
}

type ScoringOptions struct {
	Type               *string `json:"type,omitempty"` // points, percentage, stars, custom
	PointsPerCorrect   *int    `json:"pointsPerCorrect,omitempty"`
	PointsPerIncorrect *int    `json:"pointsPerIncorrect,omitempty"`
	BonusForSpeed      *bool   `json:"bonusForSpeed,omitempty"`
	PenaltyForWrong    *bool   `json:"penaltyForWrong,omitempty"`
	ShowScore          *string `json:"showScore,omitempty"` // always, end, never
}

type LivesOptions struct {
	Enabled        *bool `json:"enabled,omitempty"`
	Count          *int  `json:"count,omitempty"`
	ShowHearts     *bool `json:"showHearts,omitempty"`
	GameOverOnZero *bool `json:"gameOverOnZero,omitempty"`
	Regenerate     *bool `json:"regenerate,omitempty"`
	RegenerateTime *int  `json:"regenerateTime,omitempty"` // seconds
}

type DifficultyOptions struct {
	Level    *string          `json:"level,omitempty"` // easy, medium, hard, adaptive
	Adaptive AdaptiveSettings `json:"adaptiveSettings"`
}

type AdaptiveSettings struct {
	StartLevel      *string `json:"startLevel,omitempty"`
	AdjustmentSpeed *string `json:"adjustmentSpeed,omitempty"`
	MinLevel        *string `json:"minLevel,omitempty"`
	MaxLevel        *string `json:"maxLevel,omitempty"`
}

type AudioOptions struct {
	BackgroundMusic BackgroundMusic `json:"backgroundMusic"`
	SoundEffects    SoundEffects    `json:"soundEffects"`
	VoiceOver       VoiceOver       `json:"voiceOver"`
}

type BackgroundMusic struct {
	Enabled *bool   `json:"enabled,omitempty"`
	Volume  *int    `json:"volume,omitempty"` // 0-100
	Track   *string `json:"track,omitempty"`
}

type SoundEffects struct {
	Enabled         *bool   `json:"enabled,omitempty"`
	Volume          *int    `json:"volume,omitempty"` // 0-100
	CorrectSound    *string `json:"correctSound,omitempty"`
	IncorrectSound  *string `json:"incorrectSound,omitempty"`
	ClickSound      *string `json:"clickSound,omitempty"`
	CompletionSound *string `json:"completionSound,omitempty"`
}

type VoiceOver struct {
	Enabled  *bool    `json:"enabled,omitempty"`
	Language *string  `json:"language,omitempty"`
	Speed    *float64 `json:"speed,omitempty"` // 0.5-2.0
	AutoRead *bool    `json:"autoRead,omitempty"`
}

type VisualOptions struct {
	Animations  Animations  `json:"animations"`
	Particles   Particles   `json:"particles"`
	Transitions Transitions `json:"transitions"`
}

type Animations struct {
	Enabled *bool    `json:"enabled,omitempty"`
	Speed   *string  `json:"speed,omitempty"` // slow, normal, fast
	Effects []string `json:"effects,omitempty"`
}

type Particles struct {
	Enabled   *bool   `json:"enabled,omitempty"`
	Type      *string `json:"type,omitempty"`      // confetti, stars, bubbles, fireworks
	Intensity *string `json:"intensity,omitempty"` // low, medium, high
}

type Transitions struct {
	Type     *string `json:"type,omitempty"`     // fade, slide, zoom, flip
	Duration *int    `json:"duration,omitempty"` // milliseconds
}

type AccessibilityOptions struct {
	HighContrast       *bool `json:"highContrast,omitempty"`
	LargeText          *bool `json:"largeText,omitempty"`
	KeyboardNavigation *bool `json:"keyboardNavigation,omitempty"`
	ScreenReader       *bool `json:"screenReader,omitempty"`
	ColorBlindFriendly *bool `json:"colorBlindFriendly,omitempty"`
	ReducedMotion      *bool `json:"reducedMotion,omitempty"`
}

type GameplayOptions struct {
	ShuffleQuestions *bool `json:"shuffleQuestions,omitempty"`
	ShuffleAnswers   *bool `json:"shuffleAnswers,omitempty"`
	AllowSkip        *bool `json:"allowSkip,omitempty"`
	ShowProgress     *bool `json:"showProgress,omitempty"`
	ShowHints        *bool `json:"showHints,omitempty"`
	MaxAttempts      *int  `json:"maxAttempts,omitempty"`
	InstantFeedback  *bool `json:"instantFeedback,omitempty"`
	ReviewMode       *bool `json:"reviewMode,omitempty"`
}

func ptr[T any](v T) *T { return &v }

// skeleton returns the generic defaults shared by every game type, before
// any definition-specific default is applied.
func skeleton() Options {
	return Options{
		Timer: TimerOptions{Type: ptr("none")},
		Scoring: ScoringOptions{
			Type:             ptr("points"),
			PointsPerCorrect: ptr(10),
			ShowScore:        ptr("always"),
		},
		Lives:      LivesOptions{Enabled: ptr(false)},
		Difficulty: DifficultyOptions{Level: ptr("medium")},
		Audio: AudioOptions{
			BackgroundMusic: BackgroundMusic{Enabled: ptr(false), Volume: ptr(50)},
			SoundEffects:    SoundEffects{Enabled: ptr(true), Volume: ptr(70)},
			VoiceOver:       VoiceOver{Enabled: ptr(false), Language: ptr("zh-TW"), Speed: ptr(1.0)},
		},
		Visual: VisualOptions{
			Animations:  Animations{Enabled: ptr(true), Speed: ptr("normal"), Effects: []string{}},
			Particles:   Particles{Enabled: ptr(true), Type: ptr("confetti"), Intensity: ptr("medium")},
			Transitions: Transitions{Type: ptr("fade"), Duration: ptr(300)},
		},
		Accessibility: AccessibilityOptions{
			HighContrast:       ptr(false),
			LargeText:          ptr(false),
			KeyboardNavigation: ptr(true),
			ScreenReader:       ptr(false),
			ColorBlindFriendly: ptr(false),
			ReducedMotion:      ptr(false),
		},
		Gameplay: GameplayOptions{
			ShuffleQuestions: ptr(false),
			ShuffleAnswers:   ptr(true),
			AllowSkip:        ptr(false),
			ShowProgress:     ptr(true),
			ShowHints:        ptr(false),
			MaxAttempts:      ptr(1),
			InstantFeedback:  ptr(true),
			ReviewMode:       ptr(false),
		},
		GameSpecific: map[string]any{},
	}
}
