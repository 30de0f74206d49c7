package templates

import (
	"slices"

	"github.com/educreate/gamecore/internal/catalog"
)

// OptionType is the UI control used for a template option.
type OptionType string

const (
	OptionRadio    OptionType = "radio"
	OptionCheckbox OptionType = "checkbox"
	OptionSlider   OptionType = "slider"
	OptionSelect   OptionType = "select"
)

// GameOption is a template-level setting shown on the template picker.
type GameOption struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        OptionType `json:"type"`
	Choices     []string   `json:"options,omitempty"`
	Min         *float64   `json:"min,omitempty"`
	Max         *float64   `json:"max,omitempty"`
	Default     any        `json:"default"`
	Description string     `json:"description"`
}

func bound(v float64) *float64 { return &v }

var commonOptions = []GameOption{
	{
		ID:          "timer",
		Name:        "計時器",
		Type:        OptionRadio,
		Choices:     []string{"none", "countUp", "countDown"},
		Default:     "none",
		Description: "選擇計時模式",
	},
	{
		ID:          "shuffleQuestions",
		Name:        "隨機問題順序",
		Type:        OptionCheckbox,
		Default:     false,
		Description: "每次遊戲隨機排列問題順序",
	},
}

// templateOptions lists each template's options, its own appended after
// the common options.
var templateOptions = map[catalog.GameType][]GameOption{
	catalog.GameQuiz: slices.Concat(commonOptions, []GameOption{
		{ID: "lives", Name: "生命值", Type: OptionSlider, Min: bound(0), Max: bound(10), Default: 0, Description: "設置玩家生命值（0表示無限制）"},
		{ID: "shuffleAnswers", Name: "隨機答案順序", Type: OptionCheckbox, Default: false, Description: "每個問題的答案選項隨機排列"},
		{ID: "answerLabels", Name: "答案標籤", Type: OptionRadio, Choices: []string{"abc", "none"}, Default: "abc", Description: "顯示 A、B、C 標籤或無標籤"},
		{ID: "showAnswers", Name: "顯示正確答案", Type: OptionCheckbox, Default: true, Description: "遊戲結束後顯示正確答案"},
	}),
	catalog.GameMatching: slices.Concat(commonOptions, []GameOption{
		{ID: "layout", Name: "佈局模式", Type: OptionRadio, Choices: []string{"grid", "columns", "scattered"}, Default: "grid", Description: "選擇配對項目的佈局方式"},
		{ID: "autoCheck", Name: "自動檢查", Type: OptionCheckbox, Default: true, Description: "拖拽後自動檢查配對是否正確"},
	}),
	catalog.GameFlashcards: slices.Concat(commonOptions, []GameOption{
		{ID: "autoAdvance", Name: "自動翻頁", Type: OptionCheckbox, Default: false, Description: "自動翻到下一張卡片"},
		{ID: "showProgress", Name: "顯示進度", Type: OptionCheckbox, Default: true, Description: "顯示學習進度條"},
	}),
	catalog.GameSpinWheel: slices.Concat(commonOptions, []GameOption{
		{ID: "spinSpeed", Name: "轉盤速度", Type: OptionSlider, Min: bound(1), Max: bound(5), Default: 3, Description: "設置轉盤旋轉速度"},
		{ID: "soundEffects", Name: "音效", Type: OptionCheckbox, Default: true, Description: "啟用轉盤音效"},
	}),
	catalog.GameWhackAMole: slices.Concat(commonOptions, []GameOption{
		{ID: "gameSpeed", Name: "遊戲速度", Type: OptionSlider, Min: bound(1), Max: bound(5), Default: 3, Description: "設置地鼠出現速度"},
		{ID: "gameDuration", Name: "遊戲時長", Type: OptionSlider, Min: bound(30), Max: bound(180), Default: 60, Description: "設置遊戲時長（秒）"},
	}),
	catalog.GameMemoryCards: slices.Concat(commonOptions, []GameOption{
		{ID: "cardFlipSpeed", Name: "翻牌速度", Type: OptionSlider, Min: bound(1), Max: bound(5), Default: 3, Description: "設置卡片翻轉速度"},
		{ID: "maxAttempts", Name: "最大嘗試次數", Type: OptionSlider, Min: bound(0), Max: bound(20), Default: 0, Description: "限制最大嘗試次數（0表示無限制）"},
	}),
}

// Options returns the options of a template. Unknown templates get the
// common options.
func Options(id catalog.GameType) []GameOption {
	opts, ok := templateOptions[id]
	if !ok {
		return slices.Clone(commonOptions)
	}
	return slices.Clone(opts)
}
