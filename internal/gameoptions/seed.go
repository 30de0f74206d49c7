package gameoptions

import (
	"fmt"
	"slices"

	"golang.org/x/text/language"

	"github.com/educreate/gamecore/internal/catalog"
)

func limit(v float64) *float64 { return &v }

var speedChoices = []Choice{
	{Value: "slow", Label: "慢速"},
	{Value: "normal", Label: "正常"},
	{Value: "fast", Label: "快速"},
}

func commonDefinitions() []Definition {
	return []Definition{
		{
			ID:           "timer.type",
			Name:         "計時器類型",
			Description:  "選擇計時器的行為方式",
			Type:         TypeSelect,
			Category:     CategoryTimer,
			DefaultValue: "none",
			Choices: []Choice{
				{Value: "none", Label: "無計時器"},
				{Value: "countUp", Label: "正計時"},
				{Value: "countDown", Label: "倒計時"},
			},
		},
		{
			ID:           "audio.soundEffects.enabled",
			Name:         "啟用音效",
			Description:  "播放遊戲音效",
			Type:         TypeBoolean,
			Category:     CategoryAudio,
			DefaultValue: true,
		},
		{
			ID:           "visual.animations.enabled",
			Name:         "啟用動畫",
			Description:  "顯示過渡動畫和視覺效果",
			Type:         TypeBoolean,
			Category:     CategoryVisual,
			DefaultValue: true,
			Preview:      true,
		},
	}
}

func quizDefinitions() []Definition {
	return []Definition{
		{
			ID:           "timer.type",
			Name:         "計時器類型",
			Description:  "選擇計時器的行為方式",
			Type:         TypeSelect,
			Category:     CategoryTimer,
			DefaultValue: "none",
			Choices: []Choice{
				{Value: "none", Label: "無計時器"},
				{Value: "countUp", Label: "正計時"},
				{Value: "countDown", Label: "倒計時"},
				{Value: "perQuestion", Label: "每題計時"},
			},
		},
		{
			ID:           "timer.duration",
			Name:         "計時時長",
			Description:  "設置計時器的時長（秒）",
			Type:         TypeRange,
			Category:     CategoryTimer,
			DefaultValue: 60,
			Min:          limit(10),
			Max:          limit(600),
			Step:         10,
			Unit:         "秒",
			Dependencies: []Dependency{{OptionID: "timer.type", Value: "countDown"}},
		},
		{
			ID:           "timer.showWarning",
			Name:         "顯示時間警告",
			Description:  "在時間即將結束時顯示警告",
			Type:         TypeBoolean,
			Category:     CategoryTimer,
			DefaultValue: true,
			Dependencies: []Dependency{{OptionID: "timer.type", Value: "countDown"}},
		},
		{
			ID:           "scoring.type",
			Name:         "計分方式",
			Description:  "選擇如何計算和顯示分數",
			Type:         TypeSelect,
			Category:     CategoryScoring,
			DefaultValue: "points",
			Choices: []Choice{
				{Value: "points", Label: "積分制"},
				{Value: "percentage", Label: "百分比"},
				{Value: "stars", Label: "星級評分"},
				{Value: "custom", Label: "自定義"},
			},
		},
		{
			ID:           "scoring.pointsPerCorrect",
			Name:         "正確答案分數",
			Description:  "每個正確答案獲得的分數",
			Type:         TypeNumber,
			Category:     CategoryScoring,
			DefaultValue: 10,
			Min:          limit(1),
			Max:          limit(100),
			Dependencies: []Dependency{{OptionID: "scoring.type", Value: "points"}},
		},
		{
			ID:           "scoring.bonusForSpeed",
			Name:         "速度獎勵",
			Description:  "根據答題速度給予額外分數",
			Type:         TypeBoolean,
			Category:     CategoryScoring,
			DefaultValue: false,
		},
		{
			ID:           "lives.enabled",
			Name:         "啟用生命值",
			Description:  "為遊戲添加生命值機制",
			Type:         TypeBoolean,
			Category:     CategoryLives,
			DefaultValue: false,
		},
		{
			ID:           "lives.count",
			Name:         "生命值數量",
			Description:  "設置初始生命值數量",
			Type:         TypeRange,
			Category:     CategoryLives,
			DefaultValue: 3,
			Min:          limit(1),
			Max:          limit(10),
			Dependencies: []Dependency{{OptionID: "lives.enabled", Value: true}},
		},
		{
			ID:           "gameplay.shuffleQuestions",
			Name:         "隨機問題順序",
			Description:  "每次遊戲時隨機排列問題順序",
			Type:         TypeBoolean,
			Category:     CategoryGameplay,
			DefaultValue: false,
		},
		{
			ID:           "gameplay.shuffleAnswers",
			Name:         "隨機答案順序",
			Description:  "隨機排列每個問題的答案選項",
			Type:         TypeBoolean,
			Category:     CategoryGameplay,
			DefaultValue: true,
		},
		{
			ID:           "gameplay.allowSkip",
			Name:         "允許跳過",
			Description:  "允許玩家跳過困難的問題",
			Type:         TypeBoolean,
			Category:     CategoryGameplay,
			DefaultValue: false,
		},
		{
			ID:           "gameplay.showHints",
			Name:         "顯示提示",
			Description:  "為問題提供提示功能",
			Type:         TypeBoolean,
			Category:     CategoryGameplay,
			DefaultValue: false,
		},
		{
			ID:           "gameplay.maxAttempts",
			Name:         "最大嘗試次數",
			Description:  "每個問題的最大嘗試次數",
			Type:         TypeRange,
			Category:     CategoryGameplay,
			DefaultValue: 1,
			Min:          limit(1),
			Max:          limit(5),
		},
		{
			ID:           "audio.soundEffects.enabled",
			Name:         "啟用音效",
			Description:  "播放遊戲音效",
			Type:         TypeBoolean,
			Category:     CategoryAudio,
			DefaultValue: true,
		},
		{
			ID:           "audio.soundEffects.volume",
			Name:         "音效音量",
			Description:  "調整音效的音量大小",
			Type:         TypeRange,
			Category:     CategoryAudio,
			DefaultValue: 70,
			Min:          limit(0),
			Max:          limit(100),
			Unit:         "%",
			Dependencies: []Dependency{{OptionID: "audio.soundEffects.enabled", Value: true}},
		},
		{
			ID:           "visual.animations.enabled",
			Name:         "啟用動畫",
			Description:  "顯示過渡動畫和視覺效果",
			Type:         TypeBoolean,
			Category:     CategoryVisual,
			DefaultValue: true,
			Preview:      true,
		},
		{
			ID:           "visual.particles.enabled",
			Name:         "啟用粒子效果",
			Description:  "在正確答案時顯示粒子效果",
			Type:         TypeBoolean,
			Category:     CategoryVisual,
			DefaultValue: true,
			Preview:      true,
		},
		{
			ID:           "visual.particles.type",
			Name:         "粒子效果類型",
			Description:  "選擇粒子效果的樣式",
			Type:         TypeSelect,
			Category:     CategoryVisual,
			DefaultValue: "confetti",
			Choices: []Choice{
				{Value: "confetti", Label: "彩紙"},
				{Value: "stars", Label: "星星"},
				{Value: "bubbles", Label: "氣泡"},
				{Value: "fireworks", Label: "煙花"},
			},
			Dependencies: []Dependency{{OptionID: "visual.particles.enabled", Value: true}},
			Preview:      true,
		},
		{
			ID:           "accessibility.highContrast",
			Name:         "高對比度",
			Description:  "使用高對比度顏色方案",
			Type:         TypeBoolean,
			Category:     CategoryAccessibility,
			DefaultValue: false,
		},
		{
			ID:           "accessibility.largeText",
			Name:         "大字體",
			Description:  "使用更大的字體尺寸",
			Type:         TypeBoolean,
			Category:     CategoryAccessibility,
			DefaultValue: false,
		},
		{
			ID:           "accessibility.keyboardNavigation",
			Name:         "鍵盤導航",
			Description:  "支持使用鍵盤進行遊戲",
			Type:         TypeBoolean,
			Category:     CategoryAccessibility,
			DefaultValue: true,
		},
	}
}

func matchingDefinitions() []Definition {
	return slices.Concat(commonDefinitions(), []Definition{
		{
			ID:           "gameSpecific.layout",
			Name:         "佈局方式",
			Description:  "選擇配對項目的排列方式",
			Type:         TypeSelect,
			Category:     CategorySpecific,
			DefaultValue: "grid",
			Choices: []Choice{
				{Value: "grid", Label: "網格佈局"},
				{Value: "columns", Label: "雙列佈局"},
				{Value: "scattered", Label: "散佈佈局"},
			},
		},
		{
			ID:           "gameSpecific.dragAndDrop",
			Name:         "拖拽模式",
			Description:  "啟用拖拽配對功能",
			Type:         TypeBoolean,
			Category:     CategorySpecific,
			DefaultValue: true,
		},
	})
}

func flashcardsDefinitions() []Definition {
	return slices.Concat(commonDefinitions(), []Definition{
		{
			ID:           "gameSpecific.autoFlip",
			Name:         "自動翻轉",
			Description:  "自動翻轉到答案面",
			Type:         TypeBoolean,
			Category:     CategorySpecific,
			DefaultValue: false,
		},
		{
			ID:           "gameSpecific.flipDelay",
			Name:         "翻轉延遲",
			Description:  "自動翻轉的延遲時間（秒）",
			Type:         TypeRange,
			Category:     CategorySpecific,
			DefaultValue: 3,
			Min:          limit(1),
			Max:          limit(10),
			Unit:         "秒",
			Dependencies: []Dependency{{OptionID: "gameSpecific.autoFlip", Value: true}},
		},
		{
			ID:           "audio.voiceOver.enabled",
			Name:         "語音朗讀",
			Description:  "翻卡時朗讀詞彙",
			Type:         TypeBoolean,
			Category:     CategoryAudio,
			DefaultValue: false,
		},
		{
			ID:           "audio.voiceOver.language",
			Name:         "朗讀語言",
			Description:  "語音朗讀使用的語言標籤，例如 zh-TW 或 en-US",
			Type:         TypeString,
			Category:     CategoryAudio,
			DefaultValue: "zh-TW",
			Dependencies: []Dependency{{OptionID: "audio.voiceOver.enabled", Value: true}},
			Validate:     validLanguageTag,
		},
	})
}

func spinWheelDefinitions() []Definition {
	return slices.Concat(commonDefinitions(), []Definition{
		{
			ID:           "gameSpecific.spinSpeed",
			Name:         "轉盤速度",
			Description:  "設置轉盤的旋轉速度",
			Type:         TypeSelect,
			Category:     CategorySpecific,
			DefaultValue: "normal",
			Choices:      speedChoices,
		},
	})
}

func whackAMoleDefinitions() []Definition {
	return slices.Concat(commonDefinitions(), []Definition{
		{
			ID:           "gameSpecific.moleSpeed",
			Name:         "地鼠速度",
			Description:  "地鼠出現和消失的速度",
			Type:         TypeSelect,
			Category:     CategorySpecific,
			DefaultValue: "normal",
			Choices:      speedChoices,
		},
	})
}

func memoryCardsDefinitions() []Definition {
	return slices.Concat(commonDefinitions(), []Definition{
		{
			ID:           "gameSpecific.cardFlipTime",
			Name:         "卡片翻轉時間",
			Description:  "卡片保持翻開的時間（秒）",
			Type:         TypeRange,
			Category:     CategorySpecific,
			DefaultValue: 2,
			Min:          limit(1),
			Max:          limit(5),
			Unit:         "秒",
		},
	})
}

// seedDefinitions builds the definition table of every playable game type.
func seedDefinitions() map[catalog.GameType][]Definition {
	return map[catalog.GameType][]Definition{
		catalog.GameQuiz:        quizDefinitions(),
		catalog.GameMatching:    matchingDefinitions(),
		catalog.GameFlashcards:  flashcardsDefinitions(),
		catalog.GameSpinWheel:   spinWheelDefinitions(),
		catalog.GameWhackAMole:  whackAMoleDefinitions(),
		catalog.GameMemoryCards: memoryCardsDefinitions(),
	}
}

func validLanguageTag(v any) error {
	s, _ := v.(string)
	if _, err := language.Parse(s); err != nil {
		return fmt.Errorf("朗讀語言「%s」不是有效的語言標籤", s)
	}
	return nil
}
