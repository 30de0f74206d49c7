package catalog

// seedTemplates is the template catalog, in display order.
var seedTemplates = []Template{
	{
		ID:                GameQuiz,
		Name:              "測驗問答",
		Icon:              "❓",
		Description:       "多選題測驗，支持計時和即時反饋",
		Difficulty:        DifficultyEasy,
		EstimatedTime:     "5-15分鐘",
		Features:          []string{"多選題", "計時", "即時反饋", "分數統計"},
		MinItems:          1,
		MaxItems:          50,
		RequiresEvenItems: false,
		Category:          CategoryQuiz,
	},
	{
		ID:                GameMatching,
		Name:              "配對遊戲",
		Icon:              "🔗",
		Description:       "拖拽配對遊戲，訓練記憶和邏輯",
		Difficulty:        DifficultyMedium,
		EstimatedTime:     "3-10分鐘",
		Features:          []string{"拖拽操作", "視覺配對", "多種佈局"},
		MinItems:          3,
		MaxItems:          20,
		RequiresEvenItems: false,
		Category:          CategoryMatching,
	},
	{
		ID:                GameFlashcards,
		Name:              "單字卡片",
		Icon:              "📚",
		Description:       "翻轉卡片學習，支持進度追蹤",
		Difficulty:        DifficultyEasy,
		EstimatedTime:     "5-20分鐘",
		Features:          []string{"翻轉動畫", "進度追蹤", "重複學習"},
		MinItems:          1,
		MaxItems:          100,
		RequiresEvenItems: false,
		Category:          CategoryMemory,
	},
	{
		ID:                GameSpinWheel,
		Name:              "隨機轉盤",
		Icon:              "🎡",
		Description:       "隨機選擇轉盤，增加趣味性",
		Difficulty:        DifficultyEasy,
		EstimatedTime:     "2-8分鐘",
		Features:          []string{"隨機選擇", "動畫效果", "音效支持"},
		MinItems:          2,
		MaxItems:          20,
		RequiresEvenItems: false,
		Category:          CategoryAction,
	},
	{
		ID:                GameWhackAMole,
		Name:              "打地鼠",
		Icon:              "🎯",
		Description:       "快速反應遊戲，訓練注意力",
		Difficulty:        DifficultyHard,
		EstimatedTime:     "3-8分鐘",
		Features:          []string{"快速反應", "計時挑戰", "分數競賽"},
		MinItems:          5,
		MaxItems:          30,
		RequiresEvenItems: false,
		Category:          CategoryAction,
	},
	{
		ID:                GameMemoryCards,
		Name:              "記憶卡片",
		Icon:              "🧠",
		Description:       "記憶配對遊戲，訓練記憶力",
		Difficulty:        DifficultyMedium,
		EstimatedTime:     "5-15分鐘",
		Features:          []string{"記憶挑戰", "配對遊戲", "翻轉動畫"},
		MinItems:          4,
		MaxItems:          24,
		RequiresEvenItems: true,
		Category:          CategoryMemory,
	},
}

// referenceRequirements covers game types that have no template yet.
var referenceRequirements = map[GameType]Requirement{
	GameWordSearch: {Name: "單字搜尋", MinItems: 5, MaxItems: 20},
	GameCrossword:  {Name: "填字遊戲", MinItems: 5, MaxItems: 20},
	GameFillBlanks: {Name: "填空練習", MinItems: 1, MaxItems: 30},
}
