package catalog

// SeedAchievement is one built-in achievement definition. Requirement
// stays in its raw JSON seed form here; the store validates and decodes
// it into the typed representation when seeding.
type SeedAchievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Category    string
	Requirement string
	Reward      int
}

// SeedAchievements returns the built-in achievement definitions.
// sharp_shooter uses a requirement kind the evaluator does not
// implement yet; it stays locked and is skipped during evaluation.
func SeedAchievements() []SeedAchievement {
	return []SeedAchievement{
		{
			ID:          "first_explore",
			Name:        "初次探索",
			Description: "完成第一次学习",
			Icon:        "🎯",
			Category:    "learning",
			Requirement: `{"kind": "learned_count", "threshold": 1}`,
			Reward:      10,
		},
		{
			ID:          "learning_master",
			Name:        "学习达人",
			Description: "学习10个物品",
			Icon:        "📚",
			Category:    "learning",
			Requirement: `{"kind": "learned_count", "threshold": 10}`,
			Reward:      50,
		},
		{
			ID:          "game_master",
			Name:        "游戏高手",
			Description: "完成5次游戏",
			Icon:        "🎮",
			Category:    "game",
			Requirement: `{"kind": "game_count", "threshold": 5}`,
			Reward:      30,
		},
		{
			ID:          "continuous_learning",
			Name:        "连续学习",
			Description: "连续学习3天",
			Icon:        "🔥",
			Category:    "learning",
			Requirement: `{"kind": "continuous_days", "threshold": 3}`,
			Reward:      40,
		},
		{
			ID:          "all_knowing",
			Name:        "全知全能",
			Description: "学习所有分类",
			Icon:        "🌟",
			Category:    "learning",
			Requirement: `{"kind": "categories_learned", "threshold": 8}`,
			Reward:      100,
		},
		{
			ID:          "perfect_answer",
			Name:        "完美答案",
			Description: "一局10题全部答对",
			Icon:        "💯",
			Category:    "game",
			Requirement: `{"kind": "perfect_answer", "threshold": 10}`,
			Reward:      60,
		},
		{
			ID:          "sharp_shooter",
			Name:        "神射手",
			Description: "连续答对10题",
			Icon:        "⚡",
			Category:    "game",
			Requirement: `{"kind": "correct_streak", "threshold": 10}`,
			Reward:      20,
		},
	}
}
