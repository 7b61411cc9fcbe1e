package puzzles

import "github.com/julianstephens/habitkit/internal/constants"

// catalog is the bundled, read-only puzzle set. Order matters: the
// puzzle-of-day and daily-challenge indices are derived from it.
var catalog = []Puzzle{
	{
		ID:          1,
		Type:        constants.PuzzleLogic,
		Title:       "River Crossing",
		Difficulty:  constants.DifficultyMedium,
		Description: "A farmer needs to cross a river with a fox, chicken, and grain. The boat can only hold the farmer and one item.",
		Question:    "In what order should the farmer take items across?",
		Options: []string{
			"Fox, Chicken, Grain",
			"Chicken, Fox, Grain",
			"Grain, Fox, Chicken",
			"Chicken, Grain, Fox",
		},
		Answer:      1,
		Explanation: "The farmer must take the chicken first (as it would eat the grain or be eaten by the fox). Then take either the fox or grain, bring the chicken back, take the remaining item, and finally return alone for the chicken.",
		Reward:      50,
	},
	{
		ID:          2,
		Type:        constants.PuzzleLogic,
		Title:       "Four Friends",
		Difficulty:  constants.DifficultyEasy,
		Description: "Alice, Bob, Carol, and Dave have different colored shirts: Red, Blue, Green, Yellow. Alice does not wear Red or Blue. Bob wears neither Green nor Yellow.",
		Question:    "If Carol wears Red, what can Bob wear?",
		Options:     []string{"Blue", "Green", "Yellow", "Red"},
		Answer:      0,
		Explanation: "Carol wears Red. Alice cannot wear Red or Blue (given), so Alice wears Green or Yellow. Bob cannot wear Green or Yellow, so Bob wears Blue or Red. Since Carol has Red, Bob must wear Blue.",
		Reward:      30,
	},
	{
		ID:          3,
		Type:        constants.PuzzleLogic,
		Title:       "Number Pattern",
		Difficulty:  constants.DifficultyMedium,
		Description: "What is the next number in this sequence?",
		Question:    "2, 6, 12, 20, 30, ?",
		Options:     []string{"40", "42", "44", "50"},
		Answer:      1,
		Explanation: "The pattern is n(n+1): 1×2=2, 2×3=6, 3×4=12, 4×5=20, 5×6=30, 6×7=42",
		Reward:      40,
	},
	{
		ID:          4,
		Type:        constants.PuzzleTrivia,
		Title:       "Productivity Fact",
		Difficulty:  constants.DifficultyEasy,
		Description: "What is the recommended duration for focused work periods in the Pomodoro Technique?",
		Question:    "Pomodoro Technique: Work duration?",
		Options:     []string{"15 minutes", "25 minutes", "45 minutes", "60 minutes"},
		Answer:      1,
		Explanation: "The Pomodoro Technique recommends 25-minute focused work intervals, followed by short breaks.",
		Reward:      35,
	},
	{
		ID:          5,
		Type:        constants.PuzzleTrivia,
		Title:       "Habit Formation",
		Difficulty:  constants.DifficultyMedium,
		Description: "How many days does it typically take to form a new habit according to research?",
		Question:    "Days to form a habit?",
		Options:     []string{"7 days", "21 days", "66 days", "30 days"},
		Answer:      2,
		Explanation: "Research suggests it takes an average of 66 days to form a new habit, though it can range from 18 to 254 days depending on the habit complexity.",
		Reward:      50,
	},
	{
		ID:          6,
		Type:        constants.PuzzleTrivia,
		Title:       "Sleep & Productivity",
		Difficulty:  constants.DifficultyEasy,
		Description: "What is the recommended amount of sleep for adults?",
		Question:    "Recommended daily sleep?",
		Options:     []string{"5-6 hours", "7-9 hours", "9-10 hours", "4-5 hours"},
		Answer:      1,
		Explanation: "The National Sleep Foundation recommends 7-9 hours of sleep per night for adults to maintain optimal health and productivity.",
		Reward:      35,
	},
	{
		ID:          7,
		Type:        constants.PuzzleWord,
		Title:       "Anagram Challenge",
		Difficulty:  constants.DifficultyEasy,
		Description: "Unscramble the letters to find a word related to habits.",
		Question:    "Unscramble: SUCOFC",
		Options:     []string{"FOCUS", "FOSUC", "SUCOF", "CUFOS"},
		Answer:      0,
		Explanation: "The word is FOCUS - an essential component of building successful habits.",
		Reward:      25,
	},
	{
		ID:          8,
		Type:        constants.PuzzleWord,
		Title:       "Word Association",
		Difficulty:  constants.DifficultyMedium,
		Description: "Which word does NOT belong with the others?",
		Question:    "Which is different?",
		Options:     []string{"Consistency", "Dedication", "Commitment", "Laziness"},
		Answer:      3,
		Explanation: "Laziness does not belong - it works against habit formation, while the others are key traits for success.",
		Reward:      45,
	},
	{
		ID:          9,
		Type:        constants.PuzzleMath,
		Title:       "Daily Streak Math",
		Difficulty:  constants.DifficultyEasy,
		Description: "If you complete a habit for 30 days in a row, getting 10 XP per day, how much total XP do you earn?",
		Question:    "30 days × 10 XP/day = ?",
		Options:     []string{"300 XP", "250 XP", "350 XP", "400 XP"},
		Answer:      0,
		Explanation: "30 × 10 = 300 XP total. Plus bonus multipliers if your streak continues!",
		Reward:      30,
	},
	{
		ID:          10,
		Type:        constants.PuzzleMath,
		Title:       "Compound Habits",
		Difficulty:  constants.DifficultyMedium,
		Description: "If a habit improves 1% each day over a year, how much better are you?",
		Question:    "1.01^365 = ?",
		Options:     []string{"1.37x better", "37.8x better", "1.1x better", "3.7x better"},
		Answer:      1,
		Explanation: "Small improvements compound significantly! 1.01^365 ≈ 37.78x better over one year.",
		Reward:      60,
	},
}
