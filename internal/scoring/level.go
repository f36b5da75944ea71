package scoring

import (
	"errors"
	"math"
)

var ErrInvalidAction = errors.New("invalid xp action")

type levelTier struct {
	MinXP int
	Level int
	Title string
}

// levelLadder is ordered by MinXP ascending; the highest tier whose MinXP
// is covered by the total XP wins.
var levelLadder = []levelTier{
	{0, 1, "Débutant"},
	{500, 2, "Apprenti"},
	{1500, 3, "Régulier"},
	{3000, 4, "Confirmé"},
	{5000, 5, "Avancé"},
	{8000, 6, "Expert"},
	{12000, 7, "Maître"},
	{18000, 8, "Champion"},
	{25000, 9, "Légende"},
	{35000, 10, "Immortel"},
}

type LevelInfo struct {
	Level          int     `json:"level"`
	Title          string  `json:"title"`
	TotalXP        int     `json:"totalXp"`
	XPCurrentLevel int     `json:"xpCurrentLevel"`
	XPForNext      int     `json:"xpForNext"`
	ProgressPct    float64 `json:"progress"`
}

// ComputeLevel maps cumulative XP into the fixed 10-tier ladder. At max
// level XPForNext equals XPCurrentLevel and progress reports 100.
func ComputeLevel(totalXP int) LevelInfo {
	info := LevelInfo{
		Level:     1,
		Title:     levelLadder[0].Title,
		TotalXP:   totalXP,
		XPForNext: levelLadder[1].MinXP,
	}

	for i, tier := range levelLadder {
		if totalXP < tier.MinXP {
			break
		}
		info.Level = tier.Level
		info.Title = tier.Title
		info.XPCurrentLevel = tier.MinXP
		if i+1 < len(levelLadder) {
			info.XPForNext = levelLadder[i+1].MinXP
		} else {
			info.XPForNext = tier.MinXP // max level
		}
	}

	if info.XPForNext > info.XPCurrentLevel {
		progress := float64(totalXP-info.XPCurrentLevel) / float64(info.XPForNext-info.XPCurrentLevel) * 100
		info.ProgressPct = math.Min(math.Round(progress*10)/10, 100)
	} else {
		info.ProgressPct = 100 // max level, nothing left to fill
	}

	return info
}

// XPMultiplier rewards working toward a goal that matches the body state.
// First match wins, no stacking.
func XPMultiplier(bmiCategory BMICategory, goal Goal) float64 {
	switch {
	case bmiCategory == BMINormal && goal == GoalMaintenance:
		return 1.2
	case bmiCategory == BMIOverweight && goal == GoalWeightLoss:
		return 1.5
	case bmiCategory == BMIUnderweight && goal == GoalMuscleGain:
		return 1.5
	case bmiCategory == BMIObese && goal == GoalWeightLoss:
		return 1.8
	default:
		return 1.0
	}
}

// Rewards maps an XP action name to its base reward.
type Rewards map[string]int

// DefaultRewards returns the static base reward table.
func DefaultRewards() Rewards {
	return Rewards{
		"workout_completed": 100,
		"meal_logged":       20,
		"weight_logged":     30,
		"streak_day":        50,
		"personal_record":   150,
		"week_goal_reached": 200,
		"first_workout":     100,
		"consistency_bonus": 75,
	}
}

type AwardResult struct {
	Action      string  `json:"action"`
	BaseXP      int     `json:"baseXp"`
	Multiplier  float64 `json:"multiplier"`
	EarnedXP    int     `json:"earnedXp"`
	NewTotal    int     `json:"newTotal"`
	LevelBefore int     `json:"levelBefore"`
	LevelAfter  int     `json:"levelAfter"`
	LeveledUp   bool    `json:"leveledUp"`
	MegaLevelUp bool    `json:"megaLevelUp"`
}

// AwardXP computes the XP earned for an action, applying the multiplier
// with the fraction floored away, and reports level transitions.
func AwardXP(action string, rewards Rewards, currentXP int, multiplier float64) (AwardResult, error) {
	baseXP, ok := rewards[action]
	if !ok {
		return AwardResult{}, ErrInvalidAction
	}

	earned := int(math.Floor(float64(baseXP) * multiplier))
	newTotal := currentXP + earned

	levelBefore := ComputeLevel(currentXP).Level
	levelAfter := ComputeLevel(newTotal).Level
	leveledUp := levelAfter > levelBefore

	return AwardResult{
		Action:      action,
		BaseXP:      baseXP,
		Multiplier:  multiplier,
		EarnedXP:    earned,
		NewTotal:    newTotal,
		LevelBefore: levelBefore,
		LevelAfter:  levelAfter,
		LeveledUp:   leveledUp,
		MegaLevelUp: leveledUp && levelAfter%10 == 0,
	}, nil
}
