package scoring

import "fmt"

// Metric names shared between the catalogs and the callers that build
// metric snapshots. Counter-style metrics count events or days; the
// boolean-style ones carry 0 or 1.
const (
	MetricWorkouts            Metric = "workouts"
	MetricStreak              Metric = "streak"
	MetricMeals               Metric = "meals"
	MetricAIMeals             Metric = "ai_meals"
	MetricWeightEntries       Metric = "weight_entries"
	MetricRecords             Metric = "records"
	MetricLevel               Metric = "level"
	MetricTotalXP             Metric = "total_xp"
	MetricDaysTracked         Metric = "days_tracked"
	MetricDaysCalorieTarget   Metric = "days_calorie_target"
	MetricDaysProteinTarget   Metric = "days_protein_target"
	MetricDaysBalanced        Metric = "days_balanced"
	MetricTotalMeals          Metric = "total_meals"
	MetricLikedMeals          Metric = "liked_meals"
	MetricDislikedMeals       Metric = "disliked_meals"
	MetricScoreDays50         Metric = "score_days_50"
	MetricScoreDays70         Metric = "score_days_70"
	MetricScoreDays80         Metric = "score_days_80"
	MetricHighProteinDays     Metric = "high_protein_days"
	MetricVeryHighProteinDays Metric = "very_high_protein_days"
	MetricLowCalorieDays      Metric = "low_calorie_days"
	MetricLowCarbDays         Metric = "low_carb_days"
	MetricDeficitDays         Metric = "deficit_days"
	MetricManualPlans         Metric = "manual_plans"
)

// Catalog is the immutable badge/trophy configuration, loaded once at
// startup and only ever read afterwards. Ids are stable across
// deployments: claimed sets reference them.
type Catalog struct {
	Trophies        []BadgeDefinition
	NutritionBadges []BadgeDefinition
	StreakBadges    []BadgeDefinition
	Challenges      []ChallengeTemplate
	Rewards         Rewards
}

type ChallengeTemplate struct {
	TemplateID  string `json:"templateId"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Metric      string `json:"metric"`
	Target      int    `json:"target"`
	XPReward    int    `json:"xpReward"`
}

// streak badges are the small claimable subset surfaced on the
// performance screen; ids overlap with the streak trophies on purpose
// (same achievement, two surfaces, one claimed set)
var streakBadges = []BadgeDefinition{
	{ID: "streak_7", Name: "Semaine", Metric: MetricStreak, Threshold: 7, XPReward: 100},
	{ID: "streak_30", Name: "Mois", Metric: MetricStreak, Threshold: 30, XPReward: 500},
	{ID: "streak_100", Name: "Champion", Metric: MetricStreak, Threshold: 100, XPReward: 2000},
	{ID: "streak_365", Name: "Légende", Metric: MetricStreak, Threshold: 365, XPReward: 10000},
}

var challengeTemplates = []ChallengeTemplate{
	{TemplateID: "weekly_workouts_3", Type: "workout", Name: "3 Séances", Description: "Complète 3 entraînements cette semaine", Metric: "workouts", Target: 3, XPReward: 150},
	{TemplateID: "weekly_workouts_5", Type: "workout", Name: "5 Séances", Description: "Complète 5 entraînements cette semaine", Metric: "workouts", Target: 5, XPReward: 300},
	{TemplateID: "weekly_meals_10", Type: "nutrition", Name: "10 Repas Suivis", Description: "Enregistre 10 repas cette semaine", Metric: "meals", Target: 10, XPReward: 200},
	{TemplateID: "weekly_protein_5", Type: "nutrition", Name: "Protéines x5", Description: "Atteins ton objectif protéines 5 jours", Metric: "days_protein_target", Target: 5, XPReward: 250},
	{TemplateID: "weekly_hydration_7", Type: "wellness", Name: "Hydratation Parfaite", Description: "Objectif eau atteint 7 jours", Metric: "hydration_days", Target: 7, XPReward: 200},
	{TemplateID: "weekly_steps_50k", Type: "wellness", Name: "50 000 Pas", Description: "Cumule 50 000 pas cette semaine", Metric: "steps", Target: 50000, XPReward: 300},
}

// DefaultCatalog builds the static catalog. It panics on duplicate ids
// within a catalog section since that is a programming error in the
// tables, not a runtime condition.
func DefaultCatalog() *Catalog {
	c := &Catalog{
		Trophies:        trophies,
		NutritionBadges: nutritionBadges,
		StreakBadges:    streakBadges,
		Challenges:      challengeTemplates,
		Rewards:         DefaultRewards(),
	}
	mustHaveUniqueIDs("trophies", c.Trophies)
	mustHaveUniqueIDs("nutrition badges", c.NutritionBadges)
	mustHaveUniqueIDs("streak badges", c.StreakBadges)
	return c
}

// ChallengeTemplate looks a template up by id.
func (c *Catalog) ChallengeTemplate(templateID string) (ChallengeTemplate, error) {
	for _, t := range c.Challenges {
		if t.TemplateID == templateID {
			return t, nil
		}
	}
	return ChallengeTemplate{}, ErrUnknownChallengeTemplate
}

func mustHaveUniqueIDs(section string, defs []BadgeDefinition) {
	seen := make(map[string]struct{}, len(defs))
	for _, d := range defs {
		if _, ok := seen[d.ID]; ok {
			panic(fmt.Sprintf("catalog %s: duplicate badge id %q", section, d.ID))
		}
		if d.Threshold <= 0 {
			panic(fmt.Sprintf("catalog %s: badge %q has non-positive threshold", section, d.ID))
		}
		seen[d.ID] = struct{}{}
	}
}
