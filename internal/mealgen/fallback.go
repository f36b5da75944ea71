package mealgen

import (
	"github.com/WaekyTV/fitquest-backend/internal/scoring"
)

var fallbackNames = map[string]string{
	"breakfast": "Porridge protéiné aux fruits",
	"lunch":     "Poulet, riz complet et légumes",
	"snack":     "Yaourt grec et amandes",
	"dinner":    "Saumon, quinoa et légumes verts",
}

// FallbackSuggestion builds a heuristic meal when the generator is
// unreachable: the meal's share of the daily targets, with carbs and
// fat filled in from the 40/30 ideal calorie split.
func FallbackSuggestion(mealType string, targets scoring.NutritionTargets) Suggestion {
	ratio := mealRatio(mealType)
	calories := int(float64(targets.DailyCalories) * ratio)
	protein := int(float64(targets.TargetProtein) * ratio)

	name, ok := fallbackNames[mealType]
	if !ok {
		name = fallbackNames["lunch"]
	}

	return Suggestion{
		Name:        name,
		Description: "Suggestion standard adaptée à tes objectifs du jour",
		MealType:    mealType,
		Calories:    calories,
		Protein:     protein,
		Carbs:       int(float64(calories) * 0.40 / 4),
		Fat:         int(float64(calories) * 0.30 / 9),
		Source:      "fallback",
	}
}
