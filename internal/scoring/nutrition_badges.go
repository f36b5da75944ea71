package scoring

// The nutrition badge catalog. Ids overlap with some trophy ids (streak_7
// etc.) on purpose: nutrition badges live in their own claimed set.
var nutritionBadges = []BadgeDefinition{
	// tracking regularity
	{ID: "streak_1", Name: "Première Journée", Description: "1 jour de suivi nutritionnel", Icon: "🌱", Color: "#B0E301", Category: "regularity", Metric: MetricDaysTracked, Threshold: 1, XPReward: 25},
	{ID: "streak_3", Name: "3 Jours Consécutifs", Description: "3 jours de suivi consécutifs", Icon: "🔥", Color: "#B0E301", Category: "regularity", Metric: MetricDaysTracked, Threshold: 3, XPReward: 50},
	{ID: "streak_7", Name: "Semaine Parfaite", Description: "7 jours de suivi consécutifs", Icon: "⚡", Color: "#B0E301", Category: "regularity", Metric: MetricDaysTracked, Threshold: 7, XPReward: 150},
	{ID: "streak_14", Name: "Deux Semaines", Description: "14 jours de suivi consécutifs", Icon: "💪", Color: "#B0E301", Category: "regularity", Metric: MetricDaysTracked, Threshold: 14, XPReward: 300},
	{ID: "streak_21", Name: "Trois Semaines", Description: "21 jours de suivi consécutifs", Icon: "🎯", Color: "#B0E301", Category: "regularity", Metric: MetricDaysTracked, Threshold: 21, XPReward: 450},
	{ID: "streak_30", Name: "Un Mois Complet", Description: "30 jours de suivi consécutifs", Icon: "🏅", Color: "#B0E301", Category: "regularity", Metric: MetricDaysTracked, Threshold: 30, XPReward: 750},
	{ID: "streak_60", Name: "Deux Mois", Description: "60 jours de suivi consécutifs", Icon: "🥈", Color: "#B0E301", Category: "regularity", Metric: MetricDaysTracked, Threshold: 60, XPReward: 1500},
	{ID: "streak_90", Name: "Trois Mois", Description: "90 jours de suivi consécutifs", Icon: "🥇", Color: "#B0E301", Category: "regularity", Metric: MetricDaysTracked, Threshold: 90, XPReward: 2500},
	{ID: "streak_180", Name: "Six Mois", Description: "180 jours de suivi consécutifs", Icon: "👑", Color: "#FFD700", Category: "regularity", Metric: MetricDaysTracked, Threshold: 180, XPReward: 5000},
	{ID: "streak_365", Name: "Une Année Entière", Description: "365 jours de suivi consécutifs", Icon: "🌟", Color: "#FFD700", Category: "regularity", Metric: MetricDaysTracked, Threshold: 365, XPReward: 10000},

	// calorie target hits
	{ID: "cal_1", Name: "Premier Objectif Cal.", Description: "Objectif calorique atteint 1×", Icon: "🔥", Color: "#FF6B35", Category: "calories", Metric: MetricDaysCalorieTarget, Threshold: 1, XPReward: 30},
	{ID: "cal_3", Name: "3× Objectif Calories", Description: "Objectif calorique atteint 3×", Icon: "🔥", Color: "#FF6B35", Category: "calories", Metric: MetricDaysCalorieTarget, Threshold: 3, XPReward: 75},
	{ID: "cal_5", Name: "5× Objectif Calories", Description: "Objectif calorique atteint 5×", Icon: "🔥", Color: "#FF6B35", Category: "calories", Metric: MetricDaysCalorieTarget, Threshold: 5, XPReward: 120},
	{ID: "cal_10", Name: "10× Objectif Calories", Description: "Objectif calorique atteint 10×", Icon: "🔥", Color: "#FF6B35", Category: "calories", Metric: MetricDaysCalorieTarget, Threshold: 10, XPReward: 250},
	{ID: "cal_20", Name: "20× Objectif Calories", Description: "Objectif calorique atteint 20×", Icon: "🔥", Color: "#FF6B35", Category: "calories", Metric: MetricDaysCalorieTarget, Threshold: 20, XPReward: 500},
	{ID: "cal_30", Name: "Maître des Calories", Description: "Objectif calorique atteint 30×", Icon: "🔥", Color: "#FF6B35", Category: "calories", Metric: MetricDaysCalorieTarget, Threshold: 30, XPReward: 750},
	{ID: "cal_50", Name: "50× Objectif Calories", Description: "Objectif calorique atteint 50×", Icon: "🔥", Color: "#FF6B35", Category: "calories", Metric: MetricDaysCalorieTarget, Threshold: 50, XPReward: 1200},
	{ID: "cal_75", Name: "75× Objectif Calories", Description: "Objectif calorique atteint 75×", Icon: "🔥", Color: "#FF6B35", Category: "calories", Metric: MetricDaysCalorieTarget, Threshold: 75, XPReward: 1800},
	{ID: "cal_100", Name: "Centurion Calorique", Description: "Objectif calorique atteint 100×", Icon: "💯", Color: "#FFD700", Category: "calories", Metric: MetricDaysCalorieTarget, Threshold: 100, XPReward: 3000},
	{ID: "cal_200", Name: "Légende Calorique", Description: "Objectif calorique atteint 200×", Icon: "🌟", Color: "#FFD700", Category: "calories", Metric: MetricDaysCalorieTarget, Threshold: 200, XPReward: 6000},

	// protein target hits
	{ID: "prot_1", Name: "Première Protéine", Description: "Objectif protéines atteint 1×", Icon: "💪", Color: "#B0E301", Category: "protein", Metric: MetricDaysProteinTarget, Threshold: 1, XPReward: 30},
	{ID: "prot_3", Name: "3× Objectif Protéines", Description: "Objectif protéines atteint 3×", Icon: "💪", Color: "#B0E301", Category: "protein", Metric: MetricDaysProteinTarget, Threshold: 3, XPReward: 80},
	{ID: "prot_5", Name: "5× Objectif Protéines", Description: "Objectif protéines atteint 5×", Icon: "💪", Color: "#B0E301", Category: "protein", Metric: MetricDaysProteinTarget, Threshold: 5, XPReward: 130},
	{ID: "prot_7", Name: "Roi des Protéines", Description: "Objectif protéines atteint 7×", Icon: "💪", Color: "#B0E301", Category: "protein", Metric: MetricDaysProteinTarget, Threshold: 7, XPReward: 200},
	{ID: "prot_14", Name: "Champion Protéine", Description: "Objectif protéines atteint 14×", Icon: "💪", Color: "#B0E301", Category: "protein", Metric: MetricDaysProteinTarget, Threshold: 14, XPReward: 400},
	{ID: "prot_21", Name: "Maître des Acides Am.", Description: "Objectif protéines atteint 21×", Icon: "💪", Color: "#B0E301", Category: "protein", Metric: MetricDaysProteinTarget, Threshold: 21, XPReward: 600},
	{ID: "prot_30", Name: "30× Objectif Protéines", Description: "Objectif protéines atteint 30×", Icon: "🏋️", Color: "#B0E301", Category: "protein", Metric: MetricDaysProteinTarget, Threshold: 30, XPReward: 900},
	{ID: "prot_50", Name: "50× Objectif Protéines", Description: "Objectif protéines atteint 50×", Icon: "🏋️", Color: "#B0E301", Category: "protein", Metric: MetricDaysProteinTarget, Threshold: 50, XPReward: 1500},
	{ID: "prot_75", Name: "75× Objectif Protéines", Description: "Objectif protéines atteint 75×", Icon: "🏋️", Color: "#B0E301", Category: "protein", Metric: MetricDaysProteinTarget, Threshold: 75, XPReward: 2200},
	{ID: "prot_100", Name: "Centurion Protéines", Description: "Objectif protéines atteint 100×", Icon: "🥩", Color: "#FFD700", Category: "protein", Metric: MetricDaysProteinTarget, Threshold: 100, XPReward: 4000},

	// logged meals
	{ID: "meal_1", Name: "Premier Repas", Description: "1 repas enregistré", Icon: "🍽️", Color: "#6441a5", Category: "meals", Metric: MetricTotalMeals, Threshold: 1, XPReward: 20},
	{ID: "meal_5", Name: "5 Repas", Description: "5 repas enregistrés", Icon: "🍽️", Color: "#6441a5", Category: "meals", Metric: MetricTotalMeals, Threshold: 5, XPReward: 50},
	{ID: "meal_10", Name: "10 Repas", Description: "10 repas enregistrés", Icon: "🍽️", Color: "#6441a5", Category: "meals", Metric: MetricTotalMeals, Threshold: 10, XPReward: 100},
	{ID: "meal_25", Name: "25 Repas", Description: "25 repas enregistrés", Icon: "🍽️", Color: "#6441a5", Category: "meals", Metric: MetricTotalMeals, Threshold: 25, XPReward: 200},
	{ID: "meal_50", Name: "50 Repas", Description: "50 repas enregistrés", Icon: "🍽️", Color: "#6441a5", Category: "meals", Metric: MetricTotalMeals, Threshold: 50, XPReward: 400},
	{ID: "meal_100", Name: "100 Repas", Description: "100 repas enregistrés", Icon: "🍽️", Color: "#6441a5", Category: "meals", Metric: MetricTotalMeals, Threshold: 100, XPReward: 800},
	{ID: "meal_200", Name: "200 Repas", Description: "200 repas enregistrés", Icon: "👨‍🍳", Color: "#6441a5", Category: "meals", Metric: MetricTotalMeals, Threshold: 200, XPReward: 1600},
	{ID: "meal_365", Name: "365 Repas", Description: "365 repas enregistrés", Icon: "👨‍🍳", Color: "#6441a5", Category: "meals", Metric: MetricTotalMeals, Threshold: 365, XPReward: 3000},
	{ID: "meal_500", Name: "Gourmet 500", Description: "500 repas enregistrés", Icon: "⭐", Color: "#FFD700", Category: "meals", Metric: MetricTotalMeals, Threshold: 500, XPReward: 5000},
	{ID: "meal_1000", Name: "Chef Légendaire", Description: "1000 repas enregistrés", Icon: "👑", Color: "#FFD700", Category: "meals", Metric: MetricTotalMeals, Threshold: 1000, XPReward: 10000},

	// balanced days
	{ID: "first_balanced", Name: "Premier Équilibre", Description: "1er repas parfaitement équilibré", Icon: "🥗", Color: "#00BFFF", Category: "balance", Metric: MetricDaysBalanced, Threshold: 1, XPReward: 50},
	{ID: "balanced_3", Name: "3 Jours Équilibrés", Description: "3 jours d'alimentation équilibrée", Icon: "🥗", Color: "#00BFFF", Category: "balance", Metric: MetricDaysBalanced, Threshold: 3, XPReward: 100},
	{ID: "balanced_5", Name: "5 Jours Équilibrés", Description: "5 jours d'alimentation équilibrée", Icon: "🥗", Color: "#00BFFF", Category: "balance", Metric: MetricDaysBalanced, Threshold: 5, XPReward: 200},
	{ID: "balanced_7", Name: "Semaine Équilibrée", Description: "7 jours d'alimentation équilibrée", Icon: "⚖️", Color: "#00BFFF", Category: "balance", Metric: MetricDaysBalanced, Threshold: 7, XPReward: 350},
	{ID: "balanced_10", Name: "Équilibriste", Description: "10 jours d'alimentation équilibrée", Icon: "⚖️", Color: "#00BFFF", Category: "balance", Metric: MetricDaysBalanced, Threshold: 10, XPReward: 500},
	{ID: "balanced_14", Name: "14 Jours Équilibrés", Description: "14 jours d'alimentation équilibrée", Icon: "⚖️", Color: "#00BFFF", Category: "balance", Metric: MetricDaysBalanced, Threshold: 14, XPReward: 700},
	{ID: "balanced_21", Name: "3 Semaines Parfaites", Description: "21 jours d'alimentation équilibrée", Icon: "🎯", Color: "#00BFFF", Category: "balance", Metric: MetricDaysBalanced, Threshold: 21, XPReward: 1000},
	{ID: "balanced_30", Name: "Mois Parfait", Description: "30 jours d'alimentation équilibrée", Icon: "🏅", Color: "#00BFFF", Category: "balance", Metric: MetricDaysBalanced, Threshold: 30, XPReward: 2000},
	{ID: "balanced_60", Name: "2 Mois Parfaits", Description: "60 jours d'alimentation équilibrée", Icon: "🥈", Color: "#00BFFF", Category: "balance", Metric: MetricDaysBalanced, Threshold: 60, XPReward: 4000},
	{ID: "balanced_90", Name: "Nutrition Champion", Description: "90 jours d'alimentation équilibrée", Icon: "🏆", Color: "#FFD700", Category: "balance", Metric: MetricDaysBalanced, Threshold: 90, XPReward: 7500},

	// generated meals
	{ID: "ai_1", Name: "Premier Repas IA", Description: "1 repas généré par l'IA", Icon: "🤖", Color: "#a855f7", Category: "generated", Metric: MetricAIMeals, Threshold: 1, XPReward: 25},
	{ID: "ai_5", Name: "5 Repas IA", Description: "5 repas générés par l'IA", Icon: "🤖", Color: "#a855f7", Category: "generated", Metric: MetricAIMeals, Threshold: 5, XPReward: 60},
	{ID: "ai_10", Name: "10 Repas IA", Description: "10 repas générés par l'IA", Icon: "🤖", Color: "#a855f7", Category: "generated", Metric: MetricAIMeals, Threshold: 10, XPReward: 120},
	{ID: "ai_25", Name: "25 Repas IA", Description: "25 repas générés par l'IA", Icon: "🤖", Color: "#a855f7", Category: "generated", Metric: MetricAIMeals, Threshold: 25, XPReward: 300},
	{ID: "ai_50", Name: "Ami de l'IA", Description: "50 repas générés par l'IA", Icon: "🤖", Color: "#a855f7", Category: "generated", Metric: MetricAIMeals, Threshold: 50, XPReward: 600},
	{ID: "ai_100", Name: "100 Repas IA", Description: "100 repas générés par l'IA", Icon: "⚡", Color: "#a855f7", Category: "generated", Metric: MetricAIMeals, Threshold: 100, XPReward: 1200},
	{ID: "ai_200", Name: "200 Repas IA", Description: "200 repas générés par l'IA", Icon: "⚡", Color: "#a855f7", Category: "generated", Metric: MetricAIMeals, Threshold: 200, XPReward: 2500},
	{ID: "ai_500", Name: "Maître de l'IA", Description: "500 repas générés par l'IA", Icon: "🌟", Color: "#FFD700", Category: "generated", Metric: MetricAIMeals, Threshold: 500, XPReward: 6000},

	// nutrition score
	{ID: "score_50_1", Name: "Score 50+ (1j)", Description: "Score nutri > 50% pendant 1 jour", Icon: "📊", Color: "#38bdf8", Category: "score", Metric: MetricScoreDays50, Threshold: 1, XPReward: 20},
	{ID: "score_50_7", Name: "Score 50+ (7j)", Description: "Score nutri > 50% pendant 7 jours", Icon: "📊", Color: "#38bdf8", Category: "score", Metric: MetricScoreDays50, Threshold: 7, XPReward: 100},
	{ID: "score_50_30", Name: "Score 50+ (30j)", Description: "Score nutri > 50% pendant 30 jours", Icon: "📊", Color: "#38bdf8", Category: "score", Metric: MetricScoreDays50, Threshold: 30, XPReward: 500},
	{ID: "score_70_1", Name: "Score 70+ (1j)", Description: "Score nutri > 70% pendant 1 jour", Icon: "📈", Color: "#38bdf8", Category: "score", Metric: MetricScoreDays70, Threshold: 1, XPReward: 50},
	{ID: "score_70_7", Name: "Score 70+ (7j)", Description: "Score nutri > 70% pendant 7 jours", Icon: "📈", Color: "#38bdf8", Category: "score", Metric: MetricScoreDays70, Threshold: 7, XPReward: 200},
	{ID: "score_70_30", Name: "Score 70+ (30j)", Description: "Score nutri > 70% pendant 30 jours", Icon: "📈", Color: "#38bdf8", Category: "score", Metric: MetricScoreDays70, Threshold: 30, XPReward: 800},
	{ID: "score_80_1", Name: "Score 80+ (1j)", Description: "Score nutri > 80% pendant 1 jour", Icon: "🎯", Color: "#38bdf8", Category: "score", Metric: MetricScoreDays80, Threshold: 1, XPReward: 75},
	{ID: "score_80_7", Name: "Score 80+ (7j)", Description: "Score nutri > 80% pendant 7 jours", Icon: "🎯", Color: "#38bdf8", Category: "score", Metric: MetricScoreDays80, Threshold: 7, XPReward: 300},
	{ID: "score_80_14", Name: "Score 80+ (14j)", Description: "Score nutri > 80% pendant 14 jours", Icon: "🎯", Color: "#38bdf8", Category: "score", Metric: MetricScoreDays80, Threshold: 14, XPReward: 600},
	{ID: "score_80_30", Name: "Nutrition Champion", Description: "Score nutri > 80% pendant 30 jours", Icon: "🏆", Color: "#00BFFF", Category: "score", Metric: MetricScoreDays80, Threshold: 30, XPReward: 1000},

	// macro extremes
	{ID: "prot_daily_150", Name: "150g de Protéines", Description: "Dépasser 150g de protéines en 1j", Icon: "🥩", Color: "#B0E301", Category: "macros", Metric: MetricHighProteinDays, Threshold: 5, XPReward: 150},
	{ID: "prot_daily_200", Name: "200g de Protéines", Description: "Dépasser 200g de protéines en 1j", Icon: "🥩", Color: "#B0E301", Category: "macros", Metric: MetricVeryHighProteinDays, Threshold: 3, XPReward: 250},
	{ID: "low_cal_day", Name: "Journée Légère", Description: "Moins de 1500 kcal en 1 jour", Icon: "🥬", Color: "#38bdf8", Category: "macros", Metric: MetricLowCalorieDays, Threshold: 5, XPReward: 100},
	{ID: "keto_day", Name: "Jour Cétogène", Description: "Moins de 50g de glucides en 1j", Icon: "🥑", Color: "#FF6B35", Category: "macros", Metric: MetricLowCarbDays, Threshold: 3, XPReward: 200},
	{ID: "fiber_hero", Name: "Héros des Fibres", Description: "Repas très riches en légumes", Icon: "🥦", Color: "#B0E301", Category: "macros", Metric: MetricDaysBalanced, Threshold: 10, XPReward: 200},
	{ID: "hydra_nut", Name: "Nutrition Complète", Description: "3 macros en objectif le même jour", Icon: "💧", Color: "#00BFFF", Category: "macros", Metric: MetricDaysBalanced, Threshold: 10, XPReward: 400},

	// preferences and planning
	{ID: "first_like", Name: "Premier J'aime", Description: "Premier repas aimé", Icon: "👍", Color: "#B0E301", Category: "special", Metric: MetricLikedMeals, Threshold: 1, XPReward: 20},
	{ID: "likes_10", Name: "10 Repas Aimés", Description: "10 repas ajoutés aux favoris", Icon: "❤️", Color: "#ff4b6e", Category: "special", Metric: MetricLikedMeals, Threshold: 10, XPReward: 100},
	{ID: "likes_25", Name: "Gourmet Affirmé", Description: "25 repas aimés", Icon: "❤️", Color: "#ff4b6e", Category: "special", Metric: MetricLikedMeals, Threshold: 25, XPReward: 250},
	{ID: "likes_50", Name: "Collection de Goûts", Description: "50 repas aimés", Icon: "❤️", Color: "#ff4b6e", Category: "special", Metric: MetricLikedMeals, Threshold: 50, XPReward: 500},
	{ID: "first_dislike", Name: "Sélectif", Description: "Premier repas refusé", Icon: "🚫", Color: "#52525B", Category: "special", Metric: MetricDislikedMeals, Threshold: 1, XPReward: 20},
	{ID: "plan_builder_1", Name: "Mon Premier Plan", Description: "1 plan manuel créé depuis Favoris", Icon: "📋", Color: "#6441a5", Category: "special", Metric: MetricManualPlans, Threshold: 1, XPReward: 50},
	{ID: "plan_builder_5", Name: "5 Plans Manuels", Description: "5 plans manuels créés", Icon: "📋", Color: "#6441a5", Category: "special", Metric: MetricManualPlans, Threshold: 5, XPReward: 200},
	{ID: "plan_week", Name: "Semaine Planifiée", Description: "Plan complet 4 repas 7 jours", Icon: "📅", Color: "#6441a5", Category: "special", Metric: MetricManualPlans, Threshold: 7, XPReward: 500},
	{ID: "calorie_deficit_5", Name: "5 Jours en Déficit", Description: "5 jours consécutifs en déficit calorique", Icon: "📉", Color: "#FF6B35", Category: "special", Metric: MetricDeficitDays, Threshold: 5, XPReward: 200},
	{ID: "calorie_deficit_14", Name: "14 Jours en Déficit", Description: "14 jours consécutifs en déficit calorique", Icon: "📉", Color: "#FF6B35", Category: "special", Metric: MetricDeficitDays, Threshold: 14, XPReward: 600},
	{ID: "calorie_deficit_30", Name: "30 Jours en Déficit", Description: "30 jours consécutifs en déficit calorique", Icon: "📉", Color: "#FF6B35", Category: "special", Metric: MetricDeficitDays, Threshold: 30, XPReward: 1500},
}
