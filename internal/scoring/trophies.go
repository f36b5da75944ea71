package scoring

// The trophy catalog. Product data, kept verbatim from the app: ids are
// referenced by persisted claimed sets and must never change. Boolean
// achievements carry threshold 1 and a 0/1 metric.
var trophies = []BadgeDefinition{
	// workout trophies
	{ID: "first_workout", Name: "Premier Pas", Description: "Complète ton premier entraînement", Icon: "trophy", Category: "workout", Metric: MetricWorkouts, Threshold: 1, XPReward: 100},
	{ID: "workout_5", Name: "En Route", Description: "5 entraînements complétés", Icon: "footprints", Category: "workout", Metric: MetricWorkouts, Threshold: 5, XPReward: 50},
	{ID: "workout_10", Name: "Régulier", Description: "10 entraînements complétés", Icon: "medal", Category: "workout", Metric: MetricWorkouts, Threshold: 10, XPReward: 100},
	{ID: "workout_25", Name: "Déterminé", Description: "25 entraînements complétés", Icon: "shield", Category: "workout", Metric: MetricWorkouts, Threshold: 25, XPReward: 150},
	{ID: "workout_50", Name: "Guerrier", Description: "50 entraînements complétés", Icon: "award", Category: "workout", Metric: MetricWorkouts, Threshold: 50, XPReward: 250},
	{ID: "workout_75", Name: "Vétéran", Description: "75 entraînements complétés", Icon: "sword", Category: "workout", Metric: MetricWorkouts, Threshold: 75, XPReward: 300},
	{ID: "workout_100", Name: "Centenaire", Description: "100 entraînements complétés", Icon: "crown", Category: "workout", Metric: MetricWorkouts, Threshold: 100, XPReward: 500},
	{ID: "workout_150", Name: "Titan", Description: "150 entraînements complétés", Icon: "mountain", Category: "workout", Metric: MetricWorkouts, Threshold: 150, XPReward: 600},
	{ID: "workout_200", Name: "Légende", Description: "200 entraînements complétés", Icon: "sparkles", Category: "workout", Metric: MetricWorkouts, Threshold: 200, XPReward: 750},
	{ID: "workout_250", Name: "Demi-Dieu", Description: "250 entraînements complétés", Icon: "bolt", Category: "workout", Metric: MetricWorkouts, Threshold: 250, XPReward: 1000},
	{ID: "workout_300", Name: "Immortel", Description: "300 entraînements complétés", Icon: "infinity", Category: "workout", Metric: MetricWorkouts, Threshold: 300, XPReward: 1500},
	{ID: "workout_365", Name: "Année de Fer", Description: "365 entraînements - Un par jour possible!", Icon: "calendar", Category: "workout", Metric: MetricWorkouts, Threshold: 365, XPReward: 2000},
	{ID: "workout_500", Name: "Machine", Description: "500 entraînements complétés", Icon: "cog", Category: "workout", Metric: MetricWorkouts, Threshold: 500, XPReward: 3000},
	{ID: "workout_750", Name: "Indestructible", Description: "750 entraînements complétés", Icon: "shield-check", Category: "workout", Metric: MetricWorkouts, Threshold: 750, XPReward: 4000},
	{ID: "workout_1000", Name: "Millénaire", Description: "1000 entraînements - L'élite absolue!", Icon: "gem", Category: "workout", Metric: MetricWorkouts, Threshold: 1000, XPReward: 5000},
	{ID: "quick_workout", Name: "Express", Description: "Complète un entraînement en moins de 20 min", Icon: "zap", Category: "workout", Metric: "quick_workout", Threshold: 1, XPReward: 50},
	{ID: "long_workout", Name: "Marathon", Description: "Séance de plus de 90 minutes", Icon: "clock", Category: "workout", Metric: "long_workout", Threshold: 1, XPReward: 100},
	{ID: "hiit_master", Name: "Maître HIIT", Description: "10 séances HIIT complétées", Icon: "flame", Category: "workout", Metric: "hiit_workouts", Threshold: 10, XPReward: 150},
	{ID: "cardio_king", Name: "Roi du Cardio", Description: "20 séances cardio complétées", Icon: "heart-pulse", Category: "workout", Metric: "cardio_workouts", Threshold: 20, XPReward: 200},
	{ID: "strength_beast", Name: "Bête de Force", Description: "20 séances musculation complétées", Icon: "dumbbell", Category: "workout", Metric: "strength_workouts", Threshold: 20, XPReward: 200},
	{ID: "flexibility_guru", Name: "Guru Souplesse", Description: "10 séances stretching/yoga", Icon: "person-simple", Category: "workout", Metric: "flexibility_workouts", Threshold: 10, XPReward: 150},
	{ID: "double_day", Name: "Double Dose", Description: "Deux entraînements dans la même journée", Icon: "repeat", Category: "workout", Metric: "double_day", Threshold: 1, XPReward: 75},
	{ID: "triple_day", Name: "Triple Menace", Description: "Trois entraînements dans la même journée", Icon: "layers", Category: "workout", Metric: "triple_day", Threshold: 1, XPReward: 150},
	{ID: "comeback_kid", Name: "Retour Gagnant", Description: "Reprends après 7 jours d'absence", Icon: "rotate-ccw", Category: "workout", Metric: "comeback", Threshold: 1, XPReward: 100},
	{ID: "perfect_form", Name: "Forme Parfaite", Description: "Complete 5 sets sans pause excessive", Icon: "check-circle", Category: "workout", Metric: "perfect_sets", Threshold: 5, XPReward: 75},

	// streak trophies
	{ID: "streak_3", Name: "Bon Début", Description: "3 jours consécutifs", Icon: "flame", Category: "streak", Metric: MetricStreak, Threshold: 3, XPReward: 30},
	{ID: "streak_5", Name: "Main Chaude", Description: "5 jours consécutifs", Icon: "flame", Category: "streak", Metric: MetricStreak, Threshold: 5, XPReward: 50},
	{ID: "streak_7", Name: "Semaine Parfaite", Description: "7 jours consécutifs", Icon: "flame", Category: "streak", Metric: MetricStreak, Threshold: 7, XPReward: 100},
	{ID: "streak_14", Name: "Deux Semaines", Description: "14 jours consécutifs", Icon: "fire", Category: "streak", Metric: MetricStreak, Threshold: 14, XPReward: 150},
	{ID: "streak_21", Name: "Habitude Formée", Description: "21 jours - L'habitude est créée!", Icon: "fire", Category: "streak", Metric: MetricStreak, Threshold: 21, XPReward: 250},
	{ID: "streak_30", Name: "Mois de Fer", Description: "30 jours consécutifs", Icon: "fire", Category: "streak", Metric: MetricStreak, Threshold: 30, XPReward: 400},
	{ID: "streak_45", Name: "Six Semaines", Description: "45 jours consécutifs", Icon: "fire-extinguisher", Category: "streak", Metric: MetricStreak, Threshold: 45, XPReward: 500},
	{ID: "streak_60", Name: "Deux Mois", Description: "60 jours consécutifs", Icon: "star", Category: "streak", Metric: MetricStreak, Threshold: 60, XPReward: 700},
	{ID: "streak_90", Name: "Trimestre Doré", Description: "90 jours consécutifs", Icon: "star", Category: "streak", Metric: MetricStreak, Threshold: 90, XPReward: 1000},
	{ID: "streak_100", Name: "Centurion", Description: "100 jours consécutifs", Icon: "crown", Category: "streak", Metric: MetricStreak, Threshold: 100, XPReward: 1200},
	{ID: "streak_150", Name: "Invincible", Description: "150 jours consécutifs", Icon: "shield", Category: "streak", Metric: MetricStreak, Threshold: 150, XPReward: 1500},
	{ID: "streak_180", Name: "Semestre Parfait", Description: "180 jours consécutifs", Icon: "gem", Category: "streak", Metric: MetricStreak, Threshold: 180, XPReward: 2000},
	{ID: "streak_200", Name: "Bicentenaire", Description: "200 jours consécutifs", Icon: "gem", Category: "streak", Metric: MetricStreak, Threshold: 200, XPReward: 2500},
	{ID: "streak_250", Name: "Quart de Millénaire", Description: "250 jours consécutifs", Icon: "trophy", Category: "streak", Metric: MetricStreak, Threshold: 250, XPReward: 3000},
	{ID: "streak_300", Name: "Spartiate", Description: "300 jours consécutifs", Icon: "sword", Category: "streak", Metric: MetricStreak, Threshold: 300, XPReward: 4000},
	{ID: "streak_365", Name: "Année Complète", Description: "365 jours - Une année entière!", Icon: "infinity", Category: "streak", Metric: MetricStreak, Threshold: 365, XPReward: 10000},
	{ID: "weekend_warrior", Name: "Guerrier du Weekend", Description: "10 weekends consécutifs entraînés", Icon: "calendar-check", Category: "streak", Metric: "weekend_streak", Threshold: 10, XPReward: 200},
	{ID: "monday_motivation", Name: "Monday Motivation", Description: "Jamais raté un lundi (4 semaines)", Icon: "calendar-plus", Category: "streak", Metric: "monday_streak", Threshold: 4, XPReward: 150},
	{ID: "never_skip_leg", Name: "Never Skip Leg Day", Description: "Jambes entraînées chaque semaine (8 sem)", Icon: "footprints", Category: "streak", Metric: "leg_day_streak", Threshold: 8, XPReward: 200},
	{ID: "consistent_schedule", Name: "Régulier comme une Horloge", Description: "Même heure d'entraînement (14 jours)", Icon: "alarm-clock", Category: "streak", Metric: "consistent_time", Threshold: 14, XPReward: 150},

	// nutrition trophies
	{ID: "first_meal", Name: "Premier Repas", Description: "Enregistre ton premier repas", Icon: "utensils", Category: "nutrition", Metric: MetricMeals, Threshold: 1, XPReward: 20},
	{ID: "meals_5", Name: "Gourmet Débutant", Description: "5 repas enregistrés", Icon: "utensils", Category: "nutrition", Metric: MetricMeals, Threshold: 5, XPReward: 30},
	{ID: "meals_10", Name: "Chef Amateur", Description: "10 repas enregistrés", Icon: "chef-hat", Category: "nutrition", Metric: MetricMeals, Threshold: 10, XPReward: 50},
	{ID: "meals_25", Name: "Cuisinier", Description: "25 repas enregistrés", Icon: "chef-hat", Category: "nutrition", Metric: MetricMeals, Threshold: 25, XPReward: 100},
	{ID: "meals_50", Name: "Chef Confirmé", Description: "50 repas enregistrés", Icon: "award", Category: "nutrition", Metric: MetricMeals, Threshold: 50, XPReward: 200},
	{ID: "meals_100", Name: "Maître Cuisinier", Description: "100 repas enregistrés", Icon: "crown", Category: "nutrition", Metric: MetricMeals, Threshold: 100, XPReward: 400},
	{ID: "meals_200", Name: "Chef Étoilé", Description: "200 repas enregistrés", Icon: "star", Category: "nutrition", Metric: MetricMeals, Threshold: 200, XPReward: 600},
	{ID: "meals_365", Name: "Journal Alimentaire", Description: "365 repas - Un an de suivi!", Icon: "book", Category: "nutrition", Metric: MetricMeals, Threshold: 365, XPReward: 1000},
	{ID: "ai_meal_first", Name: "IA Culinaire", Description: "Premier repas généré par IA", Icon: "sparkles", Category: "nutrition", Metric: MetricAIMeals, Threshold: 1, XPReward: 50},
	{ID: "ai_meals_10", Name: "Fan de l'IA", Description: "10 repas générés par IA", Icon: "brain", Category: "nutrition", Metric: MetricAIMeals, Threshold: 10, XPReward: 100},
	{ID: "ai_meals_50", Name: "Addict IA", Description: "50 repas générés par IA", Icon: "cpu", Category: "nutrition", Metric: MetricAIMeals, Threshold: 50, XPReward: 300},
	{ID: "protein_target", Name: "Objectif Protéines", Description: "Atteins ton objectif protéines 7 jours", Icon: "target", Category: "nutrition", Metric: "protein_streak", Threshold: 7, XPReward: 150},
	{ID: "calorie_control", Name: "Contrôle Calories", Description: "Dans tes objectifs caloriques 7 jours", Icon: "scale", Category: "nutrition", Metric: "calorie_streak", Threshold: 7, XPReward: 150},
	{ID: "balanced_meals", Name: "Équilibre Parfait", Description: "10 repas équilibrés (macros)", Icon: "pie-chart", Category: "nutrition", Metric: "balanced_meals", Threshold: 10, XPReward: 200},
	{ID: "meal_prep", Name: "Meal Prep Master", Description: "Planifie 7 repas à l'avance", Icon: "calendar", Category: "nutrition", Metric: "planned_meals", Threshold: 7, XPReward: 150},
	{ID: "breakfast_champion", Name: "Champion du Petit-déj", Description: "30 petits-déjeuners enregistrés", Icon: "sunrise", Category: "nutrition", Metric: "breakfast_count", Threshold: 30, XPReward: 150},
	{ID: "hydration_hero", Name: "Héros de l'Hydratation", Description: "Objectif eau atteint 14 jours", Icon: "droplet", Category: "nutrition", Metric: "water_streak", Threshold: 14, XPReward: 150},
	{ID: "veggie_lover", Name: "Amoureux des Légumes", Description: "5 portions de légumes/jour (7 jours)", Icon: "carrot", Category: "nutrition", Metric: "veggie_streak", Threshold: 7, XPReward: 200},
	{ID: "no_junk_week", Name: "Semaine Clean", Description: "Aucun fast-food pendant 7 jours", Icon: "shield-check", Category: "nutrition", Metric: "clean_week", Threshold: 1, XPReward: 150},
	{ID: "macro_master", Name: "Maître des Macros", Description: "Objectifs macros atteints 30 jours", Icon: "trophy", Category: "nutrition", Metric: "macro_streak", Threshold: 30, XPReward: 500},

	// progress trophies
	{ID: "first_weight", Name: "Premier Pesage", Description: "Enregistre ton premier poids", Icon: "scale", Category: "progress", Metric: MetricWeightEntries, Threshold: 1, XPReward: 30},
	{ID: "weight_10", Name: "Suivi Régulier", Description: "10 pesées enregistrées", Icon: "trending-up", Category: "progress", Metric: MetricWeightEntries, Threshold: 10, XPReward: 50},
	{ID: "weight_30", Name: "Mois de Suivi", Description: "30 pesées enregistrées", Icon: "calendar-check", Category: "progress", Metric: MetricWeightEntries, Threshold: 30, XPReward: 100},
	{ID: "weight_100", Name: "Obsessionnel", Description: "100 pesées enregistrées", Icon: "line-chart", Category: "progress", Metric: MetricWeightEntries, Threshold: 100, XPReward: 300},
	{ID: "first_record", Name: "Premier Record", Description: "Bats ton premier record personnel", Icon: "zap", Category: "progress", Metric: MetricRecords, Threshold: 1, XPReward: 100},
	{ID: "records_5", Name: "Collectionneur", Description: "5 records personnels battus", Icon: "trophy", Category: "progress", Metric: MetricRecords, Threshold: 5, XPReward: 200},
	{ID: "records_10", Name: "Record Man", Description: "10 records personnels battus", Icon: "medal", Category: "progress", Metric: MetricRecords, Threshold: 10, XPReward: 350},
	{ID: "records_25", Name: "Chasseur de Records", Description: "25 records personnels battus", Icon: "award", Category: "progress", Metric: MetricRecords, Threshold: 25, XPReward: 500},
	{ID: "records_50", Name: "Légende des Records", Description: "50 records personnels battus", Icon: "crown", Category: "progress", Metric: MetricRecords, Threshold: 50, XPReward: 1000},
	{ID: "weight_loss_1kg", Name: "Premier Kilo", Description: "Perds ton premier kilogramme", Icon: "arrow-down", Category: "progress", Metric: "weight_lost", Threshold: 1, XPReward: 100},
	{ID: "weight_loss_5kg", Name: "5 Kilos Envolés", Description: "5 kg de perdus", Icon: "arrow-down", Category: "progress", Metric: "weight_lost", Threshold: 5, XPReward: 300},
	{ID: "weight_loss_10kg", Name: "Transformation", Description: "10 kg de perdus", Icon: "star", Category: "progress", Metric: "weight_lost", Threshold: 10, XPReward: 750},
	{ID: "weight_loss_20kg", Name: "Métamorphose", Description: "20 kg de perdus", Icon: "gem", Category: "progress", Metric: "weight_lost", Threshold: 20, XPReward: 2000},
	{ID: "muscle_gain_1kg", Name: "Premier Muscle", Description: "Gagne ton premier kg de muscle", Icon: "arrow-up", Category: "progress", Metric: "muscle_gained", Threshold: 1, XPReward: 100},
	{ID: "muscle_gain_5kg", Name: "5 Kilos de Muscle", Description: "5 kg de muscle gagnés", Icon: "dumbbell", Category: "progress", Metric: "muscle_gained", Threshold: 5, XPReward: 500},
	{ID: "goal_reached", Name: "Objectif Atteint", Description: "Atteins ton poids cible", Icon: "target", Category: "progress", Metric: "goal_reached", Threshold: 1, XPReward: 1000},
	{ID: "body_comp", Name: "Recomposition", Description: "Améliore ta composition corporelle", Icon: "activity", Category: "progress", Metric: "body_recomp", Threshold: 1, XPReward: 500},
	{ID: "bmi_normal", Name: "IMC Normal", Description: "Atteins un IMC normal", Icon: "heart", Category: "progress", Metric: "bmi_normal", Threshold: 1, XPReward: 500},
	{ID: "strength_double", Name: "Force x2", Description: "Double ta force sur un exercice", Icon: "trending-up", Category: "progress", Metric: "strength_doubled", Threshold: 1, XPReward: 750},
	{ID: "endurance_improve", Name: "Endurance Améliorée", Description: "Améliore ton cardio de 50%", Icon: "heart-pulse", Category: "progress", Metric: "cardio_improved", Threshold: 50, XPReward: 500},

	// level trophies
	{ID: "level_2", Name: "Apprenti", Description: "Atteins le niveau 2", Icon: "badge", Category: "level", Metric: MetricLevel, Threshold: 2, XPReward: 50},
	{ID: "level_3", Name: "Régulier", Description: "Atteins le niveau 3", Icon: "badge", Category: "level", Metric: MetricLevel, Threshold: 3, XPReward: 75},
	{ID: "level_4", Name: "Confirmé", Description: "Atteins le niveau 4", Icon: "badge", Category: "level", Metric: MetricLevel, Threshold: 4, XPReward: 100},
	{ID: "level_5", Name: "Avancé", Description: "Atteins le niveau 5", Icon: "award", Category: "level", Metric: MetricLevel, Threshold: 5, XPReward: 150},
	{ID: "level_6", Name: "Expert", Description: "Atteins le niveau 6", Icon: "medal", Category: "level", Metric: MetricLevel, Threshold: 6, XPReward: 200},
	{ID: "level_7", Name: "Maître", Description: "Atteins le niveau 7", Icon: "star", Category: "level", Metric: MetricLevel, Threshold: 7, XPReward: 300},
	{ID: "level_8", Name: "Champion", Description: "Atteins le niveau 8", Icon: "crown", Category: "level", Metric: MetricLevel, Threshold: 8, XPReward: 400},
	{ID: "level_9", Name: "Légende", Description: "Atteins le niveau 9", Icon: "sparkles", Category: "level", Metric: MetricLevel, Threshold: 9, XPReward: 500},
	{ID: "level_10", Name: "Immortel", Description: "Atteins le niveau 10 - Maximum!", Icon: "gem", Category: "level", Metric: MetricLevel, Threshold: 10, XPReward: 1000},
	{ID: "xp_1000", Name: "1K Club", Description: "Accumule 1000 XP", Icon: "sparkles", Category: "level", Metric: MetricTotalXP, Threshold: 1000, XPReward: 100},
	{ID: "xp_5000", Name: "5K Club", Description: "Accumule 5000 XP", Icon: "star", Category: "level", Metric: MetricTotalXP, Threshold: 5000, XPReward: 250},
	{ID: "xp_10000", Name: "10K Club", Description: "Accumule 10000 XP", Icon: "trophy", Category: "level", Metric: MetricTotalXP, Threshold: 10000, XPReward: 500},
	{ID: "xp_25000", Name: "25K Club", Description: "Accumule 25000 XP", Icon: "crown", Category: "level", Metric: MetricTotalXP, Threshold: 25000, XPReward: 1000},
	{ID: "xp_50000", Name: "50K Club", Description: "Accumule 50000 XP", Icon: "gem", Category: "level", Metric: MetricTotalXP, Threshold: 50000, XPReward: 2000},
	{ID: "xp_100000", Name: "100K Club", Description: "Accumule 100000 XP - Élite!", Icon: "infinity", Category: "level", Metric: MetricTotalXP, Threshold: 100000, XPReward: 5000},

	// special trophies
	{ID: "early_bird", Name: "Lève-tôt", Description: "Entraîne-toi avant 6h du matin", Icon: "sunrise", Category: "special", Metric: "early_workout", Threshold: 1, XPReward: 100},
	{ID: "super_early", Name: "Extrême Matinal", Description: "Entraîne-toi avant 5h du matin", Icon: "sun-dim", Category: "special", Metric: "super_early", Threshold: 1, XPReward: 200},
	{ID: "night_owl", Name: "Oiseau de Nuit", Description: "Entraîne-toi après 22h", Icon: "moon", Category: "special", Metric: "night_workout", Threshold: 1, XPReward: 100},
	{ID: "midnight_warrior", Name: "Guerrier de Minuit", Description: "Entraîne-toi après minuit", Icon: "moon-star", Category: "special", Metric: "midnight_workout", Threshold: 1, XPReward: 200},
	{ID: "variety_master", Name: "Maître de la Variété", Description: "Exerce toutes les catégories", Icon: "layers", Category: "special", Metric: "all_categories", Threshold: 1, XPReward: 300},
	{ID: "new_year", Name: "Bonne Résolution", Description: "Entraîne-toi le 1er janvier", Icon: "party-popper", Category: "special", Metric: "new_year_workout", Threshold: 1, XPReward: 200},
	{ID: "birthday_workout", Name: "Anniversaire Fitness", Description: "Entraîne-toi le jour de ton anniversaire", Icon: "cake", Category: "special", Metric: "birthday_workout", Threshold: 1, XPReward: 150},
	{ID: "holiday_warrior", Name: "Guerrier des Fêtes", Description: "Entraîne-toi à Noël", Icon: "gift", Category: "special", Metric: "christmas_workout", Threshold: 1, XPReward: 200},
	{ID: "all_programs", Name: "Touche-à-tout", Description: "Essaie tous les programmes", Icon: "check-check", Category: "special", Metric: "all_programs", Threshold: 1, XPReward: 500},
	{ID: "program_complete", Name: "Programme Terminé", Description: "Complète un programme entier", Icon: "graduation-cap", Category: "special", Metric: "program_completed", Threshold: 1, XPReward: 500},
	{ID: "three_programs", Name: "Triple Diplômé", Description: "Complète 3 programmes", Icon: "medal", Category: "special", Metric: "program_completed", Threshold: 3, XPReward: 1500},
	{ID: "chrono_master", Name: "Maître du Chrono", Description: "Utilise le chronomètre 50 fois", Icon: "timer", Category: "special", Metric: "chrono_uses", Threshold: 50, XPReward: 200},
	{ID: "interval_king", Name: "Roi des Intervalles", Description: "100 intervalles complétés", Icon: "repeat", Category: "special", Metric: "intervals_completed", Threshold: 100, XPReward: 300},
	{ID: "explorer", Name: "Explorateur", Description: "Essaie 50 exercices différents", Icon: "compass", Category: "special", Metric: "unique_exercises", Threshold: 50, XPReward: 250},
	{ID: "exercise_master", Name: "Maître des Exercices", Description: "Essaie 100 exercices différents", Icon: "map", Category: "special", Metric: "unique_exercises", Threshold: 100, XPReward: 500},
	{ID: "exercise_legend", Name: "Légende des Exercices", Description: "Essaie 200 exercices différents", Icon: "globe", Category: "special", Metric: "unique_exercises", Threshold: 200, XPReward: 1000},
	{ID: "social_share", Name: "Influenceur Fitness", Description: "Partage ton premier progrès", Icon: "share", Category: "special", Metric: "shares", Threshold: 1, XPReward: 50},
	{ID: "profile_complete", Name: "Profil Complet", Description: "Remplis toutes les infos du profil", Icon: "user-check", Category: "special", Metric: "profile_complete", Threshold: 1, XPReward: 50},
	{ID: "first_export", Name: "Backup Pro", Description: "Exporte tes données pour la première fois", Icon: "download", Category: "special", Metric: "exports", Threshold: 1, XPReward: 30},
	{ID: "feedback_given", Name: "Voix du Peuple", Description: "Donne ton premier feedback", Icon: "message-circle", Category: "special", Metric: "feedback", Threshold: 1, XPReward: 50},
	{ID: "rain_or_shine", Name: "Pluie ou Soleil", Description: "Entraîne-toi malgré la météo", Icon: "cloud-rain", Category: "special", Metric: "bad_weather_workout", Threshold: 1, XPReward: 100},
	{ID: "travel_fit", Name: "Voyage Fitness", Description: "Entraîne-toi en voyage", Icon: "plane", Category: "special", Metric: "travel_workout", Threshold: 1, XPReward: 100},
	{ID: "full_moon", Name: "Pleine Lune", Description: "Entraîne-toi une nuit de pleine lune", Icon: "moon", Category: "special", Metric: "full_moon_workout", Threshold: 1, XPReward: 150},
	{ID: "app_anniversary", Name: "Fidèle", Description: "1 an d'utilisation de l'app", Icon: "heart", Category: "special", Metric: "app_age_days", Threshold: 365, XPReward: 1000},
	{ID: "founding_member", Name: "Membre Fondateur", Description: "Parmi les premiers utilisateurs", Icon: "star", Category: "special", Metric: "early_adopter", Threshold: 1, XPReward: 500},
}
