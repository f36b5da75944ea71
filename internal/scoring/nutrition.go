package scoring

import (
	"errors"
	"math"
)

var ErrInvalidProfile = errors.New("invalid profile: weight, height and age must be positive")

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type Goal string

const (
	GoalWeightLoss  Goal = "weight_loss"
	GoalMaintenance Goal = "maintenance"
	GoalMuscleGain  Goal = "muscle_gain"
	GoalEndurance   Goal = "endurance"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

// defaults for unknown enum values, declared once instead of
// scattered around call sites
const (
	defaultActivityMultiplier = 1.55 // moderate
	defaultProteinPerKg       = 1.6  // maintenance
)

var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary:  1.2,
	ActivityLight:      1.375,
	ActivityModerate:   1.55,
	ActivityActive:     1.725,
	ActivityVeryActive: 1.9,
}

var goalCalorieAdjustments = map[Goal]float64{
	GoalWeightLoss:  -500,
	GoalMaintenance: 0,
	GoalMuscleGain:  300,
	GoalEndurance:   200,
}

var goalProteinPerKg = map[Goal]float64{
	GoalWeightLoss:  2.2,
	GoalMaintenance: 1.6,
	GoalMuscleGain:  2.0,
	GoalEndurance:   1.4,
}

const (
	MinDailyCalories = 1200
	MaxDailyCalories = 5000
	MinTargetProtein = 50
	MaxTargetProtein = 300
)

type ProfileMetrics struct {
	WeightKg      float64       `json:"weight"`
	HeightCm      float64       `json:"height"`
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	Goal          Goal          `json:"goal"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
}

type NutritionTargets struct {
	DailyCalories int `json:"dailyCalories"`
	TargetProtein int `json:"targetProtein"`
}

// ComputeNutritionTargets derives daily calorie and protein targets from
// the profile using the Mifflin-St Jeor equation.
func ComputeNutritionTargets(p ProfileMetrics) (NutritionTargets, error) {
	if p.WeightKg <= 0 || p.HeightCm <= 0 || p.Age <= 0 {
		return NutritionTargets{}, ErrInvalidProfile
	}

	bmr := 10*p.WeightKg + 6.25*p.HeightCm - 5*float64(p.Age)
	if p.Gender == GenderFemale {
		bmr -= 161
	} else {
		bmr += 5
	}

	activityMult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		activityMult = defaultActivityMultiplier
	}
	tdee := bmr * activityMult

	dailyCalories := int(math.Round(tdee + goalCalorieAdjustments[p.Goal]))

	proteinPerKg, ok := goalProteinPerKg[p.Goal]
	if !ok {
		proteinPerKg = defaultProteinPerKg
	}
	targetProtein := int(math.Round(p.WeightKg * proteinPerKg))

	return NutritionTargets{
		DailyCalories: clampInt(dailyCalories, MinDailyCalories, MaxDailyCalories),
		TargetProtein: clampInt(targetProtein, MinTargetProtein, MaxTargetProtein),
	}, nil
}

type BMICategory string

const (
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
	BMIUnknown     BMICategory = "unknown"
)

type BMIResult struct {
	BMI      *float64    `json:"bmi"`
	Category BMICategory `json:"category"`
}

// ComputeBMI returns a nil BMI and the "unknown" category when weight or
// height is missing, instead of dividing by zero.
func ComputeBMI(weightKg, heightCm float64) BMIResult {
	if weightKg <= 0 || heightCm <= 0 {
		return BMIResult{Category: BMIUnknown}
	}

	heightM := heightCm / 100
	rawBMI := weightKg / (heightM * heightM)

	// categorize the raw quotient; rounding is for display only
	var category BMICategory
	switch {
	case rawBMI < 18.5:
		category = BMIUnderweight
	case rawBMI < 25:
		category = BMINormal
	case rawBMI < 30:
		category = BMIOverweight
	default:
		category = BMIObese
	}

	bmi := math.Round(rawBMI*10) / 10
	return BMIResult{BMI: &bmi, Category: category}
}

type DailyTotals struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Carbs    int    `json:"carbs"`
	Fat      int    `json:"fat"`
}

// ideal macro split, share of total calories
const (
	idealProteinPct = 30.0
	idealCarbsPct   = 40.0
	idealFatPct     = 30.0
)

type NutritionScore struct {
	Score        int     `json:"score"`
	CalorieScore float64 `json:"calorieScore"`
	ProteinScore float64 `json:"proteinScore"`
	BalanceScore float64 `json:"balanceScore"`
	ProteinPct   float64 `json:"proteinPct"`
	CarbsPct     float64 `json:"carbsPct"`
	FatPct       float64 `json:"fatPct"`
}

// ComputeNutritionScore rates one day of logged intake against the
// targets: 40% calorie accuracy, 30% protein coverage, 30% macro balance.
func ComputeNutritionScore(totals DailyTotals, targets NutritionTargets) NutritionScore {
	var s NutritionScore

	if targets.DailyCalories > 0 {
		calDiffPct := math.Abs(float64(totals.Calories-targets.DailyCalories)) / float64(targets.DailyCalories) * 100
		s.CalorieScore = 100 - math.Min(calDiffPct, 100)
	}

	if targets.TargetProtein > 0 {
		s.ProteinScore = math.Min(float64(totals.Protein)/float64(targets.TargetProtein)*100, 100)
	}

	totalMacroCalories := float64(totals.Protein*4 + totals.Carbs*4 + totals.Fat*9)
	if totalMacroCalories > 0 {
		s.ProteinPct = float64(totals.Protein*4) / totalMacroCalories * 100
		s.CarbsPct = float64(totals.Carbs*4) / totalMacroCalories * 100
		s.FatPct = float64(totals.Fat*9) / totalMacroCalories * 100

		balance := 100 - (math.Abs(s.ProteinPct-idealProteinPct)+
			math.Abs(s.CarbsPct-idealCarbsPct)+
			math.Abs(s.FatPct-idealFatPct))/3
		s.BalanceScore = math.Max(0, balance)
	}

	s.Score = int(math.Round(s.CalorieScore*0.4 + s.ProteinScore*0.3 + s.BalanceScore*0.3))
	return s
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
