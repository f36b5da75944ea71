package progression

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/WaekyTV/fitquest-backend/internal/meals"
	"github.com/WaekyTV/fitquest-backend/internal/profile"
	"github.com/WaekyTV/fitquest-backend/internal/scoring"
	"github.com/WaekyTV/fitquest-backend/internal/telemetry/metrics"
	"github.com/WaekyTV/fitquest-backend/internal/workouts"
)

// badge catalog sections; claimed sets are kept per section so the
// streak trophy and the streak badge with the same id stay independent
const (
	SectionTrophies  = "trophies"
	SectionNutrition = "nutrition"
	SectionStreak    = "streak"
)

var ErrUnknownSection = errors.New("unknown badge section")

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=progression

type progressionRepo interface {
	TotalXP(ctx context.Context, userID int64) (int, error)
	AddXP(ctx context.Context, userID int64, event XPEvent) (int, error)
	ClaimedBadges(ctx context.Context, userID int64, section string) (scoring.ClaimedSet, error)
	ClaimBadge(ctx context.Context, userID int64, section, badgeID string, claimedAt time.Time) error
	XPEvents(ctx context.Context, userID int64, limit int) ([]XPEvent, error)
	ProgressCounts(ctx context.Context, userID int64) (weightEntries, records int, err error)
}

type workoutsSource interface {
	ActivityDates(ctx context.Context, userID int64) ([]time.Time, error)
	Stats(ctx context.Context, userID int64) (workouts.Stats, error)
}

type mealsSource interface {
	AllDayTotals(ctx context.Context, userID int64) ([]scoring.DailyTotals, error)
	Counters(ctx context.Context, userID int64) (meals.Counters, error)
}

type profileSource interface {
	Get(ctx context.Context, userID int64) (*profile.Profile, error)
}

type Service struct {
	repo     progressionRepo
	workouts workoutsSource
	meals    mealsSource
	profiles profileSource
	catalog  *scoring.Catalog
	metrics  *metrics.Manager
}

func NewService(
	repo progressionRepo,
	workoutsSource workoutsSource,
	mealsSource mealsSource,
	profiles profileSource,
	catalog *scoring.Catalog,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:     repo,
		workouts: workoutsSource,
		meals:    mealsSource,
		profiles: profiles,
		catalog:  catalog,
		metrics:  metricsManager,
	}
}

func (s *Service) Level(ctx context.Context, userID int64) (scoring.LevelInfo, error) {
	totalXP, err := s.repo.TotalXP(ctx, userID)
	if err != nil {
		return scoring.LevelInfo{}, fmt.Errorf("get total xp: %w", err)
	}
	return scoring.ComputeLevel(totalXP), nil
}

func (s *Service) Streak(ctx context.Context, userID int64, now time.Time) (int, error) {
	activityDates, err := s.workouts.ActivityDates(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("get activity dates: %w", err)
	}
	return scoring.Streak(scoring.DaySet(activityDates), now), nil
}

// multiplier resolves the XP multiplier from the profile. An absent or
// incomplete profile falls back to the neutral 1.0.
func (s *Service) multiplier(ctx context.Context, userID int64) float64 {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return 1.0
	}
	bmi := scoring.ComputeBMI(p.WeightKg, p.HeightCm)
	return scoring.XPMultiplier(bmi.Category, p.Goal)
}

func (s *Service) AwardXP(ctx context.Context, userID int64, action string, now time.Time) (scoring.AwardResult, error) {
	totalXP, err := s.repo.TotalXP(ctx, userID)
	if err != nil {
		return scoring.AwardResult{}, fmt.Errorf("get total xp: %w", err)
	}

	result, err := scoring.AwardXP(action, s.catalog.Rewards, totalXP, s.multiplier(ctx, userID))
	if err != nil {
		return scoring.AwardResult{}, err
	}

	newTotal, err := s.repo.AddXP(ctx, userID, XPEvent{
		Action:     result.Action,
		BaseXP:     result.BaseXP,
		EarnedXP:   result.EarnedXP,
		Multiplier: result.Multiplier,
		CreatedAt:  now,
	})
	if err != nil {
		return scoring.AwardResult{}, fmt.Errorf("credit xp: %w", err)
	}

	// a concurrent award may have landed in between, the stored total wins
	result.NewTotal = newTotal
	result.LevelAfter = scoring.ComputeLevel(newTotal).Level
	result.LeveledUp = result.LevelAfter > result.LevelBefore

	s.metrics.CounterXPAwards.WithLabelValues(action).Inc()
	return result, nil
}

const (
	defaultXPHistoryLimit = 50
	maxXPHistoryLimit     = 200
)

// XPHistory returns the most recent XP events, newest first.
func (s *Service) XPHistory(ctx context.Context, userID int64, limit int) ([]XPEvent, error) {
	if limit <= 0 {
		limit = defaultXPHistoryLimit
	}
	if limit > maxXPHistoryLimit {
		limit = maxXPHistoryLimit
	}
	events, err := s.repo.XPEvents(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("get xp events: %w", err)
	}
	return events, nil
}

// Snapshot assembles the full badge metric snapshot for the user.
func (s *Service) Snapshot(ctx context.Context, userID int64, now time.Time) (scoring.Metrics, error) {
	workoutStats, err := s.workouts.Stats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get workout stats: %w", err)
	}

	streak, err := s.Streak(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	totalXP, err := s.repo.TotalXP(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get total xp: %w", err)
	}
	level := scoring.ComputeLevel(totalXP)

	weightEntries, records, err := s.repo.ProgressCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get progress counts: %w", err)
	}

	mealCounters, err := s.meals.Counters(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get meal counters: %w", err)
	}

	allTotals, err := s.meals.AllDayTotals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get day totals: %w", err)
	}

	var targets scoring.NutritionTargets
	if p, err := s.profiles.Get(ctx, userID); err == nil {
		// incomplete profile leaves the zero targets, the day metrics
		// then simply never trigger
		targets, _ = scoring.ComputeNutritionTargets(p.Metrics())
	}

	snapshot := nutritionDayMetrics(allTotals, targets)
	snapshot[scoring.MetricWorkouts] = workoutStats.TotalWorkouts
	snapshot[scoring.MetricStreak] = streak
	snapshot[scoring.MetricLevel] = level.Level
	snapshot[scoring.MetricTotalXP] = totalXP
	snapshot[scoring.MetricWeightEntries] = weightEntries
	snapshot[scoring.MetricRecords] = records
	snapshot[scoring.MetricMeals] = mealCounters.TotalMeals
	snapshot[scoring.MetricTotalMeals] = mealCounters.TotalMeals
	snapshot[scoring.MetricAIMeals] = mealCounters.AIMeals
	snapshot[scoring.MetricLikedMeals] = mealCounters.LikedMeals
	snapshot[scoring.MetricDislikedMeals] = mealCounters.DislikedMeals

	return snapshot, nil
}

func (s *Service) sectionDefs(section string) ([]scoring.BadgeDefinition, error) {
	switch section {
	case SectionTrophies:
		return s.catalog.Trophies, nil
	case SectionNutrition:
		return s.catalog.NutritionBadges, nil
	case SectionStreak:
		return s.catalog.StreakBadges, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
}

func (s *Service) Badges(ctx context.Context, userID int64, section string, now time.Time) ([]scoring.BadgeProgress, error) {
	defs, err := s.sectionDefs(section)
	if err != nil {
		return nil, err
	}

	snapshot, err := s.Snapshot(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	claimed, err := s.repo.ClaimedBadges(ctx, userID, section)
	if err != nil {
		return nil, fmt.Errorf("get claimed badges: %w", err)
	}

	return scoring.EvaluateBadges(defs, snapshot, claimed), nil
}

func (s *Service) ClaimBadge(ctx context.Context, userID int64, section, badgeID string, now time.Time) (scoring.AwardResult, error) {
	defs, err := s.sectionDefs(section)
	if err != nil {
		return scoring.AwardResult{}, err
	}

	snapshot, err := s.Snapshot(ctx, userID, now)
	if err != nil {
		return scoring.AwardResult{}, err
	}

	claimed, err := s.repo.ClaimedBadges(ctx, userID, section)
	if err != nil {
		return scoring.AwardResult{}, fmt.Errorf("get claimed badges: %w", err)
	}

	xpReward, err := scoring.ClaimBadge(badgeID, defs, snapshot, claimed)
	if err != nil {
		return scoring.AwardResult{}, err
	}

	if err := s.repo.ClaimBadge(ctx, userID, section, badgeID, now); err != nil {
		return scoring.AwardResult{}, err
	}

	totalXP, err := s.repo.TotalXP(ctx, userID)
	if err != nil {
		return scoring.AwardResult{}, fmt.Errorf("get total xp: %w", err)
	}

	newTotal, err := s.repo.AddXP(ctx, userID, XPEvent{
		Action:     "badge:" + badgeID,
		BaseXP:     xpReward,
		EarnedXP:   xpReward,
		Multiplier: 1.0,
		CreatedAt:  now,
	})
	if err != nil {
		return scoring.AwardResult{}, fmt.Errorf("credit badge xp: %w", err)
	}

	levelBefore := scoring.ComputeLevel(totalXP).Level
	levelAfter := scoring.ComputeLevel(newTotal).Level

	s.metrics.CounterBadgeClaims.WithLabelValues(section).Inc()

	return scoring.AwardResult{
		Action:      "badge:" + badgeID,
		BaseXP:      xpReward,
		Multiplier:  1.0,
		EarnedXP:    xpReward,
		NewTotal:    newTotal,
		LevelBefore: levelBefore,
		LevelAfter:  levelAfter,
		LeveledUp:   levelAfter > levelBefore,
		MegaLevelUp: levelAfter > levelBefore && levelAfter%10 == 0,
	}, nil
}

type Summary struct {
	TotalXP    int               `json:"totalXp"`
	Level      scoring.LevelInfo `json:"level"`
	Streak     int               `json:"streak"`
	Multiplier float64           `json:"multiplier"`
	Workouts   workouts.Stats    `json:"workouts"`
}

func (s *Service) Summarize(ctx context.Context, userID int64, now time.Time) (*Summary, error) {
	totalXP, err := s.repo.TotalXP(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get total xp: %w", err)
	}

	streak, err := s.Streak(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	workoutStats, err := s.workouts.Stats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get workout stats: %w", err)
	}

	return &Summary{
		TotalXP:    totalXP,
		Level:      scoring.ComputeLevel(totalXP),
		Streak:     streak,
		Multiplier: s.multiplier(ctx, userID),
		Workouts:   workoutStats,
	}, nil
}

// nutritionDayMetrics folds the per-day intake aggregates into the
// nutrition badge counters. The per-day score here is the simpler
// calorie/protein split, kept separate from the richer daily score
// shown on the dashboard.
func nutritionDayMetrics(allTotals []scoring.DailyTotals, targets scoring.NutritionTargets) scoring.Metrics {
	m := scoring.Metrics{
		scoring.MetricDaysTracked: len(allTotals),
	}

	dailyCalories := math.Max(float64(targets.DailyCalories), 1)
	targetProtein := math.Max(float64(targets.TargetProtein), 1)

	for _, day := range allTotals {
		cal := float64(day.Calories)
		prot := float64(day.Protein)
		carbs := float64(day.Carbs)

		calDiffPct := math.Abs(cal-dailyCalories) / dailyCalories * 100
		calScore := 100 - math.Min(calDiffPct, 100)
		protScore := math.Min(prot/targetProtein*100, 100)
		dayScore := calScore*0.5 + protScore*0.5

		if calDiffPct <= 15 {
			m[scoring.MetricDaysCalorieTarget]++
		}
		if prot >= targetProtein*0.9 {
			m[scoring.MetricDaysProteinTarget]++
		}
		if calDiffPct <= 15 && prot >= targetProtein*0.9 {
			m[scoring.MetricDaysBalanced]++
		}
		if dayScore >= 50 {
			m[scoring.MetricScoreDays50]++
		}
		if dayScore >= 70 {
			m[scoring.MetricScoreDays70]++
		}
		if dayScore >= 80 {
			m[scoring.MetricScoreDays80]++
		}
		if prot >= 150 {
			m[scoring.MetricHighProteinDays]++
		}
		if prot >= 200 {
			m[scoring.MetricVeryHighProteinDays]++
		}
		if cal > 0 && cal < 1500 {
			m[scoring.MetricLowCalorieDays]++
		}
		if cal > 0 && carbs < 50 {
			m[scoring.MetricLowCarbDays]++
		}
		if cal > 0 && cal < dailyCalories*0.9 {
			m[scoring.MetricDeficitDays]++
		}
	}

	return m
}
