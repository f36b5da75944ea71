package progression

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/WaekyTV/fitquest-backend/internal/meals"
	"github.com/WaekyTV/fitquest-backend/internal/profile"
	"github.com/WaekyTV/fitquest-backend/internal/scoring"
	"github.com/WaekyTV/fitquest-backend/internal/telemetry/metrics"
	"github.com/WaekyTV/fitquest-backend/internal/workouts"
)

type serviceMocks struct {
	repo     *MockprogressionRepo
	workouts *MockworkoutsSource
	meals    *MockmealsSource
	profiles *MockprofileSource
}

func newTestService(t *testing.T) (*Service, serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mocks := serviceMocks{
		repo:     NewMockprogressionRepo(ctrl),
		workouts: NewMockworkoutsSource(ctrl),
		meals:    NewMockmealsSource(ctrl),
		profiles: NewMockprofileSource(ctrl),
	}
	service := NewService(
		mocks.repo, mocks.workouts, mocks.meals, mocks.profiles,
		scoring.DefaultCatalog(), metrics.NewTestManager(),
	)
	return service, mocks
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestService_Level(t *testing.T) {
	service, mocks := newTestService(t)

	mocks.repo.EXPECT().TotalXP(gomock.Any(), int64(1)).Return(750, nil)

	levelInfo, err := service.Level(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, levelInfo.Level)
}

func TestService_XPHistory_limitClamping(t *testing.T) {
	service, mocks := newTestService(t)

	events := []XPEvent{
		{Action: "workout_completed", BaseXP: 100, EarnedXP: 150, Multiplier: 1.5},
	}

	// zero limit falls back to the default
	mocks.repo.EXPECT().XPEvents(gomock.Any(), int64(1), defaultXPHistoryLimit).Return(events, nil)
	got, err := service.XPHistory(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, events, got)

	// oversized limit is capped
	mocks.repo.EXPECT().XPEvents(gomock.Any(), int64(1), maxXPHistoryLimit).Return(nil, nil)
	_, err = service.XPHistory(context.Background(), 1, 100000)
	require.NoError(t, err)

	mocks.repo.EXPECT().XPEvents(gomock.Any(), int64(1), 25).Return(events, nil)
	_, err = service.XPHistory(context.Background(), 1, 25)
	require.NoError(t, err)
}

func TestService_Streak(t *testing.T) {
	service, mocks := newTestService(t)

	now := day("2026-08-20")
	mocks.workouts.EXPECT().ActivityDates(gomock.Any(), int64(1)).Return([]time.Time{
		day("2026-08-18"), day("2026-08-19"), day("2026-08-20"),
	}, nil)

	streak, err := service.Streak(context.Background(), 1, now)
	require.NoError(t, err)
	assert.Equal(t, 3, streak)
}

func TestService_AwardXP(t *testing.T) {
	service, mocks := newTestService(t)
	now := time.Now()

	mocks.repo.EXPECT().TotalXP(gomock.Any(), int64(1)).Return(450, nil)
	// overweight + weight loss profile earns the 1.5 multiplier
	mocks.profiles.EXPECT().Get(gomock.Any(), int64(1)).Return(&profile.Profile{
		UserID: 1, WeightKg: 95, HeightCm: 180, Age: 30,
		Gender: scoring.GenderMale, Goal: scoring.GoalWeightLoss,
		ActivityLevel: scoring.ActivityModerate,
	}, nil)
	mocks.repo.EXPECT().
		AddXP(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, event XPEvent) (int, error) {
			assert.Equal(t, "workout_completed", event.Action)
			assert.Equal(t, 100, event.BaseXP)
			assert.Equal(t, 150, event.EarnedXP)
			assert.Equal(t, 1.5, event.Multiplier)
			return 600, nil
		})

	result, err := service.AwardXP(context.Background(), 1, "workout_completed", now)
	require.NoError(t, err)
	assert.Equal(t, 150, result.EarnedXP)
	assert.Equal(t, 600, result.NewTotal)
	assert.Equal(t, 1, result.LevelBefore)
	assert.Equal(t, 2, result.LevelAfter)
	assert.True(t, result.LeveledUp)
}

func TestService_AwardXP_noProfileNeutralMultiplier(t *testing.T) {
	service, mocks := newTestService(t)

	mocks.repo.EXPECT().TotalXP(gomock.Any(), int64(1)).Return(0, nil)
	mocks.profiles.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, profile.ErrProfileNotFound)
	mocks.repo.EXPECT().
		AddXP(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, event XPEvent) (int, error) {
			assert.Equal(t, 1.0, event.Multiplier)
			assert.Equal(t, 20, event.EarnedXP)
			return 20, nil
		})

	result, err := service.AwardXP(context.Background(), 1, "meal_logged", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 20, result.EarnedXP)
}

func TestService_AwardXP_unknownAction(t *testing.T) {
	service, mocks := newTestService(t)

	mocks.repo.EXPECT().TotalXP(gomock.Any(), int64(1)).Return(0, nil)
	mocks.profiles.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, profile.ErrProfileNotFound)

	_, err := service.AwardXP(context.Background(), 1, "hacking", time.Now())
	assert.ErrorIs(t, err, scoring.ErrInvalidAction)
}

func expectSnapshotSources(mocks serviceMocks, totalXP int) {
	mocks.workouts.EXPECT().Stats(gomock.Any(), int64(1)).Return(workouts.Stats{
		TotalWorkouts: 12, TotalMinutes: 540, TotalCalories: 4200,
	}, nil).AnyTimes()
	mocks.workouts.EXPECT().ActivityDates(gomock.Any(), int64(1)).Return([]time.Time{
		day("2026-08-19"), day("2026-08-20"),
	}, nil).AnyTimes()
	mocks.repo.EXPECT().TotalXP(gomock.Any(), int64(1)).Return(totalXP, nil).AnyTimes()
	mocks.repo.EXPECT().ProgressCounts(gomock.Any(), int64(1)).Return(3, 1, nil).AnyTimes()
	mocks.meals.EXPECT().Counters(gomock.Any(), int64(1)).Return(meals.Counters{
		TotalMeals: 25, AIMeals: 4, LikedMeals: 6, DislikedMeals: 2,
	}, nil).AnyTimes()
	mocks.meals.EXPECT().AllDayTotals(gomock.Any(), int64(1)).Return([]scoring.DailyTotals{
		{Date: "2026-08-19", Calories: 2000, Protein: 130, Carbs: 200, Fat: 60},
		{Date: "2026-08-20", Calories: 1400, Protein: 40, Carbs: 45, Fat: 50},
	}, nil).AnyTimes()
	mocks.profiles.EXPECT().Get(gomock.Any(), int64(1)).Return(&profile.Profile{
		UserID: 1, WeightKg: 80, HeightCm: 180, Age: 30,
		Gender: scoring.GenderMale, Goal: scoring.GoalMaintenance,
		ActivityLevel: scoring.ActivityModerate,
	}, nil).AnyTimes()
}

func TestService_Snapshot(t *testing.T) {
	service, mocks := newTestService(t)
	expectSnapshotSources(mocks, 1500)

	now := day("2026-08-20")
	snapshot, err := service.Snapshot(context.Background(), 1, now)
	require.NoError(t, err)

	// targets for this profile: 2759 kcal, 128 g protein
	assert.Equal(t, 12, snapshot[scoring.MetricWorkouts])
	assert.Equal(t, 2, snapshot[scoring.MetricStreak])
	assert.Equal(t, 3, snapshot[scoring.MetricLevel])
	assert.Equal(t, 1500, snapshot[scoring.MetricTotalXP])
	assert.Equal(t, 3, snapshot[scoring.MetricWeightEntries])
	assert.Equal(t, 1, snapshot[scoring.MetricRecords])
	assert.Equal(t, 25, snapshot[scoring.MetricTotalMeals])
	assert.Equal(t, 4, snapshot[scoring.MetricAIMeals])
	assert.Equal(t, 2, snapshot[scoring.MetricDaysTracked])
	// day one: 2000 kcal is 27.5% off target, 130 g protein covers the goal
	assert.Equal(t, 0, snapshot[scoring.MetricDaysCalorieTarget])
	assert.Equal(t, 1, snapshot[scoring.MetricDaysProteinTarget])
	assert.Equal(t, 0, snapshot[scoring.MetricDaysBalanced])
	assert.Equal(t, 1, snapshot[scoring.MetricScoreDays80])
	assert.Equal(t, 1, snapshot[scoring.MetricLowCalorieDays])
	assert.Equal(t, 1, snapshot[scoring.MetricLowCarbDays])
	assert.Equal(t, 2, snapshot[scoring.MetricDeficitDays])
}

func TestNutritionDayMetrics(t *testing.T) {
	targets := scoring.NutritionTargets{DailyCalories: 2000, TargetProtein: 100}

	m := nutritionDayMetrics([]scoring.DailyTotals{
		// on target both ways
		{Calories: 2000, Protein: 100, Carbs: 200, Fat: 60},
		// calories fine, protein short
		{Calories: 1900, Protein: 30, Carbs: 250, Fat: 55},
		// protein fine, calories way off
		{Calories: 900, Protein: 160, Carbs: 40, Fat: 30},
	}, targets)

	assert.Equal(t, 3, m[scoring.MetricDaysTracked])
	assert.Equal(t, 2, m[scoring.MetricDaysCalorieTarget])
	assert.Equal(t, 2, m[scoring.MetricDaysProteinTarget])
	assert.Equal(t, 1, m[scoring.MetricDaysBalanced])
	assert.Equal(t, 1, m[scoring.MetricHighProteinDays])
	assert.Equal(t, 0, m[scoring.MetricVeryHighProteinDays])
	assert.Equal(t, 1, m[scoring.MetricLowCalorieDays])
	assert.Equal(t, 1, m[scoring.MetricLowCarbDays])
	assert.Equal(t, 1, m[scoring.MetricDeficitDays])
	// day scores: 100, 62.5, 72.5
	assert.Equal(t, 3, m[scoring.MetricScoreDays50])
	assert.Equal(t, 2, m[scoring.MetricScoreDays70])
	assert.Equal(t, 1, m[scoring.MetricScoreDays80])
}

func TestNutritionDayMetrics_empty(t *testing.T) {
	m := nutritionDayMetrics(nil, scoring.NutritionTargets{})
	assert.Equal(t, 0, m[scoring.MetricDaysTracked])
	assert.Equal(t, 0, m[scoring.MetricScoreDays50])
}

func TestService_Badges(t *testing.T) {
	service, mocks := newTestService(t)
	expectSnapshotSources(mocks, 1500)
	mocks.repo.EXPECT().
		ClaimedBadges(gomock.Any(), int64(1), SectionTrophies).
		Return(scoring.ClaimedSet{"workout_10": {}}, nil)

	badges, err := service.Badges(context.Background(), 1, SectionTrophies, day("2026-08-20"))
	require.NoError(t, err)
	require.Len(t, badges, 125)

	byID := map[string]scoring.BadgeProgress{}
	for _, b := range badges {
		byID[b.ID] = b
	}
	// 12 workouts: first trophy claimed, the 10s unlocked, 25 still locked
	assert.True(t, byID["workout_10"].IsClaimed)
	assert.False(t, byID["workout_10"].CanClaim)
	assert.True(t, byID["first_workout"].CanClaim)
	assert.False(t, byID["workout_25"].IsUnlocked)
}

func TestService_Badges_unknownSection(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Badges(context.Background(), 1, "pins", time.Now())
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestService_ClaimBadge(t *testing.T) {
	service, mocks := newTestService(t)
	expectSnapshotSources(mocks, 1500)
	mocks.repo.EXPECT().
		ClaimedBadges(gomock.Any(), int64(1), SectionTrophies).
		Return(scoring.ClaimedSet{}, nil)
	mocks.repo.EXPECT().
		ClaimBadge(gomock.Any(), int64(1), SectionTrophies, "workout_10", day("2026-08-20")).
		Return(nil)
	mocks.repo.EXPECT().
		AddXP(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, event XPEvent) (int, error) {
			assert.Equal(t, "badge:workout_10", event.Action)
			assert.Equal(t, 1.0, event.Multiplier)
			return 1500 + event.EarnedXP, nil
		})

	result, err := service.ClaimBadge(context.Background(), 1, SectionTrophies, "workout_10", day("2026-08-20"))
	require.NoError(t, err)
	assert.Greater(t, result.EarnedXP, 0)
	assert.Equal(t, 1500+result.EarnedXP, result.NewTotal)
}

func TestService_ClaimBadge_locked(t *testing.T) {
	service, mocks := newTestService(t)
	expectSnapshotSources(mocks, 1500)
	mocks.repo.EXPECT().
		ClaimedBadges(gomock.Any(), int64(1), SectionTrophies).
		Return(scoring.ClaimedSet{}, nil)

	_, err := service.ClaimBadge(context.Background(), 1, SectionTrophies, "workout_25", day("2026-08-20"))
	assert.ErrorIs(t, err, scoring.ErrNotYetUnlocked)
}

func TestService_ClaimBadge_concurrentDoubleClaim(t *testing.T) {
	service, mocks := newTestService(t)
	expectSnapshotSources(mocks, 1500)
	mocks.repo.EXPECT().
		ClaimedBadges(gomock.Any(), int64(1), SectionTrophies).
		Return(scoring.ClaimedSet{}, nil)
	// the conditional insert lost the race
	mocks.repo.EXPECT().
		ClaimBadge(gomock.Any(), int64(1), SectionTrophies, "workout_10", gomock.Any()).
		Return(ErrBadgeAlreadyClaimed)

	_, err := service.ClaimBadge(context.Background(), 1, SectionTrophies, "workout_10", day("2026-08-20"))
	assert.ErrorIs(t, err, ErrBadgeAlreadyClaimed)
}

func TestService_Summarize(t *testing.T) {
	service, mocks := newTestService(t)
	expectSnapshotSources(mocks, 750)

	summary, err := service.Summarize(context.Background(), 1, day("2026-08-20"))
	require.NoError(t, err)
	assert.Equal(t, 750, summary.TotalXP)
	assert.Equal(t, 2, summary.Level.Level)
	assert.Equal(t, 2, summary.Streak)
	assert.Equal(t, 12, summary.Workouts.TotalWorkouts)
	assert.Equal(t, 1.0, summary.Multiplier)
}

func TestService_Snapshot_sourceError(t *testing.T) {
	service, mocks := newTestService(t)

	boom := errors.New("db down")
	mocks.workouts.EXPECT().Stats(gomock.Any(), int64(1)).Return(workouts.Stats{}, boom)

	_, err := service.Snapshot(context.Background(), 1, time.Now())
	assert.ErrorIs(t, err, boom)
}
