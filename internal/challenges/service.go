package challenges

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/WaekyTV/fitquest-backend/internal/profile"
	"github.com/WaekyTV/fitquest-backend/internal/progression"
	"github.com/WaekyTV/fitquest-backend/internal/scoring"
	"github.com/WaekyTV/fitquest-backend/internal/telemetry/metrics"
	"github.com/WaekyTV/fitquest-backend/internal/trackers"
	"github.com/WaekyTV/fitquest-backend/pkg"
)

var ErrUnknownMetric = errors.New("unknown challenge metric")

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=challenges

type challengesRepo interface {
	Add(ctx context.Context, userID int64, c scoring.Challenge) error
	Get(ctx context.Context, userID int64, challengeID string) (scoring.Challenge, error)
	ListWeek(ctx context.Context, userID int64, weekStart time.Time) ([]scoring.Challenge, error)
	Update(ctx context.Context, userID int64, c scoring.Challenge) error
	MarkClaimed(ctx context.Context, userID int64, challengeID string) error
	Unclaim(ctx context.Context, userID int64, challengeID string) error
}

type workoutsSource interface {
	CountInRange(ctx context.Context, userID int64, from, to time.Time) (int, error)
}

type mealsSource interface {
	CountInRange(ctx context.Context, userID int64, fromDay, toDay string) (int, error)
	DayTotalsInRange(ctx context.Context, userID int64, fromDay, toDay string) ([]scoring.DailyTotals, error)
}

type trackersSource interface {
	HydrationDaysInRange(ctx context.Context, userID int64, week trackers.WeekRange, targetGlasses int) (int, error)
	StepsInRange(ctx context.Context, userID int64, week trackers.WeekRange) (int, error)
}

type profileSource interface {
	Get(ctx context.Context, userID int64) (*profile.Profile, error)
}

type xpCrediter interface {
	AddXP(ctx context.Context, userID int64, event progression.XPEvent) (int, error)
}

type Service struct {
	repo     challengesRepo
	workouts workoutsSource
	meals    mealsSource
	trackers trackersSource
	profiles profileSource
	xp       xpCrediter
	catalog  *scoring.Catalog
	metrics  *metrics.Manager

	// replaced in tests
	NewChallengeIDFunc func() (string, error)
}

func NewService(
	repo challengesRepo,
	workoutsSource workoutsSource,
	mealsSource mealsSource,
	trackersSource trackersSource,
	profiles profileSource,
	xp xpCrediter,
	catalog *scoring.Catalog,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:     repo,
		workouts: workoutsSource,
		meals:    mealsSource,
		trackers: trackersSource,
		profiles: profiles,
		xp:       xp,
		catalog:  catalog,
		metrics:  metricsManager,
		NewChallengeIDFunc: func() (string, error) {
			return pkg.GenerateRandomString(20)
		},
	}
}

// Start instantiates a catalog template for the current week. A second
// start of the same template within the week fails with
// scoring.ErrAlreadyActiveOrCompleted.
func (s *Service) Start(ctx context.Context, userID int64, templateID string, now time.Time) (scoring.Challenge, error) {
	template, err := s.catalog.ChallengeTemplate(templateID)
	if err != nil {
		return scoring.Challenge{}, err
	}

	challengeID, err := s.NewChallengeIDFunc()
	if err != nil {
		return scoring.Challenge{}, fmt.Errorf("generate challenge id: %w", err)
	}

	c := scoring.Challenge{
		ID:          challengeID,
		TemplateID:  template.TemplateID,
		Type:        template.Type,
		Name:        template.Name,
		Description: template.Description,
		Metric:      template.Metric,
		Target:      template.Target,
		XPReward:    template.XPReward,
		Status:      scoring.ChallengeActive,
		WeekStart:   scoring.WeekStart(now),
		StartedAt:   now.UTC(),
	}

	if err := s.repo.Add(ctx, userID, c); err != nil {
		return scoring.Challenge{}, err
	}

	// activity logged earlier in the week counts too
	refreshed, err := s.refresh(ctx, userID, c, now)
	if err != nil {
		return scoring.Challenge{}, err
	}
	return refreshed, nil
}

// Current returns this week's challenges with freshly computed
// progress. Completions detected here are persisted on the spot.
func (s *Service) Current(ctx context.Context, userID int64, now time.Time) ([]scoring.Challenge, error) {
	weekChallenges, err := s.repo.ListWeek(ctx, userID, scoring.WeekStart(now))
	if err != nil {
		return nil, fmt.Errorf("list week challenges: %w", err)
	}

	refreshed := make([]scoring.Challenge, 0, len(weekChallenges))
	for _, c := range weekChallenges {
		rc, err := s.refresh(ctx, userID, c, now)
		if err != nil {
			return nil, err
		}
		refreshed = append(refreshed, rc)
	}
	return refreshed, nil
}

// Claim hands out the XP reward of a completed challenge. The claimed
// flag flip is conditional in the repo, so of two concurrent claims
// exactly one credits XP.
func (s *Service) Claim(ctx context.Context, userID int64, challengeID string, now time.Time) (scoring.AwardResult, error) {
	c, err := s.repo.Get(ctx, userID, challengeID)
	if err != nil {
		return scoring.AwardResult{}, err
	}

	// progress may be stale if the client never refreshed
	c, err = s.refresh(ctx, userID, c, now)
	if err != nil {
		return scoring.AwardResult{}, err
	}

	xpReward, err := scoring.ClaimChallenge(c)
	if err != nil {
		return scoring.AwardResult{}, err
	}

	if err := s.repo.MarkClaimed(ctx, userID, challengeID); err != nil {
		return scoring.AwardResult{}, err
	}

	newTotal, err := s.xp.AddXP(ctx, userID, progression.XPEvent{
		Action:     "challenge:" + c.TemplateID,
		BaseXP:     xpReward,
		EarnedXP:   xpReward,
		Multiplier: 1.0,
		CreatedAt:  now,
	})
	if err != nil {
		// the flag is already flipped and blocks any other claim, so
		// reverting it keeps the reward claimable instead of lost
		if unclaimErr := s.repo.Unclaim(ctx, userID, challengeID); unclaimErr != nil {
			log.Errorf("revert claim [%d] [%s]: %s", userID, challengeID, unclaimErr)
		}
		return scoring.AwardResult{}, fmt.Errorf("credit xp: %w", err)
	}

	levelAfter := scoring.ComputeLevel(newTotal).Level
	levelBefore := scoring.ComputeLevel(newTotal - xpReward).Level
	return scoring.AwardResult{
		Action:      "challenge:" + c.TemplateID,
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

// refresh recomputes the challenge progress from the week's logged
// activity and persists any change.
func (s *Service) refresh(ctx context.Context, userID int64, c scoring.Challenge, now time.Time) (scoring.Challenge, error) {
	progress, err := s.metricProgress(ctx, userID, c)
	if err != nil {
		return scoring.Challenge{}, fmt.Errorf("compute %q progress: %w", c.Metric, err)
	}

	updated, justCompleted := scoring.ApplyProgress(c, progress, now)
	if updated.Progress == c.Progress && updated.Status == c.Status {
		return updated, nil
	}

	if err := s.repo.Update(ctx, userID, updated); err != nil {
		return scoring.Challenge{}, fmt.Errorf("update challenge: %w", err)
	}
	if justCompleted {
		s.metrics.CounterChallengeCompleted.Inc()
	}
	return updated, nil
}

func (s *Service) metricProgress(ctx context.Context, userID int64, c scoring.Challenge) (int, error) {
	week := trackers.WeekRange{
		From: c.WeekStart,
		To:   c.WeekStart.AddDate(0, 0, 7),
	}
	fromDay := week.From.Format("2006-01-02")
	toDay := week.To.Format("2006-01-02")

	switch c.Metric {
	case "workouts":
		return s.workouts.CountInRange(ctx, userID, week.From, week.To)
	case "meals":
		return s.meals.CountInRange(ctx, userID, fromDay, toDay)
	case "days_protein_target":
		return s.proteinTargetDays(ctx, userID, fromDay, toDay)
	case "hydration_days":
		return s.trackers.HydrationDaysInRange(ctx, userID, week, trackers.DefaultHydrationTarget)
	case "steps":
		return s.trackers.StepsInRange(ctx, userID, week)
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownMetric, c.Metric)
	}
}

// proteinTargetDays counts week days at or above 90% of the protein
// target. Without a usable profile no day qualifies.
func (s *Service) proteinTargetDays(ctx context.Context, userID int64, fromDay, toDay string) (int, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrProfileNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("get profile: %w", err)
	}

	targets, err := scoring.ComputeNutritionTargets(p.Metrics())
	if err != nil {
		return 0, nil
	}

	dayTotals, err := s.meals.DayTotalsInRange(ctx, userID, fromDay, toDay)
	if err != nil {
		return 0, fmt.Errorf("get day totals: %w", err)
	}

	var days int
	for _, totals := range dayTotals {
		if float64(totals.Protein) >= float64(targets.TargetProtein)*0.9 {
			days++
		}
	}
	return days, nil
}
