package scoring

import (
	"errors"
	"time"
)

var (
	ErrNotCompleted             = errors.New("challenge not completed")
	ErrChallengeAlreadyClaimed  = errors.New("challenge reward already claimed")
	ErrAlreadyActiveOrCompleted = errors.New("challenge already active or completed this week")
	ErrUnknownChallengeTemplate = errors.New("unknown challenge template")
)

type ChallengeStatus string

const (
	ChallengeActive    ChallengeStatus = "active"
	ChallengeCompleted ChallengeStatus = "completed"
)

type Challenge struct {
	ID          string          `json:"challengeId"`
	TemplateID  string          `json:"templateId"`
	Type        string          `json:"type"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Metric      string          `json:"metric"`
	Target      int             `json:"target"`
	Progress    int             `json:"progress"`
	XPReward    int             `json:"xpReward"`
	Status      ChallengeStatus `json:"status"`
	Claimed     bool            `json:"claimed"`
	WeekStart   time.Time       `json:"weekStart"`
	StartedAt   time.Time       `json:"startedAt"`
	CompletedAt *time.Time      `json:"completedAt,omitempty"`
}

// WeekStart returns the Monday 00:00 UTC anchor of the week containing t.
func WeekStart(t time.Time) time.Time {
	t = t.UTC()
	// Monday = 0 ... Sunday = 6
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -daysSinceMonday).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ApplyProgress sets the challenge progress and performs the one-way
// active → completed transition once the target is reached. Returns the
// updated challenge and whether it just completed.
func ApplyProgress(c Challenge, progress int, now time.Time) (Challenge, bool) {
	c.Progress = progress
	if c.Status == ChallengeActive && c.Progress >= c.Target {
		c.Status = ChallengeCompleted
		completedAt := now.UTC()
		c.CompletedAt = &completedAt
		return c, true
	}
	return c, false
}

// ClaimChallenge validates a reward claim and returns the XP to credit.
// Completed+claimed is terminal; claiming twice fails.
func ClaimChallenge(c Challenge) (int, error) {
	if c.Claimed {
		return 0, ErrChallengeAlreadyClaimed
	}
	if c.Progress < c.Target {
		return 0, ErrNotCompleted
	}
	return c.XPReward, nil
}
