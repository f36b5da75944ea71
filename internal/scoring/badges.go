package scoring

import "errors"

var (
	ErrUnknownBadge   = errors.New("unknown badge")
	ErrAlreadyClaimed = errors.New("badge already claimed")
	ErrNotYetUnlocked = errors.New("badge not yet unlocked")
)

// Metric names a counter the badge evaluator compares thresholds against.
// One-off achievements ("trained before 6am") are metrics too, carrying
// 0 or 1.
type Metric string

// Metrics is a snapshot of the user's counters, gathered by the caller.
// Missing entries count as 0.
type Metrics map[Metric]int

// ClaimedSet holds the badge ids the user has already claimed.
type ClaimedSet map[string]struct{}

func (s ClaimedSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

type BadgeDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Category    string `json:"category,omitempty"`
	Color       string `json:"color,omitempty"`
	Metric      Metric `json:"metricType"`
	Threshold   int    `json:"threshold"`
	XPReward    int    `json:"xpReward"`
}

type BadgeProgress struct {
	BadgeDefinition
	Progress   int  `json:"progress"`
	IsUnlocked bool `json:"isUnlocked"`
	IsClaimed  bool `json:"isClaimed"`
	CanClaim   bool `json:"canClaim"`
}

// EvaluateBadges recomputes the unlock state of every definition against
// the metric snapshot. Pure: identical inputs give identical output, and
// the claimed set is only read, never written.
func EvaluateBadges(defs []BadgeDefinition, metrics Metrics, claimed ClaimedSet) []BadgeProgress {
	out := make([]BadgeProgress, 0, len(defs))
	for _, def := range defs {
		progress := metrics[def.Metric]
		unlocked := progress >= def.Threshold
		isClaimed := claimed.Contains(def.ID)
		out = append(out, BadgeProgress{
			BadgeDefinition: def,
			Progress:        progress,
			IsUnlocked:      unlocked,
			IsClaimed:       isClaimed,
			CanClaim:        unlocked && !isClaimed,
		})
	}
	return out
}

// ClaimBadge validates a claim attempt and returns the XP to credit.
// The caller persists the claim and the XP; this function never mutates
// its inputs. The unlock check applies to every badge, streak and
// nutrition paths alike.
func ClaimBadge(badgeID string, defs []BadgeDefinition, metrics Metrics, claimed ClaimedSet) (int, error) {
	var def *BadgeDefinition
	for i := range defs {
		if defs[i].ID == badgeID {
			def = &defs[i]
			break
		}
	}
	if def == nil {
		return 0, ErrUnknownBadge
	}

	if claimed.Contains(badgeID) {
		return 0, ErrAlreadyClaimed
	}

	if metrics[def.Metric] < def.Threshold {
		return 0, ErrNotYetUnlocked
	}

	return def.XPReward, nil
}
