package challenges

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WaekyTV/fitquest-backend/internal/scoring"
	"github.com/WaekyTV/fitquest-backend/pkg"
)

var ErrChallengeNotFound = errors.New("challenge not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Add stores a freshly started challenge. One template per user per
// week, enforced by the unique key on (user_id, template_id, week_start).
func (r *Repo) Add(ctx context.Context, userID int64, c scoring.Challenge) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO challenges
				(id, user_id, template_id, type, name, description, metric, target,
				 progress, xp_reward, status, claimed, week_start, started_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);`,
		c.ID, userID, c.TemplateID, c.Type, c.Name, c.Description, c.Metric, c.Target,
		c.Progress, c.XPReward, string(c.Status), c.Claimed, c.WeekStart, c.StartedAt,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return scoring.ErrAlreadyActiveOrCompleted
		}
		return err
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, userID int64, challengeID string) (scoring.Challenge, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, template_id, type, name, description, metric, target,
				progress, xp_reward, status, claimed, week_start, started_at, completed_at
			FROM challenges
			WHERE user_id = $1 AND id = $2;`,
		userID, challengeID,
	)
	if err != nil {
		return scoring.Challenge{}, err
	}
	defer rows.Close()

	weekChallenges, err := r.rows2challenges(rows)
	if err != nil {
		return scoring.Challenge{}, err
	}
	if len(weekChallenges) != 1 {
		return scoring.Challenge{}, ErrChallengeNotFound
	}
	return weekChallenges[0], nil
}

func (r *Repo) ListWeek(ctx context.Context, userID int64, weekStart time.Time) ([]scoring.Challenge, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, template_id, type, name, description, metric, target,
				progress, xp_reward, status, claimed, week_start, started_at, completed_at
			FROM challenges
			WHERE user_id = $1 AND week_start = $2
			ORDER BY started_at;`,
		userID, weekStart,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.rows2challenges(rows)
}

// Update persists recomputed progress and state transitions.
func (r *Repo) Update(ctx context.Context, userID int64, c scoring.Challenge) error {
	tag, err := r.db.Exec(
		ctx,
		`
			UPDATE challenges
			SET progress = $1, status = $2, completed_at = $3
			WHERE user_id = $4 AND id = $5;`,
		c.Progress, string(c.Status), c.CompletedAt, userID, c.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrChallengeNotFound
	}
	return nil
}

// MarkClaimed flips the claimed flag conditionally so a concurrent
// double claim loses the race instead of double-awarding XP.
func (r *Repo) MarkClaimed(ctx context.Context, userID int64, challengeID string) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE challenges SET claimed = TRUE WHERE user_id = $1 AND id = $2 AND claimed = FALSE;`,
		userID, challengeID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return scoring.ErrChallengeAlreadyClaimed
	}
	return nil
}

// Unclaim reverts the claimed flag after a failed XP credit, so the
// reward stays claimable.
func (r *Repo) Unclaim(ctx context.Context, userID int64, challengeID string) error {
	_, err := r.db.Exec(
		ctx,
		`UPDATE challenges SET claimed = FALSE WHERE user_id = $1 AND id = $2 AND claimed = TRUE;`,
		userID, challengeID,
	)
	return err
}

func (r *Repo) rows2challenges(rows pgx.Rows) ([]scoring.Challenge, error) {
	var weekChallenges []scoring.Challenge
	for rows.Next() {
		var c scoring.Challenge
		var status string
		if err := rows.Scan(
			&c.ID, &c.TemplateID, &c.Type, &c.Name, &c.Description, &c.Metric, &c.Target,
			&c.Progress, &c.XPReward, &status, &c.Claimed, &c.WeekStart, &c.StartedAt, &c.CompletedAt,
		); err != nil {
			return nil, err
		}
		c.Status = scoring.ChallengeStatus(status)
		weekChallenges = append(weekChallenges, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return weekChallenges, nil
}
