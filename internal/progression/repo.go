package progression

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WaekyTV/fitquest-backend/internal/scoring"
)

var ErrBadgeAlreadyClaimed = errors.New("badge already claimed")

// XPEvent is one credited XP entry, the progression audit trail.
type XPEvent struct {
	Action     string    `json:"action"`
	BaseXP     int       `json:"baseXp"`
	EarnedXP   int       `json:"earnedXp"`
	Multiplier float64   `json:"multiplier"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) TotalXP(ctx context.Context, userID int64) (int, error) {
	var totalXP int
	err := r.db.QueryRow(
		ctx,
		`SELECT COALESCE((SELECT total_xp FROM user_progress WHERE user_id = $1), 0);`,
		userID,
	).Scan(&totalXP)
	if err != nil {
		return 0, err
	}
	return totalXP, nil
}

// AddXP records the event and credits the earned XP in one transaction,
// returning the new total.
func (r *Repo) AddXP(ctx context.Context, userID int64, event XPEvent) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(
		ctx,
		`INSERT INTO xp_events
				(user_id, action, base_xp, earned_xp, multiplier, created_at)
				VALUES ($1, $2, $3, $4, $5, $6);`,
		userID, event.Action, event.BaseXP, event.EarnedXP, event.Multiplier, event.CreatedAt,
	); err != nil {
		return 0, fmt.Errorf("insert xp event: %w", err)
	}

	var newTotal int
	if err := tx.QueryRow(
		ctx,
		`
			INSERT INTO user_progress (user_id, total_xp) VALUES ($1, $2)
			ON CONFLICT (user_id) DO UPDATE SET total_xp = user_progress.total_xp + EXCLUDED.total_xp
			RETURNING total_xp;`,
		userID, event.EarnedXP,
	).Scan(&newTotal); err != nil {
		return 0, fmt.Errorf("update total xp: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}

	return newTotal, nil
}

func (r *Repo) XPEvents(ctx context.Context, userID int64, limit int) ([]XPEvent, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT action, base_xp, earned_xp, multiplier, created_at
			FROM xp_events
			WHERE user_id = $1
			ORDER BY created_at DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []XPEvent
	for rows.Next() {
		var e XPEvent
		if err := rows.Scan(&e.Action, &e.BaseXP, &e.EarnedXP, &e.Multiplier, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *Repo) ClaimedBadges(ctx context.Context, userID int64, section string) (scoring.ClaimedSet, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT badge_id FROM claimed_badges WHERE user_id = $1 AND section = $2;`,
		userID, section,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	claimed := scoring.ClaimedSet{}
	for rows.Next() {
		var badgeID string
		if err := rows.Scan(&badgeID); err != nil {
			return nil, err
		}
		claimed[badgeID] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return claimed, nil
}

// ClaimBadge inserts the claim conditionally: a concurrent double claim
// loses the race on the primary key instead of double-awarding XP.
func (r *Repo) ClaimBadge(ctx context.Context, userID int64, section, badgeID string, claimedAt time.Time) error {
	tag, err := r.db.Exec(
		ctx,
		`
			INSERT INTO claimed_badges (user_id, section, badge_id, claimed_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, section, badge_id) DO NOTHING;`,
		userID, section, badgeID, claimedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBadgeAlreadyClaimed
	}
	return nil
}

// ProgressCounts returns the weight-entry and personal-record counters
// for the trophy metric snapshot. Records are counted off the XP audit
// trail instead of a dedicated table.
func (r *Repo) ProgressCounts(ctx context.Context, userID int64) (weightEntries, records int, err error) {
	err = r.db.QueryRow(
		ctx,
		`
			SELECT
				(SELECT COUNT(*) FROM weight_entries WHERE user_id = $1),
				(SELECT COUNT(*) FROM xp_events WHERE user_id = $1 AND action = 'personal_record');`,
		userID,
	).Scan(&weightEntries, &records)
	if err != nil {
		return 0, 0, err
	}
	return weightEntries, records, nil
}
