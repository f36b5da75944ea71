package trackers

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// AddGlass bumps the day's water counter, creating the row on first use.
func (r *Repo) AddGlass(ctx context.Context, userID int64, day string) (int, error) {
	var glasses int
	err := r.db.QueryRow(
		ctx,
		`
			INSERT INTO hydration_days (user_id, day, glasses) VALUES ($1, $2, 1)
			ON CONFLICT (user_id, day) DO UPDATE SET glasses = hydration_days.glasses + 1
			RETURNING glasses;`,
		userID, day,
	).Scan(&glasses)
	if err != nil {
		return 0, err
	}
	return glasses, nil
}

// RemoveGlass decrements the counter, never below zero.
func (r *Repo) RemoveGlass(ctx context.Context, userID int64, day string) (int, error) {
	var glasses int
	err := r.db.QueryRow(
		ctx,
		`
			UPDATE hydration_days SET glasses = GREATEST(glasses - 1, 0)
			WHERE user_id = $1 AND day = $2
			RETURNING glasses;`,
		userID, day,
	).Scan(&glasses)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return glasses, nil
}

func (r *Repo) Hydration(ctx context.Context, userID int64, day string) (int, error) {
	var glasses int
	err := r.db.QueryRow(
		ctx,
		`SELECT glasses FROM hydration_days WHERE user_id = $1 AND day = $2;`,
		userID, day,
	).Scan(&glasses)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return glasses, nil
}

// HydrationDaysInRange counts the days within [from, to] that hit the
// glasses target, for the weekly hydration challenge.
func (r *Repo) HydrationDaysInRange(ctx context.Context, userID int64, week WeekRange, targetGlasses int) (int, error) {
	var days int
	err := r.db.QueryRow(
		ctx,
		`
			SELECT COUNT(*) FROM hydration_days
			WHERE user_id = $1 AND day >= $2::date AND day < $3::date AND glasses >= $4;`,
		userID, week.From, week.To, targetGlasses,
	).Scan(&days)
	if err != nil {
		return 0, err
	}
	return days, nil
}

func (r *Repo) SetSteps(ctx context.Context, userID int64, day string, steps int) error {
	_, err := r.db.Exec(
		ctx,
		`
			INSERT INTO steps_days (user_id, day, steps) VALUES ($1, $2, $3)
			ON CONFLICT (user_id, day) DO UPDATE SET steps = EXCLUDED.steps;`,
		userID, day, steps,
	)
	return err
}

func (r *Repo) Steps(ctx context.Context, userID int64, day string) (int, error) {
	var steps int
	err := r.db.QueryRow(
		ctx,
		`SELECT steps FROM steps_days WHERE user_id = $1 AND day = $2;`,
		userID, day,
	).Scan(&steps)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return steps, nil
}

// StepsInRange sums steps within [from, to), for the weekly steps challenge.
func (r *Repo) StepsInRange(ctx context.Context, userID int64, week WeekRange) (int, error) {
	var steps int
	err := r.db.QueryRow(
		ctx,
		`
			SELECT COALESCE(SUM(steps), 0) FROM steps_days
			WHERE user_id = $1 AND day >= $2::date AND day < $3::date;`,
		userID, week.From, week.To,
	).Scan(&steps)
	if err != nil {
		return 0, err
	}
	return steps, nil
}

func (r *Repo) AddSleep(ctx context.Context, userID int64, sleepLog *SleepLog) (*SleepLog, error) {
	var id int64
	err := r.db.QueryRow(
		ctx,
		`
			INSERT INTO sleep_logs (user_id, day, hours, quality) VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, day) DO UPDATE SET hours = EXCLUDED.hours, quality = EXCLUDED.quality
			RETURNING id;`,
		userID, sleepLog.Day, sleepLog.Hours, sleepLog.Quality,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	sleepLog.ID = id
	return sleepLog, nil
}

func (r *Repo) SleepHistory(ctx context.Context, userID int64, limit int) ([]SleepLog, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, day, hours, COALESCE(quality, '')
			FROM sleep_logs
			WHERE user_id = $1
			ORDER BY day DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sleepLogs []SleepLog
	for rows.Next() {
		var s SleepLog
		var day time.Time
		if err := rows.Scan(&s.ID, &day, &s.Hours, &s.Quality); err != nil {
			return nil, err
		}
		s.Day = day.Format("2006-01-02")
		sleepLogs = append(sleepLogs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sleepLogs, nil
}
