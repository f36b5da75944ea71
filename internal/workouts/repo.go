package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrWorkoutNotFound = errors.New("workout not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workout *Workout) (*Workout, error) {
	rows, err := r.db.Query(
		ctx,
		`INSERT INTO workouts
				(user_id, type, name, duration_minutes, calories, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		workout.UserID, workout.Type, workout.Name,
		workout.DurationMinutes, workout.Calories, workout.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}
	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int64
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	workout.ID = id
	return workout, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int64) (*Workout, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, type, name, duration_minutes, calories, created_at
			FROM workouts
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, err
	}
	if len(workouts) != 1 {
		return nil, ErrWorkoutNotFound
	}
	return &workouts[0], nil
}

func (r *Repo) List(ctx context.Context, params ListParams) (_ []Workout, total int, err error) {
	total, err = r.Count(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("get workouts count: %w", err)
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size

	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, user_id, type, name, duration_minutes, calories, created_at
			FROM workouts
			WHERE user_id = $1 AND ($2 = '' OR type = $2)
			ORDER BY created_at DESC
			LIMIT $3 OFFSET $4;`,
		params.UserID, params.Type, limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	workouts, err := r.rows2workouts(rows)
	if err != nil {
		return nil, 0, err
	}

	return workouts, total, nil
}

func (r *Repo) Count(ctx context.Context, params ListParams) (int, error) {
	var count int
	err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workouts WHERE user_id = $1 AND ($2 = '' OR type = $2);`,
		params.UserID, params.Type,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountInRange counts workouts logged within [from, to), for the
// weekly workout challenges.
func (r *Repo) CountInRange(ctx context.Context, userID int64, from, to time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM workouts WHERE user_id = $1 AND created_at >= $2 AND created_at < $3;`,
		userID, from, to,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workouts WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// ActivityDates returns the distinct days the user worked out on,
// feeding the streak calculation.
func (r *Repo) ActivityDates(ctx context.Context, userID int64) ([]time.Time, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT created_at::date FROM workouts WHERE user_id = $1;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return dates, nil
}

func (r *Repo) Stats(ctx context.Context, userID int64) (Stats, error) {
	var stats Stats
	err := r.db.QueryRow(
		ctx,
		`
			SELECT
				COUNT(*),
				COALESCE(SUM(duration_minutes), 0),
				COALESCE(SUM(calories), 0)
			FROM workouts
			WHERE user_id = $1;`,
		userID,
	).Scan(&stats.TotalWorkouts, &stats.TotalMinutes, &stats.TotalCalories)
	if err != nil {
		return Stats{}, err
	}
	return stats, nil
}

func (r *Repo) rows2workouts(rows pgx.Rows) ([]Workout, error) {
	var workouts []Workout
	for rows.Next() {
		var w Workout
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Type, &w.Name,
			&w.DurationMinutes, &w.Calories, &w.CreatedAt,
		); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return workouts, nil
}
