package meals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WaekyTV/fitquest-backend/internal/scoring"
)

var ErrMealNotFound = errors.New("meal not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, meal *Meal) (*Meal, error) {
	rows, err := r.db.Query(
		ctx,
		`INSERT INTO meals
				(user_id, name, meal_type, calories, protein, carbs, fat, ai_generated, eaten_on, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			RETURNING id;`,
		meal.UserID, meal.Name, meal.MealType,
		meal.Calories, meal.Protein, meal.Carbs, meal.Fat,
		meal.AIGenerated, meal.EatenOn, meal.CreatedAt,
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

	meal.ID = id
	return meal, nil
}

func (r *Repo) ListDay(ctx context.Context, userID int64, day string) ([]Meal, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, user_id, name, meal_type, calories, protein, carbs, fat,
				ai_generated, liked, eaten_on, created_at
			FROM meals
			WHERE user_id = $1 AND eaten_on = $2
			ORDER BY created_at;`,
		userID, day,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.rows2meals(rows)
}

func (r *Repo) Delete(ctx context.Context, userID, id int64) error {
	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM meals WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMealNotFound
	}
	return nil
}

// SetReaction marks a meal liked or disliked, feeding the taste badges.
func (r *Repo) SetReaction(ctx context.Context, userID, id int64, liked bool) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE meals SET liked = $1 WHERE id = $2 AND user_id = $3;`,
		liked, id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMealNotFound
	}
	return nil
}

// DayTotals aggregates one day of logged intake in SQL.
func (r *Repo) DayTotals(ctx context.Context, userID int64, day string) (scoring.DailyTotals, error) {
	totals := scoring.DailyTotals{Date: day}
	err := r.db.QueryRow(
		ctx,
		`
			SELECT
				COALESCE(SUM(calories), 0),
				COALESCE(SUM(protein), 0),
				COALESCE(SUM(carbs), 0),
				COALESCE(SUM(fat), 0)
			FROM meals
			WHERE user_id = $1 AND eaten_on = $2;`,
		userID, day,
	).Scan(&totals.Calories, &totals.Protein, &totals.Carbs, &totals.Fat)
	if err != nil {
		return scoring.DailyTotals{}, err
	}
	return totals, nil
}

// AllDayTotals returns the per-day aggregation for every tracked day,
// the input for nutrition badge metrics.
func (r *Repo) AllDayTotals(ctx context.Context, userID int64) ([]scoring.DailyTotals, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				eaten_on,
				COALESCE(SUM(calories), 0),
				COALESCE(SUM(protein), 0),
				COALESCE(SUM(carbs), 0),
				COALESCE(SUM(fat), 0)
			FROM meals
			WHERE user_id = $1
			GROUP BY eaten_on
			ORDER BY eaten_on;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allTotals []scoring.DailyTotals
	for rows.Next() {
		var day time.Time
		var totals scoring.DailyTotals
		if err := rows.Scan(&day, &totals.Calories, &totals.Protein, &totals.Carbs, &totals.Fat); err != nil {
			return nil, err
		}
		totals.Date = day.Format("2006-01-02")
		allTotals = append(allTotals, totals)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return allTotals, nil
}

// CountInRange counts meals eaten within [fromDay, toDay), for the
// weekly meal challenges. Days are YYYY-MM-DD.
func (r *Repo) CountInRange(ctx context.Context, userID int64, fromDay, toDay string) (int, error) {
	var count int
	err := r.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM meals WHERE user_id = $1 AND eaten_on >= $2::date AND eaten_on < $3::date;`,
		userID, fromDay, toDay,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// DayTotalsInRange is AllDayTotals narrowed to [fromDay, toDay).
func (r *Repo) DayTotalsInRange(ctx context.Context, userID int64, fromDay, toDay string) ([]scoring.DailyTotals, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				eaten_on,
				COALESCE(SUM(calories), 0),
				COALESCE(SUM(protein), 0),
				COALESCE(SUM(carbs), 0),
				COALESCE(SUM(fat), 0)
			FROM meals
			WHERE user_id = $1 AND eaten_on >= $2::date AND eaten_on < $3::date
			GROUP BY eaten_on
			ORDER BY eaten_on;`,
		userID, fromDay, toDay,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var allTotals []scoring.DailyTotals
	for rows.Next() {
		var day time.Time
		var totals scoring.DailyTotals
		if err := rows.Scan(&day, &totals.Calories, &totals.Protein, &totals.Carbs, &totals.Fat); err != nil {
			return nil, err
		}
		totals.Date = day.Format("2006-01-02")
		allTotals = append(allTotals, totals)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return allTotals, nil
}

func (r *Repo) Counters(ctx context.Context, userID int64) (Counters, error) {
	var counters Counters
	err := r.db.QueryRow(
		ctx,
		`
			SELECT
				COUNT(*),
				COUNT(*) FILTER (WHERE ai_generated),
				COUNT(*) FILTER (WHERE liked IS TRUE),
				COUNT(*) FILTER (WHERE liked IS FALSE)
			FROM meals
			WHERE user_id = $1;`,
		userID,
	).Scan(&counters.TotalMeals, &counters.AIMeals, &counters.LikedMeals, &counters.DislikedMeals)
	if err != nil {
		return Counters{}, err
	}
	return counters, nil
}

func (r *Repo) rows2meals(rows pgx.Rows) ([]Meal, error) {
	var meals []Meal
	for rows.Next() {
		var m Meal
		var eatenOn time.Time
		if err := rows.Scan(
			&m.ID, &m.UserID, &m.Name, &m.MealType,
			&m.Calories, &m.Protein, &m.Carbs, &m.Fat,
			&m.AIGenerated, &m.Liked, &eatenOn, &m.CreatedAt,
		); err != nil {
			return nil, err
		}
		m.EatenOn = eatenOn.Format("2006-01-02")
		meals = append(meals, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return meals, nil
}
