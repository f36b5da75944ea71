package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/WaekyTV/fitquest-backend/internal/auth"
	"github.com/WaekyTV/fitquest-backend/pkg"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrUsernameTaken   = errors.New("username taken")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddUser(ctx context.Context, username, passwordHash string) (int64, error) {
	rows, err := r.db.Query(
		ctx,
		`INSERT INTO users (username, password_hash, created_at) VALUES ($1, $2, $3) RETURNING id;`,
		username, passwordHash, time.Now(),
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return 0, ErrUsernameTaken
		}
		return 0, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return 0, err
	}
	if !rows.Next() {
		return 0, errors.New("unexpected error [no rows next]")
	}

	var id int64
	if err := rows.Scan(&id); err != nil {
		return 0, fmt.Errorf("rows scan: %w", err)
	}
	return id, nil
}

// UserByUsername backs the auth service login.
func (r *Repo) UserByUsername(ctx context.Context, username string) (auth.User, error) {
	var user auth.User
	err := r.db.QueryRow(
		ctx,
		`SELECT id, username, password_hash FROM users WHERE username = $1;`,
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.User{}, auth.ErrUserNotFound
		}
		return auth.User{}, err
	}
	return user, nil
}

func (r *Repo) Get(ctx context.Context, userID int64) (*Profile, error) {
	var p Profile
	err := r.db.QueryRow(
		ctx,
		`
			SELECT
				u.id, u.username,
				COALESCE(p.weight_kg, 0), COALESCE(p.height_cm, 0), COALESCE(p.age, 0),
				COALESCE(p.gender, ''), COALESCE(p.goal, ''), COALESCE(p.activity_level, ''),
				COALESCE(p.updated_at, u.created_at)
			FROM users u
			LEFT JOIN profiles p ON p.user_id = u.id
			WHERE u.id = $1;`,
		userID,
	).Scan(
		&p.UserID, &p.Username,
		&p.WeightKg, &p.HeightCm, &p.Age,
		&p.Gender, &p.Goal, &p.ActivityLevel,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *Repo) Update(ctx context.Context, p *Profile) error {
	_, err := r.db.Exec(
		ctx,
		`
			INSERT INTO profiles
				(user_id, weight_kg, height_cm, age, gender, goal, activity_level, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (user_id) DO UPDATE SET
				weight_kg = EXCLUDED.weight_kg,
				height_cm = EXCLUDED.height_cm,
				age = EXCLUDED.age,
				gender = EXCLUDED.gender,
				goal = EXCLUDED.goal,
				activity_level = EXCLUDED.activity_level,
				updated_at = EXCLUDED.updated_at;`,
		p.UserID, p.WeightKg, p.HeightCm, p.Age, p.Gender, p.Goal, p.ActivityLevel, time.Now(),
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return ErrProfileNotFound
		}
		return err
	}
	return nil
}

func (r *Repo) AddWeightEntry(ctx context.Context, userID int64, weightKg float64, createdAt time.Time) (*WeightEntry, error) {
	var id int64
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO weight_entries (user_id, weight_kg, created_at) VALUES ($1, $2, $3) RETURNING id;`,
		userID, weightKg, createdAt,
	).Scan(&id)
	if err != nil {
		return nil, err
	}
	return &WeightEntry{
		ID:        id,
		WeightKg:  weightKg,
		CreatedAt: createdAt,
	}, nil
}

func (r *Repo) WeightHistory(ctx context.Context, userID int64, limit int) ([]WeightEntry, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT id, weight_kg, created_at
			FROM weight_entries
			WHERE user_id = $1
			ORDER BY created_at DESC
			LIMIT $2;`,
		userID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []WeightEntry
	for rows.Next() {
		var e WeightEntry
		if err := rows.Scan(&e.ID, &e.WeightKg, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
