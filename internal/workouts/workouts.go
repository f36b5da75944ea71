package workouts

import "time"

type Workout struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"-"`
	Type            string    `json:"type"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"durationMinutes"`
	Calories        int       `json:"calories"`
	CreatedAt       time.Time `json:"createdAt"`
}

type ListParams struct {
	UserID int64
	Type   string
	Page   int
	Size   int
}

type Stats struct {
	TotalWorkouts int `json:"totalWorkouts"`
	TotalMinutes  int `json:"totalMinutes"`
	TotalCalories int `json:"totalCalories"`
}
