package meals

import "time"

type Meal struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"-"`
	Name        string    `json:"name"`
	MealType    string    `json:"mealType"` // breakfast, lunch, dinner, snack
	Calories    int       `json:"calories"`
	Protein     int       `json:"protein"`
	Carbs       int       `json:"carbs"`
	Fat         int       `json:"fat"`
	AIGenerated bool      `json:"aiGenerated"`
	Liked       *bool     `json:"liked,omitempty"`
	EatenOn     string    `json:"eatenOn"` // YYYY-MM-DD
	CreatedAt   time.Time `json:"createdAt"`
}

// Counters feeds the badge metric snapshot.
type Counters struct {
	TotalMeals    int
	AIMeals       int
	LikedMeals    int
	DislikedMeals int
}
