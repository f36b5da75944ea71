package profile

import (
	"time"

	"github.com/WaekyTV/fitquest-backend/internal/scoring"
)

type Profile struct {
	UserID        int64                 `json:"userId"`
	Username      string                `json:"username"`
	WeightKg      float64               `json:"weight"`
	HeightCm      float64               `json:"height"`
	Age           int                   `json:"age"`
	Gender        scoring.Gender        `json:"gender"`
	Goal          scoring.Goal          `json:"goal"`
	ActivityLevel scoring.ActivityLevel `json:"activityLevel"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// Metrics converts the stored profile to the engine input.
func (p *Profile) Metrics() scoring.ProfileMetrics {
	return scoring.ProfileMetrics{
		WeightKg:      p.WeightKg,
		HeightCm:      p.HeightCm,
		Age:           p.Age,
		Gender:        p.Gender,
		Goal:          p.Goal,
		ActivityLevel: p.ActivityLevel,
	}
}

type WeightEntry struct {
	ID        int64     `json:"id"`
	WeightKg  float64   `json:"weight"`
	CreatedAt time.Time `json:"createdAt"`
}
