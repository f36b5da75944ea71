package trackers

import "time"

// DefaultHydrationTarget is the daily glasses-of-water goal.
const DefaultHydrationTarget = 8

type HydrationDay struct {
	Day     string `json:"day"` // YYYY-MM-DD
	Glasses int    `json:"glasses"`
	Target  int    `json:"target"`
}

type StepsDay struct {
	Day   string `json:"day"`
	Steps int    `json:"steps"`
}

type SleepLog struct {
	ID      int64   `json:"id"`
	Day     string  `json:"day"`
	Hours   float64 `json:"hours"`
	Quality string  `json:"quality,omitempty"` // poor, fair, good, excellent
}

type WeekRange struct {
	From time.Time
	To   time.Time
}
