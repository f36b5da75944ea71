package scoring

import "time"

// DateKey formats a timestamp as the calendar day it falls on, in UTC.
// All streak math works on these keys so that timezones and times of day
// cannot split or merge days.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Streak returns the length of the consecutive-day run ending at the most
// recent activity day. The run only counts if that day is today or
// yesterday; a day not yet logged does not break an otherwise live streak,
// but anything older means the streak is over and 0 is returned.
func Streak(activityDays map[string]struct{}, today time.Time) int {
	if len(activityDays) == 0 {
		return 0
	}

	day := today.UTC().Truncate(24 * time.Hour)
	if _, ok := activityDays[DateKey(day)]; !ok {
		// tolerate "today not logged yet": fall back to yesterday
		day = day.AddDate(0, 0, -1)
		if _, ok := activityDays[DateKey(day)]; !ok {
			return 0
		}
	}

	streak := 0
	for {
		if _, ok := activityDays[DateKey(day)]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// DaySet collapses timestamps into a set of calendar days, deduplicating
// multiple activities on the same day.
func DaySet(times []time.Time) map[string]struct{} {
	days := make(map[string]struct{}, len(times))
	for _, t := range times {
		days[DateKey(t)] = struct{}{}
	}
	return days
}
