package analytics

import (
	"time"

	"github.com/solaceapp/solace-backend/internal/models"
)

// DateOnly truncates t to midnight UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Streak returns the consecutive-day logging streak ending today. The scan
// walks backward one calendar day at a time and stops at the first gap;
// with no sample for today the streak is 0 regardless of history. Samples
// need not be sorted, and several samples on one day count once.
func Streak(samples []models.MoodLog, today time.Time) int {
	if len(samples) == 0 {
		return 0
	}
	days := make(map[time.Time]struct{}, len(samples))
	for i := range samples {
		days[samples[i].Day()] = struct{}{}
	}
	streak := 0
	cursor := DateOnly(today)
	for {
		if _, ok := days[cursor]; !ok {
			return streak
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}
