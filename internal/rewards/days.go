package rewards

import (
	"sort"
	"time"
)

// LongestDayStreak returns the length of the longest run of
// consecutive calendar days (local time) covered by the given
// timestamps. Zero timestamps are ignored.
func LongestDayStreak(stamps []time.Time) int {
	days := make(map[time.Time]bool, len(stamps))
	for _, ts := range stamps {
		if ts.IsZero() {
			continue
		}
		// Normalize to a UTC midnight keyed by the local date so the
		// consecutive check is always an exact 24h step.
		y, m, d := ts.Local().Date()
		days[time.Date(y, m, d, 0, 0, 0, 0, time.UTC)] = true
	}
	if len(days) == 0 {
		return 0
	}

	sorted := make([]time.Time, 0, len(days))
	for day := range days {
		sorted = append(sorted, day)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	best, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]) == 24*time.Hour {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 1
		}
	}
	return best
}
