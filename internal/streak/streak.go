// Package streak computes consecutive-calendar-day play streaks.
package streak

import "time"

// Current counts the consecutive calendar days with at least one session,
// walking back from the most recent play day. The streak is alive if the
// most recent play day is today or yesterday (in now's location); a gap of
// two or more days breaks it.
func Current(sessionTimes []time.Time, now time.Time) int {
	if len(sessionTimes) == 0 {
		return 0
	}

	loc := now.Location()
	days := make(map[time.Time]bool, len(sessionTimes))
	var mostRecent time.Time
	for _, ts := range sessionTimes {
		d := startOfDay(ts.In(loc))
		days[d] = true
		if d.After(mostRecent) {
			mostRecent = d
		}
	}

	today := startOfDay(now)
	if mostRecent.Before(today.AddDate(0, 0, -1)) {
		return 0
	}

	count := 0
	for d := mostRecent; days[d]; d = d.AddDate(0, 0, -1) {
		count++
	}
	return count
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
