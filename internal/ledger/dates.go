// Package ledger holds the engagement rules: streak bookkeeping, weekly and
// monthly focus buckets, the Focus Masters Score, titles and monthly winner
// selection. Everything here is pure computation over an
// entity.EngagementRecord; callers own persistence and the clock.
package ledger

import "time"

// StartOfDay truncates t to midnight in t's own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// WeekStart returns the most recent Sunday at midnight not after now.
func WeekStart(now time.Time) time.Time {
	day := StartOfDay(now)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func MonthStart(now time.Time) time.Time {
	y, m, _ := now.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
}

// PreviousMonth returns the calendar month before the one containing now.
func PreviousMonth(now time.Time) (time.Month, int) {
	prev := MonthStart(now).AddDate(0, -1, 0)
	return prev.Month(), prev.Year()
}

// daysBetween counts calendar days from a to b in b's location. Dates are
// compared by y/m/d so DST shifts don't produce 23h "days".
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	from := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	to := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
