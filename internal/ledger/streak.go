package ledger

import (
	"time"

	errorvalues "github.com/limbo/adhyaya/internal/error_values"
	"github.com/limbo/adhyaya/pkg/entity"
)

// RecordActivity registers qualifying activity on activityDate's calendar day.
// Repeated calls for the same day change nothing. Activity dated before the
// last active day returns ErrBackdatedActivity and leaves rec untouched.
func RecordActivity(rec *entity.EngagementRecord, activityDate time.Time) error {
	day := StartOfDay(activityDate)
	if rec.LastActiveDate == nil {
		rec.CurrentStreak = 1
		raiseMaxStreak(rec)
		rec.LastActiveDate = &day
		return nil
	}
	diffDays := daysBetween(*rec.LastActiveDate, day)
	switch {
	case diffDays < 0:
		return errorvalues.ErrBackdatedActivity
	case diffDays == 0:
	case diffDays == 1:
		rec.CurrentStreak++
		raiseMaxStreak(rec)
	default:
		// Gap: streak broken, best streak is kept
		rec.CurrentStreak = 1
	}
	rec.LastActiveDate = &day
	return nil
}

func raiseMaxStreak(rec *entity.EngagementRecord) {
	if rec.CurrentStreak > rec.MaxStreak {
		rec.MaxStreak = rec.CurrentStreak
	}
}

type RolloverResult struct {
	WeekReset  bool
	MonthReset bool
}

// RolloverPeriods zeroes the weekly and monthly focus buckets once their period
// has passed. Both checks are independent and the call is idempotent.
func RolloverPeriods(rec *entity.EngagementRecord, now time.Time) RolloverResult {
	var res RolloverResult
	weekStart := WeekStart(now)
	if rec.WeekStartDate == nil || rec.WeekStartDate.Before(weekStart) {
		rec.WeeklyFocusMinutes = 0
		rec.WeekStartDate = &weekStart
		res.WeekReset = true
	}
	monthStart := MonthStart(now)
	if rec.MonthStartDate == nil || rec.MonthStartDate.Before(monthStart) {
		rec.MonthlyFocusMinutes = 0
		rec.MonthStartDate = &monthStart
		res.MonthReset = true
	}
	return res
}

// ApplySession adds a finished focus session to the accumulators. Buckets
// should be rolled over before calling it. A session dated before the
// current week or month only counts toward the lifetime totals.
func ApplySession(rec *entity.EngagementRecord, ev entity.ActivityEvent) {
	minutes := max(ev.MinutesFocused, 0)
	rec.TotalFocusMinutes += minutes
	if inPeriod(ev.ActivityDate, rec.WeekStartDate) {
		rec.WeeklyFocusMinutes += minutes
	}
	if inPeriod(ev.ActivityDate, rec.MonthStartDate) {
		rec.MonthlyFocusMinutes += minutes
	}
	rec.SessionsCompleted++
	if ev.IsDeepFocus {
		rec.DeepFocusSessions++
		rec.TotalDeepFocusMinutes += minutes
	}
}

// inPeriod treats an undated session or an unopened period as current.
func inPeriod(at time.Time, periodStart *time.Time) bool {
	return at.IsZero() || periodStart == nil || !at.Before(*periodStart)
}
