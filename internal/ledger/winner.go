package ledger

import (
	"bytes"

	"github.com/limbo/adhyaya/pkg/entity"
)

// SelectWinner picks the record with the highest FocusMastersScore.
// Ties go to more total focus minutes, then the older record, then the
// smaller user id, so the result doesn't depend on input order.
// Returns nil for an empty slice.
func SelectWinner(records []*entity.EngagementRecord) *entity.EngagementRecord {
	var winner *entity.EngagementRecord
	for _, rec := range records {
		if rec == nil {
			continue
		}
		if winner == nil || Outranks(rec, winner) {
			winner = rec
		}
	}
	return winner
}

// Outranks reports whether a is placed above b on the leaderboard.
func Outranks(a, b *entity.EngagementRecord) bool {
	if a.FocusMastersScore != b.FocusMastersScore {
		return a.FocusMastersScore > b.FocusMastersScore
	}
	if a.TotalFocusMinutes != b.TotalFocusMinutes {
		return a.TotalFocusMinutes > b.TotalFocusMinutes
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return bytes.Compare(a.UserID[:], b.UserID[:]) < 0
}

// Snapshot copies the stats that go into a monthly archive.
func Snapshot(rec *entity.EngagementRecord) entity.EngagementSnapshot {
	titles := make([]entity.TitleID, 0, len(rec.Titles))
	for _, t := range rec.Titles {
		titles = append(titles, t.TitleID)
	}
	return entity.EngagementSnapshot{
		CurrentStreak:         rec.CurrentStreak,
		MaxStreak:             rec.MaxStreak,
		TotalFocusMinutes:     rec.TotalFocusMinutes,
		MonthlyFocusMinutes:   rec.MonthlyFocusMinutes,
		DeepFocusSessions:     rec.DeepFocusSessions,
		TotalDeepFocusMinutes: rec.TotalDeepFocusMinutes,
		ConsistencyScore:      rec.ConsistencyScore,
		FocusMastersScore:     rec.FocusMastersScore,
		Titles:                titles,
	}
}
