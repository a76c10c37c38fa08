package ledger

import (
	"math"

	"github.com/limbo/adhyaya/pkg/entity"
)

const (
	focusTimeSaturation = 10000.0
	focusTimeWeight     = 0.6
	deepFocusWeight     = 0.4
)

// ComputeFocusMastersScore recomputes the 0-100 score from total focus time
// and deep focus counters and stores it on rec.
func ComputeFocusMastersScore(rec *entity.EngagementRecord) int {
	focusTimeScore := math.Min(float64(rec.TotalFocusMinutes)/focusTimeSaturation, 1) * 100
	deepFocusScore := 0.0
	if rec.DeepFocusSessions > 0 {
		deepFocusScore = math.Min(float64(rec.DeepFocusSessions)*10+float64(rec.TotalDeepFocusMinutes)/100, 100)
	}
	score := math.Round(focusTimeWeight*focusTimeScore + deepFocusWeight*deepFocusScore)
	rec.FocusMastersScore = clampPercent(int(score))
	return rec.FocusMastersScore
}

// ConsistencyScore is the completed/planned ratio as a percentage.
func ConsistencyScore(planned, completed int) int {
	if planned <= 0 {
		return 0
	}
	return clampPercent(int(math.Round(float64(completed) / float64(planned) * 100)))
}

func clampPercent(v int) int {
	return min(max(v, 0), 100)
}
