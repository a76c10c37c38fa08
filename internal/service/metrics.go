package service

import "github.com/prometheus/client_golang/prometheus"

var (
	focusSessionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adhyaya_focus_sessions_total",
			Help: "Focus sessions applied to engagement records",
		},
		[]string{"kind"},
	)
	focusMinutesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "adhyaya_focus_minutes_total",
			Help: "Focus minutes applied to engagement records",
		},
	)
	backdatedActivityTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "adhyaya_backdated_activity_total",
			Help: "Sessions dated before the user's last active day",
		},
	)
	titlesAwardedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "adhyaya_titles_awarded_total",
			Help: "Titles granted to users",
		},
		[]string{"title_id"},
	)
	archivesCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "adhyaya_monthly_archives_created_total",
			Help: "Monthly winner archives written",
		},
	)
)

// RegisterMetrics registers ledger counters. Call once from main.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		focusSessionsTotal,
		focusMinutesTotal,
		backdatedActivityTotal,
		titlesAwardedTotal,
		archivesCreatedTotal,
	)
}

func sessionKind(deep bool) string {
	if deep {
		return "deep"
	}
	return "regular"
}
