package ledger

import (
	"time"

	errorvalues "github.com/limbo/adhyaya/internal/error_values"
	"github.com/limbo/adhyaya/pkg/entity"
)

type titleInfo struct {
	name  string
	emoji string
}

var titleCatalog = map[entity.TitleID]titleInfo{
	entity.TitleChaiPeBabua: {name: "Chai Pe Babua", emoji: "☕"},
	entity.TitlePakkaBabua:  {name: "Pakka Babua", emoji: "🔥"},
	entity.TitleSilentBabua: {name: "Silent Babua", emoji: "🤫"},
	entity.TitleLegendBabua: {name: "Legend Babua", emoji: "👑"},
}

type titleRule struct {
	id     entity.TitleID
	earned func(rec *entity.EngagementRecord) bool
}

// legend-babua is not here: it is granted by the monthly archive only.
var titleRules = []titleRule{
	{
		id:     entity.TitleChaiPeBabua,
		earned: func(rec *entity.EngagementRecord) bool { return rec.CurrentStreak >= 7 },
	},
	{
		id:     entity.TitlePakkaBabua,
		earned: func(rec *entity.EngagementRecord) bool { return rec.CurrentStreak >= 30 },
	},
	{
		id:     entity.TitleSilentBabua,
		earned: func(rec *entity.EngagementRecord) bool { return rec.DeepFocusSessions >= 10 },
	},
}

// NewTitle builds the badge for id as earned at the given moment.
func NewTitle(id entity.TitleID, earnedAt time.Time) (entity.Title, error) {
	info, ok := titleCatalog[id]
	if !ok {
		return entity.Title{}, errorvalues.ErrUnknownTitle
	}
	return entity.Title{
		TitleID:  id,
		Title:    info.name,
		Emoji:    info.emoji,
		EarnedAt: earnedAt,
	}, nil
}

// AwardTitles evaluates every rule and appends titles not held yet.
// Returns only the newly earned ones.
func AwardTitles(rec *entity.EngagementRecord, now time.Time) []entity.Title {
	earned := make([]entity.Title, 0)
	for _, rule := range titleRules {
		if !rule.earned(rec) {
			continue
		}
		if t, ok := GrantTitle(rec, rule.id, now); ok {
			earned = append(earned, t)
		}
	}
	return earned
}

// GrantTitle appends title id unless rec already holds it. The bool reports
// whether the title was added.
func GrantTitle(rec *entity.EngagementRecord, id entity.TitleID, now time.Time) (entity.Title, bool) {
	if rec.HasTitle(id) {
		return entity.Title{}, false
	}
	t, err := NewTitle(id, now)
	if err != nil {
		return entity.Title{}, false
	}
	rec.Titles = append(rec.Titles, t)
	return t, true
}

// SetActiveTitle points the record at one of its earned titles, or clears
// the choice when id is nil.
func SetActiveTitle(rec *entity.EngagementRecord, id *entity.TitleID) error {
	if id == nil {
		rec.ActiveTitle = nil
		for i := range rec.Titles {
			rec.Titles[i].Displayed = false
		}
		return nil
	}
	if !id.Valid() {
		return errorvalues.ErrUnknownTitle
	}
	if !rec.HasTitle(*id) {
		return errorvalues.ErrTitleNotEarned
	}
	active := *id
	rec.ActiveTitle = &active
	for i := range rec.Titles {
		rec.Titles[i].Displayed = rec.Titles[i].TitleID == active
	}
	return nil
}
