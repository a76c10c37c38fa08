package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
	DisplayName  string
	AvatarURL    string
}

// Public part of the user shown on leaderboards and copied into archives
type UserProfile struct {
	UserID      uuid.UUID `json:"uid"`
	Name        string    `json:"name"`
	DisplayName string    `json:"display_name,omitempty"`
	AvatarURL   string    `json:"avatar_url,omitempty"`
}

type TitleID string

const (
	TitleChaiPeBabua TitleID = "chai-pe-babua"
	TitlePakkaBabua  TitleID = "pakka-babua"
	TitleSilentBabua TitleID = "silent-babua"
	TitleLegendBabua TitleID = "legend-babua"
)

func (id TitleID) Valid() bool {
	switch id {
	case TitleChaiPeBabua, TitlePakkaBabua, TitleSilentBabua, TitleLegendBabua:
		return true
	}
	return false
}

type Title struct {
	TitleID   TitleID   `json:"title_id"`
	Title     string    `json:"title"`
	Emoji     string    `json:"emoji"`
	EarnedAt  time.Time `json:"earned_at"`
	Displayed bool      `json:"displayed"`
}

// EngagementRecord holds streak, focus time and title state of a single user.
// FocusMastersScore is derived and must only be written by the ledger.
type EngagementRecord struct {
	UserID uuid.UUID `json:"uid"`

	CurrentStreak  int        `json:"current_streak"`
	MaxStreak      int        `json:"max_streak"`
	LastActiveDate *time.Time `json:"last_active_date,omitempty"`

	TotalFocusMinutes   int        `json:"total_focus_minutes"`
	WeeklyFocusMinutes  int        `json:"weekly_focus_minutes"`
	MonthlyFocusMinutes int        `json:"monthly_focus_minutes"`
	WeekStartDate       *time.Time `json:"week_start_date,omitempty"`
	MonthStartDate      *time.Time `json:"month_start_date,omitempty"`

	DeepFocusSessions     int `json:"deep_focus_sessions"`
	TotalDeepFocusMinutes int `json:"total_deep_focus_minutes"`

	SessionsPlanned   int `json:"sessions_planned"`
	SessionsCompleted int `json:"sessions_completed"`
	ConsistencyScore  int `json:"consistency_score"`

	FocusMastersScore int `json:"focus_masters_score"`

	Titles      []Title  `json:"titles"`
	ActiveTitle *TitleID `json:"active_title,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *EngagementRecord) HasTitle(id TitleID) bool {
	for _, t := range r.Titles {
		if t.TitleID == id {
			return true
		}
	}
	return false
}

// Frozen copy of the winner's stats stored inside an archive
type EngagementSnapshot struct {
	CurrentStreak         int       `json:"current_streak"`
	MaxStreak             int       `json:"max_streak"`
	TotalFocusMinutes     int       `json:"total_focus_minutes"`
	MonthlyFocusMinutes   int       `json:"monthly_focus_minutes"`
	DeepFocusSessions     int       `json:"deep_focus_sessions"`
	TotalDeepFocusMinutes int       `json:"total_deep_focus_minutes"`
	ConsistencyScore      int       `json:"consistency_score"`
	FocusMastersScore     int       `json:"focus_masters_score"`
	Titles                []TitleID `json:"titles"`
}

type MonthlyWinnerArchive struct {
	ID         uuid.UUID          `json:"id"`
	Month      int                `json:"month"`
	Year       int                `json:"year"`
	UserID     uuid.UUID          `json:"uid"`
	Profile    UserProfile        `json:"profile"`
	Stats      EngagementSnapshot `json:"stats"`
	ArchivedAt time.Time          `json:"archived_at"`
}

// Completed focus session reported by the session tracker
type ActivityEvent struct {
	UserID         uuid.UUID
	ActivityDate   time.Time
	MinutesFocused int
	IsDeepFocus    bool
}

type LeaderboardEntry struct {
	Rank              int       `json:"rank"`
	UserID            uuid.UUID `json:"uid"`
	Name              string    `json:"name"`
	FocusMastersScore int       `json:"focus_masters_score"`
	CurrentStreak     int       `json:"current_streak"`
	ActiveTitle       *TitleID  `json:"active_title,omitempty"`
}
