package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/adhyaya/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type RegisterRequest struct {
	Name        string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password    string `validate:"required,min=8,max=72"`
	DisplayName string `validate:"omitempty,max=100"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

// Completed focus session. Zero ActivityDate means "now".
type TrackSessionRequest struct {
	UserID         uuid.UUID `validate:"required"`
	ActivityDate   time.Time
	MinutesFocused int `validate:"min=1,max=1440"`
	IsDeepFocus    bool
}

type TrackSessionResult struct {
	Record    *entity.EngagementRecord
	NewTitles []entity.Title
}

type PlanSessionsRequest struct {
	UserID uuid.UUID `validate:"required"`
	Count  int       `validate:"min=1,max=100"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type EngagementServiceI interface {
	// Applies finished focus session to user's record: rollover, streak, totals, score and titles
	TrackSession(ctx context.Context, req *TrackSessionRequest) (*TrackSessionResult, error)
	// Adds planned sessions used by consistency score
	PlanSessions(ctx context.Context, req *PlanSessionsRequest) (*entity.EngagementRecord, error)
	// Current record with weekly/monthly buckets rolled over
	GetStats(ctx context.Context, uid uuid.UUID) (*entity.EngagementRecord, error)
	// Chooses displayed title. nil clears it
	SetActiveTitle(ctx context.Context, uid uuid.UUID, id *entity.TitleID) (*entity.EngagementRecord, error)
	Leaderboard(ctx context.Context, pagination PaginationOpts) ([]*entity.LeaderboardEntry, error)
}

type ArchiveServiceI interface {
	// Archives winner of the previous month. Returns nil archive when there are no records
	ArchiveMonthlyWinner(ctx context.Context) (*entity.MonthlyWinnerArchive, error)
	GetArchive(ctx context.Context, month, year int) (*entity.MonthlyWinnerArchive, error)
	ListArchives(ctx context.Context, pagination PaginationOpts) ([]*entity.MonthlyWinnerArchive, error)
}
