package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/adhyaya/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Public profile for leaderboards and archive snapshots
	GetProfile(ctx context.Context, uid uuid.UUID) (*entity.UserProfile, error)
	// Deletes user together with his engagement record
	Delete(ctx context.Context, uid uuid.UUID) error
}

// ModifyFunc mutates a locked record. Returning an error aborts the change.
type ModifyFunc func(rec *entity.EngagementRecord) error

type EngagementRepositoryI interface {
	// Returns user's record or ErrRecordNotFound
	Load(ctx context.Context, uid uuid.UUID) (*entity.EngagementRecord, error)
	// Atomic read-modify-write of user's record. Missing record is created first
	Modify(ctx context.Context, uid uuid.UUID, fn ModifyFunc) (*entity.EngagementRecord, error)
	// Record with the highest focus masters score. ErrRecordNotFound when there are no records
	FindMax(ctx context.Context) (*entity.EngagementRecord, error)
	// Leaderboard page ordered by focus masters score
	Top(ctx context.Context, limit, offset int) ([]*entity.LeaderboardEntry, error)
}

type ArchiveRepositoryI interface {
	// Returns archive of the period or ErrArchiveNotFound
	FindByPeriod(ctx context.Context, month, year int) (*entity.MonthlyWinnerArchive, error)
	// Stores new archive. ErrArchiveExists if the period is already archived
	Insert(ctx context.Context, archive *entity.MonthlyWinnerArchive) error
	// Lists archives, newest period first
	List(ctx context.Context, limit, offset int) ([]*entity.MonthlyWinnerArchive, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	MaxConns int32
}

func (pgcfg *PGCfg) ConnString() string {
	conn := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.MaxConns > 0 {
		conn += fmt.Sprintf("?pool_max_conns=%d", pgcfg.MaxConns)
	}
	return conn
}
