package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/adhyaya/internal/error_values"
	"github.com/limbo/adhyaya/internal/repository"
	"github.com/limbo/adhyaya/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recordColumns = []string{
	"user_id", "current_streak", "max_streak", "last_active_date",
	"total_focus_minutes", "weekly_focus_minutes", "monthly_focus_minutes", "week_start_date", "month_start_date",
	"deep_focus_sessions", "total_deep_focus_minutes", "sessions_planned", "sessions_completed", "consistency_score",
	"focus_masters_score", "titles", "active_title", "created_at", "updated_at",
}

var (
	selectRecordQuery = regexp.QuoteMeta(`FROM engagement_records WHERE user_id = $1;`)
	ensureRecordQuery = regexp.QuoteMeta(`INSERT INTO engagement_records (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`)
	lockRecordQuery   = regexp.QuoteMeta(`FROM engagement_records WHERE user_id = $1 FOR UPDATE;`)
	updateRecordQuery = regexp.QuoteMeta(`UPDATE engagement_records SET`)
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func strPtr(s string) *string {
	return &s
}

func recordRows(uid uuid.UUID, created time.Time) *pgxmock.Rows {
	lastActive := time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC)
	return pgxmock.NewRows(recordColumns).AddRow(
		uid, 7, 9, timePtr(lastActive),
		300, 120, 200, timePtr(time.Date(2024, 1, 14, 0, 0, 0, 0, time.UTC)), timePtr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		3, 90, 10, 8, 80,
		52, []byte(`[{"title_id":"chai-pe-babua","title":"Chai Pe Babua","emoji":"☕","earned_at":"2024-01-20T10:00:00Z","displayed":true}]`),
		strPtr("chai-pe-babua"), created, created,
	)
}

func emptyRecordRows(uid uuid.UUID, created time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(recordColumns).AddRow(
		uid, 0, 0, (*time.Time)(nil),
		0, 0, 0, (*time.Time)(nil), (*time.Time)(nil),
		0, 0, 0, 0, 0,
		0, []byte(`[]`), (*string)(nil), created, created,
	)
}

func updateArgs(uid uuid.UUID) []any {
	args := make([]any, 17)
	args[0] = uid
	for i := 1; i < len(args); i++ {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

func TestLoadRecord(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewEngagementRepo(conn)
	uid := uuid.New()
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(selectRecordQuery).WithArgs(uid).WillReturnRows(recordRows(uid, created))
		rec, err := repo.Load(ctx, uid)
		require.NoError(t, err)
		assert.Equal(t, uid, rec.UserID)
		assert.Equal(t, 7, rec.CurrentStreak)
		assert.Equal(t, 9, rec.MaxStreak)
		assert.Equal(t, 52, rec.FocusMastersScore)
		require.Len(t, rec.Titles, 1)
		assert.Equal(t, entity.TitleChaiPeBabua, rec.Titles[0].TitleID)
		assert.True(t, rec.Titles[0].Displayed)
		require.NotNil(t, rec.ActiveTitle)
		assert.Equal(t, entity.TitleChaiPeBabua, *rec.ActiveTitle)
		require.NotNil(t, rec.LastActiveDate)
		assert.Equal(t, 20, rec.LastActiveDate.Day())
	})
	t.Run("null columns", func(t *testing.T) {
		conn.ExpectQuery(selectRecordQuery).WithArgs(uid).WillReturnRows(emptyRecordRows(uid, created))
		rec, err := repo.Load(ctx, uid)
		require.NoError(t, err)
		assert.Nil(t, rec.LastActiveDate)
		assert.Nil(t, rec.ActiveTitle)
		assert.NotNil(t, rec.Titles)
		assert.Empty(t, rec.Titles)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(selectRecordQuery).WithArgs(uid).WillReturnError(pgx.ErrNoRows)
		_, err := repo.Load(ctx, uid)
		assert.ErrorIs(t, err, errorvalues.ErrRecordNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(selectRecordQuery).WithArgs(uid).WillReturnError(errors.New("db error"))
		_, err := repo.Load(ctx, uid)
		assert.EqualError(t, err, "loading engagement record error: db error")
	})
}

func TestModifyRecord(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	saved := time.Date(2024, 1, 21, 12, 0, 0, 0, time.UTC)
	t.Run("successfully modified", func(t *testing.T) {
		conn, err := pgxmock.NewPool()
		require.NoError(t, err)
		repo := repository.NewEngagementRepo(conn)
		conn.ExpectBegin()
		conn.ExpectExec(ensureRecordQuery).WithArgs(uid).WillReturnResult(pgxmock.NewResult("INSERT", 0))
		conn.ExpectQuery(lockRecordQuery).WithArgs(uid).WillReturnRows(recordRows(uid, created))
		conn.ExpectQuery(updateRecordQuery).
			WithArgs(updateArgs(uid)...).
			WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(saved))
		conn.ExpectCommit()
		rec, err := repo.Modify(ctx, uid, func(rec *entity.EngagementRecord) error {
			rec.CurrentStreak++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 8, rec.CurrentStreak)
		assert.Equal(t, saved, rec.UpdatedAt)
		assert.NoError(t, conn.ExpectationsWereMet())
	})
	t.Run("first modification creates record", func(t *testing.T) {
		conn, err := pgxmock.NewPool()
		require.NoError(t, err)
		repo := repository.NewEngagementRepo(conn)
		conn.ExpectBegin()
		conn.ExpectExec(ensureRecordQuery).WithArgs(uid).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		conn.ExpectQuery(lockRecordQuery).WithArgs(uid).WillReturnRows(emptyRecordRows(uid, created))
		conn.ExpectQuery(updateRecordQuery).
			WithArgs(updateArgs(uid)...).
			WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(saved))
		conn.ExpectCommit()
		rec, err := repo.Modify(ctx, uid, func(rec *entity.EngagementRecord) error {
			rec.SessionsPlanned = 3
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, rec.SessionsPlanned)
		assert.NoError(t, conn.ExpectationsWereMet())
	})
	t.Run("callback error aborts", func(t *testing.T) {
		conn, err := pgxmock.NewPool()
		require.NoError(t, err)
		repo := repository.NewEngagementRepo(conn)
		conn.ExpectBegin()
		conn.ExpectExec(ensureRecordQuery).WithArgs(uid).WillReturnResult(pgxmock.NewResult("INSERT", 0))
		conn.ExpectQuery(lockRecordQuery).WithArgs(uid).WillReturnRows(recordRows(uid, created))
		conn.ExpectRollback()
		_, err = repo.Modify(ctx, uid, func(rec *entity.EngagementRecord) error {
			return errorvalues.ErrTitleNotEarned
		})
		assert.ErrorIs(t, err, errorvalues.ErrTitleNotEarned)
		assert.NoError(t, conn.ExpectationsWereMet())
	})
	t.Run("unknown user", func(t *testing.T) {
		conn, err := pgxmock.NewPool()
		require.NoError(t, err)
		repo := repository.NewEngagementRepo(conn)
		conn.ExpectBegin()
		conn.ExpectExec(ensureRecordQuery).WithArgs(uid).WillReturnError(&pgconn.PgError{Code: "23503"})
		conn.ExpectRollback()
		_, err = repo.Modify(ctx, uid, func(rec *entity.EngagementRecord) error { return nil })
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
		assert.NoError(t, conn.ExpectationsWereMet())
	})
	t.Run("begin error", func(t *testing.T) {
		conn, err := pgxmock.NewPool()
		require.NoError(t, err)
		repo := repository.NewEngagementRepo(conn)
		conn.ExpectBegin().WillReturnError(errors.New("db error"))
		_, err = repo.Modify(ctx, uid, func(rec *entity.EngagementRecord) error { return nil })
		assert.EqualError(t, err, "beginning transaction error: db error")
	})
	t.Run("save error", func(t *testing.T) {
		conn, err := pgxmock.NewPool()
		require.NoError(t, err)
		repo := repository.NewEngagementRepo(conn)
		conn.ExpectBegin()
		conn.ExpectExec(ensureRecordQuery).WithArgs(uid).WillReturnResult(pgxmock.NewResult("INSERT", 0))
		conn.ExpectQuery(lockRecordQuery).WithArgs(uid).WillReturnRows(recordRows(uid, created))
		conn.ExpectQuery(updateRecordQuery).WithArgs(updateArgs(uid)...).WillReturnError(errors.New("db error"))
		conn.ExpectRollback()
		_, err = repo.Modify(ctx, uid, func(rec *entity.EngagementRecord) error { return nil })
		assert.EqualError(t, err, "saving engagement record error: db error")
	})
}

func TestFindMaxRecord(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewEngagementRepo(conn)
	uid := uuid.New()
	query := regexp.QuoteMeta(`ORDER BY focus_masters_score DESC, total_focus_minutes DESC, created_at ASC, user_id ASC LIMIT 1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WillReturnRows(recordRows(uid, time.Now()))
		rec, err := repo.FindMax(ctx)
		require.NoError(t, err)
		assert.Equal(t, uid, rec.UserID)
	})
	t.Run("no records", func(t *testing.T) {
		conn.ExpectQuery(query).WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindMax(ctx)
		assert.ErrorIs(t, err, errorvalues.ErrRecordNotFound)
	})
}

func TestLeaderboardTop(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewEngagementRepo(conn)
	query := regexp.QuoteMeta(`FROM engagement_records e JOIN users u ON u.id = e.user_id`)
	columns := []string{"user_id", "name", "focus_masters_score", "current_streak", "active_title"}
	first, second := uuid.New(), uuid.New()
	t.Run("ranks follow offset", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(2, 10).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(first, "asha", 90, 12, strPtr("chai-pe-babua")).
				AddRow(second, "ravi", 70, 3, (*string)(nil)))
		entries, err := repo.Top(ctx, 2, 10)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, 11, entries[0].Rank)
		assert.Equal(t, "asha", entries[0].Name)
		require.NotNil(t, entries[0].ActiveTitle)
		assert.Equal(t, entity.TitleChaiPeBabua, *entries[0].ActiveTitle)
		assert.Equal(t, 12, entries[1].Rank)
		assert.Nil(t, entries[1].ActiveTitle)
	})
	t.Run("query error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(10, 0).WillReturnError(errors.New("db error"))
		_, err := repo.Top(ctx, 10, 0)
		assert.EqualError(t, err, "getting leaderboard error: db error")
	})
}
