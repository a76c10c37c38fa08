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

var archiveColumns = []string{"id", "month", "year", "user_id", "profile", "stats", "archived_at"}

func TestFindArchiveByPeriod(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewArchiveRepo(conn)
	query := regexp.QuoteMeta(`FROM monthly_winner_archives WHERE month = $1 AND year = $2;`)
	id, uid := uuid.New(), uuid.New()
	archivedAt := time.Date(2024, 2, 1, 0, 5, 0, 0, time.UTC)
	profile := []byte(`{"uid":"` + uid.String() + `","name":"asha","display_name":"Asha","avatar_url":""}`)
	stats := []byte(`{"current_streak":12,"max_streak":12,"total_focus_minutes":900,"monthly_focus_minutes":600,` +
		`"deep_focus_sessions":4,"total_deep_focus_minutes":240,"consistency_score":90,"focus_masters_score":96,"titles":["chai-pe-babua"]}`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(1, 2024).
			WillReturnRows(pgxmock.NewRows(archiveColumns).AddRow(id, 1, 2024, uid, profile, stats, archivedAt))
		archive, err := repo.FindByPeriod(ctx, 1, 2024)
		require.NoError(t, err)
		assert.Equal(t, id, archive.ID)
		assert.Equal(t, uid, archive.UserID)
		assert.Equal(t, "asha", archive.Profile.Name)
		assert.Equal(t, 96, archive.Stats.FocusMastersScore)
		assert.Equal(t, []entity.TitleID{entity.TitleChaiPeBabua}, archive.Stats.Titles)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(2, 2024).WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByPeriod(ctx, 2, 2024)
		assert.ErrorIs(t, err, errorvalues.ErrArchiveNotFound)
	})
	t.Run("broken stats", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(3, 2024).
			WillReturnRows(pgxmock.NewRows(archiveColumns).AddRow(id, 3, 2024, uid, profile, []byte(`{`), archivedAt))
		_, err := repo.FindByPeriod(ctx, 3, 2024)
		assert.Error(t, err)
	})
}

func TestInsertArchive(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewArchiveRepo(conn)
	query := regexp.QuoteMeta(`INSERT INTO monthly_winner_archives (id, month, year, user_id, profile, stats, archived_at)`)
	archive := &entity.MonthlyWinnerArchive{
		ID:         uuid.New(),
		Month:      1,
		Year:       2024,
		UserID:     uuid.New(),
		Stats:      entity.EngagementSnapshot{FocusMastersScore: 80, Titles: []entity.TitleID{}},
		ArchivedAt: time.Now().UTC(),
	}
	args := []any{archive.ID, 1, 2024, archive.UserID, pgxmock.AnyArg(), pgxmock.AnyArg(), archive.ArchivedAt}
	t.Run("inserted", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.Insert(ctx, archive))
	})
	t.Run("period already archived", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnError(&pgconn.PgError{Code: "23505"})
		assert.ErrorIs(t, repo.Insert(ctx, archive), errorvalues.ErrArchiveExists)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnError(errors.New("db error"))
		assert.EqualError(t, repo.Insert(ctx, archive), "inserting archive error: db error")
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestListArchives(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	ctx := context.Background()
	repo := repository.NewArchiveRepo(conn)
	query := regexp.QuoteMeta(`ORDER BY year DESC, month DESC LIMIT $1 OFFSET $2;`)
	t.Run("listed", func(t *testing.T) {
		rows := pgxmock.NewRows(archiveColumns)
		for _, m := range []int{3, 2} {
			rows.AddRow(uuid.New(), m, 2024, uuid.New(), []byte(`{}`), []byte(`{"titles":[]}`), time.Now())
		}
		conn.ExpectQuery(query).WithArgs(20, 0).WillReturnRows(rows)
		archives, err := repo.List(ctx, 20, 0)
		require.NoError(t, err)
		require.Len(t, archives, 2)
		assert.Equal(t, 3, archives[0].Month)
		assert.Equal(t, 2, archives[1].Month)
	})
	t.Run("empty", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(20, 40).WillReturnRows(pgxmock.NewRows(archiveColumns))
		archives, err := repo.List(ctx, 20, 40)
		require.NoError(t, err)
		assert.Empty(t, archives)
	})
	t.Run("query error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(20, 0).WillReturnError(errors.New("db error"))
		_, err := repo.List(ctx, 20, 0)
		assert.EqualError(t, err, "listing archives error: db error")
	})
}
