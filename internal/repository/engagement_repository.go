package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/adhyaya/internal/error_values"
	"github.com/limbo/adhyaya/pkg/entity"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

const recordColumns = `user_id, current_streak, max_streak, last_active_date, ` +
	`total_focus_minutes, weekly_focus_minutes, monthly_focus_minutes, week_start_date, month_start_date, ` +
	`deep_focus_sessions, total_deep_focus_minutes, sessions_planned, sessions_completed, consistency_score, ` +
	`focus_masters_score, titles, active_title, created_at, updated_at`

const (
	selectRecordSQL = `SELECT ` + recordColumns + ` FROM engagement_records WHERE user_id = $1;`
	lockRecordSQL   = `SELECT ` + recordColumns + ` FROM engagement_records WHERE user_id = $1 FOR UPDATE;`
	ensureRecordSQL = `INSERT INTO engagement_records (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING;`

	updateRecordSQL = `UPDATE engagement_records SET current_streak = $2, max_streak = $3, last_active_date = $4, ` +
		`total_focus_minutes = $5, weekly_focus_minutes = $6, monthly_focus_minutes = $7, week_start_date = $8, ` +
		`month_start_date = $9, deep_focus_sessions = $10, total_deep_focus_minutes = $11, sessions_planned = $12, ` +
		`sessions_completed = $13, consistency_score = $14, focus_masters_score = $15, titles = $16, ` +
		`active_title = $17, updated_at = NOW() WHERE user_id = $1 RETURNING updated_at;`

	// Ordering mirrors ledger.SelectWinner
	winnerOrder = `focus_masters_score DESC, total_focus_minutes DESC, created_at ASC, user_id ASC`

	findMaxSQL = `SELECT ` + recordColumns + ` FROM engagement_records ORDER BY ` + winnerOrder + ` LIMIT 1;`

	leaderboardSQL = `SELECT e.user_id, u.name, e.focus_masters_score, e.current_streak, e.active_title ` +
		`FROM engagement_records e JOIN users u ON u.id = e.user_id ` +
		`ORDER BY e.focus_masters_score DESC, e.total_focus_minutes DESC, e.created_at ASC, e.user_id ASC ` +
		`LIMIT $1 OFFSET $2;`
)

type EngagementRepository struct {
	conn PgConnection
}

func NewEngagementRepo(conn PgConnection) *EngagementRepository {
	return &EngagementRepository{
		conn: conn,
	}
}

func (er *EngagementRepository) Load(ctx context.Context, uid uuid.UUID) (*entity.EngagementRecord, error) {
	rec, err := scanRecord(er.conn.QueryRow(ctx, selectRecordSQL, uid))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRecordNotFound
		}
		return nil, errors.New("loading engagement record error: " + err.Error())
	}
	return rec, nil
}

func (er *EngagementRepository) Modify(ctx context.Context, uid uuid.UUID, fn ModifyFunc) (*entity.EngagementRecord, error) {
	tx, err := er.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("beginning transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)
	// Row must exist before locking, otherwise two first activities race on insert
	_, err = tx.Exec(ctx, ensureRecordSQL, uid)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("creating engagement record error: " + err.Error())
	}
	rec, err := scanRecord(tx.QueryRow(ctx, lockRecordSQL, uid))
	if err != nil {
		return nil, errors.New("locking engagement record error: " + err.Error())
	}
	if err = fn(rec); err != nil {
		return nil, err
	}
	args, err := recordArgs(rec)
	if err != nil {
		return nil, err
	}
	if err = tx.QueryRow(ctx, updateRecordSQL, args...).Scan(&rec.UpdatedAt); err != nil {
		return nil, errors.New("saving engagement record error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing engagement record error: " + err.Error())
	}
	return rec, nil
}

func (er *EngagementRepository) FindMax(ctx context.Context) (*entity.EngagementRecord, error) {
	rec, err := scanRecord(er.conn.QueryRow(ctx, findMaxSQL))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRecordNotFound
		}
		return nil, errors.New("searching top record error: " + err.Error())
	}
	return rec, nil
}

func (er *EngagementRepository) Top(ctx context.Context, limit, offset int) ([]*entity.LeaderboardEntry, error) {
	rows, err := er.conn.Query(ctx, leaderboardSQL, limit, offset)
	if err != nil {
		return nil, errors.New("getting leaderboard error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]*entity.LeaderboardEntry, 0, limit)
	for rows.Next() {
		var (
			e      entity.LeaderboardEntry
			active *string
		)
		if err = rows.Scan(&e.UserID, &e.Name, &e.FocusMastersScore, &e.CurrentStreak, &active); err != nil {
			return nil, errors.New("leaderboard row parsing error: " + err.Error())
		}
		e.ActiveTitle = toTitleID(active)
		e.Rank = offset + len(entries) + 1
		entries = append(entries, &e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected leaderboard rows error: " + err.Error())
	}
	return entries, nil
}

func scanRecord(row pgx.Row) (*entity.EngagementRecord, error) {
	var (
		rec    entity.EngagementRecord
		titles []byte
		active *string
	)
	err := row.Scan(
		&rec.UserID,
		&rec.CurrentStreak,
		&rec.MaxStreak,
		&rec.LastActiveDate,
		&rec.TotalFocusMinutes,
		&rec.WeeklyFocusMinutes,
		&rec.MonthlyFocusMinutes,
		&rec.WeekStartDate,
		&rec.MonthStartDate,
		&rec.DeepFocusSessions,
		&rec.TotalDeepFocusMinutes,
		&rec.SessionsPlanned,
		&rec.SessionsCompleted,
		&rec.ConsistencyScore,
		&rec.FocusMastersScore,
		&titles,
		&active,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Titles = make([]entity.Title, 0)
	if len(titles) > 0 {
		if err = sonic.Unmarshal(titles, &rec.Titles); err != nil {
			return nil, errors.New("decoding titles error: " + err.Error())
		}
	}
	rec.ActiveTitle = toTitleID(active)
	return &rec, nil
}

func recordArgs(rec *entity.EngagementRecord) ([]any, error) {
	titles := rec.Titles
	if titles == nil {
		titles = []entity.Title{}
	}
	encoded, err := sonic.Marshal(titles)
	if err != nil {
		return nil, errors.New("encoding titles error: " + err.Error())
	}
	var active *string
	if rec.ActiveTitle != nil {
		s := string(*rec.ActiveTitle)
		active = &s
	}
	return []any{
		rec.UserID,
		rec.CurrentStreak,
		rec.MaxStreak,
		rec.LastActiveDate,
		rec.TotalFocusMinutes,
		rec.WeeklyFocusMinutes,
		rec.MonthlyFocusMinutes,
		rec.WeekStartDate,
		rec.MonthStartDate,
		rec.DeepFocusSessions,
		rec.TotalDeepFocusMinutes,
		rec.SessionsPlanned,
		rec.SessionsCompleted,
		rec.ConsistencyScore,
		rec.FocusMastersScore,
		string(encoded),
		active,
	}, nil
}

func toTitleID(s *string) *entity.TitleID {
	if s == nil {
		return nil
	}
	id := entity.TitleID(*s)
	return &id
}
