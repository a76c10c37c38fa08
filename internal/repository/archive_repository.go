package repository

import (
	"context"
	"errors"

	"github.com/bytedance/sonic"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/adhyaya/internal/error_values"
	"github.com/limbo/adhyaya/pkg/entity"
)

type ArchiveRepository struct {
	conn PgConnection
}

func NewArchiveRepo(conn PgConnection) *ArchiveRepository {
	return &ArchiveRepository{
		conn: conn,
	}
}

func (ar *ArchiveRepository) FindByPeriod(ctx context.Context, month, year int) (*entity.MonthlyWinnerArchive, error) {
	row := ar.conn.QueryRow(
		ctx,
		`SELECT id, month, year, user_id, profile, stats, archived_at FROM monthly_winner_archives WHERE month = $1 AND year = $2;`,
		month,
		year,
	)
	archive, err := scanArchive(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrArchiveNotFound
		}
		return nil, errors.New("searching archive by period error: " + err.Error())
	}
	return archive, nil
}

func (ar *ArchiveRepository) Insert(ctx context.Context, archive *entity.MonthlyWinnerArchive) error {
	profile, err := sonic.Marshal(archive.Profile)
	if err != nil {
		return errors.New("encoding archive profile error: " + err.Error())
	}
	stats, err := sonic.Marshal(archive.Stats)
	if err != nil {
		return errors.New("encoding archive stats error: " + err.Error())
	}
	_, err = ar.conn.Exec(
		ctx,
		`INSERT INTO monthly_winner_archives (id, month, year, user_id, profile, stats, archived_at) VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		archive.ID,
		archive.Month,
		archive.Year,
		archive.UserID,
		string(profile),
		string(stats),
		archive.ArchivedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return errorvalues.ErrArchiveExists
		}
		return errors.New("inserting archive error: " + err.Error())
	}
	return nil
}

func (ar *ArchiveRepository) List(ctx context.Context, limit, offset int) ([]*entity.MonthlyWinnerArchive, error) {
	rows, err := ar.conn.Query(
		ctx,
		`SELECT id, month, year, user_id, profile, stats, archived_at FROM monthly_winner_archives ORDER BY year DESC, month DESC LIMIT $1 OFFSET $2;`,
		limit,
		offset,
	)
	if err != nil {
		return nil, errors.New("listing archives error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.MonthlyWinnerArchive, 0, limit)
	for rows.Next() {
		archive, err := scanArchive(rows)
		if err != nil {
			return nil, errors.New("archive row parsing error: " + err.Error())
		}
		result = append(result, archive)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected archive rows error: " + err.Error())
	}
	return result, nil
}

func scanArchive(row pgx.Row) (*entity.MonthlyWinnerArchive, error) {
	var (
		archive entity.MonthlyWinnerArchive
		profile []byte
		stats   []byte
	)
	err := row.Scan(&archive.ID, &archive.Month, &archive.Year, &archive.UserID, &profile, &stats, &archive.ArchivedAt)
	if err != nil {
		return nil, err
	}
	if err = sonic.Unmarshal(profile, &archive.Profile); err != nil {
		return nil, errors.New("decoding archive profile error: " + err.Error())
	}
	if err = sonic.Unmarshal(stats, &archive.Stats); err != nil {
		return nil, errors.New("decoding archive stats error: " + err.Error())
	}
	return &archive, nil
}
