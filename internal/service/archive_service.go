package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/adhyaya/internal/error_values"
	"github.com/limbo/adhyaya/internal/ledger"
	"github.com/limbo/adhyaya/internal/repository"
	"github.com/limbo/adhyaya/pkg/clock"
	"github.com/limbo/adhyaya/pkg/entity"
)

type ArchiveService struct {
	records  repository.EngagementRepositoryI
	archives repository.ArchiveRepositoryI
	users    repository.UsersRepositoryI
	clock    clock.Clock
	logger   *slog.Logger
	// serializes runs inside one process, the unique (month, year) key covers the rest
	mu sync.Mutex
}

func NewArchiveService(
	records repository.EngagementRepositoryI,
	archives repository.ArchiveRepositoryI,
	users repository.UsersRepositoryI,
	clk clock.Clock,
	logger *slog.Logger,
) *ArchiveService {
	if records == nil || archives == nil || users == nil || clk == nil {
		log.Fatal("on archive service provided nil dependencies")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ArchiveService{
		records:  records,
		archives: archives,
		users:    users,
		clock:    clk,
		logger:   logger.With(slog.String("component", "archive_service")),
	}
}

// ArchiveMonthlyWinner stores the winner of the month before clock's now.
// Repeated calls return the archive written first. With no engagement
// records at all nothing is archived and (nil, nil) is returned.
func (as *ArchiveService) ArchiveMonthlyWinner(ctx context.Context) (*entity.MonthlyWinnerArchive, error) {
	as.mu.Lock()
	defer as.mu.Unlock()
	now := as.clock.Now()
	m, year := ledger.PreviousMonth(now)
	month := int(m)
	logger := as.logger.With(slog.Int("month", month), slog.Int("year", year))

	existing, err := as.archives.FindByPeriod(ctx, month, year)
	switch {
	case err == nil:
		// Earlier run may have stopped between insert and title grant
		if err = as.grantLegend(ctx, existing.UserID); err != nil {
			return nil, err
		}
		return existing, nil
	case !errors.Is(err, errorvalues.ErrArchiveNotFound):
		return nil, fmt.Errorf("searching archive error: %w", err)
	}

	winner, err := as.records.FindMax(ctx)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			logger.Info("no engagement records, nothing to archive")
			return nil, nil
		}
		return nil, fmt.Errorf("selecting winner error: %w", err)
	}
	profile, err := as.users.GetProfile(ctx, winner.UserID)
	if err != nil {
		if !errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, fmt.Errorf("getting winner profile error: %w", err)
		}
		profile = &entity.UserProfile{UserID: winner.UserID}
	}
	archive := &entity.MonthlyWinnerArchive{
		ID:         uuid.New(),
		Month:      month,
		Year:       year,
		UserID:     winner.UserID,
		Profile:    *profile,
		Stats:      ledger.Snapshot(winner),
		ArchivedAt: now,
	}
	err = as.archives.Insert(ctx, archive)
	switch {
	case err == nil:
		archivesCreatedTotal.Inc()
		logger.Info("monthly winner archived",
			slog.String("uid", winner.UserID.String()),
			slog.Int("focus_masters_score", winner.FocusMastersScore),
		)
	case errors.Is(err, errorvalues.ErrArchiveExists):
		// Another instance won the race
		archive, err = as.archives.FindByPeriod(ctx, month, year)
		if err != nil {
			return nil, fmt.Errorf("reloading archive error: %w", err)
		}
	default:
		return nil, fmt.Errorf("inserting archive error: %w", err)
	}
	if err = as.grantLegend(ctx, archive.UserID); err != nil {
		return nil, err
	}
	return archive, nil
}

func (as *ArchiveService) grantLegend(ctx context.Context, uid uuid.UUID) error {
	rec, err := as.records.Load(ctx, uid)
	if err == nil && rec.HasTitle(entity.TitleLegendBabua) {
		return nil
	}
	if err != nil && !errors.Is(err, errorvalues.ErrRecordNotFound) {
		return fmt.Errorf("loading winner record error: %w", err)
	}
	now := as.clock.Now()
	granted := false
	_, err = as.records.Modify(ctx, uid, func(rec *entity.EngagementRecord) error {
		_, granted = ledger.GrantTitle(rec, entity.TitleLegendBabua, now)
		return nil
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			as.logger.Warn("winner account is gone, legend title skipped", slog.String("uid", uid.String()))
			return nil
		}
		return fmt.Errorf("granting legend title error: %w", err)
	}
	if granted {
		titlesAwardedTotal.WithLabelValues(string(entity.TitleLegendBabua)).Inc()
	}
	return nil
}

func (as *ArchiveService) GetArchive(ctx context.Context, month, year int) (*entity.MonthlyWinnerArchive, error) {
	if month < 1 || month > 12 || year < 1970 || year > 9999 {
		return nil, errorvalues.ErrInvalidPeriod
	}
	archive, err := as.archives.FindByPeriod(ctx, month, year)
	if err != nil {
		if errors.Is(err, errorvalues.ErrArchiveNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("getting archive error: %w", err)
	}
	return archive, nil
}

func (as *ArchiveService) ListArchives(ctx context.Context, pagination PaginationOpts) ([]*entity.MonthlyWinnerArchive, error) {
	archives, err := as.archives.List(ctx, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, fmt.Errorf("listing archives error: %w", err)
	}
	return archives, nil
}
