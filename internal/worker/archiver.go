// Package worker runs periodic background jobs of the api process.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/limbo/adhyaya/pkg/entity"
)

type Archiver interface {
	ArchiveMonthlyWinner(ctx context.Context) (*entity.MonthlyWinnerArchive, error)
}

// MonthlyArchiver calls the archive job once on start and then every
// interval. The job is idempotent per period, so frequent ticks only
// matter right after a month boundary.
type MonthlyArchiver struct {
	archiver Archiver
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewMonthlyArchiver(archiver Archiver, interval time.Duration, logger *slog.Logger) *MonthlyArchiver {
	if interval <= 0 {
		interval = time.Hour
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MonthlyArchiver{
		archiver: archiver,
		interval: interval,
		timeout:  time.Minute,
		logger:   logger.With(slog.String("component", "monthly_archiver")),
	}
}

// Run blocks until ctx is cancelled.
func (w *MonthlyArchiver) Run(ctx context.Context) {
	w.logger.Info("monthly archiver started", slog.Duration("interval", w.interval))
	w.tick(ctx)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("monthly archiver stopped")
			return
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *MonthlyArchiver) tick(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	archive, err := w.archiver.ArchiveMonthlyWinner(ctx)
	if err != nil {
		w.logger.Error("monthly archive failed", slog.String("error", err.Error()))
		return
	}
	if archive == nil {
		w.logger.Debug("monthly archive skipped: no records")
		return
	}
	w.logger.Debug("monthly archive in place",
		slog.Int("month", archive.Month),
		slog.Int("year", archive.Year),
		slog.String("uid", archive.UserID.String()),
	)
}
