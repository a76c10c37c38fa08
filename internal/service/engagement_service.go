package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/adhyaya/internal/error_values"
	"github.com/limbo/adhyaya/internal/ledger"
	"github.com/limbo/adhyaya/internal/repository"
	"github.com/limbo/adhyaya/pkg/clock"
	"github.com/limbo/adhyaya/pkg/entity"
)

type EngagementService struct {
	records repository.EngagementRepositoryI
	clock   clock.Clock
	logger  *slog.Logger
}

func NewEngagementService(records repository.EngagementRepositoryI, clk clock.Clock, logger *slog.Logger) *EngagementService {
	if records == nil || clk == nil {
		log.Fatal("on engagement service provided nil dependencies")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &EngagementService{
		records: records,
		clock:   clk,
		logger:  logger.With(slog.String("component", "engagement_service")),
	}
}

func (es *EngagementService) TrackSession(ctx context.Context, req *TrackSessionRequest) (*TrackSessionResult, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	now := es.clock.Now()
	activityDate := now
	if !req.ActivityDate.IsZero() {
		activityDate = req.ActivityDate.In(now.Location())
	}
	if ledger.StartOfDay(activityDate).After(ledger.StartOfDay(now)) {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("activity date is in the future"))
	}
	var (
		earned    []entity.Title
		backdated bool
	)
	rec, err := es.records.Modify(ctx, req.UserID, func(rec *entity.EngagementRecord) error {
		backdated = false
		ledger.RolloverPeriods(rec, now)
		if err := ledger.RecordActivity(rec, activityDate); err != nil {
			if !errors.Is(err, errorvalues.ErrBackdatedActivity) {
				return err
			}
			// Minutes still count, the streak is left alone
			backdated = true
		}
		ledger.ApplySession(rec, entity.ActivityEvent{
			UserID:         req.UserID,
			ActivityDate:   activityDate,
			MinutesFocused: req.MinutesFocused,
			IsDeepFocus:    req.IsDeepFocus,
		})
		rec.ConsistencyScore = ledger.ConsistencyScore(rec.SessionsPlanned, rec.SessionsCompleted)
		ledger.ComputeFocusMastersScore(rec)
		earned = ledger.AwardTitles(rec, now)
		return nil
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("tracking session error: %w", err)
	}
	focusSessionsTotal.WithLabelValues(sessionKind(req.IsDeepFocus)).Inc()
	focusMinutesTotal.Add(float64(req.MinutesFocused))
	if backdated {
		backdatedActivityTotal.Inc()
		es.logger.Warn("backdated activity, streak unchanged",
			slog.String("uid", req.UserID.String()),
			slog.Time("activity_date", activityDate),
		)
	}
	for _, t := range earned {
		titlesAwardedTotal.WithLabelValues(string(t.TitleID)).Inc()
		es.logger.Info("title earned",
			slog.String("uid", req.UserID.String()),
			slog.String("title_id", string(t.TitleID)),
		)
	}
	return &TrackSessionResult{
		Record:    rec,
		NewTitles: earned,
	}, nil
}

func (es *EngagementService) PlanSessions(ctx context.Context, req *PlanSessionsRequest) (*entity.EngagementRecord, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	now := es.clock.Now()
	rec, err := es.records.Modify(ctx, req.UserID, func(rec *entity.EngagementRecord) error {
		ledger.RolloverPeriods(rec, now)
		rec.SessionsPlanned += req.Count
		rec.ConsistencyScore = ledger.ConsistencyScore(rec.SessionsPlanned, rec.SessionsCompleted)
		ledger.ComputeFocusMastersScore(rec)
		return nil
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("planning sessions error: %w", err)
	}
	return rec, nil
}

// GetStats rolls stale buckets over before answering. The rollover is only
// written back when something actually changed.
func (es *EngagementService) GetStats(ctx context.Context, uid uuid.UUID) (*entity.EngagementRecord, error) {
	now := es.clock.Now()
	rec, err := es.records.Load(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			return freshRecord(uid, now), nil
		}
		return nil, fmt.Errorf("loading stats error: %w", err)
	}
	probe := *rec
	res := ledger.RolloverPeriods(&probe, now)
	if !res.WeekReset && !res.MonthReset {
		return rec, nil
	}
	rec, err = es.records.Modify(ctx, uid, func(rec *entity.EngagementRecord) error {
		ledger.RolloverPeriods(rec, now)
		ledger.ComputeFocusMastersScore(rec)
		return nil
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("rolling over stats error: %w", err)
	}
	es.logger.Debug("periods rolled over",
		slog.String("uid", uid.String()),
		slog.Bool("week", res.WeekReset),
		slog.Bool("month", res.MonthReset),
	)
	return rec, nil
}

func (es *EngagementService) SetActiveTitle(ctx context.Context, uid uuid.UUID, id *entity.TitleID) (*entity.EngagementRecord, error) {
	if id != nil && !id.Valid() {
		return nil, errorvalues.ErrUnknownTitle
	}
	rec, err := es.records.Modify(ctx, uid, func(rec *entity.EngagementRecord) error {
		return ledger.SetActiveTitle(rec, id)
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound),
			errors.Is(err, errorvalues.ErrTitleNotEarned),
			errors.Is(err, errorvalues.ErrUnknownTitle):
			return nil, err
		}
		return nil, fmt.Errorf("setting active title error: %w", err)
	}
	return rec, nil
}

func (es *EngagementService) Leaderboard(ctx context.Context, pagination PaginationOpts) ([]*entity.LeaderboardEntry, error) {
	entries, err := es.records.Top(ctx, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, fmt.Errorf("leaderboard error: %w", err)
	}
	return entries, nil
}

func freshRecord(uid uuid.UUID, now time.Time) *entity.EngagementRecord {
	rec := &entity.EngagementRecord{
		UserID:    uid,
		Titles:    make([]entity.Title, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
	ledger.RolloverPeriods(rec, now)
	return rec
}
