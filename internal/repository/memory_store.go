package repository

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/adhyaya/internal/error_values"
	"github.com/limbo/adhyaya/internal/ledger"
	"github.com/limbo/adhyaya/pkg/clock"
	"github.com/limbo/adhyaya/pkg/entity"
)

type archiveKey struct {
	month int
	year  int
}

// MemoryStore keeps users, engagement records and archives in process memory.
// It satisfies the same interfaces as the postgres repositories and is used
// for local runs and tests. Everything handed out is a copy.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[uuid.UUID]*entity.User
	records  map[uuid.UUID]*entity.EngagementRecord
	archives map[archiveKey]*entity.MonthlyWinnerArchive
	clock    clock.Clock
}

type MemoryStoreOption func(s *MemoryStore)

// WithStoreClock sets the clock record timestamps are taken from. CreatedAt
// breaks leaderboard ties, so tests pin it.
func WithStoreClock(clk clock.Clock) MemoryStoreOption {
	return func(s *MemoryStore) {
		if clk != nil {
			s.clock = clk
		}
	}
}

func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		users:    make(map[uuid.UUID]*entity.User),
		records:  make(map[uuid.UUID]*entity.EngagementRecord),
		archives: make(map[archiveKey]*entity.MonthlyWinnerArchive),
		clock:    clock.System{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Users

func (s *MemoryStore) Create(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Name == user.Name {
			return errorvalues.ErrUserExists
		}
	}
	stored := *user
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	s.users[stored.ID] = &stored
	return nil
}

func (s *MemoryStore) FindByName(ctx context.Context, name string) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Name == name {
			res := *u
			return &res, nil
		}
	}
	return nil, errorvalues.ErrUserNotFound
}

func (s *MemoryStore) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[uid]
	if !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	res := *u
	return &res, nil
}

func (s *MemoryStore) GetProfile(ctx context.Context, uid uuid.UUID) (*entity.UserProfile, error) {
	u, err := s.FindByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	return &entity.UserProfile{
		UserID:      u.ID,
		Name:        u.Name,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
	}, nil
}

func (s *MemoryStore) Delete(ctx context.Context, uid uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[uid]; !ok {
		return errorvalues.ErrUserNotFound
	}
	delete(s.users, uid)
	delete(s.records, uid)
	return nil
}

// Engagement records

func (s *MemoryStore) Load(ctx context.Context, uid uuid.UUID) (*entity.EngagementRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[uid]
	if !ok {
		return nil, errorvalues.ErrRecordNotFound
	}
	return cloneRecord(rec), nil
}

func (s *MemoryStore) Modify(ctx context.Context, uid uuid.UUID, fn ModifyFunc) (*entity.EngagementRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[uid]; !ok {
		return nil, errorvalues.ErrUserNotFound
	}
	var work *entity.EngagementRecord
	if stored, ok := s.records[uid]; ok {
		work = cloneRecord(stored)
	} else {
		now := s.clock.Now().UTC()
		work = &entity.EngagementRecord{
			UserID:    uid,
			Titles:    make([]entity.Title, 0),
			CreatedAt: now,
			UpdatedAt: now,
		}
	}
	if err := fn(work); err != nil {
		return nil, err
	}
	work.UpdatedAt = s.clock.Now().UTC()
	s.records[uid] = cloneRecord(work)
	return work, nil
}

func (s *MemoryStore) FindMax(ctx context.Context) (*entity.EngagementRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]*entity.EngagementRecord, 0, len(s.records))
	for _, rec := range s.records {
		all = append(all, rec)
	}
	winner := ledger.SelectWinner(all)
	if winner == nil {
		return nil, errorvalues.ErrRecordNotFound
	}
	return cloneRecord(winner), nil
}

func (s *MemoryStore) Top(ctx context.Context, limit, offset int) ([]*entity.LeaderboardEntry, error) {
	if limit <= 0 || offset < 0 {
		return make([]*entity.LeaderboardEntry, 0), nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	ranked := make([]*entity.EngagementRecord, 0, len(s.records))
	for uid, rec := range s.records {
		if _, ok := s.users[uid]; ok {
			ranked = append(ranked, rec)
		}
	}
	slices.SortFunc(ranked, func(a, b *entity.EngagementRecord) int {
		switch {
		case ledger.Outranks(a, b):
			return -1
		case ledger.Outranks(b, a):
			return 1
		}
		return 0
	})
	entries := make([]*entity.LeaderboardEntry, 0, min(limit, len(ranked)))
	for i := offset; i < len(ranked) && len(entries) < limit; i++ {
		rec := ranked[i]
		entries = append(entries, &entity.LeaderboardEntry{
			Rank:              i + 1,
			UserID:            rec.UserID,
			Name:              s.users[rec.UserID].Name,
			FocusMastersScore: rec.FocusMastersScore,
			CurrentStreak:     rec.CurrentStreak,
			ActiveTitle:       cloneTitleID(rec.ActiveTitle),
		})
	}
	return entries, nil
}

// Archives

func (s *MemoryStore) FindByPeriod(ctx context.Context, month, year int) (*entity.MonthlyWinnerArchive, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	archive, ok := s.archives[archiveKey{month: month, year: year}]
	if !ok {
		return nil, errorvalues.ErrArchiveNotFound
	}
	return cloneArchive(archive), nil
}

func (s *MemoryStore) Insert(ctx context.Context, archive *entity.MonthlyWinnerArchive) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := archiveKey{month: archive.Month, year: archive.Year}
	if _, ok := s.archives[key]; ok {
		return errorvalues.ErrArchiveExists
	}
	s.archives[key] = cloneArchive(archive)
	return nil
}

func (s *MemoryStore) List(ctx context.Context, limit, offset int) ([]*entity.MonthlyWinnerArchive, error) {
	if limit <= 0 || offset < 0 {
		return make([]*entity.MonthlyWinnerArchive, 0), nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	all := make([]*entity.MonthlyWinnerArchive, 0, len(s.archives))
	for _, a := range s.archives {
		all = append(all, a)
	}
	slices.SortFunc(all, func(a, b *entity.MonthlyWinnerArchive) int {
		if a.Year != b.Year {
			return b.Year - a.Year
		}
		return b.Month - a.Month
	})
	result := make([]*entity.MonthlyWinnerArchive, 0, min(limit, len(all)))
	for i := offset; i < len(all) && len(result) < limit; i++ {
		result = append(result, cloneArchive(all[i]))
	}
	return result, nil
}

func cloneRecord(rec *entity.EngagementRecord) *entity.EngagementRecord {
	c := *rec
	c.LastActiveDate = cloneTime(rec.LastActiveDate)
	c.WeekStartDate = cloneTime(rec.WeekStartDate)
	c.MonthStartDate = cloneTime(rec.MonthStartDate)
	c.Titles = append(make([]entity.Title, 0, len(rec.Titles)), rec.Titles...)
	c.ActiveTitle = cloneTitleID(rec.ActiveTitle)
	return &c
}

func cloneTitleID(id *entity.TitleID) *entity.TitleID {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func cloneArchive(a *entity.MonthlyWinnerArchive) *entity.MonthlyWinnerArchive {
	c := *a
	c.Stats.Titles = append(make([]entity.TitleID, 0, len(a.Stats.Titles)), a.Stats.Titles...)
	return &c
}
