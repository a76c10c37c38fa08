package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/adhyaya/internal/error_values"
	"github.com/limbo/adhyaya/internal/repository"
	"github.com/limbo/adhyaya/internal/repository/mocks"
	"github.com/limbo/adhyaya/internal/service"
	"github.com/limbo/adhyaya/pkg/clock"
	"github.com/limbo/adhyaya/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, store *repository.MemoryStore, name string, fn repository.ModifyFunc) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, &entity.User{Name: name, PasswordHash: "hash", DisplayName: name}))
	u, err := store.FindByName(ctx, name)
	require.NoError(t, err)
	_, err = store.Modify(ctx, u.ID, fn)
	require.NoError(t, err)
	return u.ID
}

func countTitle(rec *entity.EngagementRecord, id entity.TitleID) int {
	n := 0
	for _, t := range rec.Titles {
		if t.TitleID == id {
			n++
		}
	}
	return n
}

func TestArchiveMonthlyWinnerIdempotent(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()
	seedUser(t, store, "asha", func(rec *entity.EngagementRecord) error {
		rec.FocusMastersScore = 40
		return nil
	})
	winner := seedUser(t, store, "ravi", func(rec *entity.EngagementRecord) error {
		rec.FocusMastersScore = 75
		rec.TotalFocusMinutes = 4000
		rec.CurrentStreak = 9
		rec.MaxStreak = 9
		return nil
	})
	clk := &clock.Fixed{T: testNow}
	as := service.NewArchiveService(store, store, store, clk, nil)

	first, err := as.ArchiveMonthlyWinner(ctx)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, 2, first.Month)
	assert.Equal(t, 2024, first.Year)
	assert.Equal(t, winner, first.UserID)
	assert.Equal(t, "ravi", first.Profile.Name)
	assert.Equal(t, 75, first.Stats.FocusMastersScore)
	assert.Equal(t, 9, first.Stats.CurrentStreak)

	clk.Advance(time.Hour)
	second, err := as.ArchiveMonthlyWinner(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.ArchivedAt, second.ArchivedAt)

	rec, err := store.Load(ctx, winner)
	require.NoError(t, err)
	assert.Equal(t, 1, countTitle(rec, entity.TitleLegendBabua))

	list, err := as.ListArchives(ctx, service.PaginationOpts{Limit: 10})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestArchiveMonthlyWinnerNoRecords(t *testing.T) {
	store := repository.NewMemoryStore()
	as := service.NewArchiveService(store, store, store, &clock.Fixed{T: testNow}, nil)
	archive, err := as.ArchiveMonthlyWinner(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, archive)
	_, err = store.FindByPeriod(context.Background(), 2, 2024)
	assert.ErrorIs(t, err, errorvalues.ErrArchiveNotFound)
}

func TestArchiveMonthlyWinnerTieBreak(t *testing.T) {
	clk := &clock.Fixed{T: testNow}
	store := repository.NewMemoryStore(repository.WithStoreClock(clk))
	seedUser(t, store, "asha", func(rec *entity.EngagementRecord) error {
		rec.FocusMastersScore = 60
		rec.TotalFocusMinutes = 900
		return nil
	})
	busier := seedUser(t, store, "ravi", func(rec *entity.EngagementRecord) error {
		rec.FocusMastersScore = 60
		rec.TotalFocusMinutes = 1200
		return nil
	})
	as := service.NewArchiveService(store, store, store, clk, nil)
	archive, err := as.ArchiveMonthlyWinner(context.Background())
	require.NoError(t, err)
	assert.Equal(t, busier, archive.UserID)
}

func TestArchiveMonthlyWinnerJanuary(t *testing.T) {
	store := repository.NewMemoryStore()
	seedUser(t, store, "asha", func(rec *entity.EngagementRecord) error {
		rec.FocusMastersScore = 10
		return nil
	})
	as := service.NewArchiveService(store, store, store, &clock.Fixed{T: time.Date(2024, 1, 1, 0, 5, 0, 0, time.UTC)}, nil)
	archive, err := as.ArchiveMonthlyWinner(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, archive.Month)
	assert.Equal(t, 2023, archive.Year)
}

func TestArchiveMonthlyWinnerMocked(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	winner := &entity.EngagementRecord{UserID: uid, FocusMastersScore: 88, Titles: []entity.Title{}}
	stored := &entity.MonthlyWinnerArchive{ID: uuid.New(), Month: 2, Year: 2024, UserID: uid}
	newService := func(t *testing.T) (*service.ArchiveService, *mocks.MockEngagementRepositoryI, *mocks.MockArchiveRepositoryI, *mocks.MockUsersRepositoryI) {
		ctrl := gomock.NewController(t)
		records := mocks.NewMockEngagementRepositoryI(ctrl)
		archives := mocks.NewMockArchiveRepositoryI(ctrl)
		users := mocks.NewMockUsersRepositoryI(ctrl)
		return service.NewArchiveService(records, archives, users, &clock.Fixed{T: testNow}, nil), records, archives, users
	}
	t.Run("lost insert race returns stored archive", func(t *testing.T) {
		as, records, archives, users := newService(t)
		gomock.InOrder(
			archives.EXPECT().FindByPeriod(gomock.Any(), 2, 2024).Return(nil, errorvalues.ErrArchiveNotFound),
			records.EXPECT().FindMax(gomock.Any()).Return(winner, nil),
			users.EXPECT().GetProfile(gomock.Any(), uid).Return(&entity.UserProfile{UserID: uid, Name: "asha"}, nil),
			archives.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errorvalues.ErrArchiveExists),
			archives.EXPECT().FindByPeriod(gomock.Any(), 2, 2024).Return(stored, nil),
		)
		legend := &entity.EngagementRecord{UserID: uid, Titles: []entity.Title{{TitleID: entity.TitleLegendBabua}}}
		records.EXPECT().Load(gomock.Any(), uid).Return(legend, nil)
		archive, err := as.ArchiveMonthlyWinner(ctx)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, archive.ID)
	})
	t.Run("existing archive finishes interrupted grant", func(t *testing.T) {
		as, records, archives, _ := newService(t)
		rec := &entity.EngagementRecord{UserID: uid, Titles: []entity.Title{}}
		archives.EXPECT().FindByPeriod(gomock.Any(), 2, 2024).Return(stored, nil)
		records.EXPECT().Load(gomock.Any(), uid).Return(rec, nil)
		records.EXPECT().Modify(gomock.Any(), uid, gomock.Any()).DoAndReturn(modifyOn(rec))
		archive, err := as.ArchiveMonthlyWinner(ctx)
		require.NoError(t, err)
		assert.Equal(t, stored.ID, archive.ID)
		assert.True(t, rec.HasTitle(entity.TitleLegendBabua))
	})
	t.Run("deleted winner keeps archive", func(t *testing.T) {
		as, records, archives, users := newService(t)
		archives.EXPECT().FindByPeriod(gomock.Any(), 2, 2024).Return(nil, errorvalues.ErrArchiveNotFound)
		records.EXPECT().FindMax(gomock.Any()).Return(winner, nil)
		users.EXPECT().GetProfile(gomock.Any(), uid).Return(nil, errorvalues.ErrUserNotFound)
		archives.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
		records.EXPECT().Load(gomock.Any(), uid).Return(nil, errorvalues.ErrRecordNotFound)
		records.EXPECT().Modify(gomock.Any(), uid, gomock.Any()).Return(nil, errorvalues.ErrUserNotFound)
		archive, err := as.ArchiveMonthlyWinner(ctx)
		require.NoError(t, err)
		assert.Equal(t, uid, archive.Profile.UserID)
		assert.Equal(t, 88, archive.Stats.FocusMastersScore)
	})
	t.Run("storage error", func(t *testing.T) {
		as, _, archives, _ := newService(t)
		archives.EXPECT().FindByPeriod(gomock.Any(), 2, 2024).Return(nil, errors.New("db error"))
		_, err := as.ArchiveMonthlyWinner(ctx)
		assert.Error(t, err)
	})
}

func TestGetArchive(t *testing.T) {
	store := repository.NewMemoryStore()
	as := service.NewArchiveService(store, store, store, &clock.Fixed{T: testNow}, nil)
	ctx := context.Background()
	for _, period := range [][2]int{{0, 2024}, {13, 2024}, {5, 10}} {
		_, err := as.GetArchive(ctx, period[0], period[1])
		assert.ErrorIs(t, err, errorvalues.ErrInvalidPeriod)
	}
	_, err := as.GetArchive(ctx, 5, 2024)
	assert.ErrorIs(t, err, errorvalues.ErrArchiveNotFound)
	require.NoError(t, store.Insert(ctx, &entity.MonthlyWinnerArchive{ID: uuid.New(), Month: 5, Year: 2024}))
	archive, err := as.GetArchive(ctx, 5, 2024)
	require.NoError(t, err)
	assert.Equal(t, 5, archive.Month)
}
