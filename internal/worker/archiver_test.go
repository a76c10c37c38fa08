package worker_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/adhyaya/internal/repository"
	"github.com/limbo/adhyaya/internal/service"
	"github.com/limbo/adhyaya/internal/service/mocks"
	"github.com/limbo/adhyaya/internal/worker"
	"github.com/limbo/adhyaya/pkg/clock"
	"github.com/limbo/adhyaya/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyArchiverTicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	archiver := mocks.NewMockArchiveServiceI(ctrl)
	var calls atomic.Int32
	archiver.EXPECT().ArchiveMonthlyWinner(gomock.Any()).DoAndReturn(func(ctx context.Context) (*entity.MonthlyWinnerArchive, error) {
		switch calls.Add(1) {
		case 1:
			return nil, nil
		case 2:
			return nil, errors.New("db error")
		}
		return &entity.MonthlyWinnerArchive{ID: uuid.New(), Month: 2, Year: 2024}, nil
	}).MinTimes(3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		worker.NewMonthlyArchiver(archiver, 10*time.Millisecond, nil).Run(ctx)
		close(done)
	}()
	require.Eventually(t, func() bool { return calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("archiver did not stop after cancel")
	}
}

func TestMonthlyArchiverWithStore(t *testing.T) {
	store := repository.NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, &entity.User{Name: "asha", PasswordHash: "hash"}))
	u, err := store.FindByName(ctx, "asha")
	require.NoError(t, err)
	_, err = store.Modify(ctx, u.ID, func(rec *entity.EngagementRecord) error {
		rec.FocusMastersScore = 50
		return nil
	})
	require.NoError(t, err)
	as := service.NewArchiveService(store, store, store, &clock.Fixed{T: time.Date(2024, 3, 1, 0, 1, 0, 0, time.UTC)}, nil)

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		worker.NewMonthlyArchiver(as, 5*time.Millisecond, nil).Run(runCtx)
		close(done)
	}()
	require.Eventually(t, func() bool {
		_, err := store.FindByPeriod(ctx, 2, 2024)
		return err == nil
	}, 2*time.Second, 5*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()
	<-done

	archives, err := store.List(ctx, 10, 0)
	require.NoError(t, err)
	assert.Len(t, archives, 1)
	rec, err := store.Load(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, rec.HasTitle(entity.TitleLegendBabua))
	assert.Len(t, rec.Titles, 1)
}
