package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dafibh/nivesh/nivesh-backend/internal/domain"
	"github.com/dafibh/nivesh/nivesh-backend/internal/testutil"
	"github.com/dafibh/nivesh/nivesh-backend/internal/util"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProjectionWorker() (*ProjectionWorker, *testutil.MockPlanRepository, *testutil.MockEventPublisher) {
	planRepo := testutil.NewMockPlanRepository()
	publisher := testutil.NewMockEventPublisher()
	projections := NewProjectionService(NewPlanService(planRepo, nil), util.FixedClock(2026))

	config := ProjectionWorkerConfig{
		Interval: 100 * time.Millisecond, // Fast interval for testing
	}

	worker := NewProjectionWorker(projections, planRepo, publisher, zerolog.Nop(), config)
	return worker, planRepo, publisher
}

func TestProjectionWorker_NewProjectionWorker(t *testing.T) {
	worker, _, _ := setupProjectionWorker()

	assert.NotNil(t, worker)
	assert.Equal(t, 100*time.Millisecond, worker.interval)
	assert.False(t, worker.IsRunning())
}

func TestProjectionWorker_DefaultConfig(t *testing.T) {
	assert.Equal(t, 1*time.Hour, DefaultProjectionWorkerConfig().Interval)

	worker := NewProjectionWorker(nil, nil, nil, zerolog.Nop(), ProjectionWorkerConfig{})
	assert.Equal(t, 1*time.Hour, worker.interval)
}

func TestProjectionWorker_SyncWorkspace(t *testing.T) {
	worker, planRepo, publisher := setupProjectionWorker()
	planRepo.AddPlan(domain.DefaultPlan(5))

	require.NoError(t, worker.SyncWorkspace(5))

	events := publisher.Published()
	require.Len(t, events, 1)
	assert.Equal(t, int32(5), events[0].WorkspaceID)
	assert.Equal(t, "projection.synced", events[0].Event.Type)

	payload, ok := events[0].Event.Payload.(ProjectionSyncPayload)
	require.True(t, ok)
	assert.Equal(t, 2026, payload.BaseYear)
	assert.Equal(t, 2056, payload.FinalYear)
	assert.Equal(t, 40, payload.WellnessScore)
	assert.Equal(t, "20000.00", payload.MonthlySavings)
	assert.NotEmpty(t, payload.FinalValue)
}

func TestProjectionWorker_SyncAll(t *testing.T) {
	worker, planRepo, publisher := setupProjectionWorker()
	planRepo.AddPlan(domain.DefaultPlan(1))
	planRepo.AddPlan(domain.DefaultPlan(2))
	planRepo.AddPlan(domain.DefaultPlan(3))

	result := worker.syncAll(context.Background())

	assert.Equal(t, SyncResult{Workspaces: 3, Published: 3}, result)
	assert.Len(t, publisher.Published(), 3)
}

func TestProjectionWorker_SyncAllListError(t *testing.T) {
	worker, planRepo, publisher := setupProjectionWorker()
	planRepo.ListErr = errors.New("connection refused")

	result := worker.syncAll(context.Background())

	assert.Equal(t, 1, result.Errors)
	assert.Empty(t, publisher.Published())
}

func TestProjectionWorker_SyncAllStopsOnCancelledContext(t *testing.T) {
	worker, planRepo, publisher := setupProjectionWorker()
	planRepo.AddPlan(domain.DefaultPlan(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := worker.syncAll(ctx)

	assert.Equal(t, 0, result.Published)
	assert.Empty(t, publisher.Published())
}

func TestProjectionWorker_StartStop(t *testing.T) {
	worker, planRepo, publisher := setupProjectionWorker()
	planRepo.AddPlan(domain.DefaultPlan(1))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker.Start(ctx)
	assert.True(t, worker.IsRunning())

	// Starting twice is a no-op
	worker.Start(ctx)

	assert.Eventually(t, func() bool {
		return len(publisher.Published()) >= 2
	}, 2*time.Second, 20*time.Millisecond, "expected the initial sync and at least one tick")

	worker.Stop()
	assert.False(t, worker.IsRunning())

	// Stopping twice is a no-op
	worker.Stop()
}

func TestProjectionWorker_ContextCancellation(t *testing.T) {
	worker, _, _ := setupProjectionWorker()

	ctx, cancel := context.WithCancel(context.Background())
	worker.Start(ctx)
	cancel()

	assert.Eventually(t, func() bool {
		return !worker.IsRunning()
	}, time.Second, 10*time.Millisecond)
}
