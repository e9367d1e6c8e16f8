package service

import (
	"context"
	"sync"
	"time"

	"github.com/dafibh/nivesh/nivesh-backend/internal/domain"
	"github.com/dafibh/nivesh/nivesh-backend/internal/websocket"
	"github.com/rs/zerolog"
)

// ProjectionWorker periodically recomputes every workspace's report and pushes it to
// connected clients. Years remaining change at the calendar rollover even when no
// plan was edited.
type ProjectionWorker struct {
	projectionService *ProjectionService
	planRepo          domain.PlanRepository
	publisher         websocket.EventPublisher
	logger            zerolog.Logger
	interval          time.Duration
	stopCh            chan struct{}
	doneCh            chan struct{}
	mu                sync.Mutex
	running           bool
}

// ProjectionWorkerConfig holds configuration for the projection worker
type ProjectionWorkerConfig struct {
	Interval time.Duration // How often to recompute
}

// DefaultProjectionWorkerConfig returns sensible defaults
func DefaultProjectionWorkerConfig() ProjectionWorkerConfig {
	return ProjectionWorkerConfig{
		Interval: 1 * time.Hour,
	}
}

// ProjectionSyncPayload is pushed with projection.synced events
type ProjectionSyncPayload struct {
	BaseYear       int    `json:"baseYear"`
	FinalYear      int    `json:"finalYear"`
	FinalValue     string `json:"finalValue"`
	WellnessScore  int    `json:"wellnessScore"`
	MonthlySavings string `json:"monthlySavings"`
}

// SyncResult summarizes one sync pass
type SyncResult struct {
	Workspaces int
	Published  int
	Errors     int
}

// NewProjectionWorker creates a new projection worker
func NewProjectionWorker(
	projectionService *ProjectionService,
	planRepo domain.PlanRepository,
	publisher websocket.EventPublisher,
	logger zerolog.Logger,
	config ProjectionWorkerConfig,
) *ProjectionWorker {
	if config.Interval <= 0 {
		config.Interval = 1 * time.Hour
	}
	if publisher == nil {
		publisher = &websocket.NoOpPublisher{}
	}

	return &ProjectionWorker{
		projectionService: projectionService,
		planRepo:          planRepo,
		publisher:         publisher,
		logger:            logger.With().Str("component", "projection_worker").Logger(),
		interval:          config.Interval,
		stopCh:            make(chan struct{}),
		doneCh:            make(chan struct{}),
	}
}

// Start begins the background sync
func (w *ProjectionWorker) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	w.logger.Info().Dur("interval", w.interval).Msg("Starting projection worker")

	go w.run(ctx)
}

// Stop gracefully stops the worker and waits for the current pass to finish
func (w *ProjectionWorker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()

	w.logger.Info().Msg("Stopping projection worker")
	close(w.stopCh)
	<-w.doneCh
	w.logger.Info().Msg("Projection worker stopped")
}

func (w *ProjectionWorker) run(ctx context.Context) {
	defer close(w.doneCh)
	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	w.syncAll(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.syncAll(ctx)
		}
	}
}

// syncAll recomputes and publishes the report of every workspace with a plan
func (w *ProjectionWorker) syncAll(ctx context.Context) SyncResult {
	w.logger.Debug().Msg("Starting projection sync for all workspaces")
	startTime := time.Now()

	ids, err := w.planRepo.ListWorkspaceIDs()
	if err != nil {
		w.logger.Error().Err(err).Msg("Failed to list workspaces for projection sync")
		return SyncResult{Errors: 1}
	}

	result := SyncResult{Workspaces: len(ids)}
	for _, id := range ids {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("Context cancelled, stopping sync")
			return result
		case <-w.stopCh:
			w.logger.Info().Msg("Stop signal received, stopping sync")
			return result
		default:
		}

		if err := w.SyncWorkspace(id); err != nil {
			w.logger.Error().Err(err).Int32("workspace_id", id).Msg("Failed to sync projection")
			result.Errors++
			continue
		}
		result.Published++
	}

	w.logger.Info().
		Int("workspaces", result.Workspaces).
		Int("published", result.Published).
		Int("errors", result.Errors).
		Dur("elapsed", time.Since(startTime)).
		Msg("Completed projection sync")
	return result
}

// SyncWorkspace recomputes one workspace's report and publishes projection.synced
func (w *ProjectionWorker) SyncWorkspace(workspaceID int32) error {
	pr, err := w.projectionService.GetReport(workspaceID)
	if err != nil {
		return err
	}

	report := pr.Report
	payload := ProjectionSyncPayload{
		BaseYear:       report.BaseYear,
		WellnessScore:  report.Wellness.Score,
		MonthlySavings: FormatMoney(report.MonthlySavings),
	}
	if n := len(report.Projection); n > 0 {
		last := report.Projection[n-1]
		payload.FinalYear = last.Year
		payload.FinalValue = FormatMoney(last.Value)
	}

	w.publisher.Publish(workspaceID, websocket.ProjectionSynced(payload))
	return nil
}

// IsRunning returns whether the worker is currently running
func (w *ProjectionWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}
