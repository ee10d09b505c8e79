// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-research-os/internal/logger"
	"github.com/jonboulle/clockwork"
)

// DefaultReportSyncInterval is used by Start for a non-positive interval.
const DefaultReportSyncInterval = time.Minute

type clientReportSyncJob struct {
	syncService ClientReportSyncService
	preferences ClientPreferencesService
	clock       clockwork.Clock
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientReportSyncJob creates a job that calls syncService.SyncReports on a
// ticker while auto-sync is enabled. The job is idle until Start is called.
func NewClientReportSyncJob(syncService ClientReportSyncService, preferences ClientPreferencesService, clock clockwork.Clock, logger *logger.Logger) ClientReportSyncJob {
	return &clientReportSyncJob{
		syncService: syncService,
		preferences: preferences,
		clock:       clock,
		logger:      logger,
	}
}

// Start implements ClientReportSyncJob. The auto-sync preference is read on
// every tick, so toggling it takes effect without a restart.
func (j *clientReportSyncJob) Start(ctx context.Context, ideaID string, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultReportSyncInterval
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.stopLocked()

	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)

	go func() {
		defer j.wg.Done()
		t := j.clock.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.Chan():
				j.tick(jobCtx, ideaID)
			}
		}
	}()
}

func (j *clientReportSyncJob) tick(ctx context.Context, ideaID string) {
	if !j.preferences.AutoSyncEnabled(ctx) {
		return
	}
	if _, err := j.syncService.SyncReports(ctx, ideaID); err != nil {
		j.logger.Warn().Err(err).Str("func", "clientReportSyncJob.tick").Str("idea_id", ideaID).Msg("report sync failed")
	}
}

// Stop implements ClientReportSyncJob. Safe to call when the job is not running.
func (j *clientReportSyncJob) Stop() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.stopLocked()
}

// stopLocked cancels the running goroutine and waits for it. j.mu must be held;
// the goroutine never takes it.
func (j *clientReportSyncJob) stopLocked() {
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.wg.Wait()
}
