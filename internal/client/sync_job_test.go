// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nightlight-app/storysync/internal/logger"
	"github.com/nightlight-app/storysync/models"
)

// spyOrchestrator counts Sync invocations.
type spyOrchestrator struct {
	calls atomic.Int64
	err   error
}

func (s *spyOrchestrator) Sync(context.Context) (models.SyncStats, error) {
	s.calls.Add(1)
	return models.SyncStats{}, s.err
}

// ── Start / Stop ────────────────────────────────────────────────────────────

func TestSyncJob_Start_RunsPeriodically(t *testing.T) {
	spy := &spyOrchestrator{}
	job := NewSyncJob(spy, logger.Nop())
	require.NotNil(t, job)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "expected several ticks, got %d", got)
}

func TestSyncJob_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyOrchestrator{}
	job := NewSyncJob(spy, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no new cycles after Stop")
}

func TestSyncJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewSyncJob(&spyOrchestrator{}, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestSyncJob_ContextCancelStopsLoop(t *testing.T) {
	spy := &spyOrchestrator{}
	job := NewSyncJob(spy, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()
	time.Sleep(20 * time.Millisecond)

	callsAfterCancel := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterCancel, spy.calls.Load())
	job.Stop() // still safe after context cancellation
}

func TestSyncJob_Restart_ReplacesPreviousLoop(t *testing.T) {
	spy := &spyOrchestrator{}
	job := NewSyncJob(spy, logger.Nop())

	job.Start(context.Background(), time.Hour) // too slow to ever tick
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(2), "restart swaps in the faster interval")
}
