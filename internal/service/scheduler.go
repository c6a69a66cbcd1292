// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-card-keeper/internal/config"
	"github.com/MKhiriev/go-card-keeper/internal/logger"
)

// Scheduler owns the two background sync triggers.
//
// The debounce timer is a pure debounce: every mutation restarts the wait,
// so a burst of edits produces exactly one sync attempt, at least the
// configured delay after the last edit. The periodic timer fires at a fixed
// interval and re-arms after every firing no matter how the attempt went,
// so a broken network never silences it.
//
// Manual sync actions cancel a pending debounce (the user already got their
// sync) and restart the periodic clock.
type Scheduler struct {
	runner           SyncRunner
	debounceDelay    time.Duration
	periodicInterval time.Duration
	logger           *logger.Logger

	mu       sync.Mutex
	debounce *time.Timer
	periodic *time.Timer
	stopped  bool

	wg sync.WaitGroup
}

func NewScheduler(runner SyncRunner, cfg config.Scheduler, log *logger.Logger) *Scheduler {
	return &Scheduler{
		runner:           runner,
		debounceDelay:    cfg.DebounceDelay,
		periodicInterval: cfg.PeriodicInterval,
		logger:           log,
	}
}

// Start arms the periodic timer. The debounce timer stays idle until the
// first mutation.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.armPeriodicLocked()
}

// NoteMutation restarts the debounce wait. Called by the bridge after every
// mutating action.
func (s *Scheduler) NoteMutation() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	if s.debounce != nil {
		s.debounce.Stop()
	}
	s.debounce = time.AfterFunc(s.debounceDelay, s.fireDebounce)
}

// NoteManualSync cancels a pending debounce and restarts the periodic
// clock. Called by the bridge after a caller-driven sync or fullSync.
func (s *Scheduler) NoteManualSync() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}

	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
	s.armPeriodicLocked()
}

// Stop cancels both timers and waits for any in-flight attempt to finish.
// The scheduler cannot be restarted.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
	if s.periodic != nil {
		s.periodic.Stop()
		s.periodic = nil
	}
	s.mu.Unlock()

	s.wg.Wait()

	s.logger.Info().Msg("auto-sync scheduler stopped")
}

func (s *Scheduler) armPeriodicLocked() {
	if s.periodic != nil {
		s.periodic.Stop()
	}
	s.periodic = time.AfterFunc(s.periodicInterval, s.firePeriodic)
}

func (s *Scheduler) fireDebounce() {
	if !s.begin() {
		return
	}
	defer s.wg.Done()

	s.attempt("debounce")
}

func (s *Scheduler) firePeriodic() {
	if !s.begin() {
		return
	}
	defer s.wg.Done()

	s.attempt("periodic")

	// re-arm unconditionally
	s.mu.Lock()
	if !s.stopped {
		s.armPeriodicLocked()
	}
	s.mu.Unlock()
}

// begin registers a firing with the wait group unless the scheduler is
// already stopped. Timer callbacks race with Stop; the stopped check under
// the mutex ensures Stop never misses an in-flight attempt.
func (s *Scheduler) begin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return false
	}
	s.wg.Add(1)
	return true
}

// attempt runs one automatic sync. Failures are logged and swallowed; an
// automatic trigger has no caller to report to.
func (s *Scheduler) attempt(trigger string) {
	outcome, err := s.runner.AttemptSync(context.Background(), AutoSync())
	if err != nil {
		s.logger.Error().Err(err).Str("trigger", trigger).Msg("auto-sync attempt failed")
		return
	}

	s.logger.Debug().
		Str("trigger", trigger).
		Str("outcome", string(outcome.Code)).
		Msg("auto-sync attempt finished")
}
