// Package autosave coalesces rapid answer edits into a single delayed save.
package autosave

import (
	"context"
	"sync"
	"time"

	"github.com/jywlabs/specgen/internal/catalog"
)

// DefaultDelay is the quiet period before a scheduled save runs.
const DefaultDelay = time.Second

// SaveFunc persists one answer set.
type SaveFunc func(ctx context.Context, answers catalog.Answers) error

// Saver holds at most one pending save. Every Schedule replaces the pending
// answers and restarts the timer; Flush bypasses the timer.
//
// Each save carries a sequence number and a save never runs after a newer
// one has started, so the last write always holds the newest answers.
type Saver struct {
	delay   time.Duration
	save    SaveFunc
	onError func(error)

	mu      sync.Mutex
	timer   *time.Timer
	pending catalog.Answers
	dirty   bool
	seq     uint64
	stopped bool
	running sync.WaitGroup

	writeMu sync.Mutex
	written uint64
}

// New creates a Saver. onError, if set, receives failures of timer-driven
// saves; Flush and Close return their errors directly.
func New(delay time.Duration, save SaveFunc, onError func(error)) *Saver {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Saver{
		delay:   delay,
		save:    save,
		onError: onError,
	}
}

// Schedule replaces any pending save with answers and restarts the timer.
func (s *Saver) Schedule(answers catalog.Answers) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopTimerLocked()

	s.seq++
	seq := s.seq
	s.pending = answers
	s.dirty = true
	s.timer = time.AfterFunc(s.delay, func() { s.fire(seq) })
}

func (s *Saver) fire(seq uint64) {
	s.mu.Lock()
	if s.stopped || !s.dirty || seq != s.seq {
		s.mu.Unlock()
		return
	}
	answers := s.pending
	s.pending = nil
	s.dirty = false
	s.timer = nil
	s.running.Add(1)
	s.mu.Unlock()

	defer s.running.Done()
	if err := s.write(context.Background(), seq, answers); err != nil && s.onError != nil {
		s.onError(err)
	}
}

// Flush cancels the pending timer and saves answers now.
func (s *Saver) Flush(ctx context.Context, answers catalog.Answers) error {
	s.mu.Lock()
	s.stopTimerLocked()
	s.pending = nil
	s.dirty = false
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	return s.write(ctx, seq, answers)
}

// Cancel drops the pending save without writing it.
func (s *Saver) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTimerLocked()
	s.pending = nil
	s.dirty = false
	s.seq++
}

// Pending reports whether a scheduled save has not run yet.
func (s *Saver) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// Close stops the Saver, writes any pending answers and waits for
// timer-driven saves already in progress.
func (s *Saver) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	s.stopTimerLocked()
	answers, dirty := s.pending, s.dirty
	s.pending = nil
	s.dirty = false
	s.seq++
	seq := s.seq
	s.mu.Unlock()

	var err error
	if dirty {
		err = s.write(ctx, seq, answers)
	}
	s.running.Wait()
	return err
}

func (s *Saver) write(ctx context.Context, seq uint64, answers catalog.Answers) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if seq < s.written {
		return nil
	}
	s.written = seq
	return s.save(ctx, answers)
}

func (s *Saver) stopTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
