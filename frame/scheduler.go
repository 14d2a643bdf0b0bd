// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"bytes"
	"log/slog"
	"runtime"
	"strconv"
	"sync"
	"time"
)

// State is the scheduler state.
type State uint8

const (
	// Idle means no paint is pending.
	Idle State = iota
	// Scheduled means a frame has been requested and the paint will run
	// on it.
	Scheduled
	// Painting means the paint function is running.
	Painting
	// Closed means the scheduler was torn down.
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Scheduled:
		return "scheduled"
	case Painting:
		return "painting"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}

// DefaultDebounce is the delay between the last debounced request and the
// repaint it schedules.
const DefaultDebounce = 50 * time.Millisecond

// Option configures a Scheduler.
type Option func(*options)

type options struct {
	debounce time.Duration
	logger   *slog.Logger
}

// WithDebounce sets the debounce delay used by RequestDebounced. A
// non-positive value selects DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.debounce = d
		}
	}
}

// WithLogger sets the logger for scheduling decisions, logged at debug
// level. By default nothing is logged.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Scheduler runs a paint function at most once per frame.
//
// Scheduler is safe for concurrent use. The paint function runs on the
// clock's frame goroutine without any scheduler lock held, so it may call
// Request or Close.
type Scheduler struct {
	clock    Clock
	paint    func()
	debounce time.Duration
	log      *slog.Logger

	mu          sync.Mutex
	state       State
	again       bool
	cancelFrame CancelFunc
	cancelTimer CancelFunc
	timerGen    uint64
	frames      uint64

	// painter is the goroutine running the paint function, 0 when none.
	painter uint64
	idle    sync.Cond
}

// New returns an idle scheduler that calls paint on frames from clock.
func New(clock Clock, paint func(), opts ...Option) *Scheduler {
	o := options{
		debounce: DefaultDebounce,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}
	s := &Scheduler{
		clock:    clock,
		paint:    paint,
		debounce: o.debounce,
		log:      o.logger,
	}
	s.idle.L = &s.mu
	return s
}

// Request asks for a paint on the next frame. Requests made while a paint
// is already scheduled are coalesced into it. A request made while painting
// schedules exactly one more frame.
func (s *Scheduler) Request() {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case Idle:
		s.schedule()
	case Painting:
		s.again = true
	case Scheduled, Closed:
	}
}

// schedule requests a frame. s.mu must be held.
func (s *Scheduler) schedule() {
	s.state = Scheduled
	s.cancelFrame = s.clock.RequestFrame(s.runFrame)
	s.log.Debug("frame: paint scheduled")
}

// RequestDebounced restarts the debounce timer. When it expires without
// another RequestDebounced, Request is called.
func (s *Scheduler) RequestDebounced() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == Closed {
		return
	}
	if s.cancelTimer != nil {
		s.cancelTimer()
	}
	s.timerGen++
	gen := s.timerGen
	s.cancelTimer = s.clock.AfterFunc(s.debounce, func() { s.fireDebounce(gen) })
}

func (s *Scheduler) fireDebounce(gen uint64) {
	s.mu.Lock()
	// A stale timer may fire concurrently with its replacement being set.
	if gen != s.timerGen || s.state == Closed {
		s.mu.Unlock()
		return
	}
	s.cancelTimer = nil
	s.mu.Unlock()

	s.Request()
}

func (s *Scheduler) runFrame() {
	s.mu.Lock()
	if s.state != Scheduled {
		s.mu.Unlock()
		return
	}
	s.state = Painting
	s.cancelFrame = nil
	s.frames++
	s.painter = goid()
	s.mu.Unlock()

	defer s.endPaint()
	s.paint()
}

func (s *Scheduler) endPaint() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.painter = 0
	s.idle.Broadcast()
	if s.state == Closed {
		return
	}
	if s.again {
		s.again = false
		s.schedule()
		return
	}
	s.state = Idle
}

// State returns the current state.
func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Frames returns the number of frames on which the paint function ran.
func (s *Scheduler) Frames() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Close cancels the pending frame and debounce timer. Later requests do
// nothing. If a paint is running on another goroutine, Close waits for it
// to return, so nothing is painted after Close returns. Called from within
// the paint function, Close returns without waiting. Close is idempotent.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Closed {
		s.state = Closed
		s.again = false
		if s.cancelFrame != nil {
			s.cancelFrame()
			s.cancelFrame = nil
		}
		if s.cancelTimer != nil {
			s.cancelTimer()
			s.cancelTimer = nil
		}
		s.timerGen++
		s.log.Debug("frame: scheduler closed")
	}
	if s.painter == 0 {
		return
	}
	self := goid()
	for s.painter != 0 && s.painter != self {
		s.idle.Wait()
	}
}

// goid returns the id of the calling goroutine.
func goid() uint64 {
	var buf [64]byte
	b := buf[:runtime.Stack(buf[:], false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, _ := strconv.ParseUint(string(b), 10, 64)
	return id
}
