// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"slices"
	"sync"
	"time"
)

// CancelFunc cancels a pending frame callback or timer. Calling it after
// the callback ran, or more than once, does nothing.
type CancelFunc func()

// Clock supplies animation frames and timers.
type Clock interface {
	// RequestFrame runs fn once on the next frame.
	RequestFrame(fn func()) CancelFunc

	// AfterFunc runs fn once after d.
	AfterFunc(d time.Duration, fn func()) CancelFunc
}

// DefaultInterval is the frame interval of a 60 Hz display.
const DefaultInterval = time.Second / 60

// TickerClock delivers frames at a fixed interval from its own goroutine.
// Callbacks requested before a tick run on that tick, in request order.
//
// TickerClock is safe for concurrent use. Call Stop to release the
// goroutine.
type TickerClock struct {
	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]func()

	quit     chan struct{}
	stopOnce sync.Once
}

// NewTickerClock starts a clock ticking every interval. A non-positive
// interval selects DefaultInterval.
func NewTickerClock(interval time.Duration) *TickerClock {
	if interval <= 0 {
		interval = DefaultInterval
	}
	c := &TickerClock{
		pending: make(map[uint64]func()),
		quit:    make(chan struct{}),
	}
	go c.loop(interval)
	return c
}

func (c *TickerClock) loop(interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-c.quit:
			return
		case <-t.C:
			for _, fn := range c.take() {
				fn()
			}
		}
	}
}

// take removes and returns the pending callbacks in request order.
func (c *TickerClock) take() []func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.pending) == 0 {
		return nil
	}
	ids := make([]uint64, 0, len(c.pending))
	for id := range c.pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(), len(ids))
	for i, id := range ids {
		fns[i] = c.pending[id]
	}
	clear(c.pending)
	return fns
}

// RequestFrame implements Clock.
func (c *TickerClock) RequestFrame(fn func()) CancelFunc {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.pending[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.pending, id)
		c.mu.Unlock()
	}
}

// AfterFunc implements Clock using time.AfterFunc.
func (c *TickerClock) AfterFunc(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// Stop stops delivering frames. Pending callbacks are dropped. Stop is
// idempotent.
func (c *TickerClock) Stop() {
	c.stopOnce.Do(func() {
		close(c.quit)
		c.mu.Lock()
		clear(c.pending)
		c.mu.Unlock()
	})
}

type manualTimer struct {
	at time.Duration
	fn func()
}

// ManualClock is a deterministic Clock. Frames run only on Tick and timers
// fire only on Advance, both on the calling goroutine.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Duration
	nextID uint64
	frames map[uint64]func()
	timers map[uint64]manualTimer
	ticks  int
}

// NewManualClock returns a clock at virtual time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{
		frames: make(map[uint64]func()),
		timers: make(map[uint64]manualTimer),
	}
}

// RequestFrame implements Clock.
func (c *ManualClock) RequestFrame(fn func()) CancelFunc {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.frames[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.frames, id)
		c.mu.Unlock()
	}
}

// AfterFunc implements Clock.
func (c *ManualClock) AfterFunc(d time.Duration, fn func()) CancelFunc {
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.timers[id] = manualTimer{at: c.now + d, fn: fn}
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.timers, id)
		c.mu.Unlock()
	}
}

// Tick runs one frame: every callback requested before the call, in
// request order. Callbacks requested while ticking wait for the next Tick.
// It returns the number of callbacks run.
func (c *ManualClock) Tick() int {
	c.mu.Lock()
	ids := make([]uint64, 0, len(c.frames))
	for id := range c.frames {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	fns := make([]func(), len(ids))
	for i, id := range ids {
		fns[i] = c.frames[id]
	}
	clear(c.frames)
	c.ticks++
	c.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// Advance moves virtual time forward by d and fires every timer that falls
// due, earliest first. Timers created by a firing timer fire too if they
// fall within the window.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	end := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var (
			dueID uint64
			due   manualTimer
			found bool
		)
		for id, t := range c.timers {
			if t.at > end {
				continue
			}
			if !found || t.at < due.at || (t.at == due.at && id < dueID) {
				dueID, due, found = id, t, true
			}
		}
		if !found {
			c.now = end
			c.mu.Unlock()
			return
		}
		delete(c.timers, dueID)
		c.now = due.at
		c.mu.Unlock()

		due.fn()
	}
}

// Now returns the virtual time elapsed since creation.
func (c *ManualClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// PendingFrames returns the number of callbacks waiting for the next Tick.
func (c *ManualClock) PendingFrames() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.frames)
}

// PendingTimers returns the number of timers that have not fired.
func (c *ManualClock) PendingTimers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Ticks returns how many times Tick was called.
func (c *ManualClock) Ticks() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}
