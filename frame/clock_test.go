// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"slices"
	"sync/atomic"
	"testing"
	"time"
)

func TestManualClockTickOrder(t *testing.T) {
	c := NewManualClock()
	var order []int
	for i := range 3 {
		c.RequestFrame(func() { order = append(order, i) })
	}
	if n := c.Tick(); n != 3 {
		t.Errorf("Tick() = %d, want 3", n)
	}
	if !slices.Equal(order, []int{0, 1, 2}) {
		t.Errorf("order = %v, want [0 1 2]", order)
	}
	if c.Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", c.Ticks())
	}
}

func TestManualClockRequestDuringTick(t *testing.T) {
	c := NewManualClock()
	ran := 0
	c.RequestFrame(func() {
		ran++
		c.RequestFrame(func() { ran++ })
	})
	c.Tick()
	if ran != 1 {
		t.Fatalf("ran = %d after first tick, want 1", ran)
	}
	c.Tick()
	if ran != 2 {
		t.Errorf("ran = %d after second tick, want 2", ran)
	}
}

func TestManualClockCancelFrame(t *testing.T) {
	c := NewManualClock()
	ran := false
	cancel := c.RequestFrame(func() { ran = true })
	cancel()
	cancel()
	c.Tick()
	if ran {
		t.Error("cancelled frame ran")
	}
}

func TestManualClockAdvance(t *testing.T) {
	c := NewManualClock()
	var fired []string
	c.AfterFunc(30*time.Millisecond, func() { fired = append(fired, "b") })
	c.AfterFunc(10*time.Millisecond, func() {
		fired = append(fired, "a")
		c.AfterFunc(5*time.Millisecond, func() { fired = append(fired, "a2") })
	})
	cancel := c.AfterFunc(20*time.Millisecond, func() { fired = append(fired, "x") })
	cancel()

	c.Advance(25 * time.Millisecond)
	if !slices.Equal(fired, []string{"a", "a2"}) {
		t.Errorf("fired = %v, want [a a2]", fired)
	}
	if got := c.Now(); got != 25*time.Millisecond {
		t.Errorf("Now() = %v, want 25ms", got)
	}

	c.Advance(5 * time.Millisecond)
	if !slices.Equal(fired, []string{"a", "a2", "b"}) {
		t.Errorf("fired = %v, want [a a2 b]", fired)
	}
	if c.PendingTimers() != 0 {
		t.Errorf("PendingTimers() = %d, want 0", c.PendingTimers())
	}
}

func TestTickerClockDeliversFrames(t *testing.T) {
	c := NewTickerClock(time.Millisecond)
	defer c.Stop()

	done := make(chan struct{})
	c.RequestFrame(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("frame callback did not run")
	}
}

func TestTickerClockCancel(t *testing.T) {
	c := NewTickerClock(time.Millisecond)
	defer c.Stop()

	var ran atomic.Bool
	cancel := c.RequestFrame(func() { ran.Store(true) })
	cancel()

	done := make(chan struct{})
	c.RequestFrame(func() { close(done) })
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("frame callback did not run")
	}
	if ran.Load() {
		t.Error("cancelled frame ran")
	}
}

func TestTickerClockAfterFunc(t *testing.T) {
	c := NewTickerClock(0)
	defer c.Stop()

	done := make(chan struct{})
	c.AfterFunc(time.Millisecond, func() { close(done) })
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}
}

func TestTickerClockStopIdempotent(t *testing.T) {
	c := NewTickerClock(time.Millisecond)
	c.RequestFrame(func() {})
	c.Stop()
	c.Stop()
}

func TestSchedulerWithTickerClock(t *testing.T) {
	c := NewTickerClock(time.Millisecond)
	defer c.Stop()

	painted := make(chan struct{}, 16)
	s := New(c, func() { painted <- struct{}{} })
	defer s.Close()

	for range 10 {
		s.Request()
	}
	select {
	case <-painted:
	case <-time.After(2 * time.Second):
		t.Fatal("no paint")
	}
	if got := s.Frames(); got < 1 {
		t.Errorf("Frames() = %d, want >= 1", got)
	}
}
