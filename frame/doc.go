// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package frame schedules repaints on animation frames.
//
// A Scheduler collapses any number of repaint requests made between two
// frames into a single paint on the next frame. Bursty sources such as
// resize notifications go through a debounce timer first, so a stream of
// them produces one paint after the stream settles.
//
// # States
//
//	Idle ──Request──▶ Scheduled ──frame──▶ Painting ──done──▶ Idle
//	                      ▲                    │
//	                      └── Request during ──┘
//	                          Painting
//
// Close moves any state to Closed, cancels the pending frame and the
// debounce timer, and makes every later request a no-op.
//
// # Clocks
//
// Frames and timers come from a Clock. TickerClock delivers frames from a
// goroutine at a fixed rate. ManualClock is driven explicitly and is meant
// for tests.
package frame
