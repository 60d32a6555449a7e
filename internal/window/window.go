// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package window provides a time-bounded FIFO of frame samples with a
// running sum, used to compute a rolling average frame time.
//
// A Window is not safe for concurrent use. It is owned by a single render
// loop.
package window

import "time"

// Sample is one frame-to-frame measurement.
type Sample struct {
	At    time.Time     // frame timestamp
	Delta time.Duration // time since the previous frame
}

// Window keeps the samples whose timestamp lies within Span of the most
// recent trim point.
type Window struct {
	span time.Duration
	buf  []Sample
	head int // index of the oldest live sample in buf
	sum  time.Duration
}

// New creates an empty window covering span.
func New(span time.Duration) *Window {
	return &Window{span: span}
}

// Span returns the trailing duration the window covers.
func (w *Window) Span() time.Duration { return w.span }

// Len returns the number of live samples.
func (w *Window) Len() int { return len(w.buf) - w.head }

// Add appends a sample. Samples must be added in timestamp order.
func (w *Window) Add(s Sample) {
	w.buf = append(w.buf, s)
	w.sum += s.Delta
}

// Trim drops every sample older than now-Span.
func (w *Window) Trim(now time.Time) {
	cutoff := now.Add(-w.span)
	for w.head < len(w.buf) && w.buf[w.head].At.Before(cutoff) {
		w.sum -= w.buf[w.head].Delta
		w.buf[w.head] = Sample{}
		w.head++
	}
	w.compact()
}

// compact reclaims the dead prefix once it dominates the buffer.
func (w *Window) compact() {
	if w.head == 0 {
		return
	}
	if w.head == len(w.buf) {
		w.buf = w.buf[:0]
		w.head = 0
		w.sum = 0
		return
	}
	if w.head < len(w.buf)/2 {
		return
	}
	n := copy(w.buf, w.buf[w.head:])
	clear(w.buf[n:])
	w.buf = w.buf[:n]
	w.head = 0
}

// Mean returns the average delta of the live samples, or 0 when empty.
func (w *Window) Mean() time.Duration {
	n := w.Len()
	if n == 0 {
		return 0
	}
	return w.sum / time.Duration(n)
}

// Reset drops all samples.
func (w *Window) Reset() {
	clear(w.buf)
	w.buf = w.buf[:0]
	w.head = 0
	w.sum = 0
}
