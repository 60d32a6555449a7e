// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package quality

import (
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Its handler reports every level disabled, so
// the per-frame Debug call in the monitor costs one atomic load.
var discard = slog.New(slog.DiscardHandler)

var logger atomic.Pointer[slog.Logger]

func init() { logger.Store(discard) }

// SetLogger routes the package's diagnostics, and those of gpuprobe and
// hostenv, to l. Passing nil silences them again, which is the default.
// It is safe to call while a controller is running.
//
// Records by level:
//   - Debug: every frame monitor evaluation after the cooldown, and
//     unusable GPU backends
//   - Info: detection results, tier changes, manual tiers and resizes
//   - Warn: failed feature probes and unreadable host metadata
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = discard
	}
	logger.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger { return logger.Load() }
