// Copyright 2025 The Grail Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package trace wraps differentiation calls with logging and step
// recording without altering their numeric results.
//
//	import (
//	    "log/slog"
//	    "os"
//
//	    "github.com/grail-ml/grail/trace"
//	)
//
//	func main() {
//	    rec := trace.New(slog.NewTextHandler(os.Stderr, nil))
//	    g := rec.Grad("square", func(x trace.Dual) trace.Dual { return x.Mul(x) }, 3)
//	    _ = g // 6, with the call logged and recorded
//	}
package trace

import (
	"log/slog"

	"github.com/grail-ml/grail/internal/dual"
	"github.com/grail-ml/grail/internal/trace"
)

// Dual re-exports the dual number type for wrapped callbacks.
type Dual = dual.Dual

// Step is one recorded call.
type Step = trace.Step

// Recorder logs and records wrapped calls.
type Recorder = trace.Recorder

// New returns a Recorder logging through handler.
func New(handler slog.Handler) *Recorder { return trace.New(handler) }

// Silent returns a Recorder that records steps without logging.
func Silent() *Recorder { return trace.Silent() }
