// Package trace wraps differentiation calls with logging and step
// recording.
//
// A Recorder is pure plumbing around the core: it logs entry and exit of
// each wrapped call through an injectable slog handler, appends the
// observed values to an in-memory step log, and returns the wrapped result
// bit-for-bit unchanged. It exists so effectful concerns never leak into
// the engines themselves.
package trace

import (
	"io"
	"log/slog"

	"github.com/grail-ml/grail/internal/dual"
)

// Step is one recorded call: the name given by the caller plus the input
// and output duals.
type Step struct {
	Name string
	In   dual.Dual
	Out  dual.Dual
}

// Recorder logs and records wrapped calls. The zero value is not usable;
// call New.
type Recorder struct {
	logger *slog.Logger
	steps  []Step
}

// New returns a Recorder logging through handler. Pass a discarding
// handler to record silently.
func New(handler slog.Handler) *Recorder {
	return &Recorder{logger: slog.New(handler)}
}

// Silent returns a Recorder that records steps without logging.
func Silent() *Recorder {
	return New(slog.NewTextHandler(io.Discard, nil))
}

// Apply invokes f(x), logging and recording the call. The returned value
// is exactly f(x); the wrapper never alters numerics.
func (r *Recorder) Apply(name string, f func(dual.Dual) dual.Dual, x dual.Dual) dual.Dual {
	r.logger.Debug("applying", "op", name, "primal", x.Primal, "tangent", x.Tangent)
	y := f(x)
	r.logger.Debug("applied", "op", name, "primal", y.Primal, "tangent", y.Tangent)
	r.steps = append(r.steps, Step{Name: name, In: x, Out: y})
	return y
}

// Grad computes the derivative of f at x through the recorder, logging the
// single wrapped call under name.
func (r *Recorder) Grad(name string, f func(dual.Dual) dual.Dual, x float64) float64 {
	return r.Apply(name, f, dual.Seed(x)).Tangent
}

// Steps returns the recorded calls in order.
func (r *Recorder) Steps() []Step {
	return r.steps
}

// Reset clears the step log.
func (r *Recorder) Reset() {
	r.steps = r.steps[:0]
}
