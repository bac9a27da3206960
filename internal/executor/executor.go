package executor

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
)

// StatusUnknown is the status reported for a check that failed or has
// not run yet.
//
// This is the executor-internal string form; the public reachable.Status
// constants map onto these values at the boundary, avoiding a circular
// dependency on the root package.
const StatusUnknown = "unknown"

// Spec describes one check loop to run.
//
// This is the executor-internal representation of a probe, decoupled
// from the public reachable.Probe type. The Check and Notify funcs are
// bound closures supplied by the root package.
type Spec struct {
	// ID is the stable identifier of the underlying target, used in logs.
	ID string

	// Interval is the time between the start of one check and the
	// start of the next. Zero means back-to-back checks.
	Interval time.Duration

	// OnChangeOnly suppresses Notify calls whose status equals the
	// previous one.
	OnChangeOnly bool

	// Check performs one availability check. It may block arbitrarily
	// long; the executor runs it on a goroutine of its own so it can
	// be abandoned on shutdown.
	Check func() (status string, err error)

	// Notify delivers a completed check's outcome. It runs on the
	// loop's goroutine, so invocations for one spec never overlap.
	Notify func(newStatus, oldStatus string, err error)
}

// outcome carries the result of one Check call from its goroutine back
// to the owning loop.
type outcome struct {
	status string
	err    error
}

// Executor runs one check loop per [Spec], all sharing a single
// cancellation signal per run.
//
// Start spawns the loops and returns immediately; Stop cancels the run
// and waits only for the loop goroutines, not for in-flight Check calls.
// A Check that is still blocked when the run is cancelled is detached:
// it finishes on its own goroutine and its result is discarded. This
// bounds Stop latency by cancellation-detection latency regardless of
// how slow any single check is.
//
// All lifecycle methods are safe for concurrent use. After Stop returns
// the executor is idle and may be started again.
type Executor struct {
	logger *slog.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New creates an [Executor]. If logger is nil, [slog.Default] is used.
func New(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{logger: logger}
}

// Start spawns one loop goroutine per spec, all observing a
// cancellation signal derived from ctx.
//
// Start is non-blocking and returns without waiting for any check to
// occur. It is a no-op while the executor is already running. An empty
// spec slice is accepted; the executor becomes running with nothing
// scheduled. If ctx is nil, context.Background() is used.
//
// Cancelling ctx winds the run down the same way Stop does, except that
// the caller is not blocked waiting for the loops.
func (e *Executor) Start(ctx context.Context, specs []Spec) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	runCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.running = true

	for _, spec := range specs {
		e.wg.Add(1)
		go func(spec Spec) {
			defer e.wg.Done()
			e.runLoop(runCtx, spec)
		}(spec)
	}
}

// Stop cancels the current run and blocks until every loop goroutine
// has returned.
//
// In-flight Check calls are not waited for; their results are
// discarded. Stop is idempotent and a safe no-op while idle.
func (e *Executor) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	cancel := e.cancel
	e.mu.Unlock()

	cancel()
	e.wg.Wait()

	e.mu.Lock()
	e.running = false
	e.cancel = nil
	e.mu.Unlock()
}

// Running reports whether a run is currently active.
func (e *Executor) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// runLoop checks one spec repeatedly until cancellation.
//
// The loop owns the spec's current status exclusively; no other
// goroutine reads or writes it. At most one check is in flight per spec
// at any instant.
func (e *Executor) runLoop(ctx context.Context, spec Spec) {
	status := StatusUnknown
	for {
		if ctx.Err() != nil {
			return
		}

		// The interval is measured from the start of the check, so a
		// callback or check faster than the interval never lengthens
		// the period.
		interval := time.NewTimer(spec.Interval)

		done := make(chan outcome, 1)
		go func() {
			st, err := e.safeCheck(spec)
			if err != nil {
				st = StatusUnknown
			}
			done <- outcome{status: st, err: err}
		}()

		var out outcome
		select {
		case out = <-done:
		case <-ctx.Done():
			// Detach the in-flight check: its send into the buffered
			// channel cannot block, its result is discarded, and this
			// loop exits without joining it.
			interval.Stop()
			e.logger.Debug("check abandoned on shutdown", "target", spec.ID)
			return
		}

		oldStatus := status
		status = out.status

		if out.err != nil {
			e.logger.Warn("check completed with error",
				"target", spec.ID,
				"status", out.status,
				"error", out.err.Error(),
			)
		} else {
			e.logger.Debug("check completed",
				"target", spec.ID,
				"status", out.status,
			)
		}

		if !spec.OnChangeOnly || out.status != oldStatus {
			e.notify(spec, out.status, oldStatus, out.err)
		}

		select {
		case <-interval.C:
		case <-ctx.Done():
			interval.Stop()
			return
		}
	}
}

// safeCheck calls the spec's Check with panic recovery.
// If the check panics, the full stack trace is logged with a
// correlation ID and the check is reported as failed.
func (e *Executor) safeCheck(spec Spec) (status string, err error) {
	defer func() {
		if r := recover(); r != nil {
			correlationID := uuid.NewString()
			e.logger.Error("target check panicked",
				"correlation_id", correlationID,
				"target", spec.ID,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)
			status = StatusUnknown
			err = fmt.Errorf("target check panic (correlation_id: %s)", correlationID)
		}
	}()
	return spec.Check()
}

// notify calls the spec's Notify with panic recovery.
// Panics are logged but do not propagate or terminate the loop.
func (e *Executor) notify(spec Spec, newStatus, oldStatus string, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("status callback panicked",
				"panic", r,
				"target", spec.ID,
			)
		}
	}()
	spec.Notify(newStatus, oldStatus, err)
}
