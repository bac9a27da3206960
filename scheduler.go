package reachable

import (
	"context"
	"errors"
	"log/slog"

	"github.com/reachkit/reachable/internal/executor"
)

// Scheduler runs periodic availability checks for a set of probes.
//
// Each probe handed to [Scheduler.Start] gets its own goroutine running
// the check loop, so a slow or hung check for one target never delays
// the scheduling of any other target. All loops of one run share a
// single cancellation signal raised by [Scheduler.Stop].
//
// The typical lifecycle is:
//
//	s, err := reachable.NewScheduler()
//	if err != nil {
//	    slog.Error("failed to create scheduler", "error", err)
//	    os.Exit(1)
//	}
//
//	if err := s.Start(ctx, probes...); err != nil {
//	    return err
//	}
//	// ... probes report through their callbacks ...
//	s.Stop()
//
// Stop returns in time proportional to cancellation-detection latency,
// independent of how long any in-flight check blocks: checks that are
// still outstanding when the signal is raised are abandoned, their
// results discarded. The scheduler is restartable; after Stop returns,
// a later Start begins a fresh run.
//
// All lifecycle methods are safe for concurrent use.
type Scheduler struct {
	logger *slog.Logger
	exec   *executor.Executor
}

// schedulerConfig holds mutable state during scheduler construction.
type schedulerConfig struct {
	logger *slog.Logger
}

// SchedulerOption is a function that configures a [Scheduler] during
// construction.
type SchedulerOption func(*schedulerConfig) error

// WithLogger sets a custom [slog.Logger] for the scheduler.
//
// This controls where per-check debug logs, check-error warnings, and
// recovered-panic reports are written. If not specified, [slog.Default]
// is used.
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) SchedulerOption {
	return func(cfg *schedulerConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// NewScheduler creates a [Scheduler] with the given options.
//
// A scheduler requires no configuration; options exist for ambient
// concerns such as logging. Returns an error if an option fails
// validation.
func NewScheduler(opts ...SchedulerOption) (*Scheduler, error) {
	cfg := &schedulerConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		logger: logger,
		exec:   executor.New(logger),
	}, nil
}

// Start begins periodic checking of the given probes.
//
// One check loop is spawned per probe, all observing a cancellation
// signal derived from ctx. Start returns immediately without waiting
// for any check to occur. An empty probe list is accepted; the
// scheduler becomes running with nothing scheduled.
//
// Start is a no-op returning nil while the scheduler is already
// running. Cancelling ctx winds the run down like [Scheduler.Stop],
// except the caller is not blocked; use it to tie the run to a
// surrounding lifetime such as [signal.NotifyContext].
//
// Errors from individual checks never surface here; they are delivered
// to the owning probe's callback. Start fails only on invalid input
// (a nil probe in the list).
func (s *Scheduler) Start(ctx context.Context, probes ...*Probe) error {
	specs := make([]executor.Spec, len(probes))
	for i, p := range probes {
		if p == nil {
			return errors.New("probe cannot be nil")
		}
		specs[i] = toSpec(p)
	}

	s.exec.Start(ctx, specs)
	return nil
}

// Stop raises the cancellation signal for the current run and blocks
// until every check loop has wound down.
//
// In-flight checks racing the signal are not waited for; they finish on
// their own detached goroutines and their results are discarded. Stop
// is idempotent and a safe no-op while idle.
func (s *Scheduler) Stop() {
	s.exec.Stop()
}

// Running reports whether a run is currently active.
func (s *Scheduler) Running() bool {
	return s.exec.Running()
}

// toSpec converts a public Probe into the executor's internal spec,
// binding the target and callback into closures so the executor stays
// decoupled from the public types.
func toSpec(p *Probe) executor.Spec {
	return executor.Spec{
		ID:           p.target.ID(),
		Interval:     p.interval,
		OnChangeOnly: p.policy == NotifyOnStatusChange,
		Check: func() (string, error) {
			status, err := p.target.CheckAvailability()
			return string(status), err
		},
		Notify: func(newStatus, oldStatus string, err error) {
			p.callback(p.target, Status(newStatus), Status(oldStatus), err)
		},
	}
}
