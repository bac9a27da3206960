// Package reachable provides periodic reachability checking of network
// targets with per-target scheduling and callback-based reporting.
//
// A [Target] is anything with a stable identifier and a possibly
// blocking availability check; [ICMPTarget] and [TCPTarget] ship with
// the package, and [NewFuncTarget] adapts a plain function. A [Probe]
// binds one target to a callback, a check interval, and a
// [NotifyPolicy]. A [Scheduler] runs one independent check loop per
// probe, so a slow or hung check for one target never delays another.
//
// # Quick Start
//
// Check a host every ten seconds and log status transitions:
//
//	target, _ := reachable.NewICMPTarget("example.com")
//	probe, _ := reachable.NewProbe(target,
//	    func(t reachable.Target, newStatus, oldStatus reachable.Status, err error) {
//	        slog.Info("status changed", "target", t.ID(), "from", oldStatus, "to", newStatus)
//	    },
//	    10*time.Second,
//	    reachable.WithNotifyPolicy(reachable.NotifyOnStatusChange),
//	)
//
//	s, _ := reachable.NewScheduler()
//	_ = s.Start(context.Background(), probe)
//	// ...
//	s.Stop()
//
// # Guarantees
//
// For any single probe, checks and callback invocations are strictly
// sequential: at most one check is in flight at a time, and the
// oldStatus passed to each invocation equals the newStatus of the
// previous one ([StatusUnknown] for the first). Across probes there is
// no ordering; callbacks for different probes may run simultaneously on
// different goroutines, and state they share must be synchronized by
// the caller.
//
// [Scheduler.Stop] returns once the check loops have wound down. Checks
// still blocked in I/O when the cancellation signal is raised are
// abandoned rather than joined, so stopping is bounded by
// cancellation-detection latency and never by a hung check. Errors from
// checks are delivered through callbacks as values; they never abort
// the scheduler or the owning loop.
//
// # Architecture
//
// The public API lives in this package. The concurrency machinery lives
// in internal/executor and is not part of the public API. The config
// package and cmd/reachable provide a YAML-configured standalone binary
// around the library.
package reachable
