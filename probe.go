package reachable

import (
	"errors"
	"time"
)

// Callback is invoked by a probe's loop with the outcome of a completed
// availability check.
//
// newStatus is the status the check just produced and oldStatus the
// status produced by the previous check of the same probe
// ([StatusUnknown] for the first check). err is non-nil only when the
// check itself failed, in which case newStatus is [StatusUnknown].
//
// A callback runs on its probe's own goroutine. Invocations for one
// probe are strictly sequential; invocations for different probes may
// run simultaneously. If a callback closes over state shared across
// probes, synchronizing that state is the caller's responsibility.
type Callback func(target Target, newStatus, oldStatus Status, err error)

// Probe binds one [Target] to a [Callback], a check interval, and a
// [NotifyPolicy].
//
// Probe is immutable after creation via [NewProbe]. Hand probes to
// [Scheduler.Start] to begin periodic checking; each probe gets its own
// goroutine so a slow check for one target never delays the others.
type Probe struct {
	target   Target
	callback Callback
	interval time.Duration
	policy   NotifyPolicy
}

// probeConfig holds mutable state during probe construction.
type probeConfig struct {
	policy NotifyPolicy
}

// ProbeOption is a function that configures a [Probe] during
// construction.
//
// ProbeOption implements the functional options pattern, allowing
// optional configuration to be passed to [NewProbe] in a type-safe,
// extensible way. Options return an error if validation fails.
type ProbeOption func(*probeConfig) error

// WithNotifyPolicy sets when the probe's callback is invoked.
//
// Defaults to [NotifyOnEveryCheck] if not specified.
//
// Example:
//
//	p, err := reachable.NewProbe(target, callback, 10*time.Second,
//	    reachable.WithNotifyPolicy(reachable.NotifyOnStatusChange),
//	)
//
// Returns an error if the policy is not a defined value.
func WithNotifyPolicy(policy NotifyPolicy) ProbeOption {
	return func(cfg *probeConfig) error {
		switch policy {
		case NotifyOnEveryCheck, NotifyOnStatusChange:
			cfg.policy = policy
			return nil
		default:
			return errors.New("notify policy must be NotifyOnEveryCheck or NotifyOnStatusChange")
		}
	}
}

// NewProbe creates a [Probe] over the given target.
//
// The callback is invoked with the outcome of each check according to
// the notify policy. The interval is the time between the start of one
// check and the start of the next; a zero interval is permitted and
// produces back-to-back checks bounded only by check latency.
//
// Returns an error if the target or callback is nil, the target's ID is
// empty, the interval is negative, or an option fails validation.
func NewProbe(target Target, callback Callback, interval time.Duration, opts ...ProbeOption) (*Probe, error) {
	if target == nil {
		return nil, errors.New("target cannot be nil")
	}
	if target.ID() == "" {
		return nil, errors.New("target id cannot be empty")
	}
	if callback == nil {
		return nil, errors.New("callback cannot be nil")
	}
	if interval < 0 {
		return nil, errors.New("check interval cannot be negative")
	}

	cfg := &probeConfig{
		policy: NotifyOnEveryCheck,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return &Probe{
		target:   target,
		callback: callback,
		interval: interval,
		policy:   cfg.policy,
	}, nil
}

// Target returns the probe's target.
func (p *Probe) Target() Target {
	return p.target
}

// Interval returns the configured check interval.
func (p *Probe) Interval() time.Duration {
	return p.interval
}

// Policy returns the configured notify policy.
func (p *Probe) Policy() NotifyPolicy {
	return p.policy
}
