package config

import (
	"fmt"

	"github.com/reachkit/reachable"
)

// BuildProbes converts a validated [Config] into SDK probes, all
// reporting through the given callback.
//
// Per-target interval and policy overrides take precedence over the
// global values. Returns an error if any target fails SDK validation,
// such as a malformed "host:port".
func BuildProbes(cfg *Config, callback reachable.Callback) ([]*reachable.Probe, error) {
	probes := make([]*reachable.Probe, 0, len(cfg.Targets))

	for i, tc := range cfg.Targets {
		target, err := buildTarget(tc)
		if err != nil {
			return nil, fmt.Errorf("target %d: %w", i, err)
		}

		interval := cfg.Interval
		if tc.Interval != 0 {
			interval = tc.Interval
		}
		policy := cfg.Policy
		if tc.Policy != "" {
			policy = tc.Policy
		}

		probe, err := reachable.NewProbe(target, callback, interval.Duration(),
			reachable.WithNotifyPolicy(notifyPolicy(policy)),
		)
		if err != nil {
			return nil, fmt.Errorf("target %d: %w", i, err)
		}
		probes = append(probes, probe)
	}

	return probes, nil
}

// buildTarget converts one target entry into an SDK target.
func buildTarget(tc TargetConfig) (reachable.Target, error) {
	opts := []reachable.TargetOption{
		reachable.WithResolvePolicy(resolvePolicy(tc.Resolve)),
	}

	if tc.ICMP != "" {
		return reachable.NewICMPTarget(tc.ICMP, opts...)
	}

	if tc.Timeout != 0 {
		opts = append(opts, reachable.WithConnectTimeout(tc.Timeout.Duration()))
	}
	return reachable.ParseTCPTarget(tc.TCP, opts...)
}

// notifyPolicy maps a validated policy string to its SDK value.
func notifyPolicy(policy string) reachable.NotifyPolicy {
	if policy == PolicyOnChange {
		return reachable.NotifyOnStatusChange
	}
	return reachable.NotifyOnEveryCheck
}

// resolvePolicy maps a validated resolve string to its SDK value.
func resolvePolicy(resolve string) reachable.ResolvePolicy {
	switch resolve {
	case ResolveIPv4:
		return reachable.ResolveIPv4
	case ResolveIPv6:
		return reachable.ResolveIPv6
	default:
		return reachable.ResolveAny
	}
}
