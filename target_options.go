package reachable

import (
	"time"

	"github.com/pkg/errors"
)

// DefaultConnectTimeout is the connect timeout a [TCPTarget] uses when
// [WithConnectTimeout] is not specified.
const DefaultConnectTimeout = 5 * time.Second

// targetConfig holds mutable state during target construction.
type targetConfig struct {
	resolvePolicy  ResolvePolicy
	connectTimeout time.Duration
}

func newTargetConfig() *targetConfig {
	return &targetConfig{
		resolvePolicy:  ResolveAny,
		connectTimeout: DefaultConnectTimeout,
	}
}

// TargetOption is a function that configures a network target during
// construction.
//
// TargetOption implements the functional options pattern for
// [NewICMPTarget], [NewTCPTarget], and [ParseTCPTarget]. Options return
// an error if validation fails.
type TargetOption func(*targetConfig) error

// WithResolvePolicy sets the address-family policy applied when the
// target's host is resolved.
//
// Defaults to [ResolveAny] if not specified.
//
// Returns an error if the policy is not a defined value.
func WithResolvePolicy(policy ResolvePolicy) TargetOption {
	return func(cfg *targetConfig) error {
		switch policy {
		case ResolveAny, ResolveIPv4, ResolveIPv6:
			cfg.resolvePolicy = policy
			return nil
		default:
			return errors.New("resolve policy must be ResolveAny, ResolveIPv4, or ResolveIPv6")
		}
	}
}

// WithConnectTimeout sets the per-address connect timeout for a
// [TCPTarget].
//
// A shorter timeout speeds up checks against unresponsive systems.
// Defaults to [DefaultConnectTimeout] if not specified. ICMP targets
// ignore this option; ping applies its own timeout.
//
// Returns an error if the duration is zero or negative.
func WithConnectTimeout(d time.Duration) TargetOption {
	return func(cfg *targetConfig) error {
		if d <= 0 {
			return errors.New("connect timeout must be positive")
		}
		cfg.connectTimeout = d
		return nil
	}
}
