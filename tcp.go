package reachable

import (
	"net"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// TCPTarget checks whether a system accepts TCP connections on a port.
//
// Each check opens a connection with a deadline and closes it
// immediately on success. The service behind the port must tolerate
// spontaneous connection closing; all standard network services do.
// Depending on the remote system a connect attempt can take up to the
// configured timeout, so pick a timeout shorter than the probe's check
// interval where latency matters.
type TCPTarget struct {
	host           string
	port           int
	connectTimeout time.Duration
	resolvePolicy  ResolvePolicy
}

// NewTCPTarget creates a [TCPTarget] for the given host (a hostname or
// IP literal), port, and options.
//
// Example:
//
//	target, err := reachable.NewTCPTarget("example.com", 443,
//	    reachable.WithConnectTimeout(3*time.Second),
//	)
//
// Returns an error if the host is empty, the port is outside 1-65535,
// or an option fails validation.
func NewTCPTarget(host string, port int, opts ...TargetOption) (*TCPTarget, error) {
	if host == "" {
		return nil, errors.New("target host cannot be empty")
	}
	if port < 1 || port > 65535 {
		return nil, errors.Errorf("port must be between 1 and 65535, got %d", port)
	}

	cfg := newTargetConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return &TCPTarget{
		host:           host,
		port:           port,
		connectTimeout: cfg.connectTimeout,
		resolvePolicy:  cfg.resolvePolicy,
	}, nil
}

// ParseTCPTarget creates a [TCPTarget] from a "host:port" string, such
// as "example.com:443" or "[::1]:22".
//
// Returns an error if the string lacks a port separator, the host is
// empty, or the port is not a number between 1 and 65535.
func ParseTCPTarget(s string, opts ...TargetOption) (*TCPTarget, error) {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return nil, errors.Wrapf(err, "parse tcp target %q", s)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, errors.Wrapf(err, "parse port in tcp target %q", s)
	}
	return NewTCPTarget(host, port, opts...)
}

// ID returns "host:port" for this target.
func (t *TCPTarget) ID() string {
	return net.JoinHostPort(t.host, strconv.Itoa(t.port))
}

// Host returns the host given at construction.
func (t *TCPTarget) Host() string {
	return t.host
}

// Port returns the TCP port number in use.
func (t *TCPTarget) Port() int {
	return t.port
}

// ConnectTimeout returns the per-address connect timeout in use.
func (t *TCPTarget) ConnectTimeout() time.Duration {
	return t.connectTimeout
}

// ResolvePolicy returns the [ResolvePolicy] in use.
func (t *TCPTarget) ResolvePolicy() ResolvePolicy {
	return t.resolvePolicy
}

// CheckAvailability resolves the host and attempts a TCP connection to
// each resolved address in turn, reporting [StatusAvailable] as soon as
// one accepts and [StatusNotAvailable] when every attempt is refused or
// times out.
//
// A resolution failure is reported as an error alongside
// [StatusUnknown]; refused or timed-out connections are a regular
// outcome, not an error.
func (t *TCPTarget) CheckAvailability() (Status, error) {
	addrs, err := t.resolvePolicy.Resolve(t.host)
	if err != nil {
		return StatusUnknown, errors.Wrap(err, "check tcp target")
	}

	portStr := strconv.Itoa(t.port)
	for _, addr := range addrs {
		conn, err := net.DialTimeout("tcp", net.JoinHostPort(addr.String(), portStr), t.connectTimeout)
		if err != nil {
			continue
		}
		_ = conn.Close()
		return StatusAvailable, nil
	}
	return StatusNotAvailable, nil
}
