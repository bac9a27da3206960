package reachable

import (
	"io"
	"net"
	"os/exec"

	"github.com/pkg/errors"
)

// ICMPTarget checks whether a system answers ICMP echo requests.
//
// Checks are performed by spawning the ping command, which is the
// easiest way to send ICMP packets without elevated privileges. Some
// administrators blackhole ICMP, so a system can look unavailable here
// while still being reachable with a [TCPTarget].
type ICMPTarget struct {
	host          string
	resolvePolicy ResolvePolicy
}

// NewICMPTarget creates an [ICMPTarget] for the given host (a hostname
// or IP literal) and options.
//
// Example:
//
//	target, err := reachable.NewICMPTarget("example.com",
//	    reachable.WithResolvePolicy(reachable.ResolveIPv4),
//	)
//
// Returns an error if the host is empty or an option fails validation.
func NewICMPTarget(host string, opts ...TargetOption) (*ICMPTarget, error) {
	if host == "" {
		return nil, errors.New("target host cannot be empty")
	}

	cfg := newTargetConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return &ICMPTarget{
		host:          host,
		resolvePolicy: cfg.resolvePolicy,
	}, nil
}

// ID returns the host given at construction.
func (t *ICMPTarget) ID() string {
	return t.host
}

// Host returns the host given at construction.
func (t *ICMPTarget) Host() string {
	return t.host
}

// ResolvePolicy returns the [ResolvePolicy] in use.
func (t *ICMPTarget) ResolvePolicy() ResolvePolicy {
	return t.resolvePolicy
}

// CheckAvailability resolves the host and pings each resolved address
// once, reporting [StatusAvailable] as soon as any address answers and
// [StatusNotAvailable] when none do.
//
// A resolution failure or an inability to spawn ping is reported as an
// error alongside [StatusUnknown].
func (t *ICMPTarget) CheckAvailability() (Status, error) {
	addrs, err := t.resolvePolicy.Resolve(t.host)
	if err != nil {
		return StatusUnknown, errors.Wrap(err, "check icmp target")
	}

	for _, addr := range addrs {
		answered, err := pingOnce(addr)
		if err != nil {
			return StatusUnknown, errors.Wrap(err, "check icmp target")
		}
		if answered {
			return StatusAvailable, nil
		}
	}
	return StatusNotAvailable, nil
}

// pingOnce sends a single echo request to addr via the ping command.
// A clean non-zero exit means the address did not answer; failing to
// run ping at all is an error.
func pingOnce(addr net.IP) (bool, error) {
	args := []string{"-c", "1"}
	if addr.To4() == nil {
		args = append(args, "-6")
	}
	args = append(args, addr.String())

	cmd := exec.Command("ping", args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	err := cmd.Run()
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, errors.Wrap(err, "spawn ping")
}
