package reachable

import (
	"net"

	"github.com/pkg/errors"
)

// ErrAllAddressesFiltered is returned by [ResolvePolicy.Resolve] when
// the host resolved successfully but the policy's address-family filter
// discarded every candidate address.
var ErrAllAddressesFiltered = errors.New("resolve policy filtered all resolved addresses")

// ResolvePolicy controls name resolution and address-family filtering
// for network targets like [ICMPTarget] and [TCPTarget].
type ResolvePolicy int

const (
	// ResolveAny accepts addresses of both families. This is the
	// default for targets built from plain host strings.
	ResolveAny ResolvePolicy = iota

	// ResolveIPv4 keeps only IPv4 addresses.
	ResolveIPv4

	// ResolveIPv6 keeps only IPv6 addresses.
	ResolveIPv6
)

// String returns a human-readable name for the policy.
func (p ResolvePolicy) String() string {
	switch p {
	case ResolveAny:
		return "any"
	case ResolveIPv4:
		return "ipv4"
	case ResolveIPv6:
		return "ipv6"
	default:
		return "invalid"
	}
}

// Resolve looks up the given host (a hostname or IP literal) and
// returns the addresses that pass the policy's family filter.
//
// Returns an error if the lookup itself fails, or an error wrapping
// [ErrAllAddressesFiltered] if the lookup succeeded but the filter
// discarded every address.
func (p ResolvePolicy) Resolve(host string) ([]net.IP, error) {
	addrs, err := net.LookupIP(host)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %q", host)
	}

	filtered := addrs[:0]
	for _, addr := range addrs {
		switch p {
		case ResolveIPv4:
			if addr.To4() != nil {
				filtered = append(filtered, addr)
			}
		case ResolveIPv6:
			if addr.To4() == nil {
				filtered = append(filtered, addr)
			}
		default:
			filtered = append(filtered, addr)
		}
	}

	if len(filtered) == 0 {
		return nil, errors.Wrapf(ErrAllAddressesFiltered, "resolve %q", host)
	}
	return filtered, nil
}
