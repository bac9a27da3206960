package reachable

import (
	"testing"

	"github.com/pkg/errors"
)

// TestResolvePolicy_String verifies policy labels including out of range
// values.
func TestResolvePolicy_String(t *testing.T) {
	tests := []struct {
		policy ResolvePolicy
		want   string
	}{
		{ResolveAny, "any"},
		{ResolveIPv4, "ipv4"},
		{ResolveIPv6, "ipv6"},
		{ResolvePolicy(42), "invalid"},
	}

	for _, tt := range tests {
		if got := tt.policy.String(); got != tt.want {
			t.Errorf("ResolvePolicy(%d).String() = %q, want %q", int(tt.policy), got, tt.want)
		}
	}
}

// TestResolvePolicy_Resolve exercises address-family filtering against IP
// literals, which resolve without consulting DNS.
func TestResolvePolicy_Resolve(t *testing.T) {
	tests := []struct {
		name         string
		policy       ResolvePolicy
		host         string
		wantAddrs    int
		wantFiltered bool
	}{
		{name: "any keeps v4 literal", policy: ResolveAny, host: "127.0.0.1", wantAddrs: 1},
		{name: "any keeps v6 literal", policy: ResolveAny, host: "::1", wantAddrs: 1},
		{name: "v4 keeps v4 literal", policy: ResolveIPv4, host: "127.0.0.1", wantAddrs: 1},
		{name: "v6 keeps v6 literal", policy: ResolveIPv6, host: "::1", wantAddrs: 1},
		{name: "v4 filters v6 literal", policy: ResolveIPv4, host: "::1", wantFiltered: true},
		{name: "v6 filters v4 literal", policy: ResolveIPv6, host: "127.0.0.1", wantFiltered: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addrs, err := tt.policy.Resolve(tt.host)

			if tt.wantFiltered {
				if !errors.Is(err, ErrAllAddressesFiltered) {
					t.Fatalf("Resolve(%q) err = %v, want ErrAllAddressesFiltered", tt.host, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error = %v", tt.host, err)
			}
			if len(addrs) != tt.wantAddrs {
				t.Errorf("Resolve(%q) returned %d addresses, want %d", tt.host, len(addrs), tt.wantAddrs)
			}
		})
	}
}

// TestResolvePolicy_ResolveLookupFailure verifies lookup failures surface
// as errors distinct from the filtered sentinel.
func TestResolvePolicy_ResolveLookupFailure(t *testing.T) {
	_, err := ResolveAny.Resolve("no-such-host.invalid")
	if err == nil {
		t.Fatal("Resolve() of unresolvable host expected error, got nil")
	}
	if errors.Is(err, ErrAllAddressesFiltered) {
		t.Error("lookup failure should not wrap ErrAllAddressesFiltered")
	}
}
