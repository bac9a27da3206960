package reachable

import "testing"

// TestStatus_String verifies the human readable status labels.
func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusUnknown, "unknown"},
		{StatusAvailable, "available"},
		{StatusNotAvailable, "not available"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%q).String() = %q, want %q", string(tt.status), got, tt.want)
		}
	}
}

// TestNotifyPolicy_String verifies policy labels including out of range values.
func TestNotifyPolicy_String(t *testing.T) {
	tests := []struct {
		policy NotifyPolicy
		want   string
	}{
		{NotifyOnEveryCheck, "every-check"},
		{NotifyOnStatusChange, "on-change"},
		{NotifyPolicy(42), "invalid"},
	}

	for _, tt := range tests {
		if got := tt.policy.String(); got != tt.want {
			t.Errorf("NotifyPolicy(%d).String() = %q, want %q", int(tt.policy), got, tt.want)
		}
	}
}
