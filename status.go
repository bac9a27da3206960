package reachable

// Status represents the last known availability of a [Target].
//
// Status is a string type that can hold one of three predefined values:
// [StatusUnknown], [StatusAvailable], or [StatusNotAvailable]. Using a
// string type allows for human-readable logging while maintaining type
// safety through the defined constants.
type Status string

const (
	// StatusUnknown indicates the availability of a target has not been
	// determined. Every probe starts in this state, and a failing check
	// reports this state alongside its error.
	StatusUnknown Status = "unknown"

	// StatusAvailable indicates the target answered its last check.
	StatusAvailable Status = "available"

	// StatusNotAvailable indicates the target did not answer its last
	// check. This is a regular outcome, not an error.
	StatusNotAvailable Status = "not available"
)

// String returns the string representation of the status.
// This implements the fmt.Stringer interface.
func (s Status) String() string {
	return string(s)
}

// NotifyPolicy controls when a probe invokes its callback.
//
// The policy is fixed at probe construction via [WithNotifyPolicy] and
// never changes afterwards.
type NotifyPolicy int

const (
	// NotifyOnEveryCheck invokes the callback after every completed
	// check, regardless of the outcome. This is the default.
	NotifyOnEveryCheck NotifyPolicy = iota

	// NotifyOnStatusChange invokes the callback only when a check
	// produces a status different from the previous one.
	NotifyOnStatusChange
)

// String returns a human-readable name for the policy.
func (p NotifyPolicy) String() string {
	switch p {
	case NotifyOnEveryCheck:
		return "every-check"
	case NotifyOnStatusChange:
		return "on-change"
	default:
		return "invalid"
	}
}
