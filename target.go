package reachable

import "errors"

// Target is a capability whose availability can be checked.
//
// Two implementations ship with this package: [ICMPTarget] and
// [TCPTarget]. User-defined targets implement this interface directly,
// or wrap a plain function with [NewFuncTarget].
type Target interface {
	// ID returns a stable identifier for this target, used for logging
	// and keying. It must not change over the target's lifetime and
	// must never fail.
	ID() string

	// CheckAvailability determines whether the target is currently
	// reachable. The call is synchronous and may block for an
	// arbitrary duration; any timeout must be internal to the
	// implementation (e.g. a connect deadline). The scheduler never
	// interrupts a running check.
	//
	// A target that is reachable returns [StatusAvailable]; one that
	// does not answer returns [StatusNotAvailable] with a nil error.
	// An error return means the check itself could not be carried out,
	// such as a failed name lookup. Implementations must not retry
	// internally and must not panic.
	CheckAvailability() (Status, error)
}

// FuncTarget adapts a plain check function into a [Target].
//
// Example:
//
//	target, err := reachable.NewFuncTarget("db-pool", func() (reachable.Status, error) {
//	    if pool.Ping() == nil {
//	        return reachable.StatusAvailable, nil
//	    }
//	    return reachable.StatusNotAvailable, nil
//	})
type FuncTarget struct {
	id    string
	check func() (Status, error)
}

// NewFuncTarget creates a [FuncTarget] with the given identifier and
// check function.
//
// Returns an error if the identifier is empty or the check function
// is nil.
func NewFuncTarget(id string, check func() (Status, error)) (*FuncTarget, error) {
	if id == "" {
		return nil, errors.New("target id cannot be empty")
	}
	if check == nil {
		return nil, errors.New("check function cannot be nil")
	}
	return &FuncTarget{id: id, check: check}, nil
}

// ID returns the identifier given at construction.
func (t *FuncTarget) ID() string {
	return t.id
}

// CheckAvailability invokes the wrapped check function.
func (t *FuncTarget) CheckAvailability() (Status, error) {
	return t.check()
}
