package auth

import "fmt"

// State is a step of the prompt lifecycle.
type State string

const (
	StateIdle          State = "idle"
	StateAwaitingInput State = "awaiting_input"
	StateAuthorized    State = "authorized"
	StateExecuting     State = "executing"
	StateDone          State = "done"
	StateDenied        State = "denied"
	StateCancelled     State = "cancelled"
)

// IsTerminal reports whether a request in state s has settled.
func IsTerminal(s State) bool {
	switch s {
	case StateDone, StateDenied, StateCancelled:
		return true
	default:
		return false
	}
}

func isAllowedTransition(from, to State) bool {
	switch from {
	case StateIdle:
		return to == StateAwaitingInput
	case StateAwaitingInput:
		return to == StateAuthorized || to == StateDenied || to == StateCancelled
	case StateAuthorized:
		return to == StateExecuting
	case StateExecuting:
		return to == StateDone
	case StateDone, StateDenied, StateCancelled:
		return to == StateIdle
	default:
		return false
	}
}

// transition validates and applies from -> to on cur.
func transition(cur *State, from, to State) error {
	if *cur != from {
		return fmt.Errorf("invalid transition: expected %s, got %s", from, *cur)
	}

	if !isAllowedTransition(from, to) {
		return fmt.Errorf("disallowed transition: %s -> %s", from, to)
	}

	*cur = to

	return nil
}

// Decision is the outcome of checking one password attempt.
type Decision int

const (
	NotConfigured Decision = iota
	Authorized
	Denied
)

func (d Decision) String() string {
	switch d {
	case NotConfigured:
		return "not configured"
	case Authorized:
		return "authorized"
	case Denied:
		return "denied"
	}

	return "unknown"
}
