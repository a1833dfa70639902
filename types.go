package uifsm

// State is an opaque identifier for one mode of a machine. Equality is by
// value; the machine imposes no ordering or hierarchy on states.
type State = string

// TransitionName identifies an event a caller may invoke on a machine.
type TransitionName = string

// Event carries the invoked transition name and the caller's arguments.
// Args are forwarded to the action verbatim, in caller order.
type Event struct {
	Name TransitionName
	Args []any
}

// ActionFunc is the side effect attached to a transition entry. Arity and
// argument types are the action's own concern; the machine performs no
// validation or transformation of Args. A nil action means the transition
// is a pure state change.
type ActionFunc func(e Event)

// HandlerFunc is the per-name callable a machine synthesizes at build time.
type HandlerFunc func(args ...any)

// transitionKey addresses one cell of the transition table.
type transitionKey struct {
	Name TransitionName
	From State
}

// transitionEntry is the destination and side effect reachable from one
// (name, source state) cell.
type transitionEntry struct {
	To     State
	Action ActionFunc
}
