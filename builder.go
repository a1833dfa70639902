package uifsm

// Builder accumulates a partial transition table during the definition
// phase. Registrations may arrive in any order; for a given
// (name, fromState) cell the last registration wins, silently. There is
// no validation step: duplicate cells overwrite, unreachable states and
// names with zero source states are legal and simply produce no-op
// dispatches at runtime.
type Builder struct {
	table map[transitionKey]transitionEntry
	names map[TransitionName]struct{}
}

func NewBuilder() *Builder {
	return &Builder{
		table: make(map[transitionKey]transitionEntry),
		names: make(map[TransitionName]struct{}),
	}
}

// RegisterTransition registers a single (name, from) -> (to, action)
// entry. Equivalent to RegisterTransitions with singleton slices.
func (b *Builder) RegisterTransition(name TransitionName, from, to State, action ActionFunc) {
	b.names[name] = struct{}{}
	b.table[transitionKey{Name: name, From: from}] = transitionEntry{To: to, Action: action}
}

// RegisterTransitions registers every combination of a name in names and
// a state in froms to the shared destination and action. Each name joins
// the name set even when froms is empty, so machines built later still
// expose a callable for it.
func (b *Builder) RegisterTransitions(names []TransitionName, froms []State, to State, action ActionFunc) {
	for _, name := range names {
		b.names[name] = struct{}{}
		for _, from := range froms {
			b.table[transitionKey{Name: name, From: from}] = transitionEntry{To: to, Action: action}
		}
	}
}

// Build snapshots the accumulated table and produces a machine starting
// at initial, with one handler per distinct name ever registered. The
// builder remains usable afterwards: machines built earlier never observe
// later registrations, and machines built from the same builder do not
// share current state.
func (b *Builder) Build(initial State) *Machine {
	m := &Machine{
		table:   make(map[transitionKey]transitionEntry, len(b.table)),
		initial: initial,
		current: initial,
	}
	for k, e := range b.table {
		m.table[k] = e
	}
	m.handlers = make(map[TransitionName]HandlerFunc, len(b.names))
	for name := range b.names {
		m.handlers[name] = func(args ...any) { m.dispatch(name, args) }
	}
	return m
}
