package uifsm

import (
	"sort"

	"github.com/samber/lo"
)

// Machine is a compiled state machine instance. It owns exactly one
// mutable field, the current state, written only by the dispatch path.
//
// A machine is synchronous and single-caller: dispatches run to completion
// on the caller's goroutine and may reenter (an action may invoke further
// transitions on the same machine), but concurrent use from independent
// goroutines requires external synchronization.
type Machine struct {
	table    map[transitionKey]transitionEntry
	handlers map[TransitionName]HandlerFunc
	initial  State
	current  State

	observers []Observer
}

// Current returns the machine's current state.
func (m *Machine) Current() State { return m.current }

// Send dispatches the named transition against the current state. When no
// entry exists for (name, current) the call is a silent no-op: no state
// change, no action, nothing reported. Otherwise the current state is set
// to the entry's destination before the action runs, so a reentrant Send
// made by the action observes the post-transition state. Unknown names are
// no-ops too.
func (m *Machine) Send(name TransitionName, args ...any) {
	m.dispatch(name, args)
}

// Handler returns the callable synthesized at build time for name, or
// false when name was never seen by the builder.
func (m *Machine) Handler(name TransitionName) (HandlerFunc, bool) {
	h, ok := m.handlers[name]
	return h, ok
}

// Names returns the sorted set of transition names the machine exposes.
func (m *Machine) Names() []TransitionName {
	names := lo.Keys(m.handlers)
	sort.Strings(names)
	return names
}

// Can reports whether name has an entry from the current state.
func (m *Machine) Can(name TransitionName) bool {
	_, ok := m.table[transitionKey{Name: name, From: m.current}]
	return ok
}

// States returns the sorted set of states mentioned by the table, plus the
// initial state.
func (m *Machine) States() []State {
	set := make(map[State]struct{}, len(m.table)+1)
	set[m.initial] = struct{}{}
	for k, e := range m.table {
		set[k.From] = struct{}{}
		set[e.To] = struct{}{}
	}
	states := lo.Keys(set)
	sort.Strings(states)
	return states
}

// Observe registers an observer notified synchronously after every
// dispatch, no-ops included. Observers never influence dispatch semantics.
func (m *Machine) Observe(o Observer) {
	m.observers = append(m.observers, o)
}

func (m *Machine) dispatch(name TransitionName, args []any) {
	e := Event{Name: name, Args: args}
	entry, ok := m.table[transitionKey{Name: name, From: m.current}]
	if !ok {
		m.notify(m.current, m.current, e, false)
		return
	}
	from := m.current
	// State commits before the action runs: a reentrant dispatch made by
	// the action must see the destination state.
	m.current = entry.To
	if entry.Action != nil {
		entry.Action(e)
	}
	m.notify(from, entry.To, e, true)
}

func (m *Machine) notify(from, to State, e Event, matched bool) {
	for _, o := range m.observers {
		o.OnTransition(from, to, e, matched)
	}
}

// sortedKeys returns table cells in (From, Name) order for deterministic
// rendering and traversal.
func (m *Machine) sortedKeys() []transitionKey {
	keys := lo.Keys(m.table)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}
		return keys[i].Name < keys[j].Name
	})
	return keys
}
