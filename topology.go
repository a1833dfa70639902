package uifsm

import "errors"

// ErrCycleDetected reports that the transition graph is not a DAG.
// Interactive machines usually are cyclic; callers treating the graph as a
// flow should interpret this as "cyclic", not as a failure of the machine.
var ErrCycleDetected = errors.New("transition graph contains a cycle")

// Topology is a topological ordering of a machine's states.
type Topology struct {
	Order []State
	Index map[State]int
}

// Topology builds a topological ordering from the frozen table. Nodes are
// all states the machine knows about, isolated ones included; edges are
// entries from -> to. Returns ErrCycleDetected if a cycle exists.
func (m *Machine) Topology() (*Topology, error) {
	states := m.States()
	adj := make(map[State][]State, len(states))
	indeg := make(map[State]int, len(states))
	for _, s := range states {
		indeg[s] = 0
	}
	for _, k := range m.sortedKeys() {
		e := m.table[k]
		adj[k.From] = append(adj[k.From], e.To)
		indeg[e.To]++
	}
	// Kahn, seeded in sorted state order for a stable result.
	q := make([]State, 0, len(indeg))
	for _, s := range states {
		if indeg[s] == 0 {
			q = append(q, s)
		}
	}
	order := make([]State, 0, len(indeg))
	for len(q) > 0 {
		v := q[0]
		q = q[1:]
		order = append(order, v)
		for _, w := range adj[v] {
			indeg[w]--
			if indeg[w] == 0 {
				q = append(q, w)
			}
		}
	}
	if len(order) != len(indeg) {
		return nil, ErrCycleDetected
	}
	index := make(map[State]int, len(order))
	for i, s := range order {
		index[s] = i
	}
	return &Topology{Order: order, Index: index}, nil
}

func (t *Topology) IsBefore(a, b State) bool {
	ia, oka := t.Index[a]
	ib, okb := t.Index[b]
	if !oka || !okb {
		return false
	}
	return ia < ib
}

func (t *Topology) IsAfter(a, b State) bool {
	ia, oka := t.Index[a]
	ib, okb := t.Index[b]
	if !oka || !okb {
		return false
	}
	return ia > ib
}
