package uifsm

import (
	"bytes"
	"fmt"
)

// ToMermaid renders the frozen table as a Mermaid stateDiagram-v2 DSL:
// an initial pointer, one declaration per state, and one edge per table
// cell labeled with its transition name. Output is deterministic.
func (m *Machine) ToMermaid() string {
	var buf bytes.Buffer
	buf.WriteString("stateDiagram-v2\n")
	if m.initial != "" {
		buf.WriteString("[*] --> ")
		buf.WriteString(m.initial)
		buf.WriteByte('\n')
	}
	for _, s := range m.States() {
		buf.WriteString("state ")
		buf.WriteString(s)
		buf.WriteByte('\n')
	}
	for _, k := range m.sortedKeys() {
		e := m.table[k]
		buf.WriteString(k.From)
		buf.WriteString(" --> ")
		buf.WriteString(e.To)
		buf.WriteString(" : ")
		buf.WriteString(k.Name)
		buf.WriteByte('\n')
	}
	return buf.String()
}

// ToDOT renders the frozen table as a Graphviz DOT digraph with a
// point-shaped initial node.
func (m *Machine) ToDOT() string {
	var buf bytes.Buffer
	buf.WriteString("digraph fsm {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=rectangle];\n")
	if m.initial != "" {
		buf.WriteString("  __init [shape=point,label=\"\"];\n")
		fmt.Fprintf(&buf, "  __init -> %q;\n", m.initial)
	}
	for _, s := range m.States() {
		fmt.Fprintf(&buf, "  %q;\n", s)
	}
	for _, k := range m.sortedKeys() {
		e := m.table[k]
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", k.From, e.To, k.Name)
	}
	buf.WriteString("}\n")
	return buf.String()
}
