package uifsm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToMermaid(t *testing.T) {
	b := NewBuilder()
	b.RegisterTransition("go", "A", "B", nil)
	b.RegisterTransition("back", "B", "A", nil)

	want := `stateDiagram-v2
[*] --> A
state A
state B
A --> B : go
B --> A : back
`
	require.Equal(t, want, b.Build("A").ToMermaid())
}

func TestToDOT(t *testing.T) {
	b := NewBuilder()
	b.RegisterTransition("go", "A", "B", nil)

	want := `digraph fsm {
  rankdir=LR;
  node [shape=rectangle];
  __init [shape=point,label=""];
  __init -> "A";
  "A";
  "B";
  "A" -> "B" [label="go"];
}
`
	require.Equal(t, want, b.Build("A").ToDOT())
}

func TestRenderingIsDeterministic(t *testing.T) {
	build := func() *Machine {
		b := NewBuilder()
		b.RegisterTransitions([]TransitionName{"clear", "reset"}, []State{"s1", "s2", "s3"}, "s0", nil)
		b.RegisterTransition("go", "s0", "s1", nil)
		return b.Build("s0")
	}
	first := build()
	for i := 0; i < 5; i++ {
		require.Equal(t, first.ToMermaid(), build().ToMermaid())
		require.Equal(t, first.ToDOT(), build().ToDOT())
	}
}
