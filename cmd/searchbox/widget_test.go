package main

import (
	"testing"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"

	"github.com/uistate/uifsm"
)

func TestWidgetHappyPath(t *testing.T) {
	m := newWidgetMachine(slogt.New(t))
	require.Equal(t, uifsm.State(stEmpty), m.Current())

	m.Send("focus")
	require.Equal(t, uifsm.State(stPreSearchWithoutContent), m.Current())

	m.Send("change", "fo")
	require.Equal(t, uifsm.State(stPreSearchWithContent), m.Current())

	m.Send("search", "foo")
	require.Equal(t, uifsm.State(stPostSearchWithContext), m.Current())

	m.Send("clear")
	require.Equal(t, uifsm.State(stPreSearchWithoutContent), m.Current())

	m.Send("unfocus")
	require.Equal(t, uifsm.State(stEmpty), m.Current())
}

func TestWidgetIgnoresMeaninglessEvents(t *testing.T) {
	m := newWidgetMachine(slogt.New(t))

	// clear while already empty is a routine no-op for the widget.
	m.Send("clear")
	require.Equal(t, uifsm.State(stEmpty), m.Current())

	m.Send("search", "foo")
	require.Equal(t, uifsm.State(stEmpty), m.Current())
}

func TestWidgetExposesAllFiveEvents(t *testing.T) {
	m := newWidgetMachine(slogt.New(t))
	require.Equal(t, []uifsm.TransitionName{"change", "clear", "focus", "search", "unfocus"}, m.Names())
}
