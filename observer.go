package uifsm

import (
	"context"
	"log/slog"
)

// Observer is notified after every dispatch on a machine. For a no-op
// dispatch matched is false and from equals to.
type Observer interface {
	OnTransition(from, to State, e Event, matched bool)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(from, to State, e Event, matched bool)

func (f ObserverFunc) OnTransition(from, to State, e Event, matched bool) {
	f(from, to, e, matched)
}

// SlogObserver logs dispatches through a slog.Logger: transitions at Info,
// no-ops at Debug.
type SlogObserver struct {
	log *slog.Logger
}

func NewSlogObserver(log *slog.Logger) *SlogObserver {
	if log == nil {
		log = slog.Default()
	}
	return &SlogObserver{log: log}
}

func (o *SlogObserver) OnTransition(from, to State, e Event, matched bool) {
	if !matched {
		o.log.LogAttrs(context.Background(), slog.LevelDebug, "dispatch ignored",
			slog.String("name", e.Name),
			slog.String("state", from),
		)
		return
	}
	o.log.LogAttrs(context.Background(), slog.LevelInfo, "transition",
		slog.String("name", e.Name),
		slog.String("from", from),
		slog.String("to", to),
		slog.Int("args", len(e.Args)),
	)
}
