package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/uistate/uifsm"
)

// Search-box interaction model: the box is empty until focused, tracks
// whether it holds typed content, and remembers whether a search has run.
const (
	stEmpty                    = "empty"
	stPreSearchWithoutContent  = "preSearchWithoutContent"
	stPreSearchWithContent     = "preSearchWithContent"
	stPostSearchWithoutContent = "postSearchWithoutContent"
	stPostSearchWithContext    = "postSearchWithContext"
)

func newWidgetMachine(log *slog.Logger) *uifsm.Machine {
	b := uifsm.NewBuilder()

	b.RegisterTransition("focus", stEmpty, stPreSearchWithoutContent, func(e uifsm.Event) {
		fmt.Println("  [ui] hide placeholder, show caret")
	})
	b.RegisterTransition("focus", stPostSearchWithContext, stPreSearchWithContent, func(e uifsm.Event) {
		fmt.Println("  [ui] re-enter previous query")
	})
	b.RegisterTransition("focus", stPostSearchWithoutContent, stPreSearchWithoutContent, nil)

	b.RegisterTransition("unfocus", stPreSearchWithoutContent, stEmpty, func(e uifsm.Event) {
		fmt.Println("  [ui] restore placeholder")
	})
	b.RegisterTransition("unfocus", stPreSearchWithContent, stPostSearchWithContext, nil)

	b.RegisterTransitions(
		[]uifsm.TransitionName{"change"},
		[]uifsm.State{stPreSearchWithoutContent, stPostSearchWithoutContent},
		stPreSearchWithContent,
		func(e uifsm.Event) {
			fmt.Printf("  [ui] show clear button (input: %v)\n", e.Args)
		},
	)

	b.RegisterTransition("search", stPreSearchWithContent, stPostSearchWithContext, func(e uifsm.Event) {
		fmt.Printf("  [ui] run query %v, render results\n", e.Args)
	})
	b.RegisterTransition("search", stPreSearchWithoutContent, stPostSearchWithoutContent, func(e uifsm.Event) {
		fmt.Println("  [ui] nothing to search, show empty-results hint")
	})

	// clear behaves identically from both "has result" states.
	b.RegisterTransitions(
		[]uifsm.TransitionName{"clear"},
		[]uifsm.State{stPreSearchWithContent, stPostSearchWithContext},
		stPreSearchWithoutContent,
		func(e uifsm.Event) {
			fmt.Println("  [ui] clear input, hide results")
		},
	)

	m := b.Build(stEmpty)
	m.Observe(uifsm.NewSlogObserver(log))
	return m
}

func newRootCmd() *cobra.Command {
	var (
		verbose bool
		mermaid bool
		dot     bool
	)

	cmd := &cobra.Command{
		Use:   "searchbox",
		Short: "Interactive demo of the search-box state machine",
		Long: `Drives the five-state search-box machine from stdin.

Commands: focus, unfocus, change <text>, search <text>, clear,
state, names, quit. Unknown events from the current state are
silently ignored, as the widget relies on.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			m := newWidgetMachine(log)
			if mermaid {
				fmt.Fprint(cmd.OutOrStdout(), m.ToMermaid())
				return nil
			}
			if dot {
				fmt.Fprint(cmd.OutOrStdout(), m.ToDOT())
				return nil
			}
			return runLoop(cmd, m)
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log ignored dispatches too")
	cmd.Flags().BoolVar(&mermaid, "mermaid", false, "print the Mermaid diagram and exit")
	cmd.Flags().BoolVar(&dot, "dot", false, "print the Graphviz diagram and exit")
	return cmd
}

func runLoop(cmd *cobra.Command, m *uifsm.Machine) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "search box ready, state: %s\n", m.Current())
	fmt.Fprintf(out, "events: %s\n", strings.Join(m.Names(), ", "))

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprintf(out, "[%s]> ", m.Current())
		if !scanner.Scan() {
			break
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		name, rest := fields[0], fields[1:]
		switch name {
		case "quit", "exit":
			return nil
		case "state":
			fmt.Fprintln(out, m.Current())
		case "names":
			fmt.Fprintln(out, strings.Join(m.Names(), ", "))
		default:
			if _, ok := m.Handler(name); !ok {
				fmt.Fprintf(out, "unknown command %q\n", name)
				continue
			}
			args := make([]any, 0, len(rest))
			for _, a := range rest {
				args = append(args, a)
			}
			m.Send(name, args...)
		}
	}
	return scanner.Err()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
