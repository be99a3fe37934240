package main

import (
	"flag"
	"fmt"
	"slices"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"go.uber.org/zap"

	"quiz-match/internal/board"
	"quiz-match/internal/match"
	"quiz-match/internal/pairing"
)

func runReplay(e *env, args []string) int {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	boardName := fs.String("board", "", "board name (default: script board, then config)")
	scriptPath := fs.String("script", "", "event script (required)")
	out := fs.String("o", "", "write the board file with the resulting mapping as seed")
	dump := fs.Bool("dump", false, "dump the final machine snapshot")
	fuzzy := fs.Bool("fuzzy", false, "replace undeclared ids with a confident match")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	if *scriptPath == "" {
		fmt.Fprintln(e.stderr, "replay: -script is required")
		return exitUsage
	}

	path, ok := e.boardFileArg(fs)
	if !ok {
		return exitUsage
	}

	script, err := board.LoadScript(*scriptPath)
	if err != nil {
		fmt.Fprintln(e.stderr, err)
		return exitFail
	}

	name := *boardName
	if name == "" {
		name = script.Board
	}

	f, b, ok := e.loadBoard(path, name)
	if !ok {
		return exitFail
	}

	m, err := b.NewMatcher(e.machineConfig(b))
	if err != nil {
		fmt.Fprintln(e.stderr, err)
		return exitFail
	}

	changes := 0
	m.Watch(func(pairing.EntrySets, pairing.Operation) { changes++ })

	for i, ev := range script.Events {
		ev = e.checkEventID(b, ev, *fuzzy)

		if err := m.Send(ev); err != nil {
			fmt.Fprintf(e.stderr, "event %d (%s): %v\n", i+1, ev, err)
			return exitFail
		}
	}

	e.log.Info("replay finished",
		zap.String("board", b.Name),
		zap.Int("events", len(script.Events)),
		zap.Int("changes", changes),
	)

	printPairs(e.stdout, m)

	if pk, pv := m.PendingKeys(), m.PendingValues(); len(pk)+len(pv) > 0 {
		fmt.Fprintf(e.stdout, "pending: keys=[%s] values=[%s]\n", strings.Join(pk, ","), strings.Join(pv, ","))
	}

	if *dump {
		spew.Fdump(e.stdout, m.Snapshot())
	}

	if *out != "" {
		b.SetSeed(m.EntrySets())

		if err := board.WriteFile(f, *out); err != nil {
			fmt.Fprintln(e.stderr, err)
			return exitFail
		}
	}

	return exitOK
}

// checkEventID warns about ids the board does not declare. The machine does
// not validate ids, so the event is sent regardless; with fuzzy set an
// unambiguous close match is used instead.
func (e *env) checkEventID(b *board.Board, ev pairing.Event, fuzzy bool) pairing.Event {
	known := b.KeyIDs()
	if ev.Kind == pairing.EventValue {
		known = b.ValueIDs()
	}

	if slices.Contains(known, ev.ID) {
		return ev
	}

	if fuzzy {
		id, ok := match.Resolve(ev.ID, known)
		if !ok {
			if c := match.Rank(ev.ID, known).Confident(); c != nil {
				id, ok = c.ID, true
			}
		}

		if ok {
			fmt.Fprintf(e.stderr, "note: %s %q resolved to %q\n", ev.Kind, ev.ID, id)
			ev.ID = id

			return ev
		}
	}

	msg := fmt.Sprintf("warning: %s %q is not declared on board %q", ev.Kind, ev.ID, b.Name)
	if s := match.Suggest(ev.ID, known, 3); len(s) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(s, ", "))
	}

	fmt.Fprintln(e.stderr, msg)

	return ev
}
