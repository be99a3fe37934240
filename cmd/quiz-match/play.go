package main

import (
	"flag"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"quiz-match/internal/board"
	"quiz-match/internal/tui"
)

func runPlay(e *env, args []string) int {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	fs.SetOutput(e.stderr)

	boardName := fs.String("board", "", "board name")
	out := fs.String("o", "", "write the board file with the final mapping as seed")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	path, ok := e.boardFileArg(fs)
	if !ok {
		return exitUsage
	}

	f, b, ok := e.loadBoard(path, *boardName)
	if !ok {
		return exitFail
	}

	// The terminal belongs to the board while it runs.
	e.log = e.sessionLogger()

	m, err := b.NewMatcher(e.machineConfig(b))
	if err != nil {
		fmt.Fprintln(e.stderr, err)
		return exitFail
	}

	model := tui.New(b, m, tui.Options{
		Theme: tui.Theme{
			Armed:  e.cfg.UI.ArmedColor,
			Paired: e.cfg.UI.PairedColor,
			Cursor: e.cfg.UI.CursorColor,
		},
		ShowLabels: e.cfg.UI.ShowLabels,
		Logger:     e.log,
	})

	if _, err := tea.NewProgram(model).Run(); err != nil {
		fmt.Fprintln(e.stderr, "play:", err)
		return exitFail
	}

	printPairs(e.stdout, m)

	if *out != "" {
		b.SetSeed(m.EntrySets())

		if err := board.WriteFile(f, *out); err != nil {
			fmt.Fprintln(e.stderr, err)
			return exitFail
		}
	}

	return exitOK
}

// sessionLogger is the logger for an interactive session. Without a log file
// it discards everything so log lines do not interleave with the board.
func (e *env) sessionLogger() *zap.Logger {
	if e.cfg.Log.File == "" {
		return zap.NewNop()
	}

	return e.log
}
