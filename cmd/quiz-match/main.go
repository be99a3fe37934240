// Package main provides the CLI entrypoint for quiz-match.
//
// quiz-match loads pairing boards from YAML and drives them through the
// pairing state machine:
//   - check validates board files
//   - replay applies a recorded event script and prints the resulting pairs
//   - play opens an interactive terminal board
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"quiz-match/internal/board"
	"quiz-match/internal/config"
	qlog "quiz-match/internal/log"
	"quiz-match/internal/match"
	"quiz-match/internal/pairing"
)

// Exit codes.
const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// env is what every subcommand gets.
type env struct {
	cfg    config.Config
	log    *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

type command struct {
	name    string
	summary string
	run     func(e *env, args []string) int
}

var commands = []command{
	{name: "check", summary: "validate board files", run: runCheck},
	{name: "replay", summary: "apply an event script to a board", run: runReplay},
	{name: "play", summary: "pair items interactively", run: runPlay},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("quiz-match", flag.ContinueOnError)
	fs.SetOutput(stderr)

	configPath := fs.String("config", "", "config file (default $QUIZMATCH_CONFIG or ~/.config/quiz-match/config.yaml)")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: quiz-match [-config FILE] [-log-level LEVEL] <command> [flags] [FILE]")
		fmt.Fprintln(stderr, "\ncommands:")

		for _, c := range commands {
			fmt.Fprintf(stderr, "  %-8s %s\n", c.name, c.summary)
		}

		fmt.Fprintln(stderr, "\nglobal flags:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "config:", err)
		return exitFail
	}

	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	logOut := stderr
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintln(stderr, "log file:", err)
			return exitFail
		}
		defer f.Close()

		logOut = f
	}

	logger, err := qlog.New(cfg.Log.Level, logOut)
	if err != nil {
		fmt.Fprintln(stderr, "log:", err)
		return exitUsage
	}
	defer func() { _ = logger.Sync() }()

	e := &env{cfg: cfg, log: logger, stdout: stdout, stderr: stderr}

	name := fs.Arg(0)
	for _, c := range commands {
		if c.name == name {
			e.log = qlog.Named(logger, c.name)
			return c.run(e, fs.Args()[1:])
		}
	}

	fmt.Fprintf(stderr, "unknown command %q", name)

	if s := match.Suggest(name, commandNames(), 1); len(s) > 0 {
		fmt.Fprintf(stderr, " (did you mean %s?)", s[0])
	}

	fmt.Fprintln(stderr)

	return exitUsage
}

func commandNames() []string {
	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.name
	}

	return names
}

// boardFileArg returns the positional board file, falling back to the config.
func (e *env) boardFileArg(fs *flag.FlagSet) (string, bool) {
	switch {
	case fs.NArg() > 1:
		fmt.Fprintf(e.stderr, "%s: expected one board file, got %d\n", fs.Name(), fs.NArg())
		return "", false
	case fs.NArg() == 1:
		return fs.Arg(0), true
	case e.cfg.Board.File != "":
		return e.cfg.Board.File, true
	default:
		fmt.Fprintf(e.stderr, "%s: no board file given\n", fs.Name())
		return "", false
	}
}

// loadBoard loads path and picks the named board. The file is validated
// first and any diagnostics are printed; errors abort.
func (e *env) loadBoard(path, name string) (*board.File, *board.Board, bool) {
	f, err := board.LoadFile(path)
	if err != nil {
		fmt.Fprintln(e.stderr, err)
		return nil, nil, false
	}

	diags := board.Validate(f)
	for _, d := range diags.All() {
		fmt.Fprintf(e.stderr, "%s: %s\n", d.Severity, d)
	}

	if err := diags.Error(); err != nil {
		e.log.Debug("board file rejected", zap.String("file", path), zap.Error(err))
		return nil, nil, false
	}

	if name == "" {
		name = e.cfg.Board.Name
	}

	b, err := f.Board(name)
	if err != nil {
		fmt.Fprintf(e.stderr, "%s: %v (boards: %v)\n", path, err, f.Names())
		return nil, nil, false
	}

	return f, b, true
}

func (e *env) machineConfig(b *board.Board) pairing.Config {
	cfg := pairing.DefaultConfig()
	cfg.ID = b.Name
	cfg.Logger = e.log

	return cfg
}

func printPairs(w io.Writer, m pairing.Matcher) {
	pairs := m.Pairs()
	if len(pairs) == 0 {
		fmt.Fprintln(w, "(no pairs)")
		return
	}

	for _, p := range pairs {
		fmt.Fprintf(w, "%s -> %s\n", p.Key, p.Value)
	}
}
