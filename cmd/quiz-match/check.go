package main

import (
	"flag"
	"fmt"

	"quiz-match/internal/board"
	"quiz-match/internal/diagnostic"
)

func runCheck(e *env, args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	quiet := fs.Bool("q", false, "print errors only")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	paths := fs.Args()
	if len(paths) == 0 {
		path, ok := e.boardFileArg(fs)
		if !ok {
			return exitUsage
		}

		paths = []string{path}
	}

	code := exitOK

	var total diagnostic.Diagnostics

	for _, path := range paths {
		f, err := board.LoadFile(path)
		if err != nil {
			fmt.Fprintln(e.stderr, err)
			code = exitFail

			continue
		}

		diags := board.Validate(f)
		total.Merge(*diags)

		for _, d := range diags.All() {
			if *quiet && d.Severity != diagnostic.SeverityError {
				continue
			}

			fmt.Fprintf(e.stdout, "%s: %s: %s\n", path, d.Severity, d)
		}

		if diags.HasErrors() {
			code = exitFail
			continue
		}

		if !*quiet {
			fmt.Fprintf(e.stdout, "%s: ok, %d board(s)\n", path, len(f.Boards))
		}
	}

	if len(paths) > 1 && !*quiet {
		fmt.Fprintf(e.stdout, "%d file(s): %d error(s), %d warning(s)\n",
			len(paths), len(total.Errors), len(total.Warnings))
	}

	return code
}
