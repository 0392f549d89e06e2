// makefmt wraps a make invocation and rewrites its standard output into
// terse, colorized one-line summaries in real time, while passing compiler
// and linker warnings/errors through untouched.
//
// Usage:
//
//	makefmt make
//	makefmt make -j8
//	makefmt --raw make target
//
// Standard error of the wrapped command is not rewritten. The exit code of
// make is propagated.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dkoosis/makefmt/internal/config"
	"github.com/dkoosis/makefmt/internal/runner"
	"github.com/dkoosis/makefmt/pkg/render"
	"github.com/dkoosis/makefmt/pkg/stream"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("makefmt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	// Help goes to stdout, parse errors to stderr; printing is deferred to
	// the ErrHelp branch so a bad flag does not dump help on stdout.
	fs.Usage = func() {}
	rawFlag := fs.Bool("raw", false, "pass all output through unmodified")
	themeFlag := fs.String("theme", "", "theme: default, mono")
	configFlag := fs.String("config", config.DefaultPath, "config file path")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			usage(stdout)
			fs.SetOutput(stdout)
			fs.PrintDefaults()
			return 0
		}
		return 2
	}

	words := fs.Args()
	if code, done := validateCommand(words, stdout, stderr); done {
		return code
	}

	file, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(stderr, "makefmt: %v\n", err)
		return 2
	}
	settings := config.Resolve(file, config.Flags{
		Raw:      *rawFlag,
		RawSet:   flagWasSet(fs, "raw"),
		Theme:    *themeFlag,
		ThemeSet: flagWasSet(fs, "theme"),
	})

	theme := render.ThemeByName(settings.Theme)
	if settings.NoColor || !isTTYWriter(stdout) {
		theme = render.MonoTheme()
	}

	pipeline := stream.New(render.New(theme), stdout, settings.Enabled)
	code, err := runner.Run(context.Background(), words[0], words[1:], pipeline, stderr)
	if err != nil && !errors.Is(err, runner.ErrInterrupted) {
		fmt.Fprintf(stderr, "makefmt: %v\n", err)
	}
	return code
}

// validateCommand checks the wrapped command words. Returns (code, true)
// when the run should end here.
func validateCommand(words []string, stdout, stderr io.Writer) (int, bool) {
	if len(words) == 0 {
		fmt.Fprintln(stderr, "makefmt: no command specified")
		return 2, true
	}
	if words[0] == "-h" || words[0] == "--help" {
		usage(stdout)
		return 0, true
	}
	if words[0] != "make" {
		fmt.Fprintf(stderr, "makefmt: %q is not a make command\n", words[0])
		return 2, true
	}
	for _, w := range words[1:] {
		// run/runraw targets stream program output that must not be
		// rewritten.
		if w == "run" || w == "runraw" {
			fmt.Fprintln(stderr, "makefmt: this target should be run directly, without makefmt")
			return 2, true
		}
	}
	return 0, false
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "makefmt makes make's output succinct while preserving error messages.")
	fmt.Fprintln(w, "Usage: makefmt [flags] make [make-args...]")
	fmt.Fprintln(w, "       makefmt make -j8")
}

// flagWasSet reports whether the named flag appeared on the command line.
func flagWasSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
