/*
Package main implements an interpreter for a restricted Forth dialect.

It reads a source program from a file, tokenizes it, extracts and version-
tags user-defined words, then evaluates the rewritten token stream against
a bounded stack of 16-bit signed integers. Printing primitives accumulate
into an output buffer flushed to stdout at the end of the run; the final
stack is always persisted to stack.fht in the current directory, decimal
values separated by single spaces.

Usage:

	forth <source-file> [stack-size=<N>]

stack-size gives the stack's capacity in bytes (two per element); it
defaults to 128 bytes (64 elements) when omitted.
*/
package main

import (
	"fmt"
	"os"

	"github.com/FrancoSecchi/go-the-forth/internal/logio"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main's testable body: it never calls os.Exit itself, returning
// the process exit code instead.
func run(argv []string, stdout, stderr *os.File) int {
	flagArgv, trace, dump := splitFlags(argv)

	parsed, err := parseArgs(flagArgv)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	data, err := os.ReadFile(parsed.sourcePath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	opts := []Option{WithStackCapacity(parsed.stackCapacity)}
	if trace {
		log := logio.New(stderr)
		opts = append(opts, WithTrace(log.Leveledf("TRACE")))
	}

	ip := New(opts...)
	res := ip.Run(string(data))

	fmt.Fprint(stdout, res.Output)

	if dump {
		dumpState(stderr, res)
	}

	// Exit status is always 0 once argument validation completes; internal
	// interpreter errors are reported through the output buffer, not the
	// exit code.
	return 0
}

// splitFlags pulls the optional `-trace`/`-dump` debugging flags out of
// argv, wherever they appear, returning the remaining positional
// arguments untouched. These are ambient debugging aids, separate from
// the interpreter's own positional CLI grammar, so they are parsed by
// simple membership test rather than through the stdlib flag package,
// which would otherwise insist they appear before the positional
// arguments.
func splitFlags(argv []string) (rest []string, trace, dump bool) {
	for _, a := range argv {
		switch a {
		case "-trace", "--trace":
			trace = true
		case "-dump", "--dump":
			dump = true
		default:
			rest = append(rest, a)
		}
	}
	return rest, trace, dump
}
