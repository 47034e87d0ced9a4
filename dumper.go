package main

import (
	"fmt"
	"io"
)

// dumpState writes a human-readable summary of the final stack and the
// word registry's defined names and version counts to w, for the `-dump`
// flag.
func dumpState(w io.Writer, res Result) {
	fmt.Fprintf(w, "stack (%d): %v\n", len(res.Stack), res.Stack)

	if res.Registry == nil || len(res.Registry.index) == 0 {
		fmt.Fprintln(w, "words: (none defined)")
		return
	}

	fmt.Fprintln(w, "words:")
	for name, versions := range res.Registry.index {
		fmt.Fprintf(w, "  %s: %d version(s)\n", name, len(versions))
	}
}
