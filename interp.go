package main

import (
	"strings"

	"github.com/FrancoSecchi/go-the-forth/internal/panicerr"
)

// Interpreter runs one program against a fresh stack, output buffer, and
// word registry, then persists the final stack. A single instance is
// meant for a single run: no state persists across runs, and there is
// nothing to share across goroutines since execution is strictly
// synchronous.
type Interpreter struct {
	stackCapacity int
	persistPath   string
	trace         func(format string, args ...interface{})
}

// New constructs an Interpreter with the given options applied over the
// defaults (64-element stack, "stack.fht" persistence path, no tracing).
func New(opts ...Option) *Interpreter {
	ip := &Interpreter{}
	for _, opt := range defaultOptions {
		opt(ip)
	}
	for _, opt := range opts {
		opt(ip)
	}
	return ip
}

// Result is everything observable about one run, beyond the output text
// itself: the final stack and the word registry, both useful for an
// optional post-run dump.
type Result struct {
	Output   string
	Stack    []cell
	Registry *registry
}

// Run tokenizes, rewrites, validates, and evaluates src, persisting the
// final stack to the configured path regardless of outcome. It never
// returns a Go error for anything the closed Kind taxonomy covers -- those
// are rendered into Result.Output instead, since no interpreter error is
// fatal to the process; all are reported through stdout. A defensive
// panic boundary guards against an unanticipated implementation bug
// surfacing as a bare panic.
func (ip *Interpreter) Run(src string) Result {
	reg := newRegistry()
	st := newStack(ip.stackCapacity)
	var out strings.Builder

	err := panicerr.Recover("interpreter", func() error {
		return ip.run(src, reg, st, &out)
	})
	if err != nil {
		out.WriteString(errKind(InvalidWord).Error())
		out.WriteString("\n")
	}

	if perr := persist(ip.persistPath, st); perr != nil {
		out.WriteString(errKind(FailWritingFile).Error())
		out.WriteString("\n")
	}

	return Result{Output: out.String(), Stack: st.Values(), Registry: reg}
}

// run performs the rewrite -> validate -> evaluate pipeline, appending the
// first error's rendered text to out and stopping.
func (ip *Interpreter) run(src string, reg *registry, st *stack, out *strings.Builder) error {
	tokens := tokenize(src)

	rewritten, err := rewrite(tokens, reg)
	if err != nil {
		out.WriteString(err.Error())
		out.WriteString("\n")
		return nil
	}

	if err := validate(rewritten, reg); err != nil {
		out.WriteString(err.Error())
		out.WriteString("\n")
		return nil
	}

	ev := newEvaluator(reg, st, out)
	ev.trace = ip.trace
	if err := ev.Eval(rewritten); err != nil {
		out.WriteString(err.Error())
		out.WriteString("\n")
	}
	return nil
}
