package main

import (
	"strconv"
	"strings"
)

// evaluator consumes a rewritten, validated token sequence against a
// shared stack and output buffer, with read-only access to the registry.
// It handles numeric push, built-in dispatch, user-word inlining via
// recursive evaluation of a stored body, and if/else/then.
//
// Control flow is uniform between top level and inside a word body: Eval
// is called recursively on whatever token slice needs evaluating, whether
// that's the program's own top level or a branch/body slice, with no
// special-casing of depth.
type evaluator struct {
	reg   *registry
	stack *stack
	out   *strings.Builder
	trace func(format string, args ...interface{})
}

func newEvaluator(reg *registry, st *stack, out *strings.Builder) *evaluator {
	return &evaluator{reg: reg, stack: st, out: out}
}

// Eval runs tokens to completion or to the first error, whichever comes
// first. The stack and output buffer are mutated in place; on error,
// whatever was pushed/appended before the failing step remains.
func (e *evaluator) Eval(tokens []string) error {
	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		if e.trace != nil {
			e.trace("eval %q depth=%d", tok, e.stack.Len())
		}

		switch {
		case isNumericLiteral(tok):
			n, _ := strconv.ParseInt(tok, 10, 16)
			if err := e.stack.Push(cell(n)); err != nil {
				return err
			}
			i++

		case tok == "if":
			next, err := e.evalIf(tokens, i)
			if err != nil {
				return err
			}
			i = next

		case tok == "else" || tok == "then":
			// Reached directly, not via evalIf's skip: a stray marker with
			// no open if has no independent effect.
			i++

		default:
			if err := e.evalTagged(tok); err != nil {
				return err
			}
			i++
		}
	}
	return nil
}

// evalIf handles the `if` at tokens[i]: it pops the condition, locates the
// branch extent, evaluates the taken branch (if any), and returns the
// index just past the matching `then`.
func (e *evaluator) evalIf(tokens []string, i int) (int, error) {
	cond, err := e.stack.Pop()
	if err != nil {
		return 0, err
	}

	elsePos, thenPos, err := branchExtent(tokens, i+1)
	if err != nil {
		return 0, err
	}

	if cond != 0 {
		end := thenPos
		if elsePos >= 0 {
			end = elsePos
		}
		if err := e.Eval(tokens[i+1 : end]); err != nil {
			return 0, err
		}
	} else if elsePos >= 0 {
		if err := e.Eval(tokens[elsePos+1 : thenPos]); err != nil {
			return 0, err
		}
	}

	return thenPos + 1, nil
}

// branchExtent scans forward from start (the token right after an `if`)
// tracking nesting depth, and returns the position of the first `else` at
// depth 1 (or -1 if none) and the position of the matching `then`. An `if`
// with no matching `then` is reported as InvalidWord.
func branchExtent(tokens []string, start int) (elsePos, thenPos int, err error) {
	elsePos = -1
	depth := 1
	for j := start; j < len(tokens); j++ {
		switch tokens[j] {
		case "if":
			depth++
		case "then":
			depth--
			if depth == 0 {
				return elsePos, j, nil
			}
		case "else":
			if depth == 1 && elsePos < 0 {
				elsePos = j
			}
		}
	}
	return -1, -1, errKind(InvalidWord)
}

// evalTagged dispatches a version-tagged token: `name_c` to the built-in
// operation catalog, `name_k` to a recursive evaluation of the registered
// body at ordinal k.
func (e *evaluator) evalTagged(token string) error {
	name, tagPart, ok := splitTag(token)
	if !ok {
		return errKind(WordNotFound)
	}

	if tagPart == "c" {
		id, ok := resolveOp(name)
		if !ok {
			return errKind(WordNotFound)
		}
		if isOutputOp(id) {
			return applyOutput(id, e.stack, e.out, name)
		}
		return applyStack(id, e.stack)
	}

	k, err := strconv.Atoi(tagPart)
	if err != nil || k < 0 {
		return errKind(WordNotFound)
	}
	body, ok := e.reg.bodyAt(name, k)
	if !ok {
		return errKind(WordNotFound)
	}
	return e.Eval(body)
}
