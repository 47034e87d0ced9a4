package main

import (
	"strconv"
	"strings"
)

// controlTokens are pushed verbatim by both the rewriter and the body
// collector; they are never tagged and never consulted against the
// registry or catalog.
var controlTokens = map[string]bool{
	"if":   true,
	"else": true,
	"then": true,
}

// isNumericLiteral reports whether token parses as a signed value fitting
// in the 16-bit range the stack operates on.
func isNumericLiteral(token string) bool {
	_, err := strconv.ParseInt(token, 10, 16)
	return err == nil
}

// rewrite performs definition extraction and version tagging: it
// lower-cases tokens (preserving `."` payloads verbatim), verifies
// balanced `:`/`;` definitions, strips `: name ... ;` forms into reg while
// registering each, and tags every remaining non-control token with the
// version it resolves to at the point of occurrence.
func rewrite(tokens []string, reg *registry) ([]string, error) {
	norm := make([]string, len(tokens))
	for i, t := range tokens {
		if isPrintText(t) {
			norm[i] = t
			continue
		}
		norm[i] = strings.ToLower(t)
	}

	if err := checkDefinitionFormat(norm); err != nil {
		return nil, err
	}

	var out []string
	i := 0
	for i < len(norm) {
		tok := norm[i]
		if tok == ":" {
			i++
			if i >= len(norm) {
				return nil, errKind(InvalidWordFormat)
			}
			name := norm[i]
			if isNumericLiteral(name) {
				return nil, errKind(InvalidWord)
			}
			i++

			var body []string
			for i < len(norm) && norm[i] != ";" {
				body = append(body, tag(norm[i], reg))
				i++
			}
			if i >= len(norm) {
				return nil, errKind(InvalidWordFormat)
			}
			i++ // consume ';'

			reg.define(name, body)
			continue
		}

		out = append(out, tag(tok, reg))
		i++
	}

	return out, nil
}

// checkDefinitionFormat validates `:`/`;` balance: every token containing
// `:` must equal `:` exactly (same for `;`), and the two counts must
// match. A `."` literal is exempt from the containment check since its
// payload may itself legitimately contain a colon or semicolon.
func checkDefinitionFormat(tokens []string) error {
	var opens, closes int
	for _, t := range tokens {
		if isPrintText(t) {
			continue
		}
		if strings.Contains(t, ":") && t != ":" {
			return errKind(InvalidWordFormat)
		}
		if strings.Contains(t, ";") && t != ";" {
			return errKind(InvalidWordFormat)
		}
		if t == ":" {
			opens++
		}
		if t == ";" {
			closes++
		}
	}
	if opens != closes {
		return errKind(InvalidWordFormat)
	}
	return nil
}

// tag binds token to the definition visible at this point of occurrence:
// a number is left as-is, a known user word is suffixed with its current
// ordinal, a built-in is suffixed `_c`, and anything else is left
// untagged for the validator to reject. Control tokens pass through
// unchanged.
func tag(token string, reg *registry) string {
	if controlTokens[token] {
		return token
	}
	if isNumericLiteral(token) {
		return token
	}
	if ord, ok := reg.latestOrdinal(token); ok {
		return token + "_" + strconv.Itoa(ord)
	}
	if _, ok := resolveOp(token); ok {
		return token + "_c"
	}
	return token
}
