package main

import (
	"strconv"
	"strings"
)

// validate verifies every token in tokens is a number, a control token, a
// recognized built-in reference (`name_c`), or a recognized user-word
// version (`name_k`). It also recursively validates every registered word
// body, so a definition that can never be reached statically still fails
// before any evaluation is attempted.
func validate(tokens []string, reg *registry) error {
	if err := validateTokens(tokens, reg); err != nil {
		return err
	}
	for _, w := range reg.words {
		if err := validateTokens(w.body, reg); err != nil {
			return err
		}
	}
	return nil
}

func validateTokens(tokens []string, reg *registry) error {
	for _, t := range tokens {
		if err := validateToken(t, reg); err != nil {
			return err
		}
	}
	return nil
}

func validateToken(token string, reg *registry) error {
	if controlTokens[token] || isNumericLiteral(token) {
		return nil
	}

	name, tagPart, ok := splitTag(token)
	if !ok {
		return errKind(WordNotFound)
	}

	if tagPart == "c" {
		if _, ok := resolveOp(name); ok {
			return nil
		}
		return errKind(WordNotFound)
	}

	k, err := strconv.Atoi(tagPart)
	if err != nil || k < 0 {
		return errKind(WordNotFound)
	}
	if reg.hasVersion(name, k) {
		return nil
	}
	return errKind(WordNotFound)
}

// splitTag separates a rewritten token into its base name and version tag
// at the last underscore, which is always the one the rewriter appended --
// a `."` payload may itself contain underscores, but the suffix the
// rewriter adds is always the final substring of the token.
func splitTag(token string) (name, tagPart string, ok bool) {
	idx := strings.LastIndexByte(token, '_')
	if idx < 0 {
		return "", "", false
	}
	return token[:idx], token[idx+1:], true
}
