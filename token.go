package main

import "unicode"

// tokenize converts raw source text into an ordered sequence of raw
// tokens, scanning left to right. It is total: every input, including the
// empty string, produces a (possibly empty) finite token list, and never
// returns an error -- the `."` literal form degrades gracefully to
// "whatever was accumulated" at end of input instead of failing.
func tokenize(src string) []string {
	runes := []rune(src)
	n := len(runes)
	var tokens []string

	i := 0
	for i < n {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}

		if runes[i] == '.' && i+2 < n && runes[i+1] == '"' && runes[i+2] == ' ' {
			start := i
			j := i + 2 // begin scanning from the preserved leading space
			for j < n && runes[j] != '"' {
				j++
			}
			if j < n {
				j++ // include the closing quote
			}
			tokens = append(tokens, string(runes[start:j]))
			i = j
			continue
		}

		if runes[i] == '.' {
			tokens = append(tokens, ".")
			i++
			continue
		}

		start := i
		for i < n && !unicode.IsSpace(runes[i]) {
			i++
		}
		tokens = append(tokens, string(runes[start:i]))
	}

	return tokens
}
