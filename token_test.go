package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \n\t  ", nil},
		{"numbers", "1 2 3 4 5", []string{"1", "2", "3", "4", "5"}},
		{"arithmetic", "1 2 + 4 -", []string{"1", "2", "+", "4", "-"}},
		{"definition", ": dup-twice dup dup ; 1 dup-twice",
			[]string{":", "dup-twice", "dup", "dup", ";", "1", "dup-twice"}},
		{"lone dot", "42 .", []string{"42", "."}},
		{"print text", `." hello"`, []string{`." hello"`}},
		{"print text then more", `." hi" 1 2 +`, []string{`." hi"`, "1", "2", "+"}},
		{"unterminated print text", `." hello`, []string{`." hello`}},
		{"print text preserves leading space", `." 42"`, []string{`." 42"`}},
		{"mixed case word", "DUP Dup dup", []string{"DUP", "Dup", "dup"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tokenize(tc.src)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("tokenize(%q) mismatch (-want +got):\n%s", tc.src, diff)
			}
		})
	}
}

func TestTokenize_RoundTrip(t *testing.T) {
	toks := []string{"1", "2", "+", "dup", "swap"}
	joined := ""
	for i, tok := range toks {
		if i > 0 {
			joined += " "
		}
		joined += tok
	}
	got := tokenize(joined)
	if diff := cmp.Diff(toks, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenize_NoTokenContainsWhitespaceExceptPrintText(t *testing.T) {
	for _, tok := range tokenize("1 2 foo bar+baz .") {
		for _, r := range tok {
			if r == ' ' || r == '\t' || r == '\n' {
				t.Fatalf("non-print-text token %q contains whitespace", tok)
			}
		}
	}
}
