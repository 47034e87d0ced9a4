package main

import (
	"os"
	"strconv"
	"strings"
)

// persist serializes the stack as space-separated decimal integers,
// bottom-to-top, with no trailing newline (empty string for an empty
// stack), and writes it to path, truncating/creating the file. The stack
// itself is never modified by this step.
func persist(path string, s *stack) error {
	values := s.Values()
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(int(v))
	}
	return os.WriteFile(path, []byte(strings.Join(parts, " ")), 0o644)
}
