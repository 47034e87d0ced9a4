// Package logio provides a small leveled logging facility around an
// io.Writer, used by the interpreter's optional trace output.
package logio

import (
	"fmt"
	"io"
	"sync"
)

// Logger writes leveled, prefixed lines to an underlying writer.
type Logger struct {
	mu  sync.Mutex
	out io.Writer
}

// New returns a Logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{out: w}
}

// Leveledf returns a printf-style function that prefixes every message
// with level, suitable for passing around as a plain func value (e.g. as
// the interpreter's trace callback) without exposing the Logger itself.
func (log *Logger) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) {
		log.Printf(level, mess, args...)
	}
}

// Printf writes one leveled, formatted line.
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	if log == nil || log.out == nil {
		return
	}
	log.mu.Lock()
	defer log.mu.Unlock()
	fmt.Fprintf(log.out, "%v %v\n", level, fmt.Sprintf(mess, args...))
}
