package main

// Option configures an Interpreter at construction time: stack capacity,
// the persistence path, and an optional trace callback.
type Option func(*Interpreter)

// WithStackCapacity sets the stack's element capacity. The default is 64
// elements (128 bytes / 2, the interpreter's default stack size in bytes).
func WithStackCapacity(n int) Option {
	return func(ip *Interpreter) { ip.stackCapacity = n }
}

// WithPersistPath overrides where the final stack is written. The default
// is "stack.fht" in the current working directory.
func WithPersistPath(path string) Option {
	return func(ip *Interpreter) { ip.persistPath = path }
}

// WithTrace installs a callback invoked once per evaluator step, for
// debugging; nil (the default) disables tracing entirely.
func WithTrace(fn func(format string, args ...interface{})) Option {
	return func(ip *Interpreter) { ip.trace = fn }
}

const (
	defaultStackCapacity = 64
	defaultPersistPath   = "stack.fht"
)

var defaultOptions = []Option{
	WithStackCapacity(defaultStackCapacity),
	WithPersistPath(defaultPersistPath),
}
