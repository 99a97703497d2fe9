// Package diag implements the parser's three-channel diagnostic sink.
//
// Every component that can fail reports through one of three channels:
//
//   - Internal: an invariant the code believed impossible was broken.
//     Never recovered from in-process; the current operation aborts.
//   - Misuse: a public API was called incorrectly. The operation returns a
//     safe default (false / nil / a no-op).
//   - Runtime: an expected failure mode (bad syntax, unknown parameter, a
//     read failure). The operation returns a failure code.
//
// Handlers default to no-op. Rather than process-wide handler slots, this
// package routes diagnostics through a per-parse Sink value injected into
// the stream driver, so one parse cannot stomp on another's handlers.
package diag

// Handler receives one diagnostic: the module that raised it, the line
// within the parsed source it pertains to (0 when not applicable, e.g. an
// Internal error raised before any input was read), and the message text.
type Handler func(moduleName string, line int, text string)

// Sink bundles the three diagnostic channels. The zero value is valid and
// silently drops every diagnostic.
type Sink struct {
	Internal Handler
	Misuse   Handler
	Runtime  Handler
}

func noop(string, int, string) {}

// NewSink returns a Sink with no-op handlers for any channel left nil.
func NewSink(internal, misuse, runtime Handler) Sink {
	s := Sink{Internal: internal, Misuse: misuse, Runtime: runtime}
	s.fillDefaults()
	return s
}

func (s *Sink) fillDefaults() {
	if s.Internal == nil {
		s.Internal = noop
	}
	if s.Misuse == nil {
		s.Misuse = noop
	}
	if s.Runtime == nil {
		s.Runtime = noop
	}
}

// Reporter binds a Sink to a fixed module name: each component constructs
// one Reporter for its own name and calls its methods instead of threading
// a module-name string through every call.
type Reporter struct {
	sink   Sink
	module string
}

// NewReporter binds sink to module. A zero Sink reports nothing.
func NewReporter(sink Sink, module string) Reporter {
	sink.fillDefaults()

	return Reporter{sink: sink, module: module}
}

// Internal reports an Internal-channel diagnostic.
func (r Reporter) Internal(line int, text string) {
	r.sink.Internal(r.module, line, text)
}

// Misuse reports a Misuse-channel diagnostic.
func (r Reporter) Misuse(line int, text string) {
	r.sink.Misuse(r.module, line, text)
}

// Runtime reports a Runtime-channel diagnostic.
func (r Reporter) Runtime(line int, text string) {
	r.sink.Runtime(r.module, line, text)
}
