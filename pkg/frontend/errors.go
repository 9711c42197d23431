package frontend

import (
	"fmt"
	"strings"
)

// Diagnostic is a single error record produced by a pipeline stage: a
// source location plus a human-readable message. Rendering a Diagnostic for
// a human is the surrounding CLI's job (spec §7); Diagnostic only carries
// the data.
type Diagnostic struct {
	Ref     SourceRef
	Message string
}

func (d Diagnostic) String() string {
	filename := ""
	if d.Ref.Filename != nil {
		filename = *d.Ref.Filename
	}
	return fmt.Sprintf("%s:%d:%d: %s", filename, d.Ref.Line, d.Ref.Column, d.Message)
}

// ErrorBuffer accumulates zero or more Diagnostics across a single pipeline
// stage. A stage either returns with an empty buffer or surfaces the whole
// buffer as its error, per spec §7: diagnostics are additive and a single
// run should produce as many of them as possible before failing.
type ErrorBuffer struct {
	diagnostics []Diagnostic
}

// Push records a new diagnostic.
func (b *ErrorBuffer) Push(ref SourceRef, format string, args ...interface{}) {
	b.diagnostics = append(b.diagnostics, Diagnostic{Ref: ref, Message: fmt.Sprintf(format, args...)})
}

// Empty reports whether no diagnostics have been recorded.
func (b *ErrorBuffer) Empty() bool {
	return len(b.diagnostics) == 0
}

// Diagnostics returns the accumulated records in recording order.
func (b *ErrorBuffer) Diagnostics() []Diagnostic {
	return b.diagnostics
}

// Err returns the buffer as an error if it holds any diagnostics, and nil
// otherwise. This is the "raise the buffer as a whole" step from spec §2/§7.
func (b *ErrorBuffer) Err() error {
	if b.Empty() {
		return nil
	}
	return b
}

// Error implements the error interface, joining every diagnostic on its own
// line.
func (b *ErrorBuffer) Error() string {
	var sb strings.Builder
	for i, d := range b.diagnostics {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(d.String())
	}
	return sb.String()
}
