// Package position tracks where a parse currently is in its source: the
// line/column, plus bounded pretext (recently accepted bytes) and posttext
// (first rejected bytes) windows used to render a human-readable diagnostic
// context.
package position

import (
	"fmt"
	"strings"

	"github.com/arloliu/bfsdl/internal/ring"
)

// Tracker maps consumed bytes to line/column and renders printable context
// around the last-parsed byte. A Tracker is scoped to a single parse; its
// counters reset only via Reset.
type Tracker struct {
	name string

	newlineChar byte
	hasNewline  bool
	currentLine int

	pretext  *ring.Window
	posttext []byte
	postSize int
}

// New creates a Tracker named name, with a pretext window of pretextLen
// bytes and a posttext buffer of posttextLen bytes.
func New(name string, pretextLen, posttextLen int) (*Tracker, error) {
	w, err := ring.New(pretextLen)
	if err != nil {
		return nil, fmt.Errorf("position: allocating pretext window: %w", err)
	}

	t := &Tracker{
		name:        name,
		currentLine: 1,
		pretext:     w,
		posttext:    make([]byte, posttextLen),
	}

	return t, nil
}

// Name returns the tracker's source name, used in diagnostic headers.
func (t *Tracker) Name() string {
	return t.name
}

// Reset clears line/column counters and both context windows, starting a
// fresh parse under the same name.
func (t *Tracker) Reset() {
	t.newlineChar = 0
	t.hasNewline = false
	t.currentLine = 1
	t.pretext.Reset()
	t.postSize = 0
}

// CurrentLine returns the 1-based line number of the last-processed byte.
func (t *Tracker) CurrentLine() int {
	return t.currentLine
}

// CurrentColumn returns the column of the byte after the last accepted byte
// on the current line.
func (t *Tracker) CurrentColumn() uint64 {
	return t.pretext.EndCounter() + 1
}

// ContextBeginColumn is the pretext window's begin counter; a non-zero
// value means the printable context was truncated and should be prefixed
// with "...".
func (t *Tracker) ContextBeginColumn() uint64 {
	return t.pretext.BeginCounter()
}

// ContextPositionOffset is how many characters into the printable pretext
// the caret should be drawn.
func (t *Tracker) ContextPositionOffset() int {
	return t.pretext.Size()
}

// ProcessNewData folds accepted bytes into the line/column counters and the
// pretext window. The first 0x0A or 0x0D byte seen determines the canonical
// newline character for the remainder of the parse; bytes matching it start
// a new line and reset the pretext window, without being pushed into it.
// Every other byte, including the other of 0x0A/0x0D, is pushed.
func (t *Tracker) ProcessNewData(data []byte) {
	t.postSize = 0 // New data invalidates any previously captured remainder.

	for _, b := range data {
		if !t.hasNewline && (b == 0x0a || b == 0x0d) {
			t.newlineChar = b
			t.hasNewline = true
		}
		if t.hasNewline && b == t.newlineChar {
			t.pretext.Reset()
			t.currentLine++

			continue
		}

		t.pretext.Push([]byte{b})
	}
}

// ProcessRemainder captures up to len(posttext) bytes that were rejected
// after the last accepted byte, for use by PrintableContext.
func (t *Tracker) ProcessRemainder(data []byte) {
	n := len(data)
	if n > len(t.posttext) {
		n = len(t.posttext)
	}
	copy(t.posttext, data[:n])
	t.postSize = n
}

// PrintableContext renders the pretext window followed by the posttext
// buffer, each byte shown as its ASCII glyph when printable ([0x20, 0x7e])
// or as a \xNN escape otherwise. Rendering of the posttext stops at the
// first 0x0A or 0x0D byte.
func (t *Tracker) PrintableContext() string {
	var sb strings.Builder

	size := t.pretext.Size()
	for i := 0; i < size; i++ {
		writeEscaped(&sb, t.pretext.Get(i))
	}

	for i := 0; i < t.postSize; i++ {
		b := t.posttext[i]
		if b == 0x0a || b == 0x0d {
			break
		}
		writeEscaped(&sb, b)
	}

	return sb.String()
}

func writeEscaped(sb *strings.Builder, b byte) {
	if b >= 0x20 && b <= 0x7e {
		sb.WriteByte(b)
		return
	}
	fmt.Fprintf(sb, "\\x%02x", b)
}
