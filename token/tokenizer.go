package token

import (
	"github.com/arloliu/bfsdl/diag"
	"github.com/arloliu/bfsdl/fsm"
)

// Observer receives tokens as the Tokenizer promotes them from symbols.
// Returning false from any callback halts the tokenizer.
type Observer interface {
	OnControl(text string) bool
	OnNumericLiteral(lit Literal) bool
	OnStringLiteral(text string) bool
	OnWord(text string) bool
}

const (
	stateMainSequence = iota
	stateNumericLiteral
	stateStringLiteral
	stateCount
)

// Tokenizer is a symbol.Observer that promotes coalesced symbol runs into
// tokens, delivered to an Observer. It owns a small state machine with
// three states: MainSequence (the default), NumericLiteral (while reading
// a `#...` literal), and StringLiteral (while reading a quoted string).
type Tokenizer struct {
	observer Observer
	reporter diag.Reporter
	machine  *fsm.Machine
	literal  numericLiteralParser
	strbuf   []byte

	curCategory Category
	curText     []byte
	parseError  bool
	keepParsing bool
}

// New builds a Tokenizer reporting tokens to observer and diagnostics
// through reporter.
func New(observer Observer, reporter diag.Reporter) (*Tokenizer, error) {
	m, err := fsm.New(stateCount)
	if err != nil {
		return nil, err
	}

	t := &Tokenizer{observer: observer, reporter: reporter, machine: m}

	if err := m.AddAction(stateMainSequence, fsm.Evaluate, t.mainSequenceEvaluate); err != nil {
		return nil, err
	}
	if err := m.AddAction(stateNumericLiteral, fsm.Entry, t.numericLiteralEntry); err != nil {
		return nil, err
	}
	if err := m.AddAction(stateNumericLiteral, fsm.Evaluate, t.numericLiteralEvaluate); err != nil {
		return nil, err
	}
	if err := m.AddAction(stateStringLiteral, fsm.Entry, t.stringLiteralEntry); err != nil {
		return nil, err
	}
	if err := m.AddAction(stateStringLiteral, fsm.Evaluate, t.stringLiteralEvaluate); err != nil {
		return nil, err
	}

	if err := m.Transition(stateMainSequence); err != nil {
		return nil, err
	}
	m.DoTransition()

	return t, nil
}

// OnMappedSymbol implements symbol.Observer.
func (t *Tokenizer) OnMappedSymbol(category int, text []byte) bool {
	t.curCategory = Category(category)
	t.curText = text
	t.keepParsing = true

	if err := t.machine.RunEvaluate(); err != nil {
		t.reporter.Internal(0, "tokenizer state machine: "+err.Error())
		t.parseError = true

		return false
	}

	return t.keepParsing
}

// OnUnmappedSymbol implements symbol.Observer.
func (t *Tokenizer) OnUnmappedSymbol(text []byte) bool {
	t.reporter.Runtime(0, "unexpected symbol")
	t.parseError = true

	return false
}

// EndParsing reports a Runtime error if the tokenizer is not quiescent
// (i.e. a numeric literal or string literal was left open at EOF). It
// returns false once any parse error has occurred, including that one.
func (t *Tokenizer) EndParsing() bool {
	if t.parseError {
		return false
	}

	cur, err := t.machine.CurrentState()
	if err != nil || cur != stateMainSequence {
		t.reporter.Runtime(0, "unparsed content in stream")
		t.parseError = true
	}

	return !t.parseError
}

func (t *Tokenizer) mainSequenceEvaluate() {
	switch t.curCategory {
	case CategoryControl:
		if string(t.curText) == `"` {
			if err := t.machine.Transition(stateStringLiteral); err != nil {
				t.fail("internal: " + err.Error())
			}

			return
		}

		if !t.observer.OnControl(string(t.curText)) {
			t.keepParsing = false
		}
	case CategoryHash:
		if err := t.machine.Transition(stateNumericLiteral); err != nil {
			t.fail("internal: " + err.Error())
		}
	case CategoryLetters:
		if !t.observer.OnWord(string(t.curText)) {
			t.keepParsing = false
		}
	case CategoryWhitespace:
		// ignored
	default:
		t.fail("unexpected symbol(s) at beginning of statement")
	}
}

func (t *Tokenizer) numericLiteralEntry() {
	t.literal.reset()
}

func (t *Tokenizer) numericLiteralEvaluate() {
	if belongsToGrammar(t.curCategory) {
		t.literal.parseMappedSymbol(t.curCategory, t.curText)
		if t.literal.result == Error {
			t.fail("invalid numeric literal")
		}

		return
	}

	lit, ok := t.literal.finish()
	if !ok {
		t.fail("invalid numeric literal")

		return
	}

	if !t.observer.OnNumericLiteral(lit) {
		t.keepParsing = false

		return
	}

	if err := t.machine.Transition(stateMainSequence); err != nil {
		t.fail("internal: " + err.Error())

		return
	}
	t.machine.DoTransition()

	// Replay this symbol, which does not belong to the literal, through
	// the state it just landed back on.
	t.mainSequenceEvaluate()
}

func (t *Tokenizer) stringLiteralEntry() {
	t.strbuf = t.strbuf[:0]
}

func (t *Tokenizer) stringLiteralEvaluate() {
	if t.curCategory == CategoryControl && string(t.curText) == `"` {
		text := string(t.strbuf)
		if err := t.machine.Transition(stateMainSequence); err != nil {
			t.fail("internal: " + err.Error())

			return
		}
		t.machine.DoTransition()

		if !t.observer.OnStringLiteral(text) {
			t.keepParsing = false
		}

		return
	}

	t.strbuf = append(t.strbuf, t.curText...)
}

func (t *Tokenizer) fail(msg string) {
	t.reporter.Runtime(0, msg)
	t.parseError = true
	t.keepParsing = false
}
