package token

import (
	"strconv"

	"github.com/arloliu/bfsdl/errs"
)

// Base is the radix a numeric literal's digits are read in.
type Base int

// The four bases a numeric literal may use, selected by an optional tag
// letter immediately after '#'.
const (
	Binary      Base = 2
	Octal       Base = 8
	Decimal     Base = 10
	Hexadecimal Base = 16
)

// Result is the numeric-literal parser's progress after the most recent
// symbol.
type Result int

const (
	// NotComplete means the literal may still accept more digits.
	NotComplete Result = iota
	// Complete means a well-formed literal was parsed. The parser's own
	// result never takes this value: finish decides completion and returns
	// the Literal.
	Complete
	// Error means the literal's grammar was violated; the parser will not
	// recover without a Reset.
	Error
)

// Literal is a parsed numeric-literal value: a sign, a base, and the raw
// digit strings of its integer and (optional) fractional parts.
type Literal struct {
	Base           Base
	Negative       bool
	IntegerDigits  string
	FractionDigits string
	HasFraction    bool
}

// AsUint64 returns the literal as an unsigned value. It fails if the
// literal is negative, carries a fractional part, or has more digits than
// fit in 64 bits.
func (l Literal) AsUint64() (uint64, error) {
	if l.Negative {
		return 0, errs.ErrNumericLiteralSigned
	}
	if l.HasFraction {
		return 0, errs.ErrNumericLiteralHasFraction
	}

	v, err := strconv.ParseUint(l.IntegerDigits, int(l.Base), 64)
	if err != nil {
		return 0, errs.ErrNumericLiteralOverflow
	}

	return v, nil
}

// AsRune returns the literal's integer part as a code point, for contexts
// like DefaultStringTerm that store a character code.
func (l Literal) AsRune() (rune, error) {
	v, err := l.AsUint64()
	if err != nil {
		return 0, err
	}
	if v > 0x10FFFF {
		return 0, errs.ErrNumericLiteralOverflow
	}

	return rune(v), nil
}

// numericLiteralParser implements the literal grammar:
//
//	NumLit   := '#' [base_tag] [sign] digits ['.' digits]
//	base_tag := 'b' | 'o' | 'd' | 'x'   (default 'd')
//	sign     := '+' | '-'               (default '+')
//
// It is re-entered once per mapped symbol belonging to the literal's
// alphabet (DecimalDigits, Letters, Operators, Period); a symbol of any
// other category means the literal has ended and is handled by the
// tokenizer's MainSequence state instead (see finish).
type numericLiteralParser struct {
	phase          literalPhase
	base           Base
	negative       bool
	integerDigits  []byte
	fractionDigits []byte
	inFraction     bool
	result         Result
}

type literalPhase int

const (
	phaseBaseOrSign literalPhase = iota
	phaseSign
	phaseDigits
)

func (p *numericLiteralParser) reset() {
	*p = numericLiteralParser{base: Decimal, result: NotComplete}
}

// belongsToGrammar reports whether category is part of the numeric
// literal's alphabet, as opposed to a symbol that terminates it.
func belongsToGrammar(category Category) bool {
	switch category {
	case CategoryDecimalDigits, CategoryLetters, CategoryOperators, CategoryPeriod:
		return true
	default:
		return false
	}
}

// parseMappedSymbol consumes a coalesced run of code points belonging to
// the literal's grammar, a byte at a time.
func (p *numericLiteralParser) parseMappedSymbol(category Category, text []byte) {
	for _, b := range text {
		if p.result == Error {
			return
		}
		p.consumeByte(category, b)
	}
}

func (p *numericLiteralParser) consumeByte(category Category, b byte) {
	switch p.phase {
	case phaseBaseOrSign:
		if category == CategoryLetters && len(p.integerDigits) == 0 {
			if base, ok := baseTag(b); ok {
				p.base = base
				p.phase = phaseSign

				return
			}
		}

		p.phase = phaseSign
		p.consumeByte(category, b)
	case phaseSign:
		if category == CategoryOperators {
			switch b {
			case '+':
				p.negative = false
			case '-':
				p.negative = true
			default:
				p.fail()

				return
			}
			p.phase = phaseDigits

			return
		}

		p.phase = phaseDigits
		p.consumeByte(category, b)
	case phaseDigits:
		p.consumeDigitPhase(category, b)
	}
}

func (p *numericLiteralParser) consumeDigitPhase(category Category, b byte) {
	if category == CategoryPeriod {
		if p.inFraction || len(p.integerDigits) == 0 {
			p.fail()

			return
		}
		p.inFraction = true

		return
	}

	if category != CategoryDecimalDigits && category != CategoryLetters {
		p.fail()

		return
	}

	v, ok := digitValue(b)
	if !ok || v >= int(p.base) {
		p.fail()

		return
	}

	if p.inFraction {
		p.fractionDigits = append(p.fractionDigits, b)
	} else {
		p.integerDigits = append(p.integerDigits, b)
	}
}

func (p *numericLiteralParser) fail() {
	p.result = Error
}

// finish is called when a symbol outside the literal's grammar arrives (or
// at a context boundary that requires the literal to already be
// well-formed). It reports whether the digits accumulated so far form a
// complete literal.
func (p *numericLiteralParser) finish() (Literal, bool) {
	if p.result == Error || len(p.integerDigits) == 0 {
		return Literal{}, false
	}
	if p.inFraction && len(p.fractionDigits) == 0 {
		return Literal{}, false
	}

	return Literal{
		Base:           p.base,
		Negative:       p.negative,
		IntegerDigits:  string(p.integerDigits),
		FractionDigits: string(p.fractionDigits),
		HasFraction:    p.inFraction,
	}, true
}

func baseTag(b byte) (Base, bool) {
	switch b {
	case 'b', 'B':
		return Binary, true
	case 'o', 'O':
		return Octal, true
	case 'd', 'D':
		return Decimal, true
	case 'x', 'X':
		return Hexadecimal, true
	default:
		return 0, false
	}
}

func digitValue(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	default:
		return 0, false
	}
}
