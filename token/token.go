package token

// Kind discriminates a Token's payload.
type Kind int

const (
	KindControl Kind = iota
	KindNumericLiteral
	KindStringLiteral
	KindWord
)

// Token is the tagged value the tokenizer promotes a symbol run into:
// Control(string), NumericLiteral(value), StringLiteral(value), or
// Word(string). Exactly one of Text/Numeric is meaningful, selected by
// Kind.
type Token struct {
	Kind    Kind
	Text    string
	Numeric Literal
}

// Control builds a Control token.
func Control(text string) Token { return Token{Kind: KindControl, Text: text} }

// NumericLiteral builds a NumericLiteral token.
func NumericLiteral(lit Literal) Token { return Token{Kind: KindNumericLiteral, Numeric: lit} }

// StringLiteral builds a StringLiteral token.
func StringLiteral(text string) Token { return Token{Kind: KindStringLiteral, Text: text} }

// Word builds a Word token.
func Word(text string) Token { return Token{Kind: KindWord, Text: text} }

// Describe names the token's kind for diagnostic messages: "control
// character(s)", "numeric literal", "string literal", "identifier".
func (t Token) Describe() string {
	switch t.Kind {
	case KindControl:
		return "control character(s)"
	case KindNumericLiteral:
		return "numeric literal"
	case KindStringLiteral:
		return "string literal"
	case KindWord:
		return "identifier"
	default:
		return "token"
	}
}

// Rendered returns the token's text for diagnostic display: the literal
// text for Control/StringLiteral/Word, or a placeholder for
// NumericLiteral (whose raw source text the tokenizer does not retain).
func (t Token) Rendered() string {
	if t.Kind == KindNumericLiteral {
		return "#" + t.Numeric.IntegerDigits
	}

	return t.Text
}
