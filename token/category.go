// Package token promotes the symbolizer's classified code points into a
// small vocabulary of tokens — control characters, numeric literals,
// string literals, and words — via a state machine that also drives the
// inline numeric-literal grammar.
package token

import "github.com/arloliu/bfsdl/symbol"

// Category ids the tokenizer registers with the symbolizer, in a fixed
// order (registration order decides which category claims a code point).
const (
	CategoryControl Category = iota
	CategoryDecimalDigits
	CategoryHash
	CategoryLetters
	CategoryOperators
	CategoryPeriod
	CategoryTilde
	CategoryWhitespace
)

// Category is a small integer identifying one of the tokenizer's fixed
// symbol categories.
type Category int

// NewRegistry builds the fixed symbol-category registry the tokenizer
// hands to a Symbolizer. Control additionally claims the double-quote
// character (which MainSequence special-cases to open a string literal)
// and '=' (the header grammar cannot assign a parameter without it).
// Letters additionally claims underscore, so
// identifiers like BFSDL_HEADER tokenize as a single Word.
func NewRegistry() *symbol.Registry {
	r := symbol.NewRegistry()

	r.Add(symbol.NewStringCategory(int(CategoryControl), "[];:\"=", false))
	r.Add(symbol.NewRangeCategory(int(CategoryDecimalDigits), '0', '9', true))
	r.Add(symbol.NewRangeCategory(int(CategoryHash), '#', '#', false))
	r.Add(symbol.NewRangeCategory(int(CategoryLetters), 'A', 'Z', true))
	r.Add(symbol.NewRangeCategory(int(CategoryLetters), 'a', 'z', true))
	r.Add(symbol.NewArrayCategory(int(CategoryLetters), []rune{'_'}, true))
	r.Add(symbol.NewStringCategory(int(CategoryOperators), "+-", false))
	r.Add(symbol.NewRangeCategory(int(CategoryPeriod), '.', '.', false))
	r.Add(symbol.NewStringCategory(int(CategoryTilde), "~", false))
	r.Add(symbol.NewStringCategory(int(CategoryWhitespace), " \t\n\r", true))

	return r
}
