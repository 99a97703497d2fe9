// Package symbol classifies a stream of decoded code points into named
// categories and coalesces adjacent same-category runs into symbols,
// reporting each to an observer as soon as the run ends.
package symbol

// Category is a predicate over code points plus a small integer id and a
// concatenation policy. Multiple categories may answer Contains for the
// same code point; a Registry takes the first registered winner.
type Category interface {
	// ID returns the category's id, chosen by the registry's owner (the
	// tokenizer, in this module).
	ID() int
	// Contains reports whether cp belongs to this category.
	Contains(cp rune) bool
	// Concatenate reports whether adjacent same-category code points
	// coalesce into a single reported symbol string.
	Concatenate() bool
}

// RangeCategory matches code points in [Low, High] inclusive.
type RangeCategory struct {
	Id          int
	Low, High   rune
	concatenate bool
}

// NewRangeCategory builds a RangeCategory matching [low, high].
func NewRangeCategory(id int, low, high rune, concatenate bool) RangeCategory {
	return RangeCategory{Id: id, Low: low, High: high, concatenate: concatenate}
}

func (c RangeCategory) ID() int { return c.Id }
func (c RangeCategory) Contains(cp rune) bool { return cp >= c.Low && cp <= c.High }
func (c RangeCategory) Concatenate() bool { return c.concatenate }

// ArrayCategory matches an explicit, unordered set of code points.
type ArrayCategory struct {
	Id          int
	Points      []rune
	concatenate bool
}

// NewArrayCategory builds an ArrayCategory matching exactly points.
func NewArrayCategory(id int, points []rune, concatenate bool) ArrayCategory {
	return ArrayCategory{Id: id, Points: points, concatenate: concatenate}
}

func (c ArrayCategory) ID() int { return c.Id }

func (c ArrayCategory) Contains(cp rune) bool {
	for _, p := range c.Points {
		if p == cp {
			return true
		}
	}

	return false
}

func (c ArrayCategory) Concatenate() bool { return c.concatenate }

// StringCategory matches any code point present in an ASCII string of
// member characters; a convenience over ArrayCategory for categories that
// read naturally as a character class literal (e.g. "[];:").
type StringCategory struct {
	Id          int
	Members     string
	concatenate bool
}

// NewStringCategory builds a StringCategory whose members are the runes of
// members.
func NewStringCategory(id int, members string, concatenate bool) StringCategory {
	return StringCategory{Id: id, Members: members, concatenate: concatenate}
}

func (c StringCategory) ID() int { return c.Id }

func (c StringCategory) Contains(cp rune) bool {
	for _, r := range c.Members {
		if r == cp {
			return true
		}
	}

	return false
}

func (c StringCategory) Concatenate() bool { return c.concatenate }

// Registry holds an ordered set of categories and resolves a code point to
// the first one that claims it. The registry does not own its categories;
// callers must keep them alive for the registry's lifetime.
type Registry struct {
	categories []Category
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers a category. Registration order determines priority when
// multiple categories could match the same code point.
func (r *Registry) Add(c Category) {
	r.categories = append(r.categories, c)
}

// Lookup returns the first registered category containing cp.
func (r *Registry) Lookup(cp rune) (Category, bool) {
	for _, c := range r.categories {
		if c.Contains(cp) {
			return c, true
		}
	}

	return nil, false
}
