// Package strhash provides a hashed string: a (text, hash) pair suitable as
// a fast map key while preserving a strict-weak total order, used by the
// object tree to key its property map.
package strhash

import "hash/fnv"

// String carries an immutable string alongside its 32-bit FNV-1a hash.
type String struct {
	text string
	hash uint32
}

// New computes the FNV-1a hash of s and returns a String.
func New(s string) String {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s)) // hash.Hash32.Write never errors
	return String{text: s, hash: h.Sum32()}
}

// Text returns the original string.
func (h String) Text() string {
	return h.text
}

// Hash returns the 32-bit FNV-1a hash.
func (h String) Hash() uint32 {
	return h.hash
}

// Equal reports whether two hashed strings carry the same text. Hash
// equality is checked first as a cheap rejection before the byte compare.
func (h String) Equal(other String) bool {
	return h.hash == other.hash && h.text == other.text
}

// Less implements a strict-weak total order: primarily by hash (unsigned),
// secondarily by lexicographic byte comparison. This lets String be used as
// an ordered-container key while keeping hash-first the common case.
func (h String) Less(other String) bool {
	if h.hash != other.hash {
		return h.hash < other.hash
	}

	return h.text < other.text
}
