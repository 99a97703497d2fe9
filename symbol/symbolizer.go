package symbol

import "github.com/arloliu/bfsdl/codec"

// Observer receives symbols as the Symbolizer classifies them. Neither
// callback may retain text beyond the call: the backing array is reused or
// discarded immediately after the callback returns.
type Observer interface {
	// OnMappedSymbol reports a run of code points belonging to category,
	// concatenated (or a single code point, when the category does not
	// concatenate). Returning false halts parsing.
	OnMappedSymbol(category int, text []byte) bool
	// OnUnmappedSymbol reports a code point that matched no registered
	// category. Returning false halts parsing.
	OnUnmappedSymbol(text []byte) bool
}

// Symbolizer decodes a byte stream through a Codec into code points,
// classifies each against a Registry, and reports coalesced runs to an
// Observer.
type Symbolizer struct {
	codec    codec.Codec
	registry *Registry
	observer Observer

	pending    bool
	pendingCat int
	text       []byte
}

// New builds a Symbolizer decoding with c, classifying against registry,
// and reporting to observer.
func New(c codec.Codec, registry *Registry, observer Observer) *Symbolizer {
	return &Symbolizer{codec: c, registry: registry, observer: observer}
}

// Parse classifies as much of data as it can and returns how many bytes it
// consumed. consumed < len(data) with no error means data's tail holds an
// incomplete multi-byte encoding; the caller should shift the remainder to
// the front of its buffer and retry after refilling. ok is false once the
// observer has signaled it should stop (e.g. an unmapped code point).
func (s *Symbolizer) Parse(data []byte) (consumed int, ok bool) {
	i := 0
	for i < len(data) {
		cp, size := s.codec.DecodeRune(data[i:])
		if size == 0 {
			break
		}
		raw := data[i : i+size]

		cat, found := s.registry.Lookup(cp)
		if !found {
			if !s.flush() {
				return i, false
			}
			if !s.observer.OnUnmappedSymbol(raw) {
				return i + size, false
			}

			i += size

			continue
		}

		if s.pending && s.pendingCat == cat.ID() && cat.Concatenate() {
			s.text = append(s.text, raw...)
			i += size

			continue
		}

		if !s.flush() {
			return i, false
		}

		if cat.Concatenate() {
			s.pending = true
			s.pendingCat = cat.ID()
			s.text = append(s.text[:0:0], raw...)
			i += size

			continue
		}

		if !s.observer.OnMappedSymbol(cat.ID(), raw) {
			return i + size, false
		}

		i += size
	}

	return i, true
}

// EndParsing flushes any pending coalesced symbol. Call once no more bytes
// will be supplied.
func (s *Symbolizer) EndParsing() bool {
	return s.flush()
}

func (s *Symbolizer) flush() bool {
	if !s.pending {
		return true
	}

	cat, text := s.pendingCat, s.text
	s.pending = false
	s.text = nil

	return s.observer.OnMappedSymbol(cat, text)
}
