// Package tree implements the object tree: an ordered list of field
// descriptors plus a hashed-string-keyed property map, populated by the
// interpreter and handed back to callers on a successful parse.
package tree

import (
	"strconv"

	"github.com/arloliu/bfsdl/errs"
	"github.com/arloliu/bfsdl/field"
	"github.com/arloliu/bfsdl/internal/strhash"
)

// Kind tags the kind of child a Tree can hold.
type Kind int

const (
	KindProperty Kind = iota
	KindField
	// KindTree is reserved for nested-scope children; AddTree always
	// rejects it today.
	KindTree
)

// Property is a (name, raw bytes) leaf with typed accessors.
type Property struct {
	name strhash.String
	data []byte
}

// NewProperty returns a property named name carrying no data.
func NewProperty(name string) *Property {
	return &Property{name: strhash.New(name)}
}

// Name returns the property's name.
func (p *Property) Name() string { return p.name.Text() }

// SetData replaces the property's raw bytes.
func (p *Property) SetData(data []byte) {
	p.data = append([]byte(nil), data...)
}

// SetString stores s's UTF-8 bytes verbatim, with no implicit terminator.
func (p *Property) SetString(s string) {
	p.SetData([]byte(s))
}

// Data returns the property's raw bytes.
func (p *Property) Data() []byte { return p.data }

// AsStringUTF8 decodes the stored bytes as UTF-8.
func (p *Property) AsStringUTF8() string { return string(p.data) }

// AsU64 parses the stored bytes as a decimal unsigned integer.
func (p *Property) AsU64() (uint64, error) {
	v, err := strconv.ParseUint(string(p.data), 10, 64)
	if err != nil {
		return 0, errs.ErrPropertyType
	}

	return v, nil
}

// AsBool interprets the stored bytes as "true"/"false".
func (p *Property) AsBool() (bool, error) {
	switch string(p.data) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errs.ErrPropertyType
	}
}

// Field is an ordered tree child describing a numeric or string field.
type Field struct {
	Name    string
	Numeric *field.NumericField
	String  *field.StringField
}

// TypeString renders the field's deterministic type string.
func (f Field) TypeString() string {
	switch {
	case f.Numeric != nil:
		return f.Numeric.TypeString()
	case f.String != nil:
		return f.String.TypeString()
	default:
		return ""
	}
}

// FieldCallback is invoked once per field in declaration order.
type FieldCallback func(*Field)

// PropertyCallback is invoked once per property, in a stable but
// unspecified order.
type PropertyCallback func(*Property)

// Tree is a single object-tree node: an ordered field list plus a
// hashed-string-keyed property map.
type Tree struct {
	fields     []*Field
	properties map[uint32][]*Property
	propOrder  []strhash.String
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{properties: make(map[uint32][]*Property)}
}

// AddProperty inserts p if no property of the same name already exists.
func (t *Tree) AddProperty(p *Property) error {
	if t.FindProperty(p.Name()) != nil {
		return errs.ErrPropertyExists
	}

	h := p.name.Hash()
	t.properties[h] = append(t.properties[h], p)
	t.propOrder = append(t.propOrder, p.name)

	return nil
}

// AddField appends f to the ordered field list.
func (t *Tree) AddField(f *Field) {
	t.fields = append(t.fields, f)
}

// AddTree rejects a nested-tree child; reserved for a future extension.
func (t *Tree) AddTree(*Tree) error {
	return errs.ErrNestedTreeUnsupported
}

// FindProperty returns the property named name, or nil if none exists.
func (t *Tree) FindProperty(name string) *Property {
	hs := strhash.New(name)
	for _, p := range t.properties[hs.Hash()] {
		if p.name.Equal(hs) {
			return p
		}
	}

	return nil
}

// GetStringProperty returns the named property's UTF-8 value, or "" if the
// property does not exist.
func (t *Tree) GetStringProperty(name string) string {
	p := t.FindProperty(name)
	if p == nil {
		return ""
	}

	return p.AsStringUTF8()
}

// IterateFields visits every field in declaration order.
func (t *Tree) IterateFields(cb FieldCallback) {
	for _, f := range t.fields {
		cb(f)
	}
}

// IterateProperties visits every property in insertion order, so a given
// tree instance always iterates the same way.
func (t *Tree) IterateProperties(cb PropertyCallback) {
	for _, name := range t.propOrder {
		if p := t.FindProperty(name.Text()); p != nil {
			cb(p)
		}
	}
}
