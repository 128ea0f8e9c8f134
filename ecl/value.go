package ecl

import (
	"encoding/json"
	"iter"
	"strconv"
)

// Kind identifies the variant held by a [Value].
//
// The set is closed: every TOML value the translator accepts maps onto
// exactly one of these kinds, and the serializer switches exhaustively over
// them. Source values outside the set (date-times, for example) are parsed
// into KindInvalid so the serializer can report them by name.
type Kind int

const (
	KindInvalid Kind = iota // invalid
	KindBool                // bool
	KindInt                 // int
	KindFloat               // float
	KindString              // string
	KindArray               // array
	KindTable               // table
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindTable:
		return "table"
	default:
		return "invalid"
	}
}

// Value is one node of the document tree.
// Exactly one variant field is meaningful, selected by Kind.
type Value struct {
	Kind  Kind
	Bool  bool
	Int   int64
	Float float64
	Str   string
	Array []*Value
	Table *Table

	// Raw names the source type of a KindInvalid value for error reporting.
	Raw string
}

// NewBool creates a boolean value.
func NewBool(b bool) *Value { return &Value{Kind: KindBool, Bool: b} }

// NewInt creates an integer value.
func NewInt(i int64) *Value { return &Value{Kind: KindInt, Int: i} }

// NewFloat creates a float value.
func NewFloat(f float64) *Value { return &Value{Kind: KindFloat, Float: f} }

// NewString creates a string value.
func NewString(s string) *Value { return &Value{Kind: KindString, Str: s} }

// NewArray creates an array value from the given elements.
func NewArray(elems ...*Value) *Value {
	return &Value{Kind: KindArray, Array: elems}
}

// NewTableValue wraps a table as a value.
func NewTableValue(t *Table) *Value { return &Value{Kind: KindTable, Table: t} }

// IsScalar reports whether the value is a bool, int, float, or string.
func (v *Value) IsScalar() bool {
	switch v.Kind {
	case KindBool, KindInt, KindFloat, KindString:
		return true
	default:
		return false
	}
}

// ToNative converts the value to its native Go representation,
// suitable for marshaling to JSON or YAML.
func (v *Value) ToNative() any {
	switch v.Kind {
	case KindBool:
		return v.Bool

	case KindInt:
		return v.Int

	case KindFloat:
		return v.Float

	case KindString:
		return v.Str

	case KindArray:
		elems := make([]any, len(v.Array))
		for i, e := range v.Array {
			elems[i] = e.ToNative()
		}

		return elems

	case KindTable:
		return v.Table.ToNative()

	default:
		return nil
	}
}

// MarshalJSON implements json.Marshaler.
// Tables marshal through [Table.MarshalJSON] so key order is preserved at
// every nesting depth.
func (v *Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindBool:
		return json.Marshal(v.Bool)

	case KindInt:
		return json.Marshal(v.Int)

	case KindFloat:
		return json.Marshal(v.Float)

	case KindString:
		return json.Marshal(v.Str)

	case KindArray:
		return json.Marshal(v.Array)

	case KindTable:
		return v.Table.MarshalJSON()

	default:
		return []byte("null"), nil
	}
}

// Table is an ordered mapping from key to value.
// Keys are unique and iterate in insertion order.
type Table struct {
	keys    []string
	entries map[string]*Value
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{entries: make(map[string]*Value)}
}

// Set adds or replaces the value stored under key.
// A new key is appended to the iteration order.
func (t *Table) Set(key string, v *Value) {
	if _, exists := t.entries[key]; !exists {
		t.keys = append(t.keys, key)
	}

	t.entries[key] = v
}

// Get returns the value stored under key.
func (t *Table) Get(key string) (*Value, bool) {
	v, ok := t.entries[key]

	return v, ok
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	_, ok := t.entries[key]

	return ok
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.keys) }

// Keys returns the keys in insertion order.
// The returned slice is shared with the table and must not be modified.
func (t *Table) Keys() []string { return t.keys }

// All returns an iterator over key/value pairs in insertion order.
func (t *Table) All() iter.Seq2[string, *Value] {
	return func(yield func(string, *Value) bool) {
		for _, key := range t.keys {
			if !yield(key, t.entries[key]) {
				return
			}
		}
	}
}

// ToNative converts the table to a native Go map structure.
func (t *Table) ToNative() map[string]any {
	result := make(map[string]any, len(t.keys))
	for key, v := range t.All() {
		result[key] = v.ToNative()
	}

	return result
}

// MarshalJSON implements json.Marshaler, preserving key order.
func (t *Table) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}

	for i, key := range t.keys {
		if i > 0 {
			buf = append(buf, ',')
		}

		buf = append(buf, strconv.Quote(key)...)
		buf = append(buf, ':')

		data, err := json.Marshal(t.entries[key])
		if err != nil {
			return nil, err
		}

		buf = append(buf, data...)
	}

	return append(buf, '}'), nil
}

// Node is one top-level item of a document in emission order:
// either a keyed entry of the root table or a standalone comment line.
type Node struct {
	// Key names a root table entry, or is empty for a standalone comment.
	Key string
	// Comment holds a section's trailing comment trivia, or the text of a
	// standalone comment when Key is empty.
	Comment string
}

// Document is a parsed configuration document: the ordered tree of all
// top-level entries plus the comment trivia collected by the front end.
type Document struct {
	// Root holds every top-level key in document order.
	Root *Table
	// Body lists top-level items in emission order, interleaving standalone
	// comments with the keys of Root.
	Body []Node
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{Root: NewTable()}
}

// ToNative converts the document tree to a native Go map structure.
func (d *Document) ToNative() map[string]any { return d.Root.ToNative() }

// MarshalJSON implements json.Marshaler, preserving key order.
func (d *Document) MarshalJSON() ([]byte, error) { return d.Root.MarshalJSON() }
