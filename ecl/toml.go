package ecl

// The TOML front end. Decoding is delegated to BurntSushi/toml; this file
// only rebuilds the decoder's output as an ordered [Document] tree and
// collects the comment trivia the decoder discards.

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// pathSep joins key path segments for order lookups. NUL cannot appear in a
// TOML bare or quoted key segment produced by the decoder.
const pathSep = "\x00"

// ParseReader reads a TOML document from r and builds its document tree.
func ParseReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, WrapError(err)
	}

	return ParseString(string(data))
}

// ParseString parses a TOML document and builds its document tree.
//
// The decoder reports key order through [toml.MetaData.Keys], which is used
// to reconstruct insertion order at every nesting depth. Decode failures,
// including duplicate keys within one table, return ErrMalformedInput
// wrapping the decoder's diagnostic.
func ParseString(data string) (*Document, error) {
	var raw map[string]any

	md, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, ErrMalformedInput.Wrap(err)
	}

	order := childOrder(md.Keys())

	doc := NewDocument()
	doc.Root = buildTable(raw, nil, order)

	leading, trailing := scanTrivia(data)

	for _, comment := range leading {
		doc.Body = append(doc.Body, Node{Comment: comment})
	}

	for _, key := range doc.Root.Keys() {
		doc.Body = append(doc.Body, Node{Key: key, Comment: trailing[key]})
	}

	return doc, nil
}

// childOrder maps each table path to its child keys in document order.
func childOrder(keys []toml.Key) map[string][]string {
	order := make(map[string][]string)

	for _, key := range keys {
		if len(key) == 0 {
			continue
		}

		parent := strings.Join(key[:len(key)-1], pathSep)
		name := key[len(key)-1]

		if !slices.Contains(order[parent], name) {
			order[parent] = append(order[parent], name)
		}
	}

	return order
}

// buildTable converts one decoded map into an ordered table, using the
// recorded key order for this path. Keys the metadata missed (elements of
// inline arrays, for example) append in sorted order for determinism.
func buildTable(m map[string]any, path []string, order map[string][]string) *Table {
	table := NewTable()

	known := order[strings.Join(path, pathSep)]
	for _, key := range known {
		v, ok := m[key]
		if !ok {
			continue
		}

		table.Set(key, buildValue(v, append(path, key), order))
	}

	if table.Len() < len(m) {
		rest := make([]string, 0, len(m)-table.Len())

		for key := range m {
			if !table.Has(key) {
				rest = append(rest, key)
			}
		}

		slices.Sort(rest)

		for _, key := range rest {
			table.Set(key, buildValue(m[key], append(path, key), order))
		}
	}

	return table
}

// buildValue converts one decoded value into a tree node. Value kinds the
// dialect cannot express become KindInvalid carrying the source type name.
func buildValue(v any, path []string, order map[string][]string) *Value {
	switch vv := v.(type) {
	case bool:
		return NewBool(vv)

	case int64:
		return NewInt(vv)

	case float64:
		return NewFloat(vv)

	case string:
		return NewString(vv)

	case []any:
		elems := make([]*Value, len(vv))
		for i, e := range vv {
			elems[i] = buildValue(e, path, order)
		}

		return NewArray(elems...)

	case []map[string]any:
		// Arrays of tables decode to this shape.
		elems := make([]*Value, len(vv))
		for i, e := range vv {
			elems[i] = NewTableValue(buildTable(e, path, order))
		}

		return NewArray(elems...)

	case map[string]any:
		return NewTableValue(buildTable(vv, path, order))

	case time.Time:
		return &Value{Kind: KindInvalid, Raw: "date-time"}

	default:
		return &Value{Kind: KindInvalid, Raw: typeName(v)}
	}
}

// typeName names an unsupported decoded type for error reporting.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}

	return strings.TrimPrefix(fmt.Sprintf("%T", v), "toml.")
}

// scanTrivia collects comment trivia from the document source: full-line
// comments preceding the first section header, and trailing comments on
// section header lines. Comments attached to key/value lines are discarded,
// matching the emitter's reserved-key handling.
func scanTrivia(data string) (leading []string, trailing map[string]string) {
	trailing = make(map[string]string)
	sawSection := false

	for line := range strings.SplitSeq(data, "\n") {
		trim := strings.TrimSpace(line)

		switch {
		case trim == "":
			continue

		case strings.HasPrefix(trim, "#"):
			if !sawSection {
				leading = append(leading, trim)
			}

		case strings.HasPrefix(trim, "["):
			sawSection = true

			end := strings.IndexByte(trim, ']')
			if end < 0 {
				continue
			}

			name := strings.Trim(trim[:end+1], "[] \t")

			rest := trim[end+1:]
			if i := strings.IndexByte(rest, '#'); i >= 0 {
				if _, exists := trailing[name]; !exists {
					trailing[name] = strings.TrimSpace(rest[i:])
				}
			}
		}
	}

	return leading, trailing
}
