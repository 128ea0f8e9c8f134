package ecl

import (
	"log/slog"
	"strconv"
	"strings"
)

// indentUnit is the single-character indent token repeated once per
// nesting level in rendered output.
const indentUnit = "\t"

// indent returns the indentation prefix for the given depth.
// Negative depths indent like depth zero.
func indent(depth int) string {
	if depth <= 0 {
		return ""
	}

	return strings.Repeat(indentUnit, depth)
}

// Render serializes a value into target-dialect text at the given depth.
//
// Scalars render to their canonical text, strings are substituted and
// double-quoted, arrays become "#( ... )" lists with elements at the same
// depth, and tables become "$[ ... ]" blocks whose entries indent at depth
// and whose closing bracket indents one level shallower. Containers recurse
// one level deeper.
func (t *Translator) Render(v *Value, depth int) (string, error) {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool), nil

	case KindInt:
		return strconv.FormatInt(v.Int, 10), nil

	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64), nil

	case KindString:
		text, err := t.Substitute(v.Str)
		if err != nil {
			return "", err
		}

		// Input strings are assumed not to contain unescaped quotes.
		return `"` + text + `"`, nil

	case KindArray:
		return t.renderArray(v.Array, depth)

	case KindTable:
		return t.renderTable(v.Table, depth)

	default:
		kind := v.Kind.String()
		if v.Raw != "" {
			kind = v.Raw
		}

		return "", ErrUnsupportedType.
			Wrapf(kind).
			With(slog.String("type", kind))
	}
}

// renderArray renders "#( v1, v2, ..., vn )"; an empty array renders with
// two interior spaces, "#(  )".
func (t *Translator) renderArray(elems []*Value, depth int) (string, error) {
	items := make([]string, len(elems))

	for i, elem := range elems {
		text, err := t.Render(elem, depth)
		if err != nil {
			return "", err
		}

		items[i] = text
	}

	return "#( " + strings.Join(items, ", ") + " )", nil
}

// renderTable renders a "$[ ... ]" block with one "key = value" line per
// entry, comma-and-newline separated, and the closing bracket indented one
// level shallower than the entries.
func (t *Translator) renderTable(table *Table, depth int) (string, error) {
	entries := make([]string, 0, table.Len())

	for key, v := range table.All() {
		if !IsIdent(key) {
			return "", ErrUnsupportedIdentifier.
				Wrapf("'" + key + "'").
				With(slog.String("key", key))
		}

		text, err := t.Render(v, depth+1)
		if err != nil {
			return "", err
		}

		entries = append(entries, indent(depth)+key+" = "+text)
	}

	return "$[\n" + strings.Join(entries, ",\n") + "\n" + indent(depth-1) + "]", nil
}
