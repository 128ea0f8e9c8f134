package ecl

import (
	"log/slog"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
)

// constRef matches one constant reference placeholder: ".{NAME}." where
// NAME satisfies the identifier grammar. The submatch captures NAME.
var constRef = regexp.MustCompile(`\.\{([A-Za-z_][A-Za-z0-9_]*)\}\.`)

// maxSuggestions caps the "did you mean" candidates reported for an
// undefined constant reference.
const maxSuggestions = 3

// Refs returns the constant names referenced by placeholders in text, in
// order of appearance. Names are not validated against any registry.
func Refs(text string) []string {
	matches := constRef.FindAllStringSubmatch(text, -1)
	if matches == nil {
		return nil
	}

	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m[1]
	}

	return names
}

// Substitute replaces every ".{NAME}." placeholder in text with the
// canonical scalar form of the referenced constant's value.
//
// The scan is a single pass: each distinct NAME found by the initial scan is
// replaced everywhere in text, and replacement text is never re-scanned. A
// constant whose rendered value happens to contain a placeholder-shaped
// substring therefore passes through unexpanded.
func (t *Translator) Substitute(text string) (string, error) {
	matches := constRef.FindAllStringSubmatch(text, -1)
	if matches == nil {
		return text, nil
	}

	for _, m := range matches {
		name := m[1]

		if !t.reg.Has(name) {
			return "", ErrUndefinedConstant.
				Wrapf("'" + name + "'" + t.suggest(name)).
				With(slog.String("constant", name))
		}

		v, ok := Resolve(t.doc, name)
		if !ok {
			// Every registered name resolves; reaching this branch means the
			// registry and the tree disagree.
			return "", ErrUnresolvedConstant.
				Wrapf("'" + name + "'").
				With(slog.String("constant", name))
		}

		form, err := scalarText(v, name)
		if err != nil {
			return "", err
		}

		text = strings.ReplaceAll(text, ".{"+name+"}.", form)
	}

	return text, nil
}

// suggest returns a "did you mean" suffix listing registered names that
// fuzzy-match the undefined reference, or an empty string when nothing is
// close enough.
func (t *Translator) suggest(name string) string {
	ranked := fuzzy.Find(name, slices.Collect(t.reg.Names()))
	if len(ranked) == 0 {
		return ""
	}

	if len(ranked) > maxSuggestions {
		ranked = ranked[:maxSuggestions]
	}

	candidates := make([]string, len(ranked))
	for i, match := range ranked {
		candidates[i] = match.Str
	}

	return " (did you mean " + strings.Join(candidates, ", ") + "?)"
}

// scalarText renders a constant's value in its canonical textual form for
// insertion into a string: booleans as true/false, numbers in decimal, and
// strings verbatim without quoting.
func scalarText(v *Value, name string) (string, error) {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.Bool), nil

	case KindInt:
		return strconv.FormatInt(v.Int, 10), nil

	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64), nil

	case KindString:
		return v.Str, nil

	default:
		// Constants referenced from strings must be scalars.
		return "", ErrUnsupportedType.
			Wrapf("constant '" + name + "' is not a scalar (" + v.Kind.String() + ")").
			With(
				slog.String("constant", name),
				slog.String("kind", v.Kind.String()),
			)
	}
}

// Rewrite returns a derived document with substitution applied to every
// string leaf. The receiver's document is left untouched so constant
// resolution remains valid on the original tree.
func (t *Translator) Rewrite() (*Document, error) {
	root, err := t.rewriteTable(t.doc.Root)
	if err != nil {
		return nil, err
	}

	out := &Document{
		Root: root,
		Body: slices.Clone(t.doc.Body),
	}

	return out, nil
}

func (t *Translator) rewriteTable(src *Table) (*Table, error) {
	dst := NewTable()

	for key, v := range src.All() {
		rv, err := t.rewriteValue(v)
		if err != nil {
			return nil, err
		}

		dst.Set(key, rv)
	}

	return dst, nil
}

func (t *Translator) rewriteValue(v *Value) (*Value, error) {
	switch v.Kind {
	case KindString:
		text, err := t.Substitute(v.Str)
		if err != nil {
			return nil, err
		}

		return NewString(text), nil

	case KindArray:
		elems := make([]*Value, len(v.Array))

		for i, elem := range v.Array {
			re, err := t.rewriteValue(elem)
			if err != nil {
				return nil, err
			}

			elems[i] = re
		}

		return NewArray(elems...), nil

	case KindTable:
		table, err := t.rewriteTable(v.Table)
		if err != nil {
			return nil, err
		}

		return NewTableValue(table), nil

	default:
		return v, nil
	}
}
