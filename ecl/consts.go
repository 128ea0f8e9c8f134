package ecl

import (
	"iter"
	"log/slog"
	"strings"
)

// constantsKey is the reserved table key that declares constants.
// Matched case-insensitively at any nesting depth.
const constantsKey = "constants"

// commentsKey is the reserved section key holding comment annotations.
// Matched case-insensitively; never emitted as data.
const commentsKey = "comments"

// isConstantsKey reports whether key names a constants table.
func isConstantsKey(key string) bool {
	return strings.EqualFold(key, constantsKey)
}

// isCommentsKey reports whether key names a comments entry.
func isCommentsKey(key string) bool {
	return strings.EqualFold(key, commentsKey)
}

// Registry is the flat, document-wide set of constant names discovered by
// [Discover]. Names iterate in discovery order (document order), which fixes
// the emission order of constant declarations. A Registry is immutable once
// discovery completes.
type Registry struct {
	names []string
	index map[string]struct{}
}

// Has reports whether name is a registered constant.
func (r *Registry) Has(name string) bool {
	_, ok := r.index[name]

	return ok
}

// Len returns the number of registered constants.
func (r *Registry) Len() int { return len(r.names) }

// Names returns an iterator over registered names in discovery order.
func (r *Registry) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, name := range r.names {
			if !yield(name) {
				return
			}
		}
	}
}

// add registers a new constant name, validating the identifier grammar and
// the single flat namespace invariant.
func (r *Registry) add(name string) error {
	if !IsIdent(name) {
		return ErrInvalidIdentifier.
			Wrapf("'" + name + "'").
			With(slog.String("constant", name))
	}

	if _, exists := r.index[name]; exists {
		return ErrDuplicateConstant.
			Wrapf("'" + name + "'").
			With(slog.String("constant", name))
	}

	r.names = append(r.names, name)
	r.index[name] = struct{}{}

	return nil
}

// Discover walks the entire document tree and registers every constant
// declared under a constants table, at any depth, in document order.
//
// Duplicate names are rejected globally: the second occurrence fails no
// matter which table declared the first.
func Discover(doc *Document) (*Registry, error) {
	reg := &Registry{index: make(map[string]struct{})}

	err := discoverTable(doc.Root, reg)
	if err != nil {
		return nil, err
	}

	return reg, nil
}

// discoverTable visits one table: constants tables contribute their keys to
// the registry, and every other value is searched recursively.
func discoverTable(t *Table, reg *Registry) error {
	for key, v := range t.All() {
		if isConstantsKey(key) {
			if v.Kind != KindTable {
				return ErrInvalidConstantsValue.
					With(slog.String("kind", v.Kind.String()))
			}

			for name := range v.Table.All() {
				err := reg.add(name)
				if err != nil {
					return err
				}
			}

			continue
		}

		err := discoverValue(v, reg)
		if err != nil {
			return err
		}
	}

	return nil
}

// discoverValue recurses into container values so constants may be declared
// at any nesting depth, including inside array elements.
func discoverValue(v *Value, reg *Registry) error {
	switch v.Kind {
	case KindTable:
		return discoverTable(v.Table, reg)

	case KindArray:
		for _, elem := range v.Array {
			err := discoverValue(elem, reg)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

// Resolve returns the value of a registered constant by depth-first search
// of the document tree in document order. The registry excludes duplicates,
// so at most one constants table contains the name.
func Resolve(doc *Document, name string) (*Value, bool) {
	return resolveTable(doc.Root, name)
}

func resolveTable(t *Table, name string) (*Value, bool) {
	for key, v := range t.All() {
		if isConstantsKey(key) && v.Kind == KindTable {
			if cv, ok := v.Table.Get(name); ok {
				return cv, true
			}

			continue
		}

		if cv, ok := resolveValue(v, name); ok {
			return cv, true
		}
	}

	return nil, false
}

func resolveValue(v *Value, name string) (*Value, bool) {
	switch v.Kind {
	case KindTable:
		return resolveTable(v.Table, name)

	case KindArray:
		for _, elem := range v.Array {
			if cv, ok := resolveValue(elem, name); ok {
				return cv, true
			}
		}
	}

	return nil, false
}
