package ecl

import (
	"io"
	"log/slog"
	"strings"
)

// sectionDepth is the indentation depth at which top-level sections emit.
const sectionDepth = 1

// Translator runs one translation of a parsed document. It owns the
// document tree and the constant registry for exactly one run; independent
// translations never share state.
type Translator struct {
	doc *Document
	reg *Registry
}

// New creates a Translator for the given document, running constant
// discovery over the whole tree. Discovery failures (non-table constants
// values, invalid or duplicate names) are returned immediately.
func New(doc *Document) (*Translator, error) {
	reg, err := Discover(doc)
	if err != nil {
		return nil, err
	}

	return &Translator{doc: doc, reg: reg}, nil
}

// Registry returns the constant registry populated during discovery.
func (t *Translator) Registry() *Registry { return t.reg }

// Document returns the document tree owned by this translation.
func (t *Translator) Document() *Document { return t.doc }

// Translate writes the full translation to w: constant declarations first,
// then one block per top-level section in document order.
//
// The output is rendered in memory before anything is written, so a
// rendering failure produces no partial output.
func (t *Translator) Translate(w io.Writer) error {
	var sb strings.Builder

	err := t.emitDeclarations(&sb)
	if err != nil {
		return err
	}

	err = t.emitSections(&sb)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, sb.String())

	return err
}

// emitDeclarations writes one "def NAME := value;" line per registered
// constant, in discovery order, followed by a blank separator line when any
// constants exist.
func (t *Translator) emitDeclarations(sb *strings.Builder) error {
	if t.reg.Len() == 0 {
		return nil
	}

	for name := range t.reg.Names() {
		v, ok := Resolve(t.doc, name)
		if !ok {
			return ErrUnresolvedConstant.
				Wrapf("'" + name + "'").
				With(slog.String("constant", name))
		}

		text, err := t.Render(v, sectionDepth)
		if err != nil {
			return err
		}

		sb.WriteString("def " + name + " := " + text + ";\n")
	}

	sb.WriteString("\n")

	return nil
}

// emitSections walks the document's top-level items in order, emitting each
// table as a named block and each standalone comment as an annotation line.
// Non-table top-level keys never emit as data.
func (t *Translator) emitSections(sb *strings.Builder) error {
	emitted := 0

	for _, node := range t.doc.Body {
		if node.Key == "" {
			emitComments(sb, node.Comment, sectionDepth)

			continue
		}

		v, ok := t.doc.Root.Get(node.Key)
		if !ok || v.Kind != KindTable {
			// Top-level scalars and arrays are not sections; they carry no
			// comment trivia of their own, so nothing emits.
			continue
		}

		if emitted > 0 {
			sb.WriteString("\n")
		}

		err := t.emitSection(sb, node.Key, v.Table, node.Comment)
		if err != nil {
			return err
		}

		emitted++
	}

	return nil
}

// emitSection writes one "name = $[ ... ]" block followed by any trailing
// comment trivia attached to the section.
func (t *Translator) emitSection(
	sb *strings.Builder,
	name string,
	table *Table,
	trivia string,
) error {
	if !IsIdent(name) {
		return ErrUnsupportedSectionName.
			Wrapf("'" + name + "'").
			With(slog.String("section", name))
	}

	sb.WriteString(indent(sectionDepth) + name + " = $[\n")

	for key, v := range table.All() {
		// Constants were consumed by discovery, and comments are annotation
		// only; neither emits as data.
		if isConstantsKey(key) || isCommentsKey(key) {
			continue
		}

		if !IsIdent(key) {
			return ErrUnsupportedIdentifier.
				Wrapf("'" + key + "'").
				With(
					slog.String("section", name),
					slog.String("key", key),
				)
		}

		text, err := t.Render(v, sectionDepth+1)
		if err != nil {
			return err
		}

		sb.WriteString(indent(sectionDepth+1) + key + " = " + text + "\n")
	}

	sb.WriteString(indent(sectionDepth) + "]")

	if trivia != "" {
		for line := range strings.SplitSeq(trivia, "\n") {
			sb.WriteString("\n" + indent(sectionDepth) + `\ ` + stripCommentMarker(line))
		}
	}

	sb.WriteString("\n")

	return nil
}

// emitComments writes one backslash-prefixed annotation line per comment
// line at the given depth.
func emitComments(sb *strings.Builder, text string, depth int) {
	for line := range strings.SplitSeq(text, "\n") {
		sb.WriteString(indent(depth) + `\ ` + stripCommentMarker(line) + "\n")
	}
}

// stripCommentMarker removes the source comment marker and surrounding
// whitespace from one comment line.
func stripCommentMarker(line string) string {
	return strings.TrimSpace(strings.Trim(line, "# \t"))
}
