package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/ardnew/tecl/ecl"
)

// Check runs the full translation pipeline without writing any output file,
// reporting a summary of the validated document.
type Check struct {
	Quiet bool `help:"Suppress the summary; the result is the exit status." short:"q"`
}

// Styles for the check summary.
//
//nolint:gochecknoglobals
var (
	checkOKStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	checkCountStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	checkLabelStyle = lipgloss.NewStyle().Faint(true)
)

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	doc, err := ecl.ParseReader(bufio.NewReader(input(ctx)))
	if err != nil {
		return err
	}

	tr, err := ecl.New(doc)
	if err != nil {
		return err
	}

	// A discarded translation exercises every substitution and rendering
	// path, so check failures match translate failures exactly.
	err = tr.Translate(io.Discard)
	if err != nil {
		return err
	}

	if c.Quiet {
		return nil
	}

	sections := 0
	refs := 0

	for _, v := range doc.Root.All() {
		if v.Kind == ecl.KindTable {
			sections++
		}

		refs += countRefs(v)
	}

	fmt.Fprintf(os.Stdout, "%s %s %s, %s %s, %s %s\n",
		checkOKStyle.Render("ok"),
		checkCountStyle.Render(fmt.Sprintf("%d", sections)),
		checkLabelStyle.Render(plural(sections, "section")),
		checkCountStyle.Render(fmt.Sprintf("%d", tr.Registry().Len())),
		checkLabelStyle.Render(plural(tr.Registry().Len(), "constant")),
		checkCountStyle.Render(fmt.Sprintf("%d", refs)),
		checkLabelStyle.Render(plural(refs, "placeholder")),
	)

	return nil
}

// countRefs counts placeholder references in every string leaf under v.
func countRefs(v *ecl.Value) int {
	switch v.Kind {
	case ecl.KindString:
		return len(ecl.Refs(v.Str))

	case ecl.KindArray:
		n := 0
		for _, elem := range v.Array {
			n += countRefs(elem)
		}

		return n

	case ecl.KindTable:
		n := 0
		for _, elem := range v.Table.All() {
			n += countRefs(elem)
		}

		return n

	default:
		return 0
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return noun
	}

	return noun + "s"
}
