package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/ardnew/tecl/ecl"
	"github.com/ardnew/tecl/log"
)

// Translate reads a TOML document, applies constant discovery and
// substitution, and writes the translated dialect to the output file.
type Translate struct {
	Output string `help:"Output file path." name:"output" required:"" short:"o" type:"path"`
}

// Run executes the translate command.
func (t *Translate) Run(ctx context.Context) (err error) {
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

	out, err := os.Create(t.Output)
	if err != nil {
		return ErrWriteOutput.Wrap(err)
	}

	defer func(err *error) {
		cerr := out.Close()
		if cerr != nil && *err == nil {
			*err = ErrWriteOutput.Wrap(cerr)
		}
	}(&err)

	// Translate renders the whole document in memory before writing, so a
	// rendering failure leaves the output file empty rather than truncated
	// mid-block.
	err = tr.Translate(out)
	if err != nil {
		return err
	}

	log.DebugContext(ctx, "translation written",
		slog.String("output", t.Output),
		slog.Int("constants", tr.Registry().Len()),
	)

	fmt.Println("Translation completed successfully.")

	return nil
}
