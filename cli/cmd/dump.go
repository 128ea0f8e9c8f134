package cmd

import (
	"bufio"
	"context"
	"os"

	"github.com/ardnew/tecl/ecl"
	"github.com/ardnew/tecl/pkg"
)

// Dump parses input, applies constant substitution, and prints the derived
// document tree in the chosen format.
type Dump struct {
	JSON DumpJSON `cmd:"" default:"withargs" help:"Dump as JSON (default)." name:"json"`
	YAML DumpYAML `cmd:""                    help:"Dump as YAML."          name:"yaml"`
}

// DumpJSON prints the substituted document tree as JSON.
type DumpJSON struct {
	Indent int `default:"2" help:"Indent width for JSON output; 0 for compact." short:"i"`
}

// Run executes the dump json command.
func (j *DumpJSON) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	doc, err := substitutedDocument(ctx)
	if err != nil {
		return err
	}

	err = doc.FormatJSON(ctx, os.Stdout, j.Indent)
	if err != nil {
		return pkg.ErrJSONMarshal.Wrap(err)
	}

	return nil
}

// DumpYAML prints the substituted document tree as YAML.
type DumpYAML struct {
	Indent int `default:"2" help:"Indent width for YAML output; 0 for flow style." short:"i"`
}

// Run executes the dump yaml command.
func (y *DumpYAML) Run(ctx context.Context) (err error) {
	_, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	doc, err := substitutedDocument(ctx)
	if err != nil {
		return err
	}

	err = doc.FormatYAML(ctx, os.Stdout, y.Indent)
	if err != nil {
		return pkg.ErrYAMLMarshal.Wrap(err)
	}

	return nil
}

// substitutedDocument parses the input document and returns a derived tree
// with every constant placeholder replaced.
func substitutedDocument(ctx context.Context) (*ecl.Document, error) {
	doc, err := ecl.ParseReader(bufio.NewReader(input(ctx)))
	if err != nil {
		return nil, err
	}

	tr, err := ecl.New(doc)
	if err != nil {
		return nil, err
	}

	return tr.Rewrite()
}
