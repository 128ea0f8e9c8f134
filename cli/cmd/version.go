package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ardnew/tecl/pkg"
)

// Version prints version information.
type Version struct {
	Verbose bool `help:"Also print configuration and cache paths." short:"v"`

	ConfigFile string `default:"${configFile}" hidden:""`
	CacheDir   string `default:"${cacheDir}"   hidden:""`
}

// Run executes the version command.
func (v *Version) Run(ctx context.Context) error {
	w := io.Writer(os.Stdout)
	if ktx := kongContextFrom(ctx); ktx != nil {
		w = ktx.Stdout
	}

	fmt.Fprintf(w, "%s version %s\n", pkg.Name, strings.TrimSpace(pkg.Version))

	if v.Verbose {
		fmt.Fprintf(w, "  config: %s.json\n", v.ConfigFile)
		fmt.Fprintf(w, "  cache:  %s\n", v.CacheDir)
	}

	return nil
}
