//go:build !pprof

package cli

import (
	"context"

	"github.com/alecthomas/kong"
)

// pprofConfig is inert unless built with tag pprof.
// The flags remain declared (but hidden) so that configuration files written
// by a pprof-enabled build still parse.
type pprofConfig struct {
	Mode string `default:"" hidden:""`
	Dir  string `default:"" hidden:"" type:"path"`
}

func (pprofConfig) vars() kong.Vars {
	return kong.Vars{}
}

func (pprofConfig) group() kong.Group {
	var group kong.Group

	group.Key = "pprof"
	group.Title = "Profiling (pprof)"

	return group
}

func (pprofConfig) start(context.Context) (stop func()) {
	return func() {}
}
