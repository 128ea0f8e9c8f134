// Package profile provides optional runtime profiling for the tecl
// command.
//
// The package integrates [github.com/pkg/profile] behind the "pprof" build
// tag. When built without the tag (the default), every operation is a no-op
// with zero runtime overhead, and the --pprof-* flag group is absent from
// the CLI.
//
// With the tag enabled, the supported modes are allocs, block, clock, cpu,
// goroutine, heap, mem, mutex, thread, and trace; profile files are written
// to the configured output directory (the user cache directory by default)
// for analysis with "go tool pprof".
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
