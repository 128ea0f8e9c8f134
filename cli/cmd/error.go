package cmd

import (
	"github.com/ardnew/tecl/pkg"
)

// Sentinel errors for command-level failures.
// These errors can be tested using errors.Is for reliable error checking.

// ErrWriteOutput is returned when creating or writing the output file fails.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrWriteOutput = pkg.MakeErrorf("failed to write output file")
