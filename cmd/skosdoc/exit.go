package main

import (
	"fmt"
	"strings"

	"github.com/c360studio/skosdoc/extract"
	"github.com/c360studio/skosdoc/graph"
	"github.com/c360studio/skosdoc/render"
)

// Process exit codes.
const (
	exitOK    = 0
	exitUsage = 1
	exitParse = 2
	exitModel = 3
	exitIO    = 4
)

// usageError marks bad arguments, environment or configuration.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case graph.IsParseError(err):
		return exitParse
	case extract.IsModelError(err):
		return exitModel
	case render.IsIOError(err):
		return exitIO
	default:
		return exitUsage
	}
}

// oneLine flattens a multi-line error message for the diagnostic line.
func oneLine(err error) string {
	return strings.Join(strings.Fields(err.Error()), " ")
}
