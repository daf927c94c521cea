package cmd

import (
	"errors"
	"fmt"

	"github.com/cppsandbox/compile/cmake"
	"github.com/cppsandbox/compile/ui"
)

// report prints err once, in the form matching its kind
func report(err error) {
	var exitErr *cmake.ExitError
	switch {
	case errors.As(err, &exitErr):
		ui.ErrorMsg(fmt.Sprintf("CMake %s step failed (exit code %d)", exitErr.Step, exitErr.Code), nil)
		ui.Captured(exitErr.Stderr)
	case errors.Is(err, cmake.ErrQuickWithoutTarget):
		ui.ErrorMsg("Error: "+err.Error(), nil, "name the file to compile, e.g. -q -t main.cpp")
	default:
		ui.ErrorMsg("Error", err)
	}
}

// exitCode propagates cmake's own exit status; every other failure is 1
func exitCode(err error) int {
	var exitErr *cmake.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
