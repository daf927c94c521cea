package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cppsandbox/compile/cmake"
)

func TestNormalizeArgs(t *testing.T) {
	tests := []struct {
		in   []string
		want []string
	}{
		{[]string{}, []string{}},
		{[]string{"-dbg"}, []string{"--debug"}},
		{[]string{"-d", "X", "-dbg"}, []string{"-d", "X", "--debug"}},
		{[]string{"-q", "-t", "foo.cpp"}, []string{"-q", "-t", "foo.cpp"}},
		// a value that happens to look like the flag is left alone
		{[]string{"-d", "-dbg"}, []string{"-d", "-dbg"}},
		{[]string{"--", "-dbg"}, []string{"--", "-dbg"}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeArgs(tt.in))
		})
	}
}

func TestNormalizeArgsDoesNotMutateInput(t *testing.T) {
	in := []string{"-dbg"}
	normalizeArgs(in)
	assert.Equal(t, []string{"-dbg"}, in)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(cmake.ErrQuickWithoutTarget))
	assert.Equal(t, 1, exitCode(errors.New("boom")))
	assert.Equal(t, 42, exitCode(&cmake.ExitError{Step: cmake.StepBuild, Code: 42}))
	assert.Equal(t, 3, exitCode(fmt.Errorf("wrapped: %w", &cmake.ExitError{Code: 3})))
}
