package cmake

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/cppsandbox/compile/logger"
	"golang.org/x/sync/errgroup"
)

// Executor runs one command to completion
type Executor interface {
	Exec(ctx context.Context, c Command) error
}

// ExitError reports a cmake invocation that exited non-zero
type ExitError struct {
	Step   Step
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("cmake %s step failed with exit code %d", e.Step, e.Code)
}

// LineFunc receives one line of child output; stream is "stdout" or "stderr"
type LineFunc func(stream, line string)

// ProcessExecutor runs commands as child processes, capturing stdout and stderr.
// When OnLine is set, output is also forwarded line by line while the child runs.
type ProcessExecutor struct {
	Dir    string
	OnLine LineFunc

	mu sync.Mutex // serializes OnLine across the two pipes
}

// NewProcessExecutor returns an executor that captures output silently
func NewProcessExecutor() *ProcessExecutor {
	return &ProcessExecutor{}
}

func (p *ProcessExecutor) Exec(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = p.Dir

	logger.Debug("starting command", "step", c.Step, "cmd", c.String())

	var stdout, stderr bytes.Buffer
	var err error
	if p.OnLine == nil {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		err = cmd.Run()
	} else {
		err = p.runStreaming(cmd, &stdout, &stderr)
	}

	logger.Debug("command finished", "step", c.Step, "stdout_bytes", stdout.Len(), "stderr_bytes", stderr.Len())

	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			// killed by a signal
			code = 1
		}
		return &ExitError{Step: c.Step, Code: code, Stderr: stderr.String()}
	}
	return fmt.Errorf("failed to run %s: %w", c.Name, err)
}

func (p *ProcessExecutor) runStreaming(cmd *exec.Cmd, stdout, stderr *bytes.Buffer) error {
	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return err
	}

	if err := cmd.Start(); err != nil {
		return err
	}

	// both pipes must be drained before Wait closes them
	var g errgroup.Group
	g.Go(func() error { return p.drain("stdout", outPipe, stdout) })
	g.Go(func() error { return p.drain("stderr", errPipe, stderr) })
	readErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		return err
	}
	return readErr
}

func (p *ProcessExecutor) drain(stream string, r io.Reader, buf *bytes.Buffer) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			buf.WriteString(line)
			p.mu.Lock()
			p.OnLine(stream, strings.TrimRight(line, "\r\n"))
			p.mu.Unlock()
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// LookupTool resolves the cmake binary on PATH so a missing install is
// reported before the build directory is created
func LookupTool(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found: %w", name, err)
	}
	return path, nil
}
