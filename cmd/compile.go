package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/cppsandbox/compile/cmake"
	"github.com/cppsandbox/compile/logger"
	"github.com/cppsandbox/compile/ui"
)

func runCompile(ctx context.Context, cfg Config) error {
	start := time.Now()

	ui.SetVerbose(cfg.Verbose)
	if cfg.Verbose {
		logger.SetLogger(logger.New(os.Stderr, true))
	}

	// Quick mode without a target fails before anything else happens
	if cfg.Quick && cfg.Target == "" {
		return cmake.ErrQuickWithoutTarget
	}

	pf, err := cfg.loadProject()
	if err != nil {
		return err
	}
	opts := cfg.options(pf)
	if pf != nil {
		ui.Verbosef("project file: build=%s source=%s cmake=%s", opts.BuildDir, opts.SourceDir, opts.Tool)
	}

	if cfg.DryRun {
		printDryRun(opts)
		return nil
	}

	if _, err := lookupTool(opts.Tool); err != nil {
		return err
	}

	ex := &stepExecutor{next: newExecutor(cfg.Verbose), total: 2}
	if err := cmake.Run(ctx, ex, opts); err != nil {
		return err
	}

	ui.Println()
	ui.SuccessMsg(fmt.Sprintf("Build complete! (%s)", ui.FormatDuration(time.Since(start))))
	ui.Printf("  Output: %s\n", ui.Primary.Render(opts.BuildDir))
	return nil
}

// stepExecutor prints a step header and the command line, then runs the
// command under a spinner
type stepExecutor struct {
	next  cmake.Executor
	n     int
	total int
}

func (s *stepExecutor) Exec(ctx context.Context, c cmake.Command) error {
	s.n++
	title := stepTitle(c.Step)
	ui.Step(s.n, s.total, title)
	ui.Running(c.String())

	return ui.RunWithSpinner(title+"...", func() error {
		return s.next.Exec(ctx, c)
	})
}

func stepTitle(step cmake.Step) string {
	switch step {
	case cmake.StepConfigure:
		return "Configuring"
	case cmake.StepBuild:
		return "Building"
	default:
		return string(step)
	}
}

func printDryRun(opts cmake.Options) {
	ui.Println(ui.Bold.Render("Dry run mode - no commands will be run"))
	ui.Println()
	for _, c := range cmake.Commands(opts) {
		ui.Printf("  %s %s\n", ui.Primary.Render(string(c.Step)), c.String())
	}
}
