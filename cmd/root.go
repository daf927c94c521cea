package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/cppsandbox/compile/cmake"
	"github.com/cppsandbox/compile/project"
	"github.com/cppsandbox/compile/ui"
)

// Version information set by goreleaser
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// Swapped in tests
var (
	newExecutor = func(verbose bool) cmake.Executor {
		ex := cmake.NewProcessExecutor()
		if verbose {
			ex.OnLine = ui.ChildLine
		}
		return ex
	}
	lookupTool = cmake.LookupTool
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var cfg Config

	c := &cobra.Command{
		Use:   "compile",
		Short: "Configure and build the project using CMake",
		Long: `Configure and build the project using CMake.

Runs "cmake -B build -S ." followed by "cmake --build build" and stops at the
first failure, exiting with the exit code cmake returned.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd.Context(), cfg)
		},
	}

	f := c.Flags()
	f.StringVarP(&cfg.Define, "define", "d", "", "set compile definitions for the project")
	f.BoolVarP(&cfg.Quick, "quick", "q", false, "enable quick compilation mode (requires -t)")
	f.StringVarP(&cfg.Target, "target", "t", "", "target filename for quick compilation (used with -q)")
	f.BoolVar(&cfg.Debug, "debug", false, "enable debug mode with debug flags (also -dbg)")
	f.StringVarP(&cfg.ConfigFile, "config", "c", "", "project file (default: "+project.DefaultFile+" if present)")
	f.BoolVar(&cfg.DryRun, "dry-run", false, "print the cmake commands without running them")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "stream cmake output and show debug logs")

	c.Version = version
	c.SetVersionTemplate("compile {{.Version}} (" + commit + ", " + date + ")\n")

	return c
}

func Execute(ctx context.Context) {
	rootCmd.SetArgs(normalizeArgs(os.Args[1:]))
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		report(err)
		os.Exit(exitCode(err))
	}
}
