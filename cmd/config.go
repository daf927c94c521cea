package cmd

import (
	"github.com/cppsandbox/compile/cmake"
	"github.com/cppsandbox/compile/project"
)

type Config struct {
	// CMake options
	Define string
	Quick  bool
	Target string
	Debug  bool

	// Project file, empty means project.DefaultFile if present
	ConfigFile string

	// Output behavior
	DryRun  bool
	Verbose bool
}

// options merges defaults, the project file and the command-line values
func (c Config) options(pf *project.File) cmake.Options {
	opts := cmake.DefaultOptions()
	pf.Apply(&opts)

	opts.Define = c.Define
	opts.Quick = c.Quick
	opts.Target = c.Target
	opts.Debug = c.Debug
	return opts
}

// loadProject reads the explicit --config file, or the default one if it exists
func (c Config) loadProject() (*project.File, error) {
	if c.ConfigFile != "" {
		return project.Load(c.ConfigFile)
	}
	return project.LoadOptional(project.DefaultFile)
}
