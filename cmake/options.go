package cmake

import "errors"

const (
	DefaultBuildDir  = "build"
	DefaultSourceDir = "."
	DefaultTool      = "cmake"
	DefaultDefineVar = "EXAMPLE_DEFINE"
)

// ErrQuickWithoutTarget is returned when quick mode is requested with no target file
var ErrQuickWithoutTarget = errors.New("quick mode (-q) requires a target filename (-t)")

// Options configures a configure+build run
type Options struct {
	Define string // value for -D<DefineVar>=..., empty means unset
	Quick  bool   // single-target compilation
	Target string // file compiled in quick mode
	Debug  bool   // CMAKE_BUILD_TYPE=Debug

	BuildDir  string // output directory, default: "build"
	SourceDir string // directory holding CMakeLists.txt, default: "."
	Tool      string // cmake binary, default: "cmake"
	DefineVar string // cache variable receiving Define, default: "EXAMPLE_DEFINE"
}

// DefaultOptions returns options with the fixed directory and tool defaults
func DefaultOptions() Options {
	return Options{
		BuildDir:  DefaultBuildDir,
		SourceDir: DefaultSourceDir,
		Tool:      DefaultTool,
		DefineVar: DefaultDefineVar,
	}
}

// Validate checks the option set before anything touches the filesystem
func (o Options) Validate() error {
	if o.Quick && o.Target == "" {
		return ErrQuickWithoutTarget
	}
	return nil
}

// withDefaults fills empty path/tool fields so a zero Options is usable
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.BuildDir == "" {
		o.BuildDir = d.BuildDir
	}
	if o.SourceDir == "" {
		o.SourceDir = d.SourceDir
	}
	if o.Tool == "" {
		o.Tool = d.Tool
	}
	if o.DefineVar == "" {
		o.DefineVar = d.DefineVar
	}
	return o
}
