package cmake

import "strings"

// Step identifies one of the two cmake invocations
type Step string

const (
	StepConfigure Step = "configure"
	StepBuild     Step = "build"
)

// Command is a single external invocation
type Command struct {
	Step Step
	Name string
	Args []string
}

// String renders the command the way it would be typed in a shell
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// ConfigureCommand builds the configuration call:
// cmake -B <build> -S <source> [-D<var>=<define>] [-DQ=ON -DQUICK=<target>] [-DCMAKE_BUILD_TYPE=Debug]
func ConfigureCommand(opts Options) Command {
	opts = opts.withDefaults()

	args := []string{"-B", opts.BuildDir, "-S", opts.SourceDir}
	if opts.Define != "" {
		args = append(args, "-D"+opts.DefineVar+"="+opts.Define)
	}
	if opts.Quick {
		args = append(args, "-DQ=ON", "-DQUICK="+opts.Target)
	}
	if opts.Debug {
		args = append(args, "-DCMAKE_BUILD_TYPE=Debug")
	}

	return Command{Step: StepConfigure, Name: opts.Tool, Args: args}
}

// BuildCommand builds the compile/link call: cmake --build <build>
func BuildCommand(opts Options) Command {
	opts = opts.withDefaults()
	return Command{Step: StepBuild, Name: opts.Tool, Args: []string{"--build", opts.BuildDir}}
}

// Commands returns both invocations in execution order
func Commands(opts Options) []Command {
	return []Command{ConfigureCommand(opts), BuildCommand(opts)}
}
