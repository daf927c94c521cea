package cmake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigureCommand(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "no options",
			opts: DefaultOptions(),
			want: []string{"-B", "build", "-S", "."},
		},
		{
			name: "quick with target",
			opts: Options{Quick: true, Target: "foo.cpp"},
			want: []string{"-B", "build", "-S", ".", "-DQ=ON", "-DQUICK=foo.cpp"},
		},
		{
			name: "define and debug",
			opts: Options{Define: "FEATURE_X", Debug: true},
			want: []string{"-B", "build", "-S", ".", "-DEXAMPLE_DEFINE=FEATURE_X", "-DCMAKE_BUILD_TYPE=Debug"},
		},
		{
			name: "everything keeps fixed order",
			opts: Options{Debug: true, Quick: true, Target: "a.cpp", Define: "V"},
			want: []string{"-B", "build", "-S", ".", "-DEXAMPLE_DEFINE=V", "-DQ=ON", "-DQUICK=a.cpp", "-DCMAKE_BUILD_TYPE=Debug"},
		},
		{
			name: "custom dirs and define variable",
			opts: Options{BuildDir: "out", SourceDir: "src", DefineVar: "MY_DEF", Define: "1"},
			want: []string{"-B", "out", "-S", "src", "-DMY_DEF=1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ConfigureCommand(tt.opts)
			assert.Equal(t, StepConfigure, c.Step)
			assert.Equal(t, "cmake", c.Name)
			assert.Equal(t, tt.want, c.Args)
		})
	}
}

func TestConfigureCommandWithoutQuickHasNoQuickFlags(t *testing.T) {
	// a target alone must not switch quick mode on
	c := ConfigureCommand(Options{Target: "foo.cpp", Define: "X", Debug: true})
	for _, a := range c.Args {
		assert.NotEqual(t, "-DQ=ON", a)
		assert.NotContains(t, a, "-DQUICK=")
	}
}

func TestConfigureCommandDefineValueIsExact(t *testing.T) {
	c := ConfigureCommand(Options{Define: "A=B C"})
	assert.Contains(t, c.Args, "-DEXAMPLE_DEFINE=A=B C")

	c = ConfigureCommand(Options{})
	for _, a := range c.Args {
		assert.NotContains(t, a, "EXAMPLE_DEFINE")
	}
}

func TestBuildCommand(t *testing.T) {
	c := BuildCommand(DefaultOptions())
	assert.Equal(t, StepBuild, c.Step)
	assert.Equal(t, "cmake --build build", c.String())

	c = BuildCommand(Options{BuildDir: "out", Tool: "/opt/cmake/bin/cmake", Debug: true})
	assert.Equal(t, []string{"--build", "out"}, c.Args)
	assert.Equal(t, "/opt/cmake/bin/cmake", c.Name)
}

func TestCommandsOrder(t *testing.T) {
	cmds := Commands(DefaultOptions())
	if assert.Len(t, cmds, 2) {
		assert.Equal(t, StepConfigure, cmds[0].Step)
		assert.Equal(t, StepBuild, cmds[1].Step)
	}
	assert.Equal(t, "cmake -B build -S .", cmds[0].String())
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Options{Quick: true}.Validate(), ErrQuickWithoutTarget)
	assert.NoError(t, Options{Quick: true, Target: "x.cpp"}.Validate())
	assert.NoError(t, Options{}.Validate())
}
