package cmake

import (
	"context"
	"fmt"
	"os"

	"github.com/cppsandbox/compile/logger"
)

// Run validates opts, ensures the build directory exists, then configures and
// builds. The build step never runs if configure fails; the first failure is
// returned as-is so callers can recover an *ExitError.
func Run(ctx context.Context, ex Executor, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	opts = opts.withDefaults()

	if err := os.MkdirAll(opts.BuildDir, 0755); err != nil {
		return fmt.Errorf("failed to create build directory: %w", err)
	}
	logger.Debug("build directory ready", "dir", opts.BuildDir)

	for _, c := range Commands(opts) {
		if err := ex.Exec(ctx, c); err != nil {
			logger.Debug("step failed", "step", c.Step, "error", err)
			return err
		}
	}
	return nil
}
