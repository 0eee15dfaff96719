package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lvc/pkg/pipeline"
	"lvc/pkg/render/backend"
)

// compileOpts holds the command-line flags for the compile command.
type compileOpts struct {
	backend    string // backend name: css, json, scss
	output     string // output file path, empty for stdout
	configPath string // explicit lvc.toml path
}

// newCompileCmd creates the compile command: render the unresolved
// document through one of the fixed backends. Entries a backend cannot
// express are skipped with a warning; the rest of the document still
// compiles.
func newCompileCmd() *cobra.Command {
	var opts compileOpts

	cmd := &cobra.Command{
		Use:   "compile [file]",
		Short: "Compile a palette document to CSS, SCSS, or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.backend, "backend", "t", "", "target backend: css, json, scss")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: lvc.toml next to input)")

	return cmd
}

// runCompile loads the source and config, runs the pipeline in compile
// mode, reports skip warnings, and writes the backend output.
func runCompile(ctx context.Context, input string, opts *compileOpts) error {
	logger := loggerFromContext(ctx)

	src, err := readSource(input)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(opts.configPath, input)
	if err != nil {
		return err
	}

	name := opts.backend
	if name == "" {
		name = cfg.Backend
	}
	if name == "" {
		name = backend.CSS
	}
	output := opts.output
	if output == "" {
		output = cfg.Output
	}
	logger.Debugf("Compiling %s with %s backend", input, name)

	p := newProgress(logger)
	result, err := pipeline.Run(pipeline.Options{
		Source:  src,
		Mode:    pipeline.ModeCompile,
		Backend: name,
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	for _, w := range result.Warnings {
		logger.Warnf("Skipped entry %q: %s", w.Entry, w.Reason)
	}
	p.done(fmt.Sprintf("Compiled %d entries to %s", result.Stats.Entries, name))

	return writeOutput(output, result.Output)
}
