package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"lvc/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	base       string // global base color (hex or known name)
	output     string // output file path, empty for stdout
	configPath string // explicit lvc.toml path
}

// newRenderCmd creates the render command: resolve the palette against
// a base color and expand the document's output template.
//
// Base color precedence: --base flag, then lvc.toml, then the
// document's $default entry.
func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Resolve a palette and render its output template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.base, "base", "b", "", "base color (hex or known name)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: lvc.toml next to input)")

	return cmd
}

// runRender loads the source and config, runs the pipeline in render
// mode, and writes the expanded template.
func runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	logger.Debugf("Rendering %s", input)

	src, err := readSource(input)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(opts.configPath, input)
	if err != nil {
		return err
	}

	base := opts.base
	if base == "" {
		base = cfg.Base
	}
	output := opts.output
	if output == "" {
		output = cfg.Output
	}

	p := newProgress(logger)
	result, err := pipeline.Run(pipeline.Options{
		Source: src,
		Base:   base,
		Mode:   pipeline.ModeRender,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Rendered %d entries", result.Stats.Entries))

	return writeOutput(output, result.Output)
}
