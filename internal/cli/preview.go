package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"lvc/pkg/palette"
	"lvc/pkg/pipeline"
	"lvc/pkg/render/preview"
)

// previewOpts holds the command-line flags for the preview command.
type previewOpts struct {
	base       string // global base color
	format     string // output format: svg, png, dot
	output     string // output file path
	configPath string // explicit lvc.toml path
}

// newPreviewCmd creates the preview command: resolve the palette and
// render a visual swatch sheet via Graphviz.
func newPreviewCmd() *cobra.Command {
	var opts previewOpts

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Render a palette as a visual swatch sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validatePreviewFormat(opts.format); err != nil {
				return err
			}
			return runPreview(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.base, "base", "b", "", "base color (hex or known name)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "svg", "output format: svg, png, dot")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: lvc.toml next to input)")

	return cmd
}

// validPreviewFormats is the set of supported preview formats.
var validPreviewFormats = map[string]bool{"svg": true, "png": true, "dot": true}

func validatePreviewFormat(f string) error {
	if !validPreviewFormats[f] {
		return fmt.Errorf("invalid format: %s (must be 'svg', 'png', or 'dot')", f)
	}
	return nil
}

// runPreview parses and resolves the document, then renders the
// swatch sheet in the requested format.
func runPreview(ctx context.Context, input string, opts *previewOpts) error {
	logger := loggerFromContext(ctx)

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

	doc, err := palette.Parse(src)
	if err != nil {
		return err
	}
	pal, err := pipeline.ResolvePalette(doc, base, nil)
	if err != nil {
		return err
	}
	logger.Debugf("Resolved %d entries", pal.Len())

	dot := preview.ToDOT(pal)

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "png":
		logger.Info("Rendering preview PNG")
		data, err = preview.RenderPNG(dot)
	default:
		logger.Info("Rendering preview SVG")
		data, err = preview.RenderSVG(dot)
	}
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	return writeOutput(output, string(data))
}
