package cli

import (
	"context"

	"github.com/spf13/cobra"

	"lvc/pkg/palette"
	"lvc/pkg/pipeline"
)

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	base       string
	configPath string
}

// newCheckCmd creates the check command: parse and resolve a document
// without producing output, reporting what a real run would do.
func newCheckCmd() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a palette document without rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.base, "base", "b", "", "base color (hex or known name)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: lvc.toml next to input)")

	return cmd
}

// runCheck parses the document, then resolves it when a base color is
// available (flag, config, or $default entry). Parse-only validation
// still catches malformed statements and dangling top-level links.
func runCheck(ctx context.Context, input string, opts *checkOpts) error {
	logger := loggerFromContext(ctx)

	src, err := readSource(input)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(opts.configPath, input)
	if err != nil {
		return err
	}

	doc, err := palette.Parse(src)
	if err != nil {
		printError("%s: %v", input, err)
		return err
	}

	internal := 0
	for _, e := range doc.Entries() {
		if palette.IsInternal(e.Name) {
			internal++
		}
	}

	base := opts.base
	if base == "" {
		base = cfg.Base
	}
	if _, hasDefault := doc.DefaultBase(); base == "" && !hasDefault {
		printSuccess("%s: %d entries parsed", input, doc.Len())
		printDetail("resolution skipped: no base color (pass --base or declare $default)")
		return nil
	}

	pal, err := pipeline.ResolvePalette(doc, base, nil)
	if err != nil {
		printError("%s: %v", input, err)
		return err
	}
	logger.Debugf("Resolved %d public entries", pal.Len())

	printSuccess("%s: %d entries parsed and resolved", input, doc.Len())
	if internal > 0 {
		printDetail("%d public, %d internal", pal.Len(), internal)
	}
	return nil
}
