// Package cli implements the lvc command-line interface.
//
// The CLI wraps the compilation pipeline with commands for template
// rendering, backend compilation, palette previews, and document
// validation. It is built on cobra; all commands log through a
// context-attached charmbracelet/log logger and support --verbose for
// debug output.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"lvc/pkg/buildinfo"
)

// Execute runs the lvc CLI and returns an error if any command fails.
//
// The root command registers all subcommands (render, compile, preview,
// check, names, completion), configures logging based on the --verbose
// flag, and attaches the logger to the command context where
// loggerFromContext retrieves it.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "lvc",
		Short:        "lvc compiles color-palette DSL files",
		Long:         `lvc is a compiler for a small color-palette DSL: it resolves base-relative color adjustments into concrete colors and renders them through a text template, or compiles the palette to CSS/SCSS variable blocks or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newCompileCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newNamesCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
