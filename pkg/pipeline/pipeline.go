// Package pipeline provides the core compilation pipeline for lvc.
//
// A compilation runs parse → resolve → render (template mode) or
// parse → backend-compile (compile mode), start to finish, entirely
// synchronous. Centralizing the stages here keeps the CLI thin and
// gives library users the same behavior the command line has.
//
// Create Options and execute:
//
//	result, err := pipeline.Run(pipeline.Options{
//	    Source: src,
//	    Base:   "#ff0000",
//	    Mode:   pipeline.ModeRender,
//	})
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"lvc/pkg/hsl"
	"lvc/pkg/names"
	"lvc/pkg/palette"
	"lvc/pkg/render"
	"lvc/pkg/render/backend"
)

// Modes accepted by Options.Mode.
const (
	// ModeRender resolves the palette against a base color and expands
	// the document's output template.
	ModeRender = "render"

	// ModeCompile renders the unresolved document through a backend.
	ModeCompile = "compile"
)

// Options configures one compilation.
type Options struct {
	// Source is the lvc source text.
	Source string

	// Base is the global base color (hex or known name). When empty,
	// render mode falls back to the document's $default entry.
	Base string

	// Mode selects render or compile. Defaults to ModeRender.
	Mode string

	// Backend names the backend for compile mode.
	Backend string

	// Logger receives stage progress. Defaults to a discard logger.
	Logger *log.Logger

	validated bool
}

// Stats contains compilation timing and size information.
type Stats struct {
	Entries     int
	ParseTime   time.Duration
	ResolveTime time.Duration
	RenderTime  time.Duration
}

// Result contains the outputs of a compilation.
type Result struct {
	// Output is the single rendered text artifact.
	Output string

	// Warnings holds non-fatal backend skip warnings (compile mode).
	Warnings []backend.Warning

	// Stats contains timing and size information.
	Stats Stats
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Idempotent; Run calls it automatically.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Source == "" {
		return fmt.Errorf("source is required")
	}
	if o.Mode == "" {
		o.Mode = ModeRender
	}
	switch o.Mode {
	case ModeRender:
	case ModeCompile:
		if _, err := backend.New(o.Backend); err != nil {
			return err
		}
	default:
		return fmt.Errorf("invalid mode: %q (must be %q or %q)", o.Mode, ModeRender, ModeCompile)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Run executes one compilation start to finish.
func Run(opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	doc, err := palette.Parse(opts.Source)
	if err != nil {
		return nil, err
	}
	result := &Result{Stats: Stats{Entries: doc.Len(), ParseTime: time.Since(start)}}
	opts.Logger.Debugf("Parsed %d entries (%s)", doc.Len(), result.Stats.ParseTime.Round(time.Microsecond))

	switch opts.Mode {
	case ModeCompile:
		b, err := backend.New(opts.Backend)
		if err != nil {
			return nil, err
		}
		start = time.Now()
		compiled, err := b.Compile(doc)
		if err != nil {
			return nil, err
		}
		result.Output = compiled.Output
		result.Warnings = compiled.Warnings
		result.Stats.RenderTime = time.Since(start)
		opts.Logger.Debugf("Compiled %s backend, %d warnings", opts.Backend, len(compiled.Warnings))

	default:
		pal, err := ResolvePalette(doc, opts.Base, &result.Stats)
		if err != nil {
			return nil, err
		}
		start = time.Now()
		result.Output = render.Template(pal, doc.Template())
		result.Stats.RenderTime = time.Since(start)
		opts.Logger.Debugf("Rendered template over %d entries", pal.Len())
	}

	return result, nil
}

// ResolvePalette resolves the document against the given base color,
// falling back to the document's $default entry when base is empty.
// stats may be nil.
func ResolvePalette(doc *palette.Document, base string, stats *Stats) (*palette.Palette, error) {
	if base == "" {
		def, ok := doc.DefaultBase()
		if !ok {
			return nil, fmt.Errorf("no base color: pass one explicitly or declare a $default entry")
		}
		base = def
	}

	baseColor, err := BaseColor(base)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	pal, err := palette.Resolve(doc, baseColor)
	if err != nil {
		return nil, err
	}
	if stats != nil {
		stats.ResolveTime = time.Since(start)
	}
	return pal, nil
}

// BaseColor converts a caller-supplied base (hex code or known color
// name) into HSL.
func BaseColor(base string) (hsl.HSL, error) {
	hex, err := names.Resolve(base)
	if err != nil {
		return hsl.HSL{}, fmt.Errorf("base color: %w", err)
	}
	c, err := hsl.FromHex(hex)
	if err != nil {
		return hsl.HSL{}, fmt.Errorf("base color: %w", err)
	}
	return c, nil
}
