// Package backend compiles unresolved lvc documents into structured
// text: CSS or SCSS variable blocks carrying formulas instead of fixed
// colors, or a lossless JSON dump of the document itself.
//
// Backends are a fixed, closed set. Unlike the template renderer they
// operate pre-resolution: an adjustment entry compiles to a
// target-language expression over shared base variables, so the final
// colors stay adjustable in the output language.
package backend

import (
	"fmt"
	"strconv"
	"strings"

	"lvc/pkg/palette"
)

// Backend names accepted by New.
const (
	CSS  = "css"
	SCSS = "scss"
	JSON = "json"
)

// Names returns the accepted backend names.
func Names() []string {
	return []string{CSS, JSON, SCSS}
}

// Warning reports an entry a backend had to skip because the target
// language cannot express its spec. Warnings are non-fatal: the rest
// of the document still compiles.
type Warning struct {
	Entry  string
	Reason string
}

// String formats the warning for display.
func (w Warning) String() string {
	return fmt.Sprintf("skipped %q: %s", w.Entry, w.Reason)
}

// Result is a backend's output text plus any skip warnings.
type Result struct {
	Output   string
	Warnings []Warning
}

// Backend compiles a document into target-language text.
type Backend interface {
	// Name returns the backend's registry name.
	Name() string

	// Compile renders the document. A returned error is fatal; skipped
	// entries are reported through Result.Warnings instead.
	Compile(doc *palette.Document) (*Result, error)
}

// New returns the backend registered under name.
func New(name string) (Backend, error) {
	switch name {
	case CSS:
		return newCSS(), nil
	case SCSS:
		return newSCSS(), nil
	case JSON:
		return jsonBackend{}, nil
	}
	return nil, fmt.Errorf("unknown backend: %q (must be one of: %s)", name, strings.Join(Names(), ", "))
}

// fmtNum renders an operand without a trailing ".0" for whole values.
func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
