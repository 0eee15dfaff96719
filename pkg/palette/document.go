// Package palette defines the lvc document model, the DSL parser that
// builds it, and the resolver that turns it into concrete colors.
//
// A document is an ordered sequence of named color specs plus a raw
// output template. Specs come in three closed variants: a literal
// color token, a link to an earlier entry, or a base-relative
// adjustment. Names starting with '$' are internal: they resolve like
// any other entry and may be link or base targets, but they never
// appear in rendered output.
package palette

import (
	"fmt"

	"lvc/pkg/hsl"
)

// Spec is a single entry's declared recipe before resolution.
// The variant set is closed: Literal, Link, or Adjustment.
type Spec interface {
	spec()
}

// Literal is a bare color token: a hex code or a known color name.
// Validity of the token is checked at resolution time, not parse time.
type Literal struct {
	Token string
}

// Link aliases another entry, copying its resolved color by value.
type Link struct {
	Target string
}

// Adjustment describes a delta (or absolute set) applied to a base
// color. Nil operator fields leave that axis untouched. RelativeBase,
// when set, names an earlier entry whose resolved color replaces the
// global base. NoAdjust suppresses the automatic saturation correction.
type Adjustment struct {
	Hue             *hsl.Operator
	Saturation      *hsl.Operator
	Lightness       *hsl.Operator
	LuminanceTarget *float64
	RelativeBase    string
	NoAdjust        bool
}

func (Literal) spec()    {}
func (Link) spec()       {}
func (Adjustment) spec() {}

// Entry pairs a declared name with its spec.
type Entry struct {
	Name string
	Spec Spec
}

// Document is an immutable ordered mapping from name to spec, plus the
// raw output template. Declaration order is semantically significant:
// links and relative bases may only point backwards.
type Document struct {
	entries  []Entry
	index    map[string]int
	template string
}

// Entries returns the document's entries in declaration order.
// The returned slice must not be modified.
func (d *Document) Entries() []Entry {
	return d.entries
}

// Lookup returns the spec declared under name.
func (d *Document) Lookup(name string) (Spec, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}
	return d.entries[i].Spec, true
}

// Len returns the number of declared entries.
func (d *Document) Len() int {
	return len(d.entries)
}

// Template returns the raw output template half of the document.
func (d *Document) Template() string {
	return d.template
}

// DefaultBase returns the token of the internal "$default" entry, if
// the document declares one as a literal. Callers use it as the global
// base color when none is supplied externally.
func (d *Document) DefaultBase() (string, bool) {
	spec, ok := d.Lookup("$default")
	if !ok {
		return "", false
	}
	lit, ok := spec.(Literal)
	if !ok {
		return "", false
	}
	return lit.Token, true
}

// add appends an entry, rejecting re-declarations. Silent overwrite
// would make link targets unverifiable, so duplicates are errors.
func (d *Document) add(name string, spec Spec) error {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	if _, exists := d.index[name]; exists {
		return fmt.Errorf("%w: name %q declared twice", ErrMalformedStatement, name)
	}
	d.index[name] = len(d.entries)
	d.entries = append(d.entries, Entry{Name: name, Spec: spec})
	return nil
}

// IsInternal reports whether name is an internal ('$'-prefixed) entry,
// resolvable but hidden from rendered output.
func IsInternal(name string) bool {
	return len(name) > 0 && name[0] == '$'
}
