package palette

import (
	"fmt"

	"lvc/pkg/hsl"
	"lvc/pkg/names"
)

// Resolved is a palette entry with its concrete color.
type Resolved struct {
	Name  string
	Color hsl.HSL
}

// Palette is the result of resolving a Document against a base color:
// an ordered name→color mapping. Internal ('$'-prefixed) entries are
// resolved and reachable through Color, but excluded from Entries.
type Palette struct {
	public []Resolved
	colors map[string]hsl.HSL
}

// Entries returns the public entries in declaration order.
func (p *Palette) Entries() []Resolved {
	return p.public
}

// Color returns the resolved color for name, including internal entries.
func (p *Palette) Color(name string) (hsl.HSL, bool) {
	c, ok := p.colors[name]
	return c, ok
}

// Len returns the number of public entries.
func (p *Palette) Len() int {
	return len(p.public)
}

// Resolve walks the document in declaration order and produces a
// Palette. Resolution is a pure function of (doc, base): the same
// inputs always yield the same palette.
//
// Adjustments and literals resolve in a first pass; an adjustment's
// relative base must already be resolved when it is reached (strict
// declare-before-use). Simple links resolve in a second pass, in their
// original relative order, so a link may point at any entry regardless
// of kind. Any failure aborts the whole resolution; no partial palette
// is returned.
func Resolve(doc *Document, base hsl.HSL) (*Palette, error) {
	colors := make(map[string]hsl.HSL, doc.Len())
	var links []Entry

	for _, e := range doc.Entries() {
		switch spec := e.Spec.(type) {
		case Link:
			links = append(links, e)

		case Literal:
			hex, err := names.Resolve(spec.Token)
			if err != nil {
				return nil, fmt.Errorf("entry %q: %w: %q", e.Name, ErrUnknownColor, spec.Token)
			}
			c, err := hsl.FromHex(hex)
			if err != nil {
				return nil, fmt.Errorf("entry %q: %w: %q", e.Name, ErrUnknownColor, spec.Token)
			}
			colors[e.Name] = c

		case Adjustment:
			b := base
			if spec.RelativeBase != "" {
				rb, ok := colors[spec.RelativeBase]
				if !ok {
					return nil, fmt.Errorf("entry %q: %w: base %q", e.Name, ErrUnresolvedReference, spec.RelativeBase)
				}
				b = rb
			}
			colors[e.Name] = resolveAdjustment(spec, b)
		}
	}

	for _, e := range links {
		target := e.Spec.(Link).Target
		c, ok := colors[target]
		if !ok {
			return nil, fmt.Errorf("entry %q: %w: link %q", e.Name, ErrUnresolvedReference, target)
		}
		colors[e.Name] = c
	}

	public := make([]Resolved, 0, doc.Len())
	for _, e := range doc.Entries() {
		if IsInternal(e.Name) {
			continue
		}
		public = append(public, Resolved{Name: e.Name, Color: colors[e.Name]})
	}

	return &Palette{public: public, colors: colors}, nil
}

// resolveAdjustment applies an adjustment to a base color. Operators
// run in a fixed order (hue, saturation, lightness), then the
// luminance correction, then the automatic saturation correction
// unless suppressed.
func resolveAdjustment(a Adjustment, base hsl.HSL) hsl.HSL {
	c := base
	if a.Hue != nil {
		c.Hue = a.Hue.ApplyHue(c.Hue)
	}
	if a.Saturation != nil {
		c.Saturation = a.Saturation.ApplyPercent(c.Saturation)
	}
	if a.Lightness != nil {
		c.Lightness = a.Lightness.ApplyPercent(c.Lightness)
	}
	if a.LuminanceTarget != nil {
		c.Lightness = hsl.AdjustLightnessForLuminance(c, *a.LuminanceTarget)
	}
	if !a.NoAdjust {
		c.Saturation = hsl.AdjustSaturation(c.Hue, c.Saturation)
	}
	return c
}
