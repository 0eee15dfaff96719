// Package hsl implements the color algebra behind lvc palettes.
//
// Colors are hue/saturation/lightness triples: hue in degrees [0,360),
// saturation and lightness in percent [0,100]. HSL is a plain value
// type; every operation returns a new value. Conversion to and from
// sRGB hex uses the standard HSL transform, with channels rounded
// (not truncated) on the way out.
package hsl

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HSL is a color in hue/saturation/lightness space.
// Hue is in degrees [0,360), Saturation and Lightness in percent [0,100].
type HSL struct {
	Hue        float64
	Saturation float64
	Lightness  float64
}

// FromHex parses a 3- or 6-digit hex color (leading '#' optional) into HSL.
// Shorthand digits are expanded by doubling ("f80" → "ff8800").
func FromHex(hex string) (HSL, error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")

	if len(s) == 3 {
		var b strings.Builder
		for _, c := range s {
			b.WriteRune(c)
			b.WriteRune(c)
		}
		s = b.String()
	}
	if len(s) != 6 {
		return HSL{}, fmt.Errorf("invalid hex color: %q", hex)
	}

	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return HSL{}, fmt.Errorf("invalid hex color: %q", hex)
		}
		ch[i] = float64(v) / 255.0
	}

	return fromRGB(ch[0], ch[1], ch[2]), nil
}

// Hex returns the lowercase 6-digit hex representation with a leading '#'.
// Each channel is rounded to the nearest integer in 0–255.
func (c HSL) Hex() string {
	r, g, b := c.rgb()
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(math.Round(r*255)),
		uint8(math.Round(g*255)),
		uint8(math.Round(b*255)))
}

// String returns the comma-joined "hue,saturation,lightness" form used
// by the {hsl} template placeholder.
func (c HSL) String() string {
	return formatFloat(c.Hue) + "," + formatFloat(c.Saturation) + "," + formatFloat(c.Lightness)
}

// CSS returns the CSS-flavored "Hdeg,S%,L%" form used by the {hsl_css}
// template placeholder.
func (c HSL) CSS() string {
	return formatFloat(c.Hue) + "deg," + formatFloat(c.Saturation) + "%," + formatFloat(c.Lightness) + "%"
}

// Luminance returns the relative luminance of the color in [0,1],
// computed from the sRGB channels with the Rec. 709 coefficients.
func (c HSL) Luminance() float64 {
	r, g, b := c.rgb()
	return (0.2126*r*255 + 0.7152*g*255 + 0.0722*b*255) / 255.0
}

// formatFloat renders a float without a trailing ".0" for whole values.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fromRGB converts sRGB channels in [0,1] to HSL.
func fromRGB(r, g, b float64) HSL {
	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	l := (max + min) / 2

	if max == min {
		return HSL{Hue: 0, Saturation: 0, Lightness: l * 100}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	h *= 60

	return HSL{Hue: h, Saturation: s * 100, Lightness: l * 100}
}

// rgb converts the color to sRGB channels in [0,1].
func (c HSL) rgb() (r, g, b float64) {
	h := math.Mod(math.Mod(c.Hue, 360)+360, 360)
	s := c.Saturation / 100
	l := c.Lightness / 100

	if s == 0 {
		return l, l, l
	}

	chroma := (1 - math.Abs(2*l-1)) * s
	x := chroma * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - chroma/2

	switch {
	case h < 60:
		r, g, b = chroma, x, 0
	case h < 120:
		r, g, b = x, chroma, 0
	case h < 180:
		r, g, b = 0, chroma, x
	case h < 240:
		r, g, b = 0, x, chroma
	case h < 300:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return r + m, g + m, b + m
}
