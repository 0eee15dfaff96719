// Package names maps well-known color names to their hex codes.
//
// The table is a fixed constant: the palette core treats it as an
// opaque lookup and never mutates it.
package names

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
)

// table maps lowercase color names to 6-digit hex codes.
var table = map[string]string{
	"white":      "#ffffff",
	"black":      "#000000",
	"red":        "#ff0000",
	"green":      "#008000",
	"blue":       "#0000ff",
	"yellow":     "#ffff00",
	"cyan":       "#00ffff",
	"magenta":    "#ff00ff",
	"silver":     "#c0c0c0",
	"gray":       "#808080",
	"maroon":     "#800000",
	"olive":      "#808000",
	"purple":     "#800080",
	"teal":       "#008080",
	"navy":       "#000080",
	"orange":     "#ffa500",
	"pink":       "#ffc0cb",
	"brown":      "#a52a2a",
	"gold":       "#ffd700",
	"lime":       "#00ff00",
	"indigo":     "#4b0082",
	"violet":     "#ee82ee",
	"khaki":      "#f0e68c",
	"coral":      "#ff7f50",
	"turquoise":  "#40e0d0",
	"salmon":     "#fa8072",
	"chocolate":  "#d2691e",
	"plum":       "#dda0dd",
	"orchid":     "#da70d6",
	"tomato":     "#ff6347",
	"tan":        "#d2b48c",
	"lavender":   "#e6e6fa",
	"beige":      "#f5f5dc",
	"mistyrose":  "#ffe4e1",
	"aquamarine": "#7fffd4",
	"snow":       "#fffafa",
	"thistle":    "#d8bfd8",
	"peru":       "#cd853f",
	"seagreen":   "#2e8b57",
	"steelblue":  "#4682b4",
	"skyblue":    "#87ceeb",
}

var hexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}){1,2}$`)

// IsHex reports whether s is a '#'-prefixed 3- or 6-digit hex color.
func IsHex(s string) bool {
	return hexPattern.MatchString(s)
}

// Resolve returns the hex code for a color name. Hex literals pass
// through unchanged; names are looked up case-insensitively.
func Resolve(s string) (string, error) {
	if IsHex(s) {
		return s, nil
	}
	if hex, ok := table[strings.ToLower(s)]; ok {
		return hex, nil
	}
	return "", fmt.Errorf("unknown color name: %q", s)
}

// Entry is a named color and its hex code.
type Entry struct {
	Name string
	Hex  string
}

// All returns every known color, sorted by name.
func All() []Entry {
	out := make([]Entry, 0, len(table))
	for _, n := range slices.Sorted(maps.Keys(table)) {
		out = append(out, Entry{Name: n, Hex: table[n]})
	}
	return out
}
