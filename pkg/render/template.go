// Package render expands an lvc output template over a resolved palette.
//
// A template may contain at most one repeated-block region delimited by
// a for(...) marker. The block body is instantiated once per palette
// entry with the entry's placeholders substituted, and the concatenation
// replaces the marker; the rest of the template passes through.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"lvc/pkg/palette"
)

// forRe matches the for(...) marker. The body may span multiple lines.
var forRe = regexp.MustCompile(`(?s)for\s*\((.*?)\)`)

// Template renders the resolved palette through the template string.
// If no for(...) marker is present the template is returned unchanged.
// The final output is stripped of leading and trailing whitespace.
//
// Placeholders available inside the block body:
//
//	{key}        entry name
//	{hsl}        "h,s,l"
//	{hsl_css}    "Hdeg,S%,L%"
//	{hex}        lowercase hex with leading '#'
//	{strip_hex}  lowercase hex without '#'
//	{newline}    "\n", empty for the last entry
//	{i1}..{i8}   1–8 spaces of indentation
func Template(p *palette.Palette, tmpl string) string {
	loc := forRe.FindStringSubmatchIndex(tmpl)
	if loc == nil {
		return strings.TrimSpace(tmpl)
	}

	body := strings.TrimSpace(tmpl[loc[2]:loc[3]])
	entries := p.Entries()

	var b strings.Builder
	for i, e := range entries {
		newline := "\n"
		if i == len(entries)-1 {
			newline = ""
		}
		b.WriteString(expand(body, e, newline))
	}

	return strings.TrimSpace(tmpl[:loc[0]] + b.String() + tmpl[loc[1]:])
}

// expand substitutes one entry's placeholders into the block body.
func expand(body string, e palette.Resolved, newline string) string {
	hex := e.Color.Hex()
	pairs := []string{
		"{key}", e.Name,
		"{hsl}", e.Color.String(),
		"{hsl_css}", e.Color.CSS(),
		"{hex}", hex,
		"{strip_hex}", strings.TrimPrefix(hex, "#"),
		"{newline}", newline,
	}
	for i := 1; i <= 8; i++ {
		pairs = append(pairs, fmt.Sprintf("{i%d}", i), strings.Repeat(" ", i))
	}
	return strings.NewReplacer(pairs...).Replace(body)
}
