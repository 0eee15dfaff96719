// Package preview renders a resolved palette as a visual swatch sheet.
//
// The palette is converted to Graphviz DOT (one filled box per entry)
// and rendered to SVG or PNG with the goccy/go-graphviz bindings.
package preview

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"lvc/pkg/palette"
)

// ToDOT converts a resolved palette to Graphviz DOT: a left-to-right
// row of boxes, each filled with the entry's color and labeled with
// its name and hex code. The label flips to white on dark swatches.
func ToDOT(p *palette.Palette) string {
	var buf bytes.Buffer
	buf.WriteString("digraph palette {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"filled\", fontsize=14, width=1.6, height=1.0, margin=\"0.15,0.1\"];\n")
	buf.WriteString("\n")

	for _, e := range p.Entries() {
		hex := e.Color.Hex()
		font := "black"
		if e.Color.Lightness < 50 {
			font = "white"
		}
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q, fontcolor=%s];\n",
			e.Name, e.Name+"\n"+hex, hex, font)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT swatch sheet to SVG.
func RenderSVG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.SVG)
}

// RenderPNG renders a DOT swatch sheet to PNG.
func RenderPNG(dot string) ([]byte, error) {
	return renderFormat(dot, graphviz.PNG)
}

func renderFormat(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
