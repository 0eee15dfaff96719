package preview

import (
	"strings"
	"testing"

	"lvc/pkg/hsl"
	"lvc/pkg/palette"
)

func swatchPalette(t *testing.T, src string) *palette.Palette {
	t.Helper()
	doc, err := palette.Parse(src)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	base, _ := hsl.FromHex("#ff0000")
	pal, err := palette.Resolve(doc, base)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	return pal
}

func TestToDOT(t *testing.T) {
	pal := swatchPalette(t, "light: #ffffff; dark: #000000; >>> x")

	dot := ToDOT(pal)

	if !strings.HasPrefix(dot, "digraph palette {") {
		t.Errorf("DOT missing digraph header:\n%s", dot)
	}
	if !strings.Contains(dot, "rankdir=LR;") {
		t.Error("DOT missing rankdir")
	}
	if !strings.Contains(dot, `"light" [label="light\n#ffffff", fillcolor="#ffffff", fontcolor=black];`) {
		t.Errorf("light swatch line missing or wrong:\n%s", dot)
	}
	if !strings.Contains(dot, `"dark" [label="dark\n#000000", fillcolor="#000000", fontcolor=white];`) {
		t.Errorf("dark swatch line missing or wrong:\n%s", dot)
	}
	if !strings.HasSuffix(dot, "}\n") {
		t.Error("DOT not closed")
	}
}

func TestToDOTSkipsInternalEntries(t *testing.T) {
	pal := swatchPalette(t, "$seed: #336699; pub: =>$seed; >>> x")

	dot := ToDOT(pal)
	if strings.Contains(dot, "$seed") {
		t.Errorf("internal entry in swatch sheet:\n%s", dot)
	}
	if !strings.Contains(dot, `"pub"`) {
		t.Errorf("public entry missing:\n%s", dot)
	}
}
