package palette

import (
	"errors"
	"math"
	"testing"

	"lvc/pkg/hsl"
)

func mustParse(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return doc
}

func TestResolveRelativeBase(t *testing.T) {
	// accent rotates +120° relative to base's resolved color, not the
	// global base.
	doc := mustParse(t, "base: {h:+0, s:=50, l:=50}; accent: {h:+120} => base; >>> x")
	global, _ := hsl.FromHex("#ff0000")

	pal, err := Resolve(doc, global)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	entries := pal.Entries()
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Name != "base" || entries[1].Name != "accent" {
		t.Fatalf("order = %q, %q; want base, accent", entries[0].Name, entries[1].Name)
	}

	base, accent := entries[0].Color, entries[1].Color
	if !closeTo(base.Hue, 0) || !closeTo(base.Saturation, 50) || !closeTo(base.Lightness, 50) {
		t.Errorf("base = %v, want 0,50,50", base)
	}
	if want := hsl.NormalizeHue(base.Hue + 120); !closeTo(accent.Hue, want) {
		t.Errorf("accent hue = %v, want %v", accent.Hue, want)
	}
	if !closeTo(accent.Lightness, base.Lightness) {
		t.Errorf("accent lightness = %v, want %v", accent.Lightness, base.Lightness)
	}
}

func TestResolveDeterministic(t *testing.T) {
	doc := mustParse(t, "$hidden: {s:-10}; a: {h:+200, lum:=30}; b: =>a; c: tomato; >>> x")
	base, _ := hsl.FromHex("#3366cc")

	first, err := Resolve(doc, base)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	second, err := Resolve(doc, base)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if len(first.Entries()) != len(second.Entries()) {
		t.Fatalf("entry counts differ: %d vs %d", len(first.Entries()), len(second.Entries()))
	}
	for i, e := range first.Entries() {
		if second.Entries()[i] != e {
			t.Errorf("entry %d differs: %+v vs %+v", i, e, second.Entries()[i])
		}
	}
}

func TestResolveInternalEntries(t *testing.T) {
	doc := mustParse(t, "$mid: {l:=70}; visible: =>$mid; >>> x")
	base, _ := hsl.FromHex("#ff0000")

	pal, err := Resolve(doc, base)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	for _, e := range pal.Entries() {
		if IsInternal(e.Name) {
			t.Errorf("internal entry %q in public view", e.Name)
		}
	}
	if pal.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", pal.Len())
	}

	mid, ok := pal.Color("$mid")
	if !ok {
		t.Fatal("internal entry not resolvable by name")
	}
	visible := pal.Entries()[0].Color
	if visible != mid {
		t.Errorf("link = %v, want copy of $mid %v", visible, mid)
	}
}

func TestResolveLiteralIgnoresBase(t *testing.T) {
	doc := mustParse(t, "a: lime; b: #808080; >>> x")
	base, _ := hsl.FromHex("#123456")

	pal, err := Resolve(doc, base)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	lime, _ := hsl.FromHex("#00ff00")
	if got := pal.Entries()[0].Color; got != lime {
		t.Errorf("a = %v, want %v", got, lime)
	}
}

func TestResolveOperatorOrderAndCorrections(t *testing.T) {
	base := hsl.HSL{Hue: 0, Saturation: 80, Lightness: 50}

	// Hue lands at 240 where the sinusoidal correction peaks.
	doc := mustParse(t, "a: {h:=240}; b: {h:=240, no-adjust:!1}; >>> x")
	pal, err := Resolve(doc, base)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	corrected := pal.Entries()[0].Color
	plain := pal.Entries()[1].Color

	if want := math.Min(100, 80*1.140625); !closeTo(corrected.Saturation, want) {
		t.Errorf("corrected saturation = %v, want %v", corrected.Saturation, want)
	}
	if !closeTo(plain.Saturation, 80) {
		t.Errorf("no-adjust saturation = %v, want 80", plain.Saturation)
	}
}

func TestResolveLuminanceTarget(t *testing.T) {
	base := hsl.HSL{Hue: 0, Saturation: 100, Lightness: 50}
	doc := mustParse(t, "dim: {lum:=5, no-adjust:!1}; >>> x")

	pal, err := Resolve(doc, base)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	want := hsl.AdjustLightnessForLuminance(base, 5)
	if got := pal.Entries()[0].Color.Lightness; !closeTo(got, want) {
		t.Errorf("lightness = %v, want %v", got, want)
	}
}

func TestResolveErrors(t *testing.T) {
	base, _ := hsl.FromHex("#ff0000")

	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{
			name:    "UnknownLiteral",
			src:     "a: nosuchcolor; >>> x",
			wantErr: ErrUnknownColor,
		},
		{
			name:    "ForwardRelativeBase",
			src:     "a: {h:+10} => later; later: #ff0000; >>> x",
			wantErr: ErrUnresolvedReference,
		},
		{
			name:    "RelativeBaseOnLink",
			src:     "l: #ff0000; a: =>l; b: {h:+10} => a; >>> x",
			wantErr: ErrUnresolvedReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.src)
			pal, err := Resolve(doc, base)
			if err == nil {
				t.Fatal("Resolve() succeeded, want error")
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Resolve() error = %v, want %v", err, tt.wantErr)
			}
			if pal != nil {
				t.Error("partial palette returned on error")
			}
		})
	}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
