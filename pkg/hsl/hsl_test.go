package hsl

import (
	"math"
	"strconv"
	"testing"
)

func TestFromHex(t *testing.T) {
	tests := []struct {
		name    string
		hex     string
		want    HSL
		wantErr bool
	}{
		{name: "Red", hex: "#ff0000", want: HSL{Hue: 0, Saturation: 100, Lightness: 50}},
		{name: "Green", hex: "#00ff00", want: HSL{Hue: 120, Saturation: 100, Lightness: 50}},
		{name: "Blue", hex: "#0000ff", want: HSL{Hue: 240, Saturation: 100, Lightness: 50}},
		{name: "White", hex: "#ffffff", want: HSL{Hue: 0, Saturation: 0, Lightness: 100}},
		{name: "Black", hex: "#000000", want: HSL{Hue: 0, Saturation: 0, Lightness: 0}},
		{name: "Gray", hex: "#808080", want: HSL{Hue: 0, Saturation: 0, Lightness: 50.19607843137255}},
		{name: "NoHash", hex: "ff0000", want: HSL{Hue: 0, Saturation: 100, Lightness: 50}},
		{name: "Shorthand", hex: "#f00", want: HSL{Hue: 0, Saturation: 100, Lightness: 50}},
		{name: "ShorthandNoHash", hex: "0f0", want: HSL{Hue: 120, Saturation: 100, Lightness: 50}},
		{name: "SurroundingSpace", hex: " #ff0000 ", want: HSL{Hue: 0, Saturation: 100, Lightness: 50}},
		{name: "TooShort", hex: "#ff00", wantErr: true},
		{name: "NotHex", hex: "#zzzzzz", wantErr: true},
		{name: "Empty", hex: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromHex(tt.hex)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("FromHex(%q) = %v, want error", tt.hex, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromHex(%q) error: %v", tt.hex, err)
			}
			if !closeTo(got.Hue, tt.want.Hue) || !closeTo(got.Saturation, tt.want.Saturation) || !closeTo(got.Lightness, tt.want.Lightness) {
				t.Errorf("FromHex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	// Each channel must survive the round trip within ±1 (rounding tolerance).
	hexes := []string{
		"#ff0000", "#00ff00", "#0000ff", "#ffffff", "#000000",
		"#4b0082", "#2e8b57", "#ffc0cb", "#d2691e", "#123456",
		"#bf4040", "#87ceeb", "#fa8072", "#010203",
	}
	for _, hex := range hexes {
		c, err := FromHex(hex)
		if err != nil {
			t.Fatalf("FromHex(%q) error: %v", hex, err)
		}
		got := c.Hex()
		for i := 0; i < 3; i++ {
			want, _ := strconv.ParseUint(hex[1+i*2:3+i*2], 16, 8)
			have, _ := strconv.ParseUint(got[1+i*2:3+i*2], 16, 8)
			if diff := int(want) - int(have); diff < -1 || diff > 1 {
				t.Errorf("round trip %q = %q: channel %d off by %d", hex, got, i, diff)
			}
		}
	}
}

func TestHexIsLowercaseSixDigit(t *testing.T) {
	c := HSL{Hue: 200, Saturation: 70, Lightness: 60}
	got := c.Hex()
	if len(got) != 7 || got[0] != '#' {
		t.Fatalf("Hex() = %q, want '#' + 6 digits", got)
	}
	for _, r := range got[1:] {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			t.Errorf("Hex() = %q contains non-lowercase-hex %q", got, r)
		}
	}
}

func TestStringForms(t *testing.T) {
	c := HSL{Hue: 120, Saturation: 50, Lightness: 50}
	if got, want := c.String(), "120,50,50"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := c.CSS(), "120deg,50%,50%"; got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}

	frac := HSL{Hue: 10.5, Saturation: 33.25, Lightness: 0}
	if got, want := frac.String(), "10.5,33.25,0"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		c    HSL
		want float64
	}{
		{name: "Black", c: HSL{0, 0, 0}, want: 0},
		{name: "White", c: HSL{0, 0, 100}, want: 1},
		{name: "Red", c: HSL{0, 100, 50}, want: 0.2126},
		{name: "Green", c: HSL{120, 100, 50}, want: 0.7152},
		{name: "Blue", c: HSL{240, 100, 50}, want: 0.0722},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Luminance(); !closeTo(got, tt.want) {
				t.Errorf("Luminance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
