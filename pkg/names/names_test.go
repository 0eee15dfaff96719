package names

import (
	"testing"
)

func TestIsHex(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#ff0000", true},
		{"#f00", true},
		{"#FF0000", true},
		{"ff0000", false}, // no leading '#'
		{"#ff00", false},  // 4 digits
		{"#gggggg", false},
		{"red", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsHex(tt.in); got != tt.want {
			t.Errorf("IsHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "KnownName", in: "red", want: "#ff0000"},
		{name: "CaseInsensitive", in: "SteelBlue", want: "#4682b4"},
		{name: "HexPassThrough", in: "#123abc", want: "#123abc"},
		{name: "ShorthandHexPassThrough", in: "#f80", want: "#f80"},
		{name: "Unknown", in: "notacolor", wantErr: true},
		{name: "BareHexIsUnknown", in: "123abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Resolve(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestAllSortedAndResolvable(t *testing.T) {
	all := All()
	if len(all) != len(table) {
		t.Fatalf("All() returned %d entries, want %d", len(all), len(table))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Name >= all[i].Name {
			t.Errorf("All() not sorted: %q before %q", all[i-1].Name, all[i].Name)
		}
	}
	for _, e := range all {
		if !IsHex(e.Hex) {
			t.Errorf("entry %q has invalid hex %q", e.Name, e.Hex)
		}
	}
}
