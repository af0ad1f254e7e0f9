package toon

import (
	"strings"
	"testing"

	"github.com/phobologic/cfgextract/internal/model"
)

func TestEncodeValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", `""`},
		{"simple", "Rifle", "Rifle"},
		{"leading space", " hello", `" hello"`},
		{"trailing space", "hello ", `"hello "`},
		{"newline", "a\nb", `"a\nb"`},
		{"tab", "a\tb", `"a\tb"`},
		{"true keyword", "true", `"true"`},
		{"null keyword", "Null", `"Null"`},
		{"integer", "42", "42"},
		{"float", "3.14", "3.14"},
		{"comma", "a,b", `"a,b"`},
		{"colon", "a:b", `"a:b"`},
		{"quote", `a"b`, `"a\"b"`},
		{"backslash", `a\b`, `"a\\b"`},
		{"brace", "a{b", `"a{b"`},
		{"dash prefix", "-foo", `"-foo"`},
		{"path", "contracts/guns/weapons/Rifle.cfg", "contracts/guns/weapons/Rifle.cfg"},
		{"spaces inside", "First Orbit", "First Orbit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := encodeValue(tt.in)
			if got != tt.want {
				t.Errorf("encodeValue(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	m := model.Manifest{
		Contracts: map[string][]model.Entry{
			"Rifle": {{Saved: "contracts/guns/weapons/Rifle.cfg", Source: "weapons.cfg"}},
			"Boat": {
				{Saved: "contracts/ungrouped/a/Boat.cfg", Source: "a.cfg"},
				{Saved: "contracts/ungrouped/a/Boat_1.cfg", Source: "sub/a.cfg"},
			},
		},
		Groups: map[string][]model.Entry{},
	}

	got := Encode("index.json", m)
	lines := strings.Split(got, "\n")

	want := []string{
		"manifest: index.json",
		"contracts[3]{name,saved,source}:",
		"  Boat,contracts/ungrouped/a/Boat.cfg,a.cfg",
		"  Boat,contracts/ungrouped/a/Boat_1.cfg,sub/a.cfg",
		"  Rifle,contracts/guns/weapons/Rifle.cfg,weapons.cfg",
		"groups[0]{name,saved,source}:",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), got)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}
