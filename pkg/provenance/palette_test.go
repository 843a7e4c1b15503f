package provenance

import (
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/google/go-cmp/cmp"
)

func TestPaletteFromTheme(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "trace",
		Version: "1.0.0",
		Tokens: map[string]string{
			"c2": "185",
			"c1": "34",
			"c3": " 9 ",
		},
	}

	p, err := PaletteFromTheme(manifest)
	if err != nil {
		t.Fatalf("PaletteFromTheme: %v", err)
	}

	// Tokens are ordered by name so the palette is stable per manifest.
	want := []uint8{34, 185, 9}
	got := []uint8{p.Background(0), p.Background(1), p.Background(2)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("palette mismatch (-want +got):\n%s", diff)
	}
}

func TestPaletteFromThemeRejectsBadTokens(t *testing.T) {
	cases := map[string]*theme.Manifest{
		"nil manifest": nil,
		"no tokens":    {Name: "empty"},
		"hex value":    {Tokens: map[string]string{"brand": "#123456"}},
		"out of range": {Tokens: map[string]string{"c": "300"}},
	}
	for name, manifest := range cases {
		if _, err := PaletteFromTheme(manifest); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestDefaultPaletteLeadsWithSystemColours(t *testing.T) {
	p := DefaultPalette()
	if p.Len() < 16 {
		t.Fatalf("default palette suspiciously small: %d", p.Len())
	}
	for slot := 0; slot < 13; slot++ {
		if bg := p.Background(slot); bg >= 16 {
			t.Fatalf("slot %d should map to a system colour, got %d", slot, bg)
		}
	}
}
