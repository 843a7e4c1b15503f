package provenance

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

// defaultSequence orders the xterm-256 colour space for display. The leading
// entries are the high-contrast system colours; the remainder is a fixed
// shuffle of the extended range so neighbouring slots stay visually distinct.
var defaultSequence = []uint8{
	1, 2, 3, 4, 5, 6, 9, 10, 11, 12, 13, 14, 15,

	34, 185, 147, 79, 214, 216, 152, 22, 63, 56, 192, 73, 110, 148, 136, 43,
	109, 221, 179, 111, 105, 115, 211, 20, 155, 166, 172, 222, 206, 85, 231,
	124, 108, 118, 65, 114, 83, 19, 78, 187, 98, 42, 157, 21, 32, 210, 48, 53,
	229, 160, 138, 142, 219, 220, 66, 145, 154, 35, 106, 133, 75, 191, 176,
	169, 230, 125, 149, 103, 96, 190, 74, 150, 228, 174, 204, 193, 92, 31,
	208, 181, 94, 197, 89, 223, 139, 27, 202, 141, 213, 45, 194, 218, 77, 68,
	126, 189, 70, 23, 121, 93, 183, 132, 52, 87, 44, 116, 49, 225, 119, 61, 76,
	135, 161, 46, 163, 104, 140, 67, 97, 81, 64, 50, 180, 217, 178, 165, 37,
	215, 99, 186, 171, 86, 57, 137, 41, 47, 153, 201, 173, 170, 29, 88, 128,
	175, 182, 226, 184, 102, 24, 195, 36, 168, 60, 30, 38, 26, 159, 58, 51,
	199, 91, 54, 71, 101, 143, 144, 203, 120, 39, 167, 59, 158, 62, 100, 130,
	82, 112, 123, 162, 205, 117, 207, 25, 209, 156, 84, 113, 224, 200, 33, 134,
	198, 188, 164, 212, 146, 122, 80, 177, 131, 227, 72, 16, 151, 196, 90, 17,
	129, 28, 55, 107, 95, 127, 18, 40, 69,
}

// Palette maps colour slots to terminal background colours. Slots wrap around
// when more tokens are registered than the palette has entries.
type Palette struct {
	colors []uint8
}

// DefaultPalette returns the built-in colour sequence.
func DefaultPalette() *Palette {
	return &Palette{colors: defaultSequence}
}

// NewPalette builds a palette from explicit xterm-256 colour numbers.
func NewPalette(colors []uint8) (*Palette, error) {
	if len(colors) == 0 {
		return nil, fmt.Errorf("provenance: palette needs at least one colour")
	}
	return &Palette{colors: append([]uint8(nil), colors...)}, nil
}

// Len reports the number of colours before slots wrap.
func (p *Palette) Len() int {
	return len(p.colors)
}

// Background returns the background colour number for a slot.
func (p *Palette) Background(slot int) uint8 {
	return p.colors[slot%len(p.colors)]
}

// Style returns the mgutz/ansi style specification ("fg:bg") for a slot. The
// foreground is picked for contrast: the extended 6x6x6 cube alternates
// between a light top half and a dark bottom half per 36-colour row, so the
// foreground flips between white and black accordingly.
func (p *Palette) Style(slot int) string {
	bg := p.Background(slot)
	fg := uint8(0)
	if bg >= 16 && (bg-16)%36 < 18 {
		fg = 15
	}
	return strconv.Itoa(int(fg)) + ":" + strconv.Itoa(int(bg))
}

type paletteDocument struct {
	Colors []int `yaml:"colors"`
}

// LoadPalette parses a YAML palette document of the form:
//
//	colors: [1, 2, 3, 185, 147]
//
// Entries must be valid xterm-256 colour numbers.
func LoadPalette(data []byte) (*Palette, error) {
	var doc paletteDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("provenance: parse palette: %w", err)
	}
	if len(doc.Colors) == 0 {
		return nil, fmt.Errorf("provenance: palette document defines no colours")
	}

	colors := make([]uint8, 0, len(doc.Colors))
	for i, c := range doc.Colors {
		if c < 0 || c > 255 {
			return nil, fmt.Errorf("provenance: palette colour %d out of range: %d", i, c)
		}
		colors = append(colors, uint8(c))
	}
	return &Palette{colors: colors}, nil
}

// PaletteFromTheme derives a palette from a go-theme manifest. Token values
// are xterm-256 colour numbers; tokens are ordered by name so a manifest
// yields the same palette on every load.
func PaletteFromTheme(m *theme.Manifest) (*Palette, error) {
	if m == nil || len(m.Tokens) == 0 {
		return nil, fmt.Errorf("provenance: theme manifest defines no tokens")
	}

	names := make([]string, 0, len(m.Tokens))
	for name := range m.Tokens {
		names = append(names, name)
	}
	sort.Strings(names)

	colors := make([]uint8, 0, len(names))
	for _, name := range names {
		raw := strings.TrimSpace(m.Tokens[name])
		c, err := strconv.Atoi(raw)
		if err != nil || c < 0 || c > 255 {
			return nil, fmt.Errorf("provenance: theme token %q is not a colour number: %q", name, raw)
		}
		colors = append(colors, uint8(c))
	}
	return &Palette{colors: colors}, nil
}
