package hexxdump

import (
	"fmt"
	"sort"
	"strings"

	"pkt.systems/hexxdump/internal/ansi"
)

const (
	paletteDefaultName = "default"
	paletteNoneName    = "none"
)

var paletteRegistry = map[string]ansi.Palette{
	paletteDefaultName: ansi.PaletteDefault,
	"hexyl":            ansi.PaletteDefault,
	"classic":          ansi.PaletteClassic,
	"catppuccin-mocha": ansi.PaletteCatppuccinMocha,
	"doom-gruvbox":     ansi.PaletteDoomGruvbox,
	"doom-nord":        ansi.PaletteDoomNord,
	"outrun-electric":  ansi.PaletteOutrunElectric,
	"synthwave84":      ansi.PaletteSynthwave84,
	"tokyo-night":      ansi.PaletteTokyoNight,
}

// PaletteNames returns the sorted list of palette names, including "none".
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRegistry)+1)
	for name := range paletteRegistry {
		names = append(names, name)
	}
	names = append(names, paletteNoneName)
	sort.Strings(names)
	return names
}

// ResolvePalette returns the ColorPalette registered under name, defaulting
// to "default" when name is empty. The name "none" disables colouring. When
// enableColor is false the name is still validated but a no-colour palette
// is returned.
func ResolvePalette(name string, enableColor bool) (ColorPalette, error) {
	key := paletteDefaultName
	if strings.TrimSpace(name) != "" {
		key = strings.ToLower(strings.TrimSpace(name))
	}

	if key == paletteNoneName {
		return NoColorPalette(), nil
	}

	ap, ok := paletteRegistry[key]
	if !ok {
		return ColorPalette{}, fmt.Errorf("unknown palette %q (use one of: %s)", key, strings.Join(PaletteNames(), ", "))
	}

	if !enableColor {
		return NoColorPalette(), nil
	}
	return colorPaletteFromAnsi(ap), nil
}
