// Package ansi provides ANSI escape sequences and palette presets for the
// columns of a hex dump. The theme colours are derived from
// pkt.systems/pslog/ansi (MIT License).
package ansi

// Base ANSI escape codes.
const (
	Reset        = "\x1b[0m"
	Faint        = "\x1b[90m"
	Green        = "\x1b[32m"
	Yellow       = "\x1b[33m"
	Blue         = "\x1b[34m"
	Magenta      = "\x1b[35m"
	Cyan         = "\x1b[36m"
	BrightRed    = "\x1b[1;31m"
	BrightYellow = "\x1b[1;33m"
)

// Palette assigns an escape sequence to the address label and to each byte
// class. An empty string leaves that part uncoloured.
type Palette struct {
	Address    string
	Zero       string
	Printable  string
	Whitespace string
	Control    string
	NonASCII   string
}

// PaletteDefault is the 16-colour friendly default, close to hexyl's scheme.
var PaletteDefault = Palette{
	Address:    Faint,
	Zero:       Faint,
	Printable:  Cyan,
	Whitespace: Green,
	Control:    Magenta,
	NonASCII:   Yellow,
}

// PaletteClassic keeps printable text plain and highlights everything else.
var PaletteClassic = Palette{
	Address:    Blue,
	Zero:       Faint,
	Whitespace: Green,
	Control:    BrightRed,
	NonASCII:   BrightYellow,
}

// PaletteOutrunElectric delivers neon pinks and blues.
var PaletteOutrunElectric = Palette{
	Address:    "\x1b[38;5;117m",
	Zero:       "\x1b[38;5;60m",
	Printable:  "\x1b[38;5;81m",
	Whitespace: "\x1b[38;5;69m",
	Control:    "\x1b[38;5;201m",
	NonASCII:   "\x1b[38;5;99m",
}

// PaletteDoomGruvbox echoes doom-gruvbox with earthy reds and ambers.
var PaletteDoomGruvbox = Palette{
	Address:    "\x1b[38;5;137m",
	Zero:       "\x1b[38;5;101m",
	Printable:  "\x1b[38;5;178m",
	Whitespace: "\x1b[38;5;142m",
	Control:    "\x1b[38;5;167m",
	NonASCII:   "\x1b[38;5;108m",
}

// PaletteDoomNord channels doom-nord with cool glacier blues.
var PaletteDoomNord = Palette{
	Address:    "\x1b[38;5;109m",
	Zero:       "\x1b[38;5;60m",
	Printable:  "\x1b[38;5;153m",
	Whitespace: "\x1b[38;5;110m",
	Control:    "\x1b[38;5;174m",
	NonASCII:   "\x1b[38;5;180m",
}

// PaletteTokyoNight draws on Tokyo Night's neon blues and violets.
var PaletteTokyoNight = Palette{
	Address:    "\x1b[38;5;103m",
	Zero:       "\x1b[38;5;59m",
	Printable:  "\x1b[38;5;117m",
	Whitespace: "\x1b[38;5;150m",
	Control:    "\x1b[38;5;204m",
	NonASCII:   "\x1b[38;5;141m",
}

// PaletteCatppuccinMocha recreates Catppuccin Mocha's soft pastels.
var PaletteCatppuccinMocha = Palette{
	Address:    "\x1b[38;5;146m",
	Zero:       "\x1b[38;5;60m",
	Printable:  "\x1b[38;5;151m",
	Whitespace: "\x1b[38;5;117m",
	Control:    "\x1b[38;5;211m",
	NonASCII:   "\x1b[38;5;223m",
}

// PaletteSynthwave84 glows with magentas, cyans and gold.
var PaletteSynthwave84 = Palette{
	Address:    "\x1b[38;5;98m",
	Zero:       "\x1b[38;5;60m",
	Printable:  "\x1b[38;5;51m",
	Whitespace: "\x1b[38;5;220m",
	Control:    "\x1b[38;5;201m",
	NonASCII:   "\x1b[38;5;213m",
}
