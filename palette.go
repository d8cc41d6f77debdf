package hexxdump

import "pkt.systems/hexxdump/internal/ansi"

// ColorPalette holds the ANSI escape sequences applied to the address label
// and, per byte class, to hex pairs and characters. Empty fields are not
// coloured; the zero value disables colour entirely.
type ColorPalette struct {
	Address    string
	Zero       string
	Printable  string
	Whitespace string
	Control    string
	NonASCII   string
}

// NoColorPalette disables all styling.
func NoColorPalette() ColorPalette {
	return ColorPalette{}
}

func colorPaletteFromAnsi(ap ansi.Palette) ColorPalette {
	return ColorPalette{
		Address:    ap.Address,
		Zero:       ap.Zero,
		Printable:  ap.Printable,
		Whitespace: ap.Whitespace,
		Control:    ap.Control,
		NonASCII:   ap.NonASCII,
	}
}

// forByte returns the style for the class of b.
func (p ColorPalette) forByte(b byte) string {
	switch {
	case b == 0:
		return p.Zero
	case b > ' ' && b < 0x7f:
		return p.Printable
	case b == ' ' || (b >= '\t' && b <= '\r'):
		return p.Whitespace
	case b < 0x80:
		return p.Control
	default:
		return p.NonASCII
	}
}
