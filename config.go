package hexxdump

// Config holds the display options of a Dumper. It is a comparable value
// type: setters use value receivers and return an updated copy, so a Config
// can be shared freely and derived from without affecting the original.
//
// There are no invalid configurations. A row width of 0 renders the whole
// input as a single row, and negative widths are treated as 0.
type Config struct {
	bytesPerRow        int
	addressWidth       int
	showAddress        bool
	showHexValues      bool
	showCharacters     bool
	useControlPictures bool
	useSpacePicture    bool
	substitute         rune
	palette            ColorPalette
}

// DefaultConfig is 16 bytes per row, at least 4 address digits, every column
// shown, control pictures off and '.' as the substitute character.
var DefaultConfig = Config{
	bytesPerRow:    16,
	addressWidth:   4,
	showAddress:    true,
	showHexValues:  true,
	showCharacters: true,
	substitute:     '.',
}

// NewConfig returns DefaultConfig.
func NewConfig() Config {
	return DefaultConfig
}

// BytesPerRow sets the number of bytes rendered per row. 0 disables chunking
// and renders the entire input as one row.
func (c Config) BytesPerRow(n int) Config {
	c.bytesPerRow = max(n, 0)
	return c
}

// AddressWidth sets the minimum number of hex digits of the address column.
// The column still grows when the input needs more digits.
func (c Config) AddressWidth(n int) Config {
	c.addressWidth = max(n, 0)
	return c
}

// ShowAddress toggles the address column.
func (c Config) ShowAddress(show bool) Config {
	c.showAddress = show
	return c
}

// ShowHexValues toggles the hex column.
func (c Config) ShowHexValues(show bool) Config {
	c.showHexValues = show
	return c
}

// ShowCharacters toggles the character column.
func (c Config) ShowCharacters(show bool) Config {
	c.showCharacters = show
	return c
}

// UseControlPictures renders ASCII control bytes (0x00-0x1f and 0x7f) as
// glyphs from the Unicode Control Pictures block instead of the substitute
// character.
func (c Config) UseControlPictures(use bool) Config {
	c.useControlPictures = use
	return c
}

// UseSpacePicture renders 0x20 as U+2420 (SYMBOL FOR SPACE). It only takes
// effect together with UseControlPictures.
func (c Config) UseSpacePicture(use bool) Config {
	c.useSpacePicture = use
	return c
}

// SubstituteCharacter sets the rune shown for bytes without a printable
// representation. Non-ASCII runes are emitted as UTF-8.
func (c Config) SubstituteCharacter(r rune) Config {
	c.substitute = r
	return c
}

// Palette sets the ANSI colours used for the address label and for each byte
// class. The zero ColorPalette disables colouring.
func (c Config) Palette(p ColorPalette) Config {
	c.palette = p
	return c
}

// Width returns the configured number of bytes per row.
func (c Config) Width() int { return c.bytesPerRow }

// MinAddressWidth returns the configured minimum address width in digits.
func (c Config) MinAddressWidth() int { return c.addressWidth }

// Dumper converts the configuration into a Dumper.
func (c Config) Dumper() Dumper {
	return Dumper{cfg: c}
}
