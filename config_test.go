package hexxdump

import "testing"

func TestDefaultConfig(t *testing.T) {
	c := NewConfig()
	if c.bytesPerRow != 16 || c.addressWidth != 4 {
		t.Fatalf("unexpected widths: %d bytes per row, %d address digits", c.bytesPerRow, c.addressWidth)
	}
	if !c.showAddress || !c.showHexValues || !c.showCharacters {
		t.Fatalf("expected all columns shown: %+v", c)
	}
	if c.useControlPictures || c.useSpacePicture {
		t.Fatalf("expected control pictures off: %+v", c)
	}
	if c.substitute != '.' {
		t.Fatalf("expected '.' substitute, got %q", c.substitute)
	}
	if c.palette != (ColorPalette{}) {
		t.Fatalf("expected no palette, got %+v", c.palette)
	}
}

func TestConfig_SettersReturnCopies(t *testing.T) {
	base := NewConfig()
	derived := base.BytesPerRow(8).AddressWidth(2).ShowAddress(false).SubstituteCharacter('?')
	if base != DefaultConfig {
		t.Fatalf("setters modified the receiver: %+v", base)
	}
	if derived.bytesPerRow != 8 || derived.addressWidth != 2 || derived.showAddress || derived.substitute != '?' {
		t.Fatalf("unexpected derived config: %+v", derived)
	}
}

func TestConfig_SettersAreIdempotent(t *testing.T) {
	setters := map[string]func(Config) Config{
		"BytesPerRow":         func(c Config) Config { return c.BytesPerRow(7) },
		"AddressWidth":        func(c Config) Config { return c.AddressWidth(6) },
		"ShowAddress":         func(c Config) Config { return c.ShowAddress(false) },
		"ShowHexValues":       func(c Config) Config { return c.ShowHexValues(false) },
		"ShowCharacters":      func(c Config) Config { return c.ShowCharacters(false) },
		"UseControlPictures":  func(c Config) Config { return c.UseControlPictures(true) },
		"UseSpacePicture":     func(c Config) Config { return c.UseSpacePicture(true) },
		"SubstituteCharacter": func(c Config) Config { return c.SubstituteCharacter('␦') },
		"Palette":             func(c Config) Config { return c.Palette(ColorPalette{Address: "x"}) },
	}
	for name, set := range setters {
		once := set(DefaultConfig)
		twice := set(set(DefaultConfig))
		if once != twice {
			t.Fatalf("%s: applying twice differs from once", name)
		}
	}
}

func TestConfig_LastWriteWins(t *testing.T) {
	c := DefaultConfig.BytesPerRow(3).BytesPerRow(9).ShowAddress(false).ShowAddress(true)
	if c.bytesPerRow != 9 || !c.showAddress {
		t.Fatalf("expected last write to win: %+v", c)
	}
}

func TestConfig_NegativeWidthsClampToZero(t *testing.T) {
	c := DefaultConfig.BytesPerRow(-4).AddressWidth(-1)
	if c.Width() != 0 || c.MinAddressWidth() != 0 {
		t.Fatalf("expected negative widths clamped, got %d and %d", c.Width(), c.MinAddressWidth())
	}
	want := "00: 61 62  ab\n"
	if got := c.Dumper().Dump([]byte("ab")); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNew(t *testing.T) {
	cfg := DefaultConfig.BytesPerRow(4)
	if New(cfg).Config() != cfg {
		t.Fatalf("New did not keep the configuration")
	}
}
