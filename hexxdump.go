package hexxdump

import (
	"io"
	"math/bits"
	"os"
	"strconv"
	"unicode/utf8"

	"pkt.systems/hexxdump/internal/ansi"
)

const hexDigits = "0123456789abcdef"

// controlPictures holds U+2400..U+241F, the glyphs for bytes 0x00..0x1f.
var controlPictures = [32]rune{
	'␀', '␁', '␂', '␃', '␄', '␅', '␆', '␇', '␈', '␉', '␊', '␋', '␌', '␍', '␎', '␏',
	'␐', '␑', '␒', '␓', '␔', '␕', '␖', '␗', '␘', '␙', '␚', '␛', '␜', '␝', '␞', '␟',
}

const (
	spacePicture  = '␠'
	deletePicture = '␡'
)

// Dumper renders hex dumps according to its Config. It holds no state besides
// the configuration and is safe for concurrent use.
type Dumper struct {
	cfg Config
}

// Default is a Dumper using DefaultConfig.
var Default = DefaultConfig.Dumper()

// New returns a Dumper for cfg.
func New(cfg Config) Dumper {
	return cfg.Dumper()
}

// Config returns the configuration the Dumper was built from.
func (d Dumper) Config() Config {
	return d.cfg
}

// Dump returns the hex dump of data. Empty input yields "".
func (d Dumper) Dump(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	l := d.layout(len(data))
	rows := len(data) / l.chunk
	if len(data)%l.chunk != 0 {
		rows++
	}
	// Padding is left to append; a huge row width must not size the buffer.
	buf := make([]byte, 0, len(data)*4+rows*(l.addrWidth+4))
	for off := 0; off < len(data); off += l.chunk {
		end := off + min(l.chunk, len(data)-off)
		buf = d.appendRow(buf, l, off, data[off:end])
	}
	return string(buf)
}

// DumpTo writes the hex dump of data to w, one Write call per row, and
// returns the number of bytes written. A write error stops the dump and is
// returned as is.
func (d Dumper) DumpTo(w io.Writer, data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	l := d.layout(len(data))
	rb := acquireRowBuffer()
	defer releaseRowBuffer(rb)

	written := 0
	for off := 0; off < len(data); off += l.chunk {
		end := off + min(l.chunk, len(data)-off)
		rb.buf = d.appendRow(rb.buf[:0], l, off, data[off:end])
		n, err := w.Write(rb.buf)
		written += n
		if err != nil {
			return written, err
		}
	}
	return written, nil
}

// Print writes the hex dump of data to os.Stdout, ignoring write errors.
func (d Dumper) Print(data []byte) {
	_, _ = d.DumpTo(os.Stdout, data)
}

// Rune maps a byte to the rune shown in the character column.
func (d Dumper) Rune(b byte) rune {
	switch {
	case b > ' ' && b < 0x7f:
		return rune(b)
	case b == ' ':
		if d.cfg.useControlPictures && d.cfg.useSpacePicture {
			return spacePicture
		}
		return ' '
	case b < ' ' && d.cfg.useControlPictures:
		return controlPictures[b]
	case b == 0x7f && d.cfg.useControlPictures:
		return deletePicture
	default:
		return d.cfg.substitute
	}
}

// HexValues returns b as space separated lowercase hex pairs, the hex column
// of a single unpadded row.
func (d Dumper) HexValues(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	plain := d
	plain.cfg.palette = ColorPalette{}
	return string(plain.appendHex(make([]byte, 0, len(b)*3), b))
}

// Characters returns b mapped through Rune, the character column of a single
// row.
func (d Dumper) Characters(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	plain := d
	plain.cfg.palette = ColorPalette{}
	return string(plain.appendChars(make([]byte, 0, len(b)), b))
}

// Dump returns the hex dump of data using Default.
func Dump(data []byte) string {
	return Default.Dump(data)
}

// DumpTo writes the hex dump of data to w using Default.
func DumpTo(w io.Writer, data []byte) (int, error) {
	return Default.DumpTo(w, data)
}

// Print writes the hex dump of data to os.Stdout using Default.
func Print(data []byte) {
	Default.Print(data)
}

type layout struct {
	chunk     int
	pad       int
	addrWidth int
}

func (d Dumper) layout(n int) layout {
	l := layout{chunk: d.cfg.bytesPerRow, pad: d.cfg.bytesPerRow}
	if l.chunk == 0 {
		l.chunk = n
	}
	l.addrWidth = addressWidth(n, d.cfg.addressWidth)
	return l
}

// addressWidth returns the number of address digits for an input of n bytes:
// the digits needed for the last offset rounded up to an even count, or
// minWidth when that is larger.
func addressWidth(n, minWidth int) int {
	digits := hexDigitCount(uint64(max(n-1, 0)))
	even := (digits + 1) &^ 1
	return max(even, minWidth)
}

// hexDigitCount returns the number of hex digits needed to print v. Zero
// needs one digit.
func hexDigitCount(v uint64) int {
	return max(1, (bits.Len64(v)+3)/4)
}

func (d Dumper) appendRow(dst []byte, l layout, offset int, chunk []byte) []byte {
	if d.cfg.showAddress {
		dst = d.appendAddress(dst, offset, l.addrWidth)
	}
	if d.cfg.showHexValues {
		dst = d.appendHex(dst, chunk)
		if d.cfg.showCharacters {
			dst = append(dst, ' ')
		}
		for missing := l.pad - len(chunk); missing > 0; missing-- {
			dst = append(dst, ' ', ' ', ' ')
		}
		if d.cfg.showCharacters {
			dst = append(dst, ' ')
		}
	}
	if d.cfg.showCharacters {
		dst = d.appendChars(dst, chunk)
	}
	return append(dst, '\n')
}

func (d Dumper) appendAddress(dst []byte, offset, width int) []byte {
	style := d.cfg.palette.Address
	dst = append(dst, style...)
	for i := hexDigitCount(uint64(offset)); i < width; i++ {
		dst = append(dst, '0')
	}
	dst = strconv.AppendUint(dst, uint64(offset), 16)
	if style != "" {
		dst = append(dst, ansi.Reset...)
	}
	return append(dst, ':', ' ')
}

func (d Dumper) appendHex(dst []byte, chunk []byte) []byte {
	pal := d.cfg.palette
	cur := ""
	for i, b := range chunk {
		style := pal.forByte(b)
		if style != cur && cur != "" {
			dst = append(dst, ansi.Reset...)
		}
		if i > 0 {
			dst = append(dst, ' ')
		}
		if style != cur {
			dst = append(dst, style...)
			cur = style
		}
		dst = append(dst, hexDigits[b>>4], hexDigits[b&0x0f])
	}
	if cur != "" {
		dst = append(dst, ansi.Reset...)
	}
	return dst
}

func (d Dumper) appendChars(dst []byte, chunk []byte) []byte {
	pal := d.cfg.palette
	cur := ""
	for _, b := range chunk {
		if style := pal.forByte(b); style != cur {
			if cur != "" {
				dst = append(dst, ansi.Reset...)
			}
			dst = append(dst, style...)
			cur = style
		}
		r := d.Rune(b)
		if r >= 0 && r < utf8.RuneSelf {
			dst = append(dst, byte(r))
		} else {
			dst = utf8.AppendRune(dst, r)
		}
	}
	if cur != "" {
		dst = append(dst, ansi.Reset...)
	}
	return dst
}
