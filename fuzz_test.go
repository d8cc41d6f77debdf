package hexxdump

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"
	"unicode/utf8"
)

const fuzzMaxInput = 1 << 16

func FuzzDump_HexColumnRoundTrip(f *testing.F) {
	seeds := [][]byte{
		nil,
		[]byte("Hello"),
		[]byte("\t\r\n"),
		[]byte(">\x80\xfe\xff"),
		repBytes(257),
	}
	for _, seed := range seeds {
		f.Add(seed, 8)
		f.Add(seed, 0)
	}

	f.Fuzz(func(t *testing.T, data []byte, width int) {
		if len(data) > fuzzMaxInput {
			return
		}
		width = min(max(width, 0), 64)

		d := DefaultConfig.BytesPerRow(width).ShowAddress(false).ShowCharacters(false).Dumper()
		var got []byte
		for _, row := range strings.Split(strings.TrimSuffix(d.Dump(data), "\n"), "\n") {
			for _, pair := range strings.Fields(row) {
				b, err := hex.DecodeString(pair)
				if err != nil || len(b) != 1 {
					t.Fatalf("bad hex pair %q in row %q", pair, row)
				}
				got = append(got, b[0])
			}
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("hex column round trip mismatch\ninput:  %x\noutput: %x", data, got)
		}
	})
}

func FuzzDump_RowShape(f *testing.F) {
	f.Add([]byte("Hello"), 8, true)
	f.Add(repBytes(300), 16, false)
	f.Add([]byte{}, 0, true)

	f.Fuzz(func(t *testing.T, data []byte, width int, pictures bool) {
		if len(data) > fuzzMaxInput {
			return
		}
		width = min(max(width, 0), 64)

		d := DefaultConfig.BytesPerRow(width).UseControlPictures(pictures).Dumper()
		out := d.Dump(data)
		if !utf8.ValidString(out) {
			t.Fatalf("output is not valid UTF-8")
		}

		var w bytes.Buffer
		n, err := d.DumpTo(&w, data)
		if err != nil {
			t.Fatalf("DumpTo failed: %v", err)
		}
		if n != len(out) || w.String() != out {
			t.Fatalf("DumpTo and Dump disagree")
		}

		if len(data) == 0 {
			if out != "" {
				t.Fatalf("expected empty output, got %q", out)
			}
			return
		}
		if !strings.HasSuffix(out, "\n") {
			t.Fatalf("output does not end with a newline")
		}
		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		if width > 0 {
			for i, line := range lines {
				if got := utf8.RuneCountInString(line); i < len(lines)-1 || len(data)%width == 0 {
					if got != utf8.RuneCountInString(lines[0]) {
						t.Fatalf("row %d has %d runes, first row has %d", i, got, utf8.RuneCountInString(lines[0]))
					}
				}
			}
		}
	})
}
