// Package hexxdump renders byte slices as hex dumps: one row per chunk of
// input with an address label, the bytes as lowercase hex pairs and a
// printable character view.
//
// A Config is an immutable value built from DefaultConfig through chained
// setters; every setter returns a new Config. Convert it into a Dumper to
// render:
//
//	d := hexxdump.DefaultConfig.
//		BytesPerRow(8).
//		AddressWidth(2).
//		UseControlPictures(true).
//		Dumper()
//	fmt.Print(d.Dump([]byte("Hello\n")))
//
// which prints
//
//	00: 48 65 6c 6c 6f 0a        Hello␊
//
// Writing to a sink:
//
//	if _, err := d.DumpTo(os.Stderr, data); err != nil {
//		log.Fatal(err)
//	}
//
// The package-level Dump, DumpTo and Print use Default, a Dumper built from
// DefaultConfig (16 bytes per row, at least 4 address digits, all columns
// shown, control pictures off, '.' as substitute character).
package hexxdump
