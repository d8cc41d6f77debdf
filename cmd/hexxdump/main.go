package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"pkt.systems/hexxdump"
)

const progName = "hexxdump"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type cliOptions struct {
	width           int
	addressWidth    int
	noAddress       bool
	noHex           bool
	noChars         bool
	controlPictures bool
	spacePicture    bool
	substitute      string
	color           string
	palette         string
	listPalettes    bool
}

func newFlagSet(opts *cliOptions, stderr io.Writer) *pflag.FlagSet {
	def := hexxdump.DefaultConfig
	fs := pflag.NewFlagSet(progName, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVarP(&opts.width, "width", "w", def.Width(), "bytes per row (0 renders the whole input as one row)")
	fs.IntVarP(&opts.addressWidth, "address-width", "a", def.MinAddressWidth(), "minimum number of address digits")
	fs.BoolVar(&opts.noAddress, "no-address", false, "hide the address column")
	fs.BoolVar(&opts.noHex, "no-hex", false, "hide the hex column")
	fs.BoolVar(&opts.noChars, "no-chars", false, "hide the character column")
	fs.BoolVarP(&opts.controlPictures, "control-pictures", "c", false, "show control bytes as Unicode control pictures")
	fs.BoolVar(&opts.spacePicture, "space-picture", false, "show spaces as ␠ (requires --control-pictures)")
	fs.StringVarP(&opts.substitute, "substitute", "s", ".", "character shown for unprintable bytes")
	fs.StringVar(&opts.color, "color", "auto", "colorize output: auto, always or never")
	fs.StringVar(&opts.palette, "palette", "default", "color palette name (see --list-palettes)")
	fs.BoolVar(&opts.listPalettes, "list-palettes", false, "print the available palettes and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] [file ...]\n\nWith no file, or when file is -, read standard input.\n\n", progName)
		fs.PrintDefaults()
	}
	return fs
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts cliOptions
	fs := newFlagSet(&opts, stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.listPalettes {
		fmt.Fprintln(stdout, strings.Join(hexxdump.PaletteNames(), "\n"))
		return 0
	}

	dumper, err := buildDumper(opts, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", progName, err)
		return 2
	}

	paths := fs.Args()
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, path := range paths {
		data, err := readInput(path, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", progName, err)
			return 1
		}
		if _, err := dumper.DumpTo(stdout, data); err != nil {
			fmt.Fprintf(stderr, "%s: write error: %v\n", progName, err)
			return 1
		}
	}
	return 0
}

func buildDumper(opts cliOptions, stdout io.Writer) (hexxdump.Dumper, error) {
	if utf8.RuneCountInString(opts.substitute) != 1 {
		return hexxdump.Dumper{}, fmt.Errorf("--substitute must be a single character, got %q", opts.substitute)
	}
	sub, _ := utf8.DecodeRuneInString(opts.substitute)

	enableColor, err := colorEnabled(opts.color, stdout)
	if err != nil {
		return hexxdump.Dumper{}, err
	}
	palette, err := hexxdump.ResolvePalette(opts.palette, enableColor)
	if err != nil {
		return hexxdump.Dumper{}, err
	}

	return hexxdump.DefaultConfig.
		BytesPerRow(opts.width).
		AddressWidth(opts.addressWidth).
		ShowAddress(!opts.noAddress).
		ShowHexValues(!opts.noHex).
		ShowCharacters(!opts.noChars).
		UseControlPictures(opts.controlPictures).
		UseSpacePicture(opts.spacePicture).
		SubstituteCharacter(sub).
		Palette(palette).
		Dumper(), nil
}

func colorEnabled(mode string, stdout io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false, nil
		}
		f, ok := stdout.(*os.File)
		if !ok {
			return false, nil
		}
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (use auto, always or never)", mode)
	}
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}
