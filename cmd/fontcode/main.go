// fontcode - bitmap font code generator for embedded displays
//
// Usage:
//
//	fontcode supported                          List supported families and sizes
//	fontcode preview  [options] <char>          Render one character
//	fontcode generate [options] <text>          Emit a C array for text
//	fontcode decode   [options] <file.c>        Render the glyphs of an emitted array
//
// Defaults for -assets, -dialect and the log level come from FONTCODE_ASSETS,
// FONTCODE_DIALECT and FONTCODE_LOG_LEVEL, or from .env / .env.local in the
// working directory.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"github.com/tsawler/fontcode"
	"github.com/tsawler/fontcode/codegen"
	"github.com/tsawler/fontcode/glyph"
	"github.com/tsawler/fontcode/internal/config"
	"github.com/tsawler/fontcode/pack"
	"github.com/tsawler/fontcode/preview"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if lvl, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	} else {
		log.Warnf("unknown log level %q, using info", cfg.LogLevel)
	}

	if err := run(os.Args[1:], cfg, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			printUsage(os.Stderr)
		}
		log.WithError(err).Error("fontcode failed")
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

func run(args []string, cfg config.Config, stdout io.Writer) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	switch cmd := args[0]; cmd {
	case "supported":
		return cmdSupported(stdout)
	case "preview":
		return cmdPreview(args[1:], cfg, stdout)
	case "generate", "gen":
		return cmdGenerate(args[1:], cfg, stdout)
	case "decode":
		return cmdDecode(args[1:], cfg, stdout)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `fontcode - bitmap font code generator

Usage:
  fontcode supported                          List supported families and sizes
  fontcode preview  [options] <char>          Render one character
  fontcode generate [options] <text>          Emit a C array for text
  fontcode decode   [options] <file.c>        Render the glyphs of an emitted array

Options:
  -assets dir           Font store root (default from FONTCODE_ASSETS or "assets")
  -family HZK|ASC       Font family (default HZK)
  -size N               Font size (default 12)
  -arrangement a        horizontal or vertical (generate, decode)
  -mode m               vertical_upper, vertical_lower, horizontal_upper,
                        horizontal_lower (generate, decode)
  -invert               Invert pixels before packing (generate, decode)
  -name id              Array name (generate, default font_<FAMILY><SIZE>)
  -dialect d            c51, avr or c (generate)
  -format f             text, png or html (preview)
  -scale N              Pixel scale for png previews (default 8)
  -o file               Write output to file instead of stdout

Examples:
  fontcode generate -family HZK -size 12 你好
  fontcode generate -family ASC -arrangement vertical -mode horizontal_lower HELLO
  fontcode preview -format png -o zhong.png 中
  fontcode generate -o font.c 字库 && fontcode decode font.c
`)
}

// fontFlags are shared by every command that reads a font.
type fontFlags struct {
	assets string
	family string
	size   int
}

func (f *fontFlags) register(fs *flag.FlagSet, cfg config.Config) {
	fs.StringVar(&f.assets, "assets", cfg.AssetsDir, "font store root")
	fs.StringVar(&f.family, "family", "HZK", "font family (HZK or ASC)")
	fs.IntVar(&f.size, "size", 12, "font size")
}

func (f *fontFlags) generator() *fontcode.Generator {
	return fontcode.LoadTag(f.family, f.size).Assets(f.assets)
}

func (f *fontFlags) logger() *log.Entry {
	return log.WithFields(log.Fields{
		"family": strings.ToUpper(f.family),
		"size":   f.size,
	})
}

// packFlags select how glyphs are oriented and packed.
type packFlags struct {
	arrangement string
	mode        string
	invert      bool
}

func (p *packFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&p.arrangement, "arrangement", glyph.Horizontal.String(), "glyph arrangement (horizontal or vertical)")
	fs.StringVar(&p.mode, "mode", pack.VerticalUpper.String(), "bit-packing mode")
	fs.BoolVar(&p.invert, "invert", false, "invert pixels before packing")
}

func (p *packFlags) apply(g *fontcode.Generator) (*fontcode.Generator, error) {
	a, err := glyph.ParseArrangement(p.arrangement)
	if err != nil {
		return nil, err
	}
	m, err := pack.ParseMode(p.mode)
	if err != nil {
		return nil, err
	}
	return g.Arrangement(a).Mode(m).SetInvert(p.invert), nil
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parse parses args and returns the single positional argument.
func parse(fs *flag.FlagSet, args []string, what string) (string, error) {
	if err := fs.Parse(args); err != nil {
		return "", fmt.Errorf("%w: %s: %v", errUsage, fs.Name(), err)
	}
	if fs.NArg() != 1 {
		return "", fmt.Errorf("%w: %s expects exactly one %s", errUsage, fs.Name(), what)
	}
	return fs.Arg(0), nil
}

// output returns the writer for -o, or stdout when path is empty.
func output(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output: %w", err)
	}
	return f, f.Close, nil
}

func cmdSupported(w io.Writer) error {
	supported := fontcode.Supported()
	families := make([]string, 0, len(supported))
	for family := range supported {
		families = append(families, family)
	}
	sort.Strings(families)

	for _, family := range families {
		sizes := make([]string, len(supported[family]))
		for i, size := range supported[family] {
			sizes[i] = fmt.Sprint(size)
		}
		fmt.Fprintf(w, "%s\t%s\n", family, strings.Join(sizes, ","))
	}
	return nil
}

func cmdPreview(args []string, cfg config.Config, stdout io.Writer) error {
	fs := newFlagSet("preview")
	var font fontFlags
	font.register(fs, cfg)
	format := fs.String("format", "text", "output format (text, png or html)")
	scale := fs.Int("scale", 8, "pixel scale for png output")
	out := fs.String("o", "", "output file")

	arg, err := parse(fs, args, "character")
	if err != nil {
		return err
	}
	if utf8.RuneCountInString(arg) != 1 {
		return fmt.Errorf("%w: preview expects a single character, got %q", errUsage, arg)
	}
	r, _ := utf8.DecodeRuneInString(arg)
	switch *format {
	case "text", "png", "html":
	default:
		return fmt.Errorf("%w: unknown preview format %q", errUsage, *format)
	}

	m, err := font.generator().Matrix(r)
	if err != nil {
		return err
	}

	w, closeOut, err := output(*out, stdout)
	if err != nil {
		return err
	}

	switch *format {
	case "text":
		for _, row := range preview.Rows(m) {
			fmt.Fprintln(w, row)
		}
	case "png":
		err = preview.WritePNG(w, m, *scale)
	case "html":
		err = preview.HTML(w, r, m)
	}
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	font.logger().WithFields(log.Fields{"char": string(r), "format": *format}).Debug("preview rendered")
	return nil
}

func cmdGenerate(args []string, cfg config.Config, stdout io.Writer) error {
	fs := newFlagSet("generate")
	var font fontFlags
	var packing packFlags
	font.register(fs, cfg)
	packing.register(fs)
	name := fs.String("name", "", "array name")
	dialect := fs.String("dialect", cfg.Dialect, "declaration dialect (c51, avr or c)")
	out := fs.String("o", "", "output file")

	text, err := parse(fs, args, "text argument")
	if err != nil {
		return err
	}

	d, err := codegen.ParseDialect(*dialect)
	if err != nil {
		return err
	}
	g, err := packing.apply(font.generator())
	if err != nil {
		return err
	}

	a, err := g.Name(*name).Generate(text)
	if err != nil {
		return err
	}

	w, closeOut, err := output(*out, stdout)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, a.Format(d))
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to write artifact: %w", err)
	}

	font.logger().WithFields(log.Fields{
		"name":  a.Name,
		"chars": utf8.RuneCountInString(text),
		"bytes": len(a.Data),
	}).Info("artifact generated")
	return nil
}

func cmdDecode(args []string, cfg config.Config, stdout io.Writer) error {
	fs := newFlagSet("decode")
	var font fontFlags
	var packing packFlags
	font.register(fs, cfg)
	packing.register(fs)
	out := fs.String("o", "", "output file")

	path, err := parse(fs, args, "source file")
	if err != nil {
		return err
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	g, err := packing.apply(font.generator())
	if err != nil {
		return err
	}
	matrices, err := g.Decode(src)
	if err != nil {
		return err
	}

	w, closeOut, err := output(*out, stdout)
	if err != nil {
		return err
	}
	for i, m := range matrices {
		if i > 0 {
			fmt.Fprintln(w)
		}
		for _, row := range preview.Rows(m) {
			fmt.Fprintln(w, row)
		}
	}
	if err := closeOut(); err != nil {
		return err
	}

	font.logger().WithFields(log.Fields{"file": path, "glyphs": len(matrices)}).Info("artifact decoded")
	return nil
}
