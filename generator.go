package fontcode

import (
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/fontcode/codegen"
	"github.com/tsawler/fontcode/glyph"
	"github.com/tsawler/fontcode/pack"
	"github.com/tsawler/fontcode/preview"
	"github.com/tsawler/fontcode/store"
)

// loader reads a store once and shares it between all Generators derived
// from the same Load call.
type loader struct {
	root      string
	family    store.Family
	size      int
	preloaded bool

	once  sync.Once
	store *store.Store
	err   error
}

func newLoader(root string, family store.Family, size int) *loader {
	return &loader{root: root, family: family, size: size}
}

func loadedStore(s *store.Store) *loader {
	l := &loader{family: s.Family, size: s.Size, store: s, preloaded: true}
	l.once.Do(func() {})
	return l
}

func (l *loader) get() (*store.Store, error) {
	l.once.Do(func() {
		l.store, l.err = store.Load(l.root, l.family, l.size)
	})
	return l.store, l.err
}

// Generator provides a fluent interface for generating font code from text.
// Each configuration method returns a new Generator, so a Generator is safe
// for concurrent use and can be used as a template for several outputs.
type Generator struct {
	loader *loader

	// Configuration
	options GenerateOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a copy of the Generator sharing its store loader.
func (g *Generator) clone() *Generator {
	return &Generator{
		loader:  g.loader,
		options: g.options.clone(),
		err:     g.err,
	}
}

// ============================================================================
// Configuration Methods (return new Generator instance)
// ============================================================================

// Assets sets the directory stores are loaded from. It has no effect on a
// Generator created with FromStore.
//
// Example:
//
//	artifact, err := fontcode.Load(store.HZK, 12).Assets("/opt/fonts").Generate("中")
func (g *Generator) Assets(dir string) *Generator {
	newGen := g.clone()
	if !g.loader.preloaded {
		newGen.loader = newLoader(dir, g.loader.family, g.loader.size)
	}
	return newGen
}

// Horizontal packs glyphs row by row. This is the default.
func (g *Generator) Horizontal() *Generator {
	return g.Arrangement(glyph.Horizontal)
}

// Vertical transposes each glyph before packing so its columns are packed.
//
// Example:
//
//	artifact, err := fontcode.Load(store.ASC, 12).Vertical().Generate("A")
func (g *Generator) Vertical() *Generator {
	return g.Arrangement(glyph.Vertical)
}

// Arrangement sets the glyph orientation.
func (g *Generator) Arrangement(a glyph.Arrangement) *Generator {
	newGen := g.clone()
	newGen.options.arrangement = a
	return newGen
}

// Mode sets the bit-packing mode. The default is pack.VerticalUpper. An
// undeclared mode fails every terminal call with pack.ErrUnknownMode.
func (g *Generator) Mode(m pack.Mode) *Generator {
	newGen := g.clone()
	if !m.Valid() {
		if newGen.err == nil {
			newGen.err = fmt.Errorf("%w: %d", pack.ErrUnknownMode, m)
		}
		return newGen
	}
	newGen.options.mode = m
	return newGen
}

// Invert flips every pixel before packing.
func (g *Generator) Invert() *Generator {
	return g.SetInvert(true)
}

// SetInvert sets pixel inversion explicitly.
func (g *Generator) SetInvert(invert bool) *Generator {
	newGen := g.clone()
	newGen.options.invert = invert
	return newGen
}

// Name sets the array name. An empty name selects codegen.DefaultName, e.g.
// "font_HZK12".
func (g *Generator) Name(name string) *Generator {
	newGen := g.clone()
	newGen.options.name = name
	return newGen
}

// Dialect sets the declaration style used by Code. The default is
// codegen.C51.
func (g *Generator) Dialect(d codegen.Dialect) *Generator {
	newGen := g.clone()
	newGen.options.dialect = d
	return newGen
}

// ============================================================================
// Terminal Methods
// ============================================================================

// Store returns the underlying font store, loading it if necessary.
func (g *Generator) Store() (*store.Store, error) {
	if g.err != nil {
		return nil, g.err
	}
	return g.loader.get()
}

// Matrix returns the unoriented bit matrix of r.
func (g *Generator) Matrix(r rune) (*glyph.Matrix, error) {
	s, err := g.Store()
	if err != nil {
		return nil, err
	}
	return glyph.Extract(s, r)
}

// Preview renders r as text rows, one per glyph row.
//
// Example:
//
//	rows, err := fontcode.Load(store.ASC, 12).Preview('A')
//	fmt.Println(strings.Join(rows, "\n"))
func (g *Generator) Preview(r rune) ([]string, error) {
	m, err := g.Matrix(r)
	if err != nil {
		return nil, err
	}
	return preview.Rows(m), nil
}

// Pack returns the packed bytes of text without wrapping them in an
// artifact. Characters are processed in order; the first failing character
// aborts the whole call.
//
// A base character followed by combining marks is composed first, so
// "e\u0301" is looked up as 'é'. A single code point is never replaced by
// its canonical equivalent: U+2126 OHM SIGN stays U+2126 and fails if the
// store has no cell for it.
func (g *Generator) Pack(text string) ([]byte, error) {
	s, err := g.Store()
	if err != nil {
		return nil, err
	}

	var data []byte
	i := 0
	for _, r := range compose(text) {
		m, err := glyph.Extract(s, r)
		if err != nil {
			return nil, fmt.Errorf("character %d: %w", i, err)
		}
		m = glyph.Orient(m, g.options.arrangement)
		data = pack.AppendPack(data, m, g.options.mode, g.options.invert)
		i++
	}
	return data, nil
}

// compose applies NFC to each multi-rune segment of text and leaves
// single-rune segments as written.
func compose(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for len(text) > 0 {
		n := norm.NFC.NextBoundaryInString(text, true)
		if n <= 0 {
			n = len(text)
		}
		seg := text[:n]
		text = text[n:]
		if utf8.RuneCountInString(seg) > 1 {
			seg = norm.NFC.String(seg)
		}
		sb.WriteString(seg)
	}
	return sb.String()
}

// Generate converts text to a code artifact. An empty text, or one that
// yields no bytes, fails with codegen.ErrEmptyArtifact.
//
// Example:
//
//	artifact, err := fontcode.Load(store.HZK, 12).Name("greeting").Generate("你好")
func (g *Generator) Generate(text string) (*codegen.Artifact, error) {
	data, err := g.Pack(text)
	if err != nil {
		return nil, err
	}
	s, _ := g.Store()
	return codegen.New(g.options.name, s.Family, s.Size, data)
}

// Code is like Generate but returns the formatted array definition in the
// configured dialect.
func (g *Generator) Code(text string) (string, error) {
	a, err := g.Generate(text)
	if err != nil {
		return "", err
	}
	return a.Format(g.options.dialect), nil
}

// Decode reads an array definition produced with the same options back into
// glyph matrices, one per character, in natural orientation. Pixels the
// packing mode dropped decode as background. The store file itself is not
// needed.
func (g *Generator) Decode(src []byte) ([]*glyph.Matrix, error) {
	if g.err != nil {
		return nil, g.err
	}
	geom, err := store.Lookup(g.loader.family, g.loader.size)
	if err != nil {
		return nil, err
	}
	a, err := codegen.Parse(src)
	if err != nil {
		return nil, err
	}

	rows, cols := geom.Height, geom.Width
	if g.options.arrangement == glyph.Vertical {
		rows, cols = cols, rows
	}
	per := rows * pack.BytesPerRow(cols)
	if len(a.Data)%per != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of the %d byte glyph size",
			codegen.ErrMalformedArtifact, len(a.Data), per)
	}

	out := make([]*glyph.Matrix, 0, len(a.Data)/per)
	for off := 0; off < len(a.Data); off += per {
		m, err := pack.Unpack(a.Data[off:off+per], rows, cols, g.options.mode, g.options.invert)
		if err != nil {
			return nil, err
		}
		out = append(out, glyph.Orient(m, g.options.arrangement))
	}
	return out, nil
}
