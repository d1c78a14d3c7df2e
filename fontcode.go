// Package fontcode provides a fluent API for turning text into bitmap font
// data for firmware, using the HZK (GB2312 ideograph) and ASC (printable
// ASCII) binary font stores.
//
// Basic usage:
//
//	artifact, err := fontcode.Load(store.HZK, 12).Generate("你好")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(artifact) // unsigned char code font_HZK12[] = { ... };
//
// With options:
//
//	artifact, err := fontcode.Load(store.ASC, 12).
//	    Assets("/opt/fonts").
//	    Vertical().
//	    Mode(pack.HorizontalLower).
//	    Invert().
//	    Name("banner").
//	    Generate("HELLO")
//
// Previewing a single character:
//
//	rows, err := fontcode.Load(store.HZK, 12).Preview('中')
//
// For lower-level access see the store, glyph, pack and codegen packages.
package fontcode

import (
	"fmt"

	"github.com/tsawler/fontcode/store"
)

// DefaultAssetsDir is the assets root used when none is configured. Stores
// live at <root>/<FAMILY>/<FAMILY><SIZE>.
const DefaultAssetsDir = "assets"

// Load returns a Generator for the given font family and size. The store is
// read from the assets root on first use.
//
// Example:
//
//	code, err := fontcode.Load(store.ASC, 12).Code("A")
func Load(family store.Family, size int) *Generator {
	return &Generator{
		loader:  newLoader(DefaultAssetsDir, family, size),
		options: defaultOptions(),
	}
}

// LoadTag is like Load but takes the family as a tag such as "HZK" or "asc".
func LoadTag(family string, size int) *Generator {
	g := Load(store.ParseFamily(family), size)
	if g.loader.family == store.Unknown {
		g.err = fmt.Errorf("%w: %q", store.ErrUnsupportedFamily, family)
	}
	return g
}

// FromStore creates a Generator over an already loaded store.
//
// Example:
//
//	s, err := store.Open("fonts/HZK12")
//	if err != nil {
//	    // handle error
//	}
//	artifact, err := fontcode.FromStore(s).Generate("字库")
func FromStore(s *store.Store) *Generator {
	return &Generator{
		loader:  loadedStore(s),
		options: defaultOptions(),
	}
}

// Supported returns the supported sizes per family, e.g.
// {"HZK": [12], "ASC": [12]}.
func Supported() map[string][]int {
	return store.Supported()
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	code := fontcode.Must(fontcode.Load(store.ASC, 12).Code("OK"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
