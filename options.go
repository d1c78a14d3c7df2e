package fontcode

import (
	"github.com/tsawler/fontcode/codegen"
	"github.com/tsawler/fontcode/glyph"
	"github.com/tsawler/fontcode/pack"
)

// GenerateOptions holds configuration for code generation.
type GenerateOptions struct {
	// Orientation and bit order
	arrangement glyph.Arrangement
	mode        pack.Mode
	invert      bool

	// Output
	name    string // empty means codegen.DefaultName
	dialect codegen.Dialect
}

// defaultOptions returns the default generation options.
func defaultOptions() GenerateOptions {
	return GenerateOptions{
		arrangement: glyph.Horizontal,
		mode:        pack.VerticalUpper,
		invert:      false,
		name:        "",
		dialect:     codegen.C51,
	}
}

// clone creates a copy of GenerateOptions.
func (o GenerateOptions) clone() GenerateOptions {
	return GenerateOptions{
		arrangement: o.arrangement,
		mode:        o.mode,
		invert:      o.invert,
		name:        o.name,
		dialect:     o.dialect,
	}
}
