// Package hexlit encodes and decodes the 0xNN byte literals used in
// generated C arrays.
//
// Encoding writes uppercase, zero-padded literals:
//
//	hexlit.Format(0x3c) // "0x3C"
//
// Decoding accepts a comma and whitespace separated list of literals with
// one or two hex digits each, in either case:
//
//	data, err := hexlit.Decode([]byte("0x3C, 0x0a,\n0xF"))
//
// C comments are skipped.
package hexlit
