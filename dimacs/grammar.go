// SPDX-License-Identifier: MIT
//
// File: grammar.go
// Role: participle grammar for the payload of 'p' and 'e' lines.
//
// The line-type character is dispatched in parse.go; these parsers see only
// the remainder of the line. Trailing tokens are accepted and ignored.

package dimacs

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var lineLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[-+]?[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_.\-]*`},
	{Name: "Punct", Pattern: `[^\s]`},
	{Name: "whitespace", Pattern: `\s+`},
})

// decimal is a base-10 integer token. Leading zeros do not switch the base.
type decimal int

// Capture implements participle.Capture.
func (d *decimal) Capture(values []string) error {
	n, err := strconv.Atoi(values[0])
	if err != nil {
		return err
	}
	*d = decimal(n)

	return nil
}

// problemLine is "p <format> <n> <m>" without the leading 'p'.
type problemLine struct {
	Format   string   `parser:"@Ident"`
	Vertices decimal  `parser:"@Int"`
	Edges    decimal  `parser:"@Int"`
	Extra    []string `parser:"(@Int | @Ident | @Punct)*"`
}

// edgeLine is "e <u> <v>" without the leading 'e'.
type edgeLine struct {
	U     decimal  `parser:"@Int"`
	V     decimal  `parser:"@Int"`
	Extra []string `parser:"(@Int | @Ident | @Punct)*"`
}

var (
	problemParser = participle.MustBuild[problemLine](participle.Lexer(lineLexer))
	edgeParser    = participle.MustBuild[edgeLine](participle.Lexer(lineLexer))
)
