// Package qrcode draws the placeholder QR code shown for a batch.
//
// The pattern is not a scannable QR symbol. It is a 5x5 grid seeded from the
// batch id so the same batch always renders the same picture.
package qrcode

import (
	"fmt"
	"strings"
	"unicode/utf16"
)

// Size is the number of cells on each side of the grid.
const Size = 5

// Cells is the number of cells in a pattern.
const Cells = Size * Size

const (
	modulus   = 2147483647
	generator = 16807
	threshold = 0.4
)

// Pattern is the row-major list of filled cells.
type Pattern [Cells]bool

// New returns the pattern seeded from batchID.
func New(batchID string) Pattern {
	h := int64(seed(batchID))

	var p Pattern
	for i := range p {
		h = (h * generator) % modulus
		p[i] = float64(int32(h)&0x7fffffff)/modulus > threshold //nolint: gosec
	}

	return p
}

// seed is the 32-bit rolling string hash (h*31 + c) over UTF-16 code units.
func seed(s string) int32 {
	var h int32
	for _, c := range utf16.Encode([]rune(s)) {
		h = (h << 5) - h + int32(c)
	}

	return h
}

// Filled reports whether the cell at row, col is filled.
func (p Pattern) Filled(row, col int) bool {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		return false
	}

	return p[row*Size+col]
}

// Bools returns the pattern as a slice, the shape used in JSON responses.
func (p Pattern) Bools() []bool {
	return p[:]
}

// SVG renders the pattern with square cells of the given pixel size.
// Non-positive cell sizes fall back to 8 pixels.
func SVG(p Pattern, cell int) string {
	if cell <= 0 {
		cell = 8
	}
	side := cell * Size

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		side, side, side, side)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#ffffff"/>`, side, side)

	for i, filled := range p {
		if !filled {
			continue
		}
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="#000000"/>`,
			(i%Size)*cell, (i/Size)*cell, cell, cell)
	}

	b.WriteString(`</svg>`)

	return b.String()
}
