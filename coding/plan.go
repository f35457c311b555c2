// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"strings"
	"sync"
)

// A Module is one cell of the symbol, Light or Dark.
type Module byte

const (
	Light Module = iota // light module, also the blank value
	Dark                // dark module
)

// A Grid is a square matrix of modules.
type Grid struct {
	size int
	m    []Module
}

// NewGrid returns a Light grid of n×n modules.
func NewGrid(n int) *Grid {
	return &Grid{size: n, m: make([]Module, n*n)}
}

// Size returns the number of modules on a side.
func (g *Grid) Size() int { return g.size }

// At returns the module at row r, column c.
func (g *Grid) At(r, c int) Module { return g.m[r*g.size+c] }

// Set sets the module at row r, column c.
func (g *Grid) Set(r, c int, m Module) { g.m[r*g.size+c] = m }

// Dark reports whether the module at row r, column c is dark.
// Modules outside the grid are light.
func (g *Grid) Dark(r, c int) bool {
	return 0 <= r && r < g.size && 0 <= c && c < g.size &&
		g.m[r*g.size+c] == Dark
}

// Clear sets every module to Light.
func (g *Grid) Clear() {
	for i := range g.m {
		g.m[i] = Light
	}
}

// Clone returns a copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{size: g.size, m: append([]Module(nil), g.m...)}
}

// Equal reports whether g and h hold the same modules.
func (g *Grid) Equal(h *Grid) bool {
	if g.size != h.size {
		return false
	}
	for i, v := range g.m {
		if h.m[i] != v {
			return false
		}
	}
	return true
}

// String formats g with "* " for dark and ". " for light modules.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.size * (g.size*2 + 1))
	for i, v := range g.m {
		if v == Dark {
			b.WriteString("* ")
		} else {
			b.WriteString(". ")
		}
		if i%g.size == g.size-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// DrawFixedPatterns draws the finder pattern and the timing patterns
// into a cleared grid.  The separator and the format information
// modules are left light.
func DrawFixedPatterns(g *Grid) {
	// Finder: dark 7×7 ring, light 5×5 ring, dark 3×3 core.
	for r := 0; r < 7; r++ {
		for c := 0; c < 7; c++ {
			d := max(abs(r-3), abs(c-3))
			if d != 2 {
				g.Set(r, c, Dark)
			}
		}
	}
	// Timing, dark on even offsets.
	for i := 8; i < g.size; i += 2 {
		g.Set(0, i, Dark)
		g.Set(i, 0, Dark)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// reserve returns the map of function modules for a symbol with n
// modules on a side: finder, separator, format information (rows and
// columns 0 to 8 in the top left corner) and timing patterns.
func reserve(n int) []bool {
	m := make([]bool, n*n)
	for i := 0; i < n; i++ {
		m[i] = true   // row 0
		m[i*n] = true // column 0
	}
	for r := 1; r <= 8; r++ {
		for c := 1; c <= 8; c++ {
			m[r*n+c] = true
		}
	}
	return m
}

// A Plan describes how to construct a Micro QR code of a given type.
type Plan struct {
	Variant  Variant // symbol type
	Size     int     // number of modules on a side
	DataBits int     // number of data bits

	Map       []bool      // reserved modules: finder, separator, timing, format
	Base      *Grid       // fixed patterns, format modules light
	Masks     [4]*Grid    // mask patterns over unreserved modules
	Placement []Placement // codeword placement instructions
}

// NewPlan returns a Plan for a symbol of type v.  The Plan is a copy
// and may be modified.
func NewPlan(v Variant) (*Plan, error) {
	pp, err := makePlan(v)
	if err != nil {
		return nil, err
	}
	p := *pp
	p.Map = append([]bool(nil), pp.Map...)
	p.Base = pp.Base.Clone()
	for i, m := range pp.Masks {
		p.Masks[i] = m.Clone()
	}
	p.Placement = append([]Placement(nil), pp.Placement...)
	return &p, nil
}

// Plans are created the first time a symbol type is used and shared
// read-only afterwards.
var plans [NumVariants]struct {
	once sync.Once
	p    *Plan
}

// makePlan returns plans[v].  If it doesn't exist, it is created.
func makePlan(v Variant) (*Plan, error) {
	if !v.Valid() {
		return nil, ErrVariant
	}
	p := &plans[v]
	p.once.Do(func() { p.p = vplan(v) })
	return p.p, nil
}

// vplan creates a Plan for symbol type v.
func vplan(v Variant) *Plan {
	siz := v.Size()
	p := &Plan{
		Variant:   v,
		Size:      siz,
		DataBits:  v.DataBits(),
		Map:       reserve(siz),
		Base:      NewGrid(siz),
		Placement: ptab[v],
	}
	DrawFixedPatterns(p.Base)
	for i := range p.Masks {
		p.Masks[i] = p.mask(i)
	}
	return p
}

// Reserved reports whether the module at row r, column c is a function
// module.
func (p *Plan) Reserved(r, c int) bool { return p.Map[r*p.Size+c] }

// FormatInfo returns the 15-bit format information for symbol type v
// and mask: the 3-bit type and the 2-bit mask followed by a 10-bit
// BCH code, XORed with the Micro QR format mask 0x4445.
func FormatInfo(v Variant, mask int) (uint16, error) {
	if !v.Valid() {
		return 0, ErrVariant
	}
	if mask < 0 || mask > 3 {
		return 0, ErrMask
	}
	return ftab[v][mask], nil
}

// formatBits computes the format information the way gen.go does for
// ftab.
func formatBits(v Variant, mask int) uint16 {
	const formatPoly = 0x537
	fb := uint16(v)<<12 | uint16(mask)<<10
	rem := fb
	for i := 4; i >= 0; i-- {
		if rem&((1<<10)<<i) != 0 {
			rem ^= formatPoly << i
		}
	}
	return (fb | rem) ^ 0x4445
}

// WriteFormatInfo writes the format information fb to its reserved
// modules.  Bits 14 to 8 run along row 8 from column 1, bits 7 to 0
// up column 8 from row 8.
func WriteFormatInfo(g *Grid, fb uint16) {
	for i := 0; i < 15; i++ {
		m := Module(fb >> i & 1)
		if i < 8 {
			g.Set(i+1, 8, m)
		} else {
			g.Set(8, 15-i, m)
		}
	}
}
