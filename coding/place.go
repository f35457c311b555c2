// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import "strconv"

//go:generate sh -c "go run gen.go | gofmt > tables.go"

// A Direction describes the path of a codeword's bits through the
// symbol.  Codewords are placed in two-module wide columns zigzagging
// from the bottom right corner; each Direction is a block shape that
// occurs along that path.
type Direction byte

const (
	Up        Direction = iota // 2×4, upwards
	Down                       // 2×4, downwards
	UpLeft                     // 4×2 turn at the top: up, then left and down
	DownLeft                   // 4×2 turn at the bottom: down, then left and up
	UpSpecial                  // 2×2, upwards, for the 4-bit codeword in M1 and M3
)

func (d Direction) String() string {
	if d <= UpSpecial {
		return []string{"up", "down", "up-left", "down-left", "up-special"}[d]
	}
	return strconv.Itoa(int(d))
}

// Module offsets {row, column} from the start of a block, in order
// from the most significant bit.
var dirOffsets = [...][][2]int{
	Up:        {{0, 0}, {0, -1}, {-1, 0}, {-1, -1}, {-2, 0}, {-2, -1}, {-3, 0}, {-3, -1}},
	Down:      {{0, 0}, {0, -1}, {1, 0}, {1, -1}, {2, 0}, {2, -1}, {3, 0}, {3, -1}},
	UpLeft:    {{0, 0}, {0, -1}, {-1, 0}, {-1, -1}, {-1, -2}, {-1, -3}, {0, -2}, {0, -3}},
	DownLeft:  {{0, 0}, {0, -1}, {1, 0}, {1, -1}, {1, -2}, {1, -3}, {0, -2}, {0, -3}},
	UpSpecial: {{0, 0}, {0, -1}, {-1, 0}, {-1, -1}},
}

// Bits returns the number of modules in a block of direction d.
func (d Direction) Bits() int { return len(dirOffsets[d]) }

// A Placement places a codeword into the symbol.
type Placement struct {
	Index int       // codeword index
	Row   int       // row of the most significant bit
	Col   int       // column of the most significant bit
	Dir   Direction // block shape
	Bits  int       // number of bits, 8 or 4
}

// PlaceBlock writes the high d.Bits() bits of cw into g, most
// significant first, starting at row, col and following d.  Dark for 1.
// It panics if a module falls outside the grid or on a module reserved
// by p.
func (p *Plan) PlaceBlock(g *Grid, cw byte, row, col int, d Direction) {
	for _, off := range dirOffsets[d] {
		r, c := row+off[0], col+off[1]
		if r < 0 || r >= p.Size || c < 0 || c >= p.Size || p.Reserved(r, c) {
			panic("microqr: codeword placed on function module " +
				strconv.Itoa(r) + "," + strconv.Itoa(c))
		}
		g.Set(r, c, Module(cw>>7))
		cw <<= 1
	}
}

// Place writes codewords into g according to the plan.
// len(codewords) must be p.Variant.Codewords().
func (p *Plan) Place(g *Grid, codewords []byte) {
	if len(codewords) != p.Variant.Codewords() {
		panic("microqr: wrong number of codewords")
	}
	for _, pl := range p.Placement {
		p.PlaceBlock(g, codewords[pl.Index], pl.Row, pl.Col, pl.Dir)
	}
}
