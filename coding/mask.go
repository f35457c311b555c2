// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// Mask patterns, dark where the condition holds for row i, column j.
// Micro QR masks 0 to 3 are QR masks 1, 4, 6 and 7:
//
//	0: ▀▀▀▀▀▀▀▀▀▀▀▀  1: ███   ███     2: ███▀▀▀███▀▀▀  3: ▀ ▀▄█▄▀ ▀▄█▄
//	   ▀▀▀▀▀▀▀▀▀▀▀▀        ███   ███     █▀▄▀█ █▀▄▀█      ▀▄ ▄▀█▀▄ ▄▀█
//	   ▀▀▀▀▀▀▀▀▀▀▀▀     ███   ███        █ ▀▀▄██ ▀▀▄█     ▀██▄  ▀██▄
var maskFunc = [4]func(i, j int) bool{
	func(i, j int) bool { return i%2 == 0 },
	func(i, j int) bool { return (i/2+j/3)%2 == 0 },
	func(i, j int) bool { return (i*j%2+i*j%3)%2 == 0 },
	func(i, j int) bool { return ((i+j)%2+i*j%3)%2 == 0 },
}

// mask creates mask pattern id, light on reserved modules.
func (p *Plan) mask(id int) *Grid {
	g := NewGrid(p.Size)
	f := maskFunc[id]
	for i := 0; i < p.Size; i++ {
		for j := 0; j < p.Size; j++ {
			if !p.Reserved(i, j) && f(i, j) {
				g.Set(i, j, Dark)
			}
		}
	}
	return g
}

// GenerateMask returns a new grid holding mask pattern id (0 to 3) for
// symbol type v.  Function modules are light, so that applying the
// mask leaves them unchanged.
func GenerateMask(v Variant, id int) (*Grid, error) {
	p, err := makePlan(v)
	if err != nil {
		return nil, err
	}
	if id < 0 || id > 3 {
		return nil, ErrMask
	}
	return p.Masks[id].Clone(), nil
}

// ApplyMask XORs mask m onto g.  Applying the same mask twice restores
// the original grid.  g and m must be the same size.
func ApplyMask(g, m *Grid) {
	if g.size != m.size {
		panic("microqr: mask size mismatch")
	}
	for i, v := range m.m {
		g.m[i] ^= v
	}
}

// Score returns the Micro QR evaluation score of g:
//
//	min(SUM1, SUM2)*16 + max(SUM1, SUM2)
//
// where SUM1 and SUM2 are the numbers of dark modules in the right
// column and the bottom row, not counting the timing patterns.  The
// mask giving the highest score is chosen.
func Score(g *Grid) int {
	n := g.size - 1
	v, h := 0, 0
	for i := 1; i <= n; i++ {
		v += int(g.At(i, n))
		h += int(g.At(n, i))
	}
	if v > h {
		v, h = h, v
	}
	return v<<4 + h
}
