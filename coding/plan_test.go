// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

func TestGrid(t *testing.T) {
	g := NewGrid(11)
	if g.Size() != 11 {
		t.Fatalf("expected size 11, got %d", g.Size())
	}
	g.Set(3, 4, Dark)
	if g.At(3, 4) != Dark || g.At(4, 3) != Light {
		t.Fatal("Set/At mismatch")
	}
	if !g.Dark(3, 4) || g.Dark(-1, 4) || g.Dark(3, 11) {
		t.Fatal("Dark mismatch")
	}
	h := g.Clone()
	if !h.Equal(g) {
		t.Fatal("clone differs")
	}
	h.Set(0, 0, Dark)
	if h.Equal(g) || g.At(0, 0) != Light {
		t.Fatal("clone shares modules")
	}
	g.Clear()
	g.Clear()
	if !g.Equal(NewGrid(11)) {
		t.Fatal("Clear left dark modules")
	}
	if g.Equal(NewGrid(13)) {
		t.Fatal("grids of different sizes equal")
	}
}

func TestFixedPatterns(t *testing.T) {
	const finder = "" +
		"*******" +
		"*.....*" +
		"*.***.*" +
		"*.***.*" +
		"*.***.*" +
		"*.....*" +
		"*******"
	for v := M1; v < NumVariants; v++ {
		n := v.Size()
		g := NewGrid(n)
		DrawFixedPatterns(g)
		for r := 0; r < 7; r++ {
			for c := 0; c < 7; c++ {
				if want := finder[r*7+c] == '*'; g.Dark(r, c) != want {
					t.Errorf("%s: finder module %d,%d", v, r, c)
				}
			}
		}
		for i := 0; i < n; i++ {
			// separator and format modules are light
			if i <= 8 && (g.Dark(7, i) || g.Dark(i, 7)) ||
				i >= 1 && i <= 8 && (g.Dark(8, i) || g.Dark(i, 8)) {
				t.Errorf("%s: separator or format module dark at %d", v, i)
			}
			if i >= 8 {
				want := i%2 == 0
				if g.Dark(0, i) != want || g.Dark(i, 0) != want {
					t.Errorf("%s: timing module %d", v, i)
				}
			}
		}
	}
}

func TestReserved(t *testing.T) {
	for v := M1; v < NumVariants; v++ {
		p, err := NewPlan(v)
		if err != nil {
			t.Fatal(err)
		}
		n, free := p.Size, 0
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				if !p.Reserved(r, c) {
					free++
				}
			}
		}
		// 8 bits per codeword, 4 fewer in M1 and M3
		want := v.Codewords() * 8
		if v.DataBits()&4 != 0 {
			want -= 4
		}
		if free != want {
			t.Errorf("%s: expected %d free modules, got %d", v, want, free)
		}
	}
}

func TestNewPlanCopy(t *testing.T) {
	p, err := NewPlan(M2L)
	if err != nil {
		t.Fatal(err)
	}
	p.Base.Set(5, 5, Dark)
	p.Masks[0].Clear()
	p.Map[0] = false
	q, _ := NewPlan(M2L)
	if q.Base.At(5, 5) != Light || !q.Map[0] || q.Masks[0].Equal(NewGrid(13)) {
		t.Fatal("NewPlan returned shared data")
	}
	if _, err := NewPlan(Variant(-1)); err != ErrVariant {
		t.Fatalf("expected ErrVariant, got %v", err)
	}
}

func TestFormatInfo(t *testing.T) {
	for v := M1; v < NumVariants; v++ {
		for mask := 0; mask < 4; mask++ {
			fb, err := FormatInfo(v, mask)
			if err != nil {
				t.Fatal(err)
			}
			if want := formatBits(v, mask); fb != want {
				t.Errorf("%s mask %d: table %#04x, computed %#04x",
					v, mask, fb, want)
			}
			// Unmasked, the top 5 bits hold type and mask.
			if d := (fb ^ 0x4445) >> 10; d != uint16(v)<<2|uint16(mask) {
				t.Errorf("%s mask %d: data bits %05b", v, mask, d)
			}
		}
	}
	for _, tc := range []struct {
		v    Variant
		mask int
		fb   uint16
	}{
		{M1, 0, 0x4445},
		{M4Q, 3, 0x3bba},
	} {
		if fb, _ := FormatInfo(tc.v, tc.mask); fb != tc.fb {
			t.Errorf("%s mask %d: expected %#04x, got %#04x",
				tc.v, tc.mask, tc.fb, fb)
		}
	}
	if _, err := FormatInfo(M1, 4); err != ErrMask {
		t.Errorf("expected ErrMask, got %v", err)
	}
	if _, err := FormatInfo(NumVariants, 0); err != ErrVariant {
		t.Errorf("expected ErrVariant, got %v", err)
	}
}

// readFormat reads the format information from g.
func readFormat(g *Grid) uint16 {
	var fb uint16
	for i := 0; i < 15; i++ {
		var m Module
		if i < 8 {
			m = g.At(i+1, 8)
		} else {
			m = g.At(8, 15-i)
		}
		fb |= uint16(m) << i
	}
	return fb
}

func TestWriteFormatInfo(t *testing.T) {
	g := NewGrid(11)
	WriteFormatInfo(g, 1<<14|1)
	if !g.Dark(8, 1) || !g.Dark(1, 8) {
		t.Fatal("format bits 14 and 0 misplaced")
	}
	dark := 0
	for r := 0; r < 11; r++ {
		for c := 0; c < 11; c++ {
			if g.Dark(r, c) {
				dark++
			}
		}
	}
	if dark != 2 {
		t.Fatalf("expected 2 dark modules, got %d", dark)
	}
	WriteFormatInfo(g, 0x3bba)
	if fb := readFormat(g); fb != 0x3bba {
		t.Fatalf("expected %#04x, got %#04x", 0x3bba, fb)
	}
}

func TestPlacementCoverage(t *testing.T) {
	for v := M1; v < NumVariants; v++ {
		p, _ := NewPlan(v)
		n := p.Size
		cover := make([]int, n*n)
		for i, m := range p.Map {
			if m {
				cover[i]++
			}
		}
		if len(p.Placement) != v.Codewords() {
			t.Fatalf("%s: expected %d placements, got %d",
				v, v.Codewords(), len(p.Placement))
		}
		for i, pl := range p.Placement {
			if pl.Index != i {
				t.Errorf("%s: placement %d has index %d", v, i, pl.Index)
			}
			bits := 8
			if v.DataBits()&4 != 0 && i == v.DataCodewords()-1 {
				bits = 4
			}
			if pl.Bits != bits || pl.Dir.Bits() != bits {
				t.Errorf("%s: codeword %d: expected %d bits, got %d (%s)",
					v, i, bits, pl.Bits, pl.Dir)
			}
			for _, off := range dirOffsets[pl.Dir] {
				r, c := pl.Row+off[0], pl.Col+off[1]
				if r < 0 || r >= n || c < 0 || c >= n {
					t.Fatalf("%s: codeword %d outside grid", v, i)
				}
				cover[r*n+c]++
			}
		}
		for i, k := range cover {
			if k != 1 {
				t.Errorf("%s: module %d,%d covered %d times",
					v, i/n, i%n, k)
			}
		}
	}
}

func TestPlaceBlockPanics(t *testing.T) {
	p, _ := NewPlan(M1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic placing onto the finder")
		}
	}()
	p.PlaceBlock(NewGrid(11), 0xff, 3, 3, Up)
}

func TestPlace(t *testing.T) {
	// The first codeword fills the bottom right 2×4 block upwards.
	p, _ := NewPlan(M1)
	g := NewGrid(11)
	p.Place(g, []byte{0xa5, 0, 0, 0, 0})
	want := [8][2]int{{10, 10}, {10, 9}, {9, 10}, {9, 9},
		{8, 10}, {8, 9}, {7, 10}, {7, 9}}
	for i, rc := range want {
		bit := 0xa5>>(7-i)&1 != 0
		if g.Dark(rc[0], rc[1]) != bit {
			t.Errorf("bit %d at %d,%d: expected %v", i, rc[0], rc[1], bit)
		}
	}
}

func TestFormatTable(t *testing.T) {
	src, err := os.ReadFile("tables.go")
	if err != nil {
		t.Fatal(err)
	}
	// Rows as gen.go prints them.
	for v := M1; v < NumVariants; v++ {
		row := fmt.Sprintf("{%#04x, %#04x, %#04x, %#04x}, // %s\n",
			ftab[v][0], ftab[v][1], ftab[v][2], ftab[v][3],
			strings.ReplaceAll(v.String(), "-", ""))
		if !bytes.Contains(src, []byte(row)) {
			t.Errorf("tables.go lacks %q", row)
		}
	}
}
