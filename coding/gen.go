//go:build ignore

package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
)

// Symbol types: name, modules on a side, total codewords, data bits.
var variants = [8]struct {
	name     string
	size     int
	words    int
	dataBits int
}{
	{"M1", 11, 5, 20},
	{"M2L", 13, 10, 40},
	{"M2M", 13, 10, 32},
	{"M3L", 15, 17, 84},
	{"M3M", 15, 17, 68},
	{"M4L", 17, 24, 128},
	{"M4M", 17, 24, 112},
	{"M4Q", 17, 24, 80},
}

func calcFormat(fb uint16) uint16 {
	const formatPoly = 0x537
	rem := fb
	for i := 4; i >= 0; i-- {
		if rem&((1<<10)<<i) != 0 {
			rem ^= formatPoly << i
		}
	}
	return fb | rem
}

// reserved reports whether the module is a function module:
// timing patterns or the finder, separator and format area.
func reserved(r, c int) bool {
	return r == 0 || c == 0 || r <= 8 && c <= 8
}

type point struct{ r, c int }

// zigzag returns the data modules in placement order: two-module wide
// columns from the bottom right, right module first, alternating
// upwards and downwards.
func zigzag(siz int) []point {
	var p []point
	up := true
	for x := siz - 2; x >= 1; x -= 2 {
		for i := 0; i < siz; i++ {
			r := i
			if up {
				r = siz - 1 - i
			}
			for _, c := range [2]int{x + 1, x} {
				if !reserved(r, c) {
					p = append(p, point{r, c})
				}
			}
		}
		up = !up
	}
	return p
}

// Block shapes as module offsets from the first module.
var shapes = []struct {
	name string
	off  []point
}{
	{"Up", []point{{0, 0}, {0, -1}, {-1, 0}, {-1, -1}, {-2, 0}, {-2, -1}, {-3, 0}, {-3, -1}}},
	{"Down", []point{{0, 0}, {0, -1}, {1, 0}, {1, -1}, {2, 0}, {2, -1}, {3, 0}, {3, -1}}},
	{"UpLeft", []point{{0, 0}, {0, -1}, {-1, 0}, {-1, -1}, {-1, -2}, {-1, -3}, {0, -2}, {0, -3}}},
	{"DownLeft", []point{{0, 0}, {0, -1}, {1, 0}, {1, -1}, {1, -2}, {1, -3}, {0, -2}, {0, -3}}},
	{"UpSpecial", []point{{0, 0}, {0, -1}, {-1, 0}, {-1, -1}}},
}

// shape returns the name of the block shape of the modules.
func shape(m []point) string {
Shape:
	for _, s := range shapes {
		if len(s.off) != len(m) {
			continue
		}
		for i, o := range s.off {
			if m[i] != (point{m[0].r + o.r, m[0].c + o.c}) {
				continue Shape
			}
		}
		return s.name
	}
	log.Fatalf("no block shape for %v", m)
	return ""
}

func main() {
	w := bufio.NewWriter(os.Stdout)
	fmt.Fprint(w, `// generated by go run gen.go | gofmt; DO NOT EDIT

package coding

// Micro QR format bits, indexed by symbol type and mask.
var ftab = [8][4]uint16{
`)
	for i, v := range variants {
		fmt.Fprint(w, "\t{")
		for m := 0; m < 4; m++ {
			fb := uint16(i) << 12 // 000-111
			fb |= uint16(m) << 10 // mask
			fb = calcFormat(fb) ^ 0x4445
			if m != 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "%#04x", fb)
		}
		fmt.Fprintf(w, "}, // %s\n", v.name)
	}
	fmt.Fprintln(w, "}")

	fmt.Fprint(w, "\n// Codeword placement, indexed by symbol type.\n"+
		"var ptab = [8][]Placement{\n")
	for _, v := range variants {
		p := zigzag(v.size)
		nibble := -1
		if v.dataBits&4 != 0 {
			nibble = v.dataBits >> 3
		}
		fmt.Fprintf(w, "\t%s: {\n", v.name)
		for i := 0; i < v.words; i++ {
			n := 8
			if i == nibble {
				n = 4
			}
			if len(p) < n {
				log.Fatalf("%s: out of modules at codeword %d", v.name, i)
			}
			fmt.Fprintf(w, "\t\t{%d, %d, %d, %s, %d},\n",
				i, p[0].r, p[0].c, shape(p[:n]), n)
			p = p[n:]
		}
		if len(p) != 0 {
			log.Fatalf("%s: %d modules left over", v.name, len(p))
		}
		fmt.Fprintln(w, "\t},")
	}
	fmt.Fprintln(w, "}")
	w.Flush()
}
