// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package split splits strings into Micro QR code segments.

Each byte of text is classified by the modes that can encode it, and
the chain of segments with the smallest encoded length is chosen for
the symbol type.  Numeric digits may be encoded in any mode, the rest of
the alphanumeric character set in alphanumeric or byte mode, and any
other byte in byte mode.
*/
package split // import "github.com/unixdj/microqr/split"

import (
	"github.com/unixdj/microqr/coding"
)

const (
	numMode   = iota // numeric
	alphaMode        // alphanumeric
	byteMode         // byte
	modes            // total number of modes

	numModes   = 1<<numMode | 1<<alphaMode | 1<<byteMode
	alphaModes = 1<<alphaMode | 1<<byteMode
	byteModes  = 1 << byteMode
)

var codingMode = [modes]coding.Mode{
	numMode:   coding.Numeric,
	alphaMode: coding.Alphanumeric,
	byteMode:  coding.Byte,
}

// segment describes a segment encoded in a certain mode.
type segment struct {
	start int  // start of string
	slen  int  // length of string in bytes
	mode  byte // encoding mode
}

// classify returns the bit field of valid encoding modes for each byte
// of text.  Modes common to all bytes except the lowest are masked out.
func classify(text string) []byte {
	const (
		alpha = 0x07ff_fffe_07ff_ec31 // SPACE $% *+ -./ [0-9] : [A-Z]
		digit = 0x0000_0000_03ff_0000 // [0-9]
	)

	// Scan the string, detect valid encoding modes for each byte
	modes := make([]byte, len(text))
	common := ^byte(0) // bit field of modes common to all bytes
	for i := 0; i < len(text); i++ {
		m := byte(byteModes)
		if bit := uint64(1) << (uint(text[i]) - ' '); digit&bit != 0 {
			m = numModes
		} else if alpha&bit != 0 {
			m = alphaModes
		}
		modes[i] = m
		common &= m
	}

	mask := ^common | -common // Mask common modes except the lowest
	for i := range modes {
		modes[i] &= mask
	}
	return modes
}

/*
split returns the shortest chain of segments encoding text in symbol
type v and its length in bits, or nil and 0 if text is not encodable
in v.

The encoded length of a chain is the sum of the lengths of its
segments.  Walking backwards from the end of text, for each position
i, for each end position e and each mode j valid for text[i:e] and
supported by v:
  - Add the length of text[i:e] encoded in mode j to the length of
    the shortest chain for text[e:].
  - Keep the smallest sum as the shortest chain for text[i:].

Ties go to the shorter first segment, then to the lower mode.
Adjacent segments in the same mode are merged, which never makes the
chain longer.
*/
func split(text string, v coding.Variant) ([]segment, int) {
	const Inf = 1 << 30
	bits := func(j byte, n int) int {
		if w := v.SegmentLength(codingMode[j], n); w != 0 {
			return w
		}
		return Inf
	}

	valid := classify(text)
	n := len(text)
	weight := make([]int, n+1)  // length of shortest chain for text[i:]
	first := make([]segment, n) // its first segment
	for i := n - 1; i >= 0; i-- {
		weight[i] = Inf
		m := ^byte(0) // modes valid for text[i:e+1]
		for e := i; e < n; e++ {
			if m &= valid[e]; m == 0 {
				break
			}
			if weight[e+1] == Inf {
				continue
			}
			for j := byte(0); j < modes; j++ {
				if m>>j&1 == 0 {
					continue
				}
				w := bits(j, e+1-i)
				if w == Inf {
					continue
				}
				if w += weight[e+1]; w < weight[i] {
					weight[i] = w
					first[i] = segment{start: i, slen: e + 1 - i, mode: j}
				}
			}
		}
	}
	if n == 0 || weight[0] == Inf {
		return nil, 0
	}

	var segs []segment
	for i := 0; i < n; i += first[i].slen {
		if k := len(segs) - 1; k >= 0 && segs[k].mode == first[i].mode {
			segs[k].slen += first[i].slen
		} else {
			segs = append(segs, first[i])
		}
	}
	w := 0
	for _, seg := range segs {
		w += bits(seg.mode, seg.slen)
	}
	return segs, w
}

// Segments returns the shortest encoding of text as segments for
// symbol type v and its length in bits, excluding the terminator.  If
// text cannot be encoded in v, Segments returns nil and 0.  Empty text
// is a single empty numeric segment.
func Segments(text string, v coding.Variant) ([]coding.Segment, int) {
	if !v.Valid() {
		return nil, 0
	}
	if text == "" {
		return []coding.Segment{{Text: "", Mode: coding.Numeric}},
			v.SegmentLength(coding.Numeric, 0)
	}
	chain, weight := split(text, v)
	if chain == nil {
		return nil, 0
	}
	segs := make([]coding.Segment, len(chain))
	for i, seg := range chain {
		segs[i] = coding.Segment{
			Text: text[seg.start : seg.start+seg.slen],
			Mode: codingMode[seg.mode],
		}
	}
	return segs, weight
}

// levels lists symbol types by error correction level, smallest first.
var levels = [...][]coding.Variant{
	coding.L: {coding.M1, coding.M2L, coding.M3L, coding.M4L},
	coding.M: {coding.M2M, coding.M3M, coding.M4M},
	coding.Q: {coding.M4Q},
}

// Split splits text into segments and returns them with the smallest
// symbol type at level l that holds them.
func Split(text string, l coding.Level) ([]coding.Segment, coding.Variant, error) {
	if l < coding.L || l > coding.Q {
		return nil, 0, coding.ErrLevel
	}
	if len(text) > coding.MaxText {
		return nil, 0, coding.ErrTooLong
	}
	var weight int
	vs := levels[l]
	for _, v := range vs {
		segs, w := Segments(text, v)
		if w != 0 && w <= v.DataBits() {
			return segs, v, nil
		}
		weight = w
	}
	v := vs[len(vs)-1]
	return nil, 0, coding.CapacityError{Bits: weight, Capacity: v.DataBits()}
}
