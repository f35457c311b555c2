// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coding

// A Symbol is a finished Micro QR symbol.
type Symbol struct {
	Variant   Variant // symbol type
	Mask      int     // mask pattern, 0 to 3
	Score     int     // evaluation score of the chosen mask
	Bits      *Bits   // terminated data bit stream
	Codewords []byte  // packed codewords, error correction slots zero
	Grid      *Grid   // modules
}

// Encoder encodes a Micro QR symbol.
type Encoder struct {
	p    *Plan
	segs []Segment
	n    int // bytes written after transformation
	bits int // encoded length of segs
}

// NewEncoder returns an Encoder for symbol type v.
func NewEncoder(v Variant) (*Encoder, error) {
	p, err := makePlan(v)
	if err != nil {
		return nil, err
	}
	return &Encoder{p: p}, nil
}

// Write adds text to e.  The segments are validated against the
// symbol type, but capacity is only checked by Code.
func (e *Encoder) Write(text ...Segment) error {
	v := e.p.Variant
	n, bits := e.n, e.bits
	for _, seg := range text {
		ts, _, err := seg.check(v)
		if err != nil {
			return err
		}
		n += len(ts.Text)
		bits += seg.EncodedLength(v)
	}
	if n > MaxText {
		return ErrTooLong
	}
	e.segs = append(e.segs, text...)
	e.n, e.bits = n, bits
	return nil
}

func (e *Encoder) Reset() {
	e.segs = e.segs[:0]
	e.n, e.bits = 0, 0
}

// Len returns the encoded length of the data written to e, excluding
// the terminator.
func (e *Encoder) Len() int { return e.bits }

// Code returns a symbol containing data written to e.  If mask is -1,
// the mask with the highest evaluation score is chosen; 0 to 3 force
// that mask.  On error no symbol is built.
func (e *Encoder) Code(mask int) (*Symbol, error) {
	if mask < -1 || mask > 3 {
		return nil, ErrMask
	}
	p := e.p
	v := p.Variant
	if e.bits > p.DataBits {
		return nil, CapacityError{e.bits, p.DataBits}
	}
	b, err := EncodeData(v, e.segs...)
	if err != nil {
		return nil, err
	}
	cw, err := Pack(b, v)
	if err != nil {
		return nil, err
	}

	// Place the codewords onto a copy of the skeleton, then try the
	// masks on copies of that.
	data := p.Base.Clone()
	p.Place(data, cw)
	s := &Symbol{Variant: v, Mask: mask, Score: -1, Bits: b, Codewords: cw}
	for i, m := range p.Masks {
		if mask >= 0 && i != mask {
			continue
		}
		g := data.Clone()
		ApplyMask(g, m)
		if sc := Score(g); sc > s.Score {
			s.Grid, s.Mask, s.Score = g, i, sc
		}
	}
	WriteFormatInfo(s.Grid, ftab[v][s.Mask])
	return s, nil
}

// Encode is a wrapper around Write and Code.
func (e *Encoder) Encode(mask int, text ...Segment) (*Symbol, error) {
	if err := e.Write(text...); err != nil {
		return nil, err
	}
	return e.Code(mask)
}

// Encode encodes text into a symbol of type v using mask, or the best
// mask if mask is -1.
func Encode(v Variant, mask int, text ...Segment) (*Symbol, error) {
	e, err := NewEncoder(v)
	if err != nil {
		return nil, err
	}
	return e.Encode(mask, text...)
}
