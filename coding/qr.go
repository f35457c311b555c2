// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coding implements low-level Micro QR coding details.
//
// A symbol is built in stages: segments are written to Bits as mode
// and count indicators followed by the payload, the terminated stream
// is packed into codewords, the codewords are placed onto a copy of
// the variant's Plan, and the best of four masks is applied before the
// format information is written.  Error correction codewords are not
// generated; their slots are left zero.
package coding // import "github.com/unixdj/microqr/coding"

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"
)

var (
	ErrVariant = errors.New("microqr: invalid variant")
	ErrLevel   = errors.New("microqr: invalid level")
	ErrMask    = errors.New("microqr: invalid mask")
	ErrTooLong = errors.New("microqr: text longer than 24 bytes")
)

// MaxText is the maximum length of text in bytes encodable in a symbol.
const MaxText = 24

// A Variant represents a Micro QR symbol type: version and error
// correction level.  Its value is the 3-bit symbol type number stored
// in the format information.
type Variant int

// Micro QR symbol types.
const (
	M1  Variant = iota // M1, error detection only
	M2L                // M2, level L
	M2M                // M2, level M
	M3L                // M3, level L
	M3M                // M3, level M
	M4L                // M4, level L
	M4M                // M4, level M
	M4Q                // M4, level Q

	NumVariants = 8 // number of symbol types
)

// A Level represents an error correction level.
// From least to most tolerant of errors, they are L, M, Q.
type Level int

const (
	L Level = iota
	M
	Q
)

func (l Level) String() string {
	if L <= l && l <= Q {
		return "LMQ"[l : l+1]
	}
	return strconv.Itoa(int(l))
}

// A variant describes metadata associated with a symbol type.
type variant struct {
	version  int   // 1 to 4
	level    Level // error correction level
	words    int   // total number of codewords
	dataBits int   // data capacity in bits
}

var vtab = [NumVariants]variant{
	M1:  {1, L, 5, 20},
	M2L: {2, L, 10, 40},
	M2M: {2, M, 10, 32},
	M3L: {3, L, 17, 84},
	M3M: {3, M, 17, 68},
	M4L: {4, L, 24, 128},
	M4M: {4, M, 24, 112},
	M4Q: {4, Q, 24, 80},
}

// VariantOf returns the symbol type for the given version (1 to 4)
// and level.  M1 has no error correction and is only returned for L.
func VariantOf(version int, l Level) (Variant, error) {
	if version < 1 || version > 4 {
		return 0, ErrVariant
	}
	for v := range vtab {
		if vt := &vtab[v]; vt.version == version && vt.level == l {
			return Variant(v), nil
		}
	}
	return 0, ErrLevel
}

// ParseVariant parses a symbol type name such as "M1", "M3-L" or
// "m4q".  The level defaults to L.
func ParseVariant(s string) (Variant, error) {
	s = strings.ToUpper(strings.ReplaceAll(s, "-", ""))
	if len(s) < 2 || len(s) > 3 || s[0] != 'M' {
		return 0, ErrVariant
	}
	l := L
	if len(s) == 3 {
		n := strings.IndexByte("LMQ", s[2])
		if n < 0 {
			return 0, ErrLevel
		}
		l = Level(n)
	}
	return VariantOf(int(s[1])-'0', l)
}

// Valid reports whether v is a valid symbol type.
func (v Variant) Valid() bool { return v >= M1 && v <= M4Q }

func (v Variant) String() string {
	if !v.Valid() {
		return strconv.Itoa(int(v))
	}
	if v == M1 {
		return "M1"
	}
	vt := &vtab[v]
	return fmt.Sprintf("M%d-%s", vt.version, vt.level)
}

// Version returns the version number of v, 1 to 4.
func (v Variant) Version() int { return vtab[v].version }

// Level returns the error correction level of v.
func (v Variant) Level() Level { return vtab[v].level }

// Size returns the number of modules on a side, 11 to 17.
func (v Variant) Size() int { return vtab[v].version*2 + 9 }

// Codewords returns the number of codewords in the symbol, which is
// the length of the packed codeword array.
func (v Variant) Codewords() int { return vtab[v].words }

// DataBits returns the number of data bits the symbol holds.
func (v Variant) DataBits() int { return vtab[v].dataBits }

// DataCodewords returns the number of data codewords.  In M1 and M3
// the last of them is 4 bits long.
func (v Variant) DataCodewords() int { return (vtab[v].dataBits + 7) >> 3 }

// TerminatorBits returns the length of the terminator.
func (v Variant) TerminatorBits() int { return vtab[v].version + 2 }

// ModeBits returns the length of the mode indicator.
func (v Variant) ModeBits() int { return vtab[v].version - 1 }

// Bits is a bit stream with an explicit length.
// The zero value is an empty stream.
type Bits struct {
	b    []byte
	nbit int
}

// NewBits returns Bits with enough capacity for a symbol of type v.
func NewBits(v Variant) *Bits {
	return &Bits{b: make([]byte, 0, vtab[v].words)}
}

func (b *Bits) Reset() {
	b.b = b.b[:0]
	b.nbit = 0
}

// Len returns the number of bits in b.
func (b *Bits) Len() int { return b.nbit }

// Bytes returns the bits packed MSB first.  Bits past Len are zero.
func (b *Bits) Bytes() []byte { return b.b }

// Bit returns bit i of b as 0 or 1.  Past Len, Bit returns 0.
func (b *Bits) Bit(i int) byte {
	if i < 0 || i >= b.nbit {
		return 0
	}
	return b.b[i>>3] >> (7 &^ i) & 1
}

// Write appends the low nbit bits of v, most significant first.
// nbit must not exceed 32.
func (b *Bits) Write(v uint32, nbit int) {
	if nbit <= 0 {
		return
	}
	v <<= 32 - nbit
	if rem := -b.nbit & 7; rem != 0 {
		b.b[len(b.b)-1] |= byte(v >> (32 - rem))
		if rem >= nbit {
			b.nbit += nbit
			return
		}
		b.nbit += rem
		nbit -= rem
		v <<= rem
	}
	for n := nbit; n > 0; n -= 8 {
		b.b = append(b.b, byte(v>>24))
		v <<= 8
	}
	b.nbit += nbit
}

// Terminate appends up to t zero bits without exceeding n bits.
func (b *Bits) Terminate(t, n int) {
	b.Write(0, min(t, n-b.nbit))
}

// String formats b as groups of eight bits prefixed by "0b",
// four groups per line.
func (b *Bits) String() string {
	var s strings.Builder
	for i := 0; i < b.nbit; i++ {
		switch {
		case i == 0:
			s.WriteString("0b")
		case i&31 == 0:
			s.WriteString("\n0b")
		case i&7 == 0:
			s.WriteString(" 0b")
		}
		s.WriteByte('0' + b.Bit(i))
	}
	return s.String()
}

// Encoding modes.
const (
	Numeric      Mode = iota // numeric mode, ASCII digits
	Alphanumeric             // alphanumeric mode, 45 ASCII characters
	Byte                     // byte mode, any data
	Kanji                    // kanji mode, not encodable
	Latin1                   // byte mode, UTF-8 text encoded as ISO 8859-1
	numModes
)

// A Mode is a Micro QR segment encoding mode.
type Mode int

// A modeEncoder implements a segment encoding.
type modeEncoder struct {
	name       string
	indicator  byte    // mode indicator, 0 to 3
	minVersion int     // lowest version supporting the mode, 0 if none
	count      [4]byte // count indicator length for M1 to M4

	// accepts reports whether the mode accepts the byte.
	// If nil, any byte is accepted.
	accepts func(byte) bool

	// transform returns a segment of another mode with the text
	// converted for encoding, and whether the conversion succeeded.
	transform func(string) (Segment, bool)

	// encode3, encode2 and encode1 return the encoding of the bytes
	// and its length in bits.  They are called as long as N bytes are
	// available, in descending order of N.  If all are nil, each byte
	// is encoded as 8 bits.
	encode3 func([3]byte) (uint32, int)
	encode2 func([2]byte) (uint32, int)
	encode1 func(byte) (uint32, int)

	// length returns the payload length in bits for n bytes.
	length func(n int) int
}

const alphamask uint64 = 0x07fffffe_07ffec31 // SPACE $% *+ -./ [0-9] : [A-Z]

// Alphanumeric encoding table, indexed by the low 6 bits of a valid
// character.  "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"
var alpha = [64]byte{
	00, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, // 0x40
	25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 00, 00, 00, 00, 00, // 0x50
	36, 00, 00, 00, 37, 38, 00, 00, 00, 00, 39, 40, 00, 41, 42, 43, // 0x20
	00, 01, 02, 03, 04, 05, 06, 07, 010, 9, 44, 00, 00, 00, 00, 00, // 0x30
}

func isDigit(c byte) bool { return c-'0' < 10 }
func isAlpha(c byte) bool { return alphamask>>(uint32(c)-' ')&1 != 0 }

var modes = [numModes]modeEncoder{
	Numeric: {
		name:       "numeric",
		indicator:  0,
		minVersion: 1,
		count:      [4]byte{3, 4, 5, 6},
		accepts:    isDigit,
		encode3: func(b [3]byte) (uint32, int) {
			return uint32(b[0]-'0')*100 + uint32(b[1]-'0')*10 +
				uint32(b[2]-'0'), 10
		},
		encode2: func(b [2]byte) (uint32, int) {
			return uint32(b[0]-'0')*10 + uint32(b[1]-'0'), 7
		},
		encode1: func(b byte) (uint32, int) {
			return uint32(b - '0'), 4
		},
		length: func(n int) int { return (10*n + 2) / 3 },
	},
	Alphanumeric: {
		name:       "alphanumeric",
		indicator:  1,
		minVersion: 2,
		count:      [4]byte{0, 3, 4, 5},
		accepts:    isAlpha,
		encode2: func(b [2]byte) (uint32, int) {
			return uint32(alpha[b[0]&0x3f])*45 +
				uint32(alpha[b[1]&0x3f]), 11
		},
		encode1: func(b byte) (uint32, int) {
			return uint32(alpha[b&0x3f]), 6
		},
		length: func(n int) int { return (11*n + 1) / 2 },
	},
	Byte: {
		name:       "byte",
		indicator:  2,
		minVersion: 3,
		count:      [4]byte{0, 0, 4, 5},
		length:     func(n int) int { return n * 8 },
	},
	Kanji: {
		name:      "kanji",
		indicator: 3,
		count:     [4]byte{0, 0, 3, 4},
		accepts:   func(byte) bool { return false },
		length:    func(n int) int { return n >> 1 * 13 },
	},
	Latin1: {
		name:       "latin-1",
		indicator:  2,
		minVersion: 3,
		count:      [4]byte{0, 0, 4, 5},
		transform: func(s string) (Segment, bool) {
			for _, r := range s {
				if r > 0xff { // including utf8.RuneError
					return Segment{}, false
				}
			}
			t, err := charmap.ISO8859_1.NewEncoder().String(s)
			return Segment{t, Byte}, err == nil
		},
		length: func(n int) int { return n * 8 },
	},
}

func getMode(mode Mode) *modeEncoder {
	if mode >= 0 && mode < numModes {
		return &modes[mode]
	}
	return nil
}

func (mode Mode) String() string {
	if m := getMode(mode); m != nil {
		return m.name
	}
	return strconv.Itoa(int(mode))
}

// ParseMode returns the Mode with the given name.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(s)
	for i := range modes {
		if modes[i].name == s {
			return Mode(i), nil
		}
	}
	return 0, ModeError(-1)
}

// Supports reports whether mode is encodable in a symbol of type v.
func (v Variant) Supports(mode Mode) bool {
	m := getMode(mode)
	return m != nil && v.Valid() && m.minVersion != 0 &&
		m.minVersion <= v.Version()
}

// Detect returns the most compact of Numeric, Alphanumeric and Byte
// modes accepting every byte of text.
func Detect(text string) Mode {
	mode := Numeric
	for i := 0; i < len(text); i++ {
		if c := text[i]; !isAlpha(c) {
			return Byte
		} else if !isDigit(c) {
			mode = Alphanumeric
		}
	}
	return mode
}

// A Segment describes a Micro QR code segment.
type Segment struct {
	Text string // data to encode
	Mode Mode   // encoding mode
}

// SegmentError represents an invalid Segment.
type SegmentError Segment

func (e SegmentError) Error() string {
	if m := getMode(e.Mode); m != nil {
		return fmt.Sprintf("microqr: non-%s string %#q", m.name, e.Text)
	}
	return fmt.Sprintf("microqr: invalid mode %d", e.Mode)
}

// ModeError represents an invalid Mode.
type ModeError Mode

func (e ModeError) Error() string {
	if e < 0 {
		return "microqr: invalid mode"
	}
	return fmt.Sprintf("microqr: invalid mode %s", Mode(e))
}

// CompatError represents an incompatibility between Mode and Variant.
type CompatError struct {
	Mode
	Variant
}

func (e CompatError) Error() string {
	return fmt.Sprintf("microqr: mode %s not encodable in %s",
		e.Mode, e.Variant)
}

// CapacityError is returned when the encoded data doesn't fit.
type CapacityError struct {
	Bits     int // encoded length in bits
	Capacity int // capacity in bits
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("microqr: cannot encode %d bits into %d-bit code",
		e.Bits, e.Capacity)
}

// isValid reports whether every byte of seg is accepted by m.
func (m *modeEncoder) isValid(seg Segment) bool {
	if is := m.accepts; is != nil {
		for i := 0; i < len(seg.Text); i++ {
			if !is(seg.Text[i]) {
				return false
			}
		}
	}
	return true
}

// IsValid reports whether seg is encodable in some symbol.
func (seg Segment) IsValid() bool {
	_, _, err := seg.transform()
	return err == nil
}

// transform validates seg and converts it for encoding.
func (seg Segment) transform() (Segment, *modeEncoder, error) {
	m := getMode(seg.Mode)
	if m == nil {
		return Segment{}, nil, ModeError(seg.Mode)
	}
	if !m.isValid(seg) {
		return Segment{}, nil, SegmentError(seg)
	}
	if m.transform == nil {
		return seg, m, nil
	}
	ts, ok := m.transform(seg.Text)
	if !ok {
		return Segment{}, nil, SegmentError(seg)
	}
	return ts, getMode(ts.Mode), nil
}

// check returns the transformed segment if it is encodable in v.
func (seg Segment) check(v Variant) (Segment, *modeEncoder, error) {
	if !v.Valid() {
		return Segment{}, nil, ErrVariant
	}
	if getMode(seg.Mode) == nil {
		return Segment{}, nil, ModeError(seg.Mode)
	}
	if !v.Supports(seg.Mode) {
		return Segment{}, nil, CompatError{seg.Mode, v}
	}
	ts, m, err := seg.transform()
	if err != nil {
		return Segment{}, nil, err
	}
	if len(ts.Text) > MaxText {
		return Segment{}, nil, ErrTooLong
	}
	return ts, m, nil
}

// SegmentLength returns the encoded length in bits of n bytes of text
// valid for mode, including the mode and count indicators, or 0 if
// mode is not encodable in v.
func (v Variant) SegmentLength(mode Mode, n int) int {
	if !v.Supports(mode) {
		return 0
	}
	m := getMode(mode)
	return v.ModeBits() + int(m.count[v.Version()-1]) + m.length(n)
}

// EncodedLength returns the length in bits of seg encoded for v,
// including the mode and count indicators, or 0 if seg is not
// encodable in v.
func (seg Segment) EncodedLength(v Variant) int {
	ts, _, err := seg.check(v)
	if err != nil {
		return 0
	}
	return v.SegmentLength(ts.Mode, len(ts.Text))
}

// Encode writes seg encoded for v to b.
// Nothing is written if seg is not encodable in v.
func (seg Segment) Encode(b *Bits, v Variant) error {
	ts, m, err := seg.check(v)
	if err != nil {
		return err
	}
	s := ts.Text
	b.Write(uint32(m.indicator), v.ModeBits())
	b.Write(uint32(len(s)), int(m.count[v.Version()-1]))
	enc3, enc2, enc1 := m.encode3, m.encode2, m.encode1
	if enc3 == nil && enc2 == nil && enc1 == nil {
		for i := 0; i < len(s); i++ {
			b.Write(uint32(s[i]), 8)
		}
		return nil
	}
	if enc3 != nil {
		for ; len(s) >= 3; s = s[3:] {
			b.Write(enc3([3]byte{s[0], s[1], s[2]}))
		}
	}
	if enc2 != nil {
		for ; len(s) >= 2; s = s[2:] {
			b.Write(enc2([2]byte{s[0], s[1]}))
		}
	}
	if enc1 != nil {
		for ; len(s) >= 1; s = s[1:] {
			b.Write(enc1(s[0]))
		}
	}
	if s != "" {
		panic("microqr: " + m.name + " mode internal error")
	}
	return nil
}

// EncodeData returns the terminated bit stream of the segments
// encoded for v.  The terminator is shortened if the data ends less
// than its length before the capacity.
func EncodeData(v Variant, text ...Segment) (*Bits, error) {
	if !v.Valid() {
		return nil, ErrVariant
	}
	n, bits := 0, 0
	for _, seg := range text {
		ts, _, err := seg.check(v)
		if err != nil {
			return nil, err
		}
		n += len(ts.Text)
		bits += seg.EncodedLength(v)
	}
	if n > MaxText {
		return nil, ErrTooLong
	}
	if bits > v.DataBits() {
		return nil, CapacityError{bits, v.DataBits()}
	}
	b := NewBits(v)
	for _, seg := range text {
		if err := seg.Encode(b, v); err != nil {
			return nil, err
		}
	}
	b.Terminate(v.TerminatorBits(), v.DataBits())
	return b, nil
}

// Pack returns the codewords of a symbol of type v holding b.  The
// result is v.Codewords() long.  Data is packed most significant bit
// first; in M1 and M3 the last data codeword holds 4 bits in its high
// nibble.  Bits past b.Len(), including the error correction
// codewords, are zero.
func Pack(b *Bits, v Variant) ([]byte, error) {
	if !v.Valid() {
		return nil, ErrVariant
	}
	if b.Len() > v.DataBits() {
		return nil, CapacityError{b.Len(), v.DataBits()}
	}
	cw := make([]byte, v.Codewords())
	for i := 0; i < b.Len(); i++ {
		cw[i>>3] |= b.Bit(i) << (7 &^ i)
	}
	return cw, nil
}
