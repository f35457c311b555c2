// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package split

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/unixdj/microqr/coding"
)

func TestSegments(t *testing.T) {
	for _, tc := range []struct {
		text   string
		v      coding.Variant
		segs   string
		weight int
	}{
		{"", coding.M1, `numeric ""`, 3},
		{"12345", coding.M1, `numeric "12345"`, 20},
		{"ABC", coding.M1, "", 0},
		// 1+3+11 beats 1+4+4 + 1+3+6
		{"1A", coding.M2L, `alphanumeric "1A"`, 15},
		// 2+5+17 + 2+4+17 beats 2+4+44
		{"12345ABC", coding.M3L, `numeric "12345" alphanumeric "ABC"`, 47},
		{"12345ABC", coding.M2L, `numeric "12345" alphanumeric "ABC"`, 43},
		{"hello", coding.M2L, "", 0},
		{"hello", coding.M3L, `byte "hello"`, 46},
		// 2+4+24 + 2+5+24
		{"abc1234567", coding.M3L, `byte "abc" numeric "1234567"`, 61},
		{"a1", coding.M3L, `byte "a1"`, 22},
		// 2+5+10 + 2+4+8 + 2+4+33 + 2+4+8
		{"111a1..111a", coding.M3L,
			`numeric "111" byte "a" alphanumeric "1..111" byte "a"`, 84},
		// 2+4+33 beats 2+4+17 + 2+5+10
		{"9.*275", coding.M3L, `alphanumeric "9.*275"`, 39},
	} {
		segs, w := Segments(tc.text, tc.v)
		var s []string
		for _, seg := range segs {
			s = append(s, fmt.Sprintf("%s %q", seg.Mode, seg.Text))
		}
		if got := strings.Join(s, " "); got != tc.segs || w != tc.weight {
			t.Errorf("%q in %s: expected %s (%d bits), got %s (%d bits)",
				tc.text, tc.v, tc.segs, tc.weight, got, w)
		}
		sum := 0
		for _, seg := range segs {
			sum += seg.EncodedLength(tc.v)
		}
		if sum != w {
			t.Errorf("%q in %s: weight %d, encoded length %d",
				tc.text, tc.v, w, sum)
		}
	}
}

// shortest returns the length of the shortest encoding of text in v,
// trying every way to cut text into segments, or 0 if there is none.
func shortest(text string, v coding.Variant) int {
	const Inf = 1 << 30
	best := Inf
	n := len(text)
	for cuts := 0; cuts < 1<<(n-1); cuts++ {
		total, start := 0, 0
		for i := 1; i <= n && total < Inf; i++ {
			if i < n && cuts>>(i-1)&1 == 0 {
				continue
			}
			w := Inf
			for _, m := range []coding.Mode{coding.Numeric,
				coding.Alphanumeric, coding.Byte} {
				l := coding.Segment{Text: text[start:i], Mode: m}.EncodedLength(v)
				if l != 0 && l < w {
					w = l
				}
			}
			total += w
			start = i
		}
		best = min(best, total)
	}
	if best >= Inf {
		return 0
	}
	return best
}

func TestSegmentsShortest(t *testing.T) {
	const chars = "1A.a"
	for n := 1; n <= 6; n++ {
		b := make([]byte, n)
		for k := 0; k < 1<<(2*n); k++ {
			for i := range b {
				b[i] = chars[k>>(2*i)&3]
			}
			text := string(b)
			for v := coding.M1; v < coding.NumVariants; v++ {
				_, w := Segments(text, v)
				if want := shortest(text, v); w != want {
					t.Errorf("%q in %s: expected %d bits, got %d",
						text, v, want, w)
				}
			}
		}
	}
}

func TestSplit(t *testing.T) {
	for _, tc := range []struct {
		text string
		l    coding.Level
		v    coding.Variant
	}{
		{"", coding.L, coding.M1},
		{"12345", coding.L, coding.M1},
		{"123456", coding.L, coding.M2L},
		{"HELLO", coding.L, coding.M2L},
		{"HELLO", coding.M, coding.M2M},
		{"hello", coding.L, coding.M3L},
		{"hello", coding.Q, coding.M4Q},
		{"https://go.dev/", coding.L, coding.M4L},
		// 2+5+80 is over 84 bits
		{"123456789012345678901234", coding.L, coding.M4L},
		// exactly 84 bits
		{"111a1..111a", coding.L, coding.M3L},
		{"1.1aa1..111", coding.L, coding.M3L},
		{"1..111a111a", coding.L, coding.M3L},
	} {
		segs, v, err := Split(tc.text, tc.l)
		if err != nil {
			t.Errorf("%q at %s: %v", tc.text, tc.l, err)
			continue
		}
		if v != tc.v {
			t.Errorf("%q at %s: expected %s, got %s", tc.text, tc.l, tc.v, v)
		}
		if _, err := coding.Encode(v, -1, segs...); err != nil {
			t.Errorf("%q at %s: %v", tc.text, tc.l, err)
		}
	}
}

func TestSplitErrors(t *testing.T) {
	if _, _, err := Split(strings.Repeat("1", 25), coding.L); err != coding.ErrTooLong {
		t.Errorf("expected ErrTooLong, got %v", err)
	}
	if _, _, err := Split("1", coding.Level(3)); err != coding.ErrLevel {
		t.Errorf("expected ErrLevel, got %v", err)
	}
	var ce coding.CapacityError
	_, _, err := Split("abcdefghijklmnopqrstuvwx", coding.Q)
	if !errors.As(err, &ce) || ce != (coding.CapacityError{Bits: 200, Capacity: 80}) {
		t.Errorf("expected CapacityError{200, 80}, got %v", err)
	}
}
