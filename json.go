// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package microqr

import (
	"encoding/hex"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

// codeJSON is the JSON form of a Code.
type codeJSON struct {
	Variant   string   `json:"variant"`
	Mask      int      `json:"mask"`
	Size      int      `json:"size"`
	Score     int      `json:"score"`
	Codewords string   `json:"codewords"`
	Bits      string   `json:"bits"`
	Rows      []string `json:"rows"`
}

// MarshalJSON returns the symbol type, mask, score, data bit stream
// as a string of 0 and 1, codewords in hex and the modules as rows of
// "#" for dark and "." for light.
func (c *Code) MarshalJSON() ([]byte, error) {
	if !c.isValid() {
		return nil, ErrArgs
	}
	v := codeJSON{
		Variant:   c.Variant.String(),
		Mask:      c.Mask,
		Size:      c.Size,
		Score:     c.Score,
		Codewords: hex.EncodeToString(c.Codewords),
		Rows:      make([]string, c.Size),
	}
	if c.Bits != nil {
		var b strings.Builder
		for i := 0; i < c.Bits.Len(); i++ {
			b.WriteByte('0' + c.Bits.Bit(i))
		}
		v.Bits = b.String()
	}
	row := make([]byte, c.Size)
	for y := range v.Rows {
		for x := range row {
			row[x] = '.'
			if c.Black(x, y) {
				row[x] = '#'
			}
		}
		v.Rows[y] = string(row)
	}
	return json.Marshal(&v)
}

// EncodeJSON writes the JSON form of the code to w, indented.
func (c *Code) EncodeJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
