// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package microqr encodes Micro QR codes.

Encode picks the encoding modes and the smallest symbol type for the
text; EncodeVariant encodes a single segment into the given symbol
type.  Error correction codewords are not generated.
*/
package microqr // import "github.com/unixdj/microqr"

import (
	"errors"
	"image"
	"image/color"
	"strings"

	"github.com/unixdj/microqr/coding"
	"github.com/unixdj/microqr/split"
)

// A Level denotes a Micro QR error correction level.
// From least to most tolerant of errors, they are L, M, Q.
type Level int

const (
	L Level = iota // M1 to M4
	M              // M2 to M4
	Q              // M4 only
)

func (l Level) String() string { return coding.Level(l).String() }

// AutoMask selects the mask with the highest evaluation score.
const AutoMask = -1

var (
	ErrArgs       = errors.New("microqr: invalid arguments")
	ErrLargeImage = errors.New("microqr: image too large")
)

// Encode returns an encoding of text at the given error correction
// level, split into segments of the most compact modes, in the
// smallest symbol type that holds it.
func Encode(text string, level Level) (*Code, error) {
	segs, v, err := split.Split(text, coding.Level(level))
	if err != nil {
		return nil, err
	}
	s, err := coding.Encode(v, AutoMask, segs...)
	if err != nil {
		return nil, err
	}
	return NewCode(s), nil
}

// EncodeVariant encodes text as a single segment in the given mode
// into a symbol of type v.  mask is 0 to 3, or AutoMask.
func EncodeVariant(text string, v coding.Variant, mode coding.Mode, mask int) (*Code, error) {
	s, err := coding.Encode(v, mask, coding.Segment{Text: text, Mode: mode})
	if err != nil {
		return nil, err
	}
	return NewCode(s), nil
}

// A Code is a square grid of modules.
// It implements image.Image and PNM encoding.
type Code struct {
	*coding.Symbol
	Size    int             // number of modules on a side
	Scale   int             // number of image pixels per module
	Border  int             // quiet zone width in modules
	Palette *[2]color.Color // light and dark colours; nil for white, black
	Reverse bool            // swap light and dark
}

// NewCode returns a Code displaying s with default scale and border.
func NewCode(s *coding.Symbol) *Code {
	return &Code{
		Symbol: s,
		Size:   s.Grid.Size(),
		Scale:  8,
		Border: 2,
	}
}

// isValid reports whether c can be rendered.
func (c *Code) isValid() bool {
	return c.Symbol != nil && c.Grid != nil && c.Size == c.Grid.Size() &&
		c.Scale > 0 && c.Border >= 0
}

// pixels returns the number of image pixels on a side.
func (c *Code) pixels() (int, error) {
	if !c.isValid() {
		return 0, ErrArgs
	}
	n := (c.Size + c.Border*2) * c.Scale
	if n > 1<<16 || n/c.Scale != c.Size+c.Border*2 {
		return 0, ErrLargeImage
	}
	return n, nil
}

// Black returns true if the module at column x, row y is dark.
// Modules outside the symbol are light.
func (c *Code) Black(x, y int) bool {
	return c.Grid.Dark(y, x)
}

// pixel reports whether the image pixel at (x,y) is dark, taking
// c.Reverse into account.
func (c *Code) pixel(x, y int) bool {
	return c.Black(x/c.Scale-c.Border, y/c.Scale-c.Border) != c.Reverse
}

// Image returns an Image displaying the code.
func (c *Code) Image() image.Image {
	return &codeImage{c}
}

// codeImage implements image.Image
type codeImage struct {
	*Code
}

var (
	whiteColor color.Color = color.Gray{0xFF}
	blackColor color.Color = color.Gray{0x00}
)

func (c *codeImage) Bounds() image.Rectangle {
	d := (c.Size + c.Border*2) * c.Scale
	return image.Rect(0, 0, d, d)
}

func (c *codeImage) At(x, y int) color.Color {
	i := 0
	if c.pixel(x, y) {
		i = 1
	}
	if c.Palette != nil {
		return c.Palette[i]
	}
	return [2]color.Color{whiteColor, blackColor}[i]
}

func (c *codeImage) ColorModel() color.Model {
	if c.Palette != nil {
		return color.RGBAModel
	}
	return color.GrayModel
}

// String returns the code rendered with Unicode half blocks, two rows
// of modules per line, surrounded by the quiet zone.
func (c *Code) String() string {
	blocks := [4]string{" ", "▀", "▄", "█"}
	siz, bord := c.Size, c.Border
	var b strings.Builder
	for y := -bord; y < siz+bord; y += 2 {
		for x := -bord; x < siz+bord; x++ {
			i := 0
			if c.Black(x, y) != c.Reverse {
				i |= 1
			}
			if y+1 < siz+bord && c.Black(x, y+1) != c.Reverse {
				i |= 2
			}
			b.WriteString(blocks[i])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
