// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package microqr

import (
	"bufio"
	"image/color"
	"io"
	"strconv"
)

// writePNM writes a PNM header and the image rows to w.  px returns
// the bytes of one pixel, dark or light.  With bpp 0 pixels are packed
// eight to a byte, dark is 1.
func (c *Code) writePNM(w io.Writer, magic string, maxval bool, bpp int, px func(dark bool) []byte) error {
	length, err := c.pixels()
	if err != nil {
		return err
	}
	b := bufio.NewWriter(w)
	ls := strconv.Itoa(length)
	hdr := magic + "\n" + ls + " " + ls + "\n"
	if maxval {
		hdr += "255\n"
	}
	if _, err := b.WriteString(hdr); err != nil {
		return err
	}
	var row []byte
	if bpp == 0 {
		row = make([]byte, (length+7)/8)
	} else {
		row = make([]byte, length*bpp)
	}
	scale := c.Scale
	for y := 0; y < length; y += scale {
		// Raw data, one module row repeated scale times.
		if bpp == 0 {
			for i := range row {
				row[i] = 0
			}
			for x := 0; x < length; x++ {
				if c.pixel(x, y) {
					row[x>>3] |= 0x80 >> (x & 7)
				}
			}
		} else {
			for x := 0; x < length; x++ {
				copy(row[x*bpp:], px(c.pixel(x, y)))
			}
		}
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}

// EncodePBM writes a Portable Bit Map image displaying the code to w,
// for use with netpbm.  EncodePBM disregards c.Palette.
func (c *Code) EncodePBM(w io.Writer) error {
	return c.writePNM(w, "P4", false, 0, nil)
}

// EncodePGM writes a binary Portable Gray Map image displaying the
// code to w: 0 for dark pixels, 255 for light, each module replicated
// into a c.Scale × c.Scale block.  EncodePGM disregards c.Palette.
func (c *Code) EncodePGM(w io.Writer) error {
	dark, light := []byte{0}, []byte{255}
	return c.writePNM(w, "P5", true, 1, func(d bool) []byte {
		if d {
			return dark
		}
		return light
	})
}

// EncodePPM writes a binary Portable Pixel Map image displaying the
// code to w.  Light pixels are white, dark ones are the dark colour of
// c.Palette, or black.  Alpha is disregarded.
func (c *Code) EncodePPM(w io.Writer) error {
	dark, light := []byte{0, 0, 0}, []byte{255, 255, 255}
	if c.Palette != nil {
		dark = rgb(c.Palette[1])
	}
	return c.writePNM(w, "P6", true, 3, func(d bool) []byte {
		if d {
			return dark
		}
		return light
	})
}

// rgb returns the 8-bit red, green and blue components of col.
func rgb(col color.Color) []byte {
	nc := color.NRGBAModel.Convert(col).(color.NRGBA)
	return []byte{nc.R, nc.G, nc.B}
}
