// Command microqr generates Micro QR codes.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/unixdj/microqr"
	"github.com/unixdj/microqr/coding"
	"github.com/unixdj/microqr/split"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	scale   int             // scale
	border  int             // quiet zone
	palette *[2]color.Color // palette
	rev     bool            // reverse colours
	fn      string          // filename
	format  int             // output file format
	bg, fg  rgba            // colour
	colSet  bool            // colour set
	upper   bool            // uppercase
	verbose bool            // diagnostics
}{
	border: 2,
	bg:     rgba{0xff, 0xff, 0xff, 0xff},
	fg:     rgba{0x00, 0x00, 0x00, 0xff},
}

// options holds flag values that need checking after parsing.
type options struct {
	lev     *string
	ff      *string
	mask    *int64
	scale   *uint64
	variant string
	mode    string
	conf    string
}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "Micro QR code generator\nUsage: ", cl.Program(), " ",
		cl.UsageLine(), ` [string ...]
If no string is given, data is read from standard input and the final
newline is stripped.  Without -V and -m, the text is split into
numeric, alphanumeric and byte mode segments and encoded in the
smallest symbol at the error correction level.

`)
	cl.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`microqr version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

type rgba struct {
	R, G, B, A uint8
}

// Colour names.
var rgb = map[string]rgba{
	"black":  {0x00, 0x00, 0x00, 0xff},
	"white":  {0xff, 0xff, 0xff, 0xff},
	"red":    {0xff, 0x00, 0x00, 0xff},
	"green":  {0x00, 0x80, 0x00, 0xff},
	"blue":   {0x00, 0x00, 0xff, 0xff},
	"navy":   {0x00, 0x00, 0x80, 0xff},
	"maroon": {0x80, 0x00, 0x00, 0xff},
	"purple": {0x80, 0x00, 0x80, 0xff},
	"teal":   {0x00, 0x80, 0x80, 0xff},
	"gray":   {0x80, 0x80, 0x80, 0xff},
	"grey":   {0x80, 0x80, 0x80, 0xff},
	"orange": {0xff, 0xa5, 0x00, 0xff},
}

func (c *rgba) String() string {
	if *c == (rgba{0x00, 0x00, 0x00, 0xff}) {
		return "black"
	} else if *c == (rgba{0xff, 0xff, 0xff, 0xff}) {
		return "white"
	} else if c.A == 0xff {
		return fmt.Sprintf("%02x%02x%02x", c.R, c.G, c.B)
	} else {
		return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
}

func (c *rgba) Set(s string, _ getopt.Option) error {
	g.colSet = true
	var ok bool
	if *c, ok = rgb[strings.ToLower(strings.ReplaceAll(s, " ", ""))]; ok {
		return nil
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%q: bad colour spec", s)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return fmt.Errorf("%q: bad colour spec", s)
	}
	c.R, c.G, c.B, c.A = uint8(n>>24), uint8(n>>16), uint8(n>>8), uint8(n)
	return nil
}

// Output formats.  Names ending in "i" have colours inverted.
var formats = []struct {
	name string
	rev  bool
	enc  func(*microqr.Code, io.Writer) error
}{
	{"pgm", false, (*microqr.Code).EncodePGM},
	{"pgmi", true, (*microqr.Code).EncodePGM},
	{"ppm", false, (*microqr.Code).EncodePPM},
	{"ppmi", true, (*microqr.Code).EncodePPM},
	{"pbm", false, (*microqr.Code).EncodePBM},
	{"pbmi", true, (*microqr.Code).EncodePBM},
	{"png", false, encodePNG},
	{"pngi", true, encodePNG},
	{"utf8", false, utf8},
	{"utf8i", true, utf8},
	{"ascii", false, ascii},
	{"asciii", true, ascii},
	{"json", false, (*microqr.Code).EncodeJSON},
	{"debug", false, debug},
}

func formatNames() []string {
	s := make([]string, len(formats))
	for i := range formats {
		s[i] = formats[i].name
	}
	return s
}

// setFlags registers the options with getopt.  It returns the -o
// option to tell whether it was given.
func setFlags() (*options, getopt.Option) {
	o := &options{}
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.FlagLong(opt(version), "version", 0,
		"print version and copyright").SetFlag()
	getopt.FlagLong(&g.bg, "background", 'B', `background colour; see -F`,
		"RGB[A]|name")
	getopt.FlagLong(&g.fg, "foreground", 'F', `foreground colour `+
		`as 3, 4, 6 or 8 hex digits or a colour name; `+
		`only for types ppm[i] and png[i]`, "RGB[A]|name")
	getopt.Flag(&g.upper, 'i', `ignore case, convert input to uppercase`)
	getopt.Flag(&g.verbose, 'v', `print symbol type, mask and segments `+
		`to standard error`)
	getopt.Flag(&g.border, 'b', `quiet zone modules`, "margin")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	getopt.Flag(&o.conf, 'c', "read option defaults from a YAML file",
		"file")
	getopt.Flag(&o.variant, 'V', `symbol type: M1, M2-L, M2-M, M3-L, `+
		`M3-M, M4-L, M4-M or M4-Q; overrides -l`, "type")
	getopt.Flag(&o.mode, 'm', `encode the text as a single segment `+
		`in the given mode: numeric, alphanumeric, byte or latin-1`,
		"mode")
	o.mask = getopt.Signed('k', -1, &getopt.SignedLimit{Base: 0, Bits: 8, Min: -1, Max: 3},
		"mask pattern, 0 to 3; -1 chooses the best", "mask")
	o.lev = getopt.Enum('l',
		[]string{"l", "m", "q", "L", "M", "Q"}, "l",
		"error correction level, lowest to highest", "l|m|q")
	o.scale = getopt.Unsigned('s', 8,
		&(getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: 256}),
		`image pixels per module; `+
			`ignored for types utf8[i], ascii[i], json and debug`,
		"scale")
	o.ff = getopt.Enum('t', formatNames(), "", `output format, one of: `+
		strings.Join(formatNames(), ", ")+
		`; types with "i" appended have colours inverted; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise pgm`, "type")
	return o, fno
}

func parseFlags() *options {
	o, fno := setFlags()
	getopt.Parse()
	if o.conf != "" {
		d, err := readDefaults(o.conf)
		if err != nil {
			log.Fatalln(err)
		}
		if err := d.apply(o); err != nil {
			log.Fatalln(o.conf+":", err)
		}
	}
	if g.border < 0 {
		fmt.Fprintln(os.Stderr, "-b must not be negative")
		usage()
	}
	g.scale = int(*o.scale)
	if *o.ff == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			*o.ff = "utf8"
		} else {
			*o.ff = "pgm"
		}
	}
	g.format = -1
	for i := range formats {
		if *o.ff == formats[i].name {
			g.format = i
			g.rev = formats[i].rev
			break
		}
	}
	if g.format < 0 {
		log.Fatalf("%s: unknown output format", *o.ff)
	}
	if g.fn == "-" {
		g.fn = ""
	}
	if g.colSet {
		g.palette = &[2]color.Color{color.RGBA(g.bg), color.RGBA(g.fg)}
	}
	return o
}

func main() {
	log.SetFlags(0)
	o := parseFlags()

	var s string
	if args := getopt.Args(); len(args) != 0 {
		s = strings.Join(args, " ")
	} else {
		var b strings.Builder
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s, _ = strings.CutSuffix(
			strings.ReplaceAll(b.String(), "\r\n", "\n"), "\n")
	}
	if g.upper {
		s = strings.ToUpper(s)
	}

	sym, err := encode(s, o)
	if err != nil {
		log.Fatalln(err)
	}
	if g.verbose {
		log.Printf("%s, mask %d, score %d, %d data bits",
			sym.Variant, sym.Mask, sym.Score, sym.Bits.Len())
	}
	write(microqr.NewCode(sym))
}

// encode encodes s according to the options.
func encode(s string, o *options) (*coding.Symbol, error) {
	l := coding.Level(strings.IndexByte("lmqLMQ", (*o.lev+"?")[0]) % 3)
	if l < 0 || len(*o.lev) != 1 {
		return nil, coding.ErrLevel
	}
	mask := int(*o.mask)
	if o.variant == "" && o.mode == "" {
		segs, v, err := split.Split(s, l)
		if err != nil {
			return nil, err
		}
		if g.verbose {
			for _, seg := range segs {
				log.Printf("segment %s %q", seg.Mode, seg.Text)
			}
		}
		return coding.Encode(v, mask, segs...)
	}

	seg := coding.Segment{Text: s, Mode: coding.Detect(s)}
	if o.mode != "" {
		var err error
		if seg.Mode, err = coding.ParseMode(o.mode); err != nil {
			return nil, err
		}
	}
	if g.verbose {
		log.Printf("segment %s %q", seg.Mode, seg.Text)
	}
	if o.variant != "" {
		v, err := coding.ParseVariant(o.variant)
		if err != nil {
			return nil, err
		}
		return coding.Encode(v, mask, seg)
	}
	// Smallest symbol type at the level supporting the mode.
	var err error = coding.CompatError{Mode: seg.Mode, Variant: coding.M4Q}
	for v := coding.M1; v < coding.NumVariants; v++ {
		if v.Level() != l {
			continue
		}
		var sym *coding.Symbol
		if sym, err = coding.Encode(v, mask, seg); err == nil {
			return sym, nil
		}
	}
	return nil, err
}

func write(c *microqr.Code) {
	var w = os.Stdout
	if g.fn != "" {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	c.Scale = g.scale
	c.Border = g.border
	c.Palette = g.palette
	c.Reverse = g.rev
	err := formats[g.format].enc(c, w)
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}

func encodePNG(c *microqr.Code, w io.Writer) error {
	return png.Encode(w, c.Image())
}

func utf8(c *microqr.Code, w io.Writer) error {
	_, err := fmt.Fprint(w, c)
	return err
}

func ascii(c *microqr.Code, w io.Writer) error {
	siz := c.Size
	bord := c.Border
	pix := siz + 2*bord
	b := make([]byte, (pix*2+1)*pix)
	i := 0
	for y := -bord; y < siz+bord; y++ {
		for x := -bord; x < siz+bord; x++ {
			var p byte = ' '
			if c.Black(x, y) != c.Reverse {
				p = '#'
			}
			_ = b[i+1]
			b[i], b[i+1] = p, p
			i += 2
		}
		b[i] = '\n'
		i++
	}
	_, err := w.Write(b)
	return err
}

// debug prints the data bit stream, the codewords and the modules.
func debug(c *microqr.Code, w io.Writer) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, "%s mask %d score %d\n\n%v\n\n", c.Variant, c.Mask,
		c.Score, c.Bits)
	dcw := c.Variant.DataCodewords()
	fmt.Fprintf(&b, "data %s\nec   %s\n\n",
		hex.EncodeToString(c.Codewords[:dcw]),
		hex.EncodeToString(c.Codewords[dcw:]))
	b.WriteString(c.Grid.String())
	_, err := b.WriteTo(w)
	return err
}
