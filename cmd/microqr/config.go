package main

import (
	"fmt"
	"os"

	"github.com/pborman/getopt/v2"
	"gopkg.in/yaml.v3"
)

// defaults holds option defaults read from a YAML file given with -c.
// Options given on the command line take precedence.
//
//	level: m
//	variant: M3-L
//	mode: alphanumeric
//	mask: 2
//	scale: 4
//	border: 2
//	foreground: navy
//	background: ffffff
//	format: ppm
//	upper: true
type defaults struct {
	Level      string `yaml:"level"`
	Variant    string `yaml:"variant"`
	Mode       string `yaml:"mode"`
	Mask       *int   `yaml:"mask"`
	Scale      *uint  `yaml:"scale"`
	Border     *int   `yaml:"border"`
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	Format     string `yaml:"format"`
	Upper      bool   `yaml:"upper"`
}

// readDefaults decodes the defaults file fn.  Unknown keys are errors.
func readDefaults(fn string) (*defaults, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var d defaults
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return &d, nil
}

// setString sets *p to v if v is not empty and the option was not
// given on the command line.
func setString(p *string, v string, name rune) {
	if v != "" && !getopt.IsSet(name) {
		*p = v
	}
}

// apply applies d to options not set on the command line.
func (d *defaults) apply(o *options) error {
	setString(o.lev, d.Level, 'l')
	setString(&o.variant, d.Variant, 'V')
	setString(&o.mode, d.Mode, 'm')
	setString(o.ff, d.Format, 't')
	if d.Mask != nil && !getopt.IsSet('k') {
		if *d.Mask < -1 || *d.Mask > 3 {
			return fmt.Errorf("mask %d out of range", *d.Mask)
		}
		*o.mask = int64(*d.Mask)
	}
	if d.Scale != nil && !getopt.IsSet('s') {
		if *d.Scale < 1 || *d.Scale > 256 {
			return fmt.Errorf("scale %d out of range", *d.Scale)
		}
		*o.scale = uint64(*d.Scale)
	}
	if d.Border != nil && !getopt.IsSet('b') {
		if *d.Border < 0 || *d.Border > 64 {
			return fmt.Errorf("border %d out of range", *d.Border)
		}
		g.border = *d.Border
	}
	if d.Foreground != "" && !getopt.IsSet('F') {
		if err := g.fg.Set(d.Foreground, nil); err != nil {
			return err
		}
	}
	if d.Background != "" && !getopt.IsSet('B') {
		if err := g.bg.Set(d.Background, nil); err != nil {
			return err
		}
	}
	if d.Upper {
		g.upper = true
	}
	return nil
}
