// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/db47h/numeric"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// outputFormat selects how numbers are printed.
type outputFormat string

const (
	formatDecimal outputFormat = "decimal"
	formatDebug   outputFormat = "debug"
	formatFloat   outputFormat = "float"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

// Set implements pflag.Value.
func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(s)); v {
	case formatDecimal, formatDebug, formatFloat:
		*f = v
		return nil
	}
	return errors.Newf("invalid format %q, must be one of decimal, debug or float", s)
}

// Type implements pflag.Value.
func (f *outputFormat) Type() string { return "format" }

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *outputFormat) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return f.Set(s)
}

func (f outputFormat) render(x numeric.Number) string {
	switch f {
	case formatDebug:
		return x.String()
	case formatFloat:
		v, _ := x.Float64()
		return formatFloat64(v)
	}
	return x.Text()
}

// settings holds the options shared by all commands.
type settings struct {
	Prec    int          `yaml:"prec"`
	Format  outputFormat `yaml:"format"`
	Config  string       `yaml:"-"`
	Verbose bool         `yaml:"verbose"`
}

func defaultSettings() settings {
	return settings{
		Prec:   numeric.DefaultPrec,
		Format: formatDecimal,
	}
}

// loadConfig reads the YAML configuration file path into a copy of s. Only
// the fields for which changed returns false are taken from the file, so that
// command line flags always win.
func loadConfig(path string, s settings, changed func(name string) bool) (settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return s, errors.Wrap(err, "reading configuration")
	}
	fc := s
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return s, errors.Wrapf(err, "parsing configuration file %s", path)
	}
	if !changed("prec") {
		s.Prec = fc.Prec
	}
	if !changed("format") {
		s.Format = fc.Format
	}
	if !changed("verbose") {
		s.Verbose = fc.Verbose
	}
	if s.Prec <= 0 {
		return s, errors.Newf("invalid precision %d in %s", s.Prec, path)
	}
	return s, nil
}
