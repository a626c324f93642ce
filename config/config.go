/*
Package config holds the options of a MiniJava analysis.

Options may be loaded from a TOML or YAML file. Keys missing from a file
keep their default value:

   # minij.toml
   error_limit = 50
   library_keywords = false
   trace_level = "Debug"

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/minij"
	"gopkg.in/yaml.v3"
)

// Options configure the scanner and parser of an analysis.
type Options struct {
	ErrorLimit      int    `toml:"error_limit" yaml:"error_limit"`           // per diagnostic channel
	LibraryKeywords bool   `toml:"library_keywords" yaml:"library_keywords"` // reserve System, out, print
	TraceLevel      string `toml:"trace_level" yaml:"trace_level"`
}

// Default returns the default options.
func Default() Options {
	return Options{
		ErrorLimit:      minij.DefaultErrorLimit,
		LibraryKeywords: true,
		TraceLevel:      "Error",
	}
}

// Format is the file format of a configuration.
type Format int

// Supported configuration formats.
const (
	TOML Format = iota
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatOf derives the configuration format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("unsupported config file format: %s", path)
}

// Load reads options from a file. The format is derived from the file
// extension.
func Load(path string) (Options, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Default(), err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(content, format)
}

// Parse decodes options from configuration content.
func Parse(content []byte, format Format) (Options, error) {
	opts := Default()
	switch format {
	case TOML:
		if _, err := toml.Decode(string(content), &opts); err != nil {
			return Default(), fmt.Errorf("failed to parse TOML config: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(content, &opts); err != nil {
			return Default(), fmt.Errorf("failed to parse YAML config: %w", err)
		}
	default:
		return Default(), fmt.Errorf("unsupported config format: %v", format)
	}
	if err := opts.Validate(); err != nil {
		return Default(), err
	}
	return opts, nil
}

// Validate checks options for consistency.
func (o Options) Validate() error {
	if o.ErrorLimit < 1 {
		return fmt.Errorf("invalid error limit %d: must be positive", o.ErrorLimit)
	}
	return nil
}
