// 18 Oct 2026

// Package config reads the optional settings file for chimera.
// A settings file looks like
//
//	out: chimera.fasta
//	width: 70
//	log_level: info
//	stats: true
//	plot: splice.png
//
// Every key may be left out. Unknown keys are an error, since they are
// usually typing mistakes.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/andrew-torda/chimera/pkg/seq"
)

// Settings are the things that can come from a file as well as from
// the command line.
type Settings struct {
	Out      string `yaml:"out"`
	Width    int    `yaml:"width"`
	LogLevel string `yaml:"log_level"`
	Stats    bool   `yaml:"stats"`
	Plot     string `yaml:"plot"`
}

// Default output file name, the same as the old python script.
const DefaultOut = "output.fasta"

// Default returns the settings used when there is no file.
func Default() Settings {
	return Settings{
		Out:      DefaultOut,
		Width:    seq.DefaultWidth,
		LogLevel: "warn",
	}
}

// Decode reads settings from r on top of the defaults.
func Decode(r io.Reader) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, err
	}
	return s, nil
}

// Load reads a settings file. An empty name gives the defaults.
func Load(fname string) (Settings, error) {
	if fname == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(fname)
	if err != nil {
		return Settings{}, fmt.Errorf("reading config: %w", err)
	}
	s, err := Decode(bytes.NewReader(b))
	if err != nil {
		return Settings{}, fmt.Errorf("config %s: %w", fname, err)
	}
	return s, nil
}

// Write saves settings as yaml, for making a starting file.
func Write(w io.Writer, s Settings) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
