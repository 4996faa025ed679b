// Package config reads run parameters from a YAML file and WFSIM_*
// environment variables. Every field is a pointer so the CLI can tell
// "absent" from "zero" and let explicit flags win.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout.
type File struct {
	PopulationSize *int     `yaml:"population_size" env:"POPULATION_SIZE"`
	MutationRate   *float64 `yaml:"mutation_rate" env:"MUTATION_RATE"`
	Generations    *int     `yaml:"generations" env:"GENERATIONS"`
	Seed           *uint64  `yaml:"seed" env:"SEED"`
	Drift          *bool    `yaml:"drift" env:"DRIFT"`

	TwoLocus TwoLocus `yaml:"two_locus" envPrefix:"TWO_LOCUS_"`
	Genotype Genotype `yaml:"genotype" envPrefix:"GENOTYPE_"`
}

// TwoLocus holds settings read only by wfsim.
type TwoLocus struct {
	A0              *float64 `yaml:"a0" env:"A0"`
	B0              *float64 `yaml:"b0" env:"B0"`
	SA              *float64 `yaml:"sa" env:"SA"`
	SB              *float64 `yaml:"sb" env:"SB"`
	LegacySelection *bool    `yaml:"legacy_selection" env:"LEGACY_SELECTION"`
}

// Genotype holds settings read only by wfsim-genotype.
type Genotype struct {
	A0            *float64 `yaml:"a0" env:"A0"`
	S             *float64 `yaml:"s" env:"S"`
	D             *float64 `yaml:"d" env:"D"`
	RawComplement *bool    `yaml:"raw_complement" env:"RAW_COMPLEMENT"`
}

// Load reads and decodes path. Unknown keys are an error.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file %q: %w", path, err)
	}
	f, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %q: %w", path, err)
	}
	return f, nil
}

// Decode parses one YAML document. An empty document yields an empty File.
func Decode(r io.Reader) (*File, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return &f, nil
}

// Set assigns *src to *dst when src is present and keep is false.
func Set[T any](dst *T, src *T, keep bool) {
	if src == nil || keep {
		return
	}
	*dst = *src
}
