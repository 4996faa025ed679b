package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name, e.g. WFSIM_SEED or
// WFSIM_TWO_LOCUS_SA.
const EnvPrefix = "WFSIM_"

// FromEnv reads WFSIM_* variables into a File. A nil environ reads the
// process environment. Unset variables leave their fields nil.
func FromEnv(environ map[string]string) (*File, error) {
	var f File
	opts := env.Options{Prefix: EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(&f, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &f, nil
}

// Overlay returns base with every field set in top copied over it.
// Either argument may be nil.
func Overlay(base, top *File) *File {
	var out File
	if base != nil {
		out = *base
	}
	if top == nil {
		return &out
	}
	over(&out.PopulationSize, top.PopulationSize)
	over(&out.MutationRate, top.MutationRate)
	over(&out.Generations, top.Generations)
	over(&out.Seed, top.Seed)
	over(&out.Drift, top.Drift)

	over(&out.TwoLocus.A0, top.TwoLocus.A0)
	over(&out.TwoLocus.B0, top.TwoLocus.B0)
	over(&out.TwoLocus.SA, top.TwoLocus.SA)
	over(&out.TwoLocus.SB, top.TwoLocus.SB)
	over(&out.TwoLocus.LegacySelection, top.TwoLocus.LegacySelection)

	over(&out.Genotype.A0, top.Genotype.A0)
	over(&out.Genotype.S, top.Genotype.S)
	over(&out.Genotype.D, top.Genotype.D)
	over(&out.Genotype.RawComplement, top.Genotype.RawComplement)
	return &out
}

func over[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}
