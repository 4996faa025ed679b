// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"wfsim/internal/cliutil"
	"wfsim/internal/config"
)

// Output formats.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Shared model defaults.
const (
	DefaultPopulation   = 100
	DefaultMutationRate = 1e-8
	DefaultGenerations  = 100
)

// Common holds CLI fields shared by wfsim and wfsim-genotype.
type Common struct {
	// Population
	PopulationSize int
	MutationRate   float64
	Generations    int

	// Randomness
	Seed    uint64 // 0 = derive from the clock
	NoDrift bool   // replace binomial drift by its expectation

	ConfigFile string

	// Output
	Output string // text|json|jsonl
	Header bool

	// Misc
	Quiet   bool
	Version bool
}

// Register wires shared flags onto fs and returns a pointer to the "no-header"
// bool that AfterParse turns into Common.Header.
func Register(fs *flag.FlagSet, c *Common) *bool {
	fs.IntVar(&c.PopulationSize, "population", DefaultPopulation, "population size N (diploid individuals)")
	fs.IntVar(&c.PopulationSize, "N", DefaultPopulation, "alias of --population")
	fs.Float64Var(&c.MutationRate, "mutation-rate", DefaultMutationRate, "symmetric mutation rate per allele per generation")
	fs.Float64Var(&c.MutationRate, "u", DefaultMutationRate, "alias of --mutation-rate")
	fs.IntVar(&c.Generations, "generations", DefaultGenerations, "maximum number of generations")
	fs.IntVar(&c.Generations, "g", DefaultGenerations, "alias of --generations")

	fs.Uint64Var(&c.Seed, "seed", 0, "random seed (0 = from clock) [0]")
	fs.BoolVar(&c.NoDrift, "no-drift", false, "disable drift: use expected counts instead of binomial draws [false]")
	fs.StringVar(&c.ConfigFile, "config", "", "YAML parameter file; explicit flags override it")

	fs.StringVar(&c.Output, "output", FormatText, "output: text | json | jsonl [text]")
	fs.StringVar(&c.Output, "o", FormatText, "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")

	fs.BoolVar(&c.Quiet, "quiet", false, "suppress warnings and notes [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// ApplyFile copies shared values from f into c unless the matching flag was
// given explicitly.
func ApplyFile(c *Common, f *config.File, set map[string]bool) {
	if f == nil {
		return
	}
	config.Set(&c.PopulationSize, f.PopulationSize, cliutil.AnySet(set, "population", "N"))
	config.Set(&c.MutationRate, f.MutationRate, cliutil.AnySet(set, "mutation-rate", "u"))
	config.Set(&c.Generations, f.Generations, cliutil.AnySet(set, "generations", "g"))
	config.Set(&c.Seed, f.Seed, set["seed"])
	if f.Drift != nil && !set["no-drift"] {
		c.NoDrift = !*f.Drift
	}
}

// AfterParse finalizes the header flag, merges the config file (when one
// was named) and WFSIM_* variables, and runs shared validation. Precedence is
// defaults < file < environment < explicit flags. It returns the merged
// settings so tools can apply their own section.
func AfterParse(fs *flag.FlagSet, c *Common, noHeader *bool) (*config.File, error) {
	c.Header = !*noHeader
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}
	var f *config.File
	if c.ConfigFile != "" {
		var err error
		if f, err = config.Load(c.ConfigFile); err != nil {
			return nil, err
		}
	}
	e, err := config.FromEnv(nil)
	if err != nil {
		return nil, err
	}
	f = config.Overlay(f, e)
	ApplyFile(c, f, cliutil.Explicit(fs))
	return f, Validate(c)
}

// Validate applies shared CLI invariants. Numeric model parameters are
// checked by the engines themselves.
func Validate(c *Common) error {
	switch c.Output {
	case FormatText, FormatJSON, FormatJSONL:
	default:
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	if c.Generations < 0 {
		return errors.New("--generations must be ≥ 0")
	}
	return nil
}
