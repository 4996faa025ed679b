// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"wfsim/internal/clibase"
	"wfsim/internal/cliutil"
	"wfsim/internal/config"
)

// Options holds all wfsim flags.
type Options struct {
	clibase.Common

	A0, B0          float64
	SA, SB          float64
	LegacySelection bool
}

// PrintExamples prints a short quickstart for wfsim.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "wfsim", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "Two loci under selection, drift and mutation.")
		_, _ = fmt.Fprintln(w, "\nNeutral drift in a small population:")
		_, _ = fmt.Fprintln(w, "  wfsim -N 50 --seed 1")
		_, _ = fmt.Fprintln(w, "\nSelection on A, deterministic:")
		_, _ = fmt.Fprintln(w, "  wfsim --a0 0.1 --sa 0.1 --no-drift -g 200 -o json")
	})
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	noHeader := clibase.Register(fs, &o.Common)

	fs.Float64Var(&o.A0, "a0", 0.5, "initial frequency of A [0.5]")
	fs.Float64Var(&o.B0, "b0", 0.5, "initial frequency of B [0.5]")
	fs.Float64Var(&o.SA, "sa", 0, "selection coefficient of A [0]")
	fs.Float64Var(&o.SB, "sb", 0, "selection coefficient of B [0]")
	fs.BoolVar(&o.LegacySelection, "legacy-selection", false, "single-haplotype selection shares [false]")

	fs.BoolVar(&help, "h", false, "show this help [false]")
	fs.BoolVar(&showExamples, "examples", false, "show quickstart examples and exit [false]")

	if err := fs.Parse(argv); err != nil {
		return o, err
	}
	if showExamples {
		return o, clibase.ErrPrintedAndExitOK
	}
	if help {
		return o, flag.ErrHelp
	}
	if o.Version {
		return o, nil
	}

	f, err := clibase.AfterParse(fs, &o.Common, noHeader)
	if err != nil {
		return o, err
	}
	if f != nil {
		set := cliutil.Explicit(fs)
		config.Set(&o.A0, f.TwoLocus.A0, set["a0"])
		config.Set(&o.B0, f.TwoLocus.B0, set["b0"])
		config.Set(&o.SA, f.TwoLocus.SA, set["sa"])
		config.Set(&o.SB, f.TwoLocus.SB, set["sb"])
		config.Set(&o.LegacySelection, f.TwoLocus.LegacySelection, set["legacy-selection"])
	}
	return o, nil
}
