package genotypecli

import (
	"flag"
	"fmt"
	"io"

	"wfsim/internal/clibase"
	"wfsim/internal/cliutil"
	"wfsim/internal/config"
)

type Options struct {
	clibase.Common

	A0            float64
	S             float64
	D             float64
	RawComplement bool
}

func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "single-locus genotype drift simulator", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --a0 0.2 --s 0.1 --d 0.5\n", name)

		_, _ = fmt.Fprintln(out, "\nLocus:")
		_, _ = fmt.Fprintf(out, "      --a0 float              Initial frequency of A [%s]\n", def("a0"))
		_, _ = fmt.Fprintf(out, "  -s, --selection float       Selection coefficient of AA [%s]\n", def("selection"))
		_, _ = fmt.Fprintf(out, "  -d, --dominance float       Dominance of A in Aa (0 recessive, 1 dominant) [%s]\n", def("dominance"))
		_, _ = fmt.Fprintf(out, "      --raw-complement        Keep aa = 1-AA-Aa unclamped between generations [%s]\n", def("raw-complement"))
	})
	return fs
}

// PrintExamples prints a short quickstart for wfsim-genotype.
func PrintExamples(out io.Writer) {
	clibase.PrintExamples(out, "wfsim-genotype", func(w io.Writer) {
		_, _ = fmt.Fprintln(w, "One locus tracked through AA, Aa and aa.")
		_, _ = fmt.Fprintln(w, "\nRecessive beneficial allele:")
		_, _ = fmt.Fprintln(w, "  wfsim-genotype --a0 0.05 -s 0.2 -d 0 -N 1000 -g 500")
		_, _ = fmt.Fprintln(w, "\nStream generations as JSON lines:")
		_, _ = fmt.Fprintln(w, "  wfsim-genotype --seed 7 -o jsonl | head")
	})
}

func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var o Options
	var help, showExamples bool

	noHeader := clibase.Register(fs, &o.Common)

	fs.Float64Var(&o.A0, "a0", 0.5, "initial frequency of A [0.5]")
	fs.Float64Var(&o.S, "selection", 0, "selection coefficient of AA [0]")
	fs.Float64Var(&o.S, "s", 0, "alias of --selection")
	fs.Float64Var(&o.D, "dominance", 0.5, "dominance coefficient [0.5]")
	fs.Float64Var(&o.D, "d", 0.5, "alias of --dominance")
	fs.BoolVar(&o.RawComplement, "raw-complement", false, "keep aa = 1-AA-Aa unclamped [false]")

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
		config.Set(&o.A0, f.Genotype.A0, set["a0"])
		config.Set(&o.S, f.Genotype.S, cliutil.AnySet(set, "selection", "s"))
		config.Set(&o.D, f.Genotype.D, cliutil.AnySet(set, "dominance", "d"))
		config.Set(&o.RawComplement, f.Genotype.RawComplement, set["raw-complement"])
	}
	return o, nil
}
