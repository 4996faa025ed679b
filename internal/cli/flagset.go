package cli

import (
	"flag"
	"fmt"
	"io"

	"wfsim/internal/clibase"
)

// NewFlagSet returns a ContinueOnError FlagSet carrying the wfsim usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "two-locus Wright-Fisher drift simulator", func(out io.Writer, def func(string) string) {
		_, _ = fmt.Fprintln(out, "Usage:")
		_, _ = fmt.Fprintf(out, "  %s [options] --a0 0.5 --b0 0.5 --sa 0.05\n", name)

		_, _ = fmt.Fprintln(out, "\nLoci:")
		_, _ = fmt.Fprintf(out, "      --a0 float              Initial frequency of A [%s]\n", def("a0"))
		_, _ = fmt.Fprintf(out, "      --b0 float              Initial frequency of B [%s]\n", def("b0"))
		_, _ = fmt.Fprintf(out, "      --sa float              Selection coefficient of A [%s]\n", def("sa"))
		_, _ = fmt.Fprintf(out, "      --sb float              Selection coefficient of B [%s]\n", def("sb"))
		_, _ = fmt.Fprintf(out, "      --legacy-selection      Single-haplotype selection shares, b updated before a [%s]\n", def("legacy-selection"))
	})
	return fs
}
