// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"wfsim/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage line, model parameters).
func UsageCommon(fs *flag.FlagSet, name, summary string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – %s\n\n", name, summary)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nPopulation:")
		fmt.Fprintf(out, "  -N, --population int        Population size (diploid individuals) [%s]\n", def("population"))
		fmt.Fprintf(out, "  -u, --mutation-rate float   Symmetric mutation rate per allele [%s]\n", def("mutation-rate"))
		fmt.Fprintf(out, "  -g, --generations int       Maximum generations [%s]\n", def("generations"))

		fmt.Fprintln(out, "\nRandomness:")
		fmt.Fprintf(out, "      --seed uint             Random seed (0 = from clock) [%s]\n", def("seed"))
		fmt.Fprintf(out, "      --no-drift              Use expected counts instead of binomial draws [%s]\n", def("no-drift"))
		fmt.Fprintln(out, "      --config file           YAML parameter file (flags override)")

		fmt.Fprintln(out, "\nEnvironment:")
		fmt.Fprintln(out, "  WFSIM_POPULATION_SIZE, WFSIM_MUTATION_RATE, WFSIM_GENERATIONS, WFSIM_SEED,")
		fmt.Fprintln(out, "  WFSIM_DRIFT and WFSIM_TWO_LOCUS_* / WFSIM_GENOTYPE_* override --config")
		fmt.Fprintln(out, "  values; explicit flags override both.")

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         Output: text | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --no-header             Suppress header line [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                 Suppress warnings and notes [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples              Show quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
