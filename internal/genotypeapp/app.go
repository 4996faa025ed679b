// internal/genotypeapp/app.go
package genotypeapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"wfsim-core/genotype"
	"wfsim/internal/appcore"
	"wfsim/internal/clibase"
	"wfsim/internal/cmdutil"
	"wfsim/internal/genotypecli"
	"wfsim/internal/output"
	"wfsim/internal/runutil"
	"wfsim/internal/version"
)

var now = time.Now

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := genotypecli.NewFlagSet("wfsim-genotype")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = genotypecli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return appcore.FlushExit(outw, stderr, 0)
	}

	opts, err := genotypecli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, clibase.ErrPrintedAndExitOK) {
			genotypecli.PrintExamples(outw)
			return appcore.FlushExit(outw, stderr, 0)
		}
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return appcore.FlushExit(outw, stderr, 0)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return appcore.FlushExit(outw, stderr, 2)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "wfsim-genotype version %s\n", version.Version)
		return appcore.FlushExit(outw, stderr, 0)
	}

	p := genotype.Params{
		A0:          opts.A0,
		N:           opts.PopulationSize,
		S:           opts.S,
		D:           opts.D,
		U:           opts.MutationRate,
		Generations: opts.Generations,
	}
	if opts.RawComplement {
		p.Complement = genotype.ComplementRaw
	}

	for _, w := range runutil.RangeWarnings(
		runutil.In("a0", p.A0, runutil.FrequencyRange),
		runutil.In("selection", p.S, runutil.SelectionRange),
		runutil.In("mutation-rate", p.U, runutil.MutationRange),
		runutil.In("generations", float64(p.Generations), runutil.GenerationRange),
	) {
		cmdutil.Warnf(stderr, opts.Quiet, "%s", w)
	}

	seed := runutil.ResolveSeed(opts.Seed, now)
	eng, err := genotype.New(p, runutil.NewSampler(opts.NoDrift, seed))
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	// json documents carry the seed; other formats report it on stderr.
	if opts.Output != clibase.FormatJSON && !opts.NoDrift {
		cmdutil.Notef(stderr, opts.Quiet, "seed %d", seed)
	}

	meta := output.RunMeta{RunID: uuid.NewString(), Seed: seed, Drift: !opts.NoDrift}
	writer := appcore.NewSnapshotWriterFactory(opts.Output, opts.Header, output.GenotypeCodec(meta, p))
	return appcore.Run[genotype.Snapshot](parent, stdout, stderr, appcore.Options{}, eng, writer)
}
