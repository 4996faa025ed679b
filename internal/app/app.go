// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"wfsim-core/twolocus"
	"wfsim/internal/appcore"
	"wfsim/internal/cli"
	"wfsim/internal/clibase"
	"wfsim/internal/cmdutil"
	"wfsim/internal/output"
	"wfsim/internal/runutil"
	"wfsim/internal/version"
)

// now is replaced in tests.
var now = time.Now

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)

	fs := cli.NewFlagSet("wfsim")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return appcore.FlushExit(outw, stderr, 0)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw)
			return appcore.FlushExit(outw, stderr, 0)
		case errors.Is(err, flag.ErrHelp):
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
		_, _ = fmt.Fprintf(outw, "wfsim version %s\n", version.Version)
		return appcore.FlushExit(outw, stderr, 0)
	}

	p := twolocus.Params{
		A0: opts.A0, B0: opts.B0,
		N:  opts.PopulationSize,
		SA: opts.SA, SB: opts.SB,
		U:           opts.MutationRate,
		Generations: opts.Generations,
		Selection:   twolocus.SelectionMarginal,
	}
	if opts.LegacySelection {
		p.Selection = twolocus.SelectionLegacy
	}

	for _, w := range runutil.RangeWarnings(
		runutil.In("a0", p.A0, runutil.FrequencyRange),
		runutil.In("b0", p.B0, runutil.FrequencyRange),
		runutil.In("sa", p.SA, runutil.SelectionRange),
		runutil.In("sb", p.SB, runutil.SelectionRange),
		runutil.In("mutation-rate", p.U, runutil.MutationRange),
		runutil.In("generations", float64(p.Generations), runutil.GenerationRange),
	) {
		cmdutil.Warnf(stderr, opts.Quiet, "%s", w)
	}

	seed := runutil.ResolveSeed(opts.Seed, now)
	eng, err := twolocus.New(p, runutil.NewSampler(opts.NoDrift, seed))
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	// json documents carry the seed; other formats report it on stderr.
	if opts.Output != clibase.FormatJSON && !opts.NoDrift {
		cmdutil.Notef(stderr, opts.Quiet, "seed %d", seed)
	}

	meta := output.RunMeta{RunID: uuid.NewString(), Seed: seed, Drift: !opts.NoDrift}
	writer := appcore.NewSnapshotWriterFactory(opts.Output, opts.Header, output.TwoLocusCodec(meta, p))
	return appcore.Run[twolocus.Snapshot](parent, stdout, stderr, appcore.Options{}, eng, writer)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
