// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"wfsim/internal/cmdutil"
	"wfsim/internal/writers"
)

type Options struct {
	// BufSize is the writer channel capacity; 0 picks a default.
	BufSize int
}

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run streams every snapshot of sim into the writer produced by wf and maps
// the outcome to an exit code.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	sim cmdutil.Stepper[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)

	bufSize := o.BufSize
	if bufSize <= 0 {
		bufSize = 256
	}
	inCh, writeErr := wf.Start(outw, bufSize)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	_, serr := cmdutil.RunStream[T](ctx, sim, func(x T) error {
		select {
		case inCh <- x:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return 0
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}

	if serr != nil {
		if errors.Is(serr, context.Canceled) {
			return 130
		}
		fmt.Fprintln(stderr, serr)
		return 3
	}
	return 0
}

// FlushExit flushes w and returns code, or 3 when the flush fails for a
// reason other than a closed downstream pipe.
func FlushExit(w *bufio.Writer, stderr io.Writer, code int) int {
	if e := w.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return 3
	}
	return code
}
