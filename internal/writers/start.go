package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"wfsim/internal/jsonlutil"
	"wfsim/internal/jsonutil"
	"wfsim/internal/output"
)

// Start spins up a writer goroutine for snapshots of type T.
// text and jsonl stream as values arrive; json buffers the run and writes
// one document at close.
func Start[T any](out io.Writer, format string, header bool, c output.Codec[T], bufSize int) (chan<- T, <-chan error) {
	if format == "jsonl" {
		return jsonlutil.Start[T](out, bufSize,
			func(enc *json.Encoder, v T) error { return enc.Encode(c.Line(v)) },
			IsBrokenPipe,
		)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var err error
		switch format {
		case "json":
			var buf []T
			for v := range in {
				buf = append(buf, v)
			}
			err = jsonutil.EncodePretty(out, c.Document(buf))

		case "text":
			err = streamText(out, in, header, c)

		default:
			err = fmt.Errorf("unsupported output %q", format)
		}
		// Keep senders from blocking on a failed writer.
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}

func streamText[T any](out io.Writer, in <-chan T, header bool, c output.Codec[T]) error {
	if header {
		if _, err := fmt.Fprintln(out, c.Header); err != nil {
			return err
		}
	}
	for v := range in {
		if _, err := fmt.Fprintln(out, c.Row(v)); err != nil {
			return err
		}
	}
	return nil
}
