package appcore

import (
	"io"

	"wfsim/internal/output"
	"wfsim/internal/writers"
)

// SnapshotWriterFactory starts a writer for one snapshot type.
type SnapshotWriterFactory[T any] struct {
	Format string
	Header bool
	Codec  output.Codec[T]
}

func NewSnapshotWriterFactory[T any](format string, header bool, c output.Codec[T]) SnapshotWriterFactory[T] {
	return SnapshotWriterFactory[T]{Format: format, Header: header, Codec: c}
}

func (w SnapshotWriterFactory[T]) Start(out io.Writer, bufSize int) (chan<- T, <-chan error) {
	return writers.Start[T](out, w.Format, w.Header, w.Codec, bufSize)
}
