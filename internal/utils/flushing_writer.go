package utils

import "io"

// Flusher exposes the flush operation implemented by buffered writers.
type Flusher interface {
	Flush() error
}

type flushingWriter struct {
	delegate io.Writer
	flusher  Flusher
}

// NewFlushingWriter wraps a writer so every write is flushed immediately when supported.
func NewFlushingWriter(delegate io.Writer) io.Writer {
	flusher, flushable := delegate.(Flusher)
	if !flushable {
		return delegate
	}
	return &flushingWriter{delegate: delegate, flusher: flusher}
}

// Write forwards the payload and flushes the underlying writer.
func (writer *flushingWriter) Write(payload []byte) (int, error) {
	writtenBytes, writeError := writer.delegate.Write(payload)
	if writeError != nil {
		return writtenBytes, writeError
	}
	if flushError := writer.flusher.Flush(); flushError != nil {
		return writtenBytes, flushError
	}
	return writtenBytes, nil
}
