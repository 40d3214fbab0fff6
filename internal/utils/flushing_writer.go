package utils

import (
	"io"
	"sync"
)

type flusher interface {
	Flush() error
}

// FlushingWriter forwards writes to a destination and flushes it after each write when it buffers output,
// so prompts are visible before the dashboard blocks on input.
type FlushingWriter struct {
	mutex       sync.Mutex
	destination io.Writer
	flusher     flusher
}

// NewFlushingWriter wraps destination. A nil destination stays nil and an existing FlushingWriter is reused.
func NewFlushingWriter(destination io.Writer) io.Writer {
	switch typedDestination := destination.(type) {
	case nil:
		return nil
	case *FlushingWriter:
		return typedDestination
	}

	bufferedDestination, _ := destination.(flusher)
	return &FlushingWriter{destination: destination, flusher: bufferedDestination}
}

// Write forwards data and flushes the destination afterwards.
func (writer *FlushingWriter) Write(data []byte) (int, error) {
	if writer == nil || writer.destination == nil {
		return 0, nil
	}

	writer.mutex.Lock()
	defer writer.mutex.Unlock()

	bytesWritten, writeError := writer.destination.Write(data)
	if writeError != nil || writer.flusher == nil {
		return bytesWritten, writeError
	}
	return bytesWritten, writer.flusher.Flush()
}

// Unwrap returns the destination writer.
func (writer *FlushingWriter) Unwrap() io.Writer {
	if writer == nil {
		return nil
	}
	return writer.destination
}
