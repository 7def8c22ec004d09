// Package exporting provides the sinks heartbeat payloads are written to.
package exporting

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
)

// Sink hands out a writer for one payload. The caller must Close it.
type Sink interface {
	Open(ctx context.Context) (io.WriteCloser, error)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(ctx context.Context) (io.WriteCloser, error)

func (f SinkFunc) Open(ctx context.Context) (io.WriteCloser, error) { return f(ctx) }

// Write opens sink, writes payload and closes the writer on every path.
func Write(ctx context.Context, sink Sink, payload []byte) (err error) {
	if sink == nil {
		return ErrNoSink
	}

	w, err := sink.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open sink: %w", err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close sink: %w", cerr)
		}
	}()

	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}

// Stream writes each payload followed by a newline to an existing stream.
// Closing the sink's writer leaves the stream open.
type Stream struct {
	W  io.Writer
	mu sync.Mutex
}

func (s *Stream) Open(context.Context) (io.WriteCloser, error) {
	s.mu.Lock()
	return &streamWriter{s: s}, nil
}

type streamWriter struct {
	s      *Stream
	closed bool
}

func (w *streamWriter) Write(p []byte) (int, error) {
	return w.s.W.Write(p)
}

func (w *streamWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	defer w.s.mu.Unlock()
	_, err := w.s.W.Write([]byte{'\n'})
	return err
}

// Memory keeps the last payload written to it.
type Memory struct {
	mu   sync.Mutex
	last []byte
	n    int
}

func (m *Memory) Open(context.Context) (io.WriteCloser, error) {
	return &memoryWriter{m: m}, nil
}

// Bytes returns a copy of the last payload.
func (m *Memory) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return bytes.Clone(m.last)
}

// Count returns how many payloads were closed into the sink.
func (m *Memory) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}

type memoryWriter struct {
	m   *Memory
	buf bytes.Buffer
}

func (w *memoryWriter) Write(p []byte) (int, error) { return w.buf.Write(p) }

func (w *memoryWriter) Close() error {
	w.m.mu.Lock()
	defer w.m.mu.Unlock()
	w.m.last = bytes.Clone(w.buf.Bytes())
	w.m.n++
	return nil
}

// Discard accepts and drops every payload.
var Discard Sink = discard{}

type discard struct{}

func (discard) Open(context.Context) (io.WriteCloser, error) { return nopCloser{io.Discard}, nil }

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }
