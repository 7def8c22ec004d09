package exporting

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const DefaultBufferSize = 64 * 1024

// File rewrites Path with each payload.
type File struct {
	Path string
}

func (f *File) Open(context.Context) (io.WriteCloser, error) {
	if err := ensureDir(f.Path); err != nil {
		return nil, err
	}
	file, err := os.Create(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return file, nil
}

// Lines appends each payload to Path as one JSON line.
type Lines struct {
	Path string
}

func (l *Lines) Open(context.Context) (io.WriteCloser, error) {
	if err := ensureDir(l.Path); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(l.Path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return &lineWriter{file: file, writer: bufio.NewWriterSize(file, DefaultBufferSize)}, nil
}

type lineWriter struct {
	file   *os.File
	writer *bufio.Writer
}

func (w *lineWriter) Write(p []byte) (int, error) {
	return w.writer.Write(p)
}

// Close terminates the line, flushes and closes the file.
func (w *lineWriter) Close() error {
	if err := w.writer.WriteByte('\n'); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to write newline: %w", err)
	}
	if err := w.writer.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush: %w", err)
	}
	return w.file.Close()
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return nil
}
