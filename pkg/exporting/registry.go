package exporting

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrNoSink      = errors.New("no sink configured")
	ErrUnknownSink = errors.New("unknown sink")
)

// Opener builds a Sink for a destination path.
type Opener func(path string) Sink

var extRegistry = make(map[string]Opener)

func init() {
	Register(".json", func(path string) Sink { return &File{Path: path} })
	Register(".jsonl", func(path string) Sink { return &Lines{Path: path} })
}

// Register binds a file extension to an Opener.
func Register(ext string, open Opener) {
	ext = strings.ToLower(ext)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	extRegistry[ext] = open
}

// Open resolves a destination string into a Sink:
//
//	"" or "-" or "stdout"  stdout
//	"stderr"               stderr
//	"discard"              Discard
//	"file:<path>"          File, rewritten per payload
//	"<path>.json"          File
//	"<path>.jsonl"         Lines, appended per payload
func Open(target string) (Sink, error) {
	return open(target, os.Stdout, os.Stderr)
}

func open(target string, stdout, stderr io.Writer) (Sink, error) {
	switch target {
	case "", "-", "stdout":
		return &Stream{W: stdout}, nil
	case "stderr":
		return &Stream{W: stderr}, nil
	case "discard":
		return Discard, nil
	}

	if path, ok := strings.CutPrefix(target, "file:"); ok {
		if path == "" {
			return nil, fmt.Errorf("%w: empty path in %q", ErrUnknownSink, target)
		}
		return &File{Path: path}, nil
	}

	if opener, ok := extRegistry[strings.ToLower(filepath.Ext(target))]; ok {
		return opener(target), nil
	}
	return nil, fmt.Errorf("%w: %q (valid: -, stdout, stderr, discard, file:<path>, *.json, *.jsonl)", ErrUnknownSink, target)
}
