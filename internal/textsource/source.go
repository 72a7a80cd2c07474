package textsource

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/transform"
)

// StdinPath selects standard input as a file source.
const StdinPath = "-"

// Source is a named, re-openable stream of UTF-8 text.
type Source interface {
	Name() string
	Open(ctx context.Context) (io.ReadCloser, error)
}

// FileSource reads a file from disk, or standard input when Path is "-".
type FileSource struct {
	Path     string
	Encoding Encoding
	stdin    io.Reader
}

// File returns a source for path decoded with enc.
func File(path string, enc Encoding) *FileSource {
	return &FileSource{Path: path, Encoding: enc, stdin: os.Stdin}
}

// WithStdin replaces the reader used when Path is "-".
func (f *FileSource) WithStdin(r io.Reader) *FileSource {
	if r != nil {
		f.stdin = r
	}
	return f
}

// Name implements Source.
func (f *FileSource) Name() string {
	if f.Path == StdinPath {
		return "stdin"
	}
	return f.Path
}

// Open implements Source.
func (f *FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := f.Encoding.decoder(nil); err != nil {
		return nil, err
	}
	var raw io.Reader
	var closer io.Closer = io.NopCloser(nil)
	if f.Path == StdinPath {
		raw = f.stdin
	} else {
		file, err := os.Open(f.Path)
		if err != nil {
			return nil, err
		}
		raw, closer = file, file
	}

	buffered := bufio.NewReader(raw)
	// Peek reports io.EOF for inputs shorter than a BOM; the short head is
	// still usable.
	head, err := buffered.Peek(len(bomUTF16LE))
	if err != nil && !errors.Is(err, io.EOF) {
		_ = closer.Close()
		return nil, err
	}
	dec, err := f.Encoding.decoder(head)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	return &decodedFile{Reader: transform.NewReader(buffered, dec), Closer: closer}, nil
}

type decodedFile struct {
	io.Reader
	io.Closer
}

// TextSource serves an in-memory string. It is used for inline exclusion
// lists and in tests.
type TextSource struct {
	Label string
	Text  string
}

// Text returns a source that yields text verbatim.
func Text(label, text string) *TextSource {
	return &TextSource{Label: label, Text: text}
}

// Name implements Source.
func (t *TextSource) Name() string { return t.Label }

// Open implements Source.
func (t *TextSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return io.NopCloser(strings.NewReader(t.Text)), nil
}

// ReadAll opens src and reads it fully into memory.
func ReadAll(ctx context.Context, src Source) (string, error) {
	if src == nil {
		return "", fmt.Errorf("read source: nil source")
	}
	rc, err := src.Open(ctx)
	if err != nil {
		return "", err
	}
	defer rc.Close()

	var b strings.Builder
	if _, err := io.Copy(&b, rc); err != nil {
		return "", err
	}
	return b.String(), nil
}
