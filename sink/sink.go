// Package sink is the minimal output abstraction the DOT printer writes
// through: something that accepts bytes and strings and can be closed.
// Two concrete sinks cover what this front-end needs — an in-memory
// buffer (for tests that assert on exact output) and a file.
package sink

import (
	"bufio"
	"os"
	"strings"
)

// Sink is anything dot.Printer can write to.
type Sink interface {
	Write(p []byte) (n int, err error)
	WriteString(s string) (n int, err error)
	Close() error
}

// Buffer is an in-memory Sink. Close is a no-op; String and Len expose
// the accumulated content.
type Buffer struct {
	b strings.Builder
}

// NewBuffer creates an empty Buffer.
func NewBuffer() *Buffer { return &Buffer{} }

func (b *Buffer) Write(p []byte) (int, error)      { return b.b.Write(p) }
func (b *Buffer) WriteString(s string) (int, error) { return b.b.WriteString(s) }
func (b *Buffer) Close() error                      { return nil }
func (b *Buffer) String() string                    { return b.b.String() }
func (b *Buffer) Len() int                          { return b.b.Len() }

var _ Sink = (*Buffer)(nil)

// File is a buffered file Sink; Close flushes and closes the underlying
// file.
type File struct {
	f *os.File
	w *bufio.Writer
}

// NewFile creates (or truncates) path and returns a buffered Sink over
// it.
func NewFile(path string) (*File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &File{f: f, w: bufio.NewWriter(f)}, nil
}

func (f *File) Write(p []byte) (int, error)      { return f.w.Write(p) }
func (f *File) WriteString(s string) (int, error) { return f.w.WriteString(s) }

func (f *File) Close() error {
	if err := f.w.Flush(); err != nil {
		f.f.Close()
		return err
	}
	return f.f.Close()
}

var _ Sink = (*File)(nil)
