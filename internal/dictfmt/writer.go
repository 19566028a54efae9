// Package dictfmt writes dictionary entries in the markup read by dictfmt(1):
//
//	%h headword
//	%d
//	   article text
package dictfmt

import (
	"bufio"
	"io"

	"github.com/heartmarshall/mueller-dict/internal/mueller"
)

const (
	// DatabaseInfoHeadword is the headword dictd uses for the database description.
	DatabaseInfoHeadword = "00-database-info"

	articleIndent = "   "
)

// Writer emits entries to an underlying stream. The first write error is
// kept and every later call becomes a no-op.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter creates a Writer on top of w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteEntry writes a headword, a definition marker and the indented article.
func (w *Writer) WriteEntry(e mueller.FormattedEntry) error {
	w.header(e.Headword)
	for _, l := range e.Lines {
		w.line(articleIndent + l)
	}
	return w.err
}

// WriteDatabaseInfo writes the database description entry. Lines are written
// as given, without indentation.
func (w *Writer) WriteDatabaseInfo(lines []string) error {
	w.header(DatabaseInfoHeadword)
	for _, l := range lines {
		w.line(l)
	}
	return w.err
}

// Flush writes any buffered data to the underlying stream.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

// Err returns the first error that occurred while writing.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) header(headword string) {
	w.line("%h " + headword)
	w.line("%d")
}

func (w *Writer) line(s string) {
	if w.err != nil {
		return
	}
	if _, err := w.w.WriteString(s); err != nil {
		w.err = err
		return
	}
	w.err = w.w.WriteByte('\n')
}
