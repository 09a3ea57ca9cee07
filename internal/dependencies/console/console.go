package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Input provides lines of text typed by a player
type Input interface {
	// ReadLine blocks until a line is available. It returns io.EOF once the
	// input is exhausted.
	ReadLine() (string, error)
}

// Output receives lines of text for display
type Output interface {
	WriteLine(text string)
}

// LineReader implements Input over an io.Reader
type LineReader struct {
	reader *bufio.Reader
}

// NewLineReader creates a LineReader reading from r
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{reader: bufio.NewReader(r)}
}

// ReadLine returns the next line with surrounding whitespace trimmed.
// Lines of any length are returned whole; a final line without a newline
// is returned before io.EOF.
func (r *LineReader) ReadLine() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// LineWriter implements Output over an io.Writer
type LineWriter struct {
	w io.Writer
}

// NewLineWriter creates a LineWriter writing to w
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: w}
}

// WriteLine writes text followed by a newline. Write errors are dropped.
func (w *LineWriter) WriteLine(text string) {
	_, _ = fmt.Fprintln(w.w, text)
}

var (
	_ Input  = (*LineReader)(nil)
	_ Output = (*LineWriter)(nil)
)
