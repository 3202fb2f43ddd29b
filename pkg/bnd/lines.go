package bnd

import (
	"bufio"
	"io"
	"strings"
)

// LineReader reads an input line by line, keeping track of line numbers.
// Carriage returns and a leading byte order mark are removed.
type LineReader struct {
	scanner *bufio.Scanner
	line    int
	text    string
}

// NewLineReader creates a LineReader over r
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{scanner: bufio.NewScanner(r)}
}

// Scan advances to the next line
func (l *LineReader) Scan() bool {
	if !l.scanner.Scan() {
		return false
	}
	l.line++
	text := l.scanner.Text()
	if l.line == 1 {
		text = strings.TrimPrefix(text, "\ufeff")
	}
	l.text = strings.TrimRight(text, "\r")
	return true
}

// Text returns the current line
func (l *LineReader) Text() string {
	return l.text
}

// Line returns the 1-based number of the current line
func (l *LineReader) Line() int {
	return l.line
}

// Err returns the first non-EOF read error
func (l *LineReader) Err() error {
	return l.scanner.Err()
}
