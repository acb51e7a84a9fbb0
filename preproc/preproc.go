// Package preproc cleans Hack assembly source into instruction lines.
//
// Comments start with "//" and run to the end of the line. All whitespace
// is insignificant, and lines left empty after cleaning are dropped. The
// source line number of every surviving line is kept for diagnostics.
package preproc

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

const (
	Comment = "//"    // Line comment introducer.
	MaxLine = 1 << 20 // Longest accepted source line, in bytes.
)

// Line is a single cleaned line of source text.
type Line struct {
	LineNo int    // 1-based line number in the original source.
	Text   string // Cleaned text, never empty.
}

// Clean strips the comment and all whitespace from a single line of text.
func Clean(text string) string {
	text, _, _ = strings.Cut(text, Comment)

	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

// Scan reads source text from input and returns the non-empty cleaned lines.
func Scan(input io.Reader) (lines []Line, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(nil, MaxLine)

	lineno := 0
	for scanner.Scan() {
		lineno += 1

		text := Clean(scanner.Text())
		if len(text) == 0 {
			continue
		}

		lines = append(lines, Line{LineNo: lineno, Text: text})
	}

	err = scanner.Err()

	return
}

// Lines splits an in-memory source into cleaned lines.
func Lines(source string) ([]Line, error) {
	return Scan(strings.NewReader(source))
}
