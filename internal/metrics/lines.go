package metrics

import (
	"bufio"
	"bytes"
	"errors"
	"unicode/utf8"
)

// ErrBinary is returned when file content is not valid UTF-8 text.
// Binary files are excluded from the report rather than counted as
// zero-line files.
var ErrBinary = errors.New("content is not valid UTF-8 text")

// maxLineLength bounds a single line during counting. Generated code
// can carry long minified lines; 1 MiB is well past anything a text
// editor produces.
const maxLineLength = 1 << 20

// CountLines counts newline-delimited segments in content. A trailing
// segment without a terminator still counts as one line; empty content
// counts zero. Content that fails UTF-8 validation returns ErrBinary.
func CountLines(content []byte) (int, error) {
	if len(content) == 0 {
		return 0, nil
	}
	if !utf8.Valid(content) {
		return 0, ErrBinary
	}

	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 64*1024), maxLineLength)

	lines := 0
	for sc.Scan() {
		lines++
	}
	if err := sc.Err(); err != nil {
		return 0, err
	}
	return lines, nil
}
