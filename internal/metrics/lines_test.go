package metrics

import (
	"errors"
	"strings"
	"testing"
)

func TestCountLines(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    int
	}{
		{"empty file", "", 0},
		{"single line no terminator", `print("hi")`, 1},
		{"single terminated line", "hello\n", 1},
		{"two terminated lines", "a\nb\n", 2},
		{"trailing partial segment", "a\nb\nc", 3},
		{"blank lines count", "\n\n\n", 3},
		{"windows terminators", "a\r\nb\r\n", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := CountLines([]byte(tc.content))
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("CountLines(%q) = %d, want %d", tc.content, got, tc.want)
			}
		})
	}
}

func TestCountLines_BinaryContent(t *testing.T) {
	_, err := CountLines([]byte{0xff, 0xfe, 0x00, 0x41})
	if !errors.Is(err, ErrBinary) {
		t.Fatalf("expected ErrBinary, got %v", err)
	}
}

func TestCountLines_LongLine(t *testing.T) {
	// Minified bundles routinely exceed bufio's default 64K token size.
	long := strings.Repeat("x", 200*1024)
	got, err := CountLines([]byte(long + "\n" + long))
	if err != nil {
		t.Fatal(err)
	}
	if got != 2 {
		t.Errorf("expected 2 lines, got %d", got)
	}
}
