// Package textio reads input lines for the command-line tools. A path of "-"
// or "" selects standard input.
package textio

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// maxLineBytes caps the scanner buffer; lines beyond this fail loudly instead
// of being silently split.
const maxLineBytes = 1024 * 1024

// ReadLines reads every line from the named file, or from stdin when path is
// "-" or empty. Trailing newlines are stripped; an empty input yields an
// empty slice.
func ReadLines(path string) ([]string, error) {
	if path == "" || path == "-" {
		return readAll(os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer file.Close()

	lines, err := readAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

func readAll(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}
	return lines, nil
}
