// Package loader reads the games log into ordered lines.
package loader

import (
	"bufio"
	"fmt"
	"os"
)

// ReadLines returns every line of the file in order, including blank and
// malformed ones: the engine needs them to keep sequence numbers aligned
// with the input log.
func ReadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open games file: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read games file: %w", err)
	}

	return lines, nil
}
