// Package listing builds list snapshots from local inputs: plain text
// lines, JSON documents, and file listings. It never writes anything;
// the pagination core treats its output as a frozen snapshot.
package listing

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Lines reads one entry per non-blank line.
func Lines(r io.Reader) ([]string, error) {
	var entries []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read lines: %w", err)
	}
	return entries, nil
}
