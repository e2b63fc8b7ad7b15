// Package tickers parses ticker lists from comma-separated input and from
// line-oriented ticker files.
package tickers

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ParseList splits comma-separated ticker input, trimming whitespace,
// upper-casing, and dropping empty segments. Order is preserved and
// duplicates are kept.
func ParseList(input string) []string {
	var out []string
	for _, part := range strings.Split(input, ",") {
		t := strings.TrimSpace(part)
		if t == "" {
			continue
		}
		out = append(out, strings.ToUpper(t))
	}
	return out
}

// ReadFile reads tickers from a line-oriented file. Blank lines and lines
// starting with '#' are skipped; inline '#' comments are stripped.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open ticker file: %w", err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ticker := strings.TrimSpace(strings.SplitN(line, "#", 2)[0])
		if ticker != "" {
			out = append(out, ticker)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read ticker file: %w", err)
	}
	return out, nil
}
