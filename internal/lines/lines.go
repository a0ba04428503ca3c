// Package lines owns the ordered output-line container shared by shell results.
//
// Ownership boundary:
// - immutable line storage
// - positional and substring queries
package lines

import "strings"

// Buffer is an immutable ordered collection of output lines.
type Buffer struct {
	lines []string
}

// New copies the given lines into a fresh Buffer.
func New(in []string) Buffer {
	if len(in) == 0 {
		return Buffer{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return Buffer{lines: out}
}

func (b Buffer) Len() int {
	return len(b.lines)
}

// Lines returns a defensive copy of the stored lines.
func (b Buffer) Lines() []string {
	if len(b.lines) == 0 {
		return []string{}
	}
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Line returns the line at index n. Negative indexes count from the end,
// so Line(-1) is the last line. Out-of-range indexes return "".
func (b Buffer) Line(n int) string {
	if n < 0 {
		n += len(b.lines)
	}
	if n < 0 || n >= len(b.lines) {
		return ""
	}
	return b.lines[n]
}

// String joins the stored lines with newlines.
func (b Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

// Contains reports whether any stored line contains substr.
func (b Buffer) Contains(substr string) bool {
	for _, line := range b.lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}

// Match returns the stored lines containing substr, in order.
func (b Buffer) Match(substr string) []string {
	out := make([]string, 0)
	for _, line := range b.lines {
		if strings.Contains(line, substr) {
			out = append(out, line)
		}
	}
	return out
}
