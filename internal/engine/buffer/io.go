package buffer

import (
	"fmt"
	"os"
	"strings"
)

// Load reads a file into a new buffer, one Line per line of text with the
// render derived immediately. Line endings are normalized to LF; the final
// line is preserved whether or not the file ends with a newline, and a
// trailing newline does not produce a phantom empty line.
func Load(path string, opts ...Option) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	b := New(opts...)
	b.path = path
	for _, content := range splitLines(string(data)) {
		b.lines = append(b.lines, newLine(content, b.tabs))
	}
	return b, nil
}

// splitLines splits file contents on line boundaries. The terminator is
// excluded, so "a\nb\n" and "a\nb" both yield two lines.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	parts := strings.Split(text, "\n")
	if parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return parts
}

// Contents returns the buffer serialized as newline-joined text with no
// final newline appended.
func (b *Buffer) Contents() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line.Content())
	}
	return sb.String()
}

// Save overwrites the associated file with the buffer contents and returns
// the number of bytes written. Saving without an associated path returns
// ErrNoFileName. A successful save resets the dirty counter.
func (b *Buffer) Save() (int, error) {
	if b.path == "" {
		return 0, ErrNoFileName
	}
	contents := b.Contents()
	if err := os.WriteFile(b.path, []byte(contents), 0o644); err != nil {
		return 0, fmt.Errorf("writing %s: %w", b.path, err)
	}
	b.dirty = 0
	return len(contents), nil
}
