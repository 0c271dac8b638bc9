package params

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// TextParser reads the line-oriented format:
//
//	# comment
//	Input:
//	p = 97
//	a = 2
//	b = 3
//	P = (0, 10)
//	n = 50
//	Q = (88, 56)
//
// Whitespace is ignored. Every other line is name = value with a known name,
// at most once.
type TextParser struct{}

// ParseFile parses the file at path.
func (p *TextParser) ParseFile(path string) (*Input, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parameter file: %w", err)
	}
	defer file.Close()

	return p.Parse(file, path)
}

// Parse parses r. source names the input in error messages.
func (p *TextParser) Parse(r io.Reader, source string) (*Input, error) {
	fields := map[string]string{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.Join(strings.Fields(scanner.Text()), "")
		if line == "" || strings.HasPrefix(line, "#") || line == "Input:" {
			continue
		}

		name, value, ok := strings.Cut(line, "=")
		if !ok || name == "" || value == "" || strings.Contains(value, "=") {
			return nil, fmt.Errorf("%s:%d: %w: want name = value, got %q", source, lineNo, ErrSyntax, line)
		}
		if !knownFields[name] {
			return nil, fmt.Errorf("%s:%d: %w: unknown field %q", source, lineNo, ErrSyntax, name)
		}
		if _, dup := fields[name]; dup {
			return nil, fmt.Errorf("%s:%d: %w: %s defined twice", source, lineNo, ErrSyntax, name)
		}
		fields[name] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}

	return build(fields, source)
}
