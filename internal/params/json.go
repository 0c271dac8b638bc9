package params

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// JSONParser reads a JSON object with the same field names as the text
// format. Integers may be JSON numbers or strings, points are two-element
// arrays or "O":
//
//	{"p": 97, "a": 2, "b": 3, "n": 50, "P": [0, 10], "Q": ["0x58", 56]}
type JSONParser struct{}

// ParseFile parses the file at path.
func (p *JSONParser) ParseFile(path string) (*Input, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open parameter file: %w", err)
	}
	defer file.Close()

	return p.Parse(file, path)
}

// Parse parses r. source names the input in error messages.
func (p *JSONParser) Parse(r io.Reader, source string) (*Input, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber() // Preserve large numbers as json.Number instead of float64

	var items map[string]interface{}
	if err := decoder.Decode(&items); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", source, ErrSyntax, err)
	}

	fields := make(map[string]string, len(items))
	for name, val := range items {
		if !knownFields[name] {
			return nil, fmt.Errorf("%s: %w: unknown field %q", source, ErrSyntax, name)
		}
		raw, err := jsonValue(val)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", source, name, err)
		}
		fields[name] = raw
	}
	return build(fields, source)
}

// jsonValue renders a decoded JSON value in text-format syntax.
func jsonValue(val interface{}) (string, error) {
	switch v := val.(type) {
	case string:
		return strings.Join(strings.Fields(v), ""), nil
	case json.Number:
		return v.String(), nil
	case []interface{}:
		if len(v) != 2 {
			return "", fmt.Errorf("%w: a point needs exactly two coordinates, got %d", ErrSyntax, len(v))
		}
		x, err := jsonValue(v[0])
		if err != nil {
			return "", err
		}
		y, err := jsonValue(v[1])
		if err != nil {
			return "", err
		}
		return "(" + x + "," + y + ")", nil
	default:
		return "", fmt.Errorf("%w: unsupported value %v", ErrSyntax, val)
	}
}
