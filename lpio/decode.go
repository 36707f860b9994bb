// SPDX-License-Identifier: MIT

package lpio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lexsimplex/simplex"
)

// Format is an input/output encoding.
type Format int

const (
	// JSON is the wire format of the HTTP surface and of .json files.
	JSON Format = iota
	// YAML is accepted for .yaml and .yml files.
	YAML
)

// String returns "json" or "yaml".
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a name ("json", "yaml", "yml"; case-insensitive) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnsupportedFormat)
	}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("%s: no extension: %w", path, ErrUnsupportedFormat)
	}

	return ParseFormat(ext)
}

// Decode reads one input record from r.
// Unknown fields are ignored; an empty stream is malformed.
func Decode(r io.Reader, f Format) (simplex.Problem, error) {
	var p simplex.Problem
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(&p)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&p)
	default:
		return simplex.Problem{}, fmt.Errorf("%s: %w", f, ErrUnsupportedFormat)
	}
	if err != nil {
		return simplex.Problem{}, fmt.Errorf("%w: %s: %v", ErrMalformedInput, f, err)
	}

	return p, nil
}

// DecodeFile opens path and decodes it in the format named by its extension.
func DecodeFile(path string) (simplex.Problem, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return simplex.Problem{}, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return simplex.Problem{}, err
	}
	defer fh.Close()

	return Decode(fh, f)
}
