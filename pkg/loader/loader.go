// Package loader reads structured documents into the order-preserving Value
// model used by the renderers.
package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrInputNotFound reports a path that does not exist.
	ErrInputNotFound = errors.New("input not found")
	// ErrInputUnreadable reports a path or stream that could not be read.
	ErrInputUnreadable = errors.New("input unreadable")
	// ErrMalformedInput reports content that does not parse in the selected format.
	ErrMalformedInput = errors.New("malformed input")
	// ErrEmptyInput reports input that holds no document.
	ErrEmptyInput = errors.New("input is empty")
	// ErrUnsupportedFormat reports an unknown --format value.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// SyntaxError describes malformed input. Line and Column are 1-based and
// zero when the parser did not report a position.
type SyntaxError struct {
	Format Format
	Offset int64
	Line   int
	Column int
	Msg    string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid %s at line %d, column %d: %s", e.Format, e.Line, e.Column, e.Msg)
	}
	return fmt.Sprintf("invalid %s: %s", e.Format, e.Msg)
}

// Unwrap lets errors.Is match ErrMalformedInput.
func (e *SyntaxError) Unwrap() error { return ErrMalformedInput }

// Format selects the input decoder.
type Format string

const (
	FormatAuto Format = "auto"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Formats lists the accepted --format values.
func Formats() []Format {
	return []Format{FormatAuto, FormatJSON, FormatYAML, FormatTOML}
}

// ParseFormat validates a format name. An empty name means auto.
func ParseFormat(name string) (Format, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return FormatAuto, nil
	}
	for _, f := range Formats() {
		if string(f) == name {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q: valid values are auto, json, yaml, toml", ErrUnsupportedFormat, name)
}

// DetectFormat picks a decoder from a file extension, defaulting to JSON.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// LoadFile reads and decodes the document at path. FormatAuto detects the
// format from the extension.
func LoadFile(path string, format Format) (Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Value{}, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return Value{}, fmt.Errorf("%w: %s: %v", ErrInputUnreadable, path, err)
	}
	if format == FormatAuto {
		format = DetectFormat(path)
	}
	v, err := LoadBytes(data, format)
	if err != nil {
		return Value{}, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// LoadReader reads r to the end and decodes it. FormatAuto means JSON.
func LoadReader(r io.Reader, format Format) (Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrInputUnreadable, err)
	}
	return LoadBytes(data, format)
}

// LoadBytes decodes data in the given format. FormatAuto means JSON.
func LoadBytes(data []byte, format Format) (Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Value{}, ErrEmptyInput
	}
	switch format {
	case FormatAuto, FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatTOML:
		return decodeTOML(data)
	default:
		return Value{}, fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
}
