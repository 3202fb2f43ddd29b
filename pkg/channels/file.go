package channels

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gosensors/pkg/errkind"
)

// Format is a channel file encoding
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// FormatFromPath picks the format from a file extension; anything that is
// not .json is YAML
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return JSON
	}
	return YAML
}

// Encode writes set to w
func Encode(w io.Writer, set *Set, format Format) error {
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(set); err != nil {
			return errkind.Wrap(errkind.SinkFormat, err, "failed to encode channels")
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(set); err != nil {
			return errkind.Wrap(errkind.SinkFormat, err, "failed to encode channels")
		}
		return enc.Close()
	}
	return errkind.New(errkind.SinkFormat, "unknown format %q", format)
}

// Decode reads a set from r and validates it
func Decode(r io.Reader, format Format) (*Set, error) {
	set := &Set{}
	var err error
	switch format {
	case JSON:
		err = json.NewDecoder(r).Decode(set)
	case YAML:
		err = yaml.NewDecoder(r).Decode(set)
	default:
		return nil, errkind.New(errkind.SinkFormat, "unknown format %q", format)
	}
	if err != nil {
		return nil, errkind.Wrap(errkind.SinkFormat, err, "failed to decode channels")
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// WriteFile writes set to path in the format matching its extension. The
// file is only replaced once encoding succeeded.
func WriteFile(path string, set *Set) error {
	var buf bytes.Buffer
	if err := Encode(&buf, set, FormatFromPath(path)); err != nil {
		return errkind.WithPath(err, path)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ReadFile reads a channel file
func ReadFile(path string) (*Set, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &errkind.Error{Kind: errkind.ResourceOpen, Path: path, Msg: "failed to open channel file", Err: err}
	}
	defer file.Close()

	set, err := Decode(file, FormatFromPath(path))
	if err != nil {
		return nil, errkind.WithPath(err, path)
	}
	return set, nil
}
