package garment

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrNoRecords is returned when a stored list of measurements is empty
var ErrNoRecords = errors.New("no measurements found")

// Format is the encoding of a measurements file
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatTOML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	}
	return "unknown"
}

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return 0, fmt.Errorf("unsupported file type: %s (expected .json, .yaml or .toml)", filepath.Ext(path))
}

// Load reads and validates a measurements file
func Load(path string) (Measurements, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Measurements{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Measurements{}, fmt.Errorf("failed to read measurements: %w", err)
	}

	m, err := Parse(data, format)
	if err != nil {
		return Measurements{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := m.Validate(); err != nil {
		return Measurements{}, err
	}
	return m, nil
}

// document accepts a bare record or one nested under "measurements"
type document struct {
	Measurements `yaml:",inline"`
	Nested       *Measurements `yaml:"measurements" toml:"measurements"`
}

func (d document) record() Measurements {
	if d.Nested != nil {
		return *d.Nested
	}
	return d.Measurements
}

// Parse decodes a measurement record without validating it
func Parse(data []byte, format Format) (Measurements, error) {
	switch format {
	case FormatJSON:
		return parseJSON(data)
	case FormatYAML:
		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return Measurements{}, fmt.Errorf("invalid yaml: %w", err)
		}
		return doc.record(), nil
	case FormatTOML:
		var doc document
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return Measurements{}, fmt.Errorf("invalid toml: %w", err)
		}
		return doc.record(), nil
	}
	return Measurements{}, fmt.Errorf("unsupported format: %v", format)
}

// number accepts both JSON numbers and numeric strings, as submitted by form inputs
type number float64

func (n *number) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	text := string(data)
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = strings.TrimSpace(unquoted)
		if text == "" {
			return nil
		}
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return fmt.Errorf("invalid measurement %s", data)
	}
	*n = number(value)
	return nil
}

type jsonRecord struct {
	Chest    number `json:"chest"`
	Shoulder number `json:"shoulder"`
	Sleeve   number `json:"sleeve"`
	Length   number `json:"length"`
	Neck     number `json:"neck"`
}

func (r jsonRecord) measurements() Measurements {
	return Measurements{
		Chest:    float64(r.Chest),
		Shoulder: float64(r.Shoulder),
		Sleeve:   float64(r.Sleeve),
		Length:   float64(r.Length),
		Neck:     float64(r.Neck),
	}
}

// jsonEntry is one stored submission: {"id": ..., "measurements": {...}, "timestamp": ...}
type jsonEntry struct {
	Measurements *jsonRecord `json:"measurements"`
}

func parseJSON(data []byte) (Measurements, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Measurements{}, fmt.Errorf("empty document")
	}

	// A list of stored submissions: the most recent one wins
	if trimmed[0] == '[' {
		var entries []jsonEntry
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return Measurements{}, fmt.Errorf("invalid json: %w", err)
		}
		if len(entries) == 0 || entries[len(entries)-1].Measurements == nil {
			return Measurements{}, ErrNoRecords
		}
		return entries[len(entries)-1].Measurements.measurements(), nil
	}

	var entry jsonEntry
	if err := json.Unmarshal(trimmed, &entry); err != nil {
		return Measurements{}, fmt.Errorf("invalid json: %w", err)
	}
	if entry.Measurements != nil {
		return entry.Measurements.measurements(), nil
	}

	var record jsonRecord
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return Measurements{}, fmt.Errorf("invalid json: %w", err)
	}
	return record.measurements(), nil
}

// FromForm builds a record from text inputs keyed like Field.Key. Blank inputs stay zero
// so Validate reports them as missing.
func FromForm(values map[string]string) (Measurements, error) {
	var m Measurements
	targets := []struct {
		key   string
		value *float64
	}{
		{"chest", &m.Chest},
		{"shoulder", &m.Shoulder},
		{"sleeve", &m.Sleeve},
		{"length", &m.Length},
		{"neck", &m.Neck},
	}

	for _, t := range targets {
		text := strings.TrimSpace(values[t.key])
		if text == "" {
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Measurements{}, fmt.Errorf("invalid %s %q", t.key, text)
		}
		*t.value = v
	}
	return m, nil
}
