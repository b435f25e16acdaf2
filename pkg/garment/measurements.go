package garment

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrIncomplete is returned when one or more measurements are missing
	ErrIncomplete = errors.New("please fill in all measurements")
	// ErrNotPositive is returned when a measurement is negative or not a finite number
	ErrNotPositive = errors.New("measurements must be greater than 0")
)

// Measurements holds the five body measurements of a garment in centimeters
type Measurements struct {
	Chest    float64 `json:"chest" yaml:"chest" toml:"chest"`
	Shoulder float64 `json:"shoulder" yaml:"shoulder" toml:"shoulder"`
	Sleeve   float64 `json:"sleeve" yaml:"sleeve" toml:"sleeve"`
	Length   float64 `json:"length" yaml:"length" toml:"length"`
	Neck     float64 `json:"neck" yaml:"neck" toml:"neck"`
}

// Field is a single named measurement
type Field struct {
	Key   string
	Label string
	Value float64
}

// Fields returns the measurements in display order
func (m Measurements) Fields() []Field {
	return []Field{
		{Key: "chest", Label: "Chest Width", Value: m.Chest},
		{Key: "shoulder", Label: "Shoulder Width", Value: m.Shoulder},
		{Key: "sleeve", Label: "Sleeve Length", Value: m.Sleeve},
		{Key: "length", Label: "T-Shirt Length", Value: m.Length},
		{Key: "neck", Label: "Neck Size", Value: m.Neck},
	}
}

// Equal reports whether both records hold the same values
func (m Measurements) Equal(other Measurements) bool {
	return m == other
}

// Scaled returns a copy with every measurement multiplied by factor
func (m Measurements) Scaled(factor float64) Measurements {
	return Measurements{
		Chest:    m.Chest * factor,
		Shoulder: m.Shoulder * factor,
		Sleeve:   m.Sleeve * factor,
		Length:   m.Length * factor,
		Neck:     m.Neck * factor,
	}
}

// Validate checks that every measurement is present and positive
func (m Measurements) Validate() error {
	for _, f := range m.Fields() {
		if f.Value == 0 {
			return fmt.Errorf("%w: %s is missing", ErrIncomplete, f.Label)
		}
	}
	for _, f := range m.Fields() {
		if f.Value < 0 || math.IsNaN(f.Value) || math.IsInf(f.Value, 0) {
			return fmt.Errorf("%w: %s is %v", ErrNotPositive, f.Label, f.Value)
		}
	}
	return nil
}

// String formats the record for log output
func (m Measurements) String() string {
	return fmt.Sprintf("chest=%.1fcm shoulder=%.1fcm sleeve=%.1fcm length=%.1fcm neck=%.1fcm",
		m.Chest, m.Shoulder, m.Sleeve, m.Length, m.Neck)
}
