package creative

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/adproof/adproof/pkg/errors"
)

// Marshal serializes a Layout to pretty-printed JSON bytes.
func Marshal(l *Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// Unmarshal deserializes JSON bytes into a Layout and enforces the ingest
// invariants: a layout must contain elements, every element needs a type,
// the quality score must be in [0,1], element geometry is independently
// clamped to [0,100] percent, and a set font size must be in [8,200].
func Unmarshal(data []byte) (*Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayout, err, "unmarshal layout")
	}

	if len(l.Elements) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "layout must contain elements")
	}
	if l.Score < 0 || l.Score > 1 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "layout score %v outside [0,1]", l.Score)
	}
	for i := range l.Elements {
		e := &l.Elements[i]
		if e.Type == "" {
			return nil, errors.New(errors.ErrCodeInvalidLayout, "element %d has no type", i)
		}
		if e.FontSize != 0 && (e.FontSize < MinFontSize || e.FontSize > MaxFontSize) {
			return nil, errors.New(errors.ErrCodeInvalidLayout,
				"element %d font size %d outside [%d,%d]", i, e.FontSize, MinFontSize, MaxFontSize)
		}
		e.X = clampPct(e.X)
		e.Y = clampPct(e.Y)
		e.Width = clampPct(e.Width)
		e.Height = clampPct(e.Height)
	}

	return &l, nil
}

// clampPct forces a percentage coordinate into [0,100].
func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// WriteFile writes a Layout to a JSON file.
func WriteFile(l *Layout, path string) error {
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadFile reads a Layout from a JSON file.
func ReadFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}
