package cliutil

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	keyframes "github.com/tphakala/go-keyframes"
)

// CurveFile is the YAML form of a curve:
//
//	kind: monotone
//	modifier: db
//	points:
//	  - {key: 0, value: -60}
//	  - {key: 2, value: 0}
type CurveFile struct {
	Kind     string      `yaml:"kind"`
	Modifier string      `yaml:"modifier"`
	Points   []FilePoint `yaml:"points"`
}

// FilePoint is one control point of a CurveFile.
type FilePoint struct {
	Key   float64 `yaml:"key"`
	Value float64 `yaml:"value"`
}

// DecodeCurveFile reads a CurveFile from r.
// Missing kind and modifier fall back to linear and none.
func DecodeCurveFile(r io.Reader) (*CurveFile, error) {
	var f CurveFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode curve file: %w", err)
	}

	if f.Kind == "" {
		f.Kind = keyframes.KindLinear.String()
	}
	if f.Modifier == "" {
		f.Modifier = modifierNone
	}
	if len(f.Points) == 0 {
		return nil, fmt.Errorf("%w: curve file has no points", ErrBadPoints)
	}

	return &f, nil
}

// LoadCurve reads the curve file at path and builds the curve it describes.
func LoadCurve(path string) (*keyframes.Curve, *CurveFile, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = fh.Close() }()

	f, err := DecodeCurveFile(fh)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	c, err := f.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, f, nil
}

// Build constructs the curve described by f.
func (f *CurveFile) Build() (*keyframes.Curve, error) {
	kind, err := keyframes.ParseKind(f.Kind)
	if err != nil {
		return nil, err
	}

	modifier, err := ParseModifier(f.Modifier)
	if err != nil {
		return nil, err
	}

	keys := make([]float64, len(f.Points))
	values := make([]float64, len(f.Points))
	for i, p := range f.Points {
		keys[i] = p.Key
		values[i] = p.Value
	}

	return keyframes.FromPoints(kind, keys, values, modifier)
}
