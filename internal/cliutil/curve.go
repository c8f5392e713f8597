// Package cliutil builds curves from command-line flag values shared by the
// curve-eval and curve-wav commands.
package cliutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"

	keyframes "github.com/tphakala/go-keyframes"
)

// ErrBadPoints indicates an unparsable -points value.
var ErrBadPoints = errors.New("invalid points")

const (
	pointSeparator    = ","
	keyValueSeparator = ":"
	pairParts         = 2
	modifierNone      = "none"
)

// ParsePoints parses "key:value,key:value,..." into parallel slices.
// Whitespace around entries is ignored.
func ParsePoints(s string) (keys, values []float64, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil, fmt.Errorf("%w: no points given", ErrBadPoints)
	}

	for i, pair := range strings.Split(s, pointSeparator) {
		parts := strings.Split(strings.TrimSpace(pair), keyValueSeparator)
		if len(parts) != pairParts {
			return nil, nil, fmt.Errorf("%w: entry %d %q is not key:value", ErrBadPoints, i, pair)
		}

		k, err := cast.ToFloat64E(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, nil, fmt.Errorf("%w: entry %d key: %w", ErrBadPoints, i, err)
		}
		v, err := cast.ToFloat64E(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, nil, fmt.Errorf("%w: entry %d value: %w", ErrBadPoints, i, err)
		}

		keys = append(keys, k)
		values = append(values, v)
	}

	return keys, values, nil
}

// ParseKeys parses a comma-separated list of query keys.
func ParseKeys(s string) ([]float64, error) {
	var keys []float64
	for i, field := range strings.Split(s, pointSeparator) {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		k, err := cast.ToFloat64E(field)
		if err != nil {
			return nil, fmt.Errorf("key %d %q: %w", i, field, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// ParseModifier maps a modifier name to a keyframes.Modifier.
//
//	none     identity
//	db       amplitude decibels to linear gain
//	clamp    clamp to [0, 1]
//	db-clamp decibels to gain, then clamp to [0, 1]
func ParseModifier(name string) (keyframes.Modifier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", modifierNone:
		return nil, nil
	case "db":
		return keyframes.DecibelsToGain, nil
	case "clamp":
		return keyframes.Clamp(0, 1), nil
	case "db-clamp":
		return keyframes.Chain(keyframes.DecibelsToGain, keyframes.Clamp(0, 1)), nil
	default:
		return nil, fmt.Errorf("unknown modifier %q", name)
	}
}

// BuildCurve parses the kind, modifier and points flags into a curve.
func BuildCurve(kindName, modifierName, pointsSpec string) (*keyframes.Curve, error) {
	kind, err := keyframes.ParseKind(kindName)
	if err != nil {
		return nil, err
	}

	modifier, err := ParseModifier(modifierName)
	if err != nil {
		return nil, err
	}

	keys, values, err := ParsePoints(pointsSpec)
	if err != nil {
		return nil, err
	}

	return keyframes.FromPoints(kind, keys, values, modifier)
}
