// Package points implements the ordered control-point store used by curves.
// Points are kept sorted strictly ascending by key and are handed out by value,
// so callers never alias the store's backing slice.
package points

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	// ErrDuplicateKey indicates an insert with a key already present in the store.
	ErrDuplicateKey = errors.New("duplicate control point key")

	// ErrInvalidKey indicates a key that cannot be ordered (NaN).
	ErrInvalidKey = errors.New("invalid control point key")
)

// Point is an immutable control point.
// Value is the post-modifier value handed to consumers, Original is the raw
// input the point was created from and is the basis for interpolation.
type Point struct {
	Key      float64
	Value    float64
	Original float64
}

// Store is an ordered set of points with strictly increasing keys.
// The zero value is an empty store ready for use.
type Store struct {
	points []Point
}

// NewStore creates an empty store with room for capacity points.
func NewStore(capacity int) *Store {
	return &Store{points: make([]Point, 0, capacity)}
}

// Add inserts p keeping ascending key order.
// On error the store is left unchanged.
func (s *Store) Add(p Point) error {
	if math.IsNaN(p.Key) {
		return fmt.Errorf("%w: key is NaN", ErrInvalidKey)
	}

	i := s.search(p.Key)
	if i < len(s.points) && s.points[i].Key == p.Key {
		return fmt.Errorf("%w: %v", ErrDuplicateKey, p.Key)
	}

	// Append to the end is the common case for keyframes added in order.
	s.points = append(s.points, Point{})
	copy(s.points[i+1:], s.points[i:])
	s.points[i] = p

	return nil
}

// search returns the index of the first point with Key >= key.
func (s *Store) search(key float64) int {
	return sort.Search(len(s.points), func(i int) bool {
		return s.points[i].Key >= key
	})
}

// Neighbors returns the points surrounding key.
//
// An exact hit is reported as next, with its stored predecessor as prev.
// Below the range prev is nil, above the range next is nil, and both are nil
// for an empty store.
func (s *Store) Neighbors(key float64) (prev, next *Point) {
	n := len(s.points)
	if n == 0 {
		return nil, nil
	}

	i := s.search(key)
	if i > 0 {
		p := s.points[i-1]
		prev = &p
	}
	if i < n {
		p := s.points[i]
		next = &p
	}

	return prev, next
}

// Around returns the strict predecessor of key, the point stored exactly at
// key (nil if none) and the strict successor of key.
func (s *Store) Around(key float64) (before, at, after *Point) {
	n := len(s.points)
	i := s.search(key)

	if i > 0 {
		p := s.points[i-1]
		before = &p
	}

	j := i
	if i < n && s.points[i].Key == key {
		p := s.points[i]
		at = &p
		j = i + 1
	}

	if j < n {
		p := s.points[j]
		after = &p
	}

	return before, at, after
}

// Len returns the number of stored points.
func (s *Store) Len() int {
	return len(s.points)
}

// First returns the minimum-key point.
func (s *Store) First() (Point, bool) {
	if len(s.points) == 0 {
		return Point{}, false
	}
	return s.points[0], true
}

// Last returns the maximum-key point.
func (s *Store) Last() (Point, bool) {
	if len(s.points) == 0 {
		return Point{}, false
	}
	return s.points[len(s.points)-1], true
}

// Points returns a copy of all points in key order.
func (s *Store) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Keys returns the stored keys in ascending order.
func (s *Store) Keys() []float64 {
	keys := make([]float64, len(s.points))
	for i, p := range s.points {
		keys[i] = p.Key
	}
	return keys
}

// Originals returns the stored raw values in key order.
func (s *Store) Originals() []float64 {
	vals := make([]float64, len(s.points))
	for i, p := range s.points {
		vals[i] = p.Original
	}
	return vals
}
