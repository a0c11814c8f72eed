package forecast

import (
	"errors"
	"fmt"

	"github.com/ArneCode/electricity-price-optimizer-go/timegrid"
)

// ErrLengthMismatch indicates two series were combined despite differing
// lengths, or a series was constructed with a length other than
// timegrid.StepsPerDay.
var ErrLengthMismatch = errors.New("forecast: length mismatch")

// ErrIndexOutOfRange indicates an out-of-bounds timestep index was used to
// read or write a Series.
var ErrIndexOutOfRange = errors.New("forecast: index out of range")

// Series is a fixed-length sequence of length timegrid.StepsPerDay holding
// one int64 value per timestep. Values are typically non-negative
// energies or prices, but Series itself does not enforce sign.
type Series struct {
	values []int64
}

// New returns a Series of length timegrid.StepsPerDay, all zero.
func New() Series {
	return Series{values: make([]int64, timegrid.StepsPerDay)}
}

// NewFromSlice copies vals into a new Series. vals must have exactly
// timegrid.StepsPerDay elements, otherwise ErrLengthMismatch is returned.
func NewFromSlice(vals []int64) (Series, error) {
	if len(vals) != timegrid.StepsPerDay {
		return Series{}, fmt.Errorf("forecast: %w: got %d, want %d", ErrLengthMismatch, len(vals), timegrid.StepsPerDay)
	}
	cp := make([]int64, timegrid.StepsPerDay)
	copy(cp, vals)
	return Series{values: cp}, nil
}

// NewConstant returns a Series with every timestep set to v.
func NewConstant(v int64) Series {
	s := New()
	for t := range s.values {
		s.values[t] = v
	}
	return s
}

// Len returns timegrid.StepsPerDay; every Series has this length.
func (s Series) Len() int {
	return len(s.values)
}

// At returns the value at step t.
func (s Series) At(t timegrid.Step) (int64, error) {
	if t < 0 || t >= len(s.values) {
		return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, t)
	}
	return s.values[t], nil
}

// MustAt returns the value at step t, panicking if t is out of range.
// Intended for hot loops inside the graph builder where t is already
// known to be valid by construction.
func (s Series) MustAt(t timegrid.Step) int64 {
	return s.values[t]
}

// Set overwrites the value at step t.
func (s Series) Set(t timegrid.Step, v int64) error {
	if t < 0 || t >= len(s.values) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, t)
	}
	s.values[t] = v
	return nil
}

// Add adds other pointwise into s, in place. Both series must share the
// same length (true of any two Series, barring programmer error).
func (s Series) Add(other Series) error {
	if len(s.values) != len(other.values) {
		return ErrLengthMismatch
	}
	for t := range s.values {
		s.values[t] += other.values[t]
	}
	return nil
}

// Clone returns an independent copy of s.
func (s Series) Clone() Series {
	cp := make([]int64, len(s.values))
	copy(cp, s.values)
	return Series{values: cp}
}
