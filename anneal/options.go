package anneal

import "math/rand"

// Options configures Run. The zero value is not meaningful; use
// DefaultOptions and layer Option values on top, matching the
// functional-options convention used throughout this module.
type Options struct {
	InitialTemperature float64
	MinTemperature     float64
	Alpha              float64
	MoveSigmaBase      float64
	CompoundMoveSize   int
	Rand               *rand.Rand
}

// Option mutates an Options in place. Panics in WithX constructors are
// the only panics this package's public API produces; Run itself never
// panics on bad Options because DefaultOptions composed with Option
// values cannot produce an invalid configuration.
type Option func(*Options)

// DefaultOptions returns the reference driver's parameters:
// T0=10, Tmin=0.1, alpha=0.99, sigma=30*sqrt(T), k=2, and a fixed-seed
// RNG for reproducible default runs.
func DefaultOptions() Options {
	return Options{
		InitialTemperature: 10,
		MinTemperature:     0.1,
		Alpha:              0.99,
		MoveSigmaBase:      30,
		CompoundMoveSize:   2,
		Rand:               rand.New(rand.NewSource(defaultRNGSeed)),
	}
}

// WithInitialTemperature overrides T0. Panics if t is not positive.
func WithInitialTemperature(t float64) Option {
	if t <= 0 {
		panic("anneal: InitialTemperature must be positive")
	}
	return func(o *Options) { o.InitialTemperature = t }
}

// WithMinTemperature overrides Tmin. Panics if t is not positive.
func WithMinTemperature(t float64) Option {
	if t <= 0 {
		panic("anneal: MinTemperature must be positive")
	}
	return func(o *Options) { o.MinTemperature = t }
}

// WithAlpha overrides the per-iteration cooling factor. Panics if alpha
// is not in (0, 1).
func WithAlpha(alpha float64) Option {
	if alpha <= 0 || alpha >= 1 {
		panic("anneal: Alpha must be in (0, 1)")
	}
	return func(o *Options) { o.Alpha = alpha }
}

// WithMoveSigmaBase overrides the coefficient in sigma = base*sqrt(T).
// Panics if base is not positive.
func WithMoveSigmaBase(base float64) Option {
	if base <= 0 {
		panic("anneal: MoveSigmaBase must be positive")
	}
	return func(o *Options) { o.MoveSigmaBase = base }
}

// WithCompoundMoveSize overrides k, the number of independent
// sub-moves per iteration. Panics if k is not positive.
func WithCompoundMoveSize(k int) Option {
	if k <= 0 {
		panic("anneal: CompoundMoveSize must be positive")
	}
	return func(o *Options) { o.CompoundMoveSize = k }
}

// WithRand overrides the RNG. Panics if r is nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("anneal: Rand must not be nil")
	}
	return func(o *Options) { o.Rand = r }
}
