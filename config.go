package scorekeep

import "time"

// DefaultThreshold is the score that must be exceeded, absent any override,
// before a crossing is reported.
const DefaultThreshold = 100

// Callback runs when a score crosses its threshold. Its value and error are
// returned from Apply unchanged.
type Callback func() (any, error)

// Config holds the effective policy for one Apply call. Resolution is
// per call: an Apply option overrides a Keeper option, which overrides
// the package default.
type Config struct {
	// Threshold is the score that must be strictly exceeded to report a
	// crossing.
	Threshold int
	// Decay is the time it takes one point of score to bleed off. Zero
	// disables decay.
	Decay time.Duration
	// Callback, if non-nil, runs on every crossing.
	Callback Callback
}

// DefaultConfig returns the package defaults: threshold 100, no decay, no
// callback.
func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold}
}

// Option adjusts the policy on a Keeper (as its default) or on a single
// Apply call (as an override).
type Option func(*Config)

// WithThreshold sets the crossing threshold. Zero is honored as a real
// threshold, not treated as unset.
func WithThreshold(threshold int) Option {
	return func(c *Config) { c.Threshold = threshold }
}

// WithDecay sets the seconds-per-point decay rate.
func WithDecay(decay time.Duration) Option {
	return func(c *Config) { c.Decay = decay }
}

// WithCallback sets the crossing callback.
func WithCallback(cb Callback) Option {
	return func(c *Config) { c.Callback = cb }
}
