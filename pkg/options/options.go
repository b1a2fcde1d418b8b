// Package options carries the tunable knobs for building a spelling
// dictionary, using functional options so callers set only what they need.
package options

var DefaultOptions = SpellOptions{
	MaxEditDistance:    2,
	FrequencyThreshold: 1,
	ExtraWordFrequency: 1_000_000_000,
	Exhaustive:         true,
}

type SpellOptions struct {
	// MaxEditDistance bounds the suggestion model's search depth.
	MaxEditDistance int
	// FrequencyThreshold drops dictionary rows with a lower count.
	FrequencyThreshold int
	// ExtraWordFrequency is the frequency assigned to run-scoped words.
	ExtraWordFrequency float64
	// Exhaustive makes candidate lookups walk every suggestion stage
	// instead of stopping at the first hit.
	Exhaustive bool
}

type Option interface {
	Apply(options *SpellOptions)
}

type FuncConfig struct {
	ops func(options *SpellOptions)
}

func (w FuncConfig) Apply(conf *SpellOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *SpellOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

func WithMaxEditDistance(maxEditDistance int) Option {
	return NewFuncOption(func(options *SpellOptions) {
		options.MaxEditDistance = maxEditDistance
	})
}

func WithFrequencyThreshold(threshold int) Option {
	return NewFuncOption(func(options *SpellOptions) {
		options.FrequencyThreshold = threshold
	})
}

func WithExtraWordFrequency(freq float64) Option {
	return NewFuncOption(func(options *SpellOptions) {
		options.ExtraWordFrequency = freq
	})
}

func WithoutExhaustiveSearch() Option {
	return NewFuncOption(func(options *SpellOptions) {
		options.Exhaustive = false
	})
}
