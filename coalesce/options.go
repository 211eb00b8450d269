package coalesce

import "math/big"

// DefaultBoundedWrapping matches spec §6's coalesce_bounded_wrapping,
// off by default.
const DefaultBoundedWrapping = false

// Option configures TryMerge/Run.
type Option func(*options)

type options struct {
	boundedWrapping bool
	maxCoeff        *big.Int
}

func defaultOptions() options {
	return options{boundedWrapping: DefaultBoundedWrapping}
}

// WithBoundedWrapping enables coalesce_bounded_wrapping: wraps whose
// coefficients would exceed cap are rejected rather than applied.
func WithBoundedWrapping(cap *big.Int) Option {
	return func(o *options) {
		o.boundedWrapping = true
		o.maxCoeff = new(big.Int).Set(cap)
	}
}

func resolve(opts []Option) options {
	o := defaultOptions()
	for _, set := range opts {
		set(&o)
	}
	return o
}
