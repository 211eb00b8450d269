package wrap

import "math/big"

// DefaultBoundedWrapping matches coalesce_bounded_wrapping's documented
// default: off, since the cap requires a caller-supplied magnitude and
// has no meaningful zero value.
const DefaultBoundedWrapping = false

// Option configures a Wrap call (the coalesce_bounded_wrapping knob of
// spec §6; every other wrap behavior is load-bearing and not optional).
type Option func(*options)

type options struct {
	boundedWrapping bool
	maxCoeff        *big.Int
}

func defaultOptions() options {
	return options{boundedWrapping: DefaultBoundedWrapping}
}

// WithMaxCoefficient enables coalesce_bounded_wrapping with cap as the
// largest coefficient magnitude a produced row may carry. Rows that would
// exceed it are rejected (ErrCoefficientCap) rather than silently dropped,
// so the caller can fall through to a non-wrapping rule per §4.3.
func WithMaxCoefficient(cap *big.Int) Option {
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
