package scheduler

// Algorithm selects the scheduling strategy (§6 schedule_algorithm).
type Algorithm int

const (
	// AlgorithmISL is the default: the main-LP row-by-row extraction loop
	// of §4.8.
	AlgorithmISL Algorithm = iota
	// AlgorithmFeautrier skips straight to carrying dependences whenever
	// validity edges remain, rather than searching for a row that also
	// minimizes proximity distance.
	AlgorithmFeautrier
)

// FuseMode selects how top-level components are grouped (§6 schedule_fuse).
type FuseMode int

const (
	// FuseMax schedules each weakly-connected component as a whole,
	// coalescing its statements into one band structure where possible.
	FuseMax FuseMode = iota
	// FuseMin schedules each strongly-connected component separately.
	FuseMin
)

// DefaultMaxCoefficient and DefaultMaxConstantTerm match spec §6: -1
// disables the respective cap.
const (
	DefaultMaxCoefficient  = -1
	DefaultMaxConstantTerm = -1
)

// Option configures a Driver (§6's option table).
type Option func(*options)

type options struct {
	parametric         bool
	maxCoefficient     int
	maxConstantTerm    int
	outerCoincidence   bool
	maximizeBandDepth  bool
	algorithm          Algorithm
	fuse               FuseMode
	separateComponents bool
	splitScaled        bool
}

func defaultOptions() options {
	return options{
		maxCoefficient:  DefaultMaxCoefficient,
		maxConstantTerm: DefaultMaxConstantTerm,
		algorithm:       AlgorithmISL,
		fuse:            FuseMax,
	}
}

// WithParametric allows parameter coefficients in schedules (otherwise
// pinned to zero); §6 schedule_parametric.
func WithParametric() Option { return func(o *options) { o.parametric = true } }

// WithMaxCoefficient caps the absolute value of every variable/parameter
// coefficient; §6 schedule_max_coefficient. cap must be >= 0.
func WithMaxCoefficient(cap int) Option {
	return func(o *options) { o.maxCoefficient = cap }
}

// WithMaxConstantTerm caps the absolute value of every node's constant
// term; §6 schedule_max_constant_term. cap must be >= 0.
func WithMaxConstantTerm(cap int) Option {
	return func(o *options) { o.maxConstantTerm = cap }
}

// WithOuterCoincidence makes every band's main LP first require zero
// distance on coincidence edges; when that LP is infeasible or yields a
// trivial row, the band is retried without coincidence. Without this
// option coincidence constraints are never imposed;
// §6 schedule_outer_coincidence.
func WithOuterCoincidence() Option { return func(o *options) { o.outerCoincidence = true } }

// WithMaximizeBandDepth lets an infeasible main LP first try splitting
// the component at an SCC boundary before falling back to carrying;
// without it the driver carries directly; §6 schedule_maximize_band_depth.
func WithMaximizeBandDepth() Option { return func(o *options) { o.maximizeBandDepth = true } }

// WithAlgorithm selects the scheduling strategy; §6 schedule_algorithm.
func WithAlgorithm(a Algorithm) Option { return func(o *options) { o.algorithm = a } }

// WithFuse selects how top-level components are scheduled; §6 schedule_fuse.
func WithFuse(f FuseMode) Option { return func(o *options) { o.fuse = f } }

// WithSeparateComponents prepends an SCC/component-index row across
// top-level weakly-connected components; §6 schedule_separate_components.
func WithSeparateComponents() Option { return func(o *options) { o.separateComponents = true } }

// WithSplitScaled enables the constant-term split refinement after
// carrying; §6 schedule_split_scaled.
func WithSplitScaled() Option { return func(o *options) { o.splitScaled = true } }

func resolve(opts []Option) options {
	o := defaultOptions()
	for _, set := range opts {
		set(&o)
	}
	return o
}
