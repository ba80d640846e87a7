package models

// Number is the set of value types a parameter Range can bound.
type Number interface {
	~int | ~int64 | ~float64
}

// Range is an inclusive [Min, Max] bound.
type Range[T Number] struct {
	Min T
	Max T
}

func (r Range[T]) Contains(v T) bool {
	return v >= r.Min && v <= r.Max
}

var (
	HeightRange        = Range[int]{Min: 128, Max: 2048}
	WidthRange         = Range[int]{Min: 128, Max: 2048}
	GuidanceScaleRange = Range[float64]{Min: 1.0, Max: 20.0}
	StepsRange         = Range[int]{Min: 1, Max: 50}
	MaxSeqLengthRange  = Range[int]{Min: 1, Max: 512}
	BatchSizeRange     = Range[int]{Min: 1, Max: 10}
)

// Values used for any optional parameter the caller leaves out.
const (
	DefaultHeight        = 1024
	DefaultWidth         = 1024
	DefaultGuidanceScale = 3.5
	DefaultSteps         = 4
	DefaultMaxSeqLength  = 256

	// MaxRandomSeed is the exclusive upper bound of seeds produced by RandomSeed.
	MaxRandomSeed = 1_000_000
)
