package sampler

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"
)

const (
	MinDigits = 1
	MaxDigits = 19

	// DefaultDenseThreshold is the largest digit width enumerated in full.
	DefaultDenseThreshold = 6
	// MaxDenseThreshold caps WithDenseThreshold so the dense pool stays in the tens of MB.
	MaxDenseThreshold = 7

	maxSparseHint = 1 << 16
)

// Strategy names the algorithm used for a draw.
type Strategy string

const (
	StrategyDense  Strategy = "dense"
	StrategySparse Strategy = "sparse"
)

// Draw is a finished, sorted set of numbers together with how it was made.
type Draw struct {
	Numbers  []string
	Digits   int
	Strategy Strategy
	Stats    *Stats
}

// Sampler picks distinct fixed-width numbers uniformly without replacement.
// A Sampler is not safe for concurrent use.
type Sampler struct {
	rng            *rand.Rand
	denseThreshold int
	maxDraws       uint64
}

type Option func(*Sampler)

// WithRand sets the random source.
func WithRand(r *rand.Rand) Option {
	return func(s *Sampler) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithSeed makes draws reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Sampler) {
		s.rng = rand.New(rand.NewPCG(seed, seed))
	}
}

// WithDenseThreshold changes the digit width up to which the dense strategy is used.
// Values are clamped to [0, MaxDenseThreshold].
func WithDenseThreshold(digits int) Option {
	return func(s *Sampler) {
		s.denseThreshold = min(max(digits, 0), MaxDenseThreshold)
	}
}

// WithMaxDraws bounds the random draws of the sparse strategy. Zero means unbounded.
func WithMaxDraws(n uint64) Option {
	return func(s *Sampler) {
		s.maxDraws = n
	}
}

// New creates a Sampler seeded from the runtime's random state.
func New(opts ...Option) *Sampler {
	s := &Sampler{
		rng:            rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		denseThreshold: DefaultDenseThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sample draws count distinct digits-wide numbers with a fresh Sampler.
func Sample(digits, count int) ([]string, error) {
	return New().Sample(digits, count)
}

// Sample returns count distinct zero-padded numbers of exactly digits digits,
// sorted ascending.
func (s *Sampler) Sample(digits, count int) ([]string, error) {
	d, err := s.Draw(digits, count)
	if err != nil {
		return nil, err
	}
	return d.Numbers, nil
}

// Draw is Sample with the strategy and statistics attached.
func (s *Sampler) Draw(digits, count int) (*Draw, error) {
	if err := Validate(digits, count); err != nil {
		return nil, err
	}

	space := SpaceSize(digits)
	strategy := ChooseStrategy(digits, s.denseThreshold)
	stats := newStats(strategy, space, count)

	var (
		values []uint64
		err    error
	)
	if strategy == StrategyDense {
		values = s.dense(space, count, stats)
	} else {
		values, err = s.sparse(space, count, stats)
		if err != nil {
			return nil, err
		}
	}

	numbers := make([]string, len(values))
	for i, v := range values {
		numbers[i] = fmt.Sprintf("%0*d", digits, v)
	}
	// Fixed width makes string order equal numeric order.
	slices.Sort(numbers)

	stats.Elapsed = time.Since(stats.StartTime)
	return &Draw{
		Numbers:  numbers,
		Digits:   digits,
		Strategy: strategy,
		Stats:    stats,
	}, nil
}

// Validate checks digits and count before any sampling work.
func Validate(digits, count int) error {
	if digits < MinDigits || digits > MaxDigits {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidWidth, digits, MinDigits, MaxDigits)
	}
	if count < 0 || uint64(count) > SpaceSize(digits) {
		return fmt.Errorf("%w: %d (must be between 0 and %d for %d digits)", ErrInvalidCount, count, SpaceSize(digits), digits)
	}
	return nil
}

// SpaceSize returns 10^digits, the number of distinct values of that width.
// It returns 0 for widths outside [MinDigits, MaxDigits].
func SpaceSize(digits int) uint64 {
	if digits < MinDigits || digits > MaxDigits {
		return 0
	}
	n := uint64(1)
	for range digits {
		n *= 10
	}
	return n
}

// ChooseStrategy picks dense enumeration up to threshold digits and rejection sampling above it.
func ChooseStrategy(digits, threshold int) Strategy {
	if digits <= threshold {
		return StrategyDense
	}
	return StrategySparse
}

// dense shuffles the whole space and keeps the first count values.
func (s *Sampler) dense(space uint64, count int, stats *Stats) []uint64 {
	pool := make([]uint32, space)
	for i := range pool {
		pool[i] = uint32(i)
	}

	// rand.Shuffle is Fisher-Yates from the last index down.
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > 1 {
		stats.Draws = uint64(len(pool) - 1)
	}

	values := make([]uint64, count)
	for i := range values {
		values[i] = uint64(pool[i])
	}
	return values
}

// sparse draws until count distinct values are seen. Without a draw limit
// there is no retry bound; collisions are negligible when count is far below space.
func (s *Sampler) sparse(space uint64, count int, stats *Stats) ([]uint64, error) {
	seen := make(map[uint64]struct{}, sparseSizeHint(count, s.maxDraws))
	for len(seen) < count {
		if s.maxDraws > 0 && stats.Draws >= s.maxDraws {
			return nil, fmt.Errorf("%w: %d distinct of %d after %d draws", ErrSamplingExhausted, len(seen), count, stats.Draws)
		}
		v := s.rng.Uint64N(space)
		stats.Draws++
		if _, dup := seen[v]; dup {
			stats.Collisions++
			continue
		}
		seen[v] = struct{}{}
	}

	values := make([]uint64, 0, count)
	for v := range seen {
		values = append(values, v)
	}
	return values, nil
}

// sparseSizeHint bounds the initial map allocation so a draw limit fails
// with ErrSamplingExhausted instead of allocating for the whole count.
func sparseSizeHint(count int, maxDraws uint64) int {
	hint := count
	if maxDraws > 0 && uint64(hint) > maxDraws {
		hint = int(maxDraws)
	}
	return min(hint, maxSparseHint)
}
