package enumerable

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"sync"
)

var defaultSampler = &Sampler{}

// Random returns a uniformly chosen element of seq in a single pass, using
// the process-wide random generator.
//
// It fails with [ErrInvalidArgument] for a nil seq and [ErrEmptySequence]
// when seq yields nothing.
func Random[T any](seq iter.Seq[T]) (T, error) {
	return Pick(defaultSampler, seq)
}

// SamplerOptions configures a [Sampler].
type SamplerOptions struct {
	// Seed makes the sampler deterministic. Samplers built from equal seeds
	// produce the same picks from the same inputs, across processes and
	// platforms. An empty Seed draws from the process-wide generator.
	Seed []byte
}

// DefaultSamplerOptions returns options for an unseeded sampler.
func DefaultSamplerOptions() SamplerOptions {
	return SamplerOptions{}
}

// Sampler selects random elements from sequences with reservoir sampling.
//
// The zero value is ready to use and draws from the process-wide
// math/rand/v2 generator. A Sampler is safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler builds a Sampler from opts.
func NewSampler(opts SamplerOptions) (*Sampler, error) {
	if len(opts.Seed) == 0 {
		return &Sampler{}, nil
	}
	src, err := newKeystreamSource(opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("enumerable: failed to create seeded sampler: %w", err)
	}
	return &Sampler{rng: rand.New(src)}, nil
}

// intN returns a uniform integer in [0, n).
func (s *Sampler) intN(n int) int {
	if s.rng == nil {
		return rand.IntN(n)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

// Pick returns a uniformly chosen element of seq using s.
//
// The n-th element seen replaces the current candidate with probability
// 1/n, so every element is equally likely without knowing the length in
// advance. A nil s uses the process-wide generator.
//
// Go methods cannot declare type parameters, so Pick and [PickN] are
// package-level functions that take the Sampler explicitly.
func Pick[T any](s *Sampler, seq iter.Seq[T]) (T, error) {
	var chosen T
	if seq == nil {
		return chosen, nilArgument("source")
	}
	if s == nil {
		s = defaultSampler
	}
	seen := 0
	for v := range seq {
		seen++
		if s.intN(seen) == 0 {
			chosen = v
		}
	}
	if seen == 0 {
		return chosen, ErrEmptySequence
	}
	return chosen, nil
}

// PickN returns up to k distinct-position elements of seq, each subset of
// size k being equally likely. Fewer than k elements are returned when seq
// is shorter; their order is unspecified.
func PickN[T any](s *Sampler, seq iter.Seq[T], k int) ([]T, error) {
	if seq == nil {
		return nil, nilArgument("source")
	}
	if k < 0 {
		return nil, negativeArgument("k", k)
	}
	if s == nil {
		s = defaultSampler
	}
	reservoir := make([]T, 0, k)
	if k == 0 {
		return reservoir, nil
	}
	seen := 0
	for v := range seq {
		seen++
		if len(reservoir) < k {
			reservoir = append(reservoir, v)
			continue
		}
		if j := s.intN(seen); j < k {
			reservoir[j] = v
		}
	}
	return reservoir, nil
}
