package genbip

import (
	"fmt"
	"math/rand"
)

// config collects the knobs Option mutates before Uniform builds an
// instance. Unexported, like the teacher's builderConfig: callers only
// ever see the exported Option constructors.
type config struct {
	tieProb          float64
	quotaLo, quotaHi int
	rng              *rand.Rand
}

// Option customizes Uniform's output by mutating a config before
// generation begins.
type Option func(*config)

// WithTies sets the probability that a preference-list entry ties with the
// one immediately before it. Panics on an out-of-[0,1] probability — option
// constructors validate and panic on meaningless inputs, per the teacher's
// convention; generation itself never panics.
func WithTies(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("genbip: WithTies(%v) out of [0,1]", p))
	}
	return func(c *config) { c.tieProb = p }
}

// WithQuotas sets the inclusive range [lo, hi] every generated vertex's
// upper quota is drawn uniformly from. Panics if lo < 0 or hi < lo.
func WithQuotas(lo, hi int) Option {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("genbip: WithQuotas(lo=%d, hi=%d) invalid", lo, hi))
	}
	return func(c *config) { c.quotaLo, c.quotaHi = lo, hi }
}

// WithSeed fixes the RNG seed for reproducible generation.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

func newConfig(opts ...Option) *config {
	c := &config{quotaLo: 1, quotaHi: 1, rng: rand.New(rand.NewSource(1))}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) randQuota() int {
	if c.quotaHi == c.quotaLo {
		return c.quotaLo
	}
	return c.quotaLo + c.rng.Intn(c.quotaHi-c.quotaLo+1)
}
