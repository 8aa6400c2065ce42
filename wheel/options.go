// options.go — functional options for wheel construction.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors validate and panic on meaningless inputs;
//     wheel operations themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand,
//     otherwise the wheel boots from OS entropy.
package wheel

import "golang.org/x/exp/rand"

// Option customizes wheel construction.
type Option func(*config)

// config aggregates construction knobs. Resolved once in newConfig.
type config struct {
	// rng is the wheel's random source; nil means "seed from OS entropy".
	rng *rand.Rand
}

// newConfig applies options in order (later overrides earlier) and
// resolves defaults.
func newConfig(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = newEntropyRand()
	}
	return cfg
}

// WithSeed seeds the wheel's random source deterministically.
// Use in tests and examples to lock the draw sequence.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand attaches an explicit random source. Panics on nil;
// prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("wheel: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}
