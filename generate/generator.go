// Package generate produces random test data: numbers, characters,
// digit strings, names, dice rolls and UUIDs.
//
// A Generator wraps a PCG source behind a mutex and is safe for concurrent
// use. Seeded generators are deterministic, which keeps fixtures stable.
// Package-level functions use Default.
package generate

import (
	"io"
	"math/rand/v2"
	"sync"

	"github.com/google/uuid"
)

// Generator produces random values from a single source.
type Generator struct {
	mu sync.Mutex
	r  *rand.Rand
}

var _ io.Reader = (*Generator)(nil)

// Default is the generator used by package-level functions.
var Default = NewRandom()

// New creates a deterministic generator from seed.
func New(seed uint64) *Generator {
	return &Generator{r: rand.New(rand.NewPCG(seed, 0))}
}

// NewRandom creates a generator seeded from the runtime source.
func NewRandom() *Generator {
	return &Generator{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Read fills p with random bytes. It never fails.
func (g *Generator) Read(p []byte) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := 0; i < len(p); i += 8 {
		v := g.r.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}

// UUID returns a version 4 UUID drawn from g.
func (g *Generator) UUID() uuid.UUID {
	// Read never fails, so neither does this.
	id, _ := uuid.NewRandomFromReader(g)
	return id
}

// Flip returns a random bool.
func (g *Generator) Flip() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.r.IntN(2) == 1
}

// Roll returns a value in [0, choices).
func (g *Generator) Roll(choices int) (int, error) {
	if choices < 2 {
		return 0, paramErr("choices", ErrTooFewChoices)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.r.IntN(choices), nil
}

// Int returns a value in [0, MaxInt32) from Default.
func Int() int { return Default.Int() }

// IntN returns a value in [0, max) from Default.
func IntN(max int) (int, error) { return Default.IntN(max) }

// IntRange returns a value in [min, max) from Default.
func IntRange(min, max int) (int, error) { return Default.IntRange(min, max) }

// Float64 returns a value in [0, 1) from Default.
func Float64() float64 { return Default.Float64() }

// Float64Range returns a value in [min, max) from Default.
func Float64Range(min, max float64) (float64, error) { return Default.Float64Range(min, max) }

// Byte returns a byte from Default.
func Byte() byte { return Default.Byte() }

// Upper returns an uppercase ASCII letter from Default.
func Upper() rune { return Default.Upper() }

// Lower returns a lowercase ASCII letter from Default.
func Lower() rune { return Default.Lower() }

// Letter returns an ASCII letter of either case from Default.
func Letter() rune { return Default.Letter() }

// Flip returns a random bool from Default.
func Flip() bool { return Default.Flip() }

// Roll returns a value in [0, choices) from Default.
func Roll(choices int) (int, error) { return Default.Roll(choices) }

// UUID returns a version 4 UUID from Default.
func UUID() uuid.UUID { return Default.UUID() }

// Digits returns a NumberBuilder backed by Default.
func Digits() NumberBuilder { return Default.Digits() }
