package spin

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_picker.go github.com/couplewheel/couplewheel/internal/spin Picker

// Picker selects which wheel segment a spin lands on. This is the only
// source of nondeterminism in the game.
type Picker interface {
	// Pick returns a uniform index in [0, n)
	Pick(n int) int
}

// Config for the random picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// RandomPicker implements Picker with a local math/rand source
type RandomPicker struct {
	random *rand.Rand
}

// New creates a new random picker
func New(cfg *Config) *RandomPicker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	source := rand.NewSource(seed)

	return &RandomPicker{
		random: rand.New(source),
	}
}

// Pick returns a uniform random index over n wheel segments
func (p *RandomPicker) Pick(n int) int {
	if n < 1 {
		return 0
	}
	return p.random.Intn(n)
}
