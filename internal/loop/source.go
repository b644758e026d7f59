package loop

import (
	"math/rand"

	"github.com/vovakirdan/tui-pacman/internal/core"
)

// RandomSteer presses a random arrow key every Every ticks. The sim
// command uses it to give the headless player something to do.
type RandomSteer struct {
	Every int
	rng   *rand.Rand
	count int
}

// NewRandomSteer creates a steering source seeded for reproducibility.
func NewRandomSteer(seed int64, every int) *RandomSteer {
	return &RandomSteer{Every: every, rng: rand.New(rand.NewSource(seed))}
}

var steerKeys = []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight}

// Poll returns one arrow key on every Every-th call.
func (s *RandomSteer) Poll() []core.Action {
	if s.Every <= 0 {
		return nil
	}
	s.count++
	if s.count < s.Every {
		return nil
	}
	s.count = 0
	return []core.Action{steerKeys[s.rng.Intn(len(steerKeys))]}
}
