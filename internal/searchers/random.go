package searchers

import (
	"math/rand/v2"
	"sync"

	. "github.com/janpfeifer/connectGo/internal/state"
	"k8s.io/klog/v2"
)

// lockedSource makes a rand.Source safe for concurrent use.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

// NewRand returns a random number generator seeded from system entropy, safe for concurrent use.
func NewRand() *rand.Rand {
	return NewSeededRand(rand.Uint64())
}

// NewSeededRand returns a reproducible random number generator, safe for concurrent use.
// Tests use it to pin the outcome of random tie-breaks and rollouts.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(&lockedSource{src: rand.NewPCG(seed, 0)})
}

// RandomColumn returns a uniformly random legal column, or NoMove if the board is full.
// It is the common fallback of all searchers.
func RandomColumn(rng *rand.Rand, board Board) Column {
	columns := board.ValidColumns()
	if len(columns) == 0 {
		return NoMove
	}
	return columns[rng.IntN(len(columns))]
}

// Random is a Searcher that plays a uniformly random legal column. It is used as a baseline
// opponent and to generate varied matches.
type Random struct {
	rng *rand.Rand
}

// Assert Random is a Searcher.
var _ Searcher = (*Random)(nil)

// NewRandom returns a Random searcher using rng. If rng is nil one is created with NewRand.
func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = NewRand()
	}
	return &Random{rng: rng}
}

// Search implements Searcher.
func (r *Random) Search(board Board) Column {
	col := RandomColumn(r.rng, board)
	if klog.V(2).Enabled() {
		klog.Infof("random searcher: %s", col)
	}
	return col
}

// String implements Searcher.
func (r *Random) String() string {
	return "random"
}
