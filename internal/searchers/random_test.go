package searchers

import (
	"sync"
	"testing"

	. "github.com/janpfeifer/connectGo/internal/state"
	. "github.com/janpfeifer/connectGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
)

func TestRandomColumn(t *testing.T) {
	rng := NewSeededRand(42)
	b := BuildBoard(
		"1.2.1.2",
		"2.1.2.1",
		"1.2.1.2",
		"2.1.2.1",
		"1.2.1.2",
		"2.1.2.1",
	)
	seen := make(map[Column]int)
	for range 200 {
		col := RandomColumn(rng, b)
		assert.True(t, b.IsValid(col))
		seen[col]++
	}
	assert.Len(t, seen, 3)

	full := BuildBoard(
		"1122112",
		"2211221",
		"1122112",
		"2211221",
		"1122112",
		"2211221",
	)
	assert.Equal(t, NoMove, RandomColumn(rng, full))
	assert.Equal(t, NoMove, NewRandom(rng).Search(full))
}

func TestSeededRandIsReproducible(t *testing.T) {
	r1, r2 := NewSeededRand(7), NewSeededRand(7)
	for range 10 {
		assert.Equal(t, r1.Uint64(), r2.Uint64())
	}
}

func TestRandConcurrentUse(t *testing.T) {
	searcher := NewRandom(nil)
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.True(t, NewBoard().IsValid(searcher.Search(NewBoard())))
			}
		}()
	}
	wg.Wait()
}
