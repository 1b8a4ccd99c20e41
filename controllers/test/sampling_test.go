package testController

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleQuestionIDsConcurrentCallers(t *testing.T) {
	testRng = rand.New(rand.NewSource(7))

	pool := make([]uint, 50)
	for i := range pool {
		pool[i] = uint(i + 1)
	}

	const callers = 8
	results := make([][]uint, callers)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i] = sampleQuestionIDs(pool, 10)
		}(i)
	}
	close(start)
	wg.Wait()

	// Every concurrent sample must still be a distinct subset of the pool.
	for _, sample := range results {
		require.Len(t, sample, 10)
		seen := make(map[uint]bool, len(sample))
		for _, id := range sample {
			assert.GreaterOrEqual(t, id, uint(1))
			assert.LessOrEqual(t, id, uint(50))
			assert.False(t, seen[id], "id %d sampled twice in one call", id)
			seen[id] = true
		}
	}

	// The shared pool slice is never mutated by sampling.
	for i, id := range pool {
		assert.Equal(t, uint(i+1), id)
	}
}
