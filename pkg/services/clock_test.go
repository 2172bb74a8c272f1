package services

import (
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionClockStrictlyMonotonic(t *testing.T) {
	clock := &SessionClock{}

	prev := clock.Now()
	for i := 0; i < 10000; i++ {
		next := clock.Now()
		require.Greater(t, next, prev)
		prev = next
	}
}

func TestSessionClockConcurrentIssueUnique(t *testing.T) {
	clock := &SessionClock{}

	const goroutines = 8
	const perGoroutine = 1000

	var wg sync.WaitGroup
	results := make([][]int64, goroutines)
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			out := make([]int64, perGoroutine)
			for i := range out {
				out[i] = clock.Now()
			}
			results[g] = out
		}(g)
	}
	wg.Wait()

	var all []int64
	for _, r := range results {
		all = append(all, r...)
	}
	sort.Slice(all, func(i, j int) bool { return all[i] < all[j] })
	for i := 1; i < len(all); i++ {
		require.NotEqual(t, all[i-1], all[i], "duplicate timestamp issued")
	}
}

func TestClocksPerSessionIsolation(t *testing.T) {
	clocks := NewClocks()

	a := clocks.For("session-a")
	b := clocks.For("session-b")
	assert.NotSame(t, a, b)
	assert.Same(t, a, clocks.For("session-a"))
}

func TestClocksRelease(t *testing.T) {
	clocks := NewClocks()

	before := clocks.For("session-a")
	clocks.Release("session-a")
	after := clocks.For("session-a")
	assert.NotSame(t, before, after)
}
