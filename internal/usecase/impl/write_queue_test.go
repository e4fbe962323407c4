package impl

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyedQueue_RunsEachKeyInOrder(t *testing.T) {
	q := newKeyedQueue()

	var wg sync.WaitGroup
	var mu sync.Mutex
	seen := make(map[string][]int)

	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("k%d", i%3)
		wg.Add(1)
		q.enqueue(key, func() {
			defer wg.Done()
			mu.Lock()
			seen[key] = append(seen[key], i)
			mu.Unlock()
		})
	}
	wg.Wait()

	for key, want := range map[string]int{"k0": 34, "k1": 33, "k2": 33} {
		assert.Len(t, seen[key], want)
		assert.IsIncreasing(t, seen[key], "jobs for %s ran out of order", key)
	}

	// workers exit once their backlog is empty
	assert.Eventually(t, func() bool {
		q.mu.Lock()
		defer q.mu.Unlock()

		return len(q.pending) == 0
	}, time.Second, 5*time.Millisecond)
}
