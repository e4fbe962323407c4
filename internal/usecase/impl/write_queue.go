package impl

import "sync"

// keyedQueue runs jobs in submission order per key. Jobs for different keys run concurrently.
type keyedQueue struct {
	mu sync.Mutex
	// a present key has a running worker; the slice holds jobs waiting behind it
	pending map[string][]func()
}

func newKeyedQueue() *keyedQueue {
	return &keyedQueue{pending: make(map[string][]func())}
}

func (q *keyedQueue) enqueue(key string, job func()) {
	q.mu.Lock()
	if backlog, running := q.pending[key]; running {
		q.pending[key] = append(backlog, job)
		q.mu.Unlock()

		return
	}
	q.pending[key] = nil
	q.mu.Unlock()

	go q.run(key, job)
}

func (q *keyedQueue) run(key string, job func()) {
	for {
		job()

		q.mu.Lock()
		backlog := q.pending[key]
		if len(backlog) == 0 {
			delete(q.pending, key)
			q.mu.Unlock()

			return
		}
		job = backlog[0]
		q.pending[key] = backlog[1:]
		q.mu.Unlock()
	}
}
