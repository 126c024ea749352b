package mocks

import (
	"sync"

	"github.com/mcoot/tetris-go/internal/dependencies/random"
)

// MockRandom is a deterministic Random for tests. Queued strings are returned
// first; once the queue is empty it counts through the alphabet instead.
type MockRandom struct {
	mu      sync.Mutex
	queue   []string
	counter int
}

var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// String returns the next queued result, or the next sequential string of
// the given length over alphabet
func (r *MockRandom) String(length int, alphabet string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.queue) > 0 {
		result := r.queue[0]
		r.queue = r.queue[1:]
		return result
	}

	r.counter++
	return sequential(r.counter, length, alphabet)
}

// QueueString adds values to the String result queue
func (r *MockRandom) QueueString(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = append(r.queue, values...)
}

// Reset clears queued results and restarts the sequence
func (r *MockRandom) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queue = nil
	r.counter = 0
}

// sequential writes n in base len(alphabet), left-padded with alphabet[0]
func sequential(n, length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 {
		return ""
	}
	base := len(alphabet)
	result := make([]byte, length)
	for i := length - 1; i >= 0; i-- {
		result[i] = alphabet[n%base]
		n /= base
	}
	return string(result)
}
