package mocks

import (
	"github.com/mcoot/connectfour/internal/dependencies/random"
)

// MockRandom is a mock implementation of Random for testing
type MockRandom struct {
	// IntnResults is a queue of results to return from Intn
	IntnResults []int
	intnIndex   int

	// Calls counts Intn invocations
	Calls int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a new MockRandom
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn returns the next queued result modulo n, or 0 if none remaining
func (r *MockRandom) Intn(n int) int {
	r.Calls++
	if r.intnIndex >= len(r.IntnResults) || n <= 0 {
		return 0
	}
	result := r.IntnResults[r.intnIndex]
	r.intnIndex++
	return result % n
}

// QueueIntn adds values to the Intn result queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.IntnResults = append(r.IntnResults, values...)
}

// Remaining returns how many queued results have not been consumed
func (r *MockRandom) Remaining() int {
	return len(r.IntnResults) - r.intnIndex
}

// Reset clears all queued results
func (r *MockRandom) Reset() {
	r.IntnResults = nil
	r.intnIndex = 0
	r.Calls = 0
}
