package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCryptoRandomIntnInRange(t *testing.T) {
	rnd := New()
	for range 200 {
		v := rnd.Intn(7)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 7)
	}
	assert.Equal(t, 0, rnd.Intn(0))
}

func TestSeededRandomIsDeterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for range 50 {
		assert.Equal(t, a.Intn(7), b.Intn(7))
	}
}

func TestSeededRandomNonPositiveBound(t *testing.T) {
	rnd := NewSeeded(1)
	assert.Equal(t, 0, rnd.Intn(0))
	assert.Equal(t, 0, rnd.Intn(-3))
}
