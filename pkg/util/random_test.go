package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomDigits(t *testing.T) {
	for i := 0; i < 200; i++ {
		assert.Regexp(t, `^\d{6}$`, RandomDigits(6))
	}
}

func TestRandomDigits_NonPositive(t *testing.T) {
	assert.Empty(t, RandomDigits(0))
	assert.Empty(t, RandomDigits(-3))
}
