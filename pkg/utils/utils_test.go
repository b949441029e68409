package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.5, Clamp(0.1, 0.5, 0.95))
	assert.Equal(t, 0.95, Clamp(1.4, 0.5, 0.95))
	assert.Equal(t, 0.7, Clamp(0.7, 0.5, 0.95))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 101.24, Round(101.2351, 2))
	assert.Equal(t, -3.1, Round(-3.14, 1))
}

func TestToPointer(t *testing.T) {
	p := ToPointer(42)
	*p++
	assert.Equal(t, 43, *p)
}

func TestSetLocation(t *testing.T) {
	assert.Error(t, SetLocation("Not/AZone"))
	assert.NoError(t, SetLocation(""))
}
