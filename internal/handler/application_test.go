package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanViewApplication(t *testing.T) {
	const (
		candidate = "candidate-1"
		hr        = "hr-1"
		stranger  = "someone-else"
	)

	assert.True(t, canViewApplication(candidate, candidate, hr))
	assert.True(t, canViewApplication(hr, candidate, hr))
	assert.False(t, canViewApplication(stranger, candidate, hr))
}
