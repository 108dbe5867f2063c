package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talentflow/talentflow/pkg/model"
)

func TestScreeningOutcome(t *testing.T) {
	status, advisory := screeningOutcome(79.9)
	assert.Equal(t, model.StatusRejected, status)
	assert.NotEmpty(t, advisory)

	status, advisory = screeningOutcome(80.0)
	assert.Equal(t, model.StatusApplied, status)
	assert.Empty(t, advisory)

	status, _ = screeningOutcome(95)
	assert.Equal(t, model.StatusApplied, status)
}

func TestCompletedInterviewAlwaysAdvancesApplication(t *testing.T) {
	for _, score := range []float64{0, 42.5, 79.9, 80, 100} {
		updates := completedInterviewUpdates(score)
		assert.Equal(t, model.StatusInterview, updates["status"], "score %.1f", score)
	}
}
