package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/talentflow/talentflow/pkg/model"
)

func strPtr(s string) *string { return &s }

func TestJobUpdatesMapsSetFieldsOnly(t *testing.T) {
	updates := jobUpdates(model.UpdateJobRequest{
		Title:          strPtr("Senior Backend Engineer"),
		SkillsRequired: strPtr("Go, Postgres, Redis"),
	})

	assert.Equal(t, map[string]interface{}{
		"title":           "Senior Backend Engineer",
		"skills_required": "Go, Postgres, Redis",
	}, updates)
}

func TestJobUpdatesKeepsExplicitEmptyString(t *testing.T) {
	updates := jobUpdates(model.UpdateJobRequest{Location: strPtr("")})
	assert.Equal(t, map[string]interface{}{"location": ""}, updates)
}

func TestJobUpdatesEmptyRequest(t *testing.T) {
	assert.Empty(t, jobUpdates(model.UpdateJobRequest{}))
}
