package interview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentflow/talentflow/pkg/model"
)

func TestAggregateScore(t *testing.T) {
	tests := []struct {
		name      string
		scores    []float64
		questions int
		want      float64
	}{
		{"three answered", []float64{8, 6, 10}, 3, 80.0},
		{"perfect", []float64{10, 10}, 2, 100.0},
		{"zero questions never divides by zero", nil, 0, 0},
		{"unanswered questions drag the average", []float64{10}, 2, 50.0},
		{"no answers", nil, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, AggregateScore(tt.scores, tt.questions), 1e-9)
		})
	}
}

func question(id int64, ord int, answered bool) model.QuestionWithAnswer {
	q := model.QuestionWithAnswer{
		InterviewQuestion: model.InterviewQuestion{QuestionID: id, Ord: ord, Text: "q"},
	}
	if answered {
		q.Answer = &model.InterviewAnswer{QuestionID: id, Score: 5}
	}
	return q
}

func TestNextUnanswered(t *testing.T) {
	questions := []model.QuestionWithAnswer{
		question(1, 1, true),
		question(3, 3, false),
		question(2, 2, false),
	}

	next := NextUnanswered(questions)
	require.NotNil(t, next)
	assert.Equal(t, 2, next.Ord)
	assert.Equal(t, int64(2), next.QuestionID)
}

func TestNextUnansweredAllDone(t *testing.T) {
	questions := []model.QuestionWithAnswer{
		question(1, 1, true),
		question(2, 2, true),
	}
	assert.Nil(t, NextUnanswered(questions))
}

func TestRenderTranscript(t *testing.T) {
	now := time.Now()
	turns := []model.AITurn{
		{Speaker: model.SpeakerAI, Text: "Hello, ready?", CreatedAt: now},
		{Speaker: model.SpeakerCandidate, Text: "Yes.", CreatedAt: now},
	}
	assert.Equal(t, "AI: Hello, ready?\nCandidate: Yes.\n", RenderTranscript(turns))
	assert.Equal(t, "", RenderTranscript(nil))
}

func TestCountTurns(t *testing.T) {
	turns := []model.AITurn{
		{Speaker: model.SpeakerAI},
		{Speaker: model.SpeakerCandidate},
		{Speaker: model.SpeakerAI},
	}
	assert.Equal(t, 2, CountTurns(turns, model.SpeakerAI))
	assert.Equal(t, 1, CountTurns(turns, model.SpeakerCandidate))
}

func TestParseQuestionCount(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"json number", float64(7), 7},
		{"numeric string", "8", 8},
		{"digits in text", "10 questions please", 10},
		{"spoken word", "five", 5},
		{"spoken word with punctuation", " Three. ", 3},
		{"nil defaults", nil, 5},
		{"garbage defaults", "a few", 5},
		{"zero defaults", float64(0), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuestionCount(tt.in))
		})
	}
}
