// Package interview holds the orchestration rules shared by the mock
// interview and AI interview flows: aggregate scoring, next-question
// selection and transcript rendering. Everything here is pure; persistence
// lives in the repositories.
package interview

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/talentflow/talentflow/pkg/model"
)

// AggregateScore converts per-answer scores (0-10 each) into a session
// percentage: sum / (questions * 10) * 100. A session with zero questions
// scores 0.
func AggregateScore(answerScores []float64, questionCount int) float64 {
	if questionCount == 0 {
		return 0
	}
	var total float64
	for _, s := range answerScores {
		total += s
	}
	return total / (float64(questionCount) * 10) * 100
}

// NextUnanswered returns the lowest-order question without an answer, or nil
// when every question has been answered and the session should finalize.
func NextUnanswered(questions []model.QuestionWithAnswer) *model.InterviewQuestion {
	var next *model.InterviewQuestion
	for i := range questions {
		if questions[i].Answer != nil {
			continue
		}
		if next == nil || questions[i].Ord < next.Ord {
			next = &questions[i].InterviewQuestion
		}
	}
	return next
}

// RenderTranscript flattens turn records into the "AI: ...\nCandidate: ...\n"
// text form used in gateway prompts. The flat form is never stored.
func RenderTranscript(turns []model.AITurn) string {
	var b strings.Builder
	for _, turn := range turns {
		b.WriteString(string(turn.Speaker))
		b.WriteString(": ")
		b.WriteString(turn.Text)
		b.WriteString("\n")
	}
	return b.String()
}

// CountTurns returns how many turns the given speaker has taken.
func CountTurns(turns []model.AITurn, speaker model.Speaker) int {
	n := 0
	for _, turn := range turns {
		if turn.Speaker == speaker {
			n++
		}
	}
	return n
}

var digitsRe = regexp.MustCompile(`\d+`)

// Spoken-word fallbacks for voice clients whose transcriber writes numbers
// out longhand.
var wordNumbers = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

const defaultQuestionCount = 5

// ParseQuestionCount coerces the requested question count from whatever a
// client sent: a JSON number, a numeric string ("5"), text containing digits
// ("5 questions"), or a spoken word ("five"). Anything unrecognizable
// defaults to 5.
func ParseQuestionCount(v any) int {
	switch val := v.(type) {
	case nil:
		return defaultQuestionCount
	case float64:
		if n := int(val); n > 0 {
			return n
		}
		return defaultQuestionCount
	case int:
		if val > 0 {
			return val
		}
		return defaultQuestionCount
	case json.Number:
		if n, err := val.Int64(); err == nil && n > 0 {
			return int(n)
		}
		return defaultQuestionCount
	case string:
		if m := digitsRe.FindString(val); m != "" {
			if n, err := strconv.Atoi(m); err == nil && n > 0 {
				return n
			}
		}
		key := strings.Trim(strings.ToLower(strings.TrimSpace(val)), ". ")
		if n, ok := wordNumbers[key]; ok {
			return n
		}
		return defaultQuestionCount
	default:
		return defaultQuestionCount
	}
}
