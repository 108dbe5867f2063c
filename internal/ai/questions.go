package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/talentflow/talentflow/pkg/model"
	"go.uber.org/zap"
)

// questionCount is the fixed size of a mock-interview question set:
// 10 aptitude + 10 technical + 10 behavioral.
const questionCount = 30

const interviewQuestionsPrompt = `Generate exactly 30 interview questions for a %s role based on the candidate's resume.
The questions MUST be split as follows:
1. 10 Logical Reasoning questions compatible with a professional workplace (NO riddles like 'bat and ball', focus on data interpretation, pattern recognition, or work-place logic).
2. 10 Technical questions tailored to the job and resume skills.
3. 10 Non-technical/Behavioral questions.

Resume: %s

Provide the response as a JSON list of strings [q1, q2, ..., q30].`

// InterviewQuestions returns exactly 30 questions for the given role. On
// transient failure it retries with exponential backoff (quota errors come
// back as 429s that clear after a wait) before settling on the templated
// set. A short model response is padded with templated filler to 30; a long
// one is truncated.
func (g *Gateway) InterviewQuestions(ctx context.Context, profile model.ResumeProfile, jobTitle string) ([]string, Origin) {
	fallback := templatedQuestions(jobTitle)
	if !g.live() {
		return fallback, OriginFallback
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		g.logger.Warn("interview_questions: marshal profile", zap.Error(err))
		return fallback, OriginFallback
	}
	prompt := fmt.Sprintf(interviewQuestionsPrompt, jobTitle, profileJSON)

	for attempt := 0; attempt < g.cfg.QuestionRetries; attempt++ {
		raw, err := g.generateJSON(ctx, "interview_questions", prompt)
		if err == nil {
			var questions []string
			if unmarshalArray(raw, &questions) {
				return padQuestions(questions, fallback), OriginModel
			}
			g.logger.Warn("interview_questions: unparseable response",
				zap.Int("attempt", attempt+1),
				zap.String("preview", preview(raw)),
			)
		}

		if attempt == g.cfg.QuestionRetries-1 {
			break
		}

		delay := g.cfg.RetryBaseDelay << attempt
		g.logger.Info("interview_questions: retrying after backoff",
			zap.Int("attempt", attempt+1),
			zap.Duration("delay", delay),
		)
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fallback, OriginFallback
		case <-timer.C:
		}
	}

	return fallback, OriginFallback
}

func padQuestions(questions, fallback []string) []string {
	if len(questions) < questionCount {
		questions = append(questions, fallback[len(questions):]...)
	}
	return questions[:questionCount]
}
