package ai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/talentflow/talentflow/pkg/model"
	"go.uber.org/zap"
)

const quizCount = 30

const quizQuestionsPrompt = `Generate 30 multiple-choice questions (MCQs) on the topic: "%s".
%s

Requirements:
1. Each question should have 4 options and 1 correct answer.
2. The level should be intermediate/advanced, tailored to a candidate with the provided resume context if available.
3. If resume context is provided, ensure questions touch upon technical skills or experience levels mentioned.

Provide the output strictly as a JSON list of objects:
[
    {
        "question": "Question text here",
        "options": ["Option A", "Option B", "Option C", "Option D"],
        "correct_answer": "Option A"
    },
    ...
]`

// QuizQuestions generates 30 MCQs on a topic, optionally tailored to the
// candidate's resume. The model wraps its JSON in prose or fences often
// enough that parsing goes through the multi-stage extraction in
// unmarshalArray before giving up on the fallback set.
func (g *Gateway) QuizQuestions(ctx context.Context, topic string, profile *model.ResumeProfile) ([]model.QuizQuestion, Origin) {
	if !g.live() {
		return mockQuizQuestions(topic), OriginFallback
	}

	contextStr := ""
	if profile != nil {
		if profileJSON, err := json.Marshal(profile); err == nil {
			contextStr = fmt.Sprintf("Candidate Resume Context: %s", profileJSON)
		}
	}

	raw, err := g.generateJSON(ctx, "quiz_questions", fmt.Sprintf(quizQuestionsPrompt, topic, contextStr))
	if err != nil {
		return mockQuizQuestions(topic), OriginFallback
	}

	var questions []model.QuizQuestion
	if !unmarshalArray(raw, &questions) || len(questions) == 0 {
		g.logger.Warn("quiz_questions: unparseable response",
			zap.String("topic", topic),
			zap.String("preview", preview(raw)),
		)
		return mockQuizQuestions(topic), OriginFallback
	}
	return questions, OriginModel
}
