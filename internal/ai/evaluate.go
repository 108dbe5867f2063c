package ai

import (
	"context"
	"fmt"

	"github.com/talentflow/talentflow/pkg/model"
	"go.uber.org/zap"
)

const evaluateAnswerPrompt = `Evaluate the following interview answer for the given question.
Question: %s
Answer: %s

Provide the following in JSON format:
- score (0-10)
- feedback (string)
- strengths (string)
- improvements (string)`

// EvaluateAnswer scores one interview answer on a 0-10 scale.
func (g *Gateway) EvaluateAnswer(ctx context.Context, question, answer string) (model.AnswerEvaluation, Origin) {
	if !g.live() {
		return mockAnswerEvaluation(), OriginFallback
	}

	raw, err := g.generateJSON(ctx, "evaluate_answer", fmt.Sprintf(evaluateAnswerPrompt, question, answer))
	if err != nil {
		return mockAnswerEvaluation(), OriginFallback
	}

	var eval model.AnswerEvaluation
	if !unmarshalObject(raw, &eval) {
		g.logger.Warn("evaluate_answer: unparseable response", zap.String("preview", preview(raw)))
		return mockAnswerEvaluation(), OriginFallback
	}
	return eval, OriginModel
}
