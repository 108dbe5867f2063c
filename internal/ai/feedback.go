package ai

import (
	"context"
	"fmt"

	"github.com/talentflow/talentflow/pkg/model"
	"go.uber.org/zap"
)

const detailedFeedbackPrompt = `Analyze the following interview transcript for a %s position.

Transcript:
%s

Provide a detailed evaluation in JSON format with the following structure:
{
    "communication_score": (0-100),
    "technical_score": (0-100),
    "problem_solving_score": (0-100),
    "cultural_fit_score": (0-100),
    "confidence_score": (0-100),
    "clarity_score": (0-100),
    "overall_score": (0-100),
    "feedback_summary": "Short 2-3 sentence summary",
    "detailed_feedback": {
        "Communication": "...",
        "Technical Knowledge": "...",
        "Problem Solving": "...",
        "Cultural Fit": "...",
        "Confidence": "...",
        "Clarity": "..."
    }
}`

// DetailedFeedback synthesizes six sub-scores, an overall score and a summary
// from a full interview transcript.
func (g *Gateway) DetailedFeedback(ctx context.Context, transcript, role string) (model.InterviewFeedback, Origin) {
	if !g.live() {
		return mockInterviewFeedback(role), OriginFallback
	}

	raw, err := g.generateJSON(ctx, "detailed_feedback", fmt.Sprintf(detailedFeedbackPrompt, role, transcript))
	if err != nil {
		return mockInterviewFeedback(role), OriginFallback
	}

	var feedback model.InterviewFeedback
	if !unmarshalObject(raw, &feedback) {
		g.logger.Warn("detailed_feedback: unparseable response", zap.String("preview", preview(raw)))
		return mockInterviewFeedback(role), OriginFallback
	}
	return feedback, OriginModel
}
