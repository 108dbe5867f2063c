package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/talentflow/talentflow/pkg/model"
)

const nextQuestionPrompt = `You are an expert AI Interviewer for a %s position (%s level).
Tech Stack: %s.

Session Progress: %d / %d questions asked.

Recent Transcript:
%s

Candidate's Response: "%s"
%s
Task:
1. Acknowledge the response briefly.
2. Ask a NEW, distinct question related to the role and tech stack.
3. DO NOT repeat questions already in the transcript.
4. If %d questions have been asked, say: "Thank you for your time. The interview is now complete."
5. Provide only the text for the interviewer to speak.`

// NextInterviewerTurn produces the interviewer's next utterance. The full
// rendered transcript rides along in the prompt so the model does not repeat
// itself; asked is the number of AI turns so far. Optional code the candidate
// wrote in the shared editor is appended for context.
func (g *Gateway) NextInterviewerTurn(ctx context.Context, sess model.AIInterviewSession, transcript string, asked int, reply, code string) (string, Origin) {
	if !g.live() {
		return fallbackNextQuestion(transcript), OriginFallback
	}

	codeBlock := ""
	if code != "" {
		codeBlock = fmt.Sprintf("\nCandidate's Current Code:\n%s\n", code)
	}

	prompt := fmt.Sprintf(nextQuestionPrompt,
		sess.Role, sess.ExperienceLevel, sess.TechStack,
		asked, sess.NumQuestions,
		transcript, reply, codeBlock,
		sess.NumQuestions,
	)

	raw, err := g.gen.GenerateContent(ctx, prompt)
	if err != nil {
		g.logger.Warn("next_interviewer_turn: " + err.Error())
		return fallbackNextQuestion(transcript), OriginFallback
	}
	return strings.TrimSpace(raw), OriginModel
}

func fallbackNextQuestion(transcript string) string {
	// Rotate to a second canned question once the first has been used, so a
	// fully offline session is not a loop of one sentence.
	if strings.Contains(transcript, mockNextQuestion) {
		return mockNextQuestionAlt
	}
	return mockNextQuestion
}

// InterviewFinished reports whether an interviewer utterance closes the
// conversation. The prompt instructs the model to emit a fixed phrase, but
// models paraphrase; any thank-you counts as a goodbye.
func InterviewFinished(utterance string) bool {
	lower := strings.ToLower(utterance)
	return strings.Contains(lower, "interview is complete") ||
		strings.Contains(lower, "interview is now complete") ||
		strings.Contains(lower, "thank you")
}
