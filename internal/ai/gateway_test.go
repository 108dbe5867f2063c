package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentflow/talentflow/pkg/model"
	"go.uber.org/zap"
)

type stubGenerator struct {
	response   string
	err        error
	calls      int
	lastPrompt string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return s.GenerateContent(ctx, prompt)
}

func testGateway(gen contentGenerator) *Gateway {
	return New(Config{
		APIKey:          "test-key",
		QuestionRetries: 3,
		RetryBaseDelay:  time.Millisecond,
	}, gen, zap.NewNop())
}

func TestParseResume(t *testing.T) {
	stub := &stubGenerator{response: `{"Name":"Jane Doe","Email":"jane@example.com","Skills":["Go","SQL"]}`}
	g := testGateway(stub)

	profile, origin := g.ParseResume(context.Background(), "resume text here")

	assert.Equal(t, OriginModel, origin)
	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, []string{"Go", "SQL"}, profile.Skills)
	assert.Contains(t, stub.lastPrompt, "resume text here")
}

func TestParseResumeFallbackOnError(t *testing.T) {
	g := testGateway(&stubGenerator{err: errors.New("quota exceeded")})

	profile, origin := g.ParseResume(context.Background(), "whatever")

	assert.Equal(t, OriginFallback, origin)
	assert.Equal(t, mockResumeProfile(), profile)
}

func TestAnalyzeMatchFallbackUsesHint(t *testing.T) {
	g := testGateway(&stubGenerator{err: errors.New("boom")})

	analysis, origin := g.AnalyzeMatch(context.Background(), mockResumeProfile(), "job desc", []string{"Django", "AWS"})

	assert.Equal(t, OriginFallback, origin)
	assert.Equal(t, []string{"Django", "AWS"}, analysis.MissingSkills)
	assert.GreaterOrEqual(t, analysis.MatchScore, 70)
	assert.LessOrEqual(t, analysis.MatchScore, 95)
	assert.NotEmpty(t, analysis.AIFeedback)
}

func TestInterviewQuestionsPadsShortfall(t *testing.T) {
	stub := &stubGenerator{response: `["Q1","Q2","Q3","Q4","Q5"]`}
	g := testGateway(stub)

	questions, origin := g.InterviewQuestions(context.Background(), mockResumeProfile(), "Backend Engineer")

	assert.Equal(t, OriginModel, origin)
	require.Len(t, questions, 30)
	assert.Equal(t, "Q1", questions[0])
	assert.Equal(t, "Q5", questions[4])
	// Last 25 come from the templated set, aligned by position.
	templated := templatedQuestions("Backend Engineer")
	assert.Equal(t, templated[5:], questions[5:])
}

func TestInterviewQuestionsTruncatesOverage(t *testing.T) {
	var parts []string
	for i := 0; i < 40; i++ {
		parts = append(parts, fmt.Sprintf("%q", fmt.Sprintf("Q%d", i+1)))
	}
	stub := &stubGenerator{response: "[" + strings.Join(parts, ",") + "]"}
	g := testGateway(stub)

	questions, origin := g.InterviewQuestions(context.Background(), mockResumeProfile(), "SRE")

	assert.Equal(t, OriginModel, origin)
	assert.Len(t, questions, 30)
	assert.Equal(t, "Q30", questions[29])
}

func TestInterviewQuestionsRetriesThenFallsBack(t *testing.T) {
	stub := &stubGenerator{err: errors.New("429 rate limited")}
	g := testGateway(stub)

	questions, origin := g.InterviewQuestions(context.Background(), mockResumeProfile(), "Data Engineer")

	assert.Equal(t, OriginFallback, origin)
	assert.Equal(t, 3, stub.calls)
	assert.Len(t, questions, 30)
	assert.Contains(t, questions[10], "Data Engineer")
}

func TestInterviewQuestionsContextCancelled(t *testing.T) {
	stub := &stubGenerator{err: errors.New("unavailable")}
	g := New(Config{APIKey: "k", QuestionRetries: 3, RetryBaseDelay: time.Hour}, stub, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	questions, origin := g.InterviewQuestions(ctx, mockResumeProfile(), "QA Engineer")

	assert.Equal(t, OriginFallback, origin)
	assert.Equal(t, 1, stub.calls, "cancelled context must not keep retrying")
	assert.Len(t, questions, 30)
}

func TestEvaluateAnswer(t *testing.T) {
	stub := &stubGenerator{response: `{"score":8,"feedback":"good","strengths":"depth","improvements":"brevity"}`}
	g := testGateway(stub)

	eval, origin := g.EvaluateAnswer(context.Background(), "What is a goroutine?", "A lightweight thread.")

	assert.Equal(t, OriginModel, origin)
	assert.Equal(t, 8, eval.Score)
	assert.Equal(t, "good", eval.Feedback)
}

func TestEvaluateAnswerFallback(t *testing.T) {
	g := testGateway(&stubGenerator{err: errors.New("down")})

	eval, origin := g.EvaluateAnswer(context.Background(), "q", "a")

	assert.Equal(t, OriginFallback, origin)
	assert.GreaterOrEqual(t, eval.Score, 7)
	assert.LessOrEqual(t, eval.Score, 9)
	assert.NotEmpty(t, eval.Feedback)
}

func TestQuizQuestionsProseWrapped(t *testing.T) {
	stub := &stubGenerator{response: `Here are your questions:
[{"question":"What is Go?","options":["A","B","C","D"],"correct_answer":"A"}]
Good luck!`}
	g := testGateway(stub)

	questions, origin := g.QuizQuestions(context.Background(), "Go", nil)

	assert.Equal(t, OriginModel, origin)
	require.Len(t, questions, 1)
	assert.Equal(t, "What is Go?", questions[0].Question)
}

func TestQuizQuestionsFenced(t *testing.T) {
	stub := &stubGenerator{response: "```json\n[{\"question\":\"Q\",\"options\":[\"A\",\"B\",\"C\",\"D\"],\"correct_answer\":\"B\"}]\n```"}
	g := testGateway(stub)

	questions, origin := g.QuizQuestions(context.Background(), "SQL", nil)

	assert.Equal(t, OriginModel, origin)
	require.Len(t, questions, 1)
	assert.Equal(t, "B", questions[0].CorrectAnswer)
}

func TestQuizQuestionsGarbageFallsBack(t *testing.T) {
	g := testGateway(&stubGenerator{response: "I'm sorry, I cannot help with that."})

	questions, origin := g.QuizQuestions(context.Background(), "Kubernetes", nil)

	assert.Equal(t, OriginFallback, origin)
	require.Len(t, questions, 30)
	assert.Contains(t, questions[0].Question, "Kubernetes")
	assert.Len(t, questions[0].Options, 4)
}

func TestNextInterviewerTurn(t *testing.T) {
	stub := &stubGenerator{response: "Thanks. How would you design a rate limiter?"}
	g := testGateway(stub)

	sess := model.AIInterviewSession{Role: "Backend Engineer", ExperienceLevel: "Senior", TechStack: "Go, Postgres", NumQuestions: 5}
	next, origin := g.NextInterviewerTurn(context.Background(), sess, "AI: Hello\n", 1, "I am ready.", "")

	assert.Equal(t, OriginModel, origin)
	assert.Equal(t, "Thanks. How would you design a rate limiter?", next)
	assert.Contains(t, stub.lastPrompt, "Backend Engineer")
	assert.Contains(t, stub.lastPrompt, "AI: Hello")
	assert.Contains(t, stub.lastPrompt, "1 / 5")
}

func TestNextInterviewerTurnFallbackRotates(t *testing.T) {
	g := testGateway(&stubGenerator{err: errors.New("down")})
	sess := model.AIInterviewSession{NumQuestions: 5}

	first, origin := g.NextInterviewerTurn(context.Background(), sess, "", 0, "hi", "")
	assert.Equal(t, OriginFallback, origin)
	assert.Equal(t, mockNextQuestion, first)

	second, _ := g.NextInterviewerTurn(context.Background(), sess, "AI: "+first+"\n", 1, "ok", "")
	assert.Equal(t, mockNextQuestionAlt, second)
}

func TestDetailedFeedbackFallback(t *testing.T) {
	g := testGateway(&stubGenerator{err: errors.New("down")})

	feedback, origin := g.DetailedFeedback(context.Background(), "AI: hi\nCandidate: hello\n", "DevOps Engineer")

	assert.Equal(t, OriginFallback, origin)
	assert.Equal(t, 82.5, feedback.OverallScore)
	assert.Contains(t, feedback.DetailedFeedback["Technical Knowledge"], "DevOps Engineer")
}

func TestMockModeBypassesGenerator(t *testing.T) {
	stub := &stubGenerator{response: `{"Name":"Real"}`}
	g := New(Config{APIKey: "key", MockMode: true}, stub, zap.NewNop())

	_, origin := g.ParseResume(context.Background(), "text")

	assert.Equal(t, OriginFallback, origin)
	assert.Zero(t, stub.calls)
}

func TestNoCredentialFallsBack(t *testing.T) {
	g, err := NewWithGemini(context.Background(), Config{APIKey: placeholderKey}, zap.NewNop())
	require.NoError(t, err)

	profile, origin := g.ParseResume(context.Background(), "text")
	assert.Equal(t, OriginFallback, origin)
	assert.Equal(t, mockResumeProfile(), profile)
}

func TestInterviewFinished(t *testing.T) {
	assert.True(t, InterviewFinished("Thank you for your time. The interview is now complete."))
	assert.True(t, InterviewFinished("the INTERVIEW IS COMPLETE"))
	// Models paraphrase the closing line; any thank-you ends the session.
	assert.True(t, InterviewFinished("Thank you for joining today, we'll be in touch."))
	assert.False(t, InterviewFinished("Tell me about a project you led."))
}
