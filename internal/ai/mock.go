package ai

import (
	"fmt"
	"math/rand/v2"

	"github.com/talentflow/talentflow/pkg/model"
)

// Synthetic values returned when the remote service is disabled or
// unavailable. Shapes match the real operations exactly so the rest of the
// system is fully exercisable offline.

func mockResumeProfile() model.ResumeProfile {
	return model.ResumeProfile{
		Name:       "Sample Candidate",
		Email:      "candidate@example.com",
		Phone:      "123-456-7890",
		Skills:     []string{"Python", "Django", "SQL", "HTML", "CSS"},
		Experience: "3 years of web development",
		Education:  "B.S. Computer Science",
	}
}

func mockMatchAnalysis(profile model.ResumeProfile, missingHint []string) model.MatchAnalysis {
	matched := profile.Skills
	if len(matched) > 3 {
		matched = matched[:3]
	}
	missing := missingHint
	if len(missing) == 0 {
		missing = []string{"Docker", "Kubernetes", "Cloud Deployment"}
	}
	return model.MatchAnalysis{
		MatchScore:    70 + rand.IntN(26), // 70-95
		SkillsMatched: matched,
		MissingSkills: missing,
		AIFeedback: "The candidate shows a strong foundation in the core technologies " +
			"required for this role. However, their experience with some of the " +
			"required tooling seems limited compared to the job requirements. To " +
			"become a top-tier candidate, they should focus on demonstrating " +
			"practical experience with the missing skills in a production environment.",
		ImprovementSuggestions: "Dimensions to improve: 1. Master the missing " +
			"technologies listed above. 2. Obtain a relevant professional " +
			"certification. 3. Contribute to open-source projects that exercise " +
			"these skills.",
	}
}

// templatedQuestions is the deterministic 30-question fallback set:
// 10 aptitude, 10 technical, 10 behavioral.
func templatedQuestions(jobTitle string) []string {
	out := make([]string, 0, questionCount)
	for i := 1; i <= 10; i++ {
		out = append(out, fmt.Sprintf("Aptitude Q%d: Logical reasoning question regarding data interpretation.", i))
	}
	for i := 1; i <= 10; i++ {
		out = append(out, fmt.Sprintf("Technical Q%d: What is your experience with specific technology related to %s?", i, jobTitle))
	}
	for i := 1; i <= 10; i++ {
		out = append(out, fmt.Sprintf("Behavioral Q%d: Describe a situation where you had to solve a team conflict.", i))
	}
	return out
}

func mockAnswerEvaluation() model.AnswerEvaluation {
	return model.AnswerEvaluation{
		Score:        7 + rand.IntN(3), // 7-9
		Feedback:     "Excellent response. You showed deep technical knowledge.",
		Strengths:    "Clear explanation, good use of terminology.",
		Improvements: "Could be more concise in the middle section.",
	}
}

func mockQuizQuestions(topic string) []model.QuizQuestion {
	out := make([]model.QuizQuestion, 0, quizCount)
	for i := 1; i <= quizCount; i++ {
		out = append(out, model.QuizQuestion{
			Question: fmt.Sprintf("Question %d: What is a core concept related to %s that every professional should know?", i, topic),
			Options: []string{
				fmt.Sprintf("Concept A for %s", topic),
				fmt.Sprintf("Concept B for %s", topic),
				fmt.Sprintf("Concept C for %s", topic),
				fmt.Sprintf("Concept D for %s", topic),
			},
			CorrectAnswer: fmt.Sprintf("Concept A for %s", topic),
		})
	}
	return out
}

const mockNextQuestion = "I see. Based on your background, can you describe a challenging technical problem you solved recently?"

// mockNextQuestionAlt avoids extreme repetition when the primary fallback has
// already been used in this session.
const mockNextQuestionAlt = "Moving on, how do you handle tight deadlines and technical debt?"

func mockInterviewFeedback(role string) model.InterviewFeedback {
	return model.InterviewFeedback{
		CommunicationScore:  85,
		TechnicalScore:      80,
		ProblemSolvingScore: 75,
		CulturalFitScore:    90,
		ConfidenceScore:     85,
		ClarityScore:        80,
		OverallScore:        82.5,
		FeedbackSummary: "The candidate demonstrated strong communication skills and a " +
			"good understanding of core concepts. Technical depth could be improved in some areas.",
		DetailedFeedback: map[string]string{
			"Communication":       "Clear and concise delivery.",
			"Technical Knowledge": fmt.Sprintf("Solid grasp of %s fundamentals.", role),
			"Problem Solving":     "Structured approach to challenges.",
			"Cultural Fit":        "Values align well with standard professional environments.",
			"Confidence":          "Articulated thoughts with poise.",
			"Clarity":             "Explained complex ideas efficiently.",
		},
	}
}
