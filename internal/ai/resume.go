package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/talentflow/talentflow/pkg/model"
	"go.uber.org/zap"
)

// Resume text beyond this length adds little and burns quota.
const maxResumePromptLen = 20000

const parseResumePrompt = `Extract the following information from the resume text provided below in JSON format:
- Name
- Email
- Phone
- Skills (as a list)
- Experience (summary)
- Education (summary)

Resume Text:
%s`

// ParseResume extracts structured candidate fields from raw resume text.
func (g *Gateway) ParseResume(ctx context.Context, text string) (model.ResumeProfile, Origin) {
	if !g.live() {
		return mockResumeProfile(), OriginFallback
	}

	if len(text) > maxResumePromptLen {
		text = text[:maxResumePromptLen]
	}

	raw, err := g.generateJSON(ctx, "parse_resume", fmt.Sprintf(parseResumePrompt, text))
	if err != nil {
		return mockResumeProfile(), OriginFallback
	}

	var profile model.ResumeProfile
	if !unmarshalObject(raw, &profile) {
		g.logger.Warn("parse_resume: unparseable response", zap.String("preview", preview(raw)))
		return mockResumeProfile(), OriginFallback
	}
	return profile, OriginModel
}

const analyzeMatchPrompt = `Compare the following resume data with the job description.
Resume: %s
Job Description: %s
Skills the candidate is missing (already computed, use as ground truth): %s

Provide the following in JSON format:
- match_score (0-100)
- skills_matched (list)
- missing_skills (list)
- ai_feedback (string): A detailed analysis of the candidate's fit for the role. MUST be at least 3-4 sentences long, explaining why they are a good or bad match.
- improvement_suggestions (string): Specific, actionable advice on what certifications, technologies, or projects the candidate should pursue to improve their chances.`

// AnalyzeMatch scores a parsed resume against a job description. The
// precomputed missing-skills list is passed as a hint so the model's
// suggestions line up with what the matcher derived.
func (g *Gateway) AnalyzeMatch(ctx context.Context, profile model.ResumeProfile, jobDescription string, missingHint []string) (model.MatchAnalysis, Origin) {
	if !g.live() {
		return mockMatchAnalysis(profile, missingHint), OriginFallback
	}

	profileJSON, err := json.Marshal(profile)
	if err != nil {
		g.logger.Warn("analyze_match: marshal profile", zap.Error(err))
		return mockMatchAnalysis(profile, missingHint), OriginFallback
	}

	prompt := fmt.Sprintf(analyzeMatchPrompt, profileJSON, jobDescription, strings.Join(missingHint, ", "))
	raw, err := g.generateJSON(ctx, "analyze_match", prompt)
	if err != nil {
		return mockMatchAnalysis(profile, missingHint), OriginFallback
	}

	var analysis model.MatchAnalysis
	if !unmarshalObject(raw, &analysis) {
		g.logger.Warn("analyze_match: unparseable response", zap.String("preview", preview(raw)))
		return mockMatchAnalysis(profile, missingHint), OriginFallback
	}
	return analysis, OriginModel
}

func preview(s string) string {
	if len(s) > 200 {
		return s[:200]
	}
	return s
}
