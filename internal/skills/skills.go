// Package skills normalizes free-text skill lists and computes the
// matched/missing diff between a candidate's resume and a job posting.
// Matching is pure and intentionally not memoized: job and resume data may
// change between requests, so callers recompute on every read.
package skills

import "strings"

// Tokens treated as noise rather than skills. AI-parsed resumes and
// template-rendered job forms both leak these.
var stopWords = map[string]bool{
	"skill":  true,
	"skills": true,
	"":       true,
}

var placeholderReplacer = strings.NewReplacer("{{", "", "}}", "", "{", "", "}", "")

func clean(s string) string {
	return strings.TrimSpace(placeholderReplacer.Replace(s))
}

func isNoise(s string) bool {
	return stopWords[strings.ToLower(clean(s))]
}

// Normalize splits a comma-separated skill string into cleaned skill names.
// A leading label up to the first colon (e.g. "Skills:") is dropped before
// splitting. Original casing is preserved for display.
func Normalize(raw string) []string {
	if idx := strings.Index(raw, ":"); idx != -1 {
		raw = raw[idx+1:]
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		s := clean(part)
		if isNoise(s) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// NormalizeList cleans an explicit list of skill strings.
func NormalizeList(raw []string) []string {
	var out []string
	for _, part := range raw {
		s := clean(part)
		if isNoise(s) {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Match computes the intersection and the job-minus-resume difference between
// the candidate's skills and the job's comma-separated skill requirements.
// Comparison is case-folded; results carry the job posting's original casing
// and order. When the job list contains case-insensitive duplicates, the
// first occurrence wins and later ones are dropped.
func Match(resumeSkills []string, jobSkillsText string) (matched, missing []string) {
	jobList := Normalize(jobSkillsText)

	resumeSet := make(map[string]bool, len(resumeSkills))
	for _, s := range NormalizeList(resumeSkills) {
		resumeSet[strings.ToLower(s)] = true
	}

	seen := make(map[string]bool, len(jobList))
	for _, skill := range jobList {
		folded := strings.ToLower(skill)
		if seen[folded] {
			continue
		}
		seen[folded] = true
		if resumeSet[folded] {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}

	// Guard against placeholder artifacts surviving normalization.
	filtered := missing[:0]
	for _, skill := range missing {
		if !isNoise(skill) {
			filtered = append(filtered, skill)
		}
	}
	return matched, filtered
}
