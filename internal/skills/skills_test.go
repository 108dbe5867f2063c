package skills

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "placeholders and noise words stripped",
			in:   "Python, {{Django}}, SQL, Skills",
			want: []string{"Python", "Django", "SQL"},
		},
		{
			name: "label prefix dropped",
			in:   "Skills: Go, Postgres",
			want: []string{"Go", "Postgres"},
		},
		{
			name: "empty entries dropped",
			in:   "Go,, ,Redis",
			want: []string{"Go", "Redis"},
		},
		{
			name: "single brace artifacts",
			in:   "{ React }, Vue",
			want: []string{"React", "Vue"},
		},
		{
			name: "empty input",
			in:   "",
			want: nil,
		},
		{
			name: "only noise",
			in:   "skill, SKILLS",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeList(t *testing.T) {
	got := NormalizeList([]string{"Python", "{{Django}}", "  SQL ", "skills", ""})
	assert.Equal(t, []string{"Python", "Django", "SQL"}, got)
}

func TestMatch(t *testing.T) {
	matched, missing := Match([]string{"Python", "SQL"}, "Python, Django, SQL")
	assert.Equal(t, []string{"Python", "SQL"}, matched)
	assert.Equal(t, []string{"Django"}, missing)
}

func TestMatchCaseFolded(t *testing.T) {
	matched, missing := Match([]string{"python", "REACT"}, "Python, React, Docker")
	// Job posting's casing wins.
	assert.Equal(t, []string{"Python", "React"}, matched)
	assert.Equal(t, []string{"Docker"}, missing)
}

func TestMatchDuplicateJobSkills(t *testing.T) {
	// First occurrence in the job list wins; later differently-cased
	// duplicates are dropped entirely.
	matched, missing := Match([]string{"go"}, "Go, GO, Rust")
	assert.Equal(t, []string{"Go"}, matched)
	assert.Equal(t, []string{"Rust"}, missing)
}

func TestMatchPartitionsJobSet(t *testing.T) {
	resume := []string{"Python", "Kubernetes", "Terraform"}
	jobText := "Skills: Python, {{Django}}, SQL, Kubernetes, skills, AWS"

	matched, missing := Match(resume, jobText)

	folded := make(map[string]bool)
	for _, s := range matched {
		folded[strings.ToLower(s)] = true
	}
	for _, s := range missing {
		require.False(t, folded[strings.ToLower(s)], "matched and missing must be disjoint: %s", s)
		folded[strings.ToLower(s)] = true
	}

	// Union equals the normalized job set.
	for _, s := range Normalize(jobText) {
		assert.True(t, folded[strings.ToLower(s)], "job skill %q missing from union", s)
	}
	assert.Len(t, folded, len(Normalize(jobText)))
}

func TestMatchEmptyInputs(t *testing.T) {
	matched, missing := Match(nil, "")
	assert.Empty(t, matched)
	assert.Empty(t, missing)

	matched, missing = Match(nil, "Go, Rust")
	assert.Empty(t, matched)
	assert.Equal(t, []string{"Go", "Rust"}, missing)
}
