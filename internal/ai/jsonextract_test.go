package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no fences", `{"a":1}`, `{"a":1}`},
		{"plain fences", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"json tag", "```json\n[1,2]\n```", "[1,2]"},
		{"unterminated", "```json\n[1,2]", "[1,2]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripFences(tt.in))
		})
	}
}

func TestUnmarshalArrayBracketScan(t *testing.T) {
	var out []int
	ok := unmarshalArray("The answer is: [1, 2, 3] as requested.", &out)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, out)
}

func TestUnmarshalArrayFenceStrip(t *testing.T) {
	// Bracket scan grabs a malformed slice here; fence stripping recovers.
	var out []string
	ok := unmarshalArray("```json\n[\"a\", \"b\"]\n```", &out)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, out)
}

func TestUnmarshalArrayGivesUp(t *testing.T) {
	var out []string
	assert.False(t, unmarshalArray("no json here", &out))
}

func TestUnmarshalObject(t *testing.T) {
	var out map[string]int
	require.True(t, unmarshalObject("```json\n{\"score\": 9}\n```", &out))
	assert.Equal(t, 9, out["score"])

	require.True(t, unmarshalObject(`Sure! {"score": 5} Hope that helps.`, &out))
	assert.Equal(t, 5, out["score"])

	assert.False(t, unmarshalObject("nothing structured", &out))
}
