package analyses

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-matcher/internal/formatting"
	"resume-matcher/internal/llm"
)

func TestScoreExample(t *testing.T) {
	s := newTestScorer(nil, linePipeline{})

	got, err := s.Score(context.Background(),
		"Python and Java developer",
		"We build payment APIs.\nRequired: Python, SQL and Docker.\nExperience with cloud platforms")
	require.NoError(t, err)

	assert.Equal(t, []string{"python"}, got.MatchingSkills)
	assert.Equal(t, []string{"sql", "docker"}, got.MissingSkills)
	assert.Equal(t, []string{"Required: Python, SQL and Docker.", "Experience with cloud platforms"}, got.KeyRequirements)
	assert.Equal(t, formatting.ExpectedSections, got.MissingSections)
	assert.InDelta(t, 68.0, got.ATSScore, 1e-9)
	assert.Greater(t, got.MatchScore, 0.0)
	assert.LessOrEqual(t, got.MatchScore, 1.0)
}

func TestScorePerfectATS(t *testing.T) {
	resume := "Summary\nExperience\nEducation\nSkills: Python, SQL\nProjects"
	got, err := newTestScorer(nil, linePipeline{}).Score(context.Background(), resume, "Python and SQL")
	require.NoError(t, err)

	assert.Empty(t, got.FormattingIssues)
	assert.Empty(t, got.MissingSections)
	assert.InDelta(t, 100.0, got.ATSScore, 1e-9)
}

func TestScoreEmptyInputs(t *testing.T) {
	got, err := newTestScorer(failingEmbedder{err: errors.New("must not embed")}, linePipeline{}).
		Score(context.Background(), "", "")
	require.NoError(t, err)

	assert.Zero(t, got.MatchScore)
	assert.Empty(t, got.MatchingSkills)
	assert.Empty(t, got.MissingSkills)
	assert.GreaterOrEqual(t, got.ATSScore, 0.0)
	assert.LessOrEqual(t, got.ATSScore, 100.0)
}

func TestScoreEmbeddingError(t *testing.T) {
	rl := &llm.RateLimitError{Provider: "gemini", Err: errors.New("429")}
	_, err := newTestScorer(failingEmbedder{err: rl}, linePipeline{}).
		Score(context.Background(), "python", "python")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModel)
	assert.ErrorIs(t, err, rl)
}

func TestScorePipelineError(t *testing.T) {
	_, err := newTestScorer(nil, linePipeline{err: errors.New("tagger crashed")}).
		Score(context.Background(), "python", "python")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrModel)
	assert.Contains(t, err.Error(), "tagger crashed")
}
