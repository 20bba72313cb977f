package suggestions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSectionResponse(t *testing.T) {
	raw := "```json\n" + `{
  "suggestions": ["Lead with outcomes", " "],
  "missing_keywords": ["kubernetes"],
  "impact_suggestions": ["Quantify latency gains"],
  "extra": {"ignored": true},
  "alignment_with_job_requirements": {
    "5+ years of Go": true,
    "Kubernetes": false,
    "On-call": "yes",
    "Travel": null
  }
}` + "\n```"

	got := parseSectionResponse("experience", raw)

	assert.Equal(t, "experience", got.Section)
	assert.Empty(t, got.Error)
	assert.Equal(t, []string{"Lead with outcomes"}, got.KeyImprovements)
	assert.Equal(t, []string{"kubernetes"}, got.MissingKeywords)
	assert.Equal(t, []string{"Quantify latency gains"}, got.ImpactSuggestions)
	assert.Equal(t, []RequirementCheck{
		{Requirement: "5+ years of Go", Status: AlignmentMet},
		{Requirement: "Kubernetes", Status: AlignmentNotMet},
		{Requirement: "On-call", Status: AlignmentMet},
		{Requirement: "Travel", Status: AlignmentUnknown},
	}, got.Requirements)
}

func TestParseSectionResponseArrayAlignment(t *testing.T) {
	raw := `{"alignment_with_job_requirements":[{"requirement":"SQL","met":true},{"requirement":"Go","met":"no"}]}`
	got := parseSectionResponse("content", raw)

	require.Len(t, got.Requirements, 2)
	assert.Equal(t, AlignmentMet, got.Requirements[0].Status)
	assert.Equal(t, AlignmentNotMet, got.Requirements[1].Status)
}

func TestParseSectionResponseFreeform(t *testing.T) {
	got := parseSectionResponse("content", "  Tighten the wording of your bullets.  ")
	assert.Equal(t, []string{"Tighten the wording of your bullets."}, got.KeyImprovements)
	assert.Empty(t, got.Error)
}

func TestParseSectionResponseInvalidJSON(t *testing.T) {
	got := parseSectionResponse("content", `{"suggestions": ["a", }`)
	require.Len(t, got.KeyImprovements, 1)
	assert.Contains(t, got.KeyImprovements[0], "Error analyzing section: ")
	assert.NotEmpty(t, got.Error)
}

func TestParseSectionResponseWrongType(t *testing.T) {
	got := parseSectionResponse("content", `{"suggestions": "not a list"}`)
	require.Len(t, got.KeyImprovements, 1)
	assert.Contains(t, got.KeyImprovements[0], "Error analyzing section: ")
}

func TestStripFences(t *testing.T) {
	tests := map[string]string{
		"```json\n{}\n```": "{}",
		"```\n{}```":       "{}",
		"  {}  ":           "{}",
		"plain":            "plain",
	}
	for in, want := range tests {
		assert.Equal(t, want, stripFences(in), in)
	}
}

func TestAlignmentStatusJSON(t *testing.T) {
	data, err := AlignmentNotMet.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"not_met"`, string(data))

	var s AlignmentStatus
	require.NoError(t, s.UnmarshalJSON([]byte(`"met"`)))
	assert.Equal(t, AlignmentMet, s)
	assert.Error(t, s.UnmarshalJSON([]byte(`"maybe"`)))
}

func TestSplitSections(t *testing.T) {
	assert.Nil(t, SplitSections(" \n "))
	assert.Equal(t, []Section{{Name: "content", Content: "Go dev"}}, SplitSections("Go dev"))
}
