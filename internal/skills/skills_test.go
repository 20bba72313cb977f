package skills

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-matcher/internal/nlp"
)

type fakePipeline struct {
	doc   *nlp.Document
	err   error
	calls int
}

func (f *fakePipeline) Parse(string) (*nlp.Document, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.doc, nil
}

func TestExtractEmptyText(t *testing.T) {
	p := &fakePipeline{doc: &nlp.Document{}}
	got, err := NewExtractor(p).Extract("  ")
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0, p.calls)
}

func TestExtractCombinesSources(t *testing.T) {
	p := &fakePipeline{doc: &nlp.Document{
		Entities: []nlp.Entity{
			{Text: "Google", Label: "ORG"},
			{Text: "Jane Doe", Label: "PERSON"},
			{Text: "Berlin", Label: "GPE"},
		},
		NounChunks: []string{"  Distributed Systems ", "5 years", "it", "google"},
	}}

	text := "Jane Doe worked at Google in Berlin on distributed systems with Python and Docker for 5 years."
	got, err := NewExtractor(p).Extract(text)
	require.NoError(t, err)

	assert.Equal(t, []string{"google", "berlin", "distributed systems", "python", "docker"}, got)
}

func TestExtractIsIdempotent(t *testing.T) {
	p := &fakePipeline{doc: &nlp.Document{NounChunks: []string{"the backend team"}}}
	e := NewExtractor(p)
	text := "The backend team uses Kubernetes, SQL and React."

	first, err := e.Extract(text)
	require.NoError(t, err)
	second, err := e.Extract(text)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "kubernetes")
	assert.Contains(t, first, "sql")
	assert.Contains(t, first, "react")
}

func TestExtractPropagatesPipelineError(t *testing.T) {
	p := &fakePipeline{err: errors.New("model unavailable")}
	_, err := NewExtractor(p).Extract("python")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model unavailable")
}

func TestFromDocumentDropsShortAndDuplicates(t *testing.T) {
	doc := &nlp.Document{NounChunks: []string{"Go", "AI", "SQL", "sql", "Sql "}}
	got := FromDocument("", doc)
	assert.Equal(t, []string{"sql"}, got)
}

func TestExtractWithDocument(t *testing.T) {
	doc := &nlp.Document{Sentences: []string{"Python is required."}}
	p := &fakePipeline{doc: doc}

	got, gotDoc, err := NewExtractor(p).ExtractWithDocument("Python is required.")
	require.NoError(t, err)
	assert.Equal(t, []string{"python"}, got)
	assert.Same(t, doc, gotDoc)

	_, blank, err := NewExtractor(p).ExtractWithDocument("")
	require.NoError(t, err)
	assert.NotNil(t, blank)
	assert.Equal(t, 1, p.calls)
}
