package nlp

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkNouns(t *testing.T) {
	tests := []struct {
		name   string
		tokens []Token
		want   []string
	}{
		{
			name: "determiner adjective noun",
			tokens: []Token{
				{"Built", "VBD"}, {"a", "DT"}, {"scalable", "JJ"}, {"data", "NNS"}, {"pipeline", "NN"},
			},
			want: []string{"a scalable data pipeline"},
		},
		{
			name: "trailing adjective dropped",
			tokens: []Token{
				{"the", "DT"}, {"team", "NN"}, {"was", "VBD"}, {"very", "RB"}, {"the", "DT"}, {"best", "JJS"},
			},
			want: []string{"the team"},
		},
		{
			name: "modifier after noun starts new chunk",
			tokens: []Token{
				{"Python", "NNP"}, {"strong", "JJ"}, {"skills", "NNS"},
			},
			want: []string{"Python", "strong skills"},
		},
		{
			name:   "no nouns",
			tokens: []Token{{"quickly", "RB"}, {"ran", "VBD"}},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChunkNouns(tt.tokens))
		})
	}
}

func TestProseParse(t *testing.T) {
	p, err := NewProse()
	require.NoError(t, err)

	doc, err := p.Parse("Experience with Python is required. You will join a small team.\nMust have SQL")
	require.NoError(t, err)

	assert.NotEmpty(t, doc.Tokens)
	assert.NotEmpty(t, doc.NounChunks)
	require.GreaterOrEqual(t, len(doc.Sentences), 2)
	assert.Equal(t, "Must have SQL", doc.Sentences[len(doc.Sentences)-1])
}

func TestProseParseBlank(t *testing.T) {
	p := &Prose{}
	doc, err := p.Parse("   \n")
	require.NoError(t, err)
	assert.Empty(t, doc.Tokens)
	assert.Empty(t, doc.Sentences)
}

func TestProseParseSharedConcurrent(t *testing.T) {
	p, err := NewProse()
	require.NoError(t, err)
	model := p.model
	require.NotNil(t, model)

	const text = "Led a team of five engineers. Shipped Python services to AWS."
	want, err := p.Parse(text)
	require.NoError(t, err)

	const workers = 8
	got := make([]*Document, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i], errs[i] = p.Parse(text)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, want.Sentences, got[i].Sentences)
		assert.Len(t, got[i].Tokens, len(want.Tokens))
	}
	assert.Same(t, model, p.model)
}
