package nlp

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jdkato/prose/v2"
)

const proseModelName = "en-v2.0.0"

// Prose is a Pipeline backed by github.com/jdkato/prose/v2 (averaged
// perceptron tagger, punkt-style segmenter and its NER model).
//
// The tagger and entity model are loaded once and shared by every Parse.
type Prose struct {
	mu    sync.Mutex
	model *prose.Model
}

// NewProse loads the prose models and verifies they parse.
func NewProse() (*Prose, error) {
	p := &Prose{model: prose.ModelFromData(proseModelName)}
	if _, err := p.Parse("Warm up the models."); err != nil {
		return nil, fmt.Errorf("load prose models: %w", err)
	}
	return p, nil
}

// Parse tokenizes, tags, segments and extracts entities from text.
// It is safe for concurrent use.
func (p *Prose) Parse(text string) (*Document, error) {
	if strings.TrimSpace(text) == "" {
		return &Document{}, nil
	}

	p.mu.Lock()
	if p.model == nil {
		p.model = prose.ModelFromData(proseModelName)
	}
	doc, err := prose.NewDocument(text, prose.UsingModel(p.model))
	p.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("nlp parse: %w", err)
	}

	out := &Document{}
	for _, tok := range doc.Tokens() {
		out.Tokens = append(out.Tokens, Token{Text: tok.Text, Tag: tok.Tag})
	}
	for _, ent := range doc.Entities() {
		out.Entities = append(out.Entities, Entity{Text: ent.Text, Label: ent.Label})
	}
	for _, sent := range doc.Sentences() {
		// list items and headings arrive newline-separated without punctuation
		for _, line := range strings.Split(sent.Text, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				out.Sentences = append(out.Sentences, line)
			}
		}
	}
	out.NounChunks = ChunkNouns(out.Tokens)
	return out, nil
}

var _ Pipeline = (*Prose)(nil)
