package analyses

import (
	"context"
	"strings"
	"sync"

	"resume-matcher/internal/embedding"
	"resume-matcher/internal/nlp"
	"resume-matcher/internal/skills"
	"resume-matcher/internal/suggestions"
)

// linePipeline treats every non-blank line as a sentence and finds nothing else.
type linePipeline struct {
	err error
}

func (p linePipeline) Parse(text string) (*nlp.Document, error) {
	if p.err != nil {
		return nil, p.err
	}
	doc := &nlp.Document{}
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			doc.Sentences = append(doc.Sentences, trimmed)
		}
	}
	return doc, nil
}

type failingEmbedder struct {
	err error
}

func (f failingEmbedder) Embed(context.Context, string) ([]float32, error) {
	return nil, f.err
}

func newTestScorer(e embedding.Embedder, p nlp.Pipeline) *Scorer {
	if e == nil {
		e = embedding.NewHashing(64)
	}
	return NewScorer(e, skills.NewExtractor(p))
}

// recordingSuggester returns canned suggestions and records what it was asked.
type recordingSuggester struct {
	mu       sync.Mutex
	skills   []string
	bullets  []string
	sections []suggestions.Section
}

func (r *recordingSuggester) SkillSuggestion(_ context.Context, skill, _ string) string {
	r.mu.Lock()
	r.skills = append(r.skills, skill)
	r.mu.Unlock()
	return "practice " + skill
}

func (r *recordingSuggester) ProfessionalSummary(context.Context, string, string) string {
	return "**Strong** candidate."
}

func (r *recordingSuggester) AnalyzeSection(_ context.Context, section suggestions.Section, _ string) suggestions.SectionAnalysis {
	r.mu.Lock()
	r.sections = append(r.sections, section)
	r.mu.Unlock()
	return suggestions.SectionAnalysis{
		Section:         section.Name,
		KeyImprovements: []string{"Add metrics"},
		Requirements: []suggestions.RequirementCheck{
			{Requirement: "Python", Status: suggestions.AlignmentMet},
		},
	}
}

func (r *recordingSuggester) ImproveBullet(_ context.Context, bullet, _ string) suggestions.BulletRewrite {
	r.mu.Lock()
	r.bullets = append(r.bullets, bullet)
	r.mu.Unlock()
	return suggestions.BulletRewrite{Original: bullet, Improved: bullet + " (improved)"}
}
