package analyses

import (
	"context"
	"fmt"
	"strings"

	"resume-matcher/internal/embedding"
	"resume-matcher/internal/formatting"
	"resume-matcher/internal/skills"
)

// Scorer computes AnalysisResults. It holds no per-call state and is safe for
// concurrent use when its collaborators are.
type Scorer struct {
	embedder  embedding.Embedder
	extractor *skills.Extractor
}

// NewScorer constructs a Scorer.
func NewScorer(embedder embedding.Embedder, extractor *skills.Extractor) *Scorer {
	return &Scorer{embedder: embedder, extractor: extractor}
}

// Score compares resumeText with jobText. Embedding and NLP failures are
// returned wrapped in ErrModel.
func (s *Scorer) Score(ctx context.Context, resumeText, jobText string) (AnalysisResult, error) {
	similarity, err := s.similarity(ctx, resumeText, jobText)
	if err != nil {
		return AnalysisResult{}, err
	}

	jobSkills, jobDoc, err := s.extractor.ExtractWithDocument(jobText)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("%w: job description: %w", ErrModel, err)
	}
	resumeSkills, err := s.extractor.Extract(resumeText)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("%w: resume: %w", ErrModel, err)
	}

	matching, missing := MatchSkills(resumeSkills, jobSkills)
	format := formatting.Analyze(resumeText)
	ratio := KeywordMatchRatio(resumeSkills, jobSkills)

	return AnalysisResult{
		MatchScore:       similarity,
		ATSScore:         ATSScore(len(format.FormattingIssues), len(format.MissingSections), ratio),
		MatchingSkills:   matching,
		MissingSkills:    missing,
		KeyRequirements:  KeyRequirements(jobDoc.Sentences),
		FormattingIssues: format.FormattingIssues,
		MissingSections:  format.MissingSections,
		BulletCount:      format.BulletCount,
	}, nil
}

// similarity is the cosine similarity of the two embeddings. Blank text has
// nothing to embed and scores 0.
func (s *Scorer) similarity(ctx context.Context, resumeText, jobText string) (float64, error) {
	if strings.TrimSpace(resumeText) == "" || strings.TrimSpace(jobText) == "" {
		return 0, nil
	}
	resumeVec, err := s.embedder.Embed(ctx, resumeText)
	if err != nil {
		return 0, fmt.Errorf("%w: embed resume: %w", ErrModel, err)
	}
	jobVec, err := s.embedder.Embed(ctx, jobText)
	if err != nil {
		return 0, fmt.Errorf("%w: embed job description: %w", ErrModel, err)
	}
	sim, err := embedding.Cosine(resumeVec, jobVec)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrModel, err)
	}
	return sim, nil
}
