package suggestions

import (
	"context"
	"fmt"
	"strings"

	"resume-matcher/internal/llm"
	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/telemetry"
)

// AI generates suggestions with a text-generation model. The generator is
// expected to already carry retry behaviour (see llm.Retrier).
type AI struct {
	gen llm.Generator
}

// NewAI constructs an AI suggester over gen.
func NewAI(gen llm.Generator) *AI {
	return &AI{gen: gen}
}

// SkillSuggestion returns advice for demonstrating skill, or a generic hint
// if generation fails.
func (a *AI) SkillSuggestion(ctx context.Context, skill, job string) string {
	text, err := a.gen.Generate(ctx, buildSkillPrompt(skill, job))
	if err != nil || strings.TrimSpace(text) == "" {
		metrics.IncSuggestionFallback()
		logFailure("skill suggestion failed", err, map[string]any{"skill": skill})
		return fmt.Sprintf("Consider adding practical experience with %s in a measurable way", skill)
	}
	return strings.TrimSpace(text)
}

// ProfessionalSummary returns a markdown summary tailored to job.
func (a *AI) ProfessionalSummary(ctx context.Context, resume, job string) string {
	text, err := a.gen.Generate(ctx, buildSummaryPrompt(resume, job))
	if err != nil {
		metrics.IncSuggestionFallback()
		logFailure("summary generation failed", err, nil)
		return "Error generating summary: " + err.Error()
	}
	return strings.TrimSpace(text)
}

// AnalyzeSection asks the model for structured suggestions on one section.
func (a *AI) AnalyzeSection(ctx context.Context, section Section, job string) SectionAnalysis {
	text, err := a.gen.Generate(ctx, buildSectionPrompt(section.Content, job))
	if err != nil {
		metrics.IncSuggestionFallback()
		logFailure("section analysis failed", err, map[string]any{"section": section.Name})
		return sectionFailure(section.Name, err)
	}
	return parseSectionResponse(section.Name, text)
}

// ImproveBullet rewrites bullet for job. The original is kept on failure.
func (a *AI) ImproveBullet(ctx context.Context, bullet, job string) BulletRewrite {
	text, err := a.gen.Generate(ctx, buildBulletPrompt(bullet, job))
	if err != nil {
		return BulletRewrite{Original: bullet, Improved: bullet, Error: err.Error()}
	}
	improved := strings.Trim(strings.TrimSpace(text), `"`)
	if improved == "" {
		improved = bullet
	}
	return BulletRewrite{Original: bullet, Improved: improved}
}

func logFailure(msg string, err error, fields map[string]any) {
	entry := map[string]any{"outcome": llm.Classify(err).String()}
	if err != nil {
		entry["error"] = err.Error()
	}
	for k, v := range fields {
		entry[k] = v
	}
	telemetry.Error(msg, entry)
}

var _ Suggester = (*AI)(nil)
