package analyses

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"resume-matcher/internal/report"
	"resume-matcher/internal/shared/metrics"
	"resume-matcher/internal/shared/telemetry"
	"resume-matcher/internal/suggestions"
)

const (
	defaultConcurrency = 4
	maxBulletRewrites  = 3
)

// Service runs the full analysis: scoring, suggestions and the report.
type Service struct {
	Scorer    *Scorer
	Suggester suggestions.Suggester
	Mode      SuggestionMode
	// Concurrency bounds parallel suggestion calls.
	Concurrency int
}

// Analyze scores in against its job description and gathers suggestions.
// Only input and scoring failures are returned; suggestion failures are
// reported inline in the outcome.
func (s *Service) Analyze(ctx context.Context, in Input) (Outcome, error) {
	if strings.TrimSpace(in.JobDescription) == "" {
		return Outcome{}, ErrEmptyJobDescription
	}
	if strings.TrimSpace(in.ResumeText) == "" {
		return Outcome{}, ErrEmptyResume
	}

	startedAt := time.Now()
	out := Outcome{ID: uuid.NewString(), Mode: s.Mode}
	metrics.IncAnalysisStarted()
	telemetry.Info("analysis.status", map[string]any{
		"request_id":  in.RequestID,
		"analysis_id": out.ID,
		"mode":        string(s.Mode),
		"status":      "processing",
	})

	result, err := s.Scorer.Score(ctx, in.ResumeText, in.JobDescription)
	if err != nil {
		metrics.IncAnalysisFailed()
		metrics.ObserveAnalysisDurationMs(metrics.SinceMillis(startedAt))
		telemetry.Error("analysis.status", map[string]any{
			"request_id":  in.RequestID,
			"analysis_id": out.ID,
			"status":      "failed",
			"error":       sanitizeError(err),
		})
		return Outcome{}, err
	}
	out.Analysis = result

	out.Summary = s.Suggester.ProfessionalSummary(ctx, in.ResumeText, in.JobDescription)
	out.SkillSuggestions = s.skillSuggestions(ctx, result.MissingSkills, in.JobDescription)
	out.Sections = s.sectionAnalyses(ctx, in.ResumeText, in.JobDescription)
	out.Report = report.Render(report.Document{
		Overview:         result.Overview(),
		Summary:          out.Summary,
		SkillSuggestions: out.SkillSuggestions,
		Sections:         out.Sections,
	})

	out.DurationMs = metrics.SinceMillis(startedAt)
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(out.DurationMs)
	telemetry.Info("analysis.status", map[string]any{
		"request_id":     in.RequestID,
		"analysis_id":    out.ID,
		"status":         "completed",
		"match_score":    result.MatchScore,
		"ats_score":      result.ATSScore,
		"missing_skills": len(result.MissingSkills),
		"duration_ms":    out.DurationMs,
	})
	return out, nil
}

// skillSuggestions fans out one call per missing skill and returns the
// results in missing-skill order.
func (s *Service) skillSuggestions(ctx context.Context, missing []string, job string) []suggestions.SkillSuggestion {
	out := make([]suggestions.SkillSuggestion, len(missing))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())
	for i, skill := range missing {
		g.Go(func() error {
			out[i] = suggestions.SkillSuggestion{
				Skill:      skill,
				Suggestion: s.Suggester.SkillSuggestion(gctx, skill, job),
			}
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (s *Service) sectionAnalyses(ctx context.Context, resume, job string) []suggestions.SectionAnalysis {
	sections := suggestions.SplitSections(resume)
	out := make([]suggestions.SectionAnalysis, 0, len(sections))
	for _, section := range sections {
		analysis := s.Suggester.AnalyzeSection(ctx, section, job)
		// the template suggester already rewrites every bullet in AnalyzeSection
		if s.Mode == ModeAI && len(analysis.ImprovedBullets) == 0 && analysis.Error == "" {
			analysis.ImprovedBullets = s.rewriteBullets(ctx, section.Content, job)
		}
		out = append(out, analysis)
	}
	return out
}

// rewriteBullets improves the first few bullets of a section, keeping only
// the ones that changed.
func (s *Service) rewriteBullets(ctx context.Context, content, job string) []suggestions.BulletRewrite {
	bullets := suggestions.BulletLines(content)
	if len(bullets) > maxBulletRewrites {
		bullets = bullets[:maxBulletRewrites]
	}
	rewrites := make([]suggestions.BulletRewrite, len(bullets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())
	for i, bullet := range bullets {
		g.Go(func() error {
			rewrites[i] = s.Suggester.ImproveBullet(gctx, bullet, job)
			return nil
		})
	}
	_ = g.Wait()

	var out []suggestions.BulletRewrite
	for _, r := range rewrites {
		if r.Error == "" && r.Improved != r.Original {
			out = append(out, r)
		}
	}
	return out
}

func (s *Service) concurrency() int {
	if s.Concurrency <= 0 {
		return defaultConcurrency
	}
	return s.Concurrency
}
