package suggestions

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"resume-matcher/internal/nlp"
)

const (
	maxTemplateKeywords = 5
	maxTemplateSkills   = 3

	metricSuffix = " resulting in 20% improvement in efficiency"
)

var skillTemplates = map[string]string{
	"machine learning": "Consider adding a project where you applied ML models, e.g., 'Developed an XGBoost-based prediction system with 95% accuracy'",
	"python":           "Highlight Python projects or automation scripts, e.g., 'Built data processing pipeline using Python that reduced processing time by 60%'",
	"sql":              "Showcase database experience, e.g., 'Optimized SQL queries resulting in 40% faster data retrieval'",
	"aws":              "Demonstrate cloud expertise, e.g., 'Architected serverless applications on AWS, reducing operational costs by 30%'",
	"docker":           "Include containerization experience, e.g., 'Containerized microservices using Docker, improving deployment efficiency by 50%'",
}

var strongVerbs = map[string]string{
	"worked":       "spearheaded",
	"helped":       "facilitated",
	"assisted":     "coordinated",
	"participated": "led",
	"involved":     "executed",
}

var impactWords = map[string]bool{
	"achieved": true, "improved": true, "increased": true, "decreased": true,
	"reduced": true, "developed": true, "implemented": true, "created": true,
	"designed": true, "led": true, "managed": true, "coordinated": true,
	"streamlined": true, "optimized": true,
}

// Template produces rule-based suggestions without a text-generation model.
type Template struct {
	pipeline nlp.Pipeline
}

// NewTemplate constructs a Template suggester over p.
func NewTemplate(p nlp.Pipeline) *Template {
	return &Template{pipeline: p}
}

// SkillSuggestion returns the static suggestion for skill.
func (t *Template) SkillSuggestion(_ context.Context, skill, _ string) string {
	if s, ok := skillTemplates[strings.ToLower(strings.TrimSpace(skill))]; ok {
		return s
	}
	return fmt.Sprintf("Consider adding practical experience with %s, e.g., 'Implemented %s solutions that improved process efficiency'", skill, skill)
}

// ProfessionalSummary is not available without a model and returns "".
func (t *Template) ProfessionalSummary(context.Context, string, string) string {
	return ""
}

// AnalyzeSection checks a section for metrics, impact verbs and job keywords
// and rewrites weak bullets.
func (t *Template) AnalyzeSection(ctx context.Context, section Section, job string) SectionAnalysis {
	doc, err := t.pipeline.Parse(section.Content)
	if err != nil {
		return sectionFailure(section.Name, err)
	}
	jobDoc, err := t.pipeline.Parse(job)
	if err != nil {
		return sectionFailure(section.Name, err)
	}

	out := newSectionAnalysis(section.Name)
	if !hasNumber(doc) {
		out.KeyImprovements = append(out.KeyImprovements, "Add specific metrics or quantifiable achievements")
	}
	if !hasImpactWord(doc) {
		out.KeyImprovements = append(out.KeyImprovements, "Use more impactful action verbs")
	}

	missing := missingNouns(jobDoc, doc)
	if len(missing) > 0 {
		out.KeyImprovements = append(out.KeyImprovements,
			"Consider incorporating relevant keywords: "+strings.Join(missing, ", "))
		out.MissingKeywords = append(out.MissingKeywords, missing...)
	}

	for _, bullet := range BulletLines(section.Content) {
		rewrite := t.ImproveBullet(ctx, bullet, job)
		if rewrite.Improved != rewrite.Original {
			out.ImprovedBullets = append(out.ImprovedBullets, rewrite)
		}
	}

	for _, kw := range missing {
		if len(out.SkillSuggestions) == maxTemplateSkills {
			break
		}
		out.SkillSuggestions = append(out.SkillSuggestions, t.SkillSuggestion(ctx, kw, job))
	}

	out.Strong = len(out.KeyImprovements) == 0
	return out
}

// ImproveBullet swaps a leading weak verb for a stronger one and appends a
// metric when the bullet has none.
func (t *Template) ImproveBullet(_ context.Context, bullet, _ string) BulletRewrite {
	marker, body := splitMarker(strings.TrimSpace(bullet))
	words := strings.Fields(body)
	if len(words) > 0 {
		if strong, ok := strongVerbs[strings.ToLower(words[0])]; ok {
			words[0] = matchCase(words[0], strong)
		}
	}
	improved := strings.Join(words, " ")

	numeric := containsDigit(body)
	if !numeric && t.pipeline != nil {
		if doc, err := t.pipeline.Parse(body); err == nil {
			numeric = hasNumber(doc)
		}
	}
	if !numeric && improved != "" {
		improved += metricSuffix
	}
	return BulletRewrite{Original: bullet, Improved: marker + improved}
}

func hasNumber(doc *nlp.Document) bool {
	for _, tok := range doc.Tokens {
		if nlp.IsNumber(tok.Tag) || containsDigit(tok.Text) {
			return true
		}
	}
	return false
}

func hasImpactWord(doc *nlp.Document) bool {
	for _, tok := range doc.Tokens {
		if impactWords[strings.ToLower(tok.Text)] {
			return true
		}
	}
	return false
}

// missingNouns returns up to maxTemplateKeywords nouns of job, in job order,
// that do not appear as nouns in section.
func missingNouns(job, section *nlp.Document) []string {
	have := make(map[string]bool, len(section.Tokens))
	for _, tok := range section.Tokens {
		if nlp.IsNoun(tok.Tag) {
			have[strings.ToLower(tok.Text)] = true
		}
	}
	var out []string
	seen := make(map[string]bool)
	for _, tok := range job.Tokens {
		word := strings.ToLower(tok.Text)
		if !nlp.IsNoun(tok.Tag) || have[word] || seen[word] || !containsLetter(word) {
			continue
		}
		seen[word] = true
		out = append(out, word)
		if len(out) == maxTemplateKeywords {
			break
		}
	}
	return out
}

// BulletLines returns the trimmed lines of text that start with a bullet
// marker.
func BulletLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "•") || strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "*") {
			out = append(out, trimmed)
		}
	}
	return out
}

// splitMarker separates a leading bullet marker (with its trailing space)
// from the bullet text.
func splitMarker(line string) (string, string) {
	for _, m := range []string{"•", "-", "*"} {
		if strings.HasPrefix(line, m) {
			body := strings.TrimLeft(strings.TrimPrefix(line, m), " \t")
			return m + " ", body
		}
	}
	return "", line
}

func matchCase(original, replacement string) string {
	r := []rune(original)
	if len(r) > 0 && unicode.IsUpper(r[0]) {
		rr := []rune(replacement)
		rr[0] = unicode.ToUpper(rr[0])
		return string(rr)
	}
	return replacement
}

func containsDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

func containsLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

var _ Suggester = (*Template)(nil)
