package skills

import (
	"fmt"
	"strings"
	"unicode"

	"resume-matcher/internal/nlp"
)

// Vocabulary lists the technology and process keywords matched by substring.
var Vocabulary = []string{
	"python", "java", "javascript", "c++", "ruby", "php", "sql", "nosql",
	"react", "angular", "vue", "node.js", "django", "flask", "spring",
	"docker", "kubernetes", "aws", "azure", "gcp", "devops", "ci/cd",
	"machine learning", "artificial intelligence", "data science",
	"agile", "scrum", "git", "rest api", "graphql",
}

// entityLabels are the NER labels that tend to name tools, vendors and places.
var entityLabels = map[string]bool{
	"PRODUCT":     true,
	"ORG":         true,
	"GPE":         true,
	"WORK_OF_ART": true,
}

const minSkillLen = 3

// Extractor turns text into a deduplicated list of lowercase skill strings.
type Extractor struct {
	pipeline nlp.Pipeline
}

// NewExtractor constructs an Extractor over the given NLP pipeline.
func NewExtractor(p nlp.Pipeline) *Extractor {
	return &Extractor{pipeline: p}
}

// Extract parses text and returns its skills in first-seen order.
func (e *Extractor) Extract(text string) ([]string, error) {
	skills, _, err := e.ExtractWithDocument(text)
	return skills, err
}

// ExtractWithDocument is Extract that also returns the parsed document, so
// callers needing sentences or tokens do not parse twice. Blank text yields
// an empty document without invoking the pipeline.
func (e *Extractor) ExtractWithDocument(text string) ([]string, *nlp.Document, error) {
	if strings.TrimSpace(text) == "" {
		return []string{}, &nlp.Document{}, nil
	}
	doc, err := e.pipeline.Parse(text)
	if err != nil {
		return nil, nil, fmt.Errorf("extract skills: %w", err)
	}
	return FromDocument(text, doc), doc, nil
}

// FromDocument extracts skills from an already parsed document of text.
func FromDocument(text string, doc *nlp.Document) []string {
	candidates := make([]string, 0, 32)
	if doc != nil {
		for _, ent := range doc.Entities {
			if entityLabels[ent.Label] {
				candidates = append(candidates, ent.Text)
			}
		}
		for _, chunk := range doc.NounChunks {
			if !hasDigit(chunk) {
				candidates = append(candidates, chunk)
			}
		}
	}

	lower := strings.ToLower(text)
	for _, keyword := range Vocabulary {
		if strings.Contains(lower, keyword) {
			candidates = append(candidates, keyword)
		}
	}

	return normalize(candidates)
}

func normalize(candidates []string) []string {
	seen := make(map[string]bool, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		clean := strings.TrimSpace(strings.ToLower(c))
		if len([]rune(clean)) < minSkillLen || seen[clean] {
			continue
		}
		seen[clean] = true
		out = append(out, clean)
	}
	return out
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
