package suggestions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Section is a named slice of resume text.
type Section struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// SplitSections returns the sections of a resume. Resumes are not split by
// heading yet, so any non-blank text is one section named "content".
func SplitSections(text string) []Section {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return []Section{{Name: "content", Content: text}}
}

// AlignmentStatus reports whether a job requirement is met by a section.
type AlignmentStatus int

const (
	AlignmentUnknown AlignmentStatus = iota
	AlignmentMet
	AlignmentNotMet
)

func (s AlignmentStatus) String() string {
	switch s {
	case AlignmentMet:
		return "met"
	case AlignmentNotMet:
		return "not_met"
	default:
		return "unknown"
	}
}

func (s AlignmentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *AlignmentStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw {
	case "met":
		*s = AlignmentMet
	case "not_met":
		*s = AlignmentNotMet
	case "unknown", "":
		*s = AlignmentUnknown
	default:
		return fmt.Errorf("unknown alignment status %q", raw)
	}
	return nil
}

// RequirementCheck is one job requirement with its alignment status.
type RequirementCheck struct {
	Requirement string          `json:"requirement"`
	Status      AlignmentStatus `json:"status"`
}

// BulletRewrite pairs an original bullet with its improved form.
type BulletRewrite struct {
	Original string `json:"original"`
	Improved string `json:"improved"`
	Error    string `json:"error,omitempty"`
}

// SkillSuggestion is advice for demonstrating one missing skill.
type SkillSuggestion struct {
	Skill      string `json:"skill"`
	Suggestion string `json:"suggestion"`
}

// SectionAnalysis holds the improvement suggestions for one resume section.
type SectionAnalysis struct {
	Section           string             `json:"section"`
	KeyImprovements   []string           `json:"keyImprovements"`
	MissingKeywords   []string           `json:"missingKeywords"`
	ImpactSuggestions []string           `json:"impactSuggestions"`
	Requirements      []RequirementCheck `json:"requirements"`
	SkillSuggestions  []string           `json:"skillSuggestions,omitempty"`
	ImprovedBullets   []BulletRewrite    `json:"improvedBullets,omitempty"`
	Strong            bool               `json:"strong"`
	Error             string             `json:"error,omitempty"`
}

func newSectionAnalysis(name string) SectionAnalysis {
	return SectionAnalysis{
		Section:           name,
		KeyImprovements:   []string{},
		MissingKeywords:   []string{},
		ImpactSuggestions: []string{},
		Requirements:      []RequirementCheck{},
	}
}

// Suggester produces improvement suggestions for a resume against a job.
// Implementations report failures inline in their results and never return
// an error.
type Suggester interface {
	SkillSuggestion(ctx context.Context, skill, job string) string
	ProfessionalSummary(ctx context.Context, resume, job string) string
	AnalyzeSection(ctx context.Context, section Section, job string) SectionAnalysis
	ImproveBullet(ctx context.Context, bullet, job string) BulletRewrite
}
