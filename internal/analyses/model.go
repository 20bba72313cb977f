package analyses

import (
	"resume-matcher/internal/report"
	"resume-matcher/internal/suggestions"
)

// AnalysisResult is the scored comparison of a resume with a job description.
type AnalysisResult struct {
	MatchScore       float64  `json:"matchScore"`
	ATSScore         float64  `json:"atsScore"`
	MatchingSkills   []string `json:"matchingSkills"`
	MissingSkills    []string `json:"missingSkills"`
	KeyRequirements  []string `json:"keyRequirements"`
	FormattingIssues []string `json:"formattingIssues"`
	MissingSections  []string `json:"missingSections"`
	BulletCount      int      `json:"bulletCount"`
}

// Overview converts the result into the report header.
func (r AnalysisResult) Overview() *report.Overview {
	return &report.Overview{
		MatchScore:       r.MatchScore,
		ATSScore:         r.ATSScore,
		MatchingSkills:   r.MatchingSkills,
		MissingSkills:    r.MissingSkills,
		KeyRequirements:  r.KeyRequirements,
		FormattingIssues: r.FormattingIssues,
		MissingSections:  r.MissingSections,
		BulletCount:      r.BulletCount,
	}
}

// Input is one resume and job description to analyze.
type Input struct {
	ResumeText     string
	JobDescription string
	RequestID      string
}

// Outcome is everything produced for one analysis.
type Outcome struct {
	ID               string                        `json:"id"`
	Mode             SuggestionMode                `json:"mode"`
	Analysis         AnalysisResult                `json:"analysis"`
	Summary          string                        `json:"summary"`
	SkillSuggestions []suggestions.SkillSuggestion `json:"skillSuggestions"`
	Sections         []suggestions.SectionAnalysis `json:"sections"`
	Report           string                        `json:"report"`
	DurationMs       float64                       `json:"durationMs"`
}
