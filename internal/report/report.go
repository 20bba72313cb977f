package report

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"resume-matcher/internal/suggestions"
)

// Filename is the suggested name for a downloaded report.
const Filename = "resume_analysis_report.md"

const (
	iconMet    = "✅"
	iconNotMet = "❌"
	itemPrefix = "• "
)

// Overview carries the scores and skill lists shown at the top of a report.
type Overview struct {
	MatchScore       float64
	ATSScore         float64
	MatchingSkills   []string
	MissingSkills    []string
	KeyRequirements  []string
	FormattingIssues []string
	MissingSections  []string
	BulletCount      int
}

// Document is everything Render needs for a full report.
type Document struct {
	Title            string
	Overview         *Overview
	Summary          string
	SkillSuggestions []suggestions.SkillSuggestion
	Sections         []suggestions.SectionAnalysis
}

// title upper-cases the first letter of each word. Casers are stateful, so
// each call gets its own.
func title(s string) string {
	return cases.Title(language.English).String(s)
}

// Format renders the optimization suggestions for one section.
func Format(a suggestions.SectionAnalysis) string {
	var b strings.Builder
	b.WriteString("# Resume Optimization Suggestions\n\n")
	writeSectionBody(&b, a)
	return b.String()
}

func writeSectionBody(b *strings.Builder, a suggestions.SectionAnalysis) {
	b.WriteString("## Detailed Optimization Suggestions\n\n")

	writeList(b, "### General Improvements:", a.KeyImprovements)
	writeList(b, "### Missing Keywords and Skills:", a.MissingKeywords)
	writeList(b, "### Impact Enhancement Suggestions:", a.ImpactSuggestions)

	b.WriteString("### Job Requirements Alignment:\n")
	for _, r := range a.Requirements {
		icon := iconNotMet
		if r.Status == suggestions.AlignmentMet {
			icon = iconMet
		}
		fmt.Fprintf(b, "%s %s\n", icon, r.Requirement)
	}
}

func writeList(b *strings.Builder, heading string, items []string) {
	b.WriteString(heading)
	b.WriteByte('\n')
	for _, item := range items {
		b.WriteString(itemPrefix)
		b.WriteString(item)
		b.WriteByte('\n')
	}
	b.WriteString("\n\n")
}

// Render produces the full markdown report.
func Render(doc Document) string {
	var b strings.Builder
	heading := strings.TrimSpace(doc.Title)
	if heading == "" {
		heading = "Resume Analysis Report"
	}
	fmt.Fprintf(&b, "# %s\n\n", heading)

	if doc.Overview != nil {
		writeOverview(&b, doc.Overview)
	}

	if summary := strings.TrimSpace(doc.Summary); summary != "" {
		b.WriteString("## Professional Summary\n\n")
		b.WriteString(summary)
		b.WriteString("\n\n")
	}

	if len(doc.SkillSuggestions) > 0 {
		b.WriteString("## Skill Suggestions\n\n")
		for _, s := range doc.SkillSuggestions {
			fmt.Fprintf(&b, "### %s\n%s\n\n", title(s.Skill), s.Suggestion)
		}
	}

	for _, section := range doc.Sections {
		fmt.Fprintf(&b, "## Section: %s\n\n", title(section.Section))
		writeSectionBody(&b, section)
		if len(section.ImprovedBullets) > 0 {
			b.WriteString("\n### Improved Bullet Points:\n")
			for _, r := range section.ImprovedBullets {
				fmt.Fprintf(&b, "- Original: %s\n  Improved: %s\n", r.Original, r.Improved)
			}
		}
		if len(section.SkillSuggestions) > 0 {
			writeHeadedList(&b, "### Skill Ideas:", section.SkillSuggestions)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func writeOverview(b *strings.Builder, o *Overview) {
	b.WriteString("## Overview\n\n")
	fmt.Fprintf(b, "- Match Score: %.1f%%\n", o.MatchScore*100)
	fmt.Fprintf(b, "- ATS Score: %.1f/100\n", o.ATSScore)
	fmt.Fprintf(b, "- Bullet Points: %d\n\n", o.BulletCount)

	writeHeadedList(b, "### Matching Skills:", o.MatchingSkills)
	writeHeadedList(b, "### Missing Skills:", o.MissingSkills)
	writeHeadedList(b, "### Key Requirements:", o.KeyRequirements)
	writeHeadedList(b, "### Formatting Issues:", o.FormattingIssues)
	if len(o.MissingSections) > 0 {
		sections := make([]string, len(o.MissingSections))
		for i, s := range o.MissingSections {
			sections[i] = title(s)
		}
		writeHeadedList(b, "### Missing Sections:", sections)
	}
}

// writeHeadedList writes heading and items, or "None" when empty.
func writeHeadedList(b *strings.Builder, heading string, items []string) {
	b.WriteString(heading)
	b.WriteByte('\n')
	if len(items) == 0 {
		b.WriteString("None\n\n")
		return
	}
	for _, item := range items {
		b.WriteString(itemPrefix)
		b.WriteString(item)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}
