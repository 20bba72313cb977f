package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeMixedBullets(t *testing.T) {
	text := "Experience\n• Built a billing service\n- Led a team of four\n  • Cut costs"
	got := Analyze(text)

	assert.Equal(t, 3, got.BulletCount)
	assert.Contains(t, got.FormattingIssues, IssueInconsistentBullets)
}

func TestAnalyzeConsistentBullets(t *testing.T) {
	text := "- Built a billing service\n- Led a team of four\nWorked 2019 - 2021 at Acme"
	got := Analyze(text)

	assert.Equal(t, 2, got.BulletCount)
	assert.NotContains(t, got.FormattingIssues, IssueInconsistentBullets)
}

func TestAnalyzeSections(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		missing []string
	}{
		{
			name:    "all present any case",
			text:    "SUMMARY\nExperience\neducation\nSkills: Go\nProjects",
			missing: []string{},
		},
		{
			name:    "whole word only",
			text:    "Summary. Experienced engineer. Education. Skill set. Projects.",
			missing: []string{"experience", "skills"},
		},
		{
			name:    "empty text",
			text:    "",
			missing: []string{"summary", "experience", "education", "skills", "projects"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.missing, Analyze(tt.text).MissingSections)
		})
	}
}

func TestAnalyzeDates(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		inconsistent bool
	}{
		{name: "abbreviated months", text: "Jan 2020 - Mar 2021, Oct. 2022", inconsistent: false},
		{name: "full months with may", text: "May 2020 - January 2021", inconsistent: false},
		{name: "abbreviated with may", text: "May 2020 - Jan 2021", inconsistent: false},
		{name: "numeric only", text: "05/2020 - 11/2021", inconsistent: false},
		{name: "years only", text: "2016 - 2020", inconsistent: false},
		{name: "month and numeric", text: "Jan 2020 - 05/2021", inconsistent: true},
		{name: "abbreviated and full", text: "January 2020 - Feb 2021", inconsistent: true},
		{name: "month and bare year", text: "Jan 2020 - Present; BSc 2016", inconsistent: true},
		{name: "no dates", text: "No dates at all, phone 5551234", inconsistent: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Analyze(tt.text)
			if tt.inconsistent {
				assert.Contains(t, got.FormattingIssues, IssueInconsistentDates)
			} else {
				assert.NotContains(t, got.FormattingIssues, IssueInconsistentDates)
			}
		})
	}
}

func TestAnalyzeEmptyHasNoIssues(t *testing.T) {
	got := Analyze("")
	assert.Empty(t, got.FormattingIssues)
	assert.Zero(t, got.BulletCount)
}
