package formatting

import "regexp"

const (
	IssueInconsistentBullets = "Inconsistent bullet point characters detected"
	IssueInconsistentDates   = "Inconsistent date formatting detected"
)

// ExpectedSections are the section headings an ATS looks for.
var ExpectedSections = []string{"summary", "experience", "education", "skills", "projects"}

// Analysis is the result of a formatting scan.
type Analysis struct {
	FormattingIssues []string `json:"formattingIssues"`
	MissingSections  []string `json:"missingSections"`
	BulletCount      int      `json:"bulletCount"`
}

var (
	bulletRe = regexp.MustCompile(`(?m)^[ \t]*([•*-])[ \t]+\S`)
	dateRe   = regexp.MustCompile(`\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)([a-z]*)\.?\s*((?:19|20)\d{2})\b|\b(\d{1,2})/((?:19|20)\d{2})\b|\b((?:19|20)\d{2})\b`)

	sectionRes = func() map[string]*regexp.Regexp {
		out := make(map[string]*regexp.Regexp, len(ExpectedSections))
		for _, s := range ExpectedSections {
			out[s] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(s) + `\b`)
		}
		return out
	}()

	fullMonths = map[string]string{
		"Jan": "January", "Feb": "February", "Mar": "March", "Apr": "April",
		"May": "May", "Jun": "June", "Jul": "July", "Aug": "August",
		"Sep": "September", "Oct": "October", "Nov": "November", "Dec": "December",
	}
)

// Analyze scans resume text for bullet, section and date-format problems.
func Analyze(resumeText string) Analysis {
	out := Analysis{
		FormattingIssues: []string{},
		MissingSections:  []string{},
	}

	bullets := bulletRe.FindAllStringSubmatch(resumeText, -1)
	out.BulletCount = len(bullets)
	markers := make(map[string]bool, 3)
	for _, m := range bullets {
		markers[m[1]] = true
	}
	if len(markers) > 1 {
		out.FormattingIssues = append(out.FormattingIssues, IssueInconsistentBullets)
	}

	for _, section := range ExpectedSections {
		if !sectionRes[section].MatchString(resumeText) {
			out.MissingSections = append(out.MissingSections, section)
		}
	}

	if inconsistentDates(resumeText) {
		out.FormattingIssues = append(out.FormattingIssues, IssueInconsistentDates)
	}
	return out
}

// inconsistentDates classifies every date by format and reports whether more
// than one format is in use. "May" fits both month styles.
func inconsistentDates(text string) bool {
	kinds := make(map[string]bool, 3)
	monthStyles := make(map[string]bool, 2)
	for _, m := range dateRe.FindAllStringSubmatch(text, -1) {
		switch {
		case m[1] != "":
			kinds["month-name"] = true
			word := m[1] + m[2]
			switch {
			case word == "May":
			case word == fullMonths[m[1]]:
				monthStyles["full"] = true
			default:
				monthStyles["abbreviated"] = true
			}
		case m[4] != "":
			kinds["numeric"] = true
		case m[6] != "":
			kinds["year"] = true
		}
	}
	return len(kinds) > 1 || len(monthStyles) > 1
}
