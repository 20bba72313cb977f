package analyses

import "strings"

// MatchSkills splits jobSkills into those present in resumeSkills and those
// missing. A job skill counts as present when it is a substring of any resume
// skill, so "python" matches "python scripting" but not the reverse. Both
// results keep jobSkills order and together partition it.
func MatchSkills(resumeSkills, jobSkills []string) (matching, missing []string) {
	matching = []string{}
	missing = []string{}
	for _, js := range jobSkills {
		found := false
		for _, rs := range resumeSkills {
			if strings.Contains(rs, js) {
				found = true
				break
			}
		}
		if found {
			matching = append(matching, js)
		} else {
			missing = append(missing, js)
		}
	}
	return matching, missing
}

// KeywordMatchRatio is |resume ∩ job| / |job| by exact match, or 1 when the
// job lists no skills.
func KeywordMatchRatio(resumeSkills, jobSkills []string) float64 {
	if len(jobSkills) == 0 {
		return 1
	}
	have := make(map[string]bool, len(resumeSkills))
	for _, s := range resumeSkills {
		have[s] = true
	}
	common := 0
	for _, s := range jobSkills {
		if have[s] {
			common++
		}
	}
	return float64(common) / float64(len(jobSkills))
}
