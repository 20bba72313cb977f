package analyses

import "strings"

var requirementTriggers = []string{"required", "must have", "requirements", "qualifications", "experience"}

// KeyRequirements returns the sentences that mention a requirement trigger,
// trimmed and in document order. Duplicates are kept.
func KeyRequirements(sentences []string) []string {
	out := []string{}
	for _, s := range sentences {
		lower := strings.ToLower(s)
		for _, trigger := range requirementTriggers {
			if strings.Contains(lower, trigger) {
				out = append(out, strings.TrimSpace(s))
				break
			}
		}
	}
	return out
}
