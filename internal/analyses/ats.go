package analyses

const (
	issuePenalty   = 5.0
	sectionPenalty = 3.0
	baseWeight     = 0.7
	keywordWeight  = 0.3
)

// ATSScore combines formatting penalties with the keyword match ratio and
// clamps the result to [0, 100].
func ATSScore(formattingIssues, missingSections int, keywordRatio float64) float64 {
	base := 100 - issuePenalty*float64(formattingIssues) - sectionPenalty*float64(missingSections)
	return clamp(base*(baseWeight+keywordWeight*keywordRatio), 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
