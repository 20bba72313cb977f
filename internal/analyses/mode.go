package analyses

import (
	"errors"
	"strings"
)

// SuggestionMode says which suggester produced an analysis.
type SuggestionMode string

const (
	ModeAI       SuggestionMode = "AI"
	ModeTemplate SuggestionMode = "TEMPLATE"
)

// ParseMode normalizes and validates a mode string. An empty string selects
// fallback.
func ParseMode(raw string, fallback SuggestionMode) (SuggestionMode, error) {
	normalized := strings.TrimSpace(raw)
	if normalized == "" {
		return fallback, nil
	}
	switch strings.ToUpper(normalized) {
	case string(ModeAI):
		return ModeAI, nil
	case string(ModeTemplate):
		return ModeTemplate, nil
	default:
		return "", errors.New("suggestion mode is invalid")
	}
}
