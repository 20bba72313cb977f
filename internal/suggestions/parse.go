package suggestions

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

const sectionErrorPrefix = "Error analyzing section: "

// sectionFailure records err inline as the only general improvement.
func sectionFailure(name string, err error) SectionAnalysis {
	out := newSectionAnalysis(name)
	out.Error = err.Error()
	out.KeyImprovements = []string{sectionErrorPrefix + err.Error()}
	return out
}

// parseSectionResponse converts a model response into a SectionAnalysis.
// Responses that are not a JSON object become a single freeform suggestion.
func parseSectionResponse(name, raw string) SectionAnalysis {
	text := stripFences(raw)
	if !strings.HasPrefix(text, "{") {
		out := newSectionAnalysis(name)
		if text != "" {
			out.KeyImprovements = []string{text}
		}
		return out
	}
	out, err := decodeSection(name, text)
	if err != nil {
		return sectionFailure(name, err)
	}
	return out
}

func decodeSection(name, text string) (SectionAnalysis, error) {
	out := newSectionAnalysis(name)
	dec := json.NewDecoder(strings.NewReader(text))
	if err := expectDelim(dec, '{'); err != nil {
		return out, err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return out, err
		}
		key, _ := tok.(string)
		switch key {
		case "suggestions":
			err = decodeStrings(dec, &out.KeyImprovements)
		case "missing_keywords":
			err = decodeStrings(dec, &out.MissingKeywords)
		case "impact_suggestions":
			err = decodeStrings(dec, &out.ImpactSuggestions)
		case "alignment_with_job_requirements":
			out.Requirements, err = decodeAlignment(dec)
		default:
			var skip json.RawMessage
			err = dec.Decode(&skip)
		}
		if err != nil {
			return out, fmt.Errorf("field %q: %w", key, err)
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return out, err
	}
	return out, nil
}

func decodeStrings(dec *json.Decoder, dst *[]string) error {
	var items []string
	if err := dec.Decode(&items); err != nil {
		return err
	}
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			*dst = append(*dst, trimmed)
		}
	}
	return nil
}

// decodeAlignment reads requirement statuses in response order. Both an
// object keyed by requirement and an array of {requirement, met} objects are
// accepted.
func decodeAlignment(dec *json.Decoder) ([]RequirementCheck, error) {
	out := []RequirementCheck{}
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch tok {
	case nil:
		return out, nil
	case json.Delim('{'):
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			var value any
			if err := dec.Decode(&value); err != nil {
				return nil, err
			}
			req, _ := keyTok.(string)
			out = append(out, RequirementCheck{Requirement: req, Status: statusOf(value)})
		}
		return out, expectDelim(dec, '}')
	case json.Delim('['):
		for dec.More() {
			var item struct {
				Requirement string `json:"requirement"`
				Met         any    `json:"met"`
			}
			if err := dec.Decode(&item); err != nil {
				return nil, err
			}
			out = append(out, RequirementCheck{Requirement: item.Requirement, Status: statusOf(item.Met)})
		}
		return out, expectDelim(dec, ']')
	default:
		return nil, fmt.Errorf("unexpected alignment value %v", tok)
	}
}

func statusOf(value any) AlignmentStatus {
	switch v := value.(type) {
	case bool:
		if v {
			return AlignmentMet
		}
		return AlignmentNotMet
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "true", "yes", "met", "✓", "✅":
			return AlignmentMet
		case "false", "no", "not met", "not_met", "✗", "❌":
			return AlignmentNotMet
		}
	}
	return AlignmentUnknown
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected end of JSON input")
	}
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

// stripFences removes a surrounding markdown code fence, if any.
func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
