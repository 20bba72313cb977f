package analyses

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"resume-matcher/internal/extract"
	"resume-matcher/internal/llm"
	"resume-matcher/internal/shared/storage/object"
)

var (
	ErrEmptyResume         = errors.New("resume text is empty")
	ErrEmptyJobDescription = errors.New("job description is empty")
	ErrUnparseableResume   = errors.New("no text could be extracted from the resume")
	// ErrModel wraps failures of the NLP or embedding models.
	ErrModel = errors.New("model error")

	errInvalidBody = errors.New("invalid request body")
	errNoSource    = errors.New("resume source is not configured")
)

const (
	ErrorCodeValidation  = "validation_error"
	ErrorCodeUnparseable = "unparseable_resume"
	ErrorCodeNotFound    = "not_found"
	ErrorCodeTooLarge    = "file_too_large"
	ErrorCodeModel       = "model_error"
	ErrorCodeRateLimited = "rate_limited"
	ErrorCodeInternal    = "internal_error"
)

// classifyFailure maps an analysis error to an HTTP status and error code.
func classifyFailure(err error) (int, string) {
	var maxBytes *http.MaxBytesError
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrorCodeInternal
	case errors.As(err, &maxBytes), errors.Is(err, extract.ErrTooLarge):
		return http.StatusRequestEntityTooLarge, ErrorCodeTooLarge
	case errors.Is(err, extract.ErrUnsupportedFileType),
		errors.Is(err, ErrEmptyResume),
		errors.Is(err, ErrEmptyJobDescription),
		errors.Is(err, errInvalidBody),
		errors.Is(err, errNoSource):
		return http.StatusBadRequest, ErrorCodeValidation
	case errors.Is(err, ErrUnparseableResume):
		return http.StatusUnprocessableEntity, ErrorCodeUnparseable
	case errors.Is(err, object.ErrInvalidKey), errors.Is(err, os.ErrNotExist):
		return http.StatusNotFound, ErrorCodeNotFound
	case errors.Is(err, ErrModel) && llm.Classify(err) == llm.OutcomeRetryable:
		return http.StatusServiceUnavailable, ErrorCodeRateLimited
	case errors.Is(err, ErrModel):
		return http.StatusBadGateway, ErrorCodeModel
	default:
		return http.StatusInternalServerError, ErrorCodeInternal
	}
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	msg = strings.ReplaceAll(msg, "\r", " ")
	msg = strings.TrimSpace(msg)
	const maxLen = 500
	if len(msg) > maxLen {
		msg = msg[:maxLen]
	}
	return msg
}
