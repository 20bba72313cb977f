package analyses

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"resume-matcher/internal/extract"
	"resume-matcher/internal/llm"
)

func TestClassifyFailure(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "unsupported type", err: fmt.Errorf("%w: txt", extract.ErrUnsupportedFileType), status: http.StatusBadRequest, code: ErrorCodeValidation},
		{name: "empty job", err: ErrEmptyJobDescription, status: http.StatusBadRequest, code: ErrorCodeValidation},
		{name: "empty resume", err: ErrEmptyResume, status: http.StatusBadRequest, code: ErrorCodeValidation},
		{name: "unparseable", err: ErrUnparseableResume, status: http.StatusUnprocessableEntity, code: ErrorCodeUnparseable},
		{name: "too large", err: &http.MaxBytesError{Limit: 10}, status: http.StatusRequestEntityTooLarge, code: ErrorCodeTooLarge},
		{name: "stored file too large", err: fmt.Errorf("key=a: %w", extract.ErrTooLarge), status: http.StatusRequestEntityTooLarge, code: ErrorCodeTooLarge},
		{name: "missing file", err: fmt.Errorf("open: %w", os.ErrNotExist), status: http.StatusNotFound, code: ErrorCodeNotFound},
		{name: "model", err: fmt.Errorf("%w: embed: %w", ErrModel, errors.New("bad key")), status: http.StatusBadGateway, code: ErrorCodeModel},
		{
			name:   "model rate limited",
			err:    fmt.Errorf("%w: embed: %w", ErrModel, &llm.RateLimitError{Provider: "gemini"}),
			status: http.StatusServiceUnavailable,
			code:   ErrorCodeRateLimited,
		},
		{name: "other", err: errors.New("disk on fire"), status: http.StatusInternalServerError, code: ErrorCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := classifyFailure(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("", ModeTemplate)
	assert.NoError(t, err)
	assert.Equal(t, ModeTemplate, mode)

	mode, err = ParseMode(" ai ", ModeTemplate)
	assert.NoError(t, err)
	assert.Equal(t, ModeAI, mode)

	_, err = ParseMode("magic", ModeAI)
	assert.Error(t, err)
}
