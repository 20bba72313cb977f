package analyses

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"resume-matcher/internal/extract"
	"resume-matcher/internal/report"
	"resume-matcher/internal/shared/server/middleware"
	"resume-matcher/internal/shared/server/respond"
	"resume-matcher/internal/shared/storage/object"
	"resume-matcher/internal/shared/util"
)

const defaultMaxUploadBytes = 10 << 20

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc            *Service
	Source         object.Source
	MaxUploadBytes int64
	validate       *validator.Validate
}

// NewHandler constructs a Handler. src may be nil, in which case requests by
// resume key are rejected.
func NewHandler(svc *Service, src object.Source, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{
		Svc:            svc,
		Source:         src,
		MaxUploadBytes: maxUploadBytes,
		validate:       validator.New(),
	}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.createAnalysis)
	rg.POST("/reports", h.createReport)
}

type analyzeRequest struct {
	ResumeKey      string `json:"resumeKey" validate:"required_without=ResumeText"`
	ResumeText     string `json:"resumeText" validate:"required_without=ResumeKey"`
	FileType       string `json:"fileType"`
	JobDescription string `json:"jobDescription" validate:"required"`
}

type uploadRequest struct {
	Resume         *multipart.FileHeader `validate:"required"`
	FileType       string
	JobDescription string `validate:"required"`
}

func (h *Handler) createAnalysis(c *gin.Context) {
	out, ok := h.run(c)
	if !ok {
		return
	}
	c.Set("analysisId", out.ID)
	respond.OK(c, out)
}

func (h *Handler) createReport(c *gin.Context) {
	out, ok := h.run(c)
	if !ok {
		return
	}
	c.Set("analysisId", out.ID)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, report.Filename))
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(out.Report))
}

// run reads the request, extracts resume text and analyzes it. On failure
// it writes the error response and returns false.
func (h *Handler) run(c *gin.Context) (Outcome, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	resumeText, job, err := h.readInput(c)
	if err != nil {
		h.fail(c, err)
		return Outcome{}, false
	}

	out, err := h.Svc.Analyze(c.Request.Context(), Input{
		ResumeText:     resumeText,
		JobDescription: job,
		RequestID:      middleware.RequestIDFromContext(c),
	})
	if err != nil {
		h.fail(c, err)
		return Outcome{}, false
	}
	return out, true
}

func (h *Handler) readInput(c *gin.Context) (string, string, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		return h.readUpload(c)
	}

	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return "", "", fmt.Errorf("%w: %w", errInvalidBody, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return "", "", err
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return "", "", ErrEmptyJobDescription
	}

	if req.ResumeText != "" {
		return req.ResumeText, req.JobDescription, nil
	}
	if h.Source == nil {
		return "", "", errNoSource
	}
	text, err := extract.FromSource(c.Request.Context(), h.Source, req.ResumeKey, req.FileType, h.MaxUploadBytes)
	if err != nil {
		return "", "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", "", ErrUnparseableResume
	}
	return text, req.JobDescription, nil
}

func (h *Handler) readUpload(c *gin.Context) (string, string, error) {
	req := uploadRequest{
		FileType:       c.PostForm("fileType"),
		JobDescription: c.PostForm("jobDescription"),
	}
	file, err := c.FormFile("resume")
	if err != nil && strings.Contains(err.Error(), "request body too large") {
		return "", "", &http.MaxBytesError{Limit: h.MaxUploadBytes}
	}
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		return "", "", fmt.Errorf("%w: %w", errInvalidBody, err)
	}
	req.Resume = file
	if err := h.validate.Struct(req); err != nil {
		return "", "", err
	}
	if strings.TrimSpace(req.JobDescription) == "" {
		return "", "", ErrEmptyJobDescription
	}

	name, err := util.SanitizeFileName(file.Filename)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", errInvalidBody, err)
	}
	fileType := req.FileType
	if fileType == "" {
		fileType = filepath.Ext(name)
	}
	data, err := readFormFile(file)
	if err != nil {
		return "", "", err
	}
	text, err := extract.ExtractText(c.Request.Context(), data, fileType)
	if err != nil {
		return "", "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", "", ErrUnparseableResume
	}
	return text, req.JobDescription, nil
}

func readFormFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

func (h *Handler) fail(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]map[string]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, map[string]string{
				"field": lowerFirst(fe.Field()),
				"issue": fe.Tag(),
			})
		}
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request", details)
		return
	}
	status, code := classifyFailure(err)
	message := sanitizeError(err)
	if status >= http.StatusInternalServerError {
		if errors.Is(err, context.Canceled) {
			message = "request canceled"
		} else if code == ErrorCodeInternal {
			message = "failed to analyze resume"
		}
	}
	respond.Error(c, status, code, message, nil)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
