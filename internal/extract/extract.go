package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"resume-matcher/internal/shared/storage/object"
	"resume-matcher/internal/shared/telemetry"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeZIP  = "application/zip"
)

// FileType is a supported resume format.
type FileType string

const (
	PDF  FileType = "pdf"
	DOCX FileType = "docx"
)

// ErrUnsupportedFileType is returned for anything other than PDF or DOCX.
var ErrUnsupportedFileType = errors.New("unsupported file type")

// ErrTooLarge is returned when a stored resume exceeds the size limit.
var ErrTooLarge = errors.New("file too large")

// ParseFileType accepts "pdf"/"docx" in any case, with or without a leading
// dot, a file name, or a MIME type.
func ParseFileType(raw string) (FileType, error) {
	return detectFileType(raw, nil)
}

// ExtractText pulls plain text out of a PDF or DOCX payload. A file that
// cannot be parsed yields "" and a nil error; only unsupported types and a
// canceled context are errors.
func ExtractText(ctx context.Context, data []byte, fileType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	ft, err := detectFileType(fileType, data)
	if err != nil {
		return "", err
	}

	var text string
	switch ft {
	case PDF:
		text, err = extractPDF(data)
	case DOCX:
		text, err = extractDOCX(data)
	}
	if err != nil {
		telemetry.Error("text extraction failed", map[string]any{
			"file_type": string(ft),
			"size":      len(data),
			"error":     err.Error(),
		})
		return "", nil
	}
	return strings.TrimSpace(text), nil
}

// FromSource reads key from src and extracts its text. The file type is taken
// from fileType, or from the key's extension when fileType is empty.
func FromSource(ctx context.Context, src object.Source, key, fileType string, maxBytes int64) (string, error) {
	if strings.TrimSpace(fileType) == "" {
		fileType = key
	}
	if _, err := ParseFileType(fileType); err != nil && !strings.Contains(strings.ToLower(fileType), "zip") {
		return "", err
	}

	body, err := src.Open(ctx, key)
	if err != nil {
		return "", fmt.Errorf("extract text key=%s: %w", key, err)
	}
	defer body.Close()

	var r io.Reader = body
	if maxBytes > 0 {
		r = io.LimitReader(body, maxBytes+1)
	}
	raw, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("extract text key=%s: read: %w", key, err)
	}
	if maxBytes > 0 && int64(len(raw)) > maxBytes {
		return "", fmt.Errorf("extract text key=%s: %w: limit %d bytes", key, ErrTooLarge, maxBytes)
	}
	return ExtractText(ctx, raw, fileType)
}

func detectFileType(raw string, data []byte) (FileType, error) {
	clean := strings.ToLower(strings.TrimSpace(strings.Split(raw, ";")[0]))
	switch clean {
	case mimePDF:
		return PDF, nil
	case mimeDOCX:
		return DOCX, nil
	case mimeZIP:
		if isDOCXArchive(data) {
			return DOCX, nil
		}
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, raw)
	}
	if !strings.Contains(clean, "/") || filepath.Ext(clean) != "" {
		if ext := filepath.Ext(clean); ext != "" {
			clean = ext
		}
		switch strings.TrimPrefix(clean, ".") {
		case "pdf":
			return PDF, nil
		case "docx":
			return DOCX, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, raw)
}

func extractPDF(data []byte) (text string, err error) {
	// the pdf reader panics on some malformed inputs
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("pdf parse panic: %v", r)
		}
	}()
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func extractDOCX(data []byte) (string, error) {
	if len(data) == 0 {
		return "", errors.New("empty docx data")
	}
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parse docx: %w", err)
	}
	defer doc.Close()
	return stripDocxXML(doc.Editable().GetContent()), nil
}

// stripDocxXML keeps character data and turns paragraph and line breaks into
// newlines.
func stripDocxXML(raw string) string {
	decoder := xml.NewDecoder(strings.NewReader(raw))
	var buf strings.Builder
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return raw
		}
		switch t := tok.(type) {
		case xml.CharData:
			buf.WriteString(string(t))
		case xml.EndElement:
			if t.Name.Local == "p" || t.Name.Local == "br" {
				if buf.Len() > 0 {
					buf.WriteString("\n")
				}
			}
		}
	}
	return strings.TrimSpace(buf.String())
}

func isDOCXArchive(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	for _, f := range zr.File {
		if strings.ReplaceAll(f.Name, "\\", "/") == "word/document.xml" {
			return true
		}
	}
	return false
}
