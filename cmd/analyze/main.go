package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"resume-matcher/internal/analyses"
	"resume-matcher/internal/bootstrap"
	"resume-matcher/internal/extract"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/storage/object"
	localstore "resume-matcher/internal/shared/storage/object/local"
	s3store "resume-matcher/internal/shared/storage/object/s3"
)

func main() {
	cfg := config.Load()

	resumePath := flag.String("resume", "", "Path or s3://bucket/key of the resume (pdf or docx)")
	jobPath := flag.String("job", "", "Path to the job description text file")
	outPath := flag.String("out", "", "Path to write the markdown report (optional)")
	asJSON := flag.Bool("json", false, "Print the full analysis as JSON instead of the report")
	mode := flag.String("mode", cfg.SuggestionMode, "Suggestion mode: AI or TEMPLATE")
	flag.Parse()

	if strings.TrimSpace(*resumePath) == "" || strings.TrimSpace(*jobPath) == "" {
		flag.Usage()
		exitErr("-resume and -job are required")
	}
	cfg.SuggestionMode = *mode

	ctx := context.Background()
	app, err := bootstrap.Build(ctx, cfg)
	if err != nil {
		exitErr(fmt.Sprintf("startup: %v", err))
	}

	resumeText, err := readResume(ctx, cfg, *resumePath)
	if err != nil {
		exitErr(fmt.Sprintf("read resume: %v", err))
	}
	jobBytes, err := os.ReadFile(*jobPath)
	if err != nil {
		exitErr(fmt.Sprintf("read job description: %v", err))
	}

	out, err := app.AnalysesService.Analyze(ctx, analyses.Input{
		ResumeText:     resumeText,
		JobDescription: string(jobBytes),
	})
	if err != nil {
		exitErr(fmt.Sprintf("analyze: %v", err))
	}

	if *outPath != "" {
		if err := os.WriteFile(*outPath, []byte(out.Report), 0o644); err != nil {
			exitErr(fmt.Sprintf("write report: %v", err))
		}
	}

	payload := []byte(out.Report)
	if *asJSON {
		payload, err = prettyJSON(out)
		if err != nil {
			exitErr(fmt.Sprintf("format json: %v", err))
		}
	}
	if _, err := os.Stdout.Write(payload); err != nil {
		exitErr(fmt.Sprintf("write stdout: %v", err))
	}
	if len(payload) == 0 || payload[len(payload)-1] != '\n' {
		_, _ = os.Stdout.Write([]byte("\n"))
	}
}

// readResume loads a local file or an s3:// object and extracts its text.
func readResume(ctx context.Context, cfg config.Config, path string) (string, error) {
	var (
		src object.Source
		key = path
	)
	if strings.HasPrefix(path, "s3://") {
		bucket, k, err := object.ParseS3URI(path)
		if err != nil {
			return "", err
		}
		store, err := s3store.New(ctx, cfg.AWSRegion, bucket, "")
		if err != nil {
			return "", err
		}
		src, key = store, k
	} else {
		src = localstore.New("")
	}

	text, err := extract.FromSource(ctx, src, key, "", cfg.MaxUploadBytes)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", analyses.ErrUnparseableResume
	}
	return text, nil
}

func prettyJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exitErr(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
