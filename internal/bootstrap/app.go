package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/analyses"
	"resume-matcher/internal/embedding"
	"resume-matcher/internal/llm"
	"resume-matcher/internal/llm/gemini"
	"resume-matcher/internal/llm/openai"
	"resume-matcher/internal/nlp"
	"resume-matcher/internal/services/health"
	"resume-matcher/internal/shared/config"
	"resume-matcher/internal/shared/server"
	"resume-matcher/internal/shared/storage/object"
	localstore "resume-matcher/internal/shared/storage/object/local"
	s3store "resume-matcher/internal/shared/storage/object/s3"
	"resume-matcher/internal/skills"
	"resume-matcher/internal/suggestions"
)

const defaultOpenAIModel = "gpt-4o-mini"

// App holds the wired dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	Source          object.Source
	AnalysesService *analyses.Service
	AnalysisHandler *analyses.Handler
}

// modelClient is what both providers implement.
type modelClient interface {
	llm.Generator
	llm.Embedder
}

// Build constructs every collaborator from cfg. Model and storage
// construction errors are returned; callers treat them as fatal.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	pipeline, err := nlp.NewProse()
	if err != nil {
		return nil, fmt.Errorf("load nlp pipeline: %w", err)
	}

	fallback := analyses.ModeTemplate
	if cfg.AIEnabled() {
		fallback = analyses.ModeAI
	}
	mode, err := analyses.ParseMode(cfg.SuggestionMode, fallback)
	if err != nil {
		return nil, err
	}
	if mode == analyses.ModeAI && !cfg.AIEnabled() {
		return nil, fmt.Errorf("suggestion mode %s requires an API key for %s", mode, cfg.LLMProvider)
	}

	clients := map[string]modelClient{}
	client := func(provider string) (modelClient, error) {
		if c, ok := clients[provider]; ok {
			return c, nil
		}
		c, err := newModelClient(ctx, cfg, provider)
		if err != nil {
			return nil, err
		}
		clients[provider] = c
		return c, nil
	}

	var embedder embedding.Embedder = embedding.NewHashing(0)
	if cfg.EmbeddingProvider != "local" {
		c, err := client(cfg.EmbeddingProvider)
		if err != nil {
			return nil, fmt.Errorf("embedding model: %w", err)
		}
		embedder = c
	}

	var suggester suggestions.Suggester
	llmProvider := ""
	switch mode {
	case analyses.ModeAI:
		c, err := client(cfg.LLMProvider)
		if err != nil {
			return nil, fmt.Errorf("generation model: %w", err)
		}
		retrier := llm.NewRetrier(c, llm.RetryConfig{
			MaxAttempts:  cfg.LLMMaxRetries,
			InitialDelay: cfg.LLMInitialDelay,
			CallTimeout:  cfg.LLMTimeout,
		})
		suggester = suggestions.NewAI(retrier)
		llmProvider = cfg.LLMProvider
	default:
		suggester = suggestions.NewTemplate(pipeline)
	}

	source, err := buildSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	svc := &analyses.Service{
		Scorer:      analyses.NewScorer(embedder, skills.NewExtractor(pipeline)),
		Suggester:   suggester,
		Mode:        mode,
		Concurrency: cfg.SuggestionConcurrency,
	}
	handler := analyses.NewHandler(svc, source, cfg.MaxUploadBytes)

	log.Printf("bootstrap: mode=%s llm_provider=%s embedder=%s resume_store=%s",
		mode, orNone(llmProvider), cfg.EmbeddingProvider, cfg.ResumeStoreType)

	return &App{
		Config:          cfg,
		Source:          source,
		AnalysesService: svc,
		AnalysisHandler: handler,
		Router: server.NewRouter(server.RouterDeps{
			Config:          cfg,
			AnalysisHandler: handler,
			Health:          health.NewService(string(mode), llmProvider, cfg.EmbeddingProvider),
		}),
	}, nil
}

func newModelClient(ctx context.Context, cfg config.Config, provider string) (modelClient, error) {
	switch provider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, errors.New("GEMINI_API_KEY is required")
		}
		c, err := gemini.New(ctx, cfg.GeminiAPIKey, modelFor(cfg, "gemini"), embedModelFor(cfg, "gemini"), cfg.LLMRequestsPerSecond)
		if err != nil {
			return nil, err
		}
		return c, nil
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, errors.New("OPENAI_API_KEY is required")
		}
		opts := []openai.Option{openai.WithTimeout(cfg.LLMTimeout)}
		if cfg.OpenAIBaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.OpenAIBaseURL))
		}
		if m := embedModelFor(cfg, "openai"); m != "" {
			opts = append(opts, openai.WithEmbedModel(m))
		}
		model := modelFor(cfg, "openai")
		if model == "" {
			model = defaultOpenAIModel
		}
		c, err := openai.NewClient(cfg.OpenAIAPIKey, model, opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown model provider %q", provider)
	}
}

// modelFor applies LLM_MODEL only to the generation provider so a Gemini
// model name is never sent to OpenAI for embeddings and the reverse.
func modelFor(cfg config.Config, provider string) string {
	if provider == cfg.LLMProvider {
		return cfg.LLMModel
	}
	return ""
}

func embedModelFor(cfg config.Config, provider string) string {
	if provider == cfg.EmbeddingProvider {
		return cfg.EmbeddingModel
	}
	return ""
}

func buildSource(ctx context.Context, cfg config.Config) (object.Source, error) {
	switch cfg.ResumeStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, errors.New("RESUME_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
