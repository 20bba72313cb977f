package health

// Service reports liveness and the active analysis configuration.
type Service struct {
	mode        string
	llmProvider string
	embedder    string
}

// NewService constructs a new health service. Empty llmProvider means no
// model is configured and suggestions come from templates.
func NewService(mode, llmProvider, embedder string) *Service {
	return &Service{mode: mode, llmProvider: llmProvider, embedder: embedder}
}

// Status returns the health payload.
func (s *Service) Status() map[string]any {
	provider := s.llmProvider
	if provider == "" {
		provider = "none"
	}
	return map[string]any{
		"ok":          true,
		"mode":        s.mode,
		"llmProvider": provider,
		"embedder":    s.embedder,
	}
}
