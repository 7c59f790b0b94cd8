package explainer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kuralverse/thirukural-api/apimodels"
	"github.com/kuralverse/thirukural-api/internal/config"
	"github.com/kuralverse/thirukural-api/internal/llm"
)

// ErrInvalidRequest is returned when the request fails the service-level
// guard. The HTTP layer validates first, so hitting this means a caller
// bypassed it.
var ErrInvalidRequest = errors.New("invalid analyze request")

const systemPrompt = `You are a thoughtful guide to the Thirukural, a classical Tamil text of couplets.
Explain the given couplet in plain, practical language for a modern reader.
Keep the explanation concise and grounded in the couplet's meaning.`

// Service produces explanations for Thirukural couplets. It delegates to the
// external text generator when configuration permits, and otherwise renders a
// deterministic placeholder.
type Service struct {
	cfg       *config.OpenAIConfig
	audience  string
	generator llm.Generator
}

func New(cfg *config.OpenAIConfig, audience string, generator llm.Generator) *Service {
	return &Service{
		cfg:       cfg,
		audience:  audience,
		generator: generator,
	}
}

// Explain produces an AnalyzeResponse for the given request. External
// provider failures never surface: the service degrades to the placeholder
// explanation with external_call_used=false.
func (s *Service) Explain(ctx context.Context, req apimodels.AnalyzeRequest) (*apimodels.AnalyzeResponse, error) {
	kural := strings.TrimSpace(req.Kural)
	translation := strings.TrimSpace(req.Translation)
	if req.Number <= 0 || kural == "" || translation == "" {
		return nil, ErrInvalidRequest
	}

	resp := &apimodels.AnalyzeResponse{
		Number:      req.Number,
		Kural:       kural,
		Translation: translation,
	}

	if !s.cfg.ExternalCallsEnabled() {
		resp.Explanation = s.placeholder(req.Number, translation)
		return resp, nil
	}

	out, err := s.generator.Generate(ctx, systemPrompt, s.userPrompt(req.Number, kural, translation))
	if err != nil {
		slog.Warn("external generation failed, falling back to placeholder",
			"number", req.Number, "error", err)
		resp.Explanation = s.placeholder(req.Number, translation)
		return resp, nil
	}

	content := strings.TrimSpace(out.Content)
	if content == "" {
		slog.Warn("external generation returned empty content, falling back to placeholder",
			"number", req.Number, "model", out.Model)
		resp.Explanation = s.placeholder(req.Number, translation)
		return resp, nil
	}

	model := s.cfg.Model
	resp.Explanation = content
	resp.Model = &model
	resp.ExternalCallUsed = true
	return resp, nil
}

func (s *Service) userPrompt(number int, kural, translation string) string {
	return fmt.Sprintf(
		"Explain Thirukural #%d to %s.\nTamil:\n%s\nMeaning:\n%s\nProvide a concise, practical explanation.",
		number, s.audience, kural, translation,
	)
}

// placeholder renders the deterministic fallback explanation. Identical input
// always yields identical output, which the tests and local development rely
// on.
func (s *Service) placeholder(number int, translation string) string {
	return fmt.Sprintf(
		"Hi %s, here is a concise reflection tailored for you.\n\n"+
			"Kural #%d highlights a timeless principle. In simple terms: %s\n\n"+
			"Why it matters for you: Focus on the core value behind these lines—"+
			"consistency, humility, and purpose. Consider one small, practical step today "+
			"that aligns with this insight.\n\n"+
			"Summary: The Kural encourages living by foundational virtues. Even a small action "+
			"done consistently will compound meaningfully over time.",
		s.audience, number, translation,
	)
}
