// Package similarity scores how close a resume is to a job description.
// It prefers Gemini embeddings when an API key is available and degrades
// to a local TF-IDF cosine when the backend is unreachable or unset.
package similarity

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultEmbeddingModel is used when no model is configured.
const DefaultEmbeddingModel = "gemini-embedding-001"

// Strategy selects which provider the engine tries.
const (
	StrategyAuto   = "auto"
	StrategyGemini = "gemini"
	StrategyTFIDF  = "tfidf"
)

// Provider computes a similarity score in [0, 1] for two texts.
type Provider interface {
	Name() string
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// GeminiProvider embeds both texts with the Gemini API and returns the
// cosine similarity of the embedding vectors.
type GeminiProvider struct {
	client    *genai.Client
	modelName string
}

// NewGeminiProvider creates a provider backed by the Gemini API.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = DefaultEmbeddingModel
	}

	return &GeminiProvider{client: client, modelName: model}, nil
}

func (g *GeminiProvider) Name() string { return "gemini" }

// Similarity embeds a and b and returns their cosine similarity clamped
// to [0, 1]. Empty inputs score 0 without calling the API.
func (g *GeminiProvider) Similarity(ctx context.Context, a, b string) (float64, error) {
	if g == nil || g.client == nil {
		return 0, errors.New("gemini provider is not initialized")
	}
	if strings.TrimSpace(a) == "" || strings.TrimSpace(b) == "" {
		return 0, nil
	}

	va, err := g.embed(ctx, a)
	if err != nil {
		return 0, err
	}
	vb, err := g.embed(ctx, b)
	if err != nil {
		return 0, err
	}
	if len(va) != len(vb) {
		return 0, fmt.Errorf("embedding dimensions differ: %d vs %d", len(va), len(vb))
	}

	return clamp01(cosine32(va, vb)), nil
}

func (g *GeminiProvider) embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := g.client.Models.EmbedContent(ctx, g.modelName, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("embed content: %w", err)
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, errors.New("gemini api returned no embedding values")
	}
	return resp.Embeddings[0].Values, nil
}

// Engine wraps a primary provider with the TF-IDF fallback. A Gemini
// failure is logged and demoted, never surfaced to the caller.
type Engine struct {
	primary  Provider
	fallback Provider
	logger   *zap.Logger
}

// NewEngine builds an engine for the given strategy. StrategyGemini and
// StrategyAuto require a working API key only in the former case; auto
// silently drops to TF-IDF when no key is present.
func NewEngine(ctx context.Context, strategy, apiKey, model string, logger *zap.Logger) (*Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	eng := &Engine{fallback: TFIDFProvider{}, logger: logger}

	switch strategy {
	case StrategyTFIDF, "":
		return eng, nil
	case StrategyGemini:
		p, err := NewGeminiProvider(ctx, apiKey, model)
		if err != nil {
			return nil, fmt.Errorf("configure gemini provider: %w", err)
		}
		eng.primary = p
		return eng, nil
	case StrategyAuto:
		if strings.TrimSpace(apiKey) == "" {
			logger.Info("no gemini api key configured, using tfidf similarity")
			return eng, nil
		}
		p, err := NewGeminiProvider(ctx, apiKey, model)
		if err != nil {
			logger.Warn("gemini provider unavailable, using tfidf similarity", zap.Error(err))
			return eng, nil
		}
		eng.primary = p
		return eng, nil
	default:
		return nil, fmt.Errorf("unknown similarity strategy %q", strategy)
	}
}

// NewTFIDFEngine returns an engine that only uses the local provider.
func NewTFIDFEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{fallback: TFIDFProvider{}, logger: logger}
}

// Score returns the similarity of the two texts and the name of the
// provider that produced it.
func (e *Engine) Score(ctx context.Context, a, b string) (float64, string) {
	if e.primary != nil {
		score, err := e.primary.Similarity(ctx, a, b)
		if err == nil {
			return score, e.primary.Name()
		}
		e.logger.Warn("similarity provider failed, falling back",
			zap.String("provider", e.primary.Name()),
			zap.Error(err))
	}
	score, _ := e.fallback.Similarity(ctx, a, b)
	return score, e.fallback.Name()
}

func cosine32(a, b []float32) float64 {
	var dotp, na, nb float64
	for i := range a {
		dotp += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dotp / (math.Sqrt(na) * math.Sqrt(nb))
}
