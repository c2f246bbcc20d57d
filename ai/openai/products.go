package openai

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/docflow/ai"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// ProductExtractor implements ai.ProductExtractor using OpenAI-compatible
// chat APIs.
type ProductExtractor struct {
	client        llms.Model
	minConfidence float64
	logger        *slog.Logger
}

// product is an internal type used for JSON unmarshaling.
// It matches the structure expected from the LLM.
type product struct {
	Name       string            `json:"name"`
	Attributes map[string]string `json:"attributes"`
	Confidence float64           `json:"confidence"`
}

// productAnalysis is the wrapper structure for the LLM's JSON response.
type productAnalysis struct {
	Products []product `json:"products"`
}

// newProductExtractor is an internal constructor that returns the concrete
// type. Used by Provider to manage the instance.
func newProductExtractor(config *ai.Config) (*ProductExtractor, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// Use "none" as token for local OpenAI-compatible services that don't require authentication
	client, err := openai.New(
		openai.WithBaseURL(config.ExtractorHost),
		openai.WithToken("none"),
		openai.WithModel(config.ExtractorModel),
	)
	if err != nil {
		return nil, err
	}

	return &ProductExtractor{
		client:        client,
		minConfidence: config.MinConfidence,
		logger:        slog.Default().With("component", "openai-products"),
	}, nil
}

// NewProductExtractor creates a new product extractor using the provided
// configuration.
//
// Returns ai.ProductExtractor interface to enforce abstraction.
func NewProductExtractor(config *ai.Config) (ai.ProductExtractor, error) {
	return newProductExtractor(config)
}

// ExtractProducts identifies product entities in text using an LLM.
// It applies confidence filtering and returns only products at or above the
// minimum threshold, most confident first.
func (e *ProductExtractor) ExtractProducts(ctx context.Context, text string) ([]ai.ExtractedProduct, error) {
	var result productAnalysis
	if err := generateJSON(ctx, e.client, e.logger, buildProductPrompt(), text, &result); err != nil {
		return nil, err
	}

	extracted := make([]ai.ExtractedProduct, 0, len(result.Products))
	for _, p := range result.Products {
		name := strings.TrimSpace(p.Name)
		if name == "" || p.Confidence < e.minConfidence {
			continue
		}

		attrs := make(map[string]string, len(p.Attributes))
		for k, v := range p.Attributes {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(k)), " ", "_")
			if k != "" {
				attrs[k] = strings.TrimSpace(v)
			}
		}

		extracted = append(extracted, ai.ExtractedProduct{
			Name:       name,
			Attributes: attrs,
			Confidence: p.Confidence,
		})
	}

	slices.SortFunc(extracted, func(a, b ai.ExtractedProduct) int {
		if a.Confidence == b.Confidence {
			return 0
		}
		if a.Confidence < b.Confidence {
			return 1
		}
		return -1
	})

	e.logger.Debug("extracted products",
		"total", len(result.Products),
		"filtered", len(extracted))
	return extracted, nil
}
