package mock

import (
	"context"
	"strings"

	"github.com/poiesic/docflow/ai"
)

// MockProductExtractor is a test double for ai.ProductExtractor.
// It allows custom behavior injection via function fields.
type MockProductExtractor struct {
	// ExtractProductsFunc is called by ExtractProducts if set.
	// If nil, uses default simple line-based extraction.
	ExtractProductsFunc func(ctx context.Context, text string) ([]ai.ExtractedProduct, error)

	callCount int
}

// NewMockProductExtractor creates a mock product extractor with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockProductExtractor() *MockProductExtractor {
	return &MockProductExtractor{}
}

// ExtractProducts extracts simple mock products from text.
// Default behavior: each line starting with "Product:" becomes a product,
// with decreasing confidence for subsequent matches.
func (m *MockProductExtractor) ExtractProducts(ctx context.Context, text string) ([]ai.ExtractedProduct, error) {
	m.callCount++

	if m.ExtractProductsFunc != nil {
		return m.ExtractProductsFunc(ctx, text)
	}

	products := []ai.ExtractedProduct{}
	confidence := 0.95
	for _, line := range strings.Split(text, "\n") {
		name, found := strings.CutPrefix(strings.TrimSpace(line), "Product:")
		if !found {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		products = append(products, ai.ExtractedProduct{
			Name:       name,
			Attributes: map[string]string{},
			Confidence: confidence,
		})

		if confidence > 0.5 {
			confidence -= 0.05
		}
	}

	return products, nil
}

// CallCount returns the number of times ExtractProducts was called.
func (m *MockProductExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockProductExtractor) Reset() {
	m.callCount = 0
	m.ExtractProductsFunc = nil
}
