package mock

import (
	"context"
	"regexp"
	"strings"

	"github.com/poiesic/docflow/ai"
)

// markdownImagePattern matches markdown image references: ![caption](path).
var markdownImagePattern = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

// MockDocumentExtractor is a test double for ai.DocumentExtractor.
// It allows custom behavior injection via function fields.
type MockDocumentExtractor struct {
	// ExtractDocumentFunc is called by ExtractDocument if set.
	// If nil, uses default passthrough extraction.
	ExtractDocumentFunc func(ctx context.Context, contents, format string) (*ai.ExtractionResult, error)

	callCount int
}

// NewMockDocumentExtractor creates a mock document extractor with default behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockDocumentExtractor() *MockDocumentExtractor {
	return &MockDocumentExtractor{}
}

// ExtractDocument performs a simple deterministic extraction.
// Default behavior: pages split on form feeds, markdown image references
// become extracted images, and the text passes through unchanged.
func (m *MockDocumentExtractor) ExtractDocument(ctx context.Context, contents, format string) (*ai.ExtractionResult, error) {
	m.callCount++

	if m.ExtractDocumentFunc != nil {
		return m.ExtractDocumentFunc(ctx, contents, format)
	}

	result := &ai.ExtractionResult{Text: contents}

	for i, page := range strings.Split(contents, "\f") {
		result.Pages = append(result.Pages, ai.PageMetadata{
			Number:    i + 1,
			CharCount: len(page),
		})
	}

	for _, match := range markdownImagePattern.FindAllStringSubmatch(contents, -1) {
		imgFormat := "png"
		if dot := strings.LastIndex(match[2], "."); dot >= 0 {
			ext := strings.ToLower(match[2][dot+1:])
			if ext == "jpg" {
				ext = "jpeg"
			}
			imgFormat = ext
		}
		result.Images = append(result.Images, ai.ExtractedImage{
			Page:    1,
			Caption: match[1],
			Format:  imgFormat,
		})
	}

	return result, nil
}

// CallCount returns the number of times ExtractDocument was called.
func (m *MockDocumentExtractor) CallCount() int {
	return m.callCount
}

// Reset clears the call count and custom functions.
func (m *MockDocumentExtractor) Reset() {
	m.callCount = 0
	m.ExtractDocumentFunc = nil
}
