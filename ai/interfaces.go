package ai

import "context"

// Embedder generates vector embeddings for semantic similarity.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedImage generates a vector embedding for an image from its textual
	// description: the caption and any OCR-recovered text. Images without
	// either yield an empty vector and no error.
	EmbedImage(ctx context.Context, caption, ocrText string) ([]float32, error)
}

// DocumentExtractor converts raw document content into structured form:
// clean text, page metadata, tables, and image references.
// Implementations must be thread-safe for concurrent use.
type DocumentExtractor interface {
	// ExtractDocument analyzes raw document content and returns its
	// structured extraction. The format hint ("markdown", "html", "text",
	// "ocr") tells the extractor what it is looking at.
	// Returns an error if extraction fails or the format is unsupported.
	ExtractDocument(ctx context.Context, contents, format string) (*ExtractionResult, error)
}

// ProductExtractor identifies product entities mentioned in document text.
// Implementations must be thread-safe for concurrent use.
type ProductExtractor interface {
	// ExtractProducts analyzes text and extracts product entities with their
	// attributes and a confidence score. Returns an empty slice if no
	// products are found.
	ExtractProducts(ctx context.Context, text string) ([]ExtractedProduct, error)
}

// Provider aggregates AI services for convenient initialization and lifecycle
// management. A provider creates and manages the embedder and extractors,
// ensuring they share configuration and resources appropriately.
type Provider interface {
	// Embedder returns the embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// DocumentExtractor returns the document extraction service.
	// The returned DocumentExtractor is safe for concurrent use.
	DocumentExtractor() DocumentExtractor

	// ProductExtractor returns the product extraction service.
	// The returned ProductExtractor is safe for concurrent use.
	ProductExtractor() ProductExtractor

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
